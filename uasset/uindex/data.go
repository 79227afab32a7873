package uindex

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

type (
	// Import is an object referenced from another package.
	Import struct {
		ClassPackage uname.Name          `json:"class_package"`
		ClassName    uname.Name          `json:"class_name"`
		OuterIndex   utypes.PackageIndex `json:"outer_index"`
		ObjectName   uname.Name          `json:"object_name"`
	}
	// Resolver answers package index lookups over the import list and the
	// object names of the export map.
	Resolver struct {
		Imports     []Import
		ExportNames []uname.Name
	}
)
