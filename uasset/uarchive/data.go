package uarchive

import (
	"github.com/thanhnguyen2187/asset-savior/ds"
	"github.com/thanhnguyen2187/asset-savior/uasset/lbytes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uindex"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

type (
	// Settings is the state of one read or write session, shared by every
	// codec that runs in it.
	Settings struct {
		ObjectVersion  uversion.ObjectVersion
		CustomVersions uversion.CustomVersionList
		EngineVersion  uversion.EngineVersion
		PackageFlags   uint32
		Names          *uname.Table
		Resolver       *uindex.Resolver
		// struct types for arrays without an inner tag, keyed by property name
		ArrayStructTypes *ds.LinkedHashMap[string, string]
		// struct types of map keys and values, keyed by property name
		MapKeyStructTypes   *ds.LinkedHashMap[string, string]
		MapValueStructTypes *ds.LinkedHashMap[string, string]
	}
	Reader struct {
		*lbytes.Reader
		*Settings
	}
	Writer struct {
		*lbytes.Writer
		*Settings
	}
)
