package ucontainer

import (
	"github.com/sirupsen/logrus"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uexport"
	"github.com/thanhnguyen2187/asset-savior/uasset/uheader"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
)

type (
	// Container is one parsed package. It is populated by a single Open and
	// is not safe for concurrent mutation.
	Container struct {
		Header  *uheader.Header
		Exports []uexport.Export
		// Fallbacks maps an export index to the reason it was kept raw.
		Fallbacks map[int]error
		// DependsMap holds one list of export indexes per export, or nil when
		// the package has no depends table.
		DependsMap [][]int32
		// SoftPackageReferences is nil when the package has no such table.
		SoftPackageReferences []string
		// AssetRegistryData is kept verbatim.
		AssetRegistryData []byte
		WorldTileInfo     *uproperty.WorldTileInfo

		settings    *uarchive.Settings
		eventDriven bool
		logger      logrus.FieldLogger
		scriptCodec uexport.ScriptCodec
	}
	Option func(c *Container)
)
