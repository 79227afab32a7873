package ucontainer

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uexport"
	"github.com/thanhnguyen2187/asset-savior/uasset/uheader"
	"github.com/thanhnguyen2187/asset-savior/uasset/uindex"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

// New creates an empty versioned package saved by engine.
func New(engine uversion.EngineVersion, eventDriven bool, opts ...Option) *Container {
	c := newContainer(engine, eventDriven, opts)
	c.Header = &uheader.Header{
		LegacyFileVersion: -7,
		LegacyUE3Version:  uheader.LegacyUE3VersionVersioned,
		FileVersion:       c.settings.ObjectVersion,
		CustomVersions:    c.settings.CustomVersions,
		PackageFlags:      uarchive.PkgFilterEditorOnly,
		FolderName:        "None",
		Generations:       []utypes.GenerationInfo{},
		ChunkIDs:          []int32{},
	}
	c.Header.CustomVersionFormat = uversion.FormatForLegacyVersion(c.Header.LegacyFileVersion)
	return c
}

func (c *Container) Names() *uname.Table {
	return c.settings.Names
}

// Settings are the session settings later codecs run with, including the
// struct type overrides learned while decoding.
func (c *Container) Settings() *uarchive.Settings {
	return c.settings
}

func (c *Container) Resolver() *uindex.Resolver {
	return c.settings.Resolver
}

func (c *Container) EventDriven() bool {
	return c.eventDriven
}

func (c *Container) Imports() []uindex.Import {
	return c.settings.Resolver.Imports
}

// AddImport appends imp and returns its package index.
func (c *Container) AddImport(imp uindex.Import) utypes.PackageIndex {
	c.settings.Resolver.Imports = append(c.settings.Resolver.Imports, imp)
	return utypes.FromImport(len(c.settings.Resolver.Imports) - 1)
}

func (c *Container) FindImport(
	classPackage, className uname.Name,
	outer utypes.PackageIndex,
	objectName uname.Name,
) (utypes.PackageIndex, bool) {
	return c.settings.Resolver.FindImport(classPackage, className, outer, objectName)
}

func (c *Container) FindImportNoIndex(classPackage, className, objectName uname.Name) (utypes.PackageIndex, bool) {
	return c.settings.Resolver.FindImportNoIndex(classPackage, className, objectName)
}

// AddExport appends export and returns its package index.
func (c *Container) AddExport(export uexport.Export) utypes.PackageIndex {
	c.Exports = append(c.Exports, export)
	c.refreshExportNames()
	return utypes.FromExport(len(c.Exports) - 1)
}

// Export returns the export behind a positive package index.
func (c *Container) Export(index utypes.PackageIndex) (uexport.Export, error) {
	if !index.IsExport() || index.ToExport() >= len(c.Exports) {
		return nil, uerr.ErrInvalidPackageIndex{Index: int32(index), Reason: "not an export of this package"}
	}
	return c.Exports[index.ToExport()], nil
}

// ResolveClassName returns the class type of an export's class index.
func (c *Container) ResolveClassName(index utypes.PackageIndex) (string, error) {
	classType, err := c.settings.Resolver.ResolveClassName(index)
	if err != nil {
		return "", errors.Wrap(err, "ucontainer.ResolveClassName error")
	}
	return classType, nil
}

func (c *Container) refreshExportNames() {
	c.settings.Resolver.ExportNames = lo.Map(c.Exports, func(export uexport.Export, _ int) uname.Name {
		return export.Base().ObjectName
	})
}
