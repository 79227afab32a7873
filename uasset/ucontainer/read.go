package ucontainer

import (
	"io"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uexport"
	"github.com/thanhnguyen2187/asset-savior/uasset/uhash"
	"github.com/thanhnguyen2187/asset-savior/uasset/uheader"
	"github.com/thanhnguyen2187/asset-savior/uasset/uindex"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

func newContainer(engine uversion.EngineVersion, eventDriven bool, opts []Option) *Container {
	c := &Container{
		Fallbacks:   map[int]error{},
		settings:    uarchive.NewSettings(engine),
		eventDriven: eventDriven,
		logger:      discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open parses a package. A non-nil bulk stream is the .uexp half of an
// event-driven package; export offsets then point past the end of asset.
// engine is required for unversioned packages and may be
// uversion.EngineUnknown otherwise.
func Open(asset io.Reader, bulk io.Reader, engine uversion.EngineVersion, opts ...Option) (*Container, error) {
	c := newContainer(engine, bulk != nil, opts)

	bs, err := io.ReadAll(asset)
	if err != nil {
		return nil, errors.Wrap(err, "ucontainer.Open error reading asset stream")
	}
	if bulk != nil {
		bulkBytes, err := io.ReadAll(bulk)
		if err != nil {
			return nil, errors.Wrap(err, "ucontainer.Open error reading bulk stream")
		}
		bs = append(bs, bulkBytes...)
	}

	r := uarchive.NewReader(bs, c.settings)
	if c.Header, err = uheader.Read(r); err != nil {
		return nil, errors.Wrap(err, "ucontainer.Open error reading header")
	}
	steps := []struct {
		name string
		read func(r *uarchive.Reader) error
	}{
		{"names", c.readNames},
		{"imports", c.readImports},
		{"export map", c.readExportMap},
		{"depends map", c.readDependsMap},
		{"soft package references", c.readSoftPackageReferences},
		{"asset registry data", c.readAssetRegistryData},
		{"world tile info", c.readWorldTileInfo},
		{"preload dependencies", c.readPreloadDependencies},
		{"exports", c.readExports},
	}
	for _, step := range steps {
		if err := step.read(r); err != nil {
			return nil, errors.Wrapf(err, "ucontainer.Open error reading %s", step.name)
		}
	}
	return c, nil
}

func (c *Container) readNames(r *uarchive.Reader) error {
	if c.Header.NameCount <= 0 {
		return nil
	}
	if err := r.Seek(int64(c.Header.Offsets.NameOffset)); err != nil {
		return err
	}
	for i := int32(0); i < c.Header.NameCount; i++ {
		content, err := r.ReadFString()
		if err != nil {
			return errors.Wrapf(err, "error reading name %d", i)
		}
		c.settings.Names.ForceIntern(content)
		if !r.AtLeast(uversion.VerNameHashesSerialized) {
			continue
		}
		hash, err := r.ReadU32()
		if err != nil {
			return err
		}
		if hash != uhash.HashName(content) {
			c.settings.Names.SetHash(content, hash)
		}
	}
	return nil
}

func (c *Container) readImports(r *uarchive.Reader) (err error) {
	if c.Header.Offsets.ImportOffset <= 0 {
		return nil
	}
	if err := r.Seek(int64(c.Header.Offsets.ImportOffset)); err != nil {
		return err
	}
	imports := make([]uindex.Import, c.Header.ImportCount)
	for i := range imports {
		imp := &imports[i]
		if imp.ClassPackage, err = r.ReadFName(); err != nil {
			return errors.Wrapf(err, "error reading import %d", i)
		}
		if imp.ClassName, err = r.ReadFName(); err != nil {
			return err
		}
		if imp.OuterIndex, err = r.ReadPackageIndex(); err != nil {
			return err
		}
		if imp.ObjectName, err = r.ReadFName(); err != nil {
			return err
		}
	}
	c.settings.Resolver.Imports = imports
	return nil
}

func (c *Container) readExportMap(r *uarchive.Reader) error {
	if c.Header.Offsets.ExportOffset <= 0 {
		return nil
	}
	if err := r.Seek(int64(c.Header.Offsets.ExportOffset)); err != nil {
		return err
	}
	c.Exports = make([]uexport.Export, 0, c.Header.ExportCount)
	for i := int32(0); i < c.Header.ExportCount; i++ {
		base, err := uexport.ReadBaseExport(r)
		if err != nil {
			return errors.Wrapf(err, "error reading export %d", i)
		}
		c.Exports = append(c.Exports, &uexport.RawExport{BaseExport: base})
	}
	c.refreshExportNames()
	return nil
}

func (c *Container) readDependsMap(r *uarchive.Reader) error {
	if c.Header.Offsets.DependsOffset <= 0 {
		return nil
	}
	if err := r.Seek(int64(c.Header.Offsets.DependsOffset)); err != nil {
		return err
	}
	c.DependsMap = make([][]int32, 0, len(c.Exports))
	for range c.Exports {
		count, err := r.ReadCount()
		if err != nil {
			return err
		}
		depends := make([]int32, 0, count)
		for j := 0; j < count; j++ {
			index, err := r.ReadI32()
			if err != nil {
				return err
			}
			depends = append(depends, index)
		}
		c.DependsMap = append(c.DependsMap, depends)
	}
	return nil
}

func (c *Container) readSoftPackageReferences(r *uarchive.Reader) error {
	if c.Header.Offsets.SoftPackageReferenceOffset <= 0 {
		return nil
	}
	if err := r.Seek(int64(c.Header.Offsets.SoftPackageReferenceOffset)); err != nil {
		return err
	}
	c.SoftPackageReferences = make([]string, 0, c.Header.SoftPackageRefCount)
	for i := int32(0); i < c.Header.SoftPackageRefCount; i++ {
		reference, err := r.ReadFString()
		if err != nil {
			return err
		}
		c.SoftPackageReferences = append(c.SoftPackageReferences, reference)
	}
	return nil
}

// readAssetRegistryData keeps the bytes between the registry offset and the
// next table that follows it.
func (c *Container) readAssetRegistryData(r *uarchive.Reader) error {
	offsets := c.Header.Offsets
	start := int64(offsets.AssetRegistryDataOffset)
	if start <= 0 {
		return nil
	}
	candidates := lo.Filter(
		[]int64{
			int64(offsets.WorldTileInfoOffset),
			int64(offsets.PreloadDependencyOffset),
			int64(offsets.TotalHeaderSize),
		},
		func(offset int64, _ int) bool { return offset > start },
	)
	end := lo.Reduce(candidates, func(end int64, offset int64, _ int) int64 {
		if offset < end {
			return offset
		}
		return end
	}, r.Len())

	if err := r.Seek(start); err != nil {
		return err
	}
	data, err := r.ReadBytes(int(end - start))
	if err != nil {
		return err
	}
	c.AssetRegistryData = data
	return nil
}

func (c *Container) readWorldTileInfo(r *uarchive.Reader) (err error) {
	if c.Header.Offsets.WorldTileInfoOffset <= 0 {
		return nil
	}
	if err := r.Seek(int64(c.Header.Offsets.WorldTileInfoOffset)); err != nil {
		return err
	}
	c.WorldTileInfo, err = uproperty.ReadWorldTileInfo(r)
	return err
}

func (c *Container) readPreloadDependencies(r *uarchive.Reader) error {
	if !c.eventDriven || !r.AtLeast(uversion.VerPreloadDependenciesInCookedExports) {
		return nil
	}
	for i, export := range c.Exports {
		base := export.Base()
		if base.FirstExportDependencyOffset < 0 {
			continue
		}
		start := int64(c.Header.Offsets.PreloadDependencyOffset) + int64(base.FirstExportDependencyOffset)*4
		if err := r.Seek(start); err != nil {
			return errors.Wrapf(err, "error seeking to dependencies of export %d", i)
		}
		dependencies, err := uexport.ReadDependencies(r, base.DependencySizes)
		if err != nil {
			return errors.Wrapf(err, "error reading dependencies of export %d", i)
		}
		base.Dependencies = dependencies
	}
	return nil
}

// readExports decodes every payload. The last export ends before the
// trailing magic.
func (c *Container) readExports(r *uarchive.Reader) error {
	if c.Header.Offsets.TotalHeaderSize <= 0 || len(c.Exports) == 0 {
		return nil
	}
	ends := make([]int64, len(c.Exports))
	for i := range c.Exports {
		if i+1 < len(c.Exports) {
			ends[i] = c.Exports[i+1].Base().SerialOffset
		} else {
			ends[i] = r.Len() - 4
		}
	}

	for i, export := range c.Exports {
		ctx := uexport.Context{End: ends[i], ScriptCodec: c.scriptCodec}
		decoded, err := uexport.Decode(r, *export.Base(), ctx)
		if err != nil {
			return errors.Wrapf(err, "error decoding export %d", i)
		}
		decoded.Overrides.Apply(c.settings)
		if decoded.Fallback != nil {
			classType, _ := c.settings.Resolver.ResolveClassName(export.Base().ClassIndex)
			c.logger.WithFields(logrus.Fields{
				"export": i,
				"class":  classType,
				"error":  decoded.Fallback,
			}).Warn("export kept as raw bytes")
			c.Fallbacks[i] = decoded.Fallback
		}
		c.Exports[i] = decoded.Export
	}
	return nil
}
