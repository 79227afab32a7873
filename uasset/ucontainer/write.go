package ucontainer

import (
	"io"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uexport"
	"github.com/thanhnguyen2187/asset-savior/uasset/uheader"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

// Write serializes the package. bulk must be non-nil exactly when the
// package uses the event-driven loader.
//
// The header and export map are first written with the recorded offsets,
// then rewritten in place once every table and export has been laid out.
func (c *Container) Write(asset io.Writer, bulk io.Writer) error {
	if c.eventDriven != (bulk != nil) {
		return uerr.ErrNoData{Reason: "bulk stream presence does not match the event-driven loader setting"}
	}

	w := uarchive.NewWriter(c.settings)
	offsets := uheader.Offsets{}
	header := c.summary()
	if err := uheader.Write(w, header, c.Header.Offsets); err != nil {
		return errors.Wrap(err, "ucontainer.Write error writing header placeholder")
	}

	if c.settings.Names.Len() > 0 {
		offsets.NameOffset = int32(w.Position())
	}
	if err := c.writeNames(w); err != nil {
		return errors.Wrap(err, "ucontainer.Write error writing names")
	}

	if len(c.Imports()) > 0 {
		offsets.ImportOffset = int32(w.Position())
	}
	if err := c.writeImports(w); err != nil {
		return errors.Wrap(err, "ucontainer.Write error writing imports")
	}

	if len(c.Exports) > 0 {
		offsets.ExportOffset = int32(w.Position())
	}
	for _, export := range c.Exports {
		if err := uexport.WriteBaseExport(w, export.Base()); err != nil {
			return errors.Wrap(err, "ucontainer.Write error writing export map placeholder")
		}
	}

	if c.DependsMap != nil {
		offsets.DependsOffset = int32(w.Position())
		if err := c.writeDependsMap(w); err != nil {
			return errors.Wrap(err, "ucontainer.Write error writing depends map")
		}
	}

	if c.SoftPackageReferences != nil {
		offsets.SoftPackageReferenceOffset = int32(w.Position())
		for _, reference := range c.SoftPackageReferences {
			if err := w.WriteFString(reference); err != nil {
				return errors.Wrap(err, "ucontainer.Write error writing soft package references")
			}
		}
	}

	if c.Header.Offsets.AssetRegistryDataOffset != 0 {
		offsets.AssetRegistryDataOffset = int32(w.Position())
		if err := w.WriteBytes(c.AssetRegistryData); err != nil {
			return err
		}
	}

	if c.WorldTileInfo != nil {
		offsets.WorldTileInfoOffset = int32(w.Position())
		if err := uproperty.WriteWorldTileInfo(w, c.WorldTileInfo); err != nil {
			return errors.Wrap(err, "ucontainer.Write error writing world tile info")
		}
	}

	offsets.PreloadDependencyOffset = int32(w.Position())
	offsets.PreloadDependencyCount = -1
	if c.eventDriven {
		offsets.PreloadDependencyCount = 0
		for _, export := range c.Exports {
			dependencies := &export.Base().Dependencies
			if err := uexport.WriteDependencies(w, dependencies); err != nil {
				return errors.Wrap(err, "ucontainer.Write error writing preload dependencies")
			}
			offsets.PreloadDependencyCount += dependencies.Count()
		}
	}

	if len(c.Exports) > 0 {
		offsets.TotalHeaderSize = int32(w.Position())
	}

	// exports of an event-driven package live in the bulk stream, at offsets
	// that continue the asset stream
	headerEnd := w.Position()
	exportWriter, base := w, int64(0)
	if c.eventDriven {
		exportWriter, base = uarchive.NewWriter(c.settings), headerEnd
	}
	starts := make([]int64, 0, len(c.Exports))
	for _, export := range c.Exports {
		starts = append(starts, base+exportWriter.Position())
		ctx := uexport.Context{ScriptCodec: c.scriptCodec}
		if err := uexport.Encode(exportWriter, export, ctx); err != nil {
			return errors.Wrap(err, "ucontainer.Write error writing exports")
		}
	}
	if err := exportWriter.WriteU32BE(uheader.Magic); err != nil {
		return err
	}
	offsets.BulkDataStartOffset = base + exportWriter.Position() - 4

	if len(c.Exports) > 0 {
		if err := w.Seek(int64(offsets.ExportOffset)); err != nil {
			return err
		}
		if err := c.patchExportMap(w, starts, offsets.BulkDataStartOffset); err != nil {
			return errors.Wrap(err, "ucontainer.Write error patching export map")
		}
	}
	if err := w.Seek(0); err != nil {
		return err
	}
	if err := uheader.Write(w, header, offsets); err != nil {
		return errors.Wrap(err, "ucontainer.Write error patching header")
	}

	if _, err := asset.Write(w.Bytes()); err != nil {
		return errors.Wrap(err, "ucontainer.Write error flushing asset stream")
	}
	if c.eventDriven {
		if _, err := bulk.Write(exportWriter.Bytes()); err != nil {
			return errors.Wrap(err, "ucontainer.Write error flushing bulk stream")
		}
	}
	return nil
}

// summary is the header with its counts taken from the current tables.
func (c *Container) summary() *uheader.Header {
	header := *c.Header
	header.NameCount = int32(c.settings.Names.Len())
	header.ImportCount = int32(len(c.Imports()))
	header.ExportCount = int32(len(c.Exports))
	if c.SoftPackageReferences != nil {
		header.SoftPackageRefCount = int32(len(c.SoftPackageReferences))
	}
	return &header
}

func (c *Container) writeNames(w *uarchive.Writer) error {
	withHashes := w.AtLeast(uversion.VerNameHashesSerialized)
	for i, entry := range c.settings.Names.Entries() {
		if err := w.WriteFString(entry.Content); err != nil {
			return err
		}
		if !withHashes {
			continue
		}
		hash, err := c.settings.Names.Hash(int32(i))
		if err != nil {
			return err
		}
		if err := w.WriteU32(hash); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) writeImports(w *uarchive.Writer) error {
	for i, imp := range c.Imports() {
		if err := w.WriteFName(imp.ClassPackage); err != nil {
			return errors.Wrapf(err, "error writing import %d", i)
		}
		if err := w.WriteFName(imp.ClassName); err != nil {
			return err
		}
		if err := w.WritePackageIndex(imp.OuterIndex); err != nil {
			return err
		}
		if err := w.WriteFName(imp.ObjectName); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) writeDependsMap(w *uarchive.Writer) error {
	for i := range c.Exports {
		var depends []int32
		if i < len(c.DependsMap) {
			depends = c.DependsMap[i]
		}
		if err := w.WriteI32(int32(len(depends))); err != nil {
			return err
		}
		for _, index := range depends {
			if err := w.WriteI32(index); err != nil {
				return err
			}
		}
	}
	return nil
}

// patchExportMap rewrites the export map with the laid out sizes and
// offsets. Each export ends where the next one starts; the last one ends at
// bulkDataStart.
func (c *Container) patchExportMap(w *uarchive.Writer, starts []int64, bulkDataStart int64) error {
	dependencyOffset := int32(0)
	for i, export := range c.Exports {
		base := *export.Base()
		end := bulkDataStart
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		base.SerialOffset = starts[i]
		base.SerialSize = end - starts[i]
		base.FirstExportDependencyOffset = -1
		if c.eventDriven {
			base.FirstExportDependencyOffset = dependencyOffset
			base.DependencySizes = base.Dependencies.Sizes()
		}
		dependencyOffset += base.Dependencies.Count()
		if err := uexport.WriteBaseExport(w, &base); err != nil {
			return err
		}
	}
	return nil
}
