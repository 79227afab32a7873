package uheader

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

// Write encodes the summary at the writer's position with the given table
// positions. The writer's settings gate the optional fields exactly as Read
// does.
func Write(w *uarchive.Writer, h *Header, offsets Offsets) error {
	if err := w.WriteU32BE(Magic); err != nil {
		return err
	}
	if err := w.WriteI32(h.LegacyFileVersion); err != nil {
		return err
	}
	if h.LegacyFileVersion != LegacyVersionWithoutUE3 {
		if err := w.WriteI32(h.LegacyUE3Version); err != nil {
			return err
		}
	}
	if err := w.WriteI32(int32(h.FileVersion)); err != nil {
		return err
	}
	if err := w.WriteI32(h.FileLicenseVersion); err != nil {
		return err
	}
	if h.LegacyFileVersion <= -2 {
		format := uversion.FormatForLegacyVersion(h.LegacyFileVersion)
		if err := writeCustomVersions(w, format, h.CustomVersions); err != nil {
			return errors.Wrap(err, "uheader.Write error writing custom versions")
		}
	}

	if err := w.WriteI32(offsets.TotalHeaderSize); err != nil {
		return err
	}
	if err := w.WriteFString(h.FolderName); err != nil {
		return err
	}
	if err := w.WriteU32(h.PackageFlags); err != nil {
		return err
	}
	if err := writeI32s(w, h.NameCount, offsets.NameOffset); err != nil {
		return err
	}
	if w.AtLeast(uversion.VerSerializeTextInPackages) {
		if err := writeI32s(w, h.GatherableTextData.Count, h.GatherableTextData.Offset); err != nil {
			return err
		}
	}
	err := writeI32s(
		w,
		h.ExportCount, offsets.ExportOffset,
		h.ImportCount, offsets.ImportOffset,
		offsets.DependsOffset,
	)
	if err != nil {
		return err
	}
	if w.AtLeast(uversion.VerAddStringAssetReferencesMap) {
		if err := writeI32s(w, h.SoftPackageRefCount, offsets.SoftPackageReferenceOffset); err != nil {
			return err
		}
	}
	if w.AtLeast(uversion.VerAddedSearchableNames) {
		if err := w.WriteI32(h.SearchableNames); err != nil {
			return err
		}
	}
	if err := w.WriteI32(h.ThumbnailTable); err != nil {
		return err
	}
	if err := w.WriteGuidValue(h.PackageGuid); err != nil {
		return err
	}

	if err := w.WriteI32(int32(len(h.Generations))); err != nil {
		return err
	}
	for _, generation := range h.Generations {
		if err := writeI32s(w, generation.ExportCount, generation.NameCount); err != nil {
			return err
		}
	}

	if w.AtLeast(uversion.VerEngineVersionObject) {
		if err := writeEngineVersion(w, h.RecordedEngine); err != nil {
			return errors.Wrap(err, "uheader.Write error writing recorded engine version")
		}
	} else if err := w.WriteU32(h.RecordedEngine.Build); err != nil {
		return err
	}
	if w.AtLeast(uversion.VerPackageSummaryHasCompatibleEngineVer) {
		if err := writeEngineVersion(w, h.CompatibleEngine); err != nil {
			return errors.Wrap(err, "uheader.Write error writing compatible engine version")
		}
	}

	if err := w.WriteU32(h.CompressionFlags); err != nil {
		return err
	}
	// compressed chunks
	if err := w.WriteI32(0); err != nil {
		return err
	}
	if err := w.WriteU32(h.PackageSource); err != nil {
		return err
	}
	// additional packages to cook
	if err := w.WriteI32(0); err != nil {
		return err
	}
	if h.LegacyFileVersion > -7 {
		// texture allocations
		if err := w.WriteI32(0); err != nil {
			return err
		}
	}

	if err := w.WriteI32(offsets.AssetRegistryDataOffset); err != nil {
		return err
	}
	if err := w.WriteI64(offsets.BulkDataStartOffset); err != nil {
		return err
	}
	if w.AtLeast(uversion.VerWorldLevelInfo) {
		if err := w.WriteI32(offsets.WorldTileInfoOffset); err != nil {
			return err
		}
	}

	switch {
	case w.AtLeast(uversion.VerChangedChunkIDToBeAnArrayOfChunkIDs):
		if err := w.WriteI32(int32(len(h.ChunkIDs))); err != nil {
			return err
		}
		if err := writeI32s(w, h.ChunkIDs...); err != nil {
			return err
		}
	case w.AtLeast(uversion.VerAddedChunkIDToAssetDataAndUPackage):
		chunkID := int32(0)
		if len(h.ChunkIDs) > 0 {
			chunkID = h.ChunkIDs[0]
		}
		if err := w.WriteI32(chunkID); err != nil {
			return err
		}
	}

	if w.AtLeast(uversion.VerPreloadDependenciesInCookedExports) {
		if err := writeI32s(w, offsets.PreloadDependencyCount, offsets.PreloadDependencyOffset); err != nil {
			return err
		}
	}
	return nil
}

func writeI32s(w *uarchive.Writer, values ...int32) error {
	for _, value := range values {
		if err := w.WriteI32(value); err != nil {
			return err
		}
	}
	return nil
}

func writeEngineVersion(w *uarchive.Writer, v utypes.EngineVersionRecord) error {
	for _, part := range []uint16{v.Major, v.Minor, v.Patch} {
		if err := w.WriteU16(part); err != nil {
			return err
		}
	}
	if err := w.WriteU32(v.Build); err != nil {
		return err
	}
	return w.WriteFString(v.Branch)
}

func writeCustomVersions(
	w *uarchive.Writer,
	format uversion.CustomVersionFormat,
	list uversion.CustomVersionList,
) error {
	if format != uversion.CustomVersionFormatGuids && format != uversion.CustomVersionFormatOptimized {
		return uerr.ErrInvalidFile{Reason: "unsupported custom version container format"}
	}
	if err := w.WriteI32(int32(len(list))); err != nil {
		return err
	}
	for _, entry := range list {
		if err := w.WriteGuidValue(entry.Guid); err != nil {
			return err
		}
		if err := w.WriteI32(entry.Version); err != nil {
			return err
		}
		if format == uversion.CustomVersionFormatGuids {
			if err := w.WriteFString(entry.FriendlyName); err != nil {
				return err
			}
		}
	}
	return nil
}
