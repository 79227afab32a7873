package uheader

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

// Read decodes the summary from position 0 and records the resolved object
// version, custom versions and package flags in the session settings.
func Read(r *uarchive.Reader) (*Header, error) {
	if err := r.Seek(0); err != nil {
		return nil, err
	}
	magic, err := r.ReadU32BE()
	if err != nil {
		return nil, errors.Wrap(err, "uheader.Read error reading magic")
	}
	if magic != Magic {
		return nil, uerr.ErrInvalidFile{Reason: fmt.Sprintf("bad magic 0x%08X", magic)}
	}

	h := &Header{}
	if h.LegacyFileVersion, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.LegacyFileVersion != LegacyVersionWithoutUE3 {
		if h.LegacyUE3Version, err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	fileVersion, err := r.ReadI32()
	if err != nil {
		return nil, errors.Wrap(err, "uheader.Read error reading file version")
	}
	h.FileVersion = uversion.ObjectVersion(fileVersion)
	if h.Unversioned() {
		if r.ObjectVersion == uversion.VerUnknown {
			return nil, uerr.ErrNoData{Reason: "unversioned asset needs an engine version"}
		}
	} else {
		r.ObjectVersion = h.FileVersion
	}
	if h.FileLicenseVersion, err = r.ReadI32(); err != nil {
		return nil, err
	}

	if h.LegacyFileVersion <= -2 {
		h.CustomVersionFormat = uversion.FormatForLegacyVersion(h.LegacyFileVersion)
		if h.CustomVersions, err = readCustomVersions(r, h.CustomVersionFormat); err != nil {
			return nil, errors.Wrap(err, "uheader.Read error reading custom versions")
		}
		if !h.Unversioned() {
			r.CustomVersions = h.CustomVersions
		}
	}

	if h.Offsets.TotalHeaderSize, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.FolderName, err = r.ReadFString(); err != nil {
		return nil, errors.Wrap(err, "uheader.Read error reading folder name")
	}
	if h.PackageFlags, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if unknown := uarchive.UnknownPackageFlags(h.PackageFlags); unknown != 0 {
		return nil, uerr.ErrInvalidFile{Reason: fmt.Sprintf("unknown package flags 0x%08X", unknown)}
	}
	r.PackageFlags = h.PackageFlags

	if h.NameCount, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.Offsets.NameOffset, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if r.AtLeast(uversion.VerSerializeTextInPackages) {
		if h.GatherableTextData, err = readTable(r); err != nil {
			return nil, err
		}
	}

	if h.ExportCount, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.Offsets.ExportOffset, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.ImportCount, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.Offsets.ImportOffset, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.Offsets.DependsOffset, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if r.AtLeast(uversion.VerAddStringAssetReferencesMap) {
		if h.SoftPackageRefCount, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if h.Offsets.SoftPackageReferenceOffset, err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	if r.AtLeast(uversion.VerAddedSearchableNames) {
		if h.SearchableNames, err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	if h.ThumbnailTable, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.PackageGuid, err = r.ReadGuidValue(); err != nil {
		return nil, err
	}

	generationCount, err := r.ReadCount()
	if err != nil {
		return nil, errors.Wrap(err, "uheader.Read error reading generation count")
	}
	h.Generations = make([]utypes.GenerationInfo, 0, generationCount)
	for i := 0; i < generationCount; i++ {
		generation := utypes.GenerationInfo{}
		if generation.ExportCount, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if generation.NameCount, err = r.ReadI32(); err != nil {
			return nil, err
		}
		h.Generations = append(h.Generations, generation)
	}

	if r.AtLeast(uversion.VerEngineVersionObject) {
		if h.RecordedEngine, err = readEngineVersion(r); err != nil {
			return nil, errors.Wrap(err, "uheader.Read error reading recorded engine version")
		}
	} else {
		build, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		h.RecordedEngine = utypes.EngineVersionRecord{Major: 4, Build: build}
	}
	if r.AtLeast(uversion.VerPackageSummaryHasCompatibleEngineVer) {
		if h.CompatibleEngine, err = readEngineVersion(r); err != nil {
			return nil, errors.Wrap(err, "uheader.Read error reading compatible engine version")
		}
	} else {
		h.CompatibleEngine = h.RecordedEngine
	}

	if h.CompressionFlags, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if err := readZeroCount(r, "compressed chunk"); err != nil {
		return nil, err
	}
	if h.PackageSource, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if err := readZeroCount(r, "additional packages to cook"); err != nil {
		return nil, err
	}
	if h.LegacyFileVersion > -7 {
		if err := readZeroCount(r, "texture allocations"); err != nil {
			return nil, err
		}
	}

	if h.Offsets.AssetRegistryDataOffset, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.Offsets.BulkDataStartOffset, err = r.ReadI64(); err != nil {
		return nil, err
	}
	if r.AtLeast(uversion.VerWorldLevelInfo) {
		if h.Offsets.WorldTileInfoOffset, err = r.ReadI32(); err != nil {
			return nil, err
		}
	}

	switch {
	case r.AtLeast(uversion.VerChangedChunkIDToBeAnArrayOfChunkIDs):
		count, err := r.ReadCount()
		if err != nil {
			return nil, errors.Wrap(err, "uheader.Read error reading chunk id count")
		}
		h.ChunkIDs = make([]int32, 0, count)
		for i := 0; i < count; i++ {
			chunkID, err := r.ReadI32()
			if err != nil {
				return nil, err
			}
			h.ChunkIDs = append(h.ChunkIDs, chunkID)
		}
	case r.AtLeast(uversion.VerAddedChunkIDToAssetDataAndUPackage):
		chunkID, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		h.ChunkIDs = append(h.ChunkIDs, chunkID)
	}

	if r.AtLeast(uversion.VerPreloadDependenciesInCookedExports) {
		if h.Offsets.PreloadDependencyCount, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if h.Offsets.PreloadDependencyOffset, err = r.ReadI32(); err != nil {
			return nil, err
		}
	}

	return h, nil
}

func readTable(r *uarchive.Reader) (table Table, err error) {
	if table.Count, err = r.ReadI32(); err != nil {
		return table, err
	}
	table.Offset, err = r.ReadI32()
	return table, err
}

func readZeroCount(r *uarchive.Reader, field string) error {
	count, err := r.ReadI32()
	if err != nil {
		return errors.Wrapf(err, "uheader.Read error reading %s count", field)
	}
	if count != 0 {
		return uerr.ErrInvalidFile{Reason: fmt.Sprintf("%s count is %d, expected 0", field, count)}
	}
	return nil
}

func readEngineVersion(r *uarchive.Reader) (v utypes.EngineVersionRecord, err error) {
	if v.Major, err = r.ReadU16(); err != nil {
		return v, err
	}
	if v.Minor, err = r.ReadU16(); err != nil {
		return v, err
	}
	if v.Patch, err = r.ReadU16(); err != nil {
		return v, err
	}
	if v.Build, err = r.ReadU32(); err != nil {
		return v, err
	}
	v.Branch, err = r.ReadFString()
	return v, err
}

// readCustomVersions reads the container in the given format. The enum-keyed
// format predates every supported object version.
func readCustomVersions(
	r *uarchive.Reader,
	format uversion.CustomVersionFormat,
) (uversion.CustomVersionList, error) {
	if format != uversion.CustomVersionFormatGuids && format != uversion.CustomVersionFormatOptimized {
		return nil, uerr.ErrInvalidFile{Reason: "unsupported custom version container format"}
	}
	count, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	list := make(uversion.CustomVersionList, 0, count)
	for i := 0; i < count; i++ {
		entry := uversion.CustomVersion{}
		if entry.Guid, err = r.ReadGuidValue(); err != nil {
			return nil, errors.Wrapf(err, "uheader.readCustomVersions error reading guid %d", i)
		}
		if entry.Version, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if format == uversion.CustomVersionFormatGuids {
			if entry.FriendlyName, err = r.ReadFString(); err != nil {
				return nil, err
			}
		}
		list = append(list, entry)
	}
	return list, nil
}
