package uheader

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

type (
	// Header is the package summary. Table positions live in Offsets since
	// they are only known after the rest of the file is laid out.
	Header struct {
		LegacyFileVersion int32 `json:"legacy_file_version"`
		// LegacyUE3Version is absent when LegacyFileVersion is -4.
		LegacyUE3Version int32 `json:"legacy_ue3_version"`
		// FileVersion is zero for unversioned assets.
		FileVersion         uversion.ObjectVersion       `json:"file_version"`
		FileLicenseVersion  int32                        `json:"file_license_version"`
		CustomVersions      uversion.CustomVersionList   `json:"custom_versions"`
		CustomVersionFormat uversion.CustomVersionFormat `json:"-"`
		FolderName          string                       `json:"folder_name"`
		PackageFlags        uint32                       `json:"package_flags"`
		NameCount           int32                        `json:"name_count"`
		GatherableTextData  Table                        `json:"gatherable_text_data"`
		ExportCount         int32                        `json:"export_count"`
		ImportCount         int32                        `json:"import_count"`
		SoftPackageRefCount int32                        `json:"soft_package_reference_count"`
		SearchableNames     int32                        `json:"searchable_names_offset"`
		ThumbnailTable      int32                        `json:"thumbnail_table_offset"`
		PackageGuid         utypes.Guid                  `json:"package_guid"`
		Generations         []utypes.GenerationInfo      `json:"generations"`
		RecordedEngine      utypes.EngineVersionRecord   `json:"recorded_engine_version"`
		CompatibleEngine    utypes.EngineVersionRecord   `json:"compatible_engine_version"`
		CompressionFlags    uint32                       `json:"compression_flags"`
		PackageSource       uint32                       `json:"package_source"`
		ChunkIDs            []int32                      `json:"chunk_ids"`
		Offsets             Offsets                      `json:"offsets"`
	}
	// Table is a count and offset pair that is kept verbatim.
	Table struct {
		Count  int32 `json:"count"`
		Offset int32 `json:"offset"`
	}
	// Offsets are the positions the writer patches in its second pass.
	Offsets struct {
		TotalHeaderSize            int32 `json:"total_header_size"`
		NameOffset                 int32 `json:"name_offset"`
		ImportOffset               int32 `json:"import_offset"`
		ExportOffset               int32 `json:"export_offset"`
		DependsOffset              int32 `json:"depends_offset"`
		SoftPackageReferenceOffset int32 `json:"soft_package_reference_offset"`
		AssetRegistryDataOffset    int32 `json:"asset_registry_data_offset"`
		WorldTileInfoOffset        int32 `json:"world_tile_info_offset"`
		PreloadDependencyCount     int32 `json:"preload_dependency_count"`
		PreloadDependencyOffset    int32 `json:"preload_dependency_offset"`
		BulkDataStartOffset        int64 `json:"bulk_data_start_offset"`
	}
)

const (
	// Magic is stored big-endian at position 0.
	Magic uint32 = 0xC1832A9E
	// LegacyVersionWithoutUE3 is the only legacy version that omits the UE3
	// version field.
	LegacyVersionWithoutUE3 int32 = -4
	// LegacyUE3VersionVersioned is the UE3 version written by versioned
	// assets. Unversioned assets store 0.
	LegacyUE3VersionVersioned int32 = 864
)

// Unversioned reports whether the asset relies on an externally supplied
// engine version.
func (h *Header) Unversioned() bool {
	return h.FileVersion == uversion.VerUnknown
}
