package uheader

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

const markerCompressionFlags uint32 = 0x0BADC0DE

func newHeader() *Header {
	return &Header{
		LegacyFileVersion:   -7,
		LegacyUE3Version:    LegacyUE3VersionVersioned,
		FileVersion:         uversion.UE4(18).ObjectVersion(),
		CustomVersionFormat: uversion.CustomVersionFormatOptimized,
		CustomVersions: uversion.CustomVersionList{
			{Guid: uversion.CoreObjectVersion, Version: 2},
			{Guid: uversion.FrameworkObjectVersion, Version: 28},
		},
		FolderName:          "None",
		PackageFlags:        uarchive.PkgCooked | uarchive.PkgFilterEditorOnly,
		NameCount:           3,
		ExportCount:         1,
		ImportCount:         2,
		SoftPackageRefCount: 0,
		PackageGuid:         utypes.NewGuid(1, 2, 3, 4),
		Generations:         []utypes.GenerationInfo{{ExportCount: 1, NameCount: 3}},
		RecordedEngine:      utypes.EngineVersionRecord{Major: 4, Minor: 18, Patch: 3, Build: 3869320, Branch: "++UE4+Release-4.18"},
		CompatibleEngine:    utypes.EngineVersionRecord{Major: 4, Minor: 18, Build: 3709383, Branch: "++UE4+Release-4.18"},
		CompressionFlags:    markerCompressionFlags,
		PackageSource:       0x5E5E5E5E,
		ChunkIDs:            []int32{7},
	}
}

func newOffsets() Offsets {
	return Offsets{
		TotalHeaderSize:         1024,
		NameOffset:              193,
		ImportOffset:            260,
		ExportOffset:            400,
		DependsOffset:           504,
		AssetRegistryDataOffset: 508,
		WorldTileInfoOffset:     0,
		PreloadDependencyCount:  -1,
		PreloadDependencyOffset: 512,
		BulkDataStartOffset:     2044,
	}
}

func write(t *testing.T, settings *uarchive.Settings, h *Header) []byte {
	writer := uarchive.NewWriter(settings)
	require.NoError(t, Write(writer, h, h.Offsets))
	return writer.Bytes()
}

func TestRoundTrip(t *testing.T) {
	expected := newHeader()
	expected.Offsets = newOffsets()
	bs := write(t, uarchive.NewSettings(uversion.UE4(18)), expected)

	settings := uarchive.NewSettings(uversion.EngineUnknown)
	reader := uarchive.NewReader(bs, settings)
	actual, err := Read(reader)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Equal(t, reader.Len(), reader.Position())

	assert.Equal(t, uversion.UE4(18).ObjectVersion(), settings.ObjectVersion)
	assert.Equal(t, expected.CustomVersions, settings.CustomVersions)
	assert.Equal(t, expected.PackageFlags, settings.PackageFlags)
	assert.Equal(t, uversion.UE4(18), settings.Engine())

	rewritten := write(t, settings, actual)
	assert.Equal(t, bs, rewritten)
}

func TestUnversioned(t *testing.T) {
	h := newHeader()
	h.FileVersion = uversion.VerUnknown
	h.LegacyUE3Version = 0
	h.CustomVersions = uversion.CustomVersionList{}
	bs := write(t, uarchive.NewSettings(uversion.UE4(18)), h)

	_, err := Read(uarchive.NewReader(bs, uarchive.NewSettings(uversion.EngineUnknown)))
	var noData uerr.ErrNoData
	assert.True(t, errors.As(err, &noData))

	settings := uarchive.NewSettings(uversion.UE4(18))
	read, err := Read(uarchive.NewReader(bs, settings))
	require.NoError(t, err)
	assert.True(t, read.Unversioned())
	assert.Empty(t, read.CustomVersions)
	assert.Equal(t, uversion.UE4(18).ObjectVersion(), settings.ObjectVersion)
	assert.Equal(t, uversion.DefaultCustomVersions(uversion.UE4(18)), settings.CustomVersions)
}

func TestLegacyVersionWithoutUE3(t *testing.T) {
	h := newHeader()
	h.LegacyFileVersion = LegacyVersionWithoutUE3
	h.LegacyUE3Version = 0
	h.CustomVersionFormat = uversion.CustomVersionFormatGuids
	h.CustomVersions[0].FriendlyName = "FCoreObjectVersion"
	h.CustomVersions[1].FriendlyName = "FFrameworkObjectVersion"

	settings := uarchive.NewSettings(uversion.UE4(18))
	bs := write(t, settings, h)
	withUE3 := write(t, settings, newHeader())
	// no UE3 version, two friendly names, one texture allocation count
	friendlyNames := 4 + len("FCoreObjectVersion") + 1 + 4 + len("FFrameworkObjectVersion") + 1
	assert.Equal(t, len(withUE3)-4+friendlyNames+4, len(bs))

	read, err := Read(uarchive.NewReader(bs, uarchive.NewSettings(uversion.EngineUnknown)))
	require.NoError(t, err)
	assert.Equal(t, h, read)
}

func TestBadMagic(t *testing.T) {
	bs := write(t, uarchive.NewSettings(uversion.UE4(18)), newHeader())
	bs[0] = 0x00
	_, err := Read(uarchive.NewReader(bs, uarchive.NewSettings(uversion.UE4(18))))
	var invalid uerr.ErrInvalidFile
	assert.True(t, errors.As(err, &invalid))
}

func TestUnknownPackageFlags(t *testing.T) {
	h := newHeader()
	h.PackageFlags |= 0x00000008
	bs := write(t, uarchive.NewSettings(uversion.UE4(18)), h)
	_, err := Read(uarchive.NewReader(bs, uarchive.NewSettings(uversion.UE4(18))))
	var invalid uerr.ErrInvalidFile
	assert.True(t, errors.As(err, &invalid))
}

func TestNonZeroCounts(t *testing.T) {
	marker := make([]byte, 4)
	binary.LittleEndian.PutUint32(marker, markerCompressionFlags)

	// compressed chunks follow the flags; additional packages to cook follow
	// the package source
	for _, offset := range []int{4, 12} {
		bs := write(t, uarchive.NewSettings(uversion.UE4(18)), newHeader())
		at := bytes.Index(bs, marker)
		require.Positive(t, at)
		bs[at+offset] = 1

		_, err := Read(uarchive.NewReader(bs, uarchive.NewSettings(uversion.UE4(18))))
		var invalid uerr.ErrInvalidFile
		assert.True(t, errors.As(err, &invalid), "offset %d", offset)
	}
}

func TestLegacyChunkID(t *testing.T) {
	settings := uarchive.NewSettings(uversion.EngineUnknown)
	settings.ObjectVersion = 300

	h := newHeader()
	h.FileVersion = 300
	h.ChunkIDs = nil
	bs := write(t, settings, h)

	read, err := Read(uarchive.NewReader(bs, uarchive.NewSettings(uversion.EngineUnknown)))
	require.NoError(t, err)
	// the single legacy chunk id is pushed into an empty list
	assert.Equal(t, []int32{0}, read.ChunkIDs)
	assert.Equal(t, read.RecordedEngine, read.CompatibleEngine)
	assert.Equal(t, utypes.EngineVersionRecord{Major: 4, Build: h.RecordedEngine.Build}, read.RecordedEngine)
}

func TestEnumCustomVersions(t *testing.T) {
	settings := uarchive.NewSettings(uversion.UE4(18))
	_, err := readCustomVersions(uarchive.NewReader([]byte{0, 0, 0, 0}, settings), uversion.CustomVersionFormatEnums)
	var invalid uerr.ErrInvalidFile
	assert.True(t, errors.As(err, &invalid))

	err = writeCustomVersions(uarchive.NewWriter(settings), uversion.CustomVersionFormatEnums, nil)
	assert.True(t, errors.As(err, &invalid))
}
