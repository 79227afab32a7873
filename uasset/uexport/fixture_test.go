package uexport

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

// assemble lays fields out little-endian in the order given.
func assemble(t *testing.T, fields ...any) []byte {
	buf := bytes.Buffer{}
	for _, field := range fields {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, field))
	}
	return buf.Bytes()
}

func TestBaseExportFixture(t *testing.T) {
	settings := newSettings(uversion.UE4(18), "Actor", "Chest")
	bs := assemble(t,
		int32(-2),             // class index
		int32(0),              // super index
		int32(0),              // template index
		int32(1),              // outer index
		int32(7), int32(0),    // object name
		uint32(0x31),          // object flags
		int64(120),            // serial size
		int64(4096),           // serial offset
		int32(0),              // forced export
		int32(0),              // not for client
		int32(1),              // not for server
		[4]uint32{1, 2, 3, 4}, // package guid
		uint32(0),             // package flags
		int32(0),              // not always loaded for editor game
		int32(1),              // is asset
		int32(-1),             // first export dependency
		[4]int32{0, 1, 2, 0},  // dependency sizes
	)

	reader := uarchive.NewReader(bs, settings)
	base, err := ReadBaseExport(reader)
	require.NoError(t, err)
	assert.Equal(t, int64(len(bs)), reader.Position())

	assert.Equal(t, utypes.FromImport(1), base.ClassIndex)
	assert.Equal(t, utypes.NullIndex, base.SuperIndex)
	assert.Equal(t, utypes.NullIndex, base.TemplateIndex)
	assert.Equal(t, utypes.FromExport(0), base.OuterIndex)
	assert.True(t, base.ObjectName.Is("Chest"))
	assert.Equal(t, uint32(0x31), base.ObjectFlags)
	assert.Equal(t, int64(120), base.SerialSize)
	assert.Equal(t, int64(4096), base.SerialOffset)
	assert.False(t, base.ForcedExport)
	assert.False(t, base.NotForClient)
	assert.True(t, base.NotForServer)
	assert.Equal(t, utypes.NewGuid(1, 2, 3, 4), base.PackageGuid)
	assert.False(t, base.NotAlwaysLoadedForEditorGame)
	assert.True(t, base.IsAsset)
	assert.Equal(t, int32(-1), base.FirstExportDependencyOffset)
	assert.Equal(t, DependencySizes{0, 1, 2, 0}, base.DependencySizes)

	writer := uarchive.NewWriter(settings)
	require.NoError(t, WriteBaseExport(writer, &base))
	assert.Equal(t, bs, writer.Bytes())
}

func TestDataTableExportFixture(t *testing.T) {
	settings := dataTableSettings()
	base := newBase(settings, "DT_Items")
	bs := assemble(t,
		// RowStruct: ObjectProperty pointing at the first import
		int32(7), int32(0), int32(8), int32(0), int32(4), int32(0), uint8(0), int32(-1),
		int32(0), int32(0), // None
		int32(0),           // zero before the rows
		int32(1),           // row count
		int32(9), int32(0), // Sword
		// F: BoolProperty true
		int32(10), int32(0), int32(11), int32(0), int32(0), int32(0), uint8(1), uint8(0),
		// Damage: IntProperty 12
		int32(12), int32(0), int32(13), int32(0), int32(4), int32(0), uint8(0), int32(12),
		int32(0), int32(0), // None
	)
	base.SerialSize = int64(len(bs))

	decoded, err := Decode(uarchive.NewReader(bs, settings), base, Context{End: int64(len(bs))})
	require.NoError(t, err)
	require.NoError(t, decoded.Fallback)
	table, ok := decoded.Export.(*DataTableExport)
	require.True(t, ok)
	assert.Empty(t, table.Extras)

	require.Len(t, table.Properties, 1)
	rowStruct := table.Properties[0].(*uproperty.ObjectProperty)
	assert.True(t, rowStruct.Name.Is("RowStruct"))
	assert.Equal(t, utypes.FromImport(0), rowStruct.Value)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.True(t, row.Name.Is("Sword"))
	assert.True(t, row.StructType.Is("MyRow"))
	require.Len(t, row.Value, 2)
	assert.True(t, row.Value[0].(*uproperty.BoolProperty).Value)
	assert.True(t, row.Value[1].Base().Name.Is("Damage"))
	assert.Equal(t, int32(12), row.Value[1].(*uproperty.IntProperty).Value)

	writer := uarchive.NewWriter(settings)
	require.NoError(t, Encode(writer, table, Context{}))
	assert.Equal(t, bs, writer.Bytes())
}
