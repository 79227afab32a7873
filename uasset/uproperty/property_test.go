package uproperty

import (
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

func newSettings(names ...string) *uarchive.Settings {
	settings := uarchive.NewSettings(uversion.UE4(18))
	settings.Names.Intern(NameNone)
	for _, name := range names {
		settings.Names.Intern(name)
	}
	return settings
}

func roundTrip(t *testing.T, settings *uarchive.Settings, property Property) (Property, []byte) {
	writer := uarchive.NewWriter(settings)
	require.NoError(t, Write(writer, property, true))
	bs := writer.Bytes()

	reader := uarchive.NewReader(bs, settings)
	read, err := Read(reader, nil, true)
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, int64(len(bs)), reader.Position())
	return read, bs
}

func tagLength(bs []byte) int32 {
	return int32(binary.LittleEndian.Uint32(bs[16:20]))
}

func TestRegistry(t *testing.T) {
	for _, typeName := range RegisteredTypes() {
		assert.Equal(t, typeName, New(typeName).TypeName())
	}

	unknown, ok := New("SomethingProperty").(*UnknownProperty)
	require.True(t, ok)
	assert.Equal(t, "SomethingProperty", unknown.TypeName())
}

func TestIntProperty(t *testing.T) {
	settings := newSettings("Health", "IntProperty")
	property := &IntProperty{
		Header: Header{Name: settings.Names.Name("Health"), DuplicationIndex: 1},
		Value:  42,
	}

	read, bs := roundTrip(t, settings, property)
	// name, type, length, duplication index, guid flag, value
	assert.Len(t, bs, 8+8+4+4+1+4)
	assert.Equal(t, int32(4), tagLength(bs))

	intProperty, ok := read.(*IntProperty)
	require.True(t, ok)
	assert.Equal(t, int32(42), intProperty.Value)
	assert.Equal(t, int32(1), intProperty.DuplicationIndex)
	assert.True(t, intProperty.Name.Is("Health"))
	assert.Nil(t, intProperty.PropertyGuid)
}

func TestBoolProperty(t *testing.T) {
	settings := newSettings("bEnabled", "BoolProperty")
	guid := utypes.NewGuid(1, 2, 3, 4)
	property := &BoolProperty{
		Header: Header{Name: settings.Names.Name("bEnabled"), PropertyGuid: &guid},
		Value:  true,
	}

	read, bs := roundTrip(t, settings, property)
	assert.Equal(t, int32(0), tagLength(bs))
	boolProperty, ok := read.(*BoolProperty)
	require.True(t, ok)
	assert.True(t, boolProperty.Value)
	require.NotNil(t, boolProperty.PropertyGuid)
	assert.Equal(t, guid, *boolProperty.PropertyGuid)
}

func TestReadAll(t *testing.T) {
	settings := newSettings("A", "B", "StrProperty", "FloatProperty")
	properties := []Property{
		&StrProperty{Header: Header{Name: settings.Names.Name("A")}, Value: "Größe"},
		&FloatProperty{Header: Header{Name: settings.Names.Name("B")}, Value: 1.5},
	}

	writer := uarchive.NewWriter(settings)
	require.NoError(t, WriteAll(writer, properties))

	read, err := ReadAll(uarchive.NewReader(writer.Bytes(), settings), nil)
	require.NoError(t, err)
	require.Len(t, read, 2)
	assert.Equal(t, "Größe", read[0].(*StrProperty).Value)
	assert.Equal(t, float32(1.5), read[1].(*FloatProperty).Value)
}

func TestUnknownProperty(t *testing.T) {
	settings := newSettings("Blob", "MysteryProperty")
	property := &UnknownProperty{
		Header:         Header{Name: settings.Names.Name("Blob")},
		SerializedType: "MysteryProperty",
		Value:          []byte{1, 2, 3},
	}

	read, bs := roundTrip(t, settings, property)
	assert.Equal(t, int32(3), tagLength(bs))
	unknown, ok := read.(*UnknownProperty)
	require.True(t, ok)
	assert.Equal(t, "MysteryProperty", unknown.SerializedType)
	assert.Equal(t, []byte{1, 2, 3}, unknown.Value)
}

func TestBytePropertyLength(t *testing.T) {
	settings := newSettings("Level")

	property, err := Decode(
		uarchive.NewReader([]byte{7}, settings),
		"ByteProperty",
		uname.Dummy("0"),
		Context{Length: 3, FallbackLength: 1},
		0,
	)
	require.NoError(t, err)
	byteProperty := property.(*ByteProperty)
	assert.False(t, byteProperty.IsName)
	assert.Equal(t, uint8(7), byteProperty.Byte)

	property, err = Decode(
		uarchive.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0}, settings),
		"ByteProperty",
		uname.Dummy("0"),
		Context{Length: 8},
		0,
	)
	require.NoError(t, err)
	byteProperty = property.(*ByteProperty)
	assert.True(t, byteProperty.IsName)
	assert.True(t, byteProperty.EnumValue.Is("Level"))

	_, err = Decode(
		uarchive.NewReader([]byte{0, 0, 0, 0, 0}, settings),
		"ByteProperty",
		uname.Dummy("0"),
		Context{Length: 5, FallbackLength: 5},
		0,
	)
	var invalid uerr.ErrInvalidFile
	assert.True(t, errors.As(err, &invalid))
}

func TestStructProperty(t *testing.T) {
	settings := newSettings("Stats", "Speed", "StructProperty", "FloatProperty", "CharacterStats")
	property := &StructProperty{
		Header:        Header{Name: settings.Names.Name("Stats")},
		StructType:    settings.Names.Name("CharacterStats"),
		SerializeNone: true,
		Value: []Property{
			&FloatProperty{Header: Header{Name: settings.Names.Name("Speed")}, Value: 600},
		},
	}

	read, _ := roundTrip(t, settings, property)
	structProperty, ok := read.(*StructProperty)
	require.True(t, ok)
	assert.True(t, structProperty.StructType.Is("CharacterStats"))
	assert.True(t, structProperty.SerializeNone)
	speed, ok := structProperty.Find("Speed")
	require.True(t, ok)
	assert.Equal(t, float32(600), speed.(*FloatProperty).Value)

	_, ok = structProperty.Find("Missing")
	assert.False(t, ok)
}

func TestStructPropertyCustom(t *testing.T) {
	settings := newSettings("Location", "StructProperty", "Vector")
	property := &StructProperty{
		Header:     Header{Name: settings.Names.Name("Location")},
		StructType: settings.Names.Name("Vector"),
		Value:      []Property{&VectorProperty{Value: Vector{X: 1, Y: 2, Z: 3}}},
	}

	read, bs := roundTrip(t, settings, property)
	assert.Equal(t, int32(12), tagLength(bs))
	structProperty := read.(*StructProperty)
	require.Len(t, structProperty.Value, 1)
	assert.Equal(t, Vector{X: 1, Y: 2, Z: 3}, structProperty.Value[0].(*VectorProperty).Value)
}

func TestStructPropertyLengthMismatch(t *testing.T) {
	settings := newSettings("Location", "StructProperty", "Vector")
	property := &StructProperty{
		Header:     Header{Name: settings.Names.Name("Location")},
		StructType: settings.Names.Name("Vector"),
		Value: []Property{
			&UnknownProperty{SerializedType: "Vector", Value: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		},
	}

	read, bs := roundTrip(t, settings, property)
	assert.Equal(t, int32(8), tagLength(bs))
	structProperty := read.(*StructProperty)
	require.Len(t, structProperty.Value, 1)
	unknown, ok := structProperty.Value[0].(*UnknownProperty)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, unknown.Value)

	writer := uarchive.NewWriter(settings)
	require.NoError(t, Write(writer, structProperty, true))
	assert.Equal(t, bs, writer.Bytes())
}

func TestArrayPropertyInnerTag(t *testing.T) {
	settings := newSettings("Points", "ArrayProperty", "StructProperty", "Vector")
	property := &ArrayProperty{
		Header:    Header{Name: settings.Names.Name("Points")},
		ArrayType: TypeStructProperty,
		Value: []Property{
			&StructProperty{
				Header:     Header{Name: settings.Names.Name("Points")},
				StructType: settings.Names.Name("Vector"),
				Value:      []Property{&VectorProperty{Value: Vector{X: 4, Y: 5, Z: 6}}},
			},
		},
	}

	read, bs := roundTrip(t, settings, property)
	// count, inner name, inner type, inner length, struct type, struct guid,
	// guid flag, one vector
	assert.Equal(t, int32(4+8+8+8+8+16+1+12), tagLength(bs))
	assert.Equal(t, uint64(12), binary.LittleEndian.Uint64(bs[53:61]))

	arrayProperty := read.(*ArrayProperty)
	require.NotNil(t, arrayProperty.InnerTag)
	assert.True(t, arrayProperty.InnerTag.StructType.Is("Vector"))
	require.Len(t, arrayProperty.Value, 1)
	element := arrayProperty.Value[0].(*StructProperty)
	assert.Equal(t, Vector{X: 4, Y: 5, Z: 6}, element.Value[0].(*VectorProperty).Value)
}

func TestArrayPropertyScalars(t *testing.T) {
	settings := newSettings("Scores", "ArrayProperty", "IntProperty")
	property := &ArrayProperty{
		Header:    Header{Name: settings.Names.Name("Scores")},
		ArrayType: "IntProperty",
		Value: []Property{
			&IntProperty{Header: Header{Name: uname.Dummy("0")}, Value: 10},
			&IntProperty{Header: Header{Name: uname.Dummy("1")}, Value: 20},
		},
	}

	read, bs := roundTrip(t, settings, property)
	assert.Equal(t, int32(4+4+4), tagLength(bs))
	arrayProperty := read.(*ArrayProperty)
	require.Len(t, arrayProperty.Value, 2)
	assert.Equal(t, int32(20), arrayProperty.Value[1].(*IntProperty).Value)
	assert.True(t, arrayProperty.Value[1].Base().Name.Is("1"))
}

func TestSetProperty(t *testing.T) {
	settings := newSettings("Tags", "SetProperty", "NameProperty", "Fire", "Ice")
	property := &SetProperty{
		Header:      Header{Name: settings.Names.Name("Tags")},
		ElementType: "NameProperty",
		Items: ArrayProperty{
			Value: []Property{
				&NameProperty{Value: settings.Names.Name("Fire")},
				&NameProperty{Value: settings.Names.Name("Ice")},
			},
		},
	}

	read, _ := roundTrip(t, settings, property)
	setProperty := read.(*SetProperty)
	assert.Empty(t, setProperty.RemovedItems.Value)
	require.Len(t, setProperty.Items.Value, 2)
	assert.True(t, setProperty.Items.Value[1].(*NameProperty).Value.Is("Ice"))
}

func TestMapPropertyStructOverride(t *testing.T) {
	settings := newSettings("PlayerCharacterIDs", "MapProperty", "StructProperty", "IntProperty")
	guid := utypes.NewGuid(9, 8, 7, 6)
	property := &MapProperty{
		Header:    Header{Name: settings.Names.Name("PlayerCharacterIDs")},
		KeyType:   TypeStructProperty,
		ValueType: "IntProperty",
		Entries: []MapEntry{
			{
				Key: &StructProperty{
					StructType: uname.Dummy("Guid"),
					Value:      []Property{&GuidProperty{Value: guid}},
				},
				Value: &IntProperty{Value: 5},
			},
		},
	}

	read, bs := roundTrip(t, settings, property)
	assert.Equal(t, int32(4+4+16+4), tagLength(bs))
	mapProperty := read.(*MapProperty)
	require.Len(t, mapProperty.Entries, 1)
	key := mapProperty.Entries[0].Key.(*StructProperty)
	assert.True(t, key.StructType.Is("Guid"))
	assert.Equal(t, guid, key.Value[0].(*GuidProperty).Value)
	assert.Equal(t, int32(5), mapProperty.Entries[0].Value.(*IntProperty).Value)
}

func TestTextProperty(t *testing.T) {
	settings := newSettings("Title", "TextProperty", "ST_Menu")
	cultureInvariant := "Start"
	tableID := settings.Names.Name("ST_Menu")

	cases := []*TextProperty{
		{
			HistoryType:            TextHistoryBase,
			Namespace:              "Menu",
			Value:                  "Start",
			CultureInvariantString: &cultureInvariant,
		},
		{
			HistoryType: TextHistoryStringTableEntry,
			TableID:     &tableID,
			Value:       "StartKey",
		},
		{
			HistoryType: TextHistoryNone,
			Flags:       2,
		},
	}
	for _, property := range cases {
		property.Name = settings.Names.Name("Title")
		read, _ := roundTrip(t, settings, property)
		textProperty := read.(*TextProperty)
		assert.Equal(t, property.HistoryType, textProperty.HistoryType)
		assert.Equal(t, property.Flags, textProperty.Flags)
		assert.Equal(t, property.Namespace, textProperty.Namespace)
		assert.Equal(t, property.Value, textProperty.Value)
		assert.Equal(t, property.CultureInvariantString, textProperty.CultureInvariantString)
	}

	// flags, then an unsupported history type
	_, err := Decode(
		uarchive.NewReader([]byte{0, 0, 0, 0, 5}, settings),
		"TextProperty",
		uname.Dummy("Title"),
		Context{},
		0,
	)
	var invalid uerr.ErrInvalidFile
	assert.True(t, errors.As(err, &invalid))
}

func TestWorldTileInfo(t *testing.T) {
	settings := newSettings()
	distance := int32(5000)
	enabled := true
	hide := false
	parent := "/Game/Maps/Persistent"
	zOrder := int32(3)
	info := &WorldTileInfo{
		Position: [3]int32{100, -200, 0},
		Bounds: Box{
			Min:     Vector{X: -1, Y: -1, Z: -1},
			Max:     Vector{X: 1, Y: 1, Z: 1},
			IsValid: true,
		},
		Layer: WorldTileLayer{
			Name:                     "Terrain",
			Reserved1:                IntPoint{X: 1, Y: 2},
			StreamingDistance:        &distance,
			DistanceStreamingEnabled: &enabled,
		},
		HideInTileView:        &hide,
		ParentTilePackageName: &parent,
		LODList: []WorldTileLODInfo{
			{RelativeStreamingDistance: 10000, Reserved0: 0.5, Reserved3: 7},
		},
		ZOrder: &zOrder,
	}

	writer := uarchive.NewWriter(settings)
	require.NoError(t, WriteWorldTileInfo(writer, info))

	read, err := ReadWorldTileInfo(uarchive.NewReader(writer.Bytes(), settings))
	require.NoError(t, err)
	assert.Equal(t, info, read)

	info.ZOrder = nil
	err = WriteWorldTileInfo(uarchive.NewWriter(settings), info)
	var noData uerr.ErrNoData
	assert.True(t, errors.As(err, &noData))
}
