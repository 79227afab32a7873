package uexport

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/asset-savior/ds"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uindex"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

// newSettings prepares a session whose second import is the class of the
// exports under test and whose first import is the struct "MyRow".
func newSettings(engine uversion.EngineVersion, classType string, names ...string) *uarchive.Settings {
	settings := uarchive.NewSettings(engine)
	base := []string{"None", "/Script/CoreUObject", "ScriptStruct", "MyRow", "/Script/Engine", "Class", classType}
	for _, name := range append(base, names...) {
		settings.Names.Intern(name)
	}
	n := settings.Names.Name
	settings.Resolver.Imports = []uindex.Import{
		{ClassPackage: n("/Script/CoreUObject"), ClassName: n("ScriptStruct"), OuterIndex: utypes.NullIndex, ObjectName: n("MyRow")},
		{ClassPackage: n("/Script/Engine"), ClassName: n("Class"), OuterIndex: utypes.NullIndex, ObjectName: n(classType)},
	}
	return settings
}

func newBase(settings *uarchive.Settings, objectName string) BaseExport {
	settings.Names.Intern(objectName)
	return BaseExport{
		ClassIndex: utypes.FromImport(1),
		ObjectName: settings.Names.Name(objectName),
	}
}

func roundTrip(t *testing.T, settings *uarchive.Settings, export Export) (Decoded, []byte) {
	writer := uarchive.NewWriter(settings)
	require.NoError(t, Encode(writer, export, Context{}))
	bs := writer.Bytes()

	base := *export.Base()
	base.SerialSize = int64(len(bs))
	decoded, err := Decode(uarchive.NewReader(bs, settings), base, Context{End: int64(len(bs))})
	require.NoError(t, err)
	require.NoError(t, decoded.Fallback)

	writer = uarchive.NewWriter(settings)
	require.NoError(t, Encode(writer, decoded.Export, Context{}))
	assert.Equal(t, bs, writer.Bytes())
	return decoded, bs
}

func newDataTable(settings *uarchive.Settings) *DataTableExport {
	n := settings.Names.Name
	return &DataTableExport{
		NormalExport: NormalExport{
			BaseExport: newBase(settings, "DT_Items"),
			Properties: []uproperty.Property{
				&uproperty.ObjectProperty{
					Header: uproperty.Header{Name: n("RowStruct")},
					Value:  utypes.FromImport(0),
				},
			},
		},
		Rows: []*uproperty.StructProperty{
			{
				Header:        uproperty.Header{Name: n("Sword")},
				StructType:    n("MyRow"),
				SerializeNone: true,
				Value: []uproperty.Property{
					&uproperty.BoolProperty{Header: uproperty.Header{Name: n("F")}, Value: true},
					&uproperty.IntProperty{Header: uproperty.Header{Name: n("Damage")}, Value: 12},
				},
			},
		},
	}
}

func dataTableSettings() *uarchive.Settings {
	return newSettings(
		uversion.UE4(18), "DataTable",
		"RowStruct", "ObjectProperty", "Sword", "F", "BoolProperty", "Damage", "IntProperty",
	)
}

func TestDispatch(t *testing.T) {
	cases := map[string]Kind{
		"Level":                         KindLevel,
		"StringTable":                   KindStringTable,
		"GameStringTable":               KindStringTable,
		"Enum":                          KindEnum,
		"UserDefinedEnum":               KindEnum,
		"Function":                      KindFunction,
		"DataTable":                     KindDataTable,
		"CompositeDataTable":            KindDataTable,
		"BlueprintGeneratedClass":       KindClass,
		"WidgetBlueprintGeneratedClass": KindClass,
		"IntProperty":                   KindProperty,
		"Actor":                         KindNormal,
		"":                              KindNormal,
	}
	for classType, kind := range cases {
		assert.Equal(t, kind, Dispatch(classType), classType)
	}
	assert.Equal(t, "DataTable", KindDataTable.String())
}

func TestDataTableExport(t *testing.T) {
	settings := dataTableSettings()
	decoded, _ := roundTrip(t, settings, newDataTable(settings))

	assert.Equal(t, KindDataTable, decoded.Kind)
	table, ok := decoded.Export.(*DataTableExport)
	require.True(t, ok)
	assert.Empty(t, table.Extras)

	row, ok := table.Row("Sword")
	require.True(t, ok)
	assert.True(t, row.StructType.Is("MyRow"))
	flag, ok := row.Find("F")
	require.True(t, ok)
	assert.True(t, flag.(*uproperty.BoolProperty).Value)

	_, ok = table.Row("Shield")
	assert.False(t, ok)
}

func TestDecodeExtras(t *testing.T) {
	settings := dataTableSettings()
	writer := uarchive.NewWriter(settings)
	table := newDataTable(settings)
	require.NoError(t, Encode(writer, table, Context{}))
	require.NoError(t, writer.WriteBytes([]byte{0xAA, 0xBB, 0xCC}))
	bs := writer.Bytes()

	base := table.BaseExport
	base.SerialSize = int64(len(bs))
	decoded, err := Decode(uarchive.NewReader(bs, settings), base, Context{End: int64(len(bs))})
	require.NoError(t, err)
	require.NoError(t, decoded.Fallback)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, decoded.Export.(Normalized).Normal().Extras)

	writer = uarchive.NewWriter(settings)
	require.NoError(t, Encode(writer, decoded.Export, Context{}))
	assert.Equal(t, bs, writer.Bytes())
}

func TestDecodeFallback(t *testing.T) {
	settings := dataTableSettings()
	writer := uarchive.NewWriter(settings)
	table := newDataTable(settings)
	require.NoError(t, Encode(writer, table, Context{}))
	truncated := writer.Bytes()[:writer.Len()-6]

	base := table.BaseExport
	base.SerialSize = int64(len(truncated))
	decoded, err := Decode(uarchive.NewReader(truncated, settings), base, Context{End: int64(len(truncated))})
	require.NoError(t, err)
	assert.Error(t, decoded.Fallback)
	assert.Equal(t, KindRaw, decoded.Kind)
	raw, ok := decoded.Export.(*RawExport)
	require.True(t, ok)
	assert.Equal(t, truncated, raw.Data)

	// the payload reads past the region the next export starts at
	base.SerialSize = 4
	bs := writer.Bytes()
	decoded, err = Decode(uarchive.NewReader(bs, settings), base, Context{End: 4})
	require.NoError(t, err)
	var invalid uerr.ErrInvalidFile
	assert.True(t, errors.As(decoded.Fallback, &invalid))
	assert.Equal(t, bs[:4], decoded.Export.(*RawExport).Data)
}

func TestDecodeUnresolvedClass(t *testing.T) {
	settings := dataTableSettings()
	base := newBase(settings, "Orphan")
	base.ClassIndex = utypes.FromImport(7)
	base.SerialSize = 2

	decoded, err := Decode(uarchive.NewReader([]byte{1, 2}, settings), base, Context{End: 2})
	require.NoError(t, err)
	var invalidIndex uerr.ErrInvalidPackageIndex
	assert.True(t, errors.As(decoded.Fallback, &invalidIndex))
	assert.Equal(t, []byte{1, 2}, decoded.Export.(*RawExport).Data)
}

func TestUnversionedFallsBack(t *testing.T) {
	settings := dataTableSettings()
	writer := uarchive.NewWriter(settings)
	table := newDataTable(settings)
	require.NoError(t, Encode(writer, table, Context{}))
	bs := writer.Bytes()

	settings.PackageFlags |= uarchive.PkgUnversionedProperties
	base := table.BaseExport
	base.SerialSize = int64(len(bs))
	decoded, err := Decode(uarchive.NewReader(bs, settings), base, Context{End: int64(len(bs))})
	require.NoError(t, err)
	assert.Equal(t, KindRaw, decoded.Kind)
	assert.Error(t, decoded.Fallback)
}

func TestStringTableExport(t *testing.T) {
	settings := newSettings(uversion.UE4(18), "StringTable")
	export := &StringTableExport{
		NormalExport: NormalExport{BaseExport: newBase(settings, "ST_Menu")},
		Namespace:    "Menu",
		Entries: []StringTableEntry{
			{Key: "Start", Value: "Start game"},
			{Key: "Quit", Value: "Beenden (Größe)"},
		},
	}

	decoded, _ := roundTrip(t, settings, export)
	table := decoded.Export.(*StringTableExport)
	assert.Equal(t, "Menu", table.Namespace)
	assert.Equal(t, export.Entries, table.Entries)
}

func TestEnumExport(t *testing.T) {
	settings := newSettings(uversion.UE4(18), "UserDefinedEnum", "E_Color::Red", "E_Color::Blue")
	n := settings.Names.Name
	export := &EnumExport{
		NormalExport: NormalExport{BaseExport: newBase(settings, "E_Color")},
		Names: []EnumName{
			{Name: n("E_Color::Red"), Value: 0},
			{Name: n("E_Color::Blue"), Value: 4},
		},
		CppForm: CppFormEnumClass,
	}

	decoded, bs := roundTrip(t, settings, export)
	enum := decoded.Export.(*EnumExport)
	assert.Equal(t, CppFormEnumClass, enum.CppForm)
	require.Len(t, enum.Names, 2)
	assert.Equal(t, int64(4), enum.Names[1].Value)
	// terminator, zero, count, two names with 64-bit values, form
	assert.Len(t, bs, 8+4+4+2*(8+8)+1)
}

func TestClassExportOverrides(t *testing.T) {
	settings := newSettings(
		uversion.UE4(25), "BlueprintGeneratedClass",
		"MyMap", "MapProperty", "StructProperty", "IntProperty", "Key", "Value", "ExecuteUbergraph",
	)
	n := settings.Names.Name
	references := ds.NewLinkedHashMap[string, utypes.PackageIndex]()
	references.Put("struct", utypes.FromImport(0))
	cooked := true

	export := &ClassExport{
		StructExport: StructExport{
			NormalExport: NormalExport{BaseExport: newBase(settings, "BP_Chest_C")},
			Children:     []utypes.PackageIndex{utypes.FromExport(1)},
			LoadedProperties: []*FProperty{
				{
					SerializedType: n("MapProperty"),
					Name:           n("MyMap"),
					RepNotifyFunc:  n("None"),
					Children: []*FProperty{
						{SerializedType: n("StructProperty"), Name: n("Key"), RepNotifyFunc: n("None"), References: references},
						{SerializedType: n("IntProperty"), Name: n("Value"), RepNotifyFunc: n("None")},
					},
				},
			},
			ScriptBytecodeSize: 3,
			ScriptBytecodeRaw:  []byte{0x0B, 0x53, 0x00},
		},
		FuncMap: []FunctionMapEntry{
			{Name: n("ExecuteUbergraph"), Function: utypes.FromExport(2)},
		},
		ClassConfigName: n("None"),
		Terminator:      n("None"),
		Cooked:          &cooked,
	}

	decoded, _ := roundTrip(t, settings, export)
	assert.Equal(t, KindClass, decoded.Kind)
	class := decoded.Export.(*ClassExport)
	assert.Equal(t, []byte{0x0B, 0x53, 0x00}, class.ScriptBytecodeRaw)
	require.Len(t, class.LoadedProperties, 1)
	key, ok := class.LoadedProperties[0].Child("key")
	require.True(t, ok)
	index, ok := key.Reference("struct")
	require.True(t, ok)
	assert.Equal(t, utypes.FromImport(0), index)

	require.Equal(t, 1, decoded.Overrides.Len())
	structType, ok := decoded.Overrides.MapKeyStructTypes.Get("MyMap")
	require.True(t, ok)
	assert.Equal(t, "MyRow", structType)

	decoded.Overrides.Apply(settings)
	structType, ok = settings.MapKeyStructTypes.Get("MyMap")
	assert.True(t, ok)
	assert.Equal(t, "MyRow", structType)
}

func TestPropertyExport(t *testing.T) {
	settings := newSettings(uversion.UE4(18), "ArrayProperty")
	references := ds.NewLinkedHashMap[string, utypes.PackageIndex]()
	references.Put("inner", utypes.FromExport(3))
	next := utypes.NullIndex
	export := &PropertyExport{
		NormalExport:   NormalExport{BaseExport: newBase(settings, "Inventory")},
		SerializedType: "ArrayProperty",
		Property: UProperty{
			Field:         UField{Next: &next},
			ArrayDim:      1,
			PropertyFlags: 0x0010000000000005,
			RepNotifyFunc: settings.Names.Name("None"),
			References:    references,
		},
	}

	decoded, _ := roundTrip(t, settings, export)
	property := decoded.Export.(*PropertyExport)
	assert.Equal(t, "ArrayProperty", property.SerializedType)
	inner, ok := property.Property.References.Get("inner")
	require.True(t, ok)
	assert.Equal(t, utypes.FromExport(3), inner)
	// no replication condition before the release version that added it
	assert.Nil(t, property.Property.BlueprintReplicationCondition)
	require.NotNil(t, property.Property.Field.Next)

	export.Property.Field = UField{}
	err := Encode(uarchive.NewWriter(settings), export, Context{})
	var noData uerr.ErrNoData
	assert.True(t, errors.As(err, &noData))
}

func TestBaseExport(t *testing.T) {
	settings := newSettings(uversion.UE4(18), "Actor")
	base := newBase(settings, "Chest")
	base.OuterIndex = utypes.FromExport(0)
	base.SerialSize = 120
	base.SerialOffset = 4096
	base.NotForServer = true
	base.PackageGuid = utypes.NewGuid(1, 2, 3, 4)
	base.IsAsset = true
	base.FirstExportDependencyOffset = -1
	base.DependencySizes = DependencySizes{0, 1, 2, 0}

	writer := uarchive.NewWriter(settings)
	require.NoError(t, WriteBaseExport(writer, &base))
	read, err := ReadBaseExport(uarchive.NewReader(writer.Bytes(), settings))
	require.NoError(t, err)
	assert.Equal(t, base, read)

	dependencies := Dependencies{
		CreateBeforeSerialization: []utypes.PackageIndex{utypes.FromImport(0)},
		SerializationBeforeCreate: []utypes.PackageIndex{utypes.FromImport(1), utypes.FromExport(0)},
	}
	assert.Equal(t, base.DependencySizes, dependencies.Sizes())
	assert.Equal(t, int32(3), dependencies.Count())

	writer = uarchive.NewWriter(settings)
	require.NoError(t, WriteDependencies(writer, &dependencies))
	readDependencies, err := ReadDependencies(uarchive.NewReader(writer.Bytes(), settings), dependencies.Sizes())
	require.NoError(t, err)
	assert.Equal(t, dependencies.SerializationBeforeCreate, readDependencies.SerializationBeforeCreate)
	assert.Empty(t, readDependencies.CreateBeforeCreate)
}
