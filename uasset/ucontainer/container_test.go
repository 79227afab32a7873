package ucontainer

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uexport"
	"github.com/thanhnguyen2187/asset-savior/uasset/uheader"
	"github.com/thanhnguyen2187/asset-savior/uasset/uindex"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

type ContainerTestSuite struct {
	R *require.Assertions
	suite.Suite
}

func TestContainer(t *testing.T) {
	suite.Run(t, new(ContainerTestSuite))
}

func (suite *ContainerTestSuite) SetupTest() {
	suite.R = suite.Require()
}

// build creates a package with a data table, an actor default object and
// any extra exports.
func (suite *ContainerTestSuite) build(eventDriven bool, extra ...uexport.Export) *Container {
	c := New(uversion.UE4(18), eventDriven)
	for _, name := range []string{
		"None", "/Script/CoreUObject", "/Script/Engine", "Package", "Class", "ScriptStruct",
		"DataTable", "MyRow", "Actor", "DT_Items", "Default__Actor", "Broken",
		"RowStruct", "ObjectProperty", "Sword", "F", "BoolProperty", "Damage", "IntProperty", "Health",
	} {
		c.Names().Intern(name)
	}
	n := c.Names().Name

	engine := c.AddImport(uindex.Import{ClassPackage: n("/Script/CoreUObject"), ClassName: n("Package"), ObjectName: n("/Script/Engine")})
	dataTable := c.AddImport(uindex.Import{ClassPackage: n("/Script/CoreUObject"), ClassName: n("Class"), OuterIndex: engine, ObjectName: n("DataTable")})
	myRow := c.AddImport(uindex.Import{ClassPackage: n("/Script/CoreUObject"), ClassName: n("ScriptStruct"), OuterIndex: engine, ObjectName: n("MyRow")})
	actor := c.AddImport(uindex.Import{ClassPackage: n("/Script/CoreUObject"), ClassName: n("Class"), OuterIndex: engine, ObjectName: n("Actor")})

	c.AddExport(&uexport.DataTableExport{
		NormalExport: uexport.NormalExport{
			BaseExport: uexport.BaseExport{
				ClassIndex:   dataTable,
				ObjectName:   n("DT_Items"),
				ObjectFlags:  0x31,
				IsAsset:      true,
				Dependencies: uexport.Dependencies{CreateBeforeCreate: []utypes.PackageIndex{dataTable}},
			},
			Properties: []uproperty.Property{
				&uproperty.ObjectProperty{Header: uproperty.Header{Name: n("RowStruct")}, Value: myRow},
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
	})
	c.AddExport(&uexport.NormalExport{
		BaseExport: uexport.BaseExport{
			ClassIndex:  actor,
			ObjectName:  n("Default__Actor"),
			ObjectFlags: 0x08,
			Dependencies: uexport.Dependencies{
				SerializationBeforeSerialization: []utypes.PackageIndex{actor},
				CreateBeforeSerialization:        []utypes.PackageIndex{utypes.FromExport(0)},
			},
		},
		Properties: []uproperty.Property{
			&uproperty.IntProperty{Header: uproperty.Header{Name: n("Health")}, Value: 100},
		},
		Extras: []byte{0, 0, 0, 0},
	})
	for _, export := range extra {
		c.AddExport(export)
	}

	c.DependsMap = [][]int32{{}, {1}}
	c.SoftPackageReferences = []string{"/Game/Maps/Arena"}
	c.Header.Offsets.AssetRegistryDataOffset = 1
	c.AssetRegistryData = []byte{0, 0, 0, 0}
	return c
}

func (suite *ContainerTestSuite) write(c *Container) (asset []byte, bulk []byte) {
	assetBuffer := bytes.Buffer{}
	if !c.EventDriven() {
		suite.R.NoError(c.Write(&assetBuffer, nil))
		return assetBuffer.Bytes(), nil
	}
	bulkBuffer := bytes.Buffer{}
	suite.R.NoError(c.Write(&assetBuffer, &bulkBuffer))
	return assetBuffer.Bytes(), bulkBuffer.Bytes()
}

func (suite *ContainerTestSuite) open(asset []byte, bulk []byte, opts ...Option) *Container {
	var c *Container
	var err error
	if bulk != nil {
		c, err = Open(bytes.NewReader(asset), bytes.NewReader(bulk), uversion.EngineUnknown, opts...)
	} else {
		c, err = Open(bytes.NewReader(asset), nil, uversion.EngineUnknown, opts...)
	}
	suite.R.NoError(err)
	return c
}

func (suite *ContainerTestSuite) TestRoundTrip() {
	asset, _ := suite.write(suite.build(false))
	c := suite.open(asset, nil)

	suite.R.Empty(c.Fallbacks)
	suite.R.Len(c.Exports, 2)
	suite.R.IsType(&uexport.DataTableExport{}, c.Exports[0])
	suite.R.IsType(&uexport.NormalExport{}, c.Exports[1])
	suite.R.Equal([]byte{0, 0, 0, 0}, c.Exports[1].(*uexport.NormalExport).Extras)
	suite.R.Equal([][]int32{{}, {1}}, c.DependsMap)
	suite.R.Equal([]string{"/Game/Maps/Arena"}, c.SoftPackageReferences)
	suite.R.Equal([]byte{0, 0, 0, 0}, c.AssetRegistryData)
	suite.R.Len(c.Imports(), 4)

	offsets := c.Header.Offsets
	suite.R.Equal(int32(-1), offsets.PreloadDependencyCount)
	suite.R.Equal(int64(len(asset)-4), offsets.BulkDataStartOffset)
	suite.R.Equal(uheader.Magic, binary.BigEndian.Uint32(asset[len(asset)-4:]))
	for _, export := range c.Exports {
		suite.R.Equal(int32(-1), export.Base().FirstExportDependencyOffset)
	}
	first := c.Exports[0].Base()
	second := c.Exports[1].Base()
	suite.R.Equal(int64(offsets.TotalHeaderSize), first.SerialOffset)
	suite.R.Equal(second.SerialOffset, first.SerialOffset+first.SerialSize)
	suite.R.Equal(offsets.BulkDataStartOffset, second.SerialOffset+second.SerialSize)

	classType, err := c.ResolveClassName(first.ClassIndex)
	suite.R.NoError(err)
	suite.R.Equal("DataTable", classType)
	export, err := c.Export(utypes.FromExport(1))
	suite.R.NoError(err)
	suite.R.True(export.Base().ObjectName.Is("Default__Actor"))
	_, err = c.Export(utypes.FromExport(2))
	var invalidIndex uerr.ErrInvalidPackageIndex
	suite.R.True(errors.As(err, &invalidIndex))

	rewritten, _ := suite.write(c)
	suite.R.Equal(asset, rewritten)
}

func (suite *ContainerTestSuite) TestFindImport() {
	c := suite.build(false)
	n := c.Names().Name
	index, ok := c.FindImport(n("/Script/CoreUObject"), n("Class"), utypes.FromImport(0), n("Actor"))
	suite.R.True(ok)
	suite.R.Equal(utypes.FromImport(3), index)
	_, ok = c.FindImport(n("/Script/CoreUObject"), n("Class"), utypes.NullIndex, n("Actor"))
	suite.R.False(ok)
	index, ok = c.FindImportNoIndex(n("/Script/CoreUObject"), n("Class"), n("Actor"))
	suite.R.True(ok)
	suite.R.Equal(utypes.FromImport(3), index)
}

func (suite *ContainerTestSuite) TestDataTableEdit() {
	asset, _ := suite.write(suite.build(false))
	c := suite.open(asset, nil)

	table := c.Exports[0].(*uexport.DataTableExport)
	row, ok := table.Row("Sword")
	suite.R.True(ok)
	flag, ok := row.Find("F")
	suite.R.True(ok)
	flag.(*uproperty.BoolProperty).Value = false

	edited, _ := suite.write(c)
	suite.R.Len(edited, len(asset))
	// a bool lives in its tag, the edit flips that one byte
	var changed []int
	for i := range asset {
		if asset[i] != edited[i] {
			changed = append(changed, i)
		}
	}
	suite.R.Len(changed, 1)
	suite.R.Equal(byte(1), asset[changed[0]])
	suite.R.Equal(byte(0), edited[changed[0]])

	c = suite.open(edited, nil)
	row, ok = c.Exports[0].(*uexport.DataTableExport).Row("Sword")
	suite.R.True(ok)
	flag, ok = row.Find("F")
	suite.R.True(ok)
	suite.R.False(flag.(*uproperty.BoolProperty).Value)
}

func (suite *ContainerTestSuite) TestFallback() {
	builder := suite.build(false)
	n := builder.Names().Name
	broken := &uexport.RawExport{
		BaseExport: uexport.BaseExport{ClassIndex: utypes.FromImport(3), ObjectName: n("Broken")},
		// a property name index far outside the name table
		Data: []byte{0xFF, 0xFF, 0xFF, 0x7F, 0, 0, 0, 0},
	}
	builder.AddExport(broken)
	builder.DependsMap = append(builder.DependsMap, []int32{})
	asset, _ := suite.write(builder)

	logger, hook := logtest.NewNullLogger()
	c := suite.open(asset, nil, WithLogger(logger))
	suite.R.Len(c.Fallbacks, 1)
	suite.R.Error(c.Fallbacks[2])
	raw, ok := c.Exports[2].(*uexport.RawExport)
	suite.R.True(ok)
	suite.R.Equal(broken.Data, raw.Data)

	entry := hook.LastEntry()
	suite.R.NotNil(entry)
	suite.R.Equal(logrus.WarnLevel, entry.Level)
	suite.R.Equal("Actor", entry.Data["class"])
	suite.R.Equal(2, entry.Data["export"])

	rewritten, _ := suite.write(c)
	suite.R.Equal(asset, rewritten)
}

func (suite *ContainerTestSuite) TestEventDriven() {
	asset, bulk := suite.write(suite.build(true))
	suite.R.Equal(uheader.Magic, binary.BigEndian.Uint32(bulk[len(bulk)-4:]))

	c := suite.open(asset, bulk)
	suite.R.True(c.EventDriven())
	suite.R.Empty(c.Fallbacks)

	offsets := c.Header.Offsets
	suite.R.Equal(int32(3), offsets.PreloadDependencyCount)
	suite.R.Equal(int64(len(asset)+len(bulk)-4), offsets.BulkDataStartOffset)
	suite.R.Equal(int32(len(asset)), offsets.TotalHeaderSize)

	first := c.Exports[0].Base()
	second := c.Exports[1].Base()
	suite.R.Equal(int64(len(asset)), first.SerialOffset)
	suite.R.Equal(int32(0), first.FirstExportDependencyOffset)
	suite.R.Equal(int32(1), second.FirstExportDependencyOffset)
	suite.R.Equal(uexport.DependencySizes{0, 0, 0, 1}, first.DependencySizes)
	suite.R.Equal(uexport.DependencySizes{1, 1, 0, 0}, second.DependencySizes)
	suite.R.Equal([]utypes.PackageIndex{utypes.FromImport(1)}, first.Dependencies.CreateBeforeCreate)
	suite.R.Equal([]utypes.PackageIndex{utypes.FromImport(3)}, second.Dependencies.SerializationBeforeSerialization)
	suite.R.Equal([]utypes.PackageIndex{utypes.FromExport(0)}, second.Dependencies.CreateBeforeSerialization)
	suite.R.Empty(second.Dependencies.CreateBeforeCreate)

	rewrittenAsset, rewrittenBulk := suite.write(c)
	suite.R.Equal(asset, rewrittenAsset)
	suite.R.Equal(bulk, rewrittenBulk)
}

func (suite *ContainerTestSuite) TestBulkMismatch() {
	var noData uerr.ErrNoData

	err := suite.build(false).Write(&bytes.Buffer{}, &bytes.Buffer{})
	suite.R.True(errors.As(err, &noData))

	err = suite.build(true).Write(&bytes.Buffer{}, nil)
	suite.R.True(errors.As(err, &noData))
}

func (suite *ContainerTestSuite) TestInvalidFile() {
	var invalid uerr.ErrInvalidFile

	asset, _ := suite.write(suite.build(false))
	asset[0] = 0
	_, err := Open(bytes.NewReader(asset), nil, uversion.UE4(18))
	suite.R.True(errors.As(err, &invalid))

	c := suite.build(false)
	c.Header.PackageFlags |= 0x00000008
	asset, _ = suite.write(c)
	_, err = Open(bytes.NewReader(asset), nil, uversion.UE4(18))
	suite.R.True(errors.As(err, &invalid))
}

func (suite *ContainerTestSuite) TestUnversioned() {
	c := suite.build(false)
	c.Header.FileVersion = uversion.VerUnknown
	asset, _ := suite.write(c)

	_, err := Open(bytes.NewReader(asset), nil, uversion.EngineUnknown)
	var noData uerr.ErrNoData
	suite.R.True(errors.As(err, &noData))

	opened, err := Open(bytes.NewReader(asset), nil, uversion.UE4(18))
	suite.R.NoError(err)
	suite.R.True(opened.Header.Unversioned())
	suite.R.Len(opened.Exports, 2)
	suite.R.Empty(opened.Fallbacks)
}
