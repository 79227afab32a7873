package uindex

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

func newResolver() (*uname.Table, *Resolver) {
	table := uname.NewTable()
	resolver := &Resolver{
		Imports: []Import{
			{
				ClassPackage: table.Name("/Script/CoreUObject"),
				ClassName:    table.Name("Package"),
				OuterIndex:   utypes.NullIndex,
				ObjectName:   table.Name("/Script/Engine"),
			},
			{
				ClassPackage: table.Name("/Script/CoreUObject"),
				ClassName:    table.Name("Class"),
				OuterIndex:   utypes.FromImport(0),
				ObjectName:   table.Name("DataTable"),
			},
		},
		ExportNames: []uname.Name{table.Name("DT_Items")},
	}
	return table, resolver
}

func TestResolver_ResolveClassName(t *testing.T) {
	_, resolver := newResolver()

	className, err := resolver.ResolveClassName(-2)
	require.NoError(t, err)
	assert.Equal(t, "DataTable", className)

	className, err = resolver.ResolveClassName(1)
	require.NoError(t, err)
	assert.Equal(t, "DT_Items", className)

	_, err = resolver.ResolveClassName(utypes.NullIndex)
	var indexErr uerr.ErrInvalidPackageIndex
	require.True(t, errors.As(err, &indexErr))
	assert.Equal(t, int32(0), indexErr.Index)

	_, err = resolver.ResolveClassName(-3)
	assert.Error(t, err)
	_, err = resolver.ResolveClassName(2)
	assert.Error(t, err)
}

func TestResolver_FindImport(t *testing.T) {
	table, resolver := newResolver()

	index, ok := resolver.FindImport(
		table.Name("/Script/CoreUObject"),
		table.Name("Class"),
		utypes.FromImport(0),
		table.Name("DataTable"),
	)
	assert.True(t, ok)
	assert.Equal(t, utypes.PackageIndex(-2), index)

	_, ok = resolver.FindImport(
		table.Name("/Script/CoreUObject"),
		table.Name("Class"),
		utypes.NullIndex,
		table.Name("DataTable"),
	)
	assert.False(t, ok)

	index, ok = resolver.FindImportNoIndex(
		table.Name("/Script/CoreUObject"),
		table.Name("Class"),
		table.Name("DataTable"),
	)
	assert.True(t, ok)
	assert.Equal(t, utypes.PackageIndex(-2), index)

	imp, err := resolver.Import(index)
	require.NoError(t, err)
	assert.Equal(t, "DataTable", imp.ObjectName.Content())
}
