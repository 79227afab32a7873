package utypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageIndex(t *testing.T) {
	assert.True(t, NullIndex.IsNull())
	assert.False(t, NullIndex.IsImport())
	assert.False(t, NullIndex.IsExport())

	for slot := 0; slot < 5; slot++ {
		importIndex := FromImport(slot)
		assert.Equal(t, PackageIndex(-slot-1), importIndex)
		assert.True(t, importIndex.IsImport())
		assert.Equal(t, slot, importIndex.ToImport())

		exportIndex := FromExport(slot)
		assert.Equal(t, PackageIndex(slot+1), exportIndex)
		assert.True(t, exportIndex.IsExport())
		assert.Equal(t, slot, exportIndex.ToExport())
	}
}

func TestGuid(t *testing.T) {
	text := "375EC13C-06E4-48FB-B500-84F0262A717E"
	guid, err := ParseGuid(text)
	require.NoError(t, err)
	assert.Equal(t, [4]uint32{0x375EC13C, 0x06E448FB, 0xB50084F0, 0x262A717E}, guid.Words())
	assert.Equal(t, byte(0x3C), guid[0])
	assert.Equal(t, text, guid.String())
	assert.False(t, guid.IsZero())
	assert.True(t, Guid{}.IsZero())

	_, err = ParseGuid("not-a-guid")
	assert.Error(t, err)
}
