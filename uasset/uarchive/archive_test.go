package uarchive

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

func TestNewSettings(t *testing.T) {
	settings := NewSettings(uversion.UE4(18))
	assert.Equal(t, uversion.ObjectVersion(514), settings.ObjectVersion)

	structType, ok := settings.ArrayStructTypes.Get("Keys")
	assert.True(t, ok)
	assert.Equal(t, "RichCurveKey", structType)

	structType, ok = settings.MapValueStructTypes.Get("PlayerCharacterIDs")
	assert.True(t, ok)
	assert.Equal(t, "PlayerCharacterIDArray", structType)

	assert.Equal(t, uversion.UE4(18), settings.Engine())
	settings.EngineVersion = uversion.EngineUnknown
	assert.Equal(t, uversion.UE4(18), settings.Engine())
}

func TestFName(t *testing.T) {
	settings := NewSettings(uversion.UE4(18))
	settings.Names.Intern("None")
	name := settings.Names.Name("Item")
	name.Number = 2

	writer := NewWriter(settings)
	require.NoError(t, writer.WriteFName(name))
	require.NoError(t, writer.WriteFName(uname.Dummy("None")))

	err := writer.WriteFName(uname.Dummy("Missing"))
	var noData uerr.ErrNoData
	assert.True(t, errors.As(err, &noData))

	err = writer.WriteFName(uname.NewTable().Name("Item"))
	assert.Error(t, err)

	assert.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, writer.Bytes())

	reader := NewReader(writer.Bytes(), settings)
	read, err := reader.ReadFName()
	require.NoError(t, err)
	assert.True(t, read.Equal(name))
	read, err = reader.ReadFName()
	require.NoError(t, err)
	assert.True(t, read.Is("None"))

	_, err = NewReader([]byte{9, 0, 0, 0, 0, 0, 0, 0}, settings).ReadFName()
	var invalid uerr.ErrInvalidFile
	assert.True(t, errors.As(err, &invalid))
}

func TestPropertyGuid(t *testing.T) {
	guid := utypes.NewGuid(1, 2, 3, 4)

	settings := NewSettings(uversion.UE4(18))
	writer := NewWriter(settings)
	require.NoError(t, writer.WritePropertyGuid(nil))
	require.NoError(t, writer.WritePropertyGuid(&guid))
	assert.Equal(t, int64(18), writer.Len())

	reader := NewReader(writer.Bytes(), settings)
	read, err := reader.ReadPropertyGuid()
	require.NoError(t, err)
	assert.Nil(t, read)
	read, err = reader.ReadPropertyGuid()
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, guid, *read)

	old := NewSettings(uversion.UE4(11))
	writer = NewWriter(old)
	require.NoError(t, writer.WritePropertyGuid(&guid))
	assert.Equal(t, int64(0), writer.Len())
}

func TestReadCount(t *testing.T) {
	settings := NewSettings(uversion.UE4(18))
	_, err := NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF}, settings).ReadCount()
	assert.Error(t, err)
	_, err = NewReader([]byte{100, 0, 0, 0}, settings).ReadCount()
	assert.Error(t, err)

	writer := NewWriter(settings)
	require.NoError(t, writer.WriteFStrings([]string{"a", "Größe"}))
	values, err := NewReader(writer.Bytes(), settings).ReadFStrings()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "Größe"}, values)
}
