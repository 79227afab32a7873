package lbytes

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
)

func TestReader_ReadInt(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
			0xFF, 0xFF,
		},
	)

	resultInt1, err := reader.ReadI32()
	assert.NoError(t, err)
	assert.Equal(t, int32(50594051), resultInt1)

	resultInt2, err := ReadInt[uint32](reader)
	assert.NoError(t, err)
	assert.Equal(t, uint32(1312301580), resultInt2)

	resultInt3, err := reader.ReadI16()
	assert.NoError(t, err)
	assert.Equal(t, int16(-1), resultInt3)
}

func TestReader_ShortRead(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2})
	_, err := reader.ReadI32()
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))

	empty, err := reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Len(t, empty, 0)
}

func TestFString(t *testing.T) {
	tests := map[string]struct {
		in     string
		length int32
	}{
		"empty":  {in: "", length: 0},
		"narrow": {in: "None", length: 5},
		"wide":   {in: "Größe", length: -6},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			writer := NewWriter()
			require.NoError(t, writer.WriteFString(test.in))

			reader := NewBytesReader(writer.Bytes())
			length, err := reader.ReadI32()
			require.NoError(t, err)
			assert.Equal(t, test.length, length)

			require.NoError(t, reader.Seek(0))
			out, err := reader.ReadFString()
			require.NoError(t, err)
			assert.Equal(t, test.in, out)
			assert.Equal(t, int64(0), reader.Remaining())
		})
	}
}

func TestFString_NonAnsiNarrow(t *testing.T) {
	reader := NewBytesReader([]byte{5, 0, 0, 0, 'c', 'a', 'f', 0xE9, 0})
	_, err := reader.ReadFString()
	var invalid uerr.ErrInvalidFile
	assert.True(t, errors.As(err, &invalid))
}

func TestFString_TerminatorOnly(t *testing.T) {
	reader := NewBytesReader([]byte{1, 0, 0, 0, 0})
	out, err := reader.ReadFString()
	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, int64(0), reader.Remaining())

	// the terminator-only form is not kept, "" is always written as length 0
	writer := NewWriter()
	require.NoError(t, writer.WriteFString(out))
	assert.Equal(t, []byte{0, 0, 0, 0}, writer.Bytes())
}

func TestWriter_SeekAndPatch(t *testing.T) {
	writer := NewWriter()
	require.NoError(t, writer.WriteI32(0))
	require.NoError(t, writer.WriteBytes([]byte{9, 9}))
	require.NoError(t, writer.Patch(0, func() error { return writer.WriteI32(2) }))
	assert.Equal(t, int64(6), writer.Position())
	assert.Equal(t, []byte{2, 0, 0, 0, 9, 9}, writer.Bytes())

	require.NoError(t, writer.Seek(8))
	require.NoError(t, writer.WriteU8(7))
	assert.Equal(t, []byte{2, 0, 0, 0, 9, 9, 0, 0, 7}, writer.Bytes())
}
