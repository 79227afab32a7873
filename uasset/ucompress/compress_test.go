package ucompress

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/DataDog/zstd"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
)

var payload = bytes.Repeat([]byte("/Game/Blueprints/BP_Player."), 32)

func TestParseMethod(t *testing.T) {
	assert.Equal(t, MethodZlib, ParseMethod("Zlib"))
	assert.Equal(t, MethodNone, ParseMethod("None"))

	lz4 := ParseMethod("LZ4")
	assert.False(t, lz4.Known())
	assert.Equal(t, "LZ4", lz4.String())
}

func TestDecompress(t *testing.T) {
	zlibBuffer := bytes.Buffer{}
	zlibWriter := zlib.NewWriter(&zlibBuffer)
	_, err := zlibWriter.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zlibWriter.Close())

	gzipBuffer := bytes.Buffer{}
	gzipWriter := gzip.NewWriter(&gzipBuffer)
	_, err = gzipWriter.Write(payload)
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())

	zstdBytes, err := zstd.CompressLevel(nil, payload, zstd.BestSpeed)
	require.NoError(t, err)

	cases := []struct {
		method     Method
		compressed []byte
	}{
		{MethodNone, payload},
		{MethodZlib, zlibBuffer.Bytes()},
		{MethodGzip, gzipBuffer.Bytes()},
		{MethodZstd, zstdBytes},
	}
	for _, c := range cases {
		bs, err := Decompress(c.method, c.compressed, len(payload))
		require.NoError(t, err, c.method.String())
		assert.Equal(t, payload, bs, c.method.String())

		_, err = Decompress(c.method, c.compressed, len(payload)+1)
		assert.Error(t, err, c.method.String())
	}
}

func TestDecompressUnknown(t *testing.T) {
	_, err := Decompress(ParseMethod("Oodle"), payload, 4)
	var unknown uerr.ErrUnknownCompressionMethod
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Oodle", unknown.Method)
}
