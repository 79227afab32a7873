package ucompress

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/DataDog/zstd"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
)

// Method is a compression method name as engine pak and chunk tables spell
// it. Unrecognized names are kept so they can be reported.
type Method struct {
	name  string
	known bool
}

var (
	MethodNone = Method{name: "None", known: true}
	MethodZlib = Method{name: "Zlib", known: true}
	MethodGzip = Method{name: "Gzip", known: true}
	MethodZstd = Method{name: "Zstd", known: true}
)

func ParseMethod(name string) Method {
	switch name {
	case MethodNone.name:
		return MethodNone
	case MethodZlib.name:
		return MethodZlib
	case MethodGzip.name:
		return MethodGzip
	case MethodZstd.name:
		return MethodZstd
	default:
		return Method{name: name}
	}
}

func (m Method) String() string {
	return m.name
}

func (m Method) Known() bool {
	return m.known
}

// Decompress inflates compressed into exactly size bytes.
func Decompress(method Method, compressed []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Errorf("ucompress.Decompress error: negative size %d", size)
	}
	switch method {
	case MethodNone:
		if len(compressed) < size {
			return nil, errors.Wrapf(io.ErrUnexpectedEOF, "ucompress.Decompress error copying %d bytes", size)
		}
		bs := make([]byte, size)
		copy(bs, compressed)
		return bs, nil
	case MethodZlib:
		reader, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, errors.Wrap(err, "ucompress.Decompress error opening zlib stream")
		}
		defer reader.Close()
		return readExact(reader, size)
	case MethodGzip:
		reader, err := gzip.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, errors.Wrap(err, "ucompress.Decompress error opening gzip stream")
		}
		defer reader.Close()
		return readExact(reader, size)
	case MethodZstd:
		bs, err := zstd.Decompress(make([]byte, 0, size), compressed)
		if err != nil {
			return nil, errors.Wrap(err, "ucompress.Decompress error inflating zstd frame")
		}
		if len(bs) < size {
			return nil, errors.Wrapf(io.ErrUnexpectedEOF, "ucompress.Decompress error: zstd frame holds %d of %d bytes", len(bs), size)
		}
		return bs[:size], nil
	default:
		return nil, uerr.ErrUnknownCompressionMethod{Method: method.name}
	}
}

func readExact(reader io.Reader, size int) ([]byte, error) {
	bs := make([]byte, size)
	if _, err := io.ReadFull(reader, bs); err != nil {
		return nil, errors.Wrapf(err, "ucompress.Decompress error reading %d bytes", size)
	}
	return bs, nil
}
