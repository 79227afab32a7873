package lbytes

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf16"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"golang.org/x/exp/constraints"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{data: bs}
}

func (r *Reader) Position() int64 {
	return r.pos
}

// Len returns the total length of the underlying stream.
func (r *Reader) Len() int64 {
	return int64(len(r.data))
}

func (r *Reader) Remaining() int64 {
	return int64(len(r.data)) - r.pos
}

func (r *Reader) Seek(pos int64) error {
	if pos < 0 || pos > int64(len(r.data)) {
		return errors.Errorf("lbytes.Reader.Seek error: position %d outside [0, %d]", pos, len(r.data))
	}
	r.pos = pos
	return nil
}

func (r *Reader) Skip(n int64) error {
	return r.Seek(r.pos + n)
}

func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Errorf("lbytes.Reader.ReadBytes error: negative length %d", n)
	}
	// return early so that a zero-length read at the end of the stream is not an EOF
	if n == 0 {
		return []byte{}, nil
	}
	if r.Remaining() < int64(n) {
		r.pos = int64(len(r.data))
		return nil, io.ErrUnexpectedEOF
	}
	bs := make([]byte, n)
	copy(bs, r.data[r.pos:r.pos+int64(n)])
	r.pos += int64(n)
	return bs, nil
}

// ReadInt reads a little-endian integer whose width is the size of T.
func ReadInt[T constraints.Integer](r *Reader) (T, error) {
	var zero T
	size := sizeOf[T]()
	bs, err := r.ReadBytes(size)
	if err != nil {
		return zero, err
	}
	switch size {
	case 1:
		return T(bs[0]), nil
	case 2:
		return T(binary.LittleEndian.Uint16(bs)), nil
	case 4:
		return T(binary.LittleEndian.Uint32(bs)), nil
	default:
		return T(binary.LittleEndian.Uint64(bs)), nil
	}
}

func sizeOf[T constraints.Integer]() int {
	var t T
	return int(unsafe.Sizeof(t))
}

func (r *Reader) ReadU8() (uint8, error)   { return ReadInt[uint8](r) }
func (r *Reader) ReadI8() (int8, error)    { return ReadInt[int8](r) }
func (r *Reader) ReadU16() (uint16, error) { return ReadInt[uint16](r) }
func (r *Reader) ReadI16() (int16, error)  { return ReadInt[int16](r) }
func (r *Reader) ReadU32() (uint32, error) { return ReadInt[uint32](r) }
func (r *Reader) ReadI32() (int32, error)  { return ReadInt[int32](r) }
func (r *Reader) ReadU64() (uint64, error) { return ReadInt[uint64](r) }
func (r *Reader) ReadI64() (int64, error)  { return ReadInt[int64](r) }

// ReadU32BE reads the only big-endian field of the format, the file magic.
func (r *Reader) ReadU32BE() (uint32, error) {
	bs, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(bs), nil
}

func (r *Reader) ReadF32() (float32, error) {
	bits, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (r *Reader) ReadF64() (float64, error) {
	bits, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// ReadBool8 reads a one-byte boolean.
func (r *Reader) ReadBool8() (bool, error) {
	b, err := r.ReadU8()
	return b != 0, err
}

// ReadBool32 reads a four-byte boolean, true only when the value is 1.
func (r *Reader) ReadBool32() (bool, error) {
	i, err := r.ReadI32()
	return i == 1, err
}

func (r *Reader) ReadGuid() ([16]byte, error) {
	guid := [16]byte{}
	bs, err := r.ReadBytes(16)
	if err != nil {
		return guid, err
	}
	copy(guid[:], bs)
	return guid, nil
}

// ReadFString reads a length-prefixed string. A positive length is a narrow
// ANSI string, a negative one is UTF-16LE; both count the trailing NUL. The
// lengths 0 and 1 both read as "", which is written back with length 0.
func (r *Reader) ReadFString() (string, error) {
	length, err := r.ReadI32()
	if err != nil {
		return "", errors.Wrap(err, "lbytes.ReadFString error reading length")
	}
	switch {
	case length == 0:
		return "", nil
	case length > 0:
		bs, err := r.ReadBytes(int(length))
		if err != nil {
			return "", errors.Wrapf(err, "lbytes.ReadFString error reading %d narrow bytes", length)
		}
		// the engine writes narrow strings for pure ANSI content only
		for i, b := range bs[:len(bs)-1] {
			if b > 0x7F {
				return "", uerr.ErrInvalidFile{
					Reason: fmt.Sprintf("narrow string byte 0x%02X at %d is not ANSI", b, i),
				}
			}
		}
		return string(bs[:len(bs)-1]), nil
	default:
		if length == math.MinInt32 {
			return "", errors.New("lbytes.ReadFString error: invalid wide length")
		}
		count := int(-length)
		bs, err := r.ReadBytes(count * 2)
		if err != nil {
			return "", errors.Wrapf(err, "lbytes.ReadFString error reading %d wide chars", count)
		}
		units := make([]uint16, 0, count-1)
		for i := 0; i < count-1; i++ {
			units = append(units, binary.LittleEndian.Uint16(bs[i*2:]))
		}
		return string(utf16.Decode(units)), nil
	}
}
