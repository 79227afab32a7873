package lbytes

import (
	"encoding/binary"
	"math"
	"unicode/utf16"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func NewWriter() *Writer {
	return &Writer{data: make([]byte, 0, 4096)}
}

func (w *Writer) Position() int64 {
	return w.pos
}

func (w *Writer) Len() int64 {
	return int64(len(w.data))
}

// Bytes returns the whole buffer regardless of the current position.
func (w *Writer) Bytes() []byte {
	return w.data
}

// Seek moves the cursor. Seeking past the end is allowed; the gap is
// zero-filled by the next write.
func (w *Writer) Seek(pos int64) error {
	if pos < 0 {
		return errors.Errorf("lbytes.Writer.Seek error: negative position %d", pos)
	}
	w.pos = pos
	return nil
}

func (w *Writer) Write(bs []byte) (int, error) {
	end := w.pos + int64(len(bs))
	if end > int64(len(w.data)) {
		if end > int64(cap(w.data)) {
			grown := make([]byte, len(w.data), end*2)
			copy(grown, w.data)
			w.data = grown
		}
		w.data = w.data[:end]
	}
	copy(w.data[w.pos:end], bs)
	w.pos = end
	return len(bs), nil
}

func (w *Writer) WriteBytes(bs []byte) error {
	_, err := w.Write(bs)
	return err
}

func WriteInt[T constraints.Integer](w *Writer, value T) error {
	size := sizeOf[T]()
	bs := make([]byte, size)
	switch size {
	case 1:
		bs[0] = byte(value)
	case 2:
		binary.LittleEndian.PutUint16(bs, uint16(value))
	case 4:
		binary.LittleEndian.PutUint32(bs, uint32(value))
	default:
		binary.LittleEndian.PutUint64(bs, uint64(value))
	}
	return w.WriteBytes(bs)
}

func (w *Writer) WriteU8(v uint8) error   { return WriteInt(w, v) }
func (w *Writer) WriteI8(v int8) error    { return WriteInt(w, v) }
func (w *Writer) WriteU16(v uint16) error { return WriteInt(w, v) }
func (w *Writer) WriteI16(v int16) error  { return WriteInt(w, v) }
func (w *Writer) WriteU32(v uint32) error { return WriteInt(w, v) }
func (w *Writer) WriteI32(v int32) error  { return WriteInt(w, v) }
func (w *Writer) WriteU64(v uint64) error { return WriteInt(w, v) }
func (w *Writer) WriteI64(v int64) error  { return WriteInt(w, v) }

func (w *Writer) WriteU32BE(v uint32) error {
	bs := make([]byte, 4)
	binary.BigEndian.PutUint32(bs, v)
	return w.WriteBytes(bs)
}

func (w *Writer) WriteF32(v float32) error {
	return w.WriteU32(math.Float32bits(v))
}

func (w *Writer) WriteF64(v float64) error {
	return w.WriteU64(math.Float64bits(v))
}

func (w *Writer) WriteBool8(v bool) error {
	if v {
		return w.WriteU8(1)
	}
	return w.WriteU8(0)
}

func (w *Writer) WriteBool32(v bool) error {
	if v {
		return w.WriteI32(1)
	}
	return w.WriteI32(0)
}

func (w *Writer) WriteGuid(guid [16]byte) error {
	return w.WriteBytes(guid[:])
}

// IsPureAnsi reports whether s can be stored as a narrow string.
func IsPureAnsi(s string) bool {
	for _, r := range s {
		if r > 0x7F {
			return false
		}
	}
	return true
}

func (w *Writer) WriteFString(s string) error {
	if s == "" {
		return w.WriteI32(0)
	}
	if IsPureAnsi(s) {
		// +1 to account for the last zero byte
		if err := w.WriteI32(int32(len(s) + 1)); err != nil {
			return err
		}
		if err := w.WriteBytes([]byte(s)); err != nil {
			return err
		}
		return w.WriteU8(0)
	}

	units := utf16.Encode([]rune(s))
	if err := w.WriteI32(-int32(len(units) + 1)); err != nil {
		return err
	}
	bs := make([]byte, len(units)*2+2)
	for i, unit := range units {
		binary.LittleEndian.PutUint16(bs[i*2:], unit)
	}
	return w.WriteBytes(bs)
}

// Patch runs patch with the cursor at pos, then moves the cursor back.
func (w *Writer) Patch(pos int64, patch func() error) error {
	current := w.pos
	if err := w.Seek(pos); err != nil {
		return err
	}
	if err := patch(); err != nil {
		return err
	}
	return w.Seek(current)
}
