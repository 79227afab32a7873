package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
)

type (
	BoolProperty struct {
		Header
		Value bool `json:"value"`
	}
	Int8Property struct {
		Header
		Value int8 `json:"value"`
	}
	Int16Property struct {
		Header
		Value int16 `json:"value"`
	}
	IntProperty struct {
		Header
		Value int32 `json:"value"`
	}
	Int64Property struct {
		Header
		Value int64 `json:"value"`
	}
	UInt16Property struct {
		Header
		Value uint16 `json:"value"`
	}
	UInt32Property struct {
		Header
		Value uint32 `json:"value"`
	}
	UInt64Property struct {
		Header
		Value uint64 `json:"value"`
	}
	FloatProperty struct {
		Header
		Value float32 `json:"value"`
	}
	DoubleProperty struct {
		Header
		Value float64 `json:"value"`
	}
)

func (p *BoolProperty) TypeName() string { return "BoolProperty" }

// The value of a boolean lives in the tag itself, ahead of the guid, so the
// payload length is always zero.
func (p *BoolProperty) read(r *uarchive.Reader, ctx Context) error {
	value, err := r.ReadBool8()
	if err != nil {
		return err
	}
	p.Value = value
	return p.readGuid(r, ctx.IncludeHeader)
}

func (p *BoolProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := w.WriteBool8(p.Value); err != nil {
		return 0, err
	}
	return 0, p.writeGuid(w, includeHeader)
}

func (p *Int8Property) TypeName() string { return "Int8Property" }

func (p *Int8Property) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadI8()
	return err
}

func (p *Int8Property) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 1, w.WriteI8(p.Value)
}

func (p *Int16Property) TypeName() string { return "Int16Property" }

func (p *Int16Property) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadI16()
	return err
}

func (p *Int16Property) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 2, w.WriteI16(p.Value)
}

func (p *IntProperty) TypeName() string { return "IntProperty" }

func (p *IntProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadI32()
	return err
}

func (p *IntProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 4, w.WriteI32(p.Value)
}

func (p *Int64Property) TypeName() string { return "Int64Property" }

func (p *Int64Property) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadI64()
	return err
}

func (p *Int64Property) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 8, w.WriteI64(p.Value)
}

func (p *UInt16Property) TypeName() string { return "UInt16Property" }

func (p *UInt16Property) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadU16()
	return err
}

func (p *UInt16Property) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 2, w.WriteU16(p.Value)
}

func (p *UInt32Property) TypeName() string { return "UInt32Property" }

func (p *UInt32Property) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadU32()
	return err
}

func (p *UInt32Property) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 4, w.WriteU32(p.Value)
}

func (p *UInt64Property) TypeName() string { return "UInt64Property" }

func (p *UInt64Property) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadU64()
	return err
}

func (p *UInt64Property) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 8, w.WriteU64(p.Value)
}

func (p *FloatProperty) TypeName() string { return "FloatProperty" }

func (p *FloatProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadF32()
	return err
}

func (p *FloatProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 4, w.WriteF32(p.Value)
}

func (p *DoubleProperty) TypeName() string { return "DoubleProperty" }

func (p *DoubleProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadF64()
	return err
}

func (p *DoubleProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 8, w.WriteF64(p.Value)
}
