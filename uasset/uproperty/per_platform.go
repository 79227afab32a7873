package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
)

type (
	PerPlatformBoolProperty struct {
		Header
		Value []bool `json:"value"`
	}
	PerPlatformIntProperty struct {
		Header
		Value []int32 `json:"value"`
	}
	PerPlatformFloatProperty struct {
		Header
		Value []float32 `json:"value"`
	}
)

// readList reads an i32 count followed by count elements.
func readList[T any](r *uarchive.Reader, readElement func() (T, error)) ([]T, error) {
	count, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	values := make([]T, 0, count)
	for i := 0; i < count; i++ {
		value, err := readElement()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func writeList[T any](w *uarchive.Writer, values []T, writeElement func(T) error) error {
	if err := w.WriteI32(int32(len(values))); err != nil {
		return err
	}
	for _, value := range values {
		if err := writeElement(value); err != nil {
			return err
		}
	}
	return nil
}

func (p *PerPlatformBoolProperty) TypeName() string { return "PerPlatformBool" }

func (p *PerPlatformBoolProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readList(r, r.ReadBool8)
	return err
}

func (p *PerPlatformBoolProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return int64(4 + len(p.Value)), writeList(w, p.Value, w.WriteBool8)
}

func (p *PerPlatformIntProperty) TypeName() string { return "PerPlatformInt" }

func (p *PerPlatformIntProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readList(r, r.ReadI32)
	return err
}

func (p *PerPlatformIntProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return int64(4 + 4*len(p.Value)), writeList(w, p.Value, w.WriteI32)
}

func (p *PerPlatformFloatProperty) TypeName() string { return "PerPlatformFloat" }

func (p *PerPlatformFloatProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readList(r, r.ReadF32)
	return err
}

func (p *PerPlatformFloatProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return int64(4 + 4*len(p.Value)), writeList(w, p.Value, w.WriteF32)
}
