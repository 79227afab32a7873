package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

type (
	// TimespanProperty and DateTimeProperty hold engine ticks of 100ns.
	TimespanProperty struct {
		Header
		Ticks int64 `json:"ticks"`
	}
	DateTimeProperty struct {
		Header
		Ticks int64 `json:"ticks"`
	}
	GuidProperty struct {
		Header
		Value utypes.Guid `json:"value"`
	}
)

func (p *TimespanProperty) TypeName() string { return "Timespan" }

func (p *TimespanProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Ticks, err = r.ReadI64()
	return err
}

func (p *TimespanProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 8, w.WriteI64(p.Ticks)
}

func (p *DateTimeProperty) TypeName() string { return "DateTime" }

func (p *DateTimeProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Ticks, err = r.ReadI64()
	return err
}

func (p *DateTimeProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 8, w.WriteI64(p.Ticks)
}

func (p *GuidProperty) TypeName() string { return "Guid" }

func (p *GuidProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadGuidValue()
	return err
}

func (p *GuidProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 16, w.WriteGuidValue(p.Value)
}
