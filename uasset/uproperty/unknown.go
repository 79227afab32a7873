package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
)

// UnknownProperty keeps the payload of an unregistered type verbatim.
type UnknownProperty struct {
	Header
	SerializedType string `json:"serialized_type"`
	Value          []byte `json:"value"`
}

func (p *UnknownProperty) TypeName() string { return p.SerializedType }

func (p *UnknownProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadBytes(int(ctx.Length))
	return err
}

func (p *UnknownProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return int64(len(p.Value)), w.WriteBytes(p.Value)
}
