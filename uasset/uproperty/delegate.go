package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

type Delegate struct {
	Object       utypes.PackageIndex `json:"object"`
	DelegateName uname.Name          `json:"delegate_name"`
}

func readDelegate(r *uarchive.Reader) (delegate Delegate, err error) {
	if delegate.Object, err = r.ReadPackageIndex(); err != nil {
		return delegate, err
	}
	delegate.DelegateName, err = r.ReadFName()
	return delegate, err
}

func writeDelegate(w *uarchive.Writer, delegate Delegate) error {
	if err := w.WritePackageIndex(delegate.Object); err != nil {
		return err
	}
	return w.WriteFName(delegate.DelegateName)
}

type (
	DelegateProperty struct {
		Header
		Value Delegate `json:"value"`
	}
	MulticastDelegateProperty struct {
		Header
		Value []Delegate `json:"value"`
	}
	MulticastSparseDelegateProperty struct {
		Header
		Value []Delegate `json:"value"`
	}
	MulticastInlineDelegateProperty struct {
		Header
		Value []Delegate `json:"value"`
	}
)

func readDelegates(r *uarchive.Reader, header *Header, ctx Context) ([]Delegate, error) {
	if err := header.readGuid(r, ctx.IncludeHeader); err != nil {
		return nil, err
	}
	return readList(r, func() (Delegate, error) { return readDelegate(r) })
}

func writeDelegates(w *uarchive.Writer, header *Header, includeHeader bool, delegates []Delegate) (int64, error) {
	if err := header.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		return writeList(w, delegates, func(delegate Delegate) error { return writeDelegate(w, delegate) })
	})
}

func (p *DelegateProperty) TypeName() string { return "DelegateProperty" }

func (p *DelegateProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readDelegate(r)
	return err
}

func (p *DelegateProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 12, writeDelegate(w, p.Value)
}

func (p *MulticastDelegateProperty) TypeName() string { return "MulticastDelegateProperty" }

func (p *MulticastDelegateProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	p.Value, err = readDelegates(r, &p.Header, ctx)
	return err
}

func (p *MulticastDelegateProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	return writeDelegates(w, &p.Header, includeHeader, p.Value)
}

func (p *MulticastSparseDelegateProperty) TypeName() string { return "MulticastSparseDelegateProperty" }

func (p *MulticastSparseDelegateProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	p.Value, err = readDelegates(r, &p.Header, ctx)
	return err
}

func (p *MulticastSparseDelegateProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	return writeDelegates(w, &p.Header, includeHeader, p.Value)
}

func (p *MulticastInlineDelegateProperty) TypeName() string { return "MulticastInlineDelegateProperty" }

func (p *MulticastInlineDelegateProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	p.Value, err = readDelegates(r, &p.Header, ctx)
	return err
}

func (p *MulticastInlineDelegateProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	return writeDelegates(w, &p.Header, includeHeader, p.Value)
}
