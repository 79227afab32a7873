package uproperty

import (
	"fmt"

	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

type (
	// ByteProperty holds either a raw byte or an enum value name, depending on
	// the serialized length.
	ByteProperty struct {
		Header
		EnumType  *uname.Name `json:"enum_type,omitempty"`
		IsName    bool        `json:"is_name"`
		Byte      uint8       `json:"byte"`
		EnumValue uname.Name  `json:"enum_value"`
	}
	EnumProperty struct {
		Header
		EnumType *uname.Name `json:"enum_type,omitempty"`
		Value    uname.Name  `json:"value"`
	}
	NameProperty struct {
		Header
		Value uname.Name `json:"value"`
	}
	StrProperty struct {
		Header
		Value string `json:"value"`
	}
	ObjectProperty struct {
		Header
		Value utypes.PackageIndex `json:"value"`
	}
	WeakObjectProperty struct {
		Header
		Value utypes.PackageIndex `json:"value"`
	}
	LazyObjectProperty struct {
		Header
		Value utypes.Guid `json:"value"`
	}
	InterfaceProperty struct {
		Header
		Value utypes.PackageIndex `json:"value"`
	}
	AssetObjectProperty struct {
		Header
		Value string `json:"value"`
	}
	SoftObjectProperty struct {
		Header
		AssetPathName uname.Name `json:"asset_path_name"`
		SubPath       string     `json:"sub_path"`
	}
	FieldPathProperty struct {
		Header
		Path          []uname.Name        `json:"path"`
		ResolvedOwner utypes.PackageIndex `json:"resolved_owner"`
	}
)

func readOptionalFName(r *uarchive.Reader, includeHeader bool) (*uname.Name, error) {
	if !includeHeader {
		return nil, nil
	}
	name, err := r.ReadFName()
	if err != nil {
		return nil, err
	}
	return &name, nil
}

func writeOptionalFName(w *uarchive.Writer, includeHeader bool, name *uname.Name, field string) error {
	if !includeHeader {
		return nil
	}
	if name == nil {
		return uerr.ErrNoData{Reason: field + " is required when the header is included"}
	}
	return w.WriteFName(*name)
}

func (p *ByteProperty) TypeName() string { return "ByteProperty" }

func (p *ByteProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if p.EnumType, err = readOptionalFName(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}

	length := ctx.Length
	if length != 1 && length != 8 {
		length = ctx.FallbackLength
	}
	switch length {
	case 1:
		p.Byte, err = r.ReadU8()
		return err
	case 0, 8:
		p.IsName = true
		p.EnumValue, err = r.ReadFName()
		return err
	default:
		return uerr.ErrInvalidFile{
			Reason: fmt.Sprintf("ByteProperty of length %d and fallback length %d", ctx.Length, ctx.FallbackLength),
		}
	}
}

func (p *ByteProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := writeOptionalFName(w, includeHeader, p.EnumType, "ByteProperty enum type"); err != nil {
		return 0, err
	}
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	if p.IsName {
		return 8, w.WriteFName(p.EnumValue)
	}
	return 1, w.WriteU8(p.Byte)
}

func (p *EnumProperty) TypeName() string { return "EnumProperty" }

func (p *EnumProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if p.EnumType, err = readOptionalFName(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadFName()
	return err
}

func (p *EnumProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := writeOptionalFName(w, includeHeader, p.EnumType, "EnumProperty enum type"); err != nil {
		return 0, err
	}
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 8, w.WriteFName(p.Value)
}

func (p *NameProperty) TypeName() string { return "NameProperty" }

func (p *NameProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadFName()
	return err
}

func (p *NameProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 8, w.WriteFName(p.Value)
}

func (p *StrProperty) TypeName() string { return "StrProperty" }

func (p *StrProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadFString()
	return err
}

func (p *StrProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error { return w.WriteFString(p.Value) })
}

func (p *ObjectProperty) TypeName() string { return "ObjectProperty" }

func (p *ObjectProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadPackageIndex()
	return err
}

func (p *ObjectProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 4, w.WritePackageIndex(p.Value)
}

func (p *WeakObjectProperty) TypeName() string { return "WeakObjectProperty" }

func (p *WeakObjectProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadPackageIndex()
	return err
}

func (p *WeakObjectProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 4, w.WritePackageIndex(p.Value)
}

func (p *LazyObjectProperty) TypeName() string { return "LazyObjectProperty" }

func (p *LazyObjectProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadGuidValue()
	return err
}

func (p *LazyObjectProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 16, w.WriteGuidValue(p.Value)
}

func (p *InterfaceProperty) TypeName() string { return "InterfaceProperty" }

func (p *InterfaceProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadPackageIndex()
	return err
}

func (p *InterfaceProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 4, w.WritePackageIndex(p.Value)
}

func (p *AssetObjectProperty) TypeName() string { return "AssetObjectProperty" }

func (p *AssetObjectProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadFString()
	return err
}

func (p *AssetObjectProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error { return w.WriteFString(p.Value) })
}

func (p *SoftObjectProperty) TypeName() string { return "SoftObjectProperty" }

func (p *SoftObjectProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.AssetPathName, err = r.ReadFName(); err != nil {
		return err
	}
	p.SubPath, err = r.ReadFString()
	return err
}

func (p *SoftObjectProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		if err := w.WriteFName(p.AssetPathName); err != nil {
			return err
		}
		return w.WriteFString(p.SubPath)
	})
}

func (p *FieldPathProperty) TypeName() string { return "FieldPathProperty" }

func (p *FieldPathProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	count, err := r.ReadCount()
	if err != nil {
		return err
	}
	p.Path = make([]uname.Name, 0, count)
	for i := 0; i < count; i++ {
		name, err := r.ReadFName()
		if err != nil {
			return err
		}
		p.Path = append(p.Path, name)
	}
	p.ResolvedOwner, err = r.ReadPackageIndex()
	return err
}

func (p *FieldPathProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		if err := w.WriteI32(int32(len(p.Path))); err != nil {
			return err
		}
		for _, name := range p.Path {
			if err := w.WriteFName(name); err != nil {
				return err
			}
		}
		return w.WritePackageIndex(p.ResolvedOwner)
	})
}
