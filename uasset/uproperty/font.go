package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

// FontDataProperty references a font face asset. Without one, the file name
// and loading options are stored inline.
type FontDataProperty struct {
	Header
	IsCooked           bool                `json:"is_cooked"`
	LocalFontFaceAsset utypes.PackageIndex `json:"local_font_face_asset"`
	FontFilename       string              `json:"font_filename,omitempty"`
	Hinting            uint8               `json:"hinting"`
	LoadingPolicy      uint8               `json:"loading_policy"`
	SubFaceIndex       int32               `json:"sub_face_index"`
}

func (p *FontDataProperty) TypeName() string { return "FontData" }

func (p *FontDataProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.IsCooked, err = r.ReadBool32(); err != nil || !p.IsCooked {
		return err
	}
	if p.LocalFontFaceAsset, err = r.ReadPackageIndex(); err != nil {
		return err
	}
	if p.LocalFontFaceAsset.IsNull() {
		if p.FontFilename, err = r.ReadFString(); err != nil {
			return err
		}
		if p.Hinting, err = r.ReadU8(); err != nil {
			return err
		}
		if p.LoadingPolicy, err = r.ReadU8(); err != nil {
			return err
		}
	}
	p.SubFaceIndex, err = r.ReadI32()
	return err
}

func (p *FontDataProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		if err := w.WriteBool32(p.IsCooked); err != nil || !p.IsCooked {
			return err
		}
		if err := w.WritePackageIndex(p.LocalFontFaceAsset); err != nil {
			return err
		}
		if p.LocalFontFaceAsset.IsNull() {
			if err := w.WriteFString(p.FontFilename); err != nil {
				return err
			}
			if err := w.WriteU8(p.Hinting); err != nil {
				return err
			}
			if err := w.WriteU8(p.LoadingPolicy); err != nil {
				return err
			}
		}
		return w.WriteI32(p.SubFaceIndex)
	})
}
