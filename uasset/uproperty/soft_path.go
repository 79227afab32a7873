package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

// SoftPath is a soft object reference. Older object versions store the
// whole path as one string in LegacyPath.
type SoftPath struct {
	LegacyPath    string     `json:"legacy_path,omitempty"`
	AssetPathName uname.Name `json:"asset_path_name"`
	SubPath       string     `json:"sub_path"`
}

func readSoftPath(r *uarchive.Reader) (path SoftPath, err error) {
	if !r.AtLeast(uversion.VerAddedSoftObjectPath) {
		path.LegacyPath, err = r.ReadFString()
		return path, err
	}
	if path.AssetPathName, err = r.ReadFName(); err != nil {
		return path, err
	}
	path.SubPath, err = r.ReadFString()
	return path, err
}

func writeSoftPath(w *uarchive.Writer, path SoftPath) (int64, error) {
	return measure(w, func() error {
		if !w.AtLeast(uversion.VerAddedSoftObjectPath) {
			return w.WriteFString(path.LegacyPath)
		}
		if err := w.WriteFName(path.AssetPathName); err != nil {
			return err
		}
		return w.WriteFString(path.SubPath)
	})
}

type (
	SoftObjectPathProperty struct {
		Header
		Value SoftPath `json:"value"`
	}
	SoftClassPathProperty struct {
		Header
		Value SoftPath `json:"value"`
	}
	SoftAssetPathProperty struct {
		Header
		Value SoftPath `json:"value"`
	}
	StringAssetReferenceProperty struct {
		Header
		Value SoftPath `json:"value"`
	}
)

func (p *SoftObjectPathProperty) TypeName() string { return "SoftObjectPath" }

func (p *SoftObjectPathProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readSoftPath(r)
	return err
}

func (p *SoftObjectPathProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return writeSoftPath(w, p.Value)
}

func (p *SoftClassPathProperty) TypeName() string { return "SoftClassPath" }

func (p *SoftClassPathProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readSoftPath(r)
	return err
}

func (p *SoftClassPathProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return writeSoftPath(w, p.Value)
}

func (p *SoftAssetPathProperty) TypeName() string { return "SoftAssetPath" }

func (p *SoftAssetPathProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readSoftPath(r)
	return err
}

func (p *SoftAssetPathProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return writeSoftPath(w, p.Value)
}

func (p *StringAssetReferenceProperty) TypeName() string { return "StringAssetReference" }

func (p *StringAssetReferenceProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readSoftPath(r)
	return err
}

func (p *StringAssetReferenceProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return writeSoftPath(w, p.Value)
}
