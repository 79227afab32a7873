package uexport

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
)

// read takes the whole serialized range of the export.
func (e *RawExport) read(r *uarchive.Reader, ctx Context) (err error) {
	if e.SerialSize < 0 || e.SerialSize > r.Remaining() {
		return uerr.ErrInvalidFile{Reason: "export serial size exceeds the stream"}
	}
	e.Data, err = r.ReadBytes(int(e.SerialSize))
	return err
}

func (e *RawExport) write(w *uarchive.Writer, ctx Context) error {
	return w.WriteBytes(e.Data)
}

func (e *NormalExport) Normal() *NormalExport {
	return e
}

func (e *NormalExport) read(r *uarchive.Reader, ctx Context) error {
	if r.HasPackageFlag(uarchive.PkgUnversionedProperties) {
		return uerr.ErrInvalidFile{Reason: "unversioned properties are not supported"}
	}
	properties, err := uproperty.ReadAll(r, uproperty.Ancestry{ctx.ClassType})
	if err != nil {
		err := errors.Wrapf(err, `uexport.NormalExport error reading properties of "%s"`, e.ObjectName)
		return err
	}
	e.Properties = properties
	return nil
}

func (e *NormalExport) write(w *uarchive.Writer, ctx Context) error {
	return uproperty.WriteAll(w, e.Properties)
}

// Find returns the first top-level property named name.
func (e *NormalExport) Find(name string) (uproperty.Property, bool) {
	for _, property := range e.Properties {
		if property.Base().Name.Is(name) {
			return property, true
		}
	}
	return nil, false
}

func readZero(r *uarchive.Reader) error {
	_, err := r.ReadI32()
	return err
}
