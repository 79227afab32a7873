package uarchive

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/lbytes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

func NewReader(bs []byte, settings *Settings) *Reader {
	return &Reader{
		Reader:   lbytes.NewBytesReader(bs),
		Settings: settings,
	}
}

func NewWriter(settings *Settings) *Writer {
	return &Writer{
		Writer:   lbytes.NewWriter(),
		Settings: settings,
	}
}

// ReadFName reads an index into the session name table followed by the
// instance number.
func (r *Reader) ReadFName() (uname.Name, error) {
	index, err := r.ReadI32()
	if err != nil {
		return uname.Name{}, errors.Wrap(err, "uarchive.ReadFName error reading index")
	}
	number, err := r.ReadI32()
	if err != nil {
		return uname.Name{}, errors.Wrap(err, "uarchive.ReadFName error reading number")
	}
	name, err := r.Names.NameAt(index, number)
	if err != nil {
		return uname.Name{}, uerr.ErrInvalidFile{Reason: err.Error()}
	}
	return name, nil
}

func (w *Writer) WriteFName(name uname.Name) error {
	index := name.Index
	if name.IsDummy() {
		found, ok := w.Names.IndexOf(name.Content())
		if !ok {
			return uerr.ErrNoData{Reason: `name "` + name.Content() + `" is not in the name table`}
		}
		index = found
	} else if name.Table() != w.Names {
		return errors.Errorf(`uarchive.WriteFName error: name "%s" belongs to another name table`, name.Content())
	}
	if err := w.WriteI32(index); err != nil {
		return err
	}
	return w.WriteI32(name.Number)
}

func (r *Reader) ReadPackageIndex() (utypes.PackageIndex, error) {
	index, err := r.ReadI32()
	return utypes.PackageIndex(index), err
}

func (w *Writer) WritePackageIndex(index utypes.PackageIndex) error {
	return w.WriteI32(int32(index))
}

func (r *Reader) ReadGuidValue() (utypes.Guid, error) {
	bs, err := r.ReadGuid()
	return utypes.Guid(bs), err
}

func (w *Writer) WriteGuidValue(guid utypes.Guid) error {
	return w.WriteGuid(guid)
}

// ReadPropertyGuid reads the optional guid of a property tag. Older object
// versions carry no guid at all.
func (r *Reader) ReadPropertyGuid() (*utypes.Guid, error) {
	if !r.AtLeast(uversion.VerPropertyGuidInPropertyTag) {
		return nil, nil
	}
	hasGuid, err := r.ReadBool8()
	if err != nil {
		return nil, errors.Wrap(err, "uarchive.ReadPropertyGuid error reading flag")
	}
	if !hasGuid {
		return nil, nil
	}
	guid, err := r.ReadGuidValue()
	if err != nil {
		return nil, errors.Wrap(err, "uarchive.ReadPropertyGuid error reading guid")
	}
	return &guid, nil
}

func (w *Writer) WritePropertyGuid(guid *utypes.Guid) error {
	if !w.AtLeast(uversion.VerPropertyGuidInPropertyTag) {
		return nil
	}
	if guid == nil {
		return w.WriteBool8(false)
	}
	if err := w.WriteBool8(true); err != nil {
		return err
	}
	return w.WriteGuidValue(*guid)
}

// ReadFStrings reads an i32 count followed by that many strings.
func (r *Reader) ReadFStrings() ([]string, error) {
	count, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		value, err := r.ReadFString()
		if err != nil {
			return nil, errors.Wrapf(err, "uarchive.ReadFStrings error reading string %d", i)
		}
		values = append(values, value)
	}
	return values, nil
}

func (w *Writer) WriteFStrings(values []string) error {
	if err := w.WriteI32(int32(len(values))); err != nil {
		return err
	}
	for _, value := range values {
		if err := w.WriteFString(value); err != nil {
			return err
		}
	}
	return nil
}

// ReadCount reads a non-negative i32 element count.
func (r *Reader) ReadCount() (int, error) {
	count, err := r.ReadI32()
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, uerr.ErrInvalidFile{Reason: "negative element count"}
	}
	if int64(count) > r.Remaining() {
		return 0, uerr.ErrInvalidFile{Reason: "element count exceeds remaining data"}
	}
	return int(count), nil
}
