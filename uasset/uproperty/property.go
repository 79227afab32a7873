package uproperty

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
)

// Read reads one tagged property. It returns nil at the "None" terminator.
func Read(r *uarchive.Reader, ancestry Ancestry, includeHeader bool) (Property, error) {
	name, err := r.ReadFName()
	if err != nil {
		err := errors.Wrap(err, "uproperty.Read error reading name")
		return nil, err
	}
	if name.Is(NameNone) {
		return nil, nil
	}
	typeName, err := r.ReadFName()
	if err != nil {
		err := errors.Wrapf(err, `uproperty.Read error reading type of "%s"`, name)
		return nil, err
	}
	length, err := r.ReadI32()
	if err != nil {
		err := errors.Wrapf(err, `uproperty.Read error reading length of "%s"`, name)
		return nil, err
	}
	duplicationIndex, err := r.ReadI32()
	if err != nil {
		err := errors.Wrapf(err, `uproperty.Read error reading duplication index of "%s"`, name)
		return nil, err
	}

	ctx := Context{
		IncludeHeader: includeHeader,
		Length:        int64(length),
		Ancestry:      ancestry,
	}
	return Decode(r, typeName.Content(), name, ctx, duplicationIndex)
}

// ReadAll reads tagged properties up to and including the terminator.
func ReadAll(r *uarchive.Reader, ancestry Ancestry) ([]Property, error) {
	properties := make([]Property, 0)
	for {
		property, err := Read(r, ancestry, true)
		if err != nil {
			return nil, err
		}
		if property == nil {
			return properties, nil
		}
		properties = append(properties, property)
	}
}

// New returns an empty property of the registered type, or an
// UnknownProperty that keeps typeName.
func New(typeName string) Property {
	constructor, ok := registry[typeName]
	if !ok {
		return &UnknownProperty{SerializedType: typeName}
	}
	return constructor()
}

// Decode reads the payload of a property whose tag has already been
// consumed.
func Decode(
	r *uarchive.Reader,
	typeName string,
	name uname.Name,
	ctx Context,
	duplicationIndex int32,
) (Property, error) {
	property := New(typeName)
	base := property.Base()
	base.Name = name
	base.DuplicationIndex = duplicationIndex
	if err := property.read(r, ctx); err != nil {
		err := errors.Wrapf(err, `uproperty.Decode error reading %s "%s"`, typeName, name)
		return nil, err
	}
	return property, nil
}

// Write frames the property with its tag. The length field is patched with
// the payload length once the payload is written.
func Write(w *uarchive.Writer, property Property, includeHeader bool) error {
	base := property.Base()
	if err := w.WriteFName(base.Name); err != nil {
		err := errors.Wrap(err, "uproperty.Write error writing name")
		return err
	}
	if err := w.WriteFName(uname.Dummy(property.TypeName())); err != nil {
		err := errors.Wrapf(err, `uproperty.Write error writing type of "%s"`, base.Name)
		return err
	}
	lengthPosition := w.Position()
	if err := w.WriteI32(0); err != nil {
		return err
	}
	if err := w.WriteI32(base.DuplicationIndex); err != nil {
		return err
	}
	length, err := property.write(w, includeHeader)
	if err != nil {
		err := errors.Wrapf(err, `uproperty.Write error writing %s "%s"`, property.TypeName(), base.Name)
		return err
	}
	return w.Patch(lengthPosition, func() error { return w.WriteI32(int32(length)) })
}

// WriteAll writes every property followed by the terminator.
func WriteAll(w *uarchive.Writer, properties []Property) error {
	for _, property := range properties {
		if err := Write(w, property, true); err != nil {
			return err
		}
	}
	return WriteNone(w)
}

func WriteNone(w *uarchive.Writer) error {
	return w.WriteFName(uname.Dummy(NameNone))
}

// WriteValue writes only the payload, as the elements of containers are
// stored.
func WriteValue(w *uarchive.Writer, property Property, includeHeader bool) (int64, error) {
	return property.write(w, includeHeader)
}
