package uproperty

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/ds"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

const TypeStructProperty = "StructProperty"

type (
	ArrayProperty struct {
		Header
		ArrayType string `json:"array_type"`
		// InnerTag describes the elements of struct arrays in newer object
		// versions.
		InnerTag *ArrayInnerTag `json:"inner_tag,omitempty"`
		Value    []Property     `json:"value"`
		// RawElements holds struct elements that could not be split into
		// values. Value is empty when it is set.
		RawElements *RawElements `json:"raw_elements,omitempty"`
	}
	RawElements struct {
		Count int32  `json:"count"`
		Data  []byte `json:"data"`
	}
	ArrayInnerTag struct {
		Name         uname.Name   `json:"name"`
		StructType   uname.Name   `json:"struct_type"`
		StructGuid   utypes.Guid  `json:"struct_guid"`
		PropertyGuid *utypes.Guid `json:"property_guid,omitempty"`
	}
	SetProperty struct {
		Header
		ElementType  string        `json:"element_type"`
		RemovedItems ArrayProperty `json:"removed_items"`
		Items        ArrayProperty `json:"items"`
	}
	MapProperty struct {
		Header
		KeyType      string     `json:"key_type"`
		ValueType    string     `json:"value_type"`
		KeysToRemove []Property `json:"keys_to_remove"`
		Entries      []MapEntry `json:"entries"`
	}
	MapEntry struct {
		Key   Property `json:"key"`
		Value Property `json:"value"`
	}
)

func (p *ArrayProperty) TypeName() string { return "ArrayProperty" }

func (p *ArrayProperty) read(r *uarchive.Reader, ctx Context) error {
	if ctx.IncludeHeader {
		arrayType, err := r.ReadFName()
		if err != nil {
			return err
		}
		p.ArrayType = arrayType.Content()
		if err := p.readGuid(r, true); err != nil {
			return err
		}
	}
	if p.ArrayType == "" {
		return uerr.ErrNoData{Reason: "array without element type"}
	}
	return p.readElements(r, ctx, true, 4)
}

// readElements reads a count and the elements. countsSize is the size of the
// counts that precede the elements in the payload.
func (p *ArrayProperty) readElements(r *uarchive.Reader, ctx Context, structsWithTag bool, countsSize int64) error {
	count, err := r.ReadCount()
	if err != nil {
		return errors.Wrap(err, "ArrayProperty error reading count")
	}
	p.Value = make([]Property, 0, count)

	if p.ArrayType == TypeStructProperty && structsWithTag {
		elementName := p.Name
		structType := uname.Dummy(TypeGeneric)
		structLength := int64(1)
		if r.AtLeast(uversion.VerInnerArrayTagInfo) {
			tag := ArrayInnerTag{}
			if tag.Name, err = r.ReadFName(); err != nil {
				return err
			}
			innerType, err := r.ReadFName()
			if err != nil {
				return err
			}
			if !innerType.Is(TypeStructProperty) {
				return uerr.ErrInvalidFile{Reason: `array inner type "` + innerType.String() + `" does not match StructProperty`}
			}
			if structLength, err = r.ReadI64(); err != nil {
				return err
			}
			if tag.StructType, err = r.ReadFName(); err != nil {
				return err
			}
			if tag.StructGuid, err = r.ReadGuidValue(); err != nil {
				return err
			}
			if tag.PropertyGuid, err = r.ReadPropertyGuid(); err != nil {
				return err
			}
			p.InnerTag = &tag
			elementName = tag.Name
			structType = tag.StructType
		} else if override, ok := r.ArrayStructTypes.Get(p.Name.Content()); ok {
			structType = uname.Dummy(override)
		}

		if p.InnerTag != nil && count > 0 && isCustomStruct(r.Settings, structType.Content()) {
			return p.readCustomElements(r, ctx, count, elementName, structType, structLength)
		}
		for i := 0; i < count; i++ {
			element, err := ReadStruct(r, elementName, structType, ctx.Ancestry, structLength)
			if err != nil {
				return errors.Wrapf(err, "ArrayProperty error reading element %d", i)
			}
			p.Value = append(p.Value, element)
		}
		return nil
	}

	if count == 0 {
		return nil
	}
	elementCtx := Context{
		Length:         ctx.Length / int64(count),
		FallbackLength: (ctx.Length - countsSize) / int64(count),
		Ancestry:       ctx.Ancestry,
	}
	for i := 0; i < count; i++ {
		element, err := Decode(r, p.ArrayType, uname.Dummy(strconv.Itoa(i)), elementCtx, 0)
		if err != nil {
			return errors.Wrapf(err, "ArrayProperty error reading element %d", i)
		}
		p.Value = append(p.Value, element)
	}
	return nil
}

// readCustomElements splits length bytes of custom serialized structs into
// count elements. When the struct type has no codec, or the elements do not
// fill length exactly, the bytes are kept in RawElements.
func (p *ArrayProperty) readCustomElements(
	r *uarchive.Reader,
	ctx Context,
	count int,
	elementName uname.Name,
	structType uname.Name,
	length int64,
) error {
	begin := r.Position()
	if _, ok := registry[structType.Content()]; ok {
		elements := make([]Property, 0, count)
		for i := 0; i < count; i++ {
			element, err := ReadStruct(r, elementName, structType, ctx.Ancestry, length/int64(count))
			if err != nil {
				break
			}
			elements = append(elements, element)
		}
		if len(elements) == count && r.Position()-begin == length {
			p.Value = elements
			return nil
		}
		if err := r.Seek(begin); err != nil {
			return err
		}
	}
	if length < 0 {
		return uerr.ErrInvalidFile{Reason: "negative struct array length"}
	}
	data, err := r.ReadBytes(int(length))
	if err != nil {
		return errors.Wrapf(err, "ArrayProperty error reading %d raw %s elements", count, structType)
	}
	p.RawElements = &RawElements{Count: int32(count), Data: data}
	return nil
}

func (p *ArrayProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if includeHeader {
		if err := w.WriteFName(uname.Dummy(p.ArrayType)); err != nil {
			return 0, err
		}
		if err := p.writeGuid(w, true); err != nil {
			return 0, err
		}
	}
	return measure(w, func() error { return p.writeElements(w, true) })
}

func (p *ArrayProperty) innerTag() (*ArrayInnerTag, error) {
	if p.InnerTag != nil {
		return p.InnerTag, nil
	}
	if len(p.Value) > 0 {
		if first, ok := p.Value[0].(*StructProperty); ok {
			return &ArrayInnerTag{Name: p.Name, StructType: first.StructType}, nil
		}
	}
	return nil, uerr.ErrNoData{Reason: `struct array "` + p.Name.String() + `" has no inner tag`}
}

func (p *ArrayProperty) writeElements(w *uarchive.Writer, structsWithTag bool) error {
	count := int32(len(p.Value))
	if p.RawElements != nil {
		count = p.RawElements.Count
	}
	if err := w.WriteI32(count); err != nil {
		return err
	}

	lengthPosition := int64(-1)
	if p.ArrayType == TypeStructProperty && structsWithTag && w.AtLeast(uversion.VerInnerArrayTagInfo) {
		tag, err := p.innerTag()
		if err != nil {
			return err
		}
		if err := w.WriteFName(tag.Name); err != nil {
			return err
		}
		if err := w.WriteFName(uname.Dummy(TypeStructProperty)); err != nil {
			return err
		}
		lengthPosition = w.Position()
		if err := w.WriteI64(0); err != nil {
			return err
		}
		if err := w.WriteFName(tag.StructType); err != nil {
			return err
		}
		if err := w.WriteGuidValue(tag.StructGuid); err != nil {
			return err
		}
		if err := w.WritePropertyGuid(tag.PropertyGuid); err != nil {
			return err
		}
	}

	begin := w.Position()
	if p.RawElements != nil {
		if err := w.WriteBytes(p.RawElements.Data); err != nil {
			return err
		}
	}
	for i, element := range p.Value {
		if _, err := element.write(w, false); err != nil {
			return errors.Wrapf(err, "ArrayProperty error writing element %d", i)
		}
	}
	if lengthPosition < 0 {
		return nil
	}
	length := w.Position() - begin
	return w.Patch(lengthPosition, func() error { return w.WriteI64(length) })
}

func (p *SetProperty) TypeName() string { return "SetProperty" }

func (p *SetProperty) read(r *uarchive.Reader, ctx Context) error {
	if ctx.IncludeHeader {
		elementType, err := r.ReadFName()
		if err != nil {
			return err
		}
		p.ElementType = elementType.Content()
		if err := p.readGuid(r, true); err != nil {
			return err
		}
	}
	if p.ElementType == "" {
		return uerr.ErrNoData{Reason: "set without element type"}
	}

	p.RemovedItems = ArrayProperty{Header: Header{Name: p.Name}, ArrayType: p.ElementType}
	if err := p.RemovedItems.readElements(r, ctx, false, 8); err != nil {
		return errors.Wrap(err, "SetProperty error reading removed items")
	}
	p.Items = ArrayProperty{Header: Header{Name: p.Name}, ArrayType: p.ElementType}
	if err := p.Items.readElements(r, ctx, false, 8); err != nil {
		return errors.Wrap(err, "SetProperty error reading items")
	}
	return nil
}

func (p *SetProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if includeHeader {
		if err := w.WriteFName(uname.Dummy(p.ElementType)); err != nil {
			return 0, err
		}
		if err := p.writeGuid(w, true); err != nil {
			return 0, err
		}
	}
	p.RemovedItems.ArrayType = p.ElementType
	p.Items.ArrayType = p.ElementType
	return measure(w, func() error {
		if err := p.RemovedItems.writeElements(w, false); err != nil {
			return err
		}
		return p.Items.writeElements(w, false)
	})
}

// structTypeFor looks an override up by property name, then by the
// enclosing type.
func structTypeFor(overrides *ds.LinkedHashMap[string, string], name string, ancestry Ancestry) string {
	if overrides == nil {
		return TypeGeneric
	}
	if structType, ok := overrides.Get(name); ok {
		return structType
	}
	if parent := ancestry.Parent(); parent != "" {
		if structType, ok := overrides.Get(parent); ok {
			return structType
		}
	}
	return TypeGeneric
}

func (p *MapProperty) TypeName() string { return "MapProperty" }

func (p *MapProperty) readElement(r *uarchive.Reader, ctx Context, typeName string, isKey bool) (Property, error) {
	if typeName == TypeStructProperty {
		overrides := r.MapValueStructTypes
		if isKey {
			overrides = r.MapKeyStructTypes
		}
		structType := structTypeFor(overrides, p.Name.Content(), ctx.Ancestry)
		return ReadStruct(r, p.Name, uname.Dummy(structType), ctx.Ancestry, 1)
	}
	elementCtx := Context{Length: ctx.Length, Ancestry: ctx.Ancestry}
	return Decode(r, typeName, p.Name, elementCtx, 0)
}

func (p *MapProperty) read(r *uarchive.Reader, ctx Context) error {
	if ctx.IncludeHeader {
		keyType, err := r.ReadFName()
		if err != nil {
			return err
		}
		valueType, err := r.ReadFName()
		if err != nil {
			return err
		}
		p.KeyType = keyType.Content()
		p.ValueType = valueType.Content()
		if err := p.readGuid(r, true); err != nil {
			return err
		}
	}
	if p.KeyType == "" || p.ValueType == "" {
		return uerr.ErrNoData{Reason: "map without key or value type"}
	}

	removeCount, err := r.ReadCount()
	if err != nil {
		return errors.Wrap(err, "MapProperty error reading keys to remove count")
	}
	p.KeysToRemove = make([]Property, 0, removeCount)
	for i := 0; i < removeCount; i++ {
		key, err := p.readElement(r, ctx, p.KeyType, true)
		if err != nil {
			return errors.Wrapf(err, "MapProperty error reading key to remove %d", i)
		}
		p.KeysToRemove = append(p.KeysToRemove, key)
	}

	count, err := r.ReadCount()
	if err != nil {
		return errors.Wrap(err, "MapProperty error reading entry count")
	}
	p.Entries = make([]MapEntry, 0, count)
	for i := 0; i < count; i++ {
		key, err := p.readElement(r, ctx, p.KeyType, true)
		if err != nil {
			return errors.Wrapf(err, "MapProperty error reading key %d", i)
		}
		value, err := p.readElement(r, ctx, p.ValueType, false)
		if err != nil {
			return errors.Wrapf(err, "MapProperty error reading value %d", i)
		}
		p.Entries = append(p.Entries, MapEntry{Key: key, Value: value})
	}
	return nil
}

func (p *MapProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if includeHeader {
		if err := w.WriteFName(uname.Dummy(p.KeyType)); err != nil {
			return 0, err
		}
		if err := w.WriteFName(uname.Dummy(p.ValueType)); err != nil {
			return 0, err
		}
		if err := p.writeGuid(w, true); err != nil {
			return 0, err
		}
	}
	return measure(w, func() error {
		if err := w.WriteI32(int32(len(p.KeysToRemove))); err != nil {
			return err
		}
		for _, key := range p.KeysToRemove {
			if _, err := key.write(w, false); err != nil {
				return err
			}
		}
		if err := w.WriteI32(int32(len(p.Entries))); err != nil {
			return err
		}
		for _, entry := range p.Entries {
			if _, err := entry.Key.write(w, false); err != nil {
				return err
			}
			if _, err := entry.Value.write(w, false); err != nil {
				return err
			}
		}
		return nil
	})
}
