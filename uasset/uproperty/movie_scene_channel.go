package uproperty

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

// floatValueSize is the serialized size of a MovieSceneFloatValue without
// the trailing alignment bytes of its in-memory layout.
const floatValueSize = 23

type (
	FrameRange struct {
		LowerBound FrameBound `json:"lower_bound"`
		UpperBound FrameBound `json:"upper_bound"`
	}
	FrameRate struct {
		Numerator   int32 `json:"numerator"`
		Denominator int32 `json:"denominator"`
	}
	MovieSceneTangentData struct {
		ArriveTangent       float32 `json:"arrive_tangent"`
		LeaveTangent        float32 `json:"leave_tangent"`
		ArriveTangentWeight float32 `json:"arrive_tangent_weight"`
		LeaveTangentWeight  float32 `json:"leave_tangent_weight"`
		TangentWeightMode   int8    `json:"tangent_weight_mode"`
	}
	// MovieSceneFloatValue is one channel key. Padding holds the bytes a bulk
	// serialized key carries past its fields.
	MovieSceneFloatValue struct {
		Value       float32               `json:"value"`
		Tangent     MovieSceneTangentData `json:"tangent"`
		InterpMode  int8                  `json:"interp_mode"`
		TangentMode int8                  `json:"tangent_mode"`
		Padding     []byte                `json:"padding,omitempty"`
	}
	MovieSceneFloatValueProperty struct {
		Header
		Value MovieSceneFloatValue `json:"value"`
	}
	// MovieSceneFloatChannel stores its key times and values as bulk arrays,
	// each prefixed with the size of one element.
	MovieSceneFloatChannel struct {
		PreInfinityExtrap  uint8                  `json:"pre_infinity_extrap"`
		PostInfinityExtrap uint8                  `json:"post_infinity_extrap"`
		Times              []int32                `json:"times"`
		ValueSize          int32                  `json:"value_size"`
		Values             []MovieSceneFloatValue `json:"values"`
		DefaultValue       float32                `json:"default_value"`
		HasDefaultValue    bool                   `json:"has_default_value"`
		TickResolution     FrameRate              `json:"tick_resolution"`
	}
	MovieSceneFloatChannelProperty struct {
		Header
		Value MovieSceneFloatChannel `json:"value"`
	}
	MovieSceneSegmentProperty struct {
		Header
		Range      FrameRange `json:"range"`
		ID         int32      `json:"id"`
		AllowEmpty bool       `json:"allow_empty"`
		// Impls are section evaluation data entries, each a list of tagged
		// properties.
		Impls [][]Property `json:"impls"`
	}
	MovieSceneEventParametersProperty struct {
		Header
		StructType  SoftPath `json:"struct_type"`
		StructBytes []byte   `json:"struct_bytes"`
	}
	// InlineStruct is a polymorphic struct stored as its type path followed
	// by its tagged properties. An empty ValueType stores nothing else.
	InlineStruct struct {
		ValueType  string     `json:"value_type"`
		Properties []Property `json:"properties,omitempty"`
	}
	MovieSceneEvalTemplatePtrProperty struct {
		Header
		Value InlineStruct `json:"value"`
	}
	MovieSceneTrackImplementationPtrProperty struct {
		Header
		Value InlineStruct `json:"value"`
	}
	MovieSceneSequenceInstanceDataPtrProperty struct {
		Header
		Value utypes.PackageIndex `json:"value"`
	}
)

func readFrameRange(r *uarchive.Reader) (frameRange FrameRange, err error) {
	if frameRange.LowerBound, err = readFrameBound(r); err != nil {
		return frameRange, err
	}
	frameRange.UpperBound, err = readFrameBound(r)
	return frameRange, err
}

func writeFrameRange(w *uarchive.Writer, frameRange FrameRange) error {
	if err := writeFrameBound(w, frameRange.LowerBound); err != nil {
		return err
	}
	return writeFrameBound(w, frameRange.UpperBound)
}

// readArray reads an i32 count followed by that many items.
func readArray[T any](r *uarchive.Reader, readItem func(r *uarchive.Reader) (T, error)) ([]T, error) {
	count, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, count)
	for i := 0; i < count; i++ {
		item, err := readItem(r)
		if err != nil {
			return nil, errors.Wrapf(err, "uproperty.readArray error reading item %d", i)
		}
		items = append(items, item)
	}
	return items, nil
}

func writeArray[T any](w *uarchive.Writer, items []T, writeItem func(w *uarchive.Writer, item T) error) error {
	if err := w.WriteI32(int32(len(items))); err != nil {
		return err
	}
	for i, item := range items {
		if err := writeItem(w, item); err != nil {
			return errors.Wrapf(err, "uproperty.writeArray error writing item %d", i)
		}
	}
	return nil
}

func readI32Item(r *uarchive.Reader) (int32, error) {
	return r.ReadI32()
}

func writeI32Item(w *uarchive.Writer, value int32) error {
	return w.WriteI32(value)
}

func readU32Item(r *uarchive.Reader) (uint32, error) {
	return r.ReadU32()
}

func writeU32Item(w *uarchive.Writer, value uint32) error {
	return w.WriteU32(value)
}

func readPropertyList(ancestry Ancestry) func(r *uarchive.Reader) ([]Property, error) {
	return func(r *uarchive.Reader) ([]Property, error) {
		return ReadAll(r, ancestry)
	}
}

func writePropertyList(w *uarchive.Writer, properties []Property) error {
	return WriteAll(w, properties)
}

func readFloatValue(r *uarchive.Reader, size int64) (value MovieSceneFloatValue, err error) {
	floats := []*float32{
		&value.Value,
		&value.Tangent.ArriveTangent,
		&value.Tangent.LeaveTangent,
		&value.Tangent.ArriveTangentWeight,
		&value.Tangent.LeaveTangentWeight,
	}
	if err := readF32s(r, floats...); err != nil {
		return value, err
	}
	for _, target := range []*int8{&value.Tangent.TangentWeightMode, &value.InterpMode, &value.TangentMode} {
		if *target, err = r.ReadI8(); err != nil {
			return value, err
		}
	}
	if size > floatValueSize {
		value.Padding, err = r.ReadBytes(int(size - floatValueSize))
	}
	return value, err
}

func writeFloatValue(w *uarchive.Writer, value MovieSceneFloatValue) error {
	err := writeF32s(
		w,
		value.Value,
		value.Tangent.ArriveTangent,
		value.Tangent.LeaveTangent,
		value.Tangent.ArriveTangentWeight,
		value.Tangent.LeaveTangentWeight,
	)
	if err != nil {
		return err
	}
	for _, mode := range []int8{value.Tangent.TangentWeightMode, value.InterpMode, value.TangentMode} {
		if err := w.WriteI8(mode); err != nil {
			return err
		}
	}
	return w.WriteBytes(value.Padding)
}

func readInlineStruct(r *uarchive.Reader, ancestry Ancestry) (value InlineStruct, err error) {
	if value.ValueType, err = r.ReadFString(); err != nil {
		return value, err
	}
	if value.ValueType == "" {
		return value, nil
	}
	value.Properties, err = ReadAll(r, ancestry)
	return value, err
}

func writeInlineStruct(w *uarchive.Writer, value InlineStruct) error {
	if err := w.WriteFString(value.ValueType); err != nil {
		return err
	}
	if value.ValueType == "" {
		return nil
	}
	return WriteAll(w, value.Properties)
}

func (p *MovieSceneFloatValueProperty) TypeName() string { return "MovieSceneFloatValue" }

func (p *MovieSceneFloatValueProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readFloatValue(r, ctx.Length)
	return err
}

func (p *MovieSceneFloatValueProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error { return writeFloatValue(w, p.Value) })
}

func (p *MovieSceneFloatChannelProperty) TypeName() string { return "MovieSceneFloatChannel" }

func (p *MovieSceneFloatChannelProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	channel := &p.Value
	if channel.PreInfinityExtrap, err = r.ReadU8(); err != nil {
		return err
	}
	if channel.PostInfinityExtrap, err = r.ReadU8(); err != nil {
		return err
	}

	timeSize, err := r.ReadI32()
	if err != nil {
		return err
	}
	if timeSize != 4 {
		return uerr.ErrInvalidFile{Reason: "MovieSceneFloatChannel key time is not 4 bytes"}
	}
	if channel.Times, err = readArray(r, readI32Item); err != nil {
		return errors.Wrap(err, "MovieSceneFloatChannel error reading times")
	}

	if channel.ValueSize, err = r.ReadI32(); err != nil {
		return err
	}
	if channel.ValueSize < floatValueSize {
		return uerr.ErrInvalidFile{Reason: "MovieSceneFloatChannel key value is too small"}
	}
	channel.Values, err = readArray(r, func(r *uarchive.Reader) (MovieSceneFloatValue, error) {
		return readFloatValue(r, int64(channel.ValueSize))
	})
	if err != nil {
		return errors.Wrap(err, "MovieSceneFloatChannel error reading values")
	}

	if channel.DefaultValue, err = r.ReadF32(); err != nil {
		return err
	}
	if channel.HasDefaultValue, err = r.ReadBool32(); err != nil {
		return err
	}
	return readI32s(r, &channel.TickResolution.Numerator, &channel.TickResolution.Denominator)
}

func (p *MovieSceneFloatChannelProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	channel := p.Value
	return measure(w, func() error {
		if err := w.WriteU8(channel.PreInfinityExtrap); err != nil {
			return err
		}
		if err := w.WriteU8(channel.PostInfinityExtrap); err != nil {
			return err
		}
		if err := w.WriteI32(4); err != nil {
			return err
		}
		if err := writeArray(w, channel.Times, writeI32Item); err != nil {
			return err
		}
		if err := w.WriteI32(channel.ValueSize); err != nil {
			return err
		}
		if err := writeArray(w, channel.Values, writeFloatValue); err != nil {
			return err
		}
		if err := w.WriteF32(channel.DefaultValue); err != nil {
			return err
		}
		if err := w.WriteBool32(channel.HasDefaultValue); err != nil {
			return err
		}
		return writeI32s(w, channel.TickResolution.Numerator, channel.TickResolution.Denominator)
	})
}

func (p *MovieSceneSegmentProperty) TypeName() string { return "MovieSceneSegment" }

func (p *MovieSceneSegmentProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.Range, err = readFrameRange(r); err != nil {
		return err
	}
	if p.ID, err = r.ReadI32(); err != nil {
		return err
	}
	if p.AllowEmpty, err = r.ReadBool32(); err != nil {
		return err
	}
	p.Impls, err = readArray(r, readPropertyList(ctx.Ancestry.With(p.TypeName())))
	return err
}

func (p *MovieSceneSegmentProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		if err := writeFrameRange(w, p.Range); err != nil {
			return err
		}
		if err := w.WriteI32(p.ID); err != nil {
			return err
		}
		if err := w.WriteBool32(p.AllowEmpty); err != nil {
			return err
		}
		return writeArray(w, p.Impls, writePropertyList)
	})
}

func (p *MovieSceneEventParametersProperty) TypeName() string { return "MovieSceneEventParameters" }

func (p *MovieSceneEventParametersProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.StructType, err = readSoftPath(r); err != nil {
		return err
	}
	size, err := r.ReadCount()
	if err != nil {
		return err
	}
	p.StructBytes, err = r.ReadBytes(size)
	return err
}

func (p *MovieSceneEventParametersProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		if _, err := writeSoftPath(w, p.StructType); err != nil {
			return err
		}
		if err := w.WriteI32(int32(len(p.StructBytes))); err != nil {
			return err
		}
		return w.WriteBytes(p.StructBytes)
	})
}

func (p *MovieSceneEvalTemplatePtrProperty) TypeName() string { return "MovieSceneEvalTemplatePtr" }

func (p *MovieSceneEvalTemplatePtrProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readInlineStruct(r, ctx.Ancestry.With(p.TypeName()))
	return err
}

func (p *MovieSceneEvalTemplatePtrProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error { return writeInlineStruct(w, p.Value) })
}

func (p *MovieSceneTrackImplementationPtrProperty) TypeName() string {
	return "MovieSceneTrackImplementationPtr"
}

func (p *MovieSceneTrackImplementationPtrProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readInlineStruct(r, ctx.Ancestry.With(p.TypeName()))
	return err
}

func (p *MovieSceneTrackImplementationPtrProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error { return writeInlineStruct(w, p.Value) })
}

func (p *MovieSceneSequenceInstanceDataPtrProperty) TypeName() string {
	return "MovieSceneSequenceInstanceDataPtr"
}

func (p *MovieSceneSequenceInstanceDataPtrProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadPackageIndex()
	return err
}

func (p *MovieSceneSequenceInstanceDataPtrProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 4, w.WritePackageIndex(p.Value)
}
