package uproperty

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

// customSerialization lists the struct types stored as one bare value
// instead of a list of tagged properties.
var customSerialization = map[string]struct{}{
	"SkeletalMeshSamplingLODBuiltData":        {},
	"SkeletalMeshAreaWeightedTriangleSampler": {},
	"SmartName":                               {},
	"SoftObjectPath":                          {},
	"WeightedRandomSampler":                   {},
	"SoftClassPath":                           {},
	"StringAssetReference":                    {},
	"Color":                                   {},
	"ExpressionInput":                         {},
	"MaterialAttributesInput":                 {},
	"ColorMaterialInput":                      {},
	"ScalarMaterialInput":                     {},
	"ShadingModelMaterialInput":               {},
	"VectorMaterialInput":                     {},
	"Vector2MaterialInput":                    {},
	"GameplayTagContainer":                    {},
	"PerPlatformBool":                         {},
	"PerPlatformInt":                          {},
	"RichCurveKey":                            {},
	"SoftAssetPath":                           {},
	"Timespan":                                {},
	"DateTime":                                {},
	"Guid":                                    {},
	"IntPoint":                                {},
	"LinearColor":                             {},
	"Quat":                                    {},
	"Rotator":                                 {},
	"Vector2D":                                {},
	"Box":                                     {},
	"PerPlatformFloat":                        {},
	"Vector4":                                 {},
	"Vector":                                  {},
	"ViewTargetBlendParams":                   {},
	"FontCharacter":                           {},
	"UniqueNetIdRepl":                         {},
	"NiagaraVariable":                         {},
	"NiagaraVariableWithOffset":               {},
	"FontData":                                {},
	"ClothLODData":                            {},
	"FloatRange":                              {},
	"RawStructProperty":                       {},
	"MovieSceneEvalTemplatePtr":               {},
	"MovieSceneTrackImplementationPtr":        {},
	"MovieSceneEvaluationFieldEntityTree":     {},
	"MovieSceneSubSequenceTree":               {},
	"MovieSceneSequenceInstanceDataPtr":       {},
	"SectionEvaluationDataTree":               {},
	"MovieSceneTrackFieldData":                {},
	"MovieSceneEventParameters":               {},
	"MovieSceneFloatChannel":                  {},
	"MovieSceneFloatValue":                    {},
	"MovieSceneFrameRange":                    {},
	"MovieSceneSegment":                       {},
	"MovieSceneSegmentIdentifier":             {},
	"MovieSceneTrackIdentifier":               {},
	"MovieSceneSequenceId":                    {},
	"MovieSceneEvaluationKey":                 {},
}

func HasCustomSerialization(structType string) bool {
	_, ok := customSerialization[structType]
	return ok
}

type StructProperty struct {
	Header
	StructType uname.Name  `json:"struct_type"`
	StructGuid utypes.Guid `json:"struct_guid"`
	// SerializeNone is set for structs stored as tagged properties, which end
	// with a "None" terminator.
	SerializeNone bool       `json:"serialize_none"`
	Value         []Property `json:"value"`
}

func (p *StructProperty) TypeName() string { return "StructProperty" }

func (p *StructProperty) isCustom(settings *uarchive.Settings) bool {
	return isCustomStruct(settings, p.StructType.Content())
}

func isCustomStruct(settings *uarchive.Settings, structType string) bool {
	if structType == "RichCurveKey" && !settings.AtLeast(uversion.VerSerializeRichCurveKey) {
		return false
	}
	return HasCustomSerialization(structType)
}

func (p *StructProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if ctx.IncludeHeader {
		if p.StructType, err = r.ReadFName(); err != nil {
			return err
		}
		if r.AtLeast(uversion.VerStructGuidInPropertyTag) {
			if p.StructGuid, err = r.ReadGuidValue(); err != nil {
				return err
			}
		}
		if err := p.readGuid(r, true); err != nil {
			return err
		}
	}
	return p.readBody(r, ctx)
}

func (p *StructProperty) readBody(r *uarchive.Reader, ctx Context) error {
	p.Value = []Property{}
	if ctx.Length == 0 {
		return nil
	}

	structType := p.StructType.Content()
	if !p.isCustom(r.Settings) {
		properties, err := ReadAll(r, ctx.Ancestry.With(structType))
		if err != nil {
			return err
		}
		p.Value = properties
		p.SerializeNone = true
		return nil
	}

	begin := r.Position()
	inner := Context{Length: ctx.Length, Ancestry: ctx.Ancestry.With(structType)}
	property, err := Decode(r, structType, p.Name, inner, 0)
	// a top-level tag knows the exact payload size, anything else that a
	// custom codec makes of it is kept as raw bytes
	if ctx.IncludeHeader && (err != nil || r.Position()-begin != ctx.Length) {
		if err := r.Seek(begin); err != nil {
			return err
		}
		unknown := &UnknownProperty{
			Header:         Header{Name: p.Name},
			SerializedType: structType,
		}
		if err := unknown.read(r, Context{Length: ctx.Length}); err != nil {
			return err
		}
		property, err = unknown, nil
	}
	if err != nil {
		return err
	}
	p.Value = []Property{property}
	return nil
}

func (p *StructProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if includeHeader {
		if err := w.WriteFName(p.StructType); err != nil {
			return 0, err
		}
		if w.AtLeast(uversion.VerStructGuidInPropertyTag) {
			if err := w.WriteGuidValue(p.StructGuid); err != nil {
				return 0, err
			}
		}
		if err := p.writeGuid(w, true); err != nil {
			return 0, err
		}
	}

	if p.isCustom(w.Settings) {
		if len(p.Value) != 1 {
			err := errors.Errorf(`custom struct "%s" must hold exactly one value, got %d`, p.StructType, len(p.Value))
			return 0, err
		}
		return measure(w, func() error {
			_, err := p.Value[0].write(w, false)
			return err
		})
	}
	if len(p.Value) == 0 && !p.SerializeNone {
		return 0, nil
	}
	return measure(w, func() error {
		for _, property := range p.Value {
			if err := Write(w, property, true); err != nil {
				return err
			}
		}
		if p.SerializeNone {
			return WriteNone(w)
		}
		return nil
	})
}

// ReadStruct reads a header-less struct of the given type, as table rows and
// container elements are stored.
func ReadStruct(
	r *uarchive.Reader,
	name uname.Name,
	structType uname.Name,
	ancestry Ancestry,
	length int64,
) (*StructProperty, error) {
	property := &StructProperty{
		Header:     Header{Name: name},
		StructType: structType,
	}
	if err := property.readBody(r, Context{Length: length, Ancestry: ancestry}); err != nil {
		err := errors.Wrapf(err, `uproperty.ReadStruct error reading %s "%s"`, structType, name)
		return nil, err
	}
	return property, nil
}

// Find returns the first member named name.
func (p *StructProperty) Find(name string) (Property, bool) {
	for _, property := range p.Value {
		if property.Base().Name.Is(name) {
			return property, true
		}
	}
	return nil, false
}
