package uproperty

import (
	"github.com/samber/lo"
)

// registry maps the serialized type tag to a constructor of an empty codec.
// Every codec's TypeName must equal its key.
var registry = map[string]func() Property{
	"BoolProperty":   func() Property { return &BoolProperty{} },
	"Int8Property":   func() Property { return &Int8Property{} },
	"Int16Property":  func() Property { return &Int16Property{} },
	"IntProperty":    func() Property { return &IntProperty{} },
	"Int64Property":  func() Property { return &Int64Property{} },
	"UInt16Property": func() Property { return &UInt16Property{} },
	"UInt32Property": func() Property { return &UInt32Property{} },
	"UInt64Property": func() Property { return &UInt64Property{} },
	"FloatProperty":  func() Property { return &FloatProperty{} },
	"DoubleProperty": func() Property { return &DoubleProperty{} },

	"ByteProperty":        func() Property { return &ByteProperty{} },
	"EnumProperty":        func() Property { return &EnumProperty{} },
	"NameProperty":        func() Property { return &NameProperty{} },
	"StrProperty":         func() Property { return &StrProperty{} },
	"TextProperty":        func() Property { return &TextProperty{} },
	"ObjectProperty":      func() Property { return &ObjectProperty{} },
	"WeakObjectProperty":  func() Property { return &WeakObjectProperty{} },
	"LazyObjectProperty":  func() Property { return &LazyObjectProperty{} },
	"InterfaceProperty":   func() Property { return &InterfaceProperty{} },
	"AssetObjectProperty": func() Property { return &AssetObjectProperty{} },
	"SoftObjectProperty":  func() Property { return &SoftObjectProperty{} },
	"FieldPathProperty":   func() Property { return &FieldPathProperty{} },

	"ArrayProperty":  func() Property { return &ArrayProperty{} },
	"SetProperty":    func() Property { return &SetProperty{} },
	"MapProperty":    func() Property { return &MapProperty{} },
	"StructProperty": func() Property { return &StructProperty{} },

	"DelegateProperty":                func() Property { return &DelegateProperty{} },
	"MulticastDelegateProperty":       func() Property { return &MulticastDelegateProperty{} },
	"MulticastSparseDelegateProperty": func() Property { return &MulticastSparseDelegateProperty{} },
	"MulticastInlineDelegateProperty": func() Property { return &MulticastInlineDelegateProperty{} },

	"IntPoint":    func() Property { return &IntPointProperty{} },
	"Vector":      func() Property { return &VectorProperty{} },
	"Vector4":     func() Property { return &Vector4Property{} },
	"Vector2D":    func() Property { return &Vector2DProperty{} },
	"Box":         func() Property { return &BoxProperty{} },
	"Box2D":       func() Property { return &Box2DProperty{} },
	"Quat":        func() Property { return &QuatProperty{} },
	"Rotator":     func() Property { return &RotatorProperty{} },
	"LinearColor": func() Property { return &LinearColorProperty{} },
	"Color":       func() Property { return &ColorProperty{} },
	"Timespan":    func() Property { return &TimespanProperty{} },
	"DateTime":    func() Property { return &DateTimeProperty{} },
	"Guid":        func() Property { return &GuidProperty{} },

	"PerPlatformBool":  func() Property { return &PerPlatformBoolProperty{} },
	"PerPlatformInt":   func() Property { return &PerPlatformIntProperty{} },
	"PerPlatformFloat": func() Property { return &PerPlatformFloatProperty{} },

	"ExpressionInput":           func() Property { return &ExpressionInputProperty{} },
	"MaterialAttributesInput":   func() Property { return &MaterialAttributesInputProperty{} },
	"ColorMaterialInput":        func() Property { return &ColorMaterialInputProperty{} },
	"ScalarMaterialInput":       func() Property { return &ScalarMaterialInputProperty{} },
	"ShadingModelMaterialInput": func() Property { return &ShadingModelMaterialInputProperty{} },
	"VectorMaterialInput":       func() Property { return &VectorMaterialInputProperty{} },
	"Vector2MaterialInput":      func() Property { return &Vector2MaterialInputProperty{} },

	"WeightedRandomSampler":                   func() Property { return &WeightedRandomSamplerProperty{} },
	"SkeletalMeshAreaWeightedTriangleSampler": func() Property { return &SkeletalMeshAreaWeightedTriangleSamplerProperty{} },
	"SkeletalMeshSamplingLODBuiltData":        func() Property { return &SkeletalMeshSamplingLODBuiltDataProperty{} },

	"SoftObjectPath":       func() Property { return &SoftObjectPathProperty{} },
	"SoftClassPath":        func() Property { return &SoftClassPathProperty{} },
	"SoftAssetPath":        func() Property { return &SoftAssetPathProperty{} },
	"StringAssetReference": func() Property { return &StringAssetReferenceProperty{} },

	"RichCurveKey":          func() Property { return &RichCurveKeyProperty{} },
	"ViewTargetBlendParams": func() Property { return &ViewTargetBlendParamsProperty{} },
	"GameplayTagContainer":  func() Property { return &GameplayTagContainerProperty{} },
	"SmartName":             func() Property { return &SmartNameProperty{} },
	"FontCharacter":         func() Property { return &FontCharacterProperty{} },
	"UniqueNetIdRepl":       func() Property { return &UniqueNetIdReplProperty{} },
	"FloatRange":            func() Property { return &FloatRangeProperty{} },
	"RawStructProperty":     func() Property { return &RawStructProperty{} },

	"NiagaraVariable":           func() Property { return &NiagaraVariableProperty{} },
	"NiagaraVariableWithOffset": func() Property { return &NiagaraVariableWithOffsetProperty{} },
	"FontData":                  func() Property { return &FontDataProperty{} },
	"ClothLODData":              func() Property { return &ClothLODDataProperty{} },

	"MovieSceneSequenceId":                func() Property { return &MovieSceneSequenceIdProperty{} },
	"MovieSceneTrackIdentifier":           func() Property { return &MovieSceneTrackIdentifierProperty{} },
	"MovieSceneSegmentIdentifier":         func() Property { return &MovieSceneSegmentIdentifierProperty{} },
	"MovieSceneEvaluationKey":             func() Property { return &MovieSceneEvaluationKeyProperty{} },
	"MovieSceneFrameRange":                func() Property { return &MovieSceneFrameRangeProperty{} },
	"MovieSceneFloatValue":                func() Property { return &MovieSceneFloatValueProperty{} },
	"MovieSceneFloatChannel":              func() Property { return &MovieSceneFloatChannelProperty{} },
	"MovieSceneSegment":                   func() Property { return &MovieSceneSegmentProperty{} },
	"MovieSceneEventParameters":           func() Property { return &MovieSceneEventParametersProperty{} },
	"MovieSceneEvalTemplatePtr":           func() Property { return &MovieSceneEvalTemplatePtrProperty{} },
	"MovieSceneTrackImplementationPtr":    func() Property { return &MovieSceneTrackImplementationPtrProperty{} },
	"MovieSceneSequenceInstanceDataPtr":   func() Property { return &MovieSceneSequenceInstanceDataPtrProperty{} },
	"MovieSceneEvaluationFieldEntityTree": func() Property { return &MovieSceneEvaluationFieldEntityTreeProperty{} },
	"MovieSceneSubSequenceTree":           func() Property { return &MovieSceneSubSequenceTreeProperty{} },
	"SectionEvaluationDataTree":           func() Property { return &SectionEvaluationDataTreeProperty{} },
	"MovieSceneTrackFieldData":            func() Property { return &MovieSceneTrackFieldDataProperty{} },
}

// RegisteredTypes lists every type tag with a dedicated codec.
func RegisteredTypes() []string {
	return lo.Keys(registry)
}
