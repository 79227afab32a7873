package uexport

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/ds"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
)

// Kind is the codec an export is decoded with.
type Kind int

const (
	KindRaw Kind = iota
	KindNormal
	KindLevel
	KindStringTable
	KindEnum
	KindFunction
	KindDataTable
	KindClass
	KindProperty
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "Raw"
	case KindNormal:
		return "Normal"
	case KindLevel:
		return "Level"
	case KindStringTable:
		return "StringTable"
	case KindEnum:
		return "Enum"
	case KindFunction:
		return "Function"
	case KindDataTable:
		return "DataTable"
	case KindClass:
		return "Class"
	case KindProperty:
		return "Property"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Dispatch picks the codec for a class type. Exact names win over suffixes.
func Dispatch(classType string) Kind {
	switch classType {
	case "Level":
		return KindLevel
	case "StringTable":
		return KindStringTable
	case "Enum", "UserDefinedEnum":
		return KindEnum
	case "Function":
		return KindFunction
	}

	switch {
	case strings.HasSuffix(classType, "DataTable"):
		return KindDataTable
	case strings.HasSuffix(classType, "StringTable"):
		return KindStringTable
	case strings.HasSuffix(classType, "BlueprintGeneratedClass"):
		return KindClass
	case strings.HasSuffix(classType, "Property"):
		return KindProperty
	default:
		return KindNormal
	}
}

// New returns an empty export of the given kind around base.
func New(kind Kind, base BaseExport) Export {
	normal := NormalExport{BaseExport: base}
	switch kind {
	case KindRaw:
		return &RawExport{BaseExport: base}
	case KindLevel:
		return &LevelExport{NormalExport: normal}
	case KindStringTable:
		return &StringTableExport{NormalExport: normal}
	case KindEnum:
		return &EnumExport{NormalExport: normal}
	case KindFunction:
		return &FunctionExport{StructExport: StructExport{NormalExport: normal}}
	case KindDataTable:
		return &DataTableExport{NormalExport: normal}
	case KindClass:
		return &ClassExport{StructExport: StructExport{NormalExport: normal}}
	case KindProperty:
		return &PropertyExport{NormalExport: normal}
	default:
		return &normal
	}
}

func NewOverrides() Overrides {
	return Overrides{
		MapKeyStructTypes:   ds.NewLinkedHashMap[string, string](),
		MapValueStructTypes: ds.NewLinkedHashMap[string, string](),
	}
}

// Apply merges the overrides into the tables used by later decodes.
func (o Overrides) Apply(settings *uarchive.Settings) {
	if o.MapKeyStructTypes != nil {
		settings.MapKeyStructTypes.Extend(o.MapKeyStructTypes)
	}
	if o.MapValueStructTypes != nil {
		settings.MapValueStructTypes.Extend(o.MapValueStructTypes)
	}
}

func (o Overrides) Len() int {
	length := 0
	if o.MapKeyStructTypes != nil {
		length += o.MapKeyStructTypes.Len()
	}
	if o.MapValueStructTypes != nil {
		length += o.MapValueStructTypes.Len()
	}
	return length
}

func decode(r *uarchive.Reader, base BaseExport, ctx Context) (Decoded, error) {
	decoded := Decoded{Overrides: NewOverrides()}

	classType, err := r.Resolver.ResolveClassName(base.ClassIndex)
	if err != nil {
		return decoded, errors.Wrap(err, "uexport.Decode error resolving class type")
	}
	if err := r.Seek(base.SerialOffset); err != nil {
		return decoded, err
	}

	ctx.ClassType = classType
	decoded.Kind = Dispatch(classType)
	export := New(decoded.Kind, base)
	if err := export.read(r, ctx); err != nil {
		err := errors.Wrapf(err, `uexport.Decode error reading %s export "%s"`, classType, base.ObjectName)
		return decoded, err
	}
	if class, ok := export.(*ClassExport); ok {
		decoded.Overrides = class.MapOverrides(r.Resolver)
	}

	extrasLength := ctx.End - r.Position()
	if extrasLength < 0 {
		reason := fmt.Sprintf(`export "%s" reads %d bytes past its end`, base.ObjectName, -extrasLength)
		return decoded, uerr.ErrInvalidFile{Reason: reason}
	}
	if normalized, ok := export.(Normalized); ok {
		extras, err := r.ReadBytes(int(extrasLength))
		if err != nil {
			return decoded, err
		}
		normalized.Normal().Extras = extras
	}

	decoded.Export = export
	return decoded, nil
}

// Decode reads the export whose map entry is base. ctx.End is where the
// next export starts. When the chosen codec fails, the serialized range is
// kept as a RawExport and Fallback holds the failure; the returned error is
// only set when even the raw bytes cannot be read.
func Decode(r *uarchive.Reader, base BaseExport, ctx Context) (Decoded, error) {
	decoded, fallback := decode(r, base, ctx)
	if fallback == nil {
		return decoded, nil
	}

	if err := r.Seek(base.SerialOffset); err != nil {
		err := errors.Wrapf(err, `uexport.Decode error seeking to export "%s"`, base.ObjectName)
		return Decoded{}, err
	}
	raw := &RawExport{BaseExport: base}
	if err := raw.read(r, ctx); err != nil {
		err := errors.Wrapf(err, `uexport.Decode error reading raw export "%s"`, base.ObjectName)
		return Decoded{}, err
	}
	return Decoded{
		Export:    raw,
		Kind:      KindRaw,
		Overrides: decoded.Overrides,
		Fallback:  fallback,
	}, nil
}

// Encode writes the payload of export followed by its extra bytes.
func Encode(w *uarchive.Writer, export Export, ctx Context) error {
	if err := export.write(w, ctx); err != nil {
		err := errors.Wrapf(err, `uexport.Encode error writing export "%s"`, export.Base().ObjectName)
		return err
	}
	if normalized, ok := export.(Normalized); ok {
		return w.WriteBytes(normalized.Normal().Extras)
	}
	return nil
}
