package uexport

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/ds"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

type (
	// FieldLayout lists what a typed field stores after its common part:
	// object references first, then nested field definitions.
	FieldLayout struct {
		References []string
		Children   []string
	}
	// FProperty is a field definition stored inline in a struct export.
	FProperty struct {
		SerializedType                uname.Name `json:"serialized_type"`
		Name                          uname.Name `json:"name"`
		Flags                         uint32     `json:"flags"`
		ArrayDim                      int32      `json:"array_dim"`
		ElementSize                   int32      `json:"element_size"`
		PropertyFlags                 uint64     `json:"property_flags"`
		RepIndex                      uint16     `json:"rep_index"`
		RepNotifyFunc                 uname.Name `json:"rep_notify_func"`
		BlueprintReplicationCondition uint8      `json:"blueprint_replication_condition"`
		// References are keyed by the roles of the type's layout.
		References *ds.LinkedHashMap[string, utypes.PackageIndex] `json:"references,omitempty"`
		Children   []*FProperty                                   `json:"children,omitempty"`
		Bool       *BoolLayout                                    `json:"bool,omitempty"`
	}
	BoolLayout struct {
		FieldSize  uint8 `json:"field_size"`
		ByteOffset uint8 `json:"byte_offset"`
		ByteMask   uint8 `json:"byte_mask"`
		FieldMask  uint8 `json:"field_mask"`
		NativeBool bool  `json:"native_bool"`
		Value      bool  `json:"value"`
	}
	// UField is the legacy linked list header of reflected fields.
	UField struct {
		Next *utypes.PackageIndex `json:"next,omitempty"`
	}
)

var (
	objectReferences   = []string{"property_class"}
	classReferences    = []string{"property_class", "meta_class"}
	delegateReferences = []string{"signature_function"}
)

var fieldLayouts = map[string]FieldLayout{
	"EnumProperty":                    {References: []string{"enum"}, Children: []string{"underlying"}},
	"ArrayProperty":                   {Children: []string{"inner"}},
	"SetProperty":                     {Children: []string{"element"}},
	"MapProperty":                     {Children: []string{"key", "value"}},
	"ByteProperty":                    {References: []string{"enum"}},
	"ObjectProperty":                  {References: objectReferences},
	"WeakObjectProperty":              {References: objectReferences},
	"LazyObjectProperty":              {References: objectReferences},
	"SoftObjectProperty":              {References: objectReferences},
	"ClassProperty":                   {References: classReferences},
	"SoftClassProperty":               {References: classReferences},
	"DelegateProperty":                {References: delegateReferences},
	"MulticastDelegateProperty":       {References: delegateReferences},
	"MulticastInlineDelegateProperty": {References: delegateReferences},
	"MulticastSparseDelegateProperty": {References: delegateReferences},
	"InterfaceProperty":               {References: []string{"interface_class"}},
	"StructProperty":                  {References: []string{"struct"}},
}

// LayoutOf returns the layout of a field type. Types without extra data
// have an empty layout.
func LayoutOf(serializedType string) FieldLayout {
	return fieldLayouts[serializedType]
}

func readReferences(r *uarchive.Reader, roles []string) (*ds.LinkedHashMap[string, utypes.PackageIndex], error) {
	if len(roles) == 0 {
		return nil, nil
	}
	references := ds.NewLinkedHashMap[string, utypes.PackageIndex]()
	for _, role := range roles {
		index, err := r.ReadPackageIndex()
		if err != nil {
			return nil, errors.Wrapf(err, `error reading reference "%s"`, role)
		}
		references.Put(role, index)
	}
	return references, nil
}

func writeReferences(w *uarchive.Writer, references *ds.LinkedHashMap[string, utypes.PackageIndex], roles []string) error {
	for _, role := range roles {
		var index utypes.PackageIndex
		ok := false
		if references != nil {
			index, ok = references.Get(role)
		}
		if !ok {
			return uerr.ErrNoData{Reason: `field reference "` + role + `" is not set`}
		}
		if err := w.WritePackageIndex(index); err != nil {
			return err
		}
	}
	return nil
}

// Reference returns the object a field points to in the given role.
func (p *FProperty) Reference(role string) (utypes.PackageIndex, bool) {
	if p.References == nil {
		return utypes.NullIndex, false
	}
	return p.References.Get(role)
}

// Child returns the nested field of the given role.
func (p *FProperty) Child(role string) (*FProperty, bool) {
	for i, name := range LayoutOf(p.SerializedType.Content()).Children {
		if name == role && i < len(p.Children) {
			return p.Children[i], true
		}
	}
	return nil, false
}

func ReadFProperty(r *uarchive.Reader) (*FProperty, error) {
	p := &FProperty{}
	var err error
	if p.SerializedType, err = r.ReadFName(); err != nil {
		return nil, errors.Wrap(err, "uexport.ReadFProperty error reading type")
	}
	if p.Name, err = r.ReadFName(); err != nil {
		return nil, errors.Wrap(err, "uexport.ReadFProperty error reading name")
	}
	if p.Flags, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if p.ArrayDim, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if p.ElementSize, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if p.PropertyFlags, err = r.ReadU64(); err != nil {
		return nil, err
	}
	if p.RepIndex, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if p.RepNotifyFunc, err = r.ReadFName(); err != nil {
		return nil, err
	}
	if p.BlueprintReplicationCondition, err = r.ReadU8(); err != nil {
		return nil, err
	}

	serializedType := p.SerializedType.Content()
	if serializedType == "BoolProperty" {
		p.Bool = &BoolLayout{}
		for _, target := range []*uint8{&p.Bool.FieldSize, &p.Bool.ByteOffset, &p.Bool.ByteMask, &p.Bool.FieldMask} {
			if *target, err = r.ReadU8(); err != nil {
				return nil, err
			}
		}
		if p.Bool.NativeBool, err = r.ReadBool8(); err != nil {
			return nil, err
		}
		if p.Bool.Value, err = r.ReadBool8(); err != nil {
			return nil, err
		}
		return p, nil
	}

	layout := LayoutOf(serializedType)
	if p.References, err = readReferences(r, layout.References); err != nil {
		err := errors.Wrapf(err, `uexport.ReadFProperty error reading %s "%s"`, serializedType, p.Name)
		return nil, err
	}
	for _, role := range layout.Children {
		child, err := ReadFProperty(r)
		if err != nil {
			err := errors.Wrapf(err, `uexport.ReadFProperty error reading %s of "%s"`, role, p.Name)
			return nil, err
		}
		p.Children = append(p.Children, child)
	}
	return p, nil
}

func WriteFProperty(w *uarchive.Writer, p *FProperty) error {
	if err := w.WriteFName(p.SerializedType); err != nil {
		return err
	}
	if err := w.WriteFName(p.Name); err != nil {
		return err
	}
	if err := w.WriteU32(p.Flags); err != nil {
		return err
	}
	if err := w.WriteI32(p.ArrayDim); err != nil {
		return err
	}
	if err := w.WriteI32(p.ElementSize); err != nil {
		return err
	}
	if err := w.WriteU64(p.PropertyFlags); err != nil {
		return err
	}
	if err := w.WriteU16(p.RepIndex); err != nil {
		return err
	}
	if err := w.WriteFName(p.RepNotifyFunc); err != nil {
		return err
	}
	if err := w.WriteU8(p.BlueprintReplicationCondition); err != nil {
		return err
	}

	serializedType := p.SerializedType.Content()
	if serializedType == "BoolProperty" {
		if p.Bool == nil {
			return uerr.ErrNoData{Reason: `bool field "` + p.Name.String() + `" has no layout`}
		}
		for _, value := range []uint8{p.Bool.FieldSize, p.Bool.ByteOffset, p.Bool.ByteMask, p.Bool.FieldMask} {
			if err := w.WriteU8(value); err != nil {
				return err
			}
		}
		if err := w.WriteBool8(p.Bool.NativeBool); err != nil {
			return err
		}
		return w.WriteBool8(p.Bool.Value)
	}

	layout := LayoutOf(serializedType)
	if err := writeReferences(w, p.References, layout.References); err != nil {
		return err
	}
	if len(p.Children) != len(layout.Children) {
		err := errors.Errorf(`%s "%s" needs %d nested fields, got %d`, serializedType, p.Name, len(layout.Children), len(p.Children))
		return err
	}
	for _, child := range p.Children {
		if err := WriteFProperty(w, child); err != nil {
			return err
		}
	}
	return nil
}

func ReadUField(r *uarchive.Reader) (UField, error) {
	field := UField{}
	if r.CustomVersion(uversion.FrameworkObjectVersion) < uversion.FrameworkRemoveUFieldNext {
		next, err := r.ReadPackageIndex()
		if err != nil {
			return field, err
		}
		field.Next = &next
	}
	return field, nil
}

func WriteUField(w *uarchive.Writer, field UField) error {
	if w.CustomVersion(uversion.FrameworkObjectVersion) >= uversion.FrameworkRemoveUFieldNext {
		return nil
	}
	if field.Next == nil {
		return uerr.ErrNoData{Reason: "field requires the next field index for this version"}
	}
	return w.WritePackageIndex(*field.Next)
}
