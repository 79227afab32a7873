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
	// UProperty is a field definition stored as its own export, as engines
	// before FProperty did.
	UProperty struct {
		Field         UField     `json:"field"`
		ArrayDim      int32      `json:"array_dim"`
		PropertyFlags uint64     `json:"property_flags"`
		RepNotifyFunc uname.Name `json:"rep_notify_func"`
		// BlueprintReplicationCondition is nil when the version predates it.
		BlueprintReplicationCondition *uint8                                         `json:"blueprint_replication_condition,omitempty"`
		References                    *ds.LinkedHashMap[string, utypes.PackageIndex] `json:"references,omitempty"`
		Bool                          *UBoolLayout                                   `json:"bool,omitempty"`
	}
	UBoolLayout struct {
		ElementSize uint8 `json:"element_size"`
		NativeBool  bool  `json:"native_bool"`
	}
	PropertyExport struct {
		NormalExport
		// SerializedType is the class type the export was decoded as.
		SerializedType string    `json:"serialized_type"`
		Property       UProperty `json:"property"`
	}
)

// uPropertyReferences lists the objects each legacy field type links to.
// Nested field definitions are separate exports, so they are references too.
var uPropertyReferences = map[string][]string{
	"EnumProperty":                    {"enum", "underlying"},
	"ArrayProperty":                   {"inner"},
	"SetProperty":                     {"element"},
	"MapProperty":                     {"key", "value"},
	"ByteProperty":                    {"enum"},
	"ObjectProperty":                  objectReferences,
	"WeakObjectProperty":              objectReferences,
	"LazyObjectProperty":              objectReferences,
	"SoftObjectProperty":              objectReferences,
	"AssetObjectProperty":             objectReferences,
	"ClassProperty":                   classReferences,
	"SoftClassProperty":               classReferences,
	"AssetClassProperty":              classReferences,
	"DelegateProperty":                delegateReferences,
	"MulticastDelegateProperty":       delegateReferences,
	"MulticastInlineDelegateProperty": delegateReferences,
	"MulticastSparseDelegateProperty": delegateReferences,
	"InterfaceProperty":               {"interface_class"},
	"StructProperty":                  {"struct"},
}

func (e *PropertyExport) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := e.NormalExport.read(r, ctx); err != nil {
		return err
	}
	if err := readZero(r); err != nil {
		return err
	}
	e.SerializedType = ctx.ClassType

	p := &e.Property
	if p.Field, err = ReadUField(r); err != nil {
		return err
	}
	if p.ArrayDim, err = r.ReadI32(); err != nil {
		return err
	}
	if p.PropertyFlags, err = r.ReadU64(); err != nil {
		return err
	}
	if p.RepNotifyFunc, err = r.ReadFName(); err != nil {
		return err
	}
	if r.CustomVersion(uversion.ReleaseObjectVersion) >= uversion.ReleasePropertiesSerializeRepCondition {
		condition, err := r.ReadU8()
		if err != nil {
			return err
		}
		p.BlueprintReplicationCondition = &condition
	}

	if e.SerializedType == "BoolProperty" {
		p.Bool = &UBoolLayout{}
		if p.Bool.ElementSize, err = r.ReadU8(); err != nil {
			return err
		}
		p.Bool.NativeBool, err = r.ReadBool8()
		return err
	}
	if p.References, err = readReferences(r, uPropertyReferences[e.SerializedType]); err != nil {
		err := errors.Wrapf(err, `uexport.PropertyExport error reading %s "%s"`, e.SerializedType, e.ObjectName)
		return err
	}
	return nil
}

func (e *PropertyExport) write(w *uarchive.Writer, ctx Context) error {
	if err := e.NormalExport.write(w, ctx); err != nil {
		return err
	}
	if err := w.WriteI32(0); err != nil {
		return err
	}

	p := &e.Property
	if err := WriteUField(w, p.Field); err != nil {
		return err
	}
	if err := w.WriteI32(p.ArrayDim); err != nil {
		return err
	}
	if err := w.WriteU64(p.PropertyFlags); err != nil {
		return err
	}
	if err := w.WriteFName(p.RepNotifyFunc); err != nil {
		return err
	}
	if w.CustomVersion(uversion.ReleaseObjectVersion) >= uversion.ReleasePropertiesSerializeRepCondition {
		if p.BlueprintReplicationCondition == nil {
			return uerr.ErrNoData{Reason: "property export requires a replication condition for this version"}
		}
		if err := w.WriteU8(*p.BlueprintReplicationCondition); err != nil {
			return err
		}
	}

	if e.SerializedType == "BoolProperty" {
		if p.Bool == nil {
			return uerr.ErrNoData{Reason: "bool property export has no layout"}
		}
		if err := w.WriteU8(p.Bool.ElementSize); err != nil {
			return err
		}
		return w.WriteBool8(p.Bool.NativeBool)
	}
	return writeReferences(w, p.References, uPropertyReferences[e.SerializedType])
}
