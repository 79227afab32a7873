package uexport

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uindex"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

type (
	// ScriptExpression is one decoded bytecode instruction. Its shape is up
	// to the ScriptCodec that produced it.
	ScriptExpression any
	// ScriptCodec decodes and encodes the bytecode of struct exports.
	ScriptCodec interface {
		// Decode reads expressions from the current position and reports how
		// many bytes it consumed.
		Decode(r *uarchive.Reader, storageSize int32) ([]ScriptExpression, int64, error)
		// Encode writes expressions and returns their in-memory size.
		Encode(w *uarchive.Writer, expressions []ScriptExpression) (int32, error)
	}

	StructExport struct {
		NormalExport
		Field            UField                `json:"field"`
		SuperStruct      utypes.PackageIndex   `json:"super_struct"`
		Children         []utypes.PackageIndex `json:"children"`
		LoadedProperties []*FProperty          `json:"loaded_properties"`
		// ScriptBytecode is set when a codec decoded the bytecode, otherwise
		// ScriptBytecodeRaw keeps the stored bytes.
		ScriptBytecode     []ScriptExpression `json:"script_bytecode,omitempty"`
		ScriptBytecodeSize int32              `json:"script_bytecode_size"`
		ScriptBytecodeRaw  []byte             `json:"script_bytecode_raw,omitempty"`
	}
	FunctionExport struct {
		StructExport
		FunctionFlags uint32 `json:"function_flags"`
	}
	ImplementedInterface struct {
		Class           int32 `json:"class"`
		PointerOffset   int32 `json:"pointer_offset"`
		ImplementedByK2 bool  `json:"implemented_by_k2"`
	}
	FunctionMapEntry struct {
		Name     uname.Name          `json:"name"`
		Function utypes.PackageIndex `json:"function"`
	}
	ClassExport struct {
		StructExport
		FuncMap                    []FunctionMapEntry     `json:"func_map"`
		ClassFlags                 uint32                 `json:"class_flags"`
		ClassWithin                utypes.PackageIndex    `json:"class_within"`
		ClassConfigName            uname.Name             `json:"class_config_name"`
		Interfaces                 []ImplementedInterface `json:"interfaces"`
		ClassGeneratedBy           utypes.PackageIndex    `json:"class_generated_by"`
		DeprecatedForceScriptOrder bool                   `json:"deprecated_force_script_order"`
		// Terminator is the "None" name that ends the class defaults.
		Terminator         uname.Name          `json:"terminator"`
		Cooked             *bool               `json:"cooked,omitempty"`
		ClassDefaultObject utypes.PackageIndex `json:"class_default_object"`
	}
)

func readIndexes(r *uarchive.Reader) ([]utypes.PackageIndex, error) {
	count, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	indexes := make([]utypes.PackageIndex, 0, count)
	for i := 0; i < count; i++ {
		index, err := r.ReadPackageIndex()
		if err != nil {
			return nil, err
		}
		indexes = append(indexes, index)
	}
	return indexes, nil
}

func writeIndexes(w *uarchive.Writer, indexes []utypes.PackageIndex) error {
	if err := w.WriteI32(int32(len(indexes))); err != nil {
		return err
	}
	for _, index := range indexes {
		if err := w.WritePackageIndex(index); err != nil {
			return err
		}
	}
	return nil
}

func (e *StructExport) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := e.NormalExport.read(r, ctx); err != nil {
		return err
	}
	if err := readZero(r); err != nil {
		return err
	}
	if e.Field, err = ReadUField(r); err != nil {
		return err
	}
	if e.SuperStruct, err = r.ReadPackageIndex(); err != nil {
		return err
	}
	if e.Children, err = readIndexes(r); err != nil {
		return errors.Wrap(err, "uexport.StructExport error reading children")
	}

	e.LoadedProperties = []*FProperty{}
	if r.CustomVersion(uversion.CoreObjectVersion) >= uversion.CoreFProperties {
		count, err := r.ReadCount()
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			property, err := ReadFProperty(r)
			if err != nil {
				return errors.Wrapf(err, "uexport.StructExport error reading loaded property %d", i)
			}
			e.LoadedProperties = append(e.LoadedProperties, property)
		}
	}

	if e.ScriptBytecodeSize, err = r.ReadI32(); err != nil {
		return err
	}
	storageSize, err := r.ReadI32()
	if err != nil {
		return err
	}
	begin := r.Position()

	if ctx.ScriptCodec != nil && r.Engine() >= uversion.UE4(16) {
		expressions, consumed, err := ctx.ScriptCodec.Decode(r, storageSize)
		if err == nil && consumed == int64(storageSize) {
			e.ScriptBytecode = expressions
			return nil
		}
	}

	if err := r.Seek(begin); err != nil {
		return err
	}
	if storageSize < 0 {
		return uerr.ErrInvalidFile{Reason: "negative script storage size"}
	}
	e.ScriptBytecodeRaw, err = r.ReadBytes(int(storageSize))
	return err
}

func (e *StructExport) write(w *uarchive.Writer, ctx Context) error {
	if err := e.NormalExport.write(w, ctx); err != nil {
		return err
	}
	if err := w.WriteI32(0); err != nil {
		return err
	}
	if err := WriteUField(w, e.Field); err != nil {
		return err
	}
	if err := w.WritePackageIndex(e.SuperStruct); err != nil {
		return err
	}
	if err := writeIndexes(w, e.Children); err != nil {
		return err
	}

	if w.CustomVersion(uversion.CoreObjectVersion) >= uversion.CoreFProperties {
		if err := w.WriteI32(int32(len(e.LoadedProperties))); err != nil {
			return err
		}
		for i, property := range e.LoadedProperties {
			if err := WriteFProperty(w, property); err != nil {
				return errors.Wrapf(err, "uexport.StructExport error writing loaded property %d", i)
			}
		}
	}

	if e.ScriptBytecode != nil {
		if ctx.ScriptCodec == nil {
			return uerr.ErrNoData{Reason: "decoded bytecode needs a script codec to be written"}
		}
		sizePosition := w.Position()
		if err := w.WriteI64(0); err != nil {
			return err
		}
		begin := w.Position()
		bytecodeSize, err := ctx.ScriptCodec.Encode(w, e.ScriptBytecode)
		if err != nil {
			return errors.Wrap(err, "uexport.StructExport error encoding bytecode")
		}
		storageSize := int32(w.Position() - begin)
		return w.Patch(sizePosition, func() error {
			if err := w.WriteI32(bytecodeSize); err != nil {
				return err
			}
			return w.WriteI32(storageSize)
		})
	}

	if e.ScriptBytecodeRaw == nil {
		return uerr.ErrNoData{Reason: "struct export has neither decoded nor raw bytecode"}
	}
	if err := w.WriteI32(e.ScriptBytecodeSize); err != nil {
		return err
	}
	if err := w.WriteI32(int32(len(e.ScriptBytecodeRaw))); err != nil {
		return err
	}
	return w.WriteBytes(e.ScriptBytecodeRaw)
}

func (e *FunctionExport) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := e.StructExport.read(r, ctx); err != nil {
		return err
	}
	e.FunctionFlags, err = r.ReadU32()
	return err
}

func (e *FunctionExport) write(w *uarchive.Writer, ctx Context) error {
	if err := e.StructExport.write(w, ctx); err != nil {
		return err
	}
	return w.WriteU32(e.FunctionFlags)
}

func (e *ClassExport) readInterfaces(r *uarchive.Reader) error {
	count, err := r.ReadCount()
	if err != nil {
		return err
	}
	e.Interfaces = make([]ImplementedInterface, 0, count)
	for i := 0; i < count; i++ {
		implemented := ImplementedInterface{}
		if implemented.Class, err = r.ReadI32(); err != nil {
			return err
		}
		if implemented.PointerOffset, err = r.ReadI32(); err != nil {
			return err
		}
		if implemented.ImplementedByK2, err = r.ReadBool32(); err != nil {
			return err
		}
		e.Interfaces = append(e.Interfaces, implemented)
	}
	return nil
}

func (e *ClassExport) writeInterfaces(w *uarchive.Writer) error {
	if err := w.WriteI32(int32(len(e.Interfaces))); err != nil {
		return err
	}
	for _, implemented := range e.Interfaces {
		if err := w.WriteI32(implemented.Class); err != nil {
			return err
		}
		if err := w.WriteI32(implemented.PointerOffset); err != nil {
			return err
		}
		if err := w.WriteBool32(implemented.ImplementedByK2); err != nil {
			return err
		}
	}
	return nil
}

func (e *ClassExport) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := e.StructExport.read(r, ctx); err != nil {
		return err
	}

	count, err := r.ReadCount()
	if err != nil {
		return err
	}
	e.FuncMap = make([]FunctionMapEntry, 0, count)
	for i := 0; i < count; i++ {
		entry := FunctionMapEntry{}
		if entry.Name, err = r.ReadFName(); err != nil {
			return err
		}
		if entry.Function, err = r.ReadPackageIndex(); err != nil {
			return err
		}
		e.FuncMap = append(e.FuncMap, entry)
	}

	if e.ClassFlags, err = r.ReadU32(); err != nil {
		return err
	}
	if e.ClassWithin, err = r.ReadPackageIndex(); err != nil {
		return err
	}
	if e.ClassConfigName, err = r.ReadFName(); err != nil {
		return err
	}

	// older classes store their interfaces ahead of the generating object
	interfacesFirst := !r.AtLeast(uversion.VerUClassSerializeInterfacesAfterLink)
	if interfacesFirst {
		if err := e.readInterfaces(r); err != nil {
			return err
		}
	}
	if e.ClassGeneratedBy, err = r.ReadPackageIndex(); err != nil {
		return err
	}
	if !interfacesFirst {
		if err := e.readInterfaces(r); err != nil {
			return err
		}
	}

	if e.DeprecatedForceScriptOrder, err = r.ReadBool32(); err != nil {
		return err
	}
	if e.Terminator, err = r.ReadFName(); err != nil {
		return err
	}
	if r.AtLeast(uversion.VerAddCookedToUClass) {
		cooked, err := r.ReadBool32()
		if err != nil {
			return err
		}
		e.Cooked = &cooked
	}
	e.ClassDefaultObject, err = r.ReadPackageIndex()
	return err
}

func (e *ClassExport) write(w *uarchive.Writer, ctx Context) error {
	if err := e.StructExport.write(w, ctx); err != nil {
		return err
	}

	if err := w.WriteI32(int32(len(e.FuncMap))); err != nil {
		return err
	}
	for _, entry := range e.FuncMap {
		if err := w.WriteFName(entry.Name); err != nil {
			return err
		}
		if err := w.WritePackageIndex(entry.Function); err != nil {
			return err
		}
	}

	if err := w.WriteU32(e.ClassFlags); err != nil {
		return err
	}
	if err := w.WritePackageIndex(e.ClassWithin); err != nil {
		return err
	}
	if err := w.WriteFName(e.ClassConfigName); err != nil {
		return err
	}

	interfacesFirst := !w.AtLeast(uversion.VerUClassSerializeInterfacesAfterLink)
	if interfacesFirst {
		if err := e.writeInterfaces(w); err != nil {
			return err
		}
	}
	if err := w.WritePackageIndex(e.ClassGeneratedBy); err != nil {
		return err
	}
	if !interfacesFirst {
		if err := e.writeInterfaces(w); err != nil {
			return err
		}
	}

	if err := w.WriteBool32(e.DeprecatedForceScriptOrder); err != nil {
		return err
	}
	if err := w.WriteFName(e.Terminator); err != nil {
		return err
	}
	if w.AtLeast(uversion.VerAddCookedToUClass) {
		if e.Cooked == nil {
			return uerr.ErrNoData{Reason: "class export requires the cooked flag for this version"}
		}
		if err := w.WriteBool32(*e.Cooked); err != nil {
			return err
		}
	}
	return w.WritePackageIndex(e.ClassDefaultObject)
}

// MapOverrides collects the struct types of map fields whose key or value
// is a struct declared by an import.
func (e *ClassExport) MapOverrides(resolver *uindex.Resolver) Overrides {
	overrides := NewOverrides()
	structTypeOf := func(field *FProperty) (string, bool) {
		if field == nil || !field.SerializedType.Is("StructProperty") {
			return "", false
		}
		index, ok := field.Reference("struct")
		if !ok || !index.IsImport() {
			return "", false
		}
		name, err := resolver.ObjectName(index)
		if err != nil {
			return "", false
		}
		return name.Content(), true
	}

	for _, property := range e.LoadedProperties {
		if !property.SerializedType.Is("MapProperty") {
			continue
		}
		key, _ := property.Child("key")
		if structType, ok := structTypeOf(key); ok {
			overrides.MapKeyStructTypes.Put(property.Name.Content(), structType)
		}
		value, _ := property.Child("value")
		if structType, ok := structTypeOf(value); ok {
			overrides.MapValueStructTypes.Put(property.Name.Content(), structType)
		}
	}
	return overrides
}
