package uexport

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

type (
	// DataTableExport holds rows of the struct named by its RowStruct property.
	DataTableExport struct {
		NormalExport
		Rows []*uproperty.StructProperty `json:"rows"`
	}
	StringTableEntry struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	StringTableExport struct {
		NormalExport
		Namespace string             `json:"namespace"`
		Entries   []StringTableEntry `json:"entries"`
	}
	EnumName struct {
		Name  uname.Name `json:"name"`
		Value int64      `json:"value"`
	}
	// CppForm is how the enum is declared in native code.
	CppForm uint8
	EnumExport struct {
		NormalExport
		Names   []EnumName `json:"names"`
		CppForm CppForm    `json:"cpp_form"`
	}
)

const (
	CppFormRegular CppForm = iota
	CppFormNamespaced
	CppFormEnumClass
)

// RowStructType returns the object name of the import the RowStruct
// property points to, or "Generic".
func (e *DataTableExport) RowStructType(r *uarchive.Reader) string {
	property, ok := e.Find("RowStruct")
	if !ok {
		return uproperty.TypeGeneric
	}
	object, ok := property.(*uproperty.ObjectProperty)
	if !ok || !object.Value.IsImport() {
		return uproperty.TypeGeneric
	}
	imp, err := r.Resolver.Import(object.Value)
	if err != nil {
		return uproperty.TypeGeneric
	}
	return imp.ObjectName.Content()
}

func (e *DataTableExport) read(r *uarchive.Reader, ctx Context) error {
	if err := e.NormalExport.read(r, ctx); err != nil {
		return err
	}
	structType := uname.Dummy(e.RowStructType(r))
	if err := readZero(r); err != nil {
		return err
	}
	count, err := r.ReadCount()
	if err != nil {
		return errors.Wrap(err, "uexport.DataTableExport error reading row count")
	}
	e.Rows = make([]*uproperty.StructProperty, 0, count)
	for i := 0; i < count; i++ {
		rowName, err := r.ReadFName()
		if err != nil {
			return err
		}
		row, err := uproperty.ReadStruct(r, rowName, structType, uproperty.Ancestry{ctx.ClassType}, 1)
		if err != nil {
			err := errors.Wrapf(err, "uexport.DataTableExport error reading row %d", i)
			return err
		}
		e.Rows = append(e.Rows, row)
	}
	return nil
}

func (e *DataTableExport) write(w *uarchive.Writer, ctx Context) error {
	if err := e.NormalExport.write(w, ctx); err != nil {
		return err
	}
	if err := w.WriteI32(0); err != nil {
		return err
	}
	if err := w.WriteI32(int32(len(e.Rows))); err != nil {
		return err
	}
	for i, row := range e.Rows {
		if err := w.WriteFName(row.Name); err != nil {
			return err
		}
		if _, err := uproperty.WriteValue(w, row, false); err != nil {
			err := errors.Wrapf(err, "uexport.DataTableExport error writing row %d", i)
			return err
		}
	}
	return nil
}

// Row returns the row named name.
func (e *DataTableExport) Row(name string) (*uproperty.StructProperty, bool) {
	for _, row := range e.Rows {
		if row.Name.Is(name) {
			return row, true
		}
	}
	return nil, false
}

func (e *StringTableExport) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := e.NormalExport.read(r, ctx); err != nil {
		return err
	}
	if err := readZero(r); err != nil {
		return err
	}
	if e.Namespace, err = r.ReadFString(); err != nil {
		return err
	}
	count, err := r.ReadCount()
	if err != nil {
		return err
	}
	e.Entries = make([]StringTableEntry, 0, count)
	for i := 0; i < count; i++ {
		entry := StringTableEntry{}
		if entry.Key, err = r.ReadFString(); err != nil {
			return err
		}
		if entry.Value, err = r.ReadFString(); err != nil {
			return err
		}
		e.Entries = append(e.Entries, entry)
	}
	return nil
}

func (e *StringTableExport) write(w *uarchive.Writer, ctx Context) error {
	if err := e.NormalExport.write(w, ctx); err != nil {
		return err
	}
	if err := w.WriteI32(0); err != nil {
		return err
	}
	if err := w.WriteFString(e.Namespace); err != nil {
		return err
	}
	if err := w.WriteI32(int32(len(e.Entries))); err != nil {
		return err
	}
	for _, entry := range e.Entries {
		if err := w.WriteFString(entry.Key); err != nil {
			return err
		}
		if err := w.WriteFString(entry.Value); err != nil {
			return err
		}
	}
	return nil
}

func (e *EnumExport) read(r *uarchive.Reader, ctx Context) error {
	if err := e.NormalExport.read(r, ctx); err != nil {
		return err
	}
	if err := readZero(r); err != nil {
		return err
	}

	count, err := r.ReadCount()
	if err != nil {
		return err
	}
	e.Names = make([]EnumName, 0, count)
	for i := 0; i < count; i++ {
		entry := EnumName{Value: int64(i)}
		if entry.Name, err = r.ReadFName(); err != nil {
			return err
		}
		switch {
		case !r.AtLeast(uversion.VerTightlyPackedEnums):
		case r.CustomVersion(uversion.CoreObjectVersion) < uversion.CoreEnumProperties:
			value, err := r.ReadU8()
			if err != nil {
				return err
			}
			entry.Value = int64(value)
		default:
			if entry.Value, err = r.ReadI64(); err != nil {
				return err
			}
		}
		e.Names = append(e.Names, entry)
	}

	if !r.AtLeast(uversion.VerEnumClassSupport) {
		namespaced, err := r.ReadBool32()
		if err != nil {
			return err
		}
		e.CppForm = CppFormRegular
		if namespaced {
			e.CppForm = CppFormNamespaced
		}
		return nil
	}
	cppForm, err := r.ReadU8()
	e.CppForm = CppForm(cppForm)
	return err
}

func (e *EnumExport) write(w *uarchive.Writer, ctx Context) error {
	if err := e.NormalExport.write(w, ctx); err != nil {
		return err
	}
	if err := w.WriteI32(0); err != nil {
		return err
	}
	if err := w.WriteI32(int32(len(e.Names))); err != nil {
		return err
	}
	for _, entry := range e.Names {
		if err := w.WriteFName(entry.Name); err != nil {
			return err
		}
		switch {
		case !w.AtLeast(uversion.VerTightlyPackedEnums):
		case w.CustomVersion(uversion.CoreObjectVersion) < uversion.CoreEnumProperties:
			if err := w.WriteU8(uint8(entry.Value)); err != nil {
				return err
			}
		default:
			if err := w.WriteI64(entry.Value); err != nil {
				return err
			}
		}
	}

	if !w.AtLeast(uversion.VerEnumClassSupport) {
		return w.WriteBool32(e.CppForm == CppFormNamespaced)
	}
	return w.WriteU8(uint8(e.CppForm))
}
