package uindex

import (
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

func (r *Resolver) Import(index utypes.PackageIndex) (*Import, error) {
	if !index.IsImport() {
		return nil, uerr.ErrInvalidPackageIndex{Index: int32(index), Reason: "not an import"}
	}
	i := index.ToImport()
	if i >= len(r.Imports) {
		return nil, uerr.ErrInvalidPackageIndex{Index: int32(index), Reason: "import out of range"}
	}
	return &r.Imports[i], nil
}

// ObjectName returns the object name behind a non-null index.
func (r *Resolver) ObjectName(index utypes.PackageIndex) (uname.Name, error) {
	switch {
	case index.IsImport():
		imp, err := r.Import(index)
		if err != nil {
			return uname.Name{}, err
		}
		return imp.ObjectName, nil
	case index.IsExport():
		i := index.ToExport()
		if i >= len(r.ExportNames) {
			return uname.Name{}, uerr.ErrInvalidPackageIndex{Index: int32(index), Reason: "export out of range"}
		}
		return r.ExportNames[i], nil
	default:
		return uname.Name{}, uerr.ErrInvalidPackageIndex{Index: int32(index), Reason: "null index"}
	}
}

// ResolveClassName maps an export's class index to its type name.
func (r *Resolver) ResolveClassName(index utypes.PackageIndex) (string, error) {
	name, err := r.ObjectName(index)
	if err != nil {
		return "", err
	}
	return name.Content(), nil
}

// FindImport returns the index of the import matching every field.
func (r *Resolver) FindImport(classPackage, className uname.Name, outer utypes.PackageIndex, objectName uname.Name) (utypes.PackageIndex, bool) {
	_, i, ok := lo.FindIndexOf(r.Imports, func(imp Import) bool {
		return imp.ClassPackage.Equal(classPackage) &&
			imp.ClassName.Equal(className) &&
			imp.OuterIndex == outer &&
			imp.ObjectName.Equal(objectName)
	})
	if !ok {
		return utypes.NullIndex, false
	}
	return utypes.FromImport(i), true
}

// FindImportNoIndex ignores the outer index.
func (r *Resolver) FindImportNoIndex(classPackage, className, objectName uname.Name) (utypes.PackageIndex, bool) {
	_, i, ok := lo.FindIndexOf(r.Imports, func(imp Import) bool {
		return imp.ClassPackage.Equal(classPackage) &&
			imp.ClassName.Equal(className) &&
			imp.ObjectName.Equal(objectName)
	})
	if !ok {
		return utypes.NullIndex, false
	}
	return utypes.FromImport(i), true
}
