package uexport

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

func (b *BaseExport) Base() *BaseExport {
	return b
}

// ReadBaseExport reads one export map entry.
func ReadBaseExport(r *uarchive.Reader) (base BaseExport, err error) {
	if base.ClassIndex, err = r.ReadPackageIndex(); err != nil {
		return base, errors.Wrap(err, "uexport.ReadBaseExport error reading class index")
	}
	if base.SuperIndex, err = r.ReadPackageIndex(); err != nil {
		return base, err
	}
	if r.AtLeast(uversion.VerTemplateIndexInCookedExports) {
		if base.TemplateIndex, err = r.ReadPackageIndex(); err != nil {
			return base, err
		}
	}
	if base.OuterIndex, err = r.ReadPackageIndex(); err != nil {
		return base, err
	}
	if base.ObjectName, err = r.ReadFName(); err != nil {
		return base, errors.Wrap(err, "uexport.ReadBaseExport error reading object name")
	}
	if base.ObjectFlags, err = r.ReadU32(); err != nil {
		return base, err
	}

	if r.AtLeast(uversion.Ver64BitExportMapSerialSizes) {
		if base.SerialSize, err = r.ReadI64(); err != nil {
			return base, err
		}
		if base.SerialOffset, err = r.ReadI64(); err != nil {
			return base, err
		}
	} else {
		size, err := r.ReadI32()
		if err != nil {
			return base, err
		}
		offset, err := r.ReadI32()
		if err != nil {
			return base, err
		}
		base.SerialSize = int64(size)
		base.SerialOffset = int64(offset)
	}

	for _, target := range []*bool{&base.ForcedExport, &base.NotForClient, &base.NotForServer} {
		if *target, err = r.ReadBool32(); err != nil {
			return base, err
		}
	}
	if base.PackageGuid, err = r.ReadGuidValue(); err != nil {
		return base, err
	}
	if base.PackageFlags, err = r.ReadU32(); err != nil {
		return base, err
	}
	if r.AtLeast(uversion.VerLoadForEditorGame) {
		if base.NotAlwaysLoadedForEditorGame, err = r.ReadBool32(); err != nil {
			return base, err
		}
	}
	if r.AtLeast(uversion.VerCookedAssetsInEditorSupport) {
		if base.IsAsset, err = r.ReadBool32(); err != nil {
			return base, err
		}
	}
	if r.AtLeast(uversion.VerPreloadDependenciesInCookedExports) {
		if base.FirstExportDependencyOffset, err = r.ReadI32(); err != nil {
			return base, err
		}
		for i := range base.DependencySizes {
			if base.DependencySizes[i], err = r.ReadI32(); err != nil {
				return base, errors.Wrapf(err, "uexport.ReadBaseExport error reading dependency size %d", i)
			}
		}
	}
	return base, nil
}

// WriteBaseExport writes one export map entry with the offsets and sizes
// currently recorded in base.
func WriteBaseExport(w *uarchive.Writer, base *BaseExport) error {
	indexes := []utypes.PackageIndex{base.ClassIndex, base.SuperIndex}
	if w.AtLeast(uversion.VerTemplateIndexInCookedExports) {
		indexes = append(indexes, base.TemplateIndex)
	}
	indexes = append(indexes, base.OuterIndex)
	for _, index := range indexes {
		if err := w.WritePackageIndex(index); err != nil {
			return err
		}
	}
	if err := w.WriteFName(base.ObjectName); err != nil {
		return errors.Wrap(err, "uexport.WriteBaseExport error writing object name")
	}
	if err := w.WriteU32(base.ObjectFlags); err != nil {
		return err
	}

	if w.AtLeast(uversion.Ver64BitExportMapSerialSizes) {
		if err := w.WriteI64(base.SerialSize); err != nil {
			return err
		}
		if err := w.WriteI64(base.SerialOffset); err != nil {
			return err
		}
	} else {
		if err := w.WriteI32(int32(base.SerialSize)); err != nil {
			return err
		}
		if err := w.WriteI32(int32(base.SerialOffset)); err != nil {
			return err
		}
	}

	for _, value := range []bool{base.ForcedExport, base.NotForClient, base.NotForServer} {
		if err := w.WriteBool32(value); err != nil {
			return err
		}
	}
	if err := w.WriteGuidValue(base.PackageGuid); err != nil {
		return err
	}
	if err := w.WriteU32(base.PackageFlags); err != nil {
		return err
	}
	if w.AtLeast(uversion.VerLoadForEditorGame) {
		if err := w.WriteBool32(base.NotAlwaysLoadedForEditorGame); err != nil {
			return err
		}
	}
	if w.AtLeast(uversion.VerCookedAssetsInEditorSupport) {
		if err := w.WriteBool32(base.IsAsset); err != nil {
			return err
		}
	}
	if w.AtLeast(uversion.VerPreloadDependenciesInCookedExports) {
		if err := w.WriteI32(base.FirstExportDependencyOffset); err != nil {
			return err
		}
		for _, size := range base.DependencySizes {
			if err := w.WriteI32(size); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dependencies) lists() []*[]utypes.PackageIndex {
	return []*[]utypes.PackageIndex{
		&d.SerializationBeforeSerialization,
		&d.CreateBeforeSerialization,
		&d.SerializationBeforeCreate,
		&d.CreateBeforeCreate,
	}
}

func (d *Dependencies) Sizes() DependencySizes {
	sizes := DependencySizes{}
	for i, list := range d.lists() {
		sizes[i] = int32(len(*list))
	}
	return sizes
}

// Count is the number of indexes across the four lists.
func (d *Dependencies) Count() int32 {
	return lo.Reduce(d.lists(), func(count int32, list *[]utypes.PackageIndex, _ int) int32 {
		return count + int32(len(*list))
	}, 0)
}

// ReadDependencies reads the four lists of an export from the current
// position.
func ReadDependencies(r *uarchive.Reader, sizes DependencySizes) (Dependencies, error) {
	dependencies := Dependencies{}
	for i, list := range dependencies.lists() {
		if sizes[i] < 0 || int64(sizes[i])*4 > r.Remaining() {
			return dependencies, errors.Errorf("uexport.ReadDependencies error: invalid size %d of list %d", sizes[i], i)
		}
		*list = make([]utypes.PackageIndex, 0, sizes[i])
		for j := int32(0); j < sizes[i]; j++ {
			index, err := r.ReadPackageIndex()
			if err != nil {
				return dependencies, err
			}
			*list = append(*list, index)
		}
	}
	return dependencies, nil
}

func WriteDependencies(w *uarchive.Writer, dependencies *Dependencies) error {
	for _, list := range dependencies.lists() {
		for _, index := range *list {
			if err := w.WritePackageIndex(index); err != nil {
				return err
			}
		}
	}
	return nil
}
