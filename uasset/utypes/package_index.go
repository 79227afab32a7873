package utypes

// PackageIndex addresses the import table (negative), the export table
// (positive) or nothing (zero).
type PackageIndex int32

const NullIndex PackageIndex = 0

func FromImport(slot int) PackageIndex {
	return PackageIndex(-slot - 1)
}

func FromExport(slot int) PackageIndex {
	return PackageIndex(slot + 1)
}

func (p PackageIndex) IsNull() bool {
	return p == 0
}

func (p PackageIndex) IsImport() bool {
	return p < 0
}

func (p PackageIndex) IsExport() bool {
	return p > 0
}

// ToImport returns the import slot. Only meaningful when IsImport.
func (p PackageIndex) ToImport() int {
	return int(-p - 1)
}

// ToExport returns the export slot. Only meaningful when IsExport.
func (p PackageIndex) ToExport() int {
	return int(p - 1)
}
