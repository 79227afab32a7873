package uarchive

import (
	"github.com/samber/lo"
)

// Package flags recorded in the summary.
const (
	PkgNewlyCreated               uint32 = 0x00000001
	PkgClientOptional             uint32 = 0x00000002
	PkgServerSideOnly             uint32 = 0x00000004
	PkgCompiledIn                 uint32 = 0x00000010
	PkgForDiffing                 uint32 = 0x00000020
	PkgEditorOnly                 uint32 = 0x00000040
	PkgDeveloper                  uint32 = 0x00000080
	PkgUncookedOnly               uint32 = 0x00000100
	PkgCooked                     uint32 = 0x00000200
	PkgContainsNoAsset            uint32 = 0x00000400
	PkgUnversionedProperties      uint32 = 0x00002000
	PkgContainsMapData            uint32 = 0x00004000
	PkgCompiling                  uint32 = 0x00010000
	PkgContainsMap                uint32 = 0x00020000
	PkgRequiresLocalizationGather uint32 = 0x00040000
	PkgPlayInEditor               uint32 = 0x00100000
	PkgContainsScript             uint32 = 0x00200000
	PkgDisallowExport             uint32 = 0x00400000
	PkgReloadingForCooker         uint32 = 0x10000000
	PkgFilterEditorOnly           uint32 = 0x20000000
	PkgEditorOnlyData             uint32 = 0x40000000
	PkgPendingKill                uint32 = 0x80000000
)

var validPackageFlags = lo.Reduce([]uint32{
	PkgNewlyCreated,
	PkgClientOptional,
	PkgServerSideOnly,
	PkgCompiledIn,
	PkgForDiffing,
	PkgEditorOnly,
	PkgDeveloper,
	PkgUncookedOnly,
	PkgCooked,
	PkgContainsNoAsset,
	PkgUnversionedProperties,
	PkgContainsMapData,
	PkgCompiling,
	PkgContainsMap,
	PkgRequiresLocalizationGather,
	PkgPlayInEditor,
	PkgContainsScript,
	PkgDisallowExport,
	PkgReloadingForCooker,
	PkgFilterEditorOnly,
	PkgEditorOnlyData,
	PkgPendingKill,
}, func(mask uint32, flag uint32, _ int) uint32 {
	return mask | flag
}, 0)

// UnknownPackageFlags returns the bits of flags that no known flag covers.
func UnknownPackageFlags(flags uint32) uint32 {
	return flags &^ validPackageFlags
}
