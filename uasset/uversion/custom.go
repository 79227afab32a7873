package uversion

import (
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

type (
	CustomVersion struct {
		Guid utypes.Guid `json:"guid"`
		// FriendlyName is only serialized by the guid-keyed container format.
		FriendlyName string `json:"friendly_name,omitempty"`
		Version      int32  `json:"version"`
	}
	// CustomVersionList is keyed by guid and keeps insertion order.
	CustomVersionList []CustomVersion
	// CustomVersionFormat selects how the header stores the list.
	CustomVersionFormat int
)

const (
	CustomVersionFormatUnknown CustomVersionFormat = iota
	CustomVersionFormatGuids
	CustomVersionFormatEnums
	CustomVersionFormatOptimized
)

// FormatForLegacyVersion picks the custom version container format that a
// legacy file version implies.
func FormatForLegacyVersion(legacy int32) CustomVersionFormat {
	if legacy > 3 {
		return CustomVersionFormatEnums
	}
	if legacy > -6 {
		return CustomVersionFormatGuids
	}
	return CustomVersionFormatOptimized
}

var (
	CoreObjectVersion               = utypes.MustParseGuid("375EC13C-06E4-48FB-B500-84F0262A717E")
	EditorObjectVersion             = utypes.MustParseGuid("E4B068ED-F494-42E9-A231-DA0B2E46BB41")
	AnimPhysObjectVersion           = utypes.MustParseGuid("29E575DD-E0A3-4627-9D10-D276232CDCEA")
	FrameworkObjectVersion          = utypes.MustParseGuid("CFFC743F-43B0-4480-9391-14DF171D2073")
	FortniteMainBranchObjectVersion = utypes.MustParseGuid("601D1886-AC64-4F84-AA16-D3DE0DEAC7D6")
	ReleaseObjectVersion            = utypes.MustParseGuid("9C54D522-A826-4FBE-9421-074661B482D0")
)

// Thresholds inside the named custom versions.
const (
	CoreEnumProperties                                  int32 = 2
	CoreFProperties                                     int32 = 4
	EditorCultureInvariantTextSerializationKeyStability int32 = 32
	AnimPhysRemoveUIDFromSmartNameSerialize             int32 = 5
	AnimPhysSmartNameRefactorForDeterministicCooking    int32 = 10
	FrameworkRemoveUFieldNext                           int32 = 29
	FortniteWorldCompositionTile3DOffset                int32 = 24
	ReleasePropertiesSerializeRepCondition              int32 = 21
)

func (l CustomVersionList) Get(guid utypes.Guid) (int32, bool) {
	entry, ok := lo.Find(l, func(cv CustomVersion) bool { return cv.Guid == guid })
	return entry.Version, ok
}

// VersionOf returns the stored version or -1 when the guid is absent, so
// absent versions never pass a threshold.
func (l CustomVersionList) VersionOf(guid utypes.Guid) int32 {
	version, ok := l.Get(guid)
	if !ok {
		return -1
	}
	return version
}

// Set replaces the version of an existing guid or appends a new entry.
func (l CustomVersionList) Set(guid utypes.Guid, version int32) CustomVersionList {
	for i := range l {
		if l[i].Guid == guid {
			l[i].Version = version
			return l
		}
	}
	return append(l, CustomVersion{Guid: guid, Version: version})
}

// defaultCustomVersions lists, per named guid, the first engine minor at
// which each version was reached.
var defaultCustomVersions = []struct {
	guid  utypes.Guid
	name  string
	byUE4 map[int]int32
}{
	{CoreObjectVersion, "FCoreObjectVersion", map[int]int32{12: 1, 15: 2, 22: 3, 25: 4}},
	{EditorObjectVersion, "FEditorObjectVersion", map[int]int32{12: 3, 14: 8, 16: 17, 18: 23, 20: 26, 22: 30, 24: 33, 26: 38}},
	{AnimPhysObjectVersion, "FAnimPhysObjectVersion", map[int]int32{14: 5, 16: 8, 18: 11, 20: 12, 25: 16}},
	{FrameworkObjectVersion, "FFrameworkObjectVersion", map[int]int32{12: 6, 14: 10, 15: 17, 16: 22, 17: 28, 19: 31, 20: 33, 21: 34, 22: 35, 25: 37}},
	{FortniteMainBranchObjectVersion, "FFortniteMainBranchObjectVersion", map[int]int32{20: 14, 22: 27, 24: 36, 26: 46, 27: 56}},
	{ReleaseObjectVersion, "FReleaseObjectVersion", map[int]int32{15: 3, 17: 10, 19: 17, 20: 21, 22: 24, 25: 30, 26: 38}},
}

// DefaultCustomVersions is the custom version list assumed for unversioned
// assets saved by engine v.
func DefaultCustomVersions(v EngineVersion) CustomVersionList {
	list := CustomVersionList{}
	if !v.Valid() {
		return list
	}
	for _, entry := range defaultCustomVersions {
		version := int32(-1)
		for minor := 0; minor <= int(v); minor++ {
			if reached, ok := entry.byUE4[minor]; ok {
				version = reached
			}
		}
		if version < 0 {
			continue
		}
		list = append(list, CustomVersion{Guid: entry.guid, FriendlyName: entry.name, Version: version})
	}
	return list
}
