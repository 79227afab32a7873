package uarchive

import (
	"github.com/thanhnguyen2187/asset-savior/ds"
	"github.com/thanhnguyen2187/asset-savior/uasset/uindex"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

// NewSettings creates settings with an empty name table and the default
// struct type overrides.
func NewSettings(engine uversion.EngineVersion) *Settings {
	settings := &Settings{
		ObjectVersion:       engine.ObjectVersion(),
		CustomVersions:      uversion.DefaultCustomVersions(engine),
		EngineVersion:       engine,
		Names:               uname.NewTable(),
		Resolver:            &uindex.Resolver{},
		ArrayStructTypes:    ds.NewLinkedHashMap[string, string](),
		MapKeyStructTypes:   ds.NewLinkedHashMap[string, string](),
		MapValueStructTypes: ds.NewLinkedHashMap[string, string](),
	}

	settings.ArrayStructTypes.Put("Keys", "RichCurveKey")
	settings.MapKeyStructTypes.Put("PlayerCharacterIDs", "Guid")
	settings.MapKeyStructTypes.Put("PlayerCharacterIDMap", "Guid")
	settings.MapValueStructTypes.Put("PlayerCharacterIDs", "PlayerCharacterIDArray")

	return settings
}

func (s *Settings) AtLeast(threshold uversion.ObjectVersion) bool {
	return s.ObjectVersion.AtLeast(threshold)
}

// CustomVersion returns the version recorded for guid, or -1.
func (s *Settings) CustomVersion(guid utypes.Guid) int32 {
	return s.CustomVersions.VersionOf(guid)
}

// Engine returns the configured engine, or the newest engine whose object
// version does not exceed the session's.
func (s *Settings) Engine() uversion.EngineVersion {
	if s.EngineVersion.Valid() {
		return s.EngineVersion
	}
	return uversion.GuessEngineVersion(s.ObjectVersion)
}

func (s *Settings) HasPackageFlag(flag uint32) bool {
	return s.PackageFlags&flag != 0
}
