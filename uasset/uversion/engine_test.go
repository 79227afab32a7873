package uversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEngineVersion(t *testing.T) {
	for _, s := range []string{"4.18", "UE4.18", "VER_UE4_18"} {
		version, err := ParseEngineVersion(s)
		require.NoError(t, err, s)
		assert.Equal(t, UE4(18), version)
		assert.Equal(t, "4.18", version.String())
		assert.Equal(t, VerAddedSoftObjectPath, version.ObjectVersion())
	}

	_, err := ParseEngineVersion("5.1")
	assert.Error(t, err)
	_, err = ParseEngineVersion("4.99")
	assert.Error(t, err)
}

func TestGuessEngineVersion(t *testing.T) {
	assert.Equal(t, UE4(27), GuessEngineVersion(522))
	assert.Equal(t, UE4(17), GuessEngineVersion(513))
	assert.Equal(t, EngineUnknown, GuessEngineVersion(VerOldestLoadablePackage))
}

func TestCustomVersionList(t *testing.T) {
	list := CustomVersionList{}
	list = list.Set(CoreObjectVersion, 3)
	list = list.Set(FrameworkObjectVersion, 30)
	list = list.Set(CoreObjectVersion, 4)

	assert.Len(t, list, 2)
	assert.Equal(t, CoreObjectVersion, list[0].Guid)
	assert.Equal(t, int32(4), list.VersionOf(CoreObjectVersion))
	assert.Equal(t, int32(-1), list.VersionOf(EditorObjectVersion))
}

func TestDefaultCustomVersions(t *testing.T) {
	old := DefaultCustomVersions(UE4(13))
	assert.Less(t, old.VersionOf(CoreObjectVersion), CoreFProperties)

	recent := DefaultCustomVersions(UE4(26))
	assert.GreaterOrEqual(t, recent.VersionOf(CoreObjectVersion), CoreFProperties)
	assert.GreaterOrEqual(t, recent.VersionOf(FrameworkObjectVersion), FrameworkRemoveUFieldNext)

	assert.Empty(t, DefaultCustomVersions(EngineUnknown))
}

func TestFormatForLegacyVersion(t *testing.T) {
	assert.Equal(t, CustomVersionFormatOptimized, FormatForLegacyVersion(-7))
	assert.Equal(t, CustomVersionFormatGuids, FormatForLegacyVersion(-5))
	assert.Equal(t, CustomVersionFormatEnums, FormatForLegacyVersion(4))
}
