package uversion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EngineVersion is a UE4 minor release, 4.0 through 4.27.
type EngineVersion int

const (
	EngineUnknown EngineVersion = -1
	EngineOldest  EngineVersion = 0
	EngineNewest  EngineVersion = 27
)

// objectVersionByEngine maps each minor release to the object version it saves with.
var objectVersionByEngine = [...]ObjectVersion{
	342, 352, 363, 382, 385, 401, 413, 434, 451, 482,
	482, 498, 504, 505, 508, 510, 513, 513, 514, 516,
	516, 517, 517, 517, 518, 518, 519, 522,
}

func UE4(minor int) EngineVersion {
	return EngineVersion(minor)
}

func (v EngineVersion) Valid() bool {
	return v >= EngineOldest && v <= EngineNewest
}

func (v EngineVersion) String() string {
	if !v.Valid() {
		return "unknown"
	}
	return fmt.Sprintf("4.%d", int(v))
}

// ObjectVersion returns the object version an asset saved by v carries,
// or VerUnknown for an unknown engine.
func (v EngineVersion) ObjectVersion() ObjectVersion {
	if !v.Valid() {
		return VerUnknown
	}
	return objectVersionByEngine[v]
}

// ParseEngineVersion accepts "4.18", "UE4.18" and "VER_UE4_18".
func ParseEngineVersion(s string) (EngineVersion, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "VER_")
	trimmed = strings.TrimPrefix(trimmed, "UE")
	trimmed = strings.Replace(trimmed, "_", ".", 1)
	parts := strings.Split(trimmed, ".")
	if len(parts) != 2 || parts[0] != "4" {
		return EngineUnknown, errors.Errorf(`uversion.ParseEngineVersion error: unsupported engine version "%s"`, s)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return EngineUnknown, errors.Wrapf(err, `uversion.ParseEngineVersion error parsing "%s"`, s)
	}
	version := EngineVersion(minor)
	if !version.Valid() {
		return EngineUnknown, errors.Errorf(`uversion.ParseEngineVersion error: unsupported engine version "%s"`, s)
	}
	return version, nil
}

// GuessEngineVersion returns the newest engine whose object version is ov.
func GuessEngineVersion(ov ObjectVersion) EngineVersion {
	guess := EngineUnknown
	for minor, version := range objectVersionByEngine {
		if version <= ov {
			guess = EngineVersion(minor)
		}
	}
	return guess
}
