package uhash

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashCaseInsensitive(t *testing.T) {
	assert.Equal(t, uint32(0), HashCaseInsensitive(""))
	assert.Equal(t, HashCaseInsensitive("NONE"), HashCaseInsensitive("None"))
	assert.Equal(t, HashCaseInsensitive("bool_property"), HashCaseInsensitive("BOOL_PROPERTY"))
	assert.NotEqual(t, HashCaseInsensitive("None"), HashCaseInsensitive("Nonf"))
	// one step per narrow character
	assert.Equal(t, deprecatedTable['A'], HashCaseInsensitive("a"))
}

func TestHashCaseSensitive(t *testing.T) {
	assert.Equal(t, crc32.ChecksumIEEE([]byte{'A', 0, 0, 0}), HashCaseSensitive("A"))
	assert.NotEqual(t, HashCaseSensitive("None"), HashCaseSensitive("NONE"))
}

func TestHashName(t *testing.T) {
	for _, s := range []string{"None", "BoolProperty", "Größe", ""} {
		hash := HashName(s)
		assert.Equal(t, HashCaseInsensitive(s)&0xFFFF, hash&0xFFFF, s)
		assert.Equal(t, HashCaseSensitive(s)&0xFFFF, hash>>16, s)
	}
}
