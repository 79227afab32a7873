package ds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.True(t, len(lhm.Keys()) == 0)

	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("a", 3)

	assert.Equal(t, []string{"a", "b"}, lhm.Keys())
	value, ok := lhm.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, value)
	assert.Equal(t, 2, lhm.Len())
}

func TestLinkedHashMap_Extend(t *testing.T) {
	lhm := NewLinkedHashMap[string, string]()
	lhm.Put("Keys", "RichCurveKey")

	other := NewLinkedHashMap[string, string]()
	other.Put("Items", "ItemRow")
	other.Put("Keys", "Generic")

	clone := lhm.Clone()
	clone.Extend(other)

	assert.Equal(t, []string{"Keys", "Items"}, clone.Keys())
	value, _ := clone.Get("Keys")
	assert.Equal(t, "Generic", value)
	value, _ = lhm.Get("Keys")
	assert.Equal(t, "RichCurveKey", value)
}

func TestLinkedHashMap_MarshalJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("def", 2)
	lhm.Put("abc", 1)

	bs, err := json.Marshal(lhm)
	assert.NoError(t, err)

	assert.Equal(t, `{"def":2,"abc":1}`, string(bs))
}
