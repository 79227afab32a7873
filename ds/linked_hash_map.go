package ds

import (
	"bytes"
	"encoding/json"
)

// LinkedHashMap is a map that remembers insertion order for key fetching and
// serialization. Putting an existing key keeps its original position.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	ordering []K
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  map[K]V{},
		ordering: []K{},
	}
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	keys := make([]K, len(r.ordering))
	copy(keys, r.ordering)
	return keys
}

func (r *LinkedHashMap[K, V]) Len() int {
	return len(r.ordering)
}

func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	if _, existed := r.hashMap[key]; !existed {
		r.ordering = append(r.ordering, key)
	}
	r.hashMap[key] = value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

// Extend puts every entry of other, in other's order.
func (r *LinkedHashMap[K, V]) Extend(other *LinkedHashMap[K, V]) {
	if other == nil {
		return
	}
	for _, key := range other.ordering {
		r.Put(key, other.hashMap[key])
	}
}

func (r *LinkedHashMap[K, V]) Clone() *LinkedHashMap[K, V] {
	clone := NewLinkedHashMap[K, V]()
	clone.Extend(r)
	return clone
}

func (r LinkedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0))

	buf.WriteRune('{')
	for i, key := range r.ordering {
		keyBs, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBs)

		buf.WriteRune(':')

		valueBs, err := json.Marshal(r.hashMap[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueBs)

		if i != len(r.ordering)-1 {
			buf.WriteRune(',')
		}
	}
	buf.WriteRune('}')

	return buf.Bytes(), nil
}
