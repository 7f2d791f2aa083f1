package containers

import "fmt"

// Entry is an immutable key/value pair, the element type of a map's entry
// sequence. Identity is purely structural: two entries are equal iff their
// keys and values are.
//
// Portability note: this is the analogue of Map.Entry in Java/Kotlin or a
// (key, value) tuple in Python.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// NewEntry pairs a key with a value.
func NewEntry[K, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// Equal reports whether other is an entry of the same key/value types with a
// structurally equal key and value.
func (e Entry[K, V]) Equal(other any) bool {
	o, ok := other.(Entry[K, V])
	if !ok {
		return false
	}
	return StructuralEqual(e.Key, o.Key) && StructuralEqual(e.Value, o.Value)
}

// Hash is the XOR of the key and value hashes; a nil key or value hashes
// to 0.
func (e Entry[K, V]) Hash() uint64 {
	return HashOf(e.Key) ^ HashOf(e.Value)
}

// String returns "key=value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}
