package containers

import (
	"fmt"
	"strings"
)

// EntrySource is the one required primitive of the map skeleton: a sized
// sequence of unique-key entries. Entries must hand out a fresh iterator
// over the live sequence on every call; iteration order is whatever the
// concrete implementation defines.
type EntrySource[K, V any] interface {
	Size() int
	Entries() Iterator[Entry[K, V]]
}

// ─────────────────────────────────────────────────────────────────────────────
// Map skeleton
// ─────────────────────────────────────────────────────────────────────────────

// Map is the skeletal read-only map. Size, containment, lookup, equality,
// hashing and the key/value views are all derived from the entry sequence.
//
// The derived lookups scan the entries and are O(n); concrete maps holding
// an indexed backing should expose their own fast lookups alongside.
type Map[K, V any] struct {
	base EntrySource[K, V]

	// Built lazily on first access. Initialization is deliberately
	// unsynchronized: concurrent first access may construct duplicate,
	// individually correct views, and the last write to the slot wins.
	keys   *Set[K]
	values *ValueView[K, V]
}

// NewMap builds the map surface over an entry sequence.
func NewMap[K, V any](base EntrySource[K, V]) *Map[K, V] {
	return &Map[K, V]{base: base}
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int { return m.base.Size() }

// IsEmpty reports whether the map contains no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.base.Size() == 0 }

// Entries returns a fresh forward cursor over the live entry sequence.
func (m *Map[K, V]) Entries() Iterator[Entry[K, V]] { return m.base.Entries() }

// Get returns the value mapped to key by scanning the entry sequence.
func (m *Map[K, V]) Get(key K) (V, bool) {
	it := m.base.Entries()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		if StructuralEqual(e.Key, key) {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether some entry carries key.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// ContainsValue reports whether some entry carries value.
func (m *Map[K, V]) ContainsValue(value V) bool {
	it := m.base.Entries()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		if StructuralEqual(e.Value, value) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Derived views
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the key-set view of the map. The view is a live projection,
// not a copy: its size tracks the map, membership delegates to ContainsKey,
// and iteration projects each live entry's key. The instance is built on
// first access and cached for the map's lifetime.
func (m *Map[K, V]) Keys() *Set[K] {
	if m.keys == nil {
		m.keys = NewSet[K](keySetAccess[K, V]{m: m})
	}
	return m.keys
}

// Values returns the value-collection view of the map; like [Map.Keys] it is
// a lazily cached live projection.
func (m *Map[K, V]) Values() *ValueView[K, V] {
	if m.values == nil {
		m.values = &ValueView[K, V]{m: m}
	}
	return m.values
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality, hashing, rendering
// ─────────────────────────────────────────────────────────────────────────────

// mapLookup is the capability Equal probes the other value for.
type mapLookup[K, V any] interface {
	Size() int
	Get(key K) (V, bool)
}

// Equal reports whether other is a map-like container over the same key and
// value types holding exactly this map's entries: sizes match, and looking
// up each of this map's keys in other yields a structurally equal value.
// A value that cannot be probed this way (wrong kind, wrong types) fails
// closed to false rather than erroring.
func (m *Map[K, V]) Equal(other any) bool {
	o, ok := other.(mapLookup[K, V])
	if !ok {
		return false
	}
	if m.Size() != o.Size() {
		return false
	}
	it := m.base.Entries()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return false
		}
		v, found := o.Get(e.Key)
		if !found || !StructuralEqual(v, e.Value) {
			return false
		}
	}
	return true
}

// Hash returns the sum of the per-entry hashes (key hash XOR value hash).
// Maps that are Equal always agree in hash.
func (m *Map[K, V]) Hash() uint64 {
	var h uint64
	it := m.base.Entries()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		h += e.Hash()
	}
	return h
}

// String renders "{}" for an empty map, otherwise "{k1=v1, k2=v2, ...}" in
// entry-sequence order. A key or value that is this map itself is rendered
// as "(this Map)". It implements [fmt.Stringer].
func (m *Map[K, V]) String() string {
	if m.IsEmpty() {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	it := m.base.Entries()
	first := true
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		m.render(&sb, any(e.Key))
		sb.WriteByte('=')
		m.render(&sb, any(e.Value))
	}
	sb.WriteByte('}')
	return sb.String()
}

func (m *Map[K, V]) render(sb *strings.Builder, v any) {
	if p, ok := v.(*Map[K, V]); ok && p == m {
		sb.WriteString("(this Map)")
		return
	}
	fmt.Fprintf(sb, "%v", v)
}

// keySetAccess adapts the owning map into set primitives for the key view.
type keySetAccess[K, V any] struct{ m *Map[K, V] }

func (a keySetAccess[K, V]) Size() int           { return a.m.Size() }
func (a keySetAccess[K, V]) Contains(key K) bool { return a.m.ContainsKey(key) }

func (a keySetAccess[K, V]) Iterator() Iterator[K] {
	return &keyIterator[K, V]{entries: a.m.Entries()}
}

type keyIterator[K, V any] struct{ entries Iterator[Entry[K, V]] }

func (it *keyIterator[K, V]) HasNext() bool { return it.entries.HasNext() }

func (it *keyIterator[K, V]) Next() (K, error) {
	e, err := it.entries.Next()
	if err != nil {
		var zero K
		return zero, err
	}
	return e.Key, nil
}

// ValueView is the value-collection projection of a map: live size,
// membership via ContainsValue, iteration projecting each entry's value.
// Unlike keys, values form a plain collection — duplicates are expected and
// no set equality is defined over them.
type ValueView[K, V any] struct{ m *Map[K, V] }

// Size returns the owning map's current size.
func (v *ValueView[K, V]) Size() int { return v.m.Size() }

// IsEmpty reports whether the owning map is empty.
func (v *ValueView[K, V]) IsEmpty() bool { return v.m.IsEmpty() }

// Contains reports whether some entry of the owning map carries value.
func (v *ValueView[K, V]) Contains(value V) bool { return v.m.ContainsValue(value) }

// Iterator returns a forward cursor over the values in entry-sequence order.
func (v *ValueView[K, V]) Iterator() Iterator[V] {
	return &valueIterator[K, V]{entries: v.m.Entries()}
}

// String renders the values as "[v1, v2, ...]" in entry-sequence order.
func (v *ValueView[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	it := v.Iterator()
	first := true
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(']')
	return sb.String()
}

type valueIterator[K, V any] struct{ entries Iterator[Entry[K, V]] }

func (it *valueIterator[K, V]) HasNext() bool { return it.entries.HasNext() }

func (it *valueIterator[K, V]) Next() (V, error) {
	e, err := it.entries.Next()
	if err != nil {
		var zero V
		return zero, err
	}
	return e.Value, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Concrete entry-slice backing
// ─────────────────────────────────────────────────────────────────────────────

// entrySlice backs MapOf: insertion-ordered entries with unique keys.
type entrySlice[K, V any] struct{ entries []Entry[K, V] }

func (s entrySlice[K, V]) Size() int { return len(s.entries) }

func (s entrySlice[K, V]) Entries() Iterator[Entry[K, V]] {
	it, _ := newSeqIterator[Entry[K, V]](sliceSeq[Entry[K, V]]{items: s.entries}, 0)
	return it
}

// MapOf creates a map from entries, keeping the first-insertion order of
// keys; a later duplicate key overwrites the value in place.
func MapOf[K, V any](entries ...Entry[K, V]) *Map[K, V] {
	var s entrySlice[K, V]
	for _, e := range entries {
		replaced := false
		for i, have := range s.entries {
			if StructuralEqual(have.Key, e.Key) {
				s.entries[i].Value = e.Value
				replaced = true
				break
			}
		}
		if !replaced {
			s.entries = append(s.entries, e)
		}
	}
	return NewMap[K, V](s)
}
