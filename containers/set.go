package containers

import (
	"fmt"
	"strings"
)

// SetAccess is the primitive contract for unordered unique-element
// containers: size, membership and iteration. [NewSet] composes equality and
// hashing on top.
type SetAccess[T any] interface {
	Size() int
	Contains(elem T) bool
	Iterator() Iterator[T]
}

// SetSemantics tags a container as an unordered unique-element set. Lists
// and value collections can expose the same Size/Contains/Iterator surface,
// so set equality only engages for containers that declare the tag.
type SetSemantics interface {
	SetSemantics() bool
}

// Set is the skeletal read-only set. Element uniqueness is the backing's
// responsibility; Set only derives the equality and hash composition.
type Set[T any] struct {
	base SetAccess[T]
}

// NewSet builds the set surface over a container's primitives.
func NewSet[T any](base SetAccess[T]) *Set[T] { return &Set[T]{base: base} }

// Size returns the number of elements.
func (s *Set[T]) Size() int { return s.base.Size() }

// IsEmpty reports whether the set contains no elements.
func (s *Set[T]) IsEmpty() bool { return s.base.Size() == 0 }

// Contains reports whether the set holds elem.
func (s *Set[T]) Contains(elem T) bool { return s.base.Contains(elem) }

// Iterator returns a forward cursor over the elements in the backing's
// iteration order.
func (s *Set[T]) Iterator() Iterator[T] { return s.base.Iterator() }

// SetSemantics reports true; Set is always a set.
func (s *Set[T]) SetSemantics() bool { return true }

// Equal reports whether other is a container with declared set semantics
// (see [SetSemantics]) over the same element type holding exactly this
// set's elements. Given equal sizes and no duplicates on either side,
// one-directional containment suffices. Comparing against any other kind of
// value reports false; it never fails with an error.
func (s *Set[T]) Equal(other any) bool {
	o, ok := other.(SetAccess[T])
	if !ok {
		return false
	}
	if tag, ok := other.(SetSemantics); !ok || !tag.SetSemantics() {
		return false
	}
	if s.Size() != o.Size() {
		return false
	}
	it := s.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return false
		}
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// Hash returns the sum of the element hashes (nil elements contribute 0).
// The sum is order-independent, so sets that are Equal always agree in hash.
func (s *Set[T]) Hash() uint64 {
	var h uint64
	it := s.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		h += HashOf(v)
	}
	return h
}

// String renders the elements as "[e1, e2, ...]" in iteration order.
// It implements [fmt.Stringer].
func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	it := s.Iterator()
	first := true
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		if p, ok := any(v).(*Set[T]); ok && p == s {
			sb.WriteString("(this Collection)")
			continue
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// sliceSet backs SetOf: insertion-ordered elements, unique by structural
// equality.
type sliceSet[T any] struct{ items []T }

func (s sliceSet[T]) Size() int { return len(s.items) }

func (s sliceSet[T]) Contains(elem T) bool {
	for _, v := range s.items {
		if StructuralEqual(v, elem) {
			return true
		}
	}
	return false
}

func (s sliceSet[T]) Iterator() Iterator[T] {
	it, _ := newSeqIterator[T](sliceSeq[T]{items: s.items}, 0)
	return it
}

// SetOf creates a set from a variadic list of elements (copied). Duplicates
// by structural equality are dropped; the first occurrence wins and
// iteration preserves insertion order.
func SetOf[T any](items ...T) *Set[T] {
	base := sliceSet[T]{}
	for _, v := range items {
		if !base.Contains(v) {
			base.items = append(base.items, v)
		}
	}
	return NewSet[T](base)
}
