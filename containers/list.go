package containers

import (
	"fmt"
	"strings"
)

// Sequence is the primitive contract for positional access: a concrete
// container only has to supply Size and Get, and [NewList] derives the rest
// of the list surface (iteration, search, equality, hashing, sublist views).
//
// Get must return [ErrIndexOutOfRange] for any index outside [0, Size()).
type Sequence[T any] interface {
	// Size returns the number of elements; never negative.
	Size() int

	// Get returns the element at index.
	Get(index int) (T, error)
}

// RandomAccess tags a container whose positional access runs in constant
// time, letting library code choose index-based loops over cursor-based
// ones. Sequences that leave the tag off are still fully usable; they just
// never get the constant-time fast paths.
type RandomAccess interface {
	RandomAccess() bool
}

// IsRandomAccess reports whether v claims constant-time positional access.
func IsRandomAccess(v any) bool {
	ra, ok := v.(RandomAccess)
	return ok && ra.RandomAccess()
}

// ─────────────────────────────────────────────────────────────────────────────
// List skeleton
// ─────────────────────────────────────────────────────────────────────────────

// List is the skeletal read-only list. It wraps a container's primitives and
// derives the remaining operations from them; it never copies elements, and
// a sublist is a window into the same backing rather than a snapshot.
//
// Obtain one from [NewList] (positional primitives), [NewSequentialList]
// (cursor primitives), or the concrete constructors [ListOf], [ListFrom] and
// [EmptyList].
type List[T any] struct {
	root Sequence[T]

	// cursors is non-nil when the root container is cursor-native
	// (sequential access); positional cursors are synthesized otherwise.
	cursors func(start int) (ListIterator[T], error)

	// Views fix offset and length at creation time; length is -1 for a
	// list that spans the live root.
	offset int
	length int

	indexable bool
}

// NewList builds the full list surface over a positional-access container.
// The result carries the constant-time tag when base does (see
// [RandomAccess]).
func NewList[T any](base Sequence[T]) *List[T] {
	return &List[T]{root: base, length: -1, indexable: IsRandomAccess(base)}
}

// Size returns the number of elements; for a sublist this is the window
// length fixed at creation.
func (l *List[T]) Size() int {
	if l.length >= 0 {
		return l.length
	}
	return l.root.Size()
}

// IsEmpty reports whether the list contains no elements.
func (l *List[T]) IsEmpty() bool { return l.Size() == 0 }

// RandomAccess reports whether positional access on this list is constant
// time. Sublists inherit the answer from the list they were cut from.
func (l *List[T]) RandomAccess() bool { return l.indexable }

// Get returns the element at index, or [ErrIndexOutOfRange]. A sublist
// range-checks against its own length before delegating to the backing at
// index+offset.
func (l *List[T]) Get(index int) (T, error) {
	if l.length >= 0 {
		if index < 0 || index >= l.length {
			var zero T
			return zero, fmt.Errorf("%w: index %d (size %d)", ErrIndexOutOfRange, index, l.length)
		}
		return l.root.Get(index + l.offset)
	}
	return l.root.Get(index)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Iterator returns a forward cursor over the whole list.
func (l *List[T]) Iterator() Iterator[T] {
	it, err := l.ListIterator(0)
	if err != nil {
		return emptyIterator[T]{}
	}
	return it
}

// ListIterator returns a bidirectional cursor positioned at start. The
// inclusive domain is [0, Size()]: a cursor resting one past the last
// element is valid for backward traversal.
func (l *List[T]) ListIterator(start int) (ListIterator[T], error) {
	if n := l.Size(); start < 0 || start > n {
		return nil, fmt.Errorf("%w: index %d (size %d)", ErrIndexOutOfRange, start, n)
	}
	if l.cursors == nil {
		return newSeqIterator[T](l, start)
	}
	inner, err := l.cursors(start + l.offset)
	if err != nil {
		return nil, err
	}
	if l.length < 0 {
		return inner, nil
	}
	return &boundedIterator[T]{inner: inner, offset: l.offset, length: l.length}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the index of the first element structurally equal to elem,
// or -1 when absent. Two nil elements compare equal.
func (l *List[T]) IndexOf(elem T) int {
	li, err := l.ListIterator(0)
	if err != nil {
		return -1
	}
	for li.HasNext() {
		i := li.NextIndex()
		v, err := li.Next()
		if err != nil {
			break
		}
		if StructuralEqual(v, elem) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element structurally equal to
// elem, or -1 when absent.
func (l *List[T]) LastIndexOf(elem T) int {
	li, err := l.ListIterator(l.Size())
	if err != nil {
		return -1
	}
	for li.HasPrevious() {
		i := li.PreviousIndex()
		v, err := li.Previous()
		if err != nil {
			break
		}
		if StructuralEqual(v, elem) {
			return i
		}
	}
	return -1
}

// Contains reports whether the list holds an element structurally equal to
// elem.
func (l *List[T]) Contains(elem T) bool { return l.IndexOf(elem) >= 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Equality & hashing
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether other is a positional-access container over the same
// element type yielding pairwise structurally-equal elements in the same
// order. Comparing against any other kind of value reports false; it never
// fails with an error.
func (l *List[T]) Equal(other any) bool {
	o, ok := other.(Sequence[T])
	if !ok {
		return false
	}
	a := l.Iterator()
	b := iteratorOver[T](o)
	for a.HasNext() && b.HasNext() {
		av, aerr := a.Next()
		bv, berr := b.Next()
		if aerr != nil || berr != nil {
			return false
		}
		if !StructuralEqual(av, bv) {
			return false
		}
	}
	return !a.HasNext() && !b.HasNext()
}

// Hash returns the order-sensitive polynomial hash of the elements:
// h = 31*h + hash(e), starting from 1, with nil elements contributing 0.
// Lists that are Equal always agree in hash.
func (l *List[T]) Hash() uint64 {
	h := uint64(1)
	it := l.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		h = 31*h + HashOf(v)
	}
	return h
}

// ─────────────────────────────────────────────────────────────────────────────
// Sublist views
// ─────────────────────────────────────────────────────────────────────────────

// SubList returns the window [from, to) over this list as a new list. The
// view shares the original backing: no elements are copied, and slicing a
// sublist composes by offset addition, so access cost does not grow with
// nesting depth.
//
// Fails with [ErrIndexOutOfRange] when from < 0 or to > Size(), and with
// [ErrInvalidRange] when from > to. The window is fixed at creation and is
// not revalidated against a backing that later changes size.
func (l *List[T]) SubList(from, to int) (*List[T], error) {
	if n := l.Size(); from < 0 || to > n {
		return nil, fmt.Errorf("%w: range [%d, %d) (size %d)", ErrIndexOutOfRange, from, to, n)
	}
	if from > to {
		return nil, fmt.Errorf("%w: from %d > to %d", ErrInvalidRange, from, to)
	}
	return &List[T]{
		root:      l.root,
		cursors:   l.cursors,
		offset:    l.offset + from,
		length:    to - from,
		indexable: l.indexable,
	}, nil
}

// String renders the elements as "[e1, e2, ...]" in list order. An element
// that is this list itself is rendered as "(this Collection)".
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	it := l.Iterator()
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
		if p, ok := any(v).(*List[T]); ok && p == l {
			sb.WriteString("(this Collection)")
			continue
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Concrete slice backing
// ─────────────────────────────────────────────────────────────────────────────

// sliceSeq is the slice backing behind ListOf and friends.
type sliceSeq[T any] struct{ items []T }

func (s sliceSeq[T]) Size() int { return len(s.items) }

func (s sliceSeq[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(s.items) {
		var zero T
		return zero, fmt.Errorf("%w: index %d (size %d)", ErrIndexOutOfRange, index, len(s.items))
	}
	return s.items[index], nil
}

func (s sliceSeq[T]) RandomAccess() bool { return true }

// ListOf creates a random-access list from a variadic list of elements
// (copied).
func ListOf[T any](items ...T) *List[T] { return ListFrom(items) }

// ListFrom creates a random-access list from a slice (the slice is copied).
func ListFrom[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return NewList[T](sliceSeq[T]{items: dst})
}

// EmptyList creates an empty random-access list of type T.
func EmptyList[T any]() *List[T] { return NewList[T](sliceSeq[T]{}) }
