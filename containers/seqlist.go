package containers

import "fmt"

// Traversable is the primitive contract for sequential-access containers.
// The consumer supplies Size and a bidirectional cursor factory; the cursor
// implementation is the one load-bearing piece of state-machine logic that
// cannot be defaulted, and everything else — positional Get included — is
// derived from it.
type Traversable[T any] interface {
	// Size returns the number of elements; never negative.
	Size() int

	// ListIterator returns a cursor positioned at start. Implementations
	// must reject starts outside the inclusive [0, Size()] domain with
	// ErrIndexOutOfRange.
	ListIterator(start int) (ListIterator[T], error)
}

// cursorSeq derives positional access from a cursor factory: Get opens a
// cursor at the index and takes its next element.
type cursorSeq[T any] struct{ base Traversable[T] }

func (s cursorSeq[T]) Size() int { return s.base.Size() }

func (s cursorSeq[T]) Get(index int) (T, error) {
	var zero T
	it, err := s.base.ListIterator(index)
	if err != nil {
		return zero, err
	}
	v, err := it.Next()
	if err != nil {
		// An immediately exhausted cursor means index == size, or a
		// backing holding fewer elements than its claimed size; either
		// way the caller asked for an index that is not there.
		return zero, fmt.Errorf("%w: index %d (size %d)", ErrIndexOutOfRange, index, s.base.Size())
	}
	return v, nil
}

// NewSequentialList builds the full list surface over a cursor-native
// container. Iteration uses the consumer's cursors directly; positional Get
// is derived by opening a cursor at the index. The result never carries the
// constant-time tag.
func NewSequentialList[T any](base Traversable[T]) *List[T] {
	return &List[T]{
		root:    cursorSeq[T]{base: base},
		cursors: base.ListIterator,
		length:  -1,
	}
}
