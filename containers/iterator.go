package containers

import "fmt"

// Iterator is a forward cursor over a container's elements.
//
// Next returns [ErrNoSuchElement] once the elements are exhausted; HasNext
// reports whether a call to Next would succeed against the container's
// current size.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// ListIterator is a bidirectional cursor that also reports its position.
//
// A cursor sits between elements: after construction at position p,
// NextIndex() == p and PreviousIndex() == p-1. Position size (one past the
// last element) is a valid resting point for backward traversal.
type ListIterator[T any] interface {
	Iterator[T]
	HasPrevious() bool
	Previous() (T, error)
	NextIndex() int
	PreviousIndex() int
}

// seqIterator derives a bidirectional cursor purely from positional access:
// advancing increments the position and reads, retreating decrements first
// and then reads.
type seqIterator[T any] struct {
	seq  Sequence[T]
	pos  int
	last int // index handed out by the most recent Next/Previous, -1 initially
}

func newSeqIterator[T any](seq Sequence[T], start int) (*seqIterator[T], error) {
	if n := seq.Size(); start < 0 || start > n {
		return nil, fmt.Errorf("%w: index %d (size %d)", ErrIndexOutOfRange, start, n)
	}
	return &seqIterator[T]{seq: seq, pos: start, last: -1}, nil
}

func (it *seqIterator[T]) HasNext() bool      { return it.pos != it.seq.Size() }
func (it *seqIterator[T]) HasPrevious() bool  { return it.pos > 0 }
func (it *seqIterator[T]) NextIndex() int     { return it.pos }
func (it *seqIterator[T]) PreviousIndex() int { return it.pos - 1 }

func (it *seqIterator[T]) Next() (T, error) {
	var zero T
	if !it.HasNext() {
		return zero, fmt.Errorf("%w: position %d", ErrNoSuchElement, it.pos)
	}
	v, err := it.seq.Get(it.pos)
	if err != nil {
		// The backing shrank beneath an in-flight iteration; report
		// exhaustion, not the raw bounds failure.
		return zero, fmt.Errorf("%w: position %d", ErrNoSuchElement, it.pos)
	}
	it.last = it.pos
	it.pos++
	return v, nil
}

func (it *seqIterator[T]) Previous() (T, error) {
	var zero T
	if !it.HasPrevious() {
		return zero, fmt.Errorf("%w: position %d", ErrNoSuchElement, it.pos)
	}
	it.pos--
	v, err := it.seq.Get(it.pos)
	if err != nil {
		return zero, fmt.Errorf("%w: position %d", ErrNoSuchElement, it.pos)
	}
	it.last = it.pos
	return v, nil
}

// boundedIterator rebases a cursor on a backing container into a view's own
// index space: every reported index is shifted by -offset, and the
// has-next/has-previous checks are redefined against the view's length and
// zero boundary instead of the backing's.
type boundedIterator[T any] struct {
	inner  ListIterator[T]
	offset int
	length int
}

func (it *boundedIterator[T]) NextIndex() int     { return it.inner.NextIndex() - it.offset }
func (it *boundedIterator[T]) PreviousIndex() int { return it.inner.PreviousIndex() - it.offset }
func (it *boundedIterator[T]) HasNext() bool      { return it.NextIndex() < it.length }
func (it *boundedIterator[T]) HasPrevious() bool  { return it.PreviousIndex() >= 0 }

func (it *boundedIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, fmt.Errorf("%w: position %d", ErrNoSuchElement, it.NextIndex())
	}
	return it.inner.Next()
}

func (it *boundedIterator[T]) Previous() (T, error) {
	if !it.HasPrevious() {
		var zero T
		return zero, fmt.Errorf("%w: position %d", ErrNoSuchElement, it.NextIndex())
	}
	return it.inner.Previous()
}

// emptyIterator is handed out when a cursor cannot be opened at all, e.g.
// the backing shrank below a view's window.
type emptyIterator[T any] struct{}

func (emptyIterator[T]) HasNext() bool { return false }

func (emptyIterator[T]) Next() (T, error) {
	var zero T
	return zero, ErrNoSuchElement
}

// iteratorOver returns a forward cursor for any positional-access container,
// preferring the container's own Iterator when it provides one.
func iteratorOver[T any](s Sequence[T]) Iterator[T] {
	if c, ok := s.(interface{ Iterator() Iterator[T] }); ok {
		return c.Iterator()
	}
	it, err := newSeqIterator[T](s, 0)
	if err != nil {
		return emptyIterator[T]{}
	}
	return it
}
