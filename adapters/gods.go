// Package adapters wraps third-party containers as backings for the
// skeletons in the containers package.
package adapters

import (
	"fmt"

	"github.com/emirpasic/gods/v2/lists"
	"github.com/emirpasic/gods/v2/lists/arraylist"

	"github.com/skroll/kt-acollections/containers"
)

// godsSeq adapts a gods list to the Sequence primitive.
type godsSeq[T comparable] struct {
	src     lists.List[T]
	indexed bool
}

func (s godsSeq[T]) Size() int { return s.src.Size() }

func (s godsSeq[T]) Get(index int) (T, error) {
	v, ok := s.src.Get(index)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: index %d (size %d)", containers.ErrIndexOutOfRange, index, s.src.Size())
	}
	return v, nil
}

func (s godsSeq[T]) RandomAccess() bool { return s.indexed }

// FromArrayList wraps a gods array list as a random-access list. The backing
// is shared, not copied; mutating it while the wrapper is in use breaks the
// read-only contract.
func FromArrayList[T comparable](src *arraylist.List[T]) *containers.List[T] {
	return containers.NewList[T](godsSeq[T]{src: src, indexed: true})
}

// FromList wraps any gods list as a positional-access list without the
// random-access tag, since linked backings answer Get in linear time.
func FromList[T comparable](src lists.List[T]) *containers.List[T] {
	return containers.NewList[T](godsSeq[T]{src: src})
}
