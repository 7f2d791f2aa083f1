package containers

import "golang.org/x/exp/constraints"

// Package-level helpers over cursors and lists. Operations constrained to
// ordered elements live here rather than on the types, since Go methods
// cannot add type constraints of their own.

// Collect drains the iterator into a slice. On an iteration failure the
// elements gathered so far are returned together with the error.
func Collect[T any](it Iterator[T]) ([]T, error) {
	var out []T
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ForEach calls fn for every remaining element and stops at the first error,
// whether from the cursor or from fn.
func ForEach[T any](it Iterator[T], fn func(T) error) error {
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

// Count drains the iterator and reports how many elements it produced.
func Count[T any](it Iterator[T]) (int, error) {
	n := 0
	for it.HasNext() {
		if _, err := it.Next(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Compare orders two lists lexicographically: the first unequal pair of
// elements decides, and a shorter list precedes any longer list it
// prefixes. Returns -1, 0 or 1.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	x, y := a.Iterator(), b.Iterator()
	for x.HasNext() && y.HasNext() {
		av, err := x.Next()
		if err != nil {
			break
		}
		bv, err := y.Next()
		if err != nil {
			break
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	switch {
	case x.HasNext():
		return 1
	case y.HasNext():
		return -1
	}
	return 0
}

// MinOf returns the smallest element of the list.
// Returns the zero value and false when the list is empty.
func MinOf[T constraints.Ordered](l *List[T]) (T, bool) {
	var min T
	found := false
	it := l.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		if !found || v < min {
			min = v
		}
		found = true
	}
	return min, found
}

// MaxOf returns the largest element of the list.
// Returns the zero value and false when the list is empty.
func MaxOf[T constraints.Ordered](l *List[T]) (T, bool) {
	var max T
	found := false
	it := l.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		if !found || v > max {
			max = v
		}
		found = true
	}
	return max, found
}
