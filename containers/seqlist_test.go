package containers_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/skroll/kt-acollections/containers"
)

// linkedList is a doubly linked test fixture supplying only the Traversable
// primitives: a size and a bidirectional cursor.
type linkedList struct {
	head, tail *node
	size       int
}

type node struct {
	val        string
	next, prev *node
}

func newLinkedList(items ...string) *linkedList {
	l := &linkedList{}
	for _, v := range items {
		n := &node{val: v, prev: l.tail}
		if l.tail == nil {
			l.head = n
		} else {
			l.tail.next = n
		}
		l.tail = n
		l.size++
	}
	return l
}

func (l *linkedList) Size() int { return l.size }

func (l *linkedList) ListIterator(start int) (containers.ListIterator[string], error) {
	if start < 0 || start > l.size {
		return nil, fmt.Errorf("%w: index %d (size %d)", containers.ErrIndexOutOfRange, start, l.size)
	}
	cur := l.head
	for i := 0; i < start; i++ {
		cur = cur.next
	}
	return &linkedCursor{list: l, next: cur, pos: start}, nil
}

// linkedCursor sits between nodes; next is nil once past the tail.
type linkedCursor struct {
	list *linkedList
	next *node
	pos  int
}

func (c *linkedCursor) HasNext() bool      { return c.pos != c.list.size }
func (c *linkedCursor) HasPrevious() bool  { return c.pos > 0 }
func (c *linkedCursor) NextIndex() int     { return c.pos }
func (c *linkedCursor) PreviousIndex() int { return c.pos - 1 }

func (c *linkedCursor) Next() (string, error) {
	if !c.HasNext() || c.next == nil {
		return "", fmt.Errorf("%w: position %d", containers.ErrNoSuchElement, c.pos)
	}
	v := c.next.val
	c.next = c.next.next
	c.pos++
	return v, nil
}

func (c *linkedCursor) Previous() (string, error) {
	if !c.HasPrevious() {
		return "", fmt.Errorf("%w: position %d", containers.ErrNoSuchElement, c.pos)
	}
	if c.next == nil {
		c.next = c.list.tail
	} else {
		c.next = c.next.prev
	}
	c.pos--
	return c.next.val, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequential list surface
// ─────────────────────────────────────────────────────────────────────────────

func TestSequentialListGet(t *testing.T) {
	l := containers.NewSequentialList[string](newLinkedList("a", "b", "c"))
	for i, want := range []string{"a", "b", "c"} {
		v, err := l.Get(i)
		if err != nil || v != want {
			t.Fatalf("Get(%d) = %q, %v; want %q", i, v, err, want)
		}
	}
}

func TestSequentialListGetBounds(t *testing.T) {
	l := containers.NewSequentialList[string](newLinkedList("a", "b"))
	if _, err := l.Get(-1); !errors.Is(err, containers.ErrIndexOutOfRange) {
		t.Fatalf("Get(-1): got %v", err)
	}
	// Index == size opens a valid cursor that is immediately exhausted; the
	// caller must still see a bounds failure, not the exhaustion.
	_, err := l.Get(2)
	if !errors.Is(err, containers.ErrIndexOutOfRange) {
		t.Fatalf("Get(2): got %v", err)
	}
	if errors.Is(err, containers.ErrNoSuchElement) {
		t.Fatal("internal exhaustion must not leak out of Get")
	}
}

func TestSequentialListIteration(t *testing.T) {
	l := containers.NewSequentialList[string](newLinkedList("a", "b", "c"))
	got, err := containers.Collect(l.Iterator())
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []string{"a", "b", "c"})

	it := mustListIterator(t, l, 3)
	var back []string
	for it.HasPrevious() {
		back = append(back, mustPrevious[string](t, it))
	}
	assertSlice(t, back, []string{"c", "b", "a"})
}

func TestSequentialListNotRandomAccess(t *testing.T) {
	l := containers.NewSequentialList[string](newLinkedList("a"))
	if l.RandomAccess() {
		t.Fatal("cursor-native lists must not claim constant-time access")
	}
	if containers.IsRandomAccess(l) {
		t.Fatal("IsRandomAccess must agree with the tag")
	}
}

func TestSequentialListSearch(t *testing.T) {
	l := containers.NewSequentialList[string](newLinkedList("a", "b", "a"))
	if i := l.IndexOf("a"); i != 0 {
		t.Fatalf("IndexOf(a) = %d", i)
	}
	if i := l.LastIndexOf("a"); i != 2 {
		t.Fatalf("LastIndexOf(a) = %d", i)
	}
}

func TestSequentialEqualsRandomAccess(t *testing.T) {
	seq := containers.NewSequentialList[string](newLinkedList("a", "b", "c"))
	ra := containers.ListOf("a", "b", "c")
	if !seq.Equal(ra) || !ra.Equal(seq) {
		t.Fatal("lists with identical elements must be equal across backings")
	}
	if seq.Hash() != ra.Hash() {
		t.Fatal("equal lists must agree in hash")
	}
}
