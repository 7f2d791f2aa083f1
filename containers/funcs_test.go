package containers_test

import (
	"errors"
	"testing"

	"github.com/skroll/kt-acollections/containers"
)

func TestCollect(t *testing.T) {
	got, err := containers.Collect(containers.ListOf(1, 2, 3).Iterator())
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []int{1, 2, 3})
}

func TestForEach(t *testing.T) {
	var sum int
	err := containers.ForEach(containers.ListOf(1, 2, 3).Iterator(), func(n int) error {
		sum += n
		return nil
	})
	if err != nil || sum != 6 {
		t.Fatalf("sum = %d, err = %v", sum, err)
	}
}

func TestForEachStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var seen int
	err := containers.ForEach(containers.ListOf(1, 2, 3).Iterator(), func(n int) error {
		seen++
		if n == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) || seen != 2 {
		t.Fatalf("seen = %d, err = %v", seen, err)
	}
}

func TestCount(t *testing.T) {
	n, err := containers.Count(containers.ListOf("a", "b", "c").Iterator())
	if err != nil || n != 3 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b []int
		want int
	}{
		{[]int{1, 2, 3}, []int{1, 2, 3}, 0},
		{[]int{1, 2}, []int{1, 2, 3}, -1},
		{[]int{1, 2, 3}, []int{1, 2}, 1},
		{[]int{1, 2, 4}, []int{1, 3, 0}, -1},
		{[]int{2}, []int{1, 9, 9}, 1},
		{nil, nil, 0},
	}
	for _, tc := range cases {
		got := containers.Compare(containers.ListFrom(tc.a), containers.ListFrom(tc.b))
		if got != tc.want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMinMaxOf(t *testing.T) {
	l := containers.ListOf(3, 1, 4, 1, 5)
	if v, ok := containers.MinOf(l); !ok || v != 1 {
		t.Fatalf("MinOf = %d, %v", v, ok)
	}
	if v, ok := containers.MaxOf(l); !ok || v != 5 {
		t.Fatalf("MaxOf = %d, %v", v, ok)
	}
	if _, ok := containers.MinOf(containers.EmptyList[int]()); ok {
		t.Fatal("MinOf of empty list should report false")
	}
	if _, ok := containers.MaxOf(containers.EmptyList[int]()); ok {
		t.Fatal("MaxOf of empty list should report false")
	}
}

func TestStructuralEqual(t *testing.T) {
	if !containers.StructuralEqual([]int{1, 2}, []int{1, 2}) {
		t.Fatal("equal slices should compare equal")
	}
	if containers.StructuralEqual([]int{1}, []int{2}) {
		t.Fatal("different slices should compare unequal")
	}
	if !containers.StructuralEqual[any](nil, nil) {
		t.Fatal("two nils should compare equal")
	}
}

func TestHashOfNil(t *testing.T) {
	if containers.HashOf[any](nil) != 0 {
		t.Fatal("nil must hash to 0")
	}
	var p *int
	if containers.HashOf(p) != 0 {
		t.Fatal("typed nil pointer must hash to 0")
	}
	if containers.HashOf("a") == 0 {
		t.Fatal("non-nil values should not collide with the nil hash")
	}
}
