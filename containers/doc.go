// Package containers provides skeletal, extensible read-only container
// types — list, set and map — modelled after the abstract container classes
// of kotlin.collections. A consumer obtains a fully conformant container by
// implementing only a minimal primitive set; everything else is derived.
//
// # Primitives and skeletons
//
// Each skeleton names the primitives it needs as a small interface:
//
//   - [Sequence]: Size + positional Get → [NewList] derives iteration,
//     search, equality, hashing and sublist views.
//   - [Traversable]: Size + bidirectional cursor factory →
//     [NewSequentialList] derives the same surface, including positional Get.
//   - [SetAccess]: Size + Contains + Iterator → [NewSet] derives
//     order-independent equality and hashing.
//   - [EntrySource]: a sized unique-key entry sequence → [NewMap] derives
//     lookup, containment, equality, hashing, rendering and the lazily
//     cached key/value views.
//
// Concrete slice-backed constructors are provided for convenience:
//
//	l := containers.ListOf("a", "b", "c")
//	s := containers.SetOf(1, 2, 3)
//	m := containers.MapOf(containers.NewEntry("x", 1), containers.NewEntry("y", 2))
//
// # Views
//
// SubList returns a window over the same backing rather than a copy, and a
// sublist of a sublist composes by offset addition, so element access stays
// O(1) at any slicing depth. The [RandomAccess] tag propagates from backing
// to view, letting algorithms pick index loops over cursor loops.
//
// # Equality and hashing
//
// Equal takes any value and capability-checks it first: comparing a list
// against a non-list (or a container of different element type) reports
// false instead of failing. Hashing follows the classic contract — values
// that are Equal agree in hash — using an order-sensitive polynomial over
// list elements and order-independent sums for sets and maps.
//
// # Concurrency
//
// Containers are read/iterate-only and safe for concurrent readers, with one
// documented relaxation: a map's key/value views are cached without
// synchronization, so concurrent first access may build duplicate,
// functionally equivalent view instances (last write wins).
package containers
