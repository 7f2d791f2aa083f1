package containers

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// StructuralEqual reports whether a and b are structurally equal. It is the
// element-equality relation used by every skeleton in this package: two nil
// values compare equal, and composite values compare by their contents.
func StructuralEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// HashOf returns a 64-bit structural hash of v. A nil value hashes to 0.
//
// The hash is derived from the value's canonical string rendering, so any
// two values that are [StructuralEqual] agree in hash. Elements that render
// by identity rather than by content (e.g. pointers) weaken that guarantee;
// containers of such elements should be compared with Equal only.
func HashOf[T any](v T) uint64 {
	if isNil(v) {
		return 0
	}
	h := fnv.New64a()
	fmt.Fprintf(h, "%v", v)
	return h.Sum64()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
