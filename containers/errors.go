package containers

import "errors"

// Sentinel errors returned by the container skeletons.
//
// Bounds and range violations are always surfaced synchronously to the
// caller of the offending operation. Exhaustion caused by a backing that
// shrank beneath an in-flight iteration is converted at the list layer into
// the narrower condition appropriate to the call: positional Get reports
// ErrIndexOutOfRange, cursors report ErrNoSuchElement. Comparing a container
// against an incomparable value never produces an error; Equal simply
// reports false.
var (
	// ErrIndexOutOfRange is returned when an index or range endpoint falls
	// outside the valid domain of the container or view it was applied to.
	ErrIndexOutOfRange = errors.New("containers: index out of range")

	// ErrInvalidRange is returned by SubList when from > to.
	ErrInvalidRange = errors.New("containers: invalid range")

	// ErrNoSuchElement is returned when a cursor is advanced (or retreated)
	// past the available elements.
	ErrNoSuchElement = errors.New("containers: no such element")
)
