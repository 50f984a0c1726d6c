package lane

import (
	"errors"
	"fmt"
)

var (
	// ErrLaneRange is reported when a lane index is outside [0, N).
	ErrLaneRange = errors.New("lane index out of range")

	// ErrLaneCount is reported when operands have different lane counts.
	ErrLaneCount = errors.New("lane count mismatch")

	// ErrPattern is reported for malformed permutation or swizzle patterns.
	ErrPattern = errors.New("invalid lane pattern")

	// ErrParse is reported when text cannot be parsed into a vector.
	ErrParse = errors.New("cannot parse vector")
)

// RangeError describes an out-of-range lane access.
type RangeError struct {
	Index int
	Lanes int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("lane: index %d out of range [0, %d)", e.Index, e.Lanes)
}

func (e *RangeError) Unwrap() error { return ErrLaneRange }

// LaneCountError describes an operation applied to vectors whose lane
// counts do not agree.
type LaneCountError struct {
	Op   string
	Want int
	Got  int
}

func (e *LaneCountError) Error() string {
	return fmt.Sprintf("lane: %s: want %d lanes, got %d", e.Op, e.Want, e.Got)
}

func (e *LaneCountError) Unwrap() error { return ErrLaneCount }

func checkLane(i, n int) {
	if i < 0 || i >= n {
		panic(&RangeError{Index: i, Lanes: n})
	}
}

func mustLanes(op string, got, want int) {
	if got != want {
		panic(&LaneCountError{Op: op, Want: want, Got: got})
	}
}

// sameLanes returns the shared lane count of a and b.
func sameLanes[T Lanes](op string, a, b Vec[T]) int {
	mustLanes(op, len(b.data), len(a.data))
	return len(a.data)
}
