package lane

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern is a validated list of lane indices for Permute or Shuffle.
// Validating once up front lets hot loops rearrange lanes without
// re-checking indices, and reports bad indices as errors rather than
// panics.
type Pattern struct {
	lanes   int // lane count of each input vector
	sources int // 1 for Permute patterns, 2 for Shuffle patterns
	idx     []int
}

// NewPattern validates a Permute pattern for n-lane vectors.
// Every index must be Zeroing or in [0, n), and len(idx) must equal n.
func NewPattern(n int, idx ...int) (Pattern, error) {
	return newPattern(n, 1, idx)
}

// NewShufflePattern validates a Shuffle pattern for pairs of n-lane
// vectors. Every index must be Zeroing or in [0, 2n).
func NewShufflePattern(n int, idx ...int) (Pattern, error) {
	return newPattern(n, 2, idx)
}

// SwizzlePattern builds a Permute pattern from lane names as accepted by
// Swizzle. Unlike Swizzle the result must keep the lane count, so len(names)
// must equal n.
func SwizzlePattern(n int, names string) (Pattern, error) {
	idx, err := swizzleIndices(names)
	if err != nil {
		return Pattern{}, err
	}
	return newPattern(n, 1, idx)
}

// IdentityPattern returns the pattern that leaves n-lane vectors unchanged.
func IdentityPattern(n int) Pattern {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return Pattern{lanes: n, sources: 1, idx: idx}
}

func newPattern(n, sources int, idx []int) (Pattern, error) {
	if n < 1 {
		return Pattern{}, fmt.Errorf("lane: pattern for %d lanes: %w", n, ErrPattern)
	}
	if len(idx) != n {
		return Pattern{}, fmt.Errorf("lane: pattern has %d indices for %d lanes: %w", len(idx), n, ErrPattern)
	}
	for i, j := range idx {
		if j != Zeroing && (j < 0 || j >= n*sources) {
			return Pattern{}, fmt.Errorf("lane: pattern index %d is %d, want [0, %d): %w", i, j, n*sources, ErrPattern)
		}
	}
	p := Pattern{lanes: n, sources: sources, idx: make([]int, n)}
	copy(p.idx, idx)
	return p, nil
}

// Len returns the number of lanes the pattern produces.
func (p Pattern) Len() int {
	return len(p.idx)
}

// Indices returns a copy of the pattern's indices.
func (p Pattern) Indices() []int {
	out := make([]int, len(p.idx))
	copy(out, p.idx)
	return out
}

// IsIdentity reports whether the pattern maps every lane to itself.
func (p Pattern) IsIdentity() bool {
	for i, j := range p.idx {
		if i != j {
			return false
		}
	}
	return true
}

// String renders the pattern as its index list, e.g. "[3 2 1 0]".
func (p Pattern) String() string {
	parts := make([]string, len(p.idx))
	for i, j := range p.idx {
		parts[i] = strconv.Itoa(j)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// PermuteWith applies a Permute pattern to v.
// It panics with a *LaneCountError if v's lane count differs from the
// pattern's, or if p was built for Shuffle.
func PermuteWith[T Lanes](v Vec[T], p Pattern) Vec[T] {
	mustLanes("PermuteWith", len(v.data), p.lanes)
	if p.sources != 1 {
		panic(&LaneCountError{Op: "PermuteWith", Want: 1, Got: p.sources})
	}
	if p.IsIdentity() {
		return New(v.data...)
	}
	return permute(v.data, nil, p.idx)
}

// ShuffleWith applies a pattern to the pair a, b. Permute patterns are
// accepted and only read from a.
func ShuffleWith[T Lanes](a, b Vec[T], p Pattern) Vec[T] {
	n := sameLanes("ShuffleWith", a, b)
	mustLanes("ShuffleWith", n, p.lanes)
	return permute(a.data, b.data, p.idx)
}
