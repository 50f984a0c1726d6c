// Copyright 2026 scl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lane

import (
	"fmt"
	"strings"
)

// This file provides lane rearrangement. Index-driven operations take the
// indices at call time; use a Pattern to validate indices once and reuse
// them.

// Zeroing is the index that produces a zero lane in Permute and Shuffle.
const Zeroing = -1

// Permute returns a vector whose lane i is v's lane idx[i].
// len(idx) must equal v's lane count. An index of Zeroing yields a zero
// lane; any other index outside [0, N) panics with a *RangeError.
func Permute[T Lanes](v Vec[T], idx ...int) Vec[T] {
	mustLanes("Permute", len(idx), len(v.data))
	return permute(v.data, nil, idx)
}

// Shuffle selects lanes from the concatenation of a and b: indices in
// [0, N) pick from a and indices in [N, 2N) pick from b. len(idx) must
// equal N. Zeroing yields a zero lane.
func Shuffle[T Lanes](a, b Vec[T], idx ...int) Vec[T] {
	n := sameLanes("Shuffle", a, b)
	mustLanes("Shuffle", len(idx), n)
	return permute(a.data, b.data, idx)
}

func permute[T Lanes](a, b []T, idx []int) Vec[T] {
	n := len(a)
	result := make([]T, len(idx))
	for i, j := range idx {
		switch {
		case j == Zeroing:
		case j >= 0 && j < n:
			result[i] = a[j]
		case j >= n && j < n+len(b):
			result[i] = b[j-n]
		default:
			panic(&RangeError{Index: j, Lanes: n + len(b)})
		}
	}
	return Vec[T]{data: result}
}

// Blend picks lane i from b where sel[i] is true and from a otherwise.
func Blend[T Lanes](a, b Vec[T], sel ...bool) Vec[T] {
	n := sameLanes("Blend", a, b)
	mustLanes("Blend", len(sel), n)
	return IfThenElse(Mask[T]{bits: sel}, b, a)
}

// Split returns the lower and upper halves of v.
// It panics with a *LaneCountError if v has an odd number of lanes.
func Split[T Lanes](v Vec[T]) (lo, hi Vec[T]) {
	n := len(v.data)
	if n == 0 || n%2 != 0 {
		panic(&LaneCountError{Op: "Split", Want: max(n+n%2, 2), Got: n})
	}
	half := n / 2
	return New(v.data[:half]...), New(v.data[half:]...)
}

// Concat returns a vector holding the lanes of lo followed by the lanes of hi.
// The inputs may have different lane counts.
func Concat[T Lanes](lo, hi Vec[T]) Vec[T] {
	result := make([]T, 0, len(lo.data)+len(hi.data))
	result = append(result, lo.data...)
	result = append(result, hi.data...)
	return Vec[T]{data: result}
}

// Merge is Concat: it joins lo and hi into one vector, the inverse of Split.
func Merge[T Lanes](lo, hi Vec[T]) Vec[T] {
	return Concat(lo, hi)
}

// Reverse reverses the order of lanes in the vector.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	for i := range n {
		result[i] = v.data[n-1-i]
	}
	return Vec[T]{data: result}
}

// Reverse2 reverses pairs of lanes.
// [0,1,2,3,4,5,6,7] -> [1,0,3,2,5,4,7,6]
func Reverse2[T Lanes](v Vec[T]) Vec[T] {
	return reverseGroups(v, 2)
}

// Reverse4 reverses groups of 4 lanes.
// [0,1,2,3,4,5,6,7] -> [3,2,1,0,7,6,5,4]
func Reverse4[T Lanes](v Vec[T]) Vec[T] {
	return reverseGroups(v, 4)
}

// reverseGroups reverses each run of size lanes. A partial group at the
// end is reversed within itself.
func reverseGroups[T Lanes](v Vec[T], size int) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	for i := 0; i < n; i += size {
		end := min(i+size, n)
		for j := i; j < end; j++ {
			result[j] = v.data[i+end-1-j]
		}
	}
	return Vec[T]{data: result}
}

// BroadcastLane copies lane i of v to every lane.
// It panics with a *RangeError if i is out of range.
func BroadcastLane[T Lanes](v Vec[T], i int) Vec[T] {
	return Broadcast(len(v.data), v.Lane(i))
}

// InterleaveLower interleaves the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	n := sameLanes("InterleaveLower", a, b)
	half := n / 2
	result := make([]T, n)
	for i := range half {
		result[2*i] = a.data[i]
		result[2*i+1] = b.data[i]
	}
	return Vec[T]{data: result}
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	n := sameLanes("InterleaveUpper", a, b)
	half := n / 2
	result := make([]T, n)
	for i := range half {
		result[2*i] = a.data[half+i]
		result[2*i+1] = b.data[half+i]
	}
	return Vec[T]{data: result}
}

// OddEven takes odd lanes from a and even lanes from b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [b0,a1,b2,a3]
func OddEven[T Lanes](a, b Vec[T]) Vec[T] {
	n := sameLanes("OddEven", a, b)
	result := make([]T, n)
	for i := range n {
		if i%2 == 0 {
			result[i] = b.data[i]
		} else {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}

// DupEven duplicates even lanes into the following odd lane.
// [0,1,2,3] -> [0,0,2,2]
func DupEven[T Lanes](v Vec[T]) Vec[T] {
	result := v.Slice()
	for i := 1; i < len(result); i += 2 {
		result[i] = v.data[i-1]
	}
	return Vec[T]{data: result}
}

// DupOdd duplicates odd lanes into the preceding even lane.
// [0,1,2,3] -> [1,1,3,3]
func DupOdd[T Lanes](v Vec[T]) Vec[T] {
	result := v.Slice()
	for i := 1; i < len(result); i += 2 {
		result[i-1] = v.data[i]
	}
	return Vec[T]{data: result}
}

// SlideUpLanes moves lanes up by offset, filling the bottom with zeros.
// [0,1,2,3] offset 1 -> [0,0,1,2]
func SlideUpLanes[T Lanes](v Vec[T], offset int) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	if offset >= 0 && offset < n {
		copy(result[offset:], v.data[:n-offset])
	}
	return Vec[T]{data: result}
}

// SlideDownLanes moves lanes down by offset, filling the top with zeros.
// [0,1,2,3] offset 1 -> [1,2,3,0]
func SlideDownLanes[T Lanes](v Vec[T], offset int) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	if offset >= 0 && offset < n {
		copy(result, v.data[offset:])
	}
	return Vec[T]{data: result}
}

// Rotate rotates lanes toward lane 0 by k: result lane i is v's lane
// (i+k) mod N. Negative k rotates the other way.
func Rotate[T Lanes](v Vec[T], k int) Vec[T] {
	n := len(v.data)
	if n == 0 {
		return v
	}
	k = ((k % n) + n) % n
	result := make([]T, n)
	copy(result, v.data[k:])
	copy(result[n-k:], v.data[:k])
	return Vec[T]{data: result}
}

// Swizzle selects lanes by name, as in shading languages: "xyzw", "rgba"
// or "stpq" name lanes 0..3, and the result has one lane per letter, so
// Swizzle(v, "zyx") reverses a 3-lane position and Swizzle(c, "rgb") drops
// alpha. Letters may repeat but must come from one naming set.
// It panics with an error wrapping ErrPattern for unknown names and with a
// *RangeError for lanes v does not have.
func Swizzle[T Lanes](v Vec[T], names string) Vec[T] {
	idx, err := swizzleIndices(names)
	if err != nil {
		panic(err)
	}
	return permute(v.data, nil, idx)
}

var swizzleSets = [...]string{"xyzw", "rgba", "stpq"}

func swizzleIndices(names string) ([]int, error) {
	if names == "" || len(names) > 64 {
		return nil, fmt.Errorf("lane: swizzle %q: %w", names, ErrPattern)
	}
	for _, set := range swizzleSets {
		idx := make([]int, 0, len(names))
		for _, r := range names {
			j := strings.IndexRune(set, r)
			if j < 0 {
				break
			}
			idx = append(idx, j)
		}
		if len(idx) == len(names) {
			return idx, nil
		}
	}
	return nil, fmt.Errorf("lane: swizzle %q: %w", names, ErrPattern)
}
