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

// Package lane provides fixed-size numeric vectors with elementwise
// arithmetic, comparison, bitwise and math operations, lane rearrangement
// and predicated selection through masks.
//
// A Vec holds N lanes of one arithmetic type. N is fixed when the vector is
// created and every binary operation requires both operands to have the same
// number of lanes. Vectors are values: operations never modify their inputs
// and return fresh vectors.
//
// Basic usage:
//
//	import "github.com/sforzinda/scl/lane"
//
//	a := lane.New[float32](1, 2, 3, 4)
//	b := lane.Broadcast[float32](4, 0.5)
//
//	c := lane.MulAdd(a, b, a)         // a*b + a
//	m := lane.GreaterThan(c, b)       // per-lane mask
//	d := lane.IfThenElse(m, c, b)     // predicated select
//	fmt.Println(d, lane.ReduceSum(d)) // {1.5, 3, 4.5, 6} 15
//
// Accessing a lane outside [0, N) panics with a *RangeError, and combining
// vectors of different lane counts panics with a *LaneCountError. Both unwrap
// to sentinel errors (ErrLaneRange, ErrLaneCount) for use with errors.Is.
package lane

//go:generate go run ../cmd/lanegen -o .

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a fixed-size vector of N lanes of type T.
//
// The zero Vec has no lanes and is only useful as a placeholder; use New,
// Broadcast, FromSlice or one of the fixed-width constructors instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Lane returns the value of lane i.
// It panics with a *RangeError if i is outside [0, NumLanes()).
func (v Vec[T]) Lane(i int) T {
	checkLane(i, len(v.data))
	return v.data[i]
}

// TryLane is like Lane but returns an error instead of panicking.
func (v Vec[T]) TryLane(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, &RangeError{Index: i, Lanes: len(v.data)}
	}
	return v.data[i], nil
}

// SetLane returns a copy of v with lane i replaced by x.
// It panics with a *RangeError if i is outside [0, NumLanes()).
func (v Vec[T]) SetLane(i int, x T) Vec[T] {
	checkLane(i, len(v.data))
	out := v.Slice()
	out[i] = x
	return Vec[T]{data: out}
}

// Slice returns a copy of the vector's lanes.
func (v Vec[T]) Slice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Data returns the underlying lanes without copying.
// The caller must not modify the returned slice: other vectors may share it.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst.
// This is the method form of the lane.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse, MaskLoad, MaskStore and the Masked*
// arithmetic to perform predicated operations.
//
// Masks are usually created by comparisons like Equal or LessThan, or by
// FirstN and MaskFromBits.
type Mask[T Lanes] struct {
	// bits[i] is true if lane i is active.
	bits []bool
}

// NewMask creates a mask from explicit lane flags.
func NewMask[T Lanes](bits ...bool) Mask[T] {
	out := make([]bool, len(bits))
	copy(out, bits)
	return Mask[T]{bits: out}
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// AllFalse returns true if no lane in the mask is active.
func (m Mask[T]) AllFalse() bool {
	return !m.AnyTrue()
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
// It panics with a *RangeError if i is outside [0, NumLanes()).
func (m Mask[T]) GetBit(i int) bool {
	checkLane(i, len(m.bits))
	return m.bits[i]
}

// Bools returns a copy of the lane flags.
func (m Mask[T]) Bools() []bool {
	out := make([]bool, len(m.bits))
	copy(out, m.bits)
	return out
}
