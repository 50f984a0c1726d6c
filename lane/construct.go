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

import "unsafe"

// New creates a vector whose lanes are a copy of lanes.
// The lane count is len(lanes); it panics with a *LaneCountError if no
// lanes are given.
func New[T Lanes](lanes ...T) Vec[T] {
	if len(lanes) == 0 {
		panic(&LaneCountError{Op: "New", Want: 1, Got: 0})
	}
	data := make([]T, len(lanes))
	copy(data, lanes)
	return Vec[T]{data: data}
}

// Broadcast creates an n-lane vector with every lane set to x.
func Broadcast[T Lanes](n int, x T) Vec[T] {
	data := make([]T, checkCount("Broadcast", n))
	for i := range data {
		data[i] = x
	}
	return Vec[T]{data: data}
}

// Zero creates an n-lane vector with all lanes set to zero.
func Zero[T Lanes](n int) Vec[T] {
	return Vec[T]{data: make([]T, checkCount("Zero", n))}
}

// Iota creates an n-lane vector with lanes set to [0, 1, 2, ...].
func Iota[T Lanes](n int) Vec[T] {
	data := make([]T, checkCount("Iota", n))
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// FromSlice creates an n-lane vector from the first n elements of src.
// It panics with a *RangeError if src holds fewer than n elements.
func FromSlice[T Lanes](src []T, n int) Vec[T] {
	checkCount("FromSlice", n)
	if len(src) < n {
		panic(&RangeError{Index: n - 1, Lanes: len(src)})
	}
	return New(src[:n]...)
}

// Load creates a vector of MaxLanes[T]() lanes from the start of src.
// If src is shorter, the vector has len(src) lanes.
func Load[T Lanes](src []T) Vec[T] {
	return New(src[:min(len(src), MaxLanes[T]())]...)
}

// Set creates a vector of MaxLanes[T]() lanes all set to x.
func Set[T Lanes](x T) Vec[T] {
	return Broadcast(MaxLanes[T](), x)
}

// Store writes a vector's lanes to dst, truncating to len(dst).
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Pointer returns a raw pointer to lane 0 of v's storage, or nil for a
// vector with no lanes. The pointer stays valid while v is reachable and
// must not be used to write.
func (v Vec[T]) Pointer() *T {
	return unsafe.SliceData(v.data)
}

// StorageBytes returns the register-sized storage v occupies.
func (v Vec[T]) StorageBytes() int {
	return StorageBytes[T](len(v.data))
}

func checkCount(op string, n int) int {
	if n < 1 {
		panic(&LaneCountError{Op: op, Want: 1, Got: n})
	}
	return n
}

// Helpers classifying T without reflection.

func isFloat[T Lanes]() bool {
	var one T = 1
	return one/2 != 0
}

func isSigned[T Lanes]() bool {
	var x T
	x--
	return x < 0
}

func bitSize[T Lanes]() int {
	var x T
	return int(unsafe.Sizeof(x)) * 8
}
