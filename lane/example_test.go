package lane_test

import (
	"fmt"

	"github.com/sforzinda/scl/lane"
)

func Example() {
	a := lane.New[float32](1, 2, 3, 4)
	b := lane.Broadcast[float32](4, 0.5)

	c := lane.MulAdd(a, b, a)
	m := lane.GreaterThan(c, b)
	d := lane.IfThenElse(m, c, b)
	fmt.Println(d, lane.ReduceSum(d))
	// Output: {1.5, 3, 4.5, 6} 15
}

func ExampleShuffle() {
	a := lane.New[int32](0, 1, 2, 3)
	b := lane.New[int32](10, 11, 12, 13)
	fmt.Println(lane.Shuffle(a, b, 0, 4, 1, 5))
	fmt.Println(lane.Shuffle(a, b, 3, lane.Zeroing, 7, 7))
	// Output:
	// {0, 10, 1, 11}
	// {3, 0, 13, 13}
}

func ExampleSwizzle() {
	color := lane.F32x4([4]float32{0.25, 0.5, 0.75, 1})
	fmt.Println(lane.Swizzle(color, "bgra"))
	fmt.Println(lane.Swizzle(color, "rgb"))
	// Output:
	// {0.75, 0.5, 0.25, 1}
	// {0.25, 0.5, 0.75}
}

func ExampleNewPattern() {
	p, err := lane.NewPattern(4, 1, 0, 3, 2)
	if err != nil {
		panic(err)
	}
	v := lane.Iota[uint8](4)
	fmt.Println(p, lane.PermuteWith(v, p))

	_, err = lane.NewPattern(4, 0, 1, 2, 9)
	fmt.Println(err)
	// Output:
	// [1 0 3 2] {1, 0, 3, 2}
	// lane: pattern index 3 is 9, want [0, 4): invalid lane pattern
}

func ExampleCompress() {
	v := lane.New[int16](-2, 5, 0, 7)
	positive := lane.GreaterThan(v, lane.Zero[int16](4))
	packed, n := lane.Compress(v, positive)
	fmt.Println(packed, n)
	// Output: {5, 7, 0, 0} 2
}

func ExampleVec_Lane() {
	v := lane.New[float64](1.5, 2.5)
	fmt.Println(v.Lane(1))

	_, err := v.TryLane(2)
	fmt.Println(err)
	// Output:
	// 2.5
	// lane: index 2 out of range [0, 2)
}

func ExampleParse() {
	v, err := lane.Parse[int32]("{1, 2, 0x10}")
	if err != nil {
		panic(err)
	}
	fmt.Println(v.NumLanes(), v)
	// Output: 3 {1, 2, 16}
}
