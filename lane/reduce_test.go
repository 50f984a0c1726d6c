package lane

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReductions(t *testing.T) {
	v := New[float32](1, 2, 3, 4)
	assert.Equal(t, float32(10), ReduceSum(v))
	assert.Equal(t, float32(24), ReduceProduct(v))
	assert.Equal(t, float32(1), ReduceMin(v))
	assert.Equal(t, float32(4), ReduceMax(v))
	assert.Equal(t, float32(2.5), ReduceAverage(v))

	i := New[int16](-3, 7, 0, 2, 5)
	assert.Equal(t, int16(11), ReduceSum(i))
	assert.Equal(t, int16(0), ReduceProduct(i))
	assert.Equal(t, int16(-3), ReduceMin(i))
	assert.Equal(t, int16(7), ReduceMax(i))
	assert.Equal(t, int16(2), ReduceAverage(i), "integer average truncates")

	u := New[uint8](200, 100)
	assert.Equal(t, uint8(44), ReduceSum(u), "sum wraps in lane arithmetic")
}

func TestReduceEmpty(t *testing.T) {
	var v Vec[float64]
	assert.Zero(t, ReduceSum(v))
	assert.Zero(t, ReduceProduct(v))
	assert.Zero(t, ReduceMin(v))
	assert.Zero(t, ReduceMax(v))
	assert.Zero(t, ReduceAverage(v))
}

func TestReduceWide(t *testing.T) {
	const n = 64
	f32 := make([]float32, n)
	f64 := make([]float64, n)
	var sum float64
	for i := range n {
		x := float64(i%9) - 4
		f32[i] = float32(x)
		f64[i] = x
		sum += x
	}
	assert.Equal(t, float32(sum), ReduceSum(New(f32...)))
	assert.Equal(t, sum, ReduceSum(New(f64...)))
	assert.Equal(t, float32(-4), ReduceMin(New(f32...)))
	assert.Equal(t, 4.0, ReduceMax(New(f64...)))

	ones := Broadcast[float64](n, 1)
	ones = ones.SetLane(10, 2).SetLane(40, 2)
	assert.Equal(t, 4.0, ReduceProduct(ones))
}

func TestDot(t *testing.T) {
	a := New[int32](1, 2, 3)
	b := New[int32](4, -5, 6)
	assert.Equal(t, int32(4-10+18), Dot(a, b))

	assert.PanicsWithError(t, "lane: Mul: want 3 lanes, got 2", func() {
		Dot(a, New[int32](1, 2))
	})
}

func TestReduceNaN(t *testing.T) {
	nan := float32(math.NaN())
	for _, tc := range widthCases {
		t.Run(tc.name, func(t *testing.T) {
			withConfig(t, Config{NoSIMD: tc.noSIMD, AccelMinLanes: 16})
			n := tc.lanes
			first := Iota[float32](n).SetLane(0, nan)
			last := AddScalar(Iota[float32](n), 1).SetLane(n-1, nan)

			// The fold starts from lane 0, so only a leading NaN wins.
			assert.True(t, math.IsNaN(float64(ReduceMin(first))))
			assert.True(t, math.IsNaN(float64(ReduceMax(first))))
			assert.Equal(t, float32(1), ReduceMin(last))
			assert.Equal(t, float32(n-1), ReduceMax(last))

			assert.True(t, math.IsNaN(float64(ReduceSum(first))))
			assert.True(t, math.IsNaN(float64(ReduceSum(last))))
		})
	}
}
