package lane

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedWidths(t *testing.T) {
	v := F32x4([4]float32{1, 2, 3, 4})
	assert.Equal(t, 4, v.NumLanes())
	assert.Equal(t, [4]float32{2, 4, 6, 8}, ArrayF32x4(Add(v, v)))

	assert.Equal(t, [2]float64{0.5, 0.5}, ArrayF64x2(SplatF64x2(0.5)))
	assert.Equal(t, 16, SplatU8x16(7).NumLanes())
	assert.Equal(t, int64(28), ReduceSum(I64x8([8]int64{0, 1, 2, 3, 4, 5, 6, 7})))

	// The array is copied in, so later writes do not reach the vector.
	arr := [8]int8{1, 1, 1, 1, 1, 1, 1, 1}
	w := I8x8(arr)
	arr[0] = 9
	assert.Equal(t, int8(1), w.Lane(0))

	assert.PanicsWithError(t, "lane: ArrayF32x4: want 4 lanes, got 8", func() {
		ArrayF32x4(Iota[float32](8))
	})
}

func TestFixedWidthsMatchGeneric(t *testing.T) {
	assert.Equal(t, Iota[uint32](4).Slice(), U32x4([4]uint32{0, 1, 2, 3}).Slice())
	assert.Equal(t, Broadcast[int16](32, -1).Slice(), SplatI16x32(-1).Slice())
	assert.Equal(t, Broadcast[float32](16, 2).Slice(), SplatF32x16(2).Slice())
}
