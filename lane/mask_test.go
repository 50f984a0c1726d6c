package lane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskQueries(t *testing.T) {
	m := NewMask[float32](true, false, true, false)
	assert.Equal(t, 4, m.NumLanes())
	assert.False(t, m.AllTrue())
	assert.True(t, m.AnyTrue())
	assert.False(t, m.AllFalse())
	assert.Equal(t, 2, m.CountTrue())
	assert.True(t, m.GetBit(2))
	assert.Panics(t, func() { m.GetBit(4) })
	assert.Equal(t, 0, FindFirstTrue(m))
	assert.Equal(t, 2, FindLastTrue(m))

	none := NewMask[float32](false, false)
	assert.True(t, none.AllFalse())
	assert.Equal(t, -1, FindFirstTrue(none))
	assert.Equal(t, -1, FindLastTrue(none))
}

func TestFirstN(t *testing.T) {
	assert.Equal(t, []bool{true, true, false, false}, FirstN[int32](4, 2).Bools())
	assert.Equal(t, []bool{false, false}, FirstN[int32](2, 0).Bools())
	assert.Equal(t, []bool{true, true}, FirstN[int32](2, 9).Bools())
	assert.Equal(t, []bool{false}, FirstN[int32](1, -1).Bools())
}

func TestMaskBits(t *testing.T) {
	m := MaskFromBits[uint8](8, 0b1010_0101)
	assert.Equal(t, []bool{true, false, true, false, false, true, false, true}, m.Bools())
	assert.Equal(t, uint64(0b1010_0101), BitsFromMask(m))

	// Bits past the lane count are ignored.
	assert.Equal(t, uint64(0b11), BitsFromMask(MaskFromBits[uint8](2, 0xFF)))

	all := MaskFromBits[int8](64, ^uint64(0))
	assert.True(t, all.AllTrue())
	assert.Equal(t, ^uint64(0), BitsFromMask(all))

	assert.PanicsWithError(t, "lane: MaskFromBits: want 64 lanes, got 65", func() {
		MaskFromBits[int8](65, 1)
	})
}

func TestMaskLogic(t *testing.T) {
	a := NewMask[int64](true, true, false, false)
	b := NewMask[int64](true, false, true, false)
	assert.Equal(t, []bool{true, false, false, false}, MaskAnd(a, b).Bools())
	assert.Equal(t, []bool{true, true, true, false}, MaskOr(a, b).Bools())
	assert.Equal(t, []bool{false, true, true, false}, MaskXor(a, b).Bools())
	assert.Equal(t, []bool{false, false, true, false}, MaskAndNot(a, b).Bools())
	assert.Equal(t, []bool{false, false, true, true}, MaskNot(a).Bools())

	assert.PanicsWithError(t, "lane: MaskAnd: want 4 lanes, got 2", func() {
		MaskAnd(a, NewMask[int64](true, true))
	})
}

func TestIfThenElse(t *testing.T) {
	a := New[float64](1, 2, 3, 4)
	b := New[float64](-1, -2, -3, -4)
	m := NewMask[float64](true, false, false, true)

	assert.Equal(t, []float64{1, -2, -3, 4}, IfThenElse(m, a, b).Slice())
	assert.Equal(t, []float64{1, 0, 0, 4}, IfThenElseZero(m, a).Slice())
	assert.Equal(t, []float64{0, -2, -3, 0}, IfThenZeroElse(m, b).Slice())
	assert.Equal(t, []float64{0, 0, 3, 0}, ZeroIfNegative(New[float64](-1, 0, 3, -0.5)).Slice())

	// Select the larger of two vectors through a comparison mask.
	x := New[int32](5, -2, 7, 0)
	y := New[int32](3, 4, 7, -1)
	assert.Equal(t, Max(x, y).Slice(), IfThenElse(GreaterThan(x, y), x, y).Slice())

	assert.PanicsWithError(t, "lane: IfThenElse: want 4 lanes, got 3", func() {
		IfThenElse(NewMask[float64](true, true, true), a, b)
	})
}

func TestMaskedArithmetic(t *testing.T) {
	a := New[int32](10, 20, 30, 40)
	b := New[int32](1, 0, 3, 0)
	m := NotEqual(b, Zero[int32](4))

	assert.Equal(t, []int32{11, 20, 33, 40}, MaskedAdd(m, a, b).Slice())
	assert.Equal(t, []int32{9, 20, 27, 40}, MaskedSub(m, a, b).Slice())
	assert.Equal(t, []int32{10, 20, 90, 40}, MaskedMul(m, a, b).Slice())
	// Inactive lanes divide by zero without panicking.
	assert.Equal(t, []int32{10, 20, 10, 40}, MaskedDiv(m, a, b).Slice())
}

func TestMaskLoadStore(t *testing.T) {
	m := FirstN[uint16](4, 3)
	src := []uint16{7, 8, 9}
	assert.Equal(t, []uint16{7, 8, 9, 0}, MaskLoad(m, src).Slice())
	assert.PanicsWithError(t, "lane: index 2 out of range [0, 2)", func() {
		MaskLoad(m, src[:2])
	})

	dst := []uint16{1, 1, 1, 1}
	MaskStore(MaskNot(m), Broadcast[uint16](4, 5), dst)
	assert.Equal(t, []uint16{1, 1, 1, 5}, dst)

	short := []uint16{0, 0, 0}
	MaskStore(m, Broadcast[uint16](4, 2), short)
	assert.Equal(t, []uint16{2, 2, 2}, short)
}

func TestCompressExpand(t *testing.T) {
	v := New[float32](1, 2, 3, 4)
	m := NewMask[float32](true, false, true, false)

	c, count := Compress(v, m)
	require.Equal(t, 2, count)
	assert.Equal(t, []float32{1, 3, 0, 0}, c.Slice())
	assert.Equal(t, []float32{1, 0, 3, 0}, Expand(c, m).Slice())

	dst := make([]float32, 4)
	assert.Equal(t, 2, CompressStore(v, m, dst))
	assert.Equal(t, []float32{1, 3, 0, 0}, dst)

	// Keep only positive lanes.
	w := New[float32](-1, 5, 0, 2, -3, 8)
	kept := make([]float32, w.NumLanes())
	n := CompressStore(w, GreaterThan(w, Zero[float32](6)), kept)
	assert.Equal(t, []float32{5, 2, 8}, kept[:n])
}
