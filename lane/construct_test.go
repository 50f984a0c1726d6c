package lane

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	src := []int32{1, 2, 3, 4}
	v := New(src...)
	require.Equal(t, 4, v.NumLanes())
	assert.Equal(t, src, v.Slice())

	// The vector owns its storage.
	src[0] = 99
	assert.Equal(t, int32(1), v.Lane(0))
}

func TestNewNoLanes(t *testing.T) {
	assert.PanicsWithError(t, "lane: New: want 1 lanes, got 0", func() {
		New[float32]()
	})
}

func TestBroadcastZeroIota(t *testing.T) {
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, Broadcast(3, 2.5).Slice())
	assert.Equal(t, []uint16{0, 0, 0, 0, 0}, Zero[uint16](5).Slice())
	assert.Equal(t, []int8{0, 1, 2, 3, 4, 5, 6, 7}, Iota[int8](8).Slice())

	assert.Panics(t, func() { Broadcast(0, 1.0) })
	assert.Panics(t, func() { Zero[int32](-1) })
}

func TestFromSlice(t *testing.T) {
	v := FromSlice([]float32{1, 2, 3, 4, 5}, 3)
	assert.Equal(t, []float32{1, 2, 3}, v.Slice())

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "expected error panic, got %v", r)
		assert.True(t, errors.Is(err, ErrLaneRange))
	}()
	FromSlice([]float32{1, 2}, 3)
}

func TestLoadSetNativeWidth(t *testing.T) {
	n := MaxLanes[float32]()
	require.Positive(t, n)

	data := make([]float32, 2*n)
	for i := range data {
		data[i] = float32(i)
	}
	v := Load(data)
	assert.Equal(t, n, v.NumLanes())
	assert.Equal(t, data[:n], v.Slice())

	short := Load([]float32{7})
	assert.Equal(t, 1, short.NumLanes())

	s := Set[float32](42)
	assert.Equal(t, n, s.NumLanes())
	for i := range n {
		assert.Equal(t, float32(42), s.Lane(i))
	}
}

func TestLaneAccess(t *testing.T) {
	v := New[int64](10, 20, 30)
	assert.Equal(t, int64(20), v.Lane(1))

	w := v.SetLane(1, 99)
	assert.Equal(t, []int64{10, 99, 30}, w.Slice())
	assert.Equal(t, []int64{10, 20, 30}, v.Slice(), "SetLane must not modify the receiver")

	x, err := v.TryLane(2)
	require.NoError(t, err)
	assert.Equal(t, int64(30), x)

	_, err = v.TryLane(3)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 3, rangeErr.Index)
	assert.Equal(t, 3, rangeErr.Lanes)
	assert.ErrorIs(t, err, ErrLaneRange)

	assert.PanicsWithError(t, "lane: index -1 out of range [0, 3)", func() { v.Lane(-1) })
	assert.PanicsWithError(t, "lane: index 3 out of range [0, 3)", func() { v.SetLane(3, 0) })
}

func TestStoreAndViews(t *testing.T) {
	v := New[uint32](1, 2, 3, 4)

	dst := make([]uint32, 6)
	Store(v, dst)
	assert.Equal(t, []uint32{1, 2, 3, 4, 0, 0}, dst)

	short := make([]uint32, 2)
	v.Store(short)
	assert.Equal(t, []uint32{1, 2}, short)

	p := v.Pointer()
	require.NotNil(t, p)
	view := unsafe.Slice(p, v.NumLanes())
	assert.Equal(t, v.Data(), view)

	assert.Nil(t, Vec[uint32]{}.Pointer())
}

func TestArrayRoundTrip(t *testing.T) {
	arr := [4]float32{0.25, -1, 3.5, 1e6}
	v := New(arr[:]...)
	var back [4]float32
	copy(back[:], v.Slice())
	assert.Equal(t, arr, back)

	ints := [8]int16{-32768, -1, 0, 1, 2, 3, 4, 32767}
	assert.Equal(t, ints, ArrayI16x8(I16x8(ints)))
}

func TestStorageBytes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"f32x3", StorageBytes[float32](3), 16},
		{"f32x4", StorageBytes[float32](4), 16},
		{"f64x3", StorageBytes[float64](3), 32},
		{"u8x5", StorageBytes[uint8](5), 8},
		{"i16x1", StorageBytes[int16](1), 2},
		{"method", New[int32](1, 2, 3, 4, 5).StorageBytes(), 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Equal(t, uint32(0), nextPowerOfTwo(0))
	assert.Equal(t, uint32(1), nextPowerOfTwo(1))
	assert.Equal(t, uint32(64), nextPowerOfTwo(33))
}

func TestTypeClassification(t *testing.T) {
	assert.True(t, isFloat[float32]())
	assert.True(t, isFloat[float64]())
	assert.False(t, isFloat[int32]())
	assert.False(t, isFloat[uint8]())

	assert.True(t, isSigned[int8]())
	assert.False(t, isSigned[uint64]())

	assert.Equal(t, 8, bitSize[uint8]())
	assert.Equal(t, 64, bitSize[float64]())

	type celsius float32
	assert.True(t, isFloat[celsius]())
	assert.Equal(t, 32, bitSize[celsius]())
}
