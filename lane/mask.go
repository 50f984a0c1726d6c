package lane

// This file provides mask construction, mask logic and predicated
// operations. A mask must have the same lane count as the vectors it
// selects from.

func sameMaskLanes[T Lanes](op string, m Mask[T], v Vec[T]) int {
	mustLanes(op, len(m.bits), len(v.data))
	return len(v.data)
}

func maskBinary[T Lanes](op string, a, b Mask[T], f func(x, y bool) bool) Mask[T] {
	mustLanes(op, len(b.bits), len(a.bits))
	bits := make([]bool, len(a.bits))
	for i := range bits {
		bits[i] = f(a.bits[i], b.bits[i])
	}
	return Mask[T]{bits: bits}
}

// FirstN returns an n-lane mask with the first k lanes active.
func FirstN[T Lanes](n, k int) Mask[T] {
	bits := make([]bool, checkCount("FirstN", n))
	for i := 0; i < k && i < n; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskFromBits creates an n-lane mask from a bitmask integer.
// Bit i of bits corresponds to lane i; n must not exceed 64.
func MaskFromBits[T Lanes](n int, bits uint64) Mask[T] {
	checkCount("MaskFromBits", n)
	if n > 64 {
		panic(&LaneCountError{Op: "MaskFromBits", Want: 64, Got: n})
	}
	result := make([]bool, n)
	for i := range result {
		result[i] = bits&(1<<i) != 0
	}
	return Mask[T]{bits: result}
}

// BitsFromMask converts a mask to a bitmask integer.
// Lane i corresponds to bit i of the result; lanes past 63 are dropped.
func BitsFromMask[T Lanes](mask Mask[T]) uint64 {
	var result uint64
	for i, bit := range mask.bits {
		if bit && i < 64 {
			result |= 1 << i
		}
	}
	return result
}

// FindFirstTrue returns the index of the first active lane, or -1.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	for i, bit := range mask.bits {
		if bit {
			return i
		}
	}
	return -1
}

// FindLastTrue returns the index of the last active lane, or -1.
func FindLastTrue[T Lanes](mask Mask[T]) int {
	for i := len(mask.bits) - 1; i >= 0; i-- {
		if mask.bits[i] {
			return i
		}
	}
	return -1
}

// MaskAnd performs logical AND on two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return maskBinary("MaskAnd", a, b, func(x, y bool) bool { return x && y })
}

// MaskOr performs logical OR on two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	return maskBinary("MaskOr", a, b, func(x, y bool) bool { return x || y })
}

// MaskXor performs logical XOR on two masks.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	return maskBinary("MaskXor", a, b, func(x, y bool) bool { return x != y })
}

// MaskAndNot computes !a && b per lane.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	return maskBinary("MaskAndNot", a, b, func(x, y bool) bool { return !x && y })
}

// MaskNot inverts every lane of the mask.
func MaskNot[T Lanes](mask Mask[T]) Mask[T] {
	bits := make([]bool, len(mask.bits))
	for i, bit := range mask.bits {
		bits[i] = !bit
	}
	return Mask[T]{bits: bits}
}

// IfThenElse performs conditional selection: lane i is a's where the mask
// is active and b's otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := sameLanes("IfThenElse", a, b)
	sameMaskLanes("IfThenElse", mask, a)
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// IfThenElseZero returns a where the mask is active, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	result := make([]T, sameMaskLanes("IfThenElseZero", mask, a))
	for i, bit := range mask.bits {
		if bit {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}

// IfThenZeroElse returns zero where the mask is active, b otherwise.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	result := make([]T, sameMaskLanes("IfThenZeroElse", mask, b))
	for i, bit := range mask.bits {
		if !bit {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// ZeroIfNegative returns zero for negative lanes, the lane otherwise.
func ZeroIfNegative[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return max(x, 0) })
}

// masked applies op where the mask is active and keeps a's lane elsewhere.
func masked[T Lanes](op string, mask Mask[T], a, b Vec[T], f func(x, y T) T) Vec[T] {
	n := sameLanes(op, a, b)
	sameMaskLanes(op, mask, a)
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = f(a.data[i], b.data[i])
		} else {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskedAdd adds b to a in active lanes; inactive lanes keep a.
func MaskedAdd[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	return masked("MaskedAdd", mask, a, b, func(x, y T) T { return x + y })
}

// MaskedSub subtracts b from a in active lanes; inactive lanes keep a.
func MaskedSub[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	return masked("MaskedSub", mask, a, b, func(x, y T) T { return x - y })
}

// MaskedMul multiplies a by b in active lanes; inactive lanes keep a.
func MaskedMul[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	return masked("MaskedMul", mask, a, b, func(x, y T) T { return x * y })
}

// MaskedDiv divides a by b in active lanes; inactive lanes keep a, so a
// zero divisor in an inactive lane is harmless.
func MaskedDiv[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	return masked("MaskedDiv", mask, a, b, func(x, y T) T { return x / y })
}

// MaskLoad loads src[i] into lanes where the mask is active and zero
// elsewhere. Inactive lanes never read src, so src may be shorter than the
// mask as long as it covers every active lane.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	result := make([]T, len(mask.bits))
	for i, bit := range mask.bits {
		if bit {
			if i >= len(src) {
				panic(&RangeError{Index: i, Lanes: len(src)})
			}
			result[i] = src[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskStore writes v's lanes to dst only where the mask is active.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	sameMaskLanes("MaskStore", mask, v)
	for i, bit := range mask.bits {
		if bit {
			if i >= len(dst) {
				panic(&RangeError{Index: i, Lanes: len(dst)})
			}
			dst[i] = v.data[i]
		}
	}
}

// Compress packs lanes where the mask is active to the front.
// It returns the packed vector (zero-filled past count) and the count.
// For example: v=[1,2,3,4], mask=[T,F,T,F] -> result=[1,3,0,0], count=2
func Compress[T Lanes](v Vec[T], mask Mask[T]) (Vec[T], int) {
	result := make([]T, sameMaskLanes("Compress", mask, v))
	count := 0
	for i, bit := range mask.bits {
		if bit {
			result[count] = v.data[i]
			count++
		}
	}
	return Vec[T]{data: result}, count
}

// Expand unpacks lanes of v into positions where the mask is active,
// in order. Inactive positions are zero.
// For example: v=[1,2,0,0], mask=[T,F,T,F] -> result=[1,0,2,0]
func Expand[T Lanes](v Vec[T], mask Mask[T]) Vec[T] {
	result := make([]T, sameMaskLanes("Expand", mask, v))
	src := 0
	for i, bit := range mask.bits {
		if bit {
			result[i] = v.data[src]
			src++
		}
	}
	return Vec[T]{data: result}
}

// CompressStore compresses v and writes the active lanes to dst.
// It returns the number of lanes written.
func CompressStore[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	compressed, count := Compress(v, mask)
	return copy(dst, compressed.data[:count])
}
