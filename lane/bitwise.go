package lane

import "unsafe"

// Bitwise operations accept every lane type. Float lanes operate on their
// IEEE 754 bit pattern, which is how sign masks and abs masks are built.

// And performs element-wise bitwise AND.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	return binary("And", a, b, func(x, y T) T { return bitwise(x, y, func(p, q uint64) uint64 { return p & q }) })
}

// Or performs element-wise bitwise OR.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	return binary("Or", a, b, func(x, y T) T { return bitwise(x, y, func(p, q uint64) uint64 { return p | q }) })
}

// Xor performs element-wise bitwise XOR.
func Xor[T Lanes](a, b Vec[T]) Vec[T] {
	return binary("Xor", a, b, func(x, y T) T { return bitwise(x, y, func(p, q uint64) uint64 { return p ^ q }) })
}

// AndNot performs element-wise bitwise AND NOT (~a & b).
func AndNot[T Lanes](a, b Vec[T]) Vec[T] {
	return binary("AndNot", a, b, func(x, y T) T { return bitwise(x, y, func(p, q uint64) uint64 { return ^p & q }) })
}

// Not performs element-wise bitwise NOT (ones complement).
func Not[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return bitwise(x, x, func(p, _ uint64) uint64 { return ^p }) })
}

// bitwise applies op to the raw bits of a and b. Bits above the lane width
// are discarded.
func bitwise[T Lanes](a, b T, op func(p, q uint64) uint64) T {
	switch unsafe.Sizeof(a) {
	case 1:
		r := uint8(op(uint64(*(*uint8)(unsafe.Pointer(&a))), uint64(*(*uint8)(unsafe.Pointer(&b)))))
		return *(*T)(unsafe.Pointer(&r))
	case 2:
		r := uint16(op(uint64(*(*uint16)(unsafe.Pointer(&a))), uint64(*(*uint16)(unsafe.Pointer(&b)))))
		return *(*T)(unsafe.Pointer(&r))
	case 4:
		r := uint32(op(uint64(*(*uint32)(unsafe.Pointer(&a))), uint64(*(*uint32)(unsafe.Pointer(&b)))))
		return *(*T)(unsafe.Pointer(&r))
	default:
		r := op(*(*uint64)(unsafe.Pointer(&a)), *(*uint64)(unsafe.Pointer(&b)))
		return *(*T)(unsafe.Pointer(&r))
	}
}

// SignBit returns an n-lane vector with only the sign bit set in each lane.
// For floats, this is -0.0. For signed integers, this is the minimum value.
// For unsigned integers, this is the high bit set.
func SignBit[T Lanes](n int) Vec[T] {
	var x T
	high := uint64(1) << (bitSize[T]() - 1)
	x = bitwise(x, x, func(_, _ uint64) uint64 { return high })
	return Broadcast(n, x)
}

// ShiftLeft performs element-wise left shift by a constant number of bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x << uint(bits)
	}
	return Vec[T]{data: result}
}

// ShiftRight performs element-wise right shift by a constant number of bits.
// For signed integers, this is arithmetic shift (sign-extended).
// For unsigned integers, this is logical shift (zero-filled).
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x >> uint(bits)
	}
	return Vec[T]{data: result}
}

// ShiftLeftVar shifts each lane of v left by the matching lane of counts.
// Negative counts are treated as shifting every bit out.
func ShiftLeftVar[T Integers](v, counts Vec[T]) Vec[T] {
	n := sameLanes("ShiftLeftVar", v, counts)
	result := make([]T, n)
	for i := range n {
		result[i] = v.data[i] << shiftCount(counts.data[i])
	}
	return Vec[T]{data: result}
}

// ShiftRightVar shifts each lane of v right by the matching lane of counts.
// Signed lanes shift arithmetically.
func ShiftRightVar[T Integers](v, counts Vec[T]) Vec[T] {
	n := sameLanes("ShiftRightVar", v, counts)
	result := make([]T, n)
	for i := range n {
		result[i] = v.data[i] >> shiftCount(counts.data[i])
	}
	return Vec[T]{data: result}
}

func shiftCount[T Integers](c T) uint {
	if c < 0 {
		return 64
	}
	return uint(c)
}
