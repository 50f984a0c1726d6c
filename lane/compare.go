package lane

import "math"

func compare[T Lanes](op string, a, b Vec[T], f func(x, y T) bool) Mask[T] {
	n := sameLanes(op, a, b)
	bits := make([]bool, n)
	for i := range n {
		bits[i] = f(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare("Equal", a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare("NotEqual", a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare("LessThan", a, b, func(x, y T) bool { return x < y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare("LessEqual", a, b, func(x, y T) bool { return x <= y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare("GreaterThan", a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare("GreaterEqual", a, b, func(x, y T) bool { return x >= y })
}

// Eq reports whether every lane of a equals the matching lane of b.
func Eq[T Lanes](a, b Vec[T]) bool {
	return Equal(a, b).AllTrue()
}

// Ne reports whether any lane of a differs from the matching lane of b.
func Ne[T Lanes](a, b Vec[T]) bool {
	return !Eq(a, b)
}

// AllLess reports whether every lane of a is less than the matching lane of b.
func AllLess[T Lanes](a, b Vec[T]) bool {
	return LessThan(a, b).AllTrue()
}

// AllLessEqual reports whether every lane of a is <= the matching lane of b.
func AllLessEqual[T Lanes](a, b Vec[T]) bool {
	return LessEqual(a, b).AllTrue()
}

// AllGreater reports whether every lane of a is greater than the matching
// lane of b.
func AllGreater[T Lanes](a, b Vec[T]) bool {
	return GreaterThan(a, b).AllTrue()
}

// AllGreaterEqual reports whether every lane of a is >= the matching lane of b.
func AllGreaterEqual[T Lanes](a, b Vec[T]) bool {
	return GreaterEqual(a, b).AllTrue()
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = math.IsNaN(float64(x))
	}
	return Mask[T]{bits: bits}
}

// IsInf returns a mask indicating which lanes contain infinity.
// The sign parameter: 0 = either, > 0 = +Inf only, < 0 = -Inf only.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = math.IsInf(float64(x), sign)
	}
	return Mask[T]{bits: bits}
}

// IsFinite returns a mask indicating which lanes are neither NaN nor
// infinite.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		f := float64(x)
		bits[i] = !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return Mask[T]{bits: bits}
}

// LogicalAnd returns 1 in lanes where both a and b are nonzero, else 0.
func LogicalAnd[T Lanes](a, b Vec[T]) Vec[T] {
	return binary("LogicalAnd", a, b, func(x, y T) T { return boolLane[T](x != 0 && y != 0) })
}

// LogicalOr returns 1 in lanes where a or b is nonzero, else 0.
func LogicalOr[T Lanes](a, b Vec[T]) Vec[T] {
	return binary("LogicalOr", a, b, func(x, y T) T { return boolLane[T](x != 0 || y != 0) })
}

// LogicalNot returns 1 in lanes that are zero, else 0.
func LogicalNot[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return boolLane[T](x == 0) })
}

// IsZero reports whether every lane of v is zero.
func IsZero[T Lanes](v Vec[T]) bool {
	for _, x := range v.data {
		if x != 0 {
			return false
		}
	}
	return true
}

func boolLane[T Lanes](b bool) T {
	if b {
		return 1
	}
	return 0
}
