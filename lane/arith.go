package lane

import "math"

// Integer arithmetic wraps around (two's complement) like Go's operators.
// Integer division or modulo by zero panics like Go's operators.

func binary[T Lanes](op string, a, b Vec[T], f func(x, y T) T) Vec[T] {
	n := sameLanes(op, a, b)
	result := make([]T, n)
	for i := range n {
		result[i] = f(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func unary[T Lanes](v Vec[T], f func(x T) T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = f(x)
	}
	return Vec[T]{data: result}
}

func scalar[T Lanes](v Vec[T], s T, f func(x, y T) T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = f(x, s)
	}
	return Vec[T]{data: result}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	sameLanes("Add", a, b)
	if r, ok := accelBinary(kernelAdd, a.data, b.data); ok {
		return Vec[T]{data: r}
	}
	return binary("Add", a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	sameLanes("Sub", a, b)
	if r, ok := accelBinary(kernelSub, a.data, b.data); ok {
		return Vec[T]{data: r}
	}
	return binary("Sub", a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	sameLanes("Mul", a, b)
	if r, ok := accelBinary(kernelMul, a.data, b.data); ok {
		return Vec[T]{data: r}
	}
	return binary("Mul", a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
// Integer lanes use truncated division.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	sameLanes("Div", a, b)
	if r, ok := accelBinary(kernelDiv, a.data, b.data); ok {
		return Vec[T]{data: r}
	}
	return binary("Div", a, b, func(x, y T) T { return x / y })
}

// Mod computes the element-wise remainder of a / b.
// Integer lanes use Go's % operator; float lanes use math.Mod, so the
// result has the sign of a.
func Mod[T Lanes](a, b Vec[T]) Vec[T] {
	return binary("Mod", a, b, modHelper[T])
}

func modHelper[T Lanes](a, b T) T {
	switch {
	case isFloat[T]():
		return T(math.Mod(float64(a), float64(b)))
	case isSigned[T]():
		return T(int64(a) % int64(b))
	default:
		return T(uint64(a) % uint64(b))
	}
}

// AddScalar adds s to every lane.
func AddScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return scalar(v, s, func(x, y T) T { return x + y })
}

// SubScalar subtracts s from every lane.
func SubScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return scalar(v, s, func(x, y T) T { return x - y })
}

// MulScalar multiplies every lane by s.
func MulScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return scalar(v, s, func(x, y T) T { return x * y })
}

// DivScalar divides every lane by s.
func DivScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return scalar(v, s, func(x, y T) T { return x / y })
}

// ModScalar computes the remainder of every lane divided by s.
func ModScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return scalar(v, s, modHelper[T])
}

// Neg negates all lanes. Unsigned lanes wrap.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return -x })
}

// Abs computes absolute value. The most negative signed integer stays
// negative, as in two's complement.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, absHelper[T])
}

func absHelper[T Lanes](x T) T {
	if isFloat[T]() {
		return T(math.Abs(float64(x)))
	}
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns 1, 0 or -1 per lane according to the lane's sign.
// Unsigned lanes yield 1 or 0. NaN lanes yield 0.
func Sign[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T {
		var one T = 1
		switch {
		case x > 0:
			return one
		case x < 0:
			return -one
		default:
			return 0
		}
	})
}

// Min returns element-wise minimum. A lane resolves as b < a ? b : a, so
// when either side is NaN the lane of a is kept.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return binary("Min", a, b, minLane[T])
}

// Max returns element-wise maximum. A lane resolves as a < b ? b : a, so
// when either side is NaN the lane of a is kept.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return binary("Max", a, b, maxLane[T])
}

func minLane[T Lanes](x, y T) T {
	if y < x {
		return y
	}
	return x
}

func maxLane[T Lanes](x, y T) T {
	if x < y {
		return y
	}
	return x
}

// Clamp limits each lane of v to [lo, hi] lane-wise: Min(Max(v, lo), hi).
// NaN bounds leave the lane unchanged; a NaN lane stays NaN.
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	n := sameLanes("Clamp", v, lo)
	mustLanes("Clamp", len(hi.data), n)
	result := make([]T, n)
	for i, x := range v.data {
		result[i] = minLane(maxLane(x, lo.data[i]), hi.data[i])
	}
	return Vec[T]{data: result}
}

// MulAdd computes a*b + c per lane. Float lanes go through math.FMA.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	n := sameLanes("MulAdd", a, b)
	mustLanes("MulAdd", len(c.data), n)
	result := make([]T, n)
	fused := isFloat[T]()
	for i := range n {
		if fused {
			result[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
		} else {
			result[i] = a.data[i]*b.data[i] + c.data[i]
		}
	}
	return Vec[T]{data: result}
}
