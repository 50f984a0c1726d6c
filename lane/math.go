package lane

import (
	"math"

	"github.com/chewxy/math32"
)

// Elementwise math for float lanes. float32 lanes use math32 where it has
// a native routine; everything else is computed in float64 and converted
// back. Domain errors follow the underlying routines (NaN, ±Inf) and are
// not reported separately.

func mapFloat[T Floats](v Vec[T], f32 func(float32) float32, f64 func(float64) float64) Vec[T] {
	result := make([]T, len(v.data))
	if src, ok := any(v.data).([]float32); ok && f32 != nil {
		dst := any(result).([]float32)
		for i, x := range src {
			dst[i] = f32(x)
		}
		return Vec[T]{data: result}
	}
	for i, x := range v.data {
		result[i] = T(f64(float64(x)))
	}
	return Vec[T]{data: result}
}

func zipFloat[T Floats](op string, a, b Vec[T], f32 func(x, y float32) float32, f64 func(x, y float64) float64) Vec[T] {
	n := sameLanes(op, a, b)
	result := make([]T, n)
	if x, ok := any(a.data).([]float32); ok && f32 != nil {
		y := any(b.data).([]float32)
		dst := any(result).([]float32)
		for i := range n {
			dst[i] = f32(x[i], y[i])
		}
		return Vec[T]{data: result}
	}
	for i := range n {
		result[i] = T(f64(float64(a.data[i]), float64(b.data[i])))
	}
	return Vec[T]{data: result}
}

// Sqrt computes square root.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Sqrt, math.Sqrt)
}

// RSqrt computes reciprocal square root (1/sqrt(x)).
func RSqrt[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v,
		func(x float32) float32 { return 1 / math32.Sqrt(x) },
		func(x float64) float64 { return 1 / math.Sqrt(x) })
}

// Cbrt computes cube root.
func Cbrt[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.Cbrt)
}

// Reciprocal computes 1/x.
func Reciprocal[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return 1 / x })
}

// Exp computes e**x.
func Exp[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Exp, math.Exp)
}

// Exp2 computes 2**x.
func Exp2[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Exp2, math.Exp2)
}

// Log computes the natural logarithm.
func Log[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Log, math.Log)
}

// Log2 computes the base-2 logarithm.
func Log2[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Log2, math.Log2)
}

// Log10 computes the base-10 logarithm.
func Log10[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Log10, math.Log10)
}

// Sin computes sine (radians).
func Sin[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Sin, math.Sin)
}

// Cos computes cosine (radians).
func Cos[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Cos, math.Cos)
}

// Tan computes tangent (radians).
func Tan[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Tan, math.Tan)
}

// Asin computes arcsine.
func Asin[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.Asin)
}

// Acos computes arccosine.
func Acos[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.Acos)
}

// Atan computes arctangent.
func Atan[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Atan, math.Atan)
}

// Atan2 computes the arctangent of y/x per lane, using the signs of both
// to pick the quadrant.
func Atan2[T Floats](y, x Vec[T]) Vec[T] {
	return zipFloat("Atan2", y, x, math32.Atan2, math.Atan2)
}

// Sinh computes hyperbolic sine.
func Sinh[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.Sinh)
}

// Cosh computes hyperbolic cosine.
func Cosh[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.Cosh)
}

// Tanh computes hyperbolic tangent.
func Tanh[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.Tanh)
}

// Asinh computes inverse hyperbolic sine.
func Asinh[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.Asinh)
}

// Acosh computes inverse hyperbolic cosine.
func Acosh[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.Acosh)
}

// Atanh computes inverse hyperbolic tangent.
func Atanh[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.Atanh)
}

// Erf computes the error function.
func Erf[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.Erf)
}

// Sigmoid computes 1/(1+e**-x).
func Sigmoid[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v,
		func(x float32) float32 { return 1 / (1 + math32.Exp(-x)) },
		func(x float64) float64 { return 1 / (1 + math.Exp(-x)) })
}

// Pow computes base**exp element-wise.
func Pow[T Floats](base, exp Vec[T]) Vec[T] {
	return zipFloat("Pow", base, exp, math32.Pow, math.Pow)
}

// PowScalar raises every lane to the power e.
func PowScalar[T Floats](v Vec[T], e T) Vec[T] {
	return mapFloat(v,
		func(x float32) float32 { return math32.Pow(x, float32(e)) },
		func(x float64) float64 { return math.Pow(x, float64(e)) })
}

// Hypot computes sqrt(a*a + b*b) per lane, avoiding overflow.
func Hypot[T Floats](a, b Vec[T]) Vec[T] {
	return zipFloat("Hypot", a, b, math32.Hypot, math.Hypot)
}

// Remainder computes the IEEE 754 remainder of a/b per lane.
func Remainder[T Floats](a, b Vec[T]) Vec[T] {
	return zipFloat("Remainder", a, b, math32.Remainder, math.Remainder)
}

// Floor rounds down to the nearest integer.
func Floor[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Floor, math.Floor)
}

// Ceil rounds up to the nearest integer.
func Ceil[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Ceil, math.Ceil)
}

// Trunc rounds toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Trunc, math.Trunc)
}

// Round rounds to the nearest integer, halfway cases away from zero.
func Round[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.Round)
}

// RoundToEven rounds to the nearest integer, halfway cases to even.
// This matches nearbyint under the default IEEE 754 rounding mode.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, nil, math.RoundToEven)
}

// Lerp interpolates linearly between a and b by t per lane: a + (b-a)*t.
func Lerp[T Floats](a, b, t Vec[T]) Vec[T] {
	return MulAdd(Sub(b, a), t, a)
}
