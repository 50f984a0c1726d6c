package lane

// Reductions fold all lanes into one value, in lane order. A vector
// with no lanes reduces to the zero value.

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	if r, ok := accelReduce(kernelSum, v.data); ok {
		return r
	}
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceProduct multiplies all lanes.
func ReduceProduct[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		return 0
	}
	if r, ok := accelReduce(kernelProd, v.data); ok {
		return r
	}
	prod := v.data[0]
	for _, x := range v.data[1:] {
		prod *= x
	}
	return prod
}

// ReduceMin returns the minimum value across all lanes. It folds from
// lane 0 and only replaces the running value with a lane that compares
// smaller, so a NaN in lane 0 is the result and later NaN lanes are skipped.
func ReduceMin[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		return 0
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes, folding the same
// way as ReduceMin.
func ReduceMax[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		return 0
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// ReduceAverage returns ReduceSum(v) divided by the lane count, computed
// in T's arithmetic (integer lanes truncate).
func ReduceAverage[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		return 0
	}
	return ReduceSum(v) / T(len(v.data))
}

// Dot returns the sum of the lane-wise products of a and b.
func Dot[T Lanes](a, b Vec[T]) T {
	return ReduceSum(Mul(a, b))
}
