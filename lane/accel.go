// Copyright 2026 scl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lane

import (
	"runtime"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// This file routes wide float32/float64 vectors to vek, which carries
// AVX2/NEON kernels for slice arithmetic. Every function reports ok=false
// when the fast path does not apply (scalar dispatch, narrow vectors or a
// lane type other than exactly float32/float64) and the caller falls back
// to the generic loop.
//
// Min and Max stay on the generic comparisons: the kernels resolve NaN and
// signed-zero lanes differently, which would make results depend on the
// lane count.

type binaryKernel int

const (
	kernelAdd binaryKernel = iota
	kernelSub
	kernelMul
	kernelDiv
)

type reduceKernel int

const (
	kernelSum reduceKernel = iota
	kernelProd
)

func accelBinary[T Lanes](k binaryKernel, a, b []T) ([]T, bool) {
	if !accelerated(len(a)) {
		return nil, false
	}
	switch x := any(a).(type) {
	case []float32:
		y := any(b).([]float32)
		var r []float32
		switch k {
		case kernelAdd:
			r = vek32.Add(x, y)
		case kernelSub:
			r = vek32.Sub(x, y)
		case kernelMul:
			r = vek32.Mul(x, y)
		case kernelDiv:
			r = vek32.Div(x, y)
		default:
			return nil, false
		}
		return any(r).([]T), true
	case []float64:
		y := any(b).([]float64)
		var r []float64
		switch k {
		case kernelAdd:
			r = vek.Add(x, y)
		case kernelSub:
			r = vek.Sub(x, y)
		case kernelMul:
			r = vek.Mul(x, y)
		case kernelDiv:
			r = vek.Div(x, y)
		default:
			return nil, false
		}
		return any(r).([]T), true
	}
	return nil, false
}

func accelReduce[T Lanes](k reduceKernel, a []T) (T, bool) {
	var zero T
	if !accelerated(len(a)) {
		return zero, false
	}
	switch x := any(a).(type) {
	case []float32:
		var r float32
		switch k {
		case kernelSum:
			r = vek32.Sum(x)
		case kernelProd:
			r = vek32.Prod(x)
		default:
			return zero, false
		}
		return any(r).(T), true
	case []float64:
		var r float64
		switch k {
		case kernelSum:
			r = vek.Sum(x)
		case kernelProd:
			r = vek.Prod(x)
		default:
			return zero, false
		}
		return any(r).(T), true
	}
	return zero, false
}

// AccelInfo describes the vectorized kernels available to wide float
// vectors.
type AccelInfo struct {
	Architecture string
	Features     []string
	Accelerated  bool
}

// Accel reports the capabilities of the float kernels on this machine.
func Accel() AccelInfo {
	info := vek32.Info()
	return AccelInfo{
		Architecture: runtime.GOARCH,
		Features:     info.CPUFeatures,
		Accelerated:  info.Acceleration && CurrentLevel() != DispatchScalar,
	}
}
