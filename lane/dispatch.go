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
	"log/slog"
	"sync/atomic"
	"unsafe"
)

// DispatchLevel represents the SIMD instruction set detected at runtime.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

type target struct {
	level DispatchLevel
	width int
}

// scalarTarget keeps 16-byte vectors even in scalar mode for consistency.
var scalarTarget = target{level: DispatchScalar, width: 16}

var currentTarget atomic.Pointer[target]

func init() {
	cfg, err := LoadConfig()
	if err != nil {
		Logger().Warn("lane: ignoring environment configuration", slog.Any("error", err))
		cfg = DefaultConfig()
	}
	Configure(cfg)
}

func dispatch(cfg Config) {
	t := scalarTarget
	if !cfg.NoSIMD {
		t = detectTarget()
	}
	currentTarget.Store(&t)
	Logger().Debug("lane: dispatch",
		slog.String("level", t.level.String()),
		slog.Int("width", t.width),
		slog.Int("accel_min_lanes", cfg.AccelMinLanes))
}

func loadTarget() target {
	if t := currentTarget.Load(); t != nil {
		return *t
	}
	return scalarTarget
}

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return loadTarget().level
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return loadTarget().width
}

// MaxLanes returns the number of lanes of type T that fit in one register
// at the current SIMD width.
//
// For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	return CurrentWidth() / int(unsafe.Sizeof(dummy))
}

// StorageBytes returns the register-sized storage a vector of n lanes of T
// occupies: n*sizeof(T) rounded up to the next power of two.
func StorageBytes[T Lanes](n int) int {
	var dummy T
	return int(nextPowerOfTwo(uint32(n) * uint32(unsafe.Sizeof(dummy))))
}

func nextPowerOfTwo(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return x + 1
}

// accelerated reports whether float kernels should handle n lanes.
func accelerated(n int) bool {
	return loadTarget().level != DispatchScalar && n >= CurrentConfig().AccelMinLanes
}
