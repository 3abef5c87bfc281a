// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package simd

import (
	"os"
	"strconv"
	"unsafe"
)

// Level names the SIMD instruction set picked for this process.
type Level int

const (
	// LevelScalar means no hardware SIMD: one f64 lane at a time.
	LevelScalar Level = iota
	// Level128 means a 128-bit vector register (SSE2 baseline on amd64,
	// NEON on arm64): two f64 lanes.
	Level128
	// Level256 means a 256-bit vector register (AVX2): four f64 lanes.
	Level256
	// Level512 means a 512-bit vector register (AVX-512): eight f64 lanes.
	Level512
)

func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case Level128:
		return "128bit"
	case Level256:
		return "256bit"
	case Level512:
		return "512bit"
	default:
		return "unknown"
	}
}

// currentLevel and currentWidth are set once by the architecture-specific
// init() in dispatch_amd64.go / dispatch_arm64.go / dispatch_other.go.
var currentLevel Level
var currentWidth int // bytes

// CurrentLevel returns the SIMD instruction set chosen for this process.
func CurrentLevel() Level { return currentLevel }

// CurrentWidth returns the chosen vector width in bytes.
func CurrentWidth() int { return currentWidth }

// HasSIMD reports whether hardware vectorization is in use at all.
func HasSIMD() bool { return currentLevel != LevelScalar }

// NoSimdEnv reports whether FULLLU_NO_SIMD forces the scalar fallback.
func NoSimdEnv() bool {
	val := os.Getenv("FULLLU_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many T values fit in the current vector width.
func MaxLanes[T Lanes]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || currentWidth == 0 {
		return 1
	}
	n := currentWidth / size
	if n < 1 {
		return 1
	}
	return n
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 8 // one float64 lane
}
