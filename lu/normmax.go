// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

import (
	"unsafe"

	"github.com/kjellberg/fulllu/mat"
	"github.com/kjellberg/fulllu/scalar"
	"github.com/kjellberg/fulllu/simd"
)

// linearImplThreshold is the column length below which normMaxPairwise
// stops splitting and reduces linearly.
const linearImplThreshold = 128

// NormMax computes the elementwise max-norm
// max_{i,j} max(|Re a_ij|, |Im a_ij|), using the ∞-norm on each entry.
//
// Layout is normalized first: a row-contiguous matrix with more than
// one column is transposed so the inner dimension is
// column-contiguous. No constructor in the mat package ever produces a
// negative stride, so no row-reversal step is needed before the
// contiguous fast path.
func NormMax[T scalar.Scalar](m mat.Matrix[T]) float64 {
	v := m
	if v.IsRowContiguous() && v.Cols() > 1 {
		v = v.Transpose()
	}

	best := 0.0
	for j := 0; j < v.Cols(); j++ {
		if col, ok := v.Col(j).Contiguous(); ok {
			if cv := normMaxColumn(col); cv > best {
				best = cv
			}
			continue
		}
		for i := 0; i < v.Rows(); i++ {
			if cv := entryNormMax(v.At(i, j)); cv > best {
				best = cv
			}
		}
	}
	return best
}

// normMaxColumn dispatches a contiguous column to the pairwise
// reduction, reinterpreting native complex columns as a real column of
// double the length first so the real kernel sees each entry's Re and
// Im as two separate lanes.
func normMaxColumn[T scalar.Scalar](col []T) float64 {
	switch c := any(col).(type) {
	case []complex128:
		return normMaxPairwise(reinterpretComplex128AsFloat64(c))
	case []complex64:
		return normMaxPairwise(reinterpretComplex64AsFloat32(c))
	default:
		return normMaxPairwise(col)
	}
}

func reinterpretComplex128AsFloat64(c []complex128) []float64 {
	if len(c) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(c))), len(c)*2)
}

func reinterpretComplex64AsFloat32(c []complex64) []float32 {
	if len(c) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(c))), len(c)*2)
}

// normMaxPairwise recursively splits col at a power-of-two boundary and
// combines the two halves' maxima. A flat left-to-right accumulation
// would do for a max, but the same skeleton serves sum-type reductions
// (L2 norms) where pairwise accumulation halves the worst-case rounding
// error, so one reduction shape is fixed for the whole family.
func normMaxPairwise[T scalar.Scalar](col []T) float64 {
	n := len(col)
	if n == 0 {
		return 0
	}
	if n <= linearImplThreshold {
		return normMaxLinear(col)
	}
	half := nextPowerOfTwo((n + 1) / 2)
	if half >= n {
		half = n / 2
	}
	left := normMaxPairwise(col[:half])
	right := normMaxPairwise(col[half:])
	if left > right {
		return left
	}
	return right
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// normMaxLinear is the pairwise recursion's leaf: a lane-unrolled-by-4
// SIMD reduction for float64/float32, a plain scalar loop otherwise.
func normMaxLinear[T scalar.Scalar](col []T) float64 {
	switch d := any(col).(type) {
	case []float64:
		return normMaxLinearSIMD(d)
	case []float32:
		return normMaxLinearSIMD(d)
	default:
		return normMaxScalarLoop(col)
	}
}

func normMaxLinearSIMD[T simd.Lanes](col []T) float64 {
	n := len(col)
	if n == 0 {
		return 0
	}
	if simd.NoSimdEnv() || !simd.HasSIMD() {
		return normMaxScalarLoop(col)
	}
	const unroll = 4
	L := simd.MaxLanes[T]()
	chunk := L * unroll
	if L <= 1 || n < chunk {
		return normMaxScalarLoop(col)
	}
	bodyLen := (n / chunk) * chunk

	acc := make([]simd.Vec[T], unroll)
	for u := 0; u < unroll; u++ {
		acc[u] = simd.Abs(simd.Load(col[u*L : u*L+L]))
	}
	for base := chunk; base < bodyLen; base += chunk {
		for u := 0; u < unroll; u++ {
			off := base + u*L
			acc[u] = simd.Max(acc[u], simd.Abs(simd.Load(col[off:off+L])))
		}
	}
	best := acc[0]
	for u := 1; u < unroll; u++ {
		best = simd.Max(best, acc[u])
	}
	bestVal := float64(simd.ReduceMax(best))

	if bodyLen < n {
		if rem := normMaxScalarLoop(col[bodyLen:]); rem > bestVal {
			bestVal = rem
		}
	}
	return bestVal
}

// entryNormMax computes max(|Re x|, |Im x|) for a single scalar — the
// per-entry ∞-norm NormMax is defined over. For real scalars
// Im is zero, so this collapses to the ordinary |x|. It is only reached
// from NormMax's non-contiguous fallback loop: the contiguous paths get
// the same answer via normMaxColumn's reinterpret-as-real trick, which
// splits each complex entry's Re/Im into separate lanes before taking a
// plain max, rather than scalar.Abs's Euclidean magnitude.
func entryNormMax[T scalar.Scalar](x T) float64 {
	switch v := any(x).(type) {
	case complex64:
		re, im := absF32(real(v)), absF32(imag(v))
		if re > im {
			return float64(re)
		}
		return float64(im)
	case complex128:
		re, im := absF64(real(v)), absF64(imag(v))
		if re > im {
			return re
		}
		return im
	default:
		return scalar.Abs(x)
	}
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func absF64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func normMaxScalarLoop[T scalar.Scalar](col []T) float64 {
	best := 0.0
	for _, x := range col {
		if v := scalar.Abs(x); v > best {
			best = v
		}
	}
	return best
}
