// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

import (
	"github.com/kjellberg/fulllu/scalar"
	"github.com/kjellberg/fulllu/simd"
)

// ScanColumn returns the largest |data[i]| over a contiguous column and
// the smallest i attaining it. float64 and float32 columns take the
// SIMD-accelerated path; every other scalar type (the two complex
// specializations) uses the plain scalar loop, dispatched once per call
// via a type switch over any() as in the scalar package.
func ScanColumn[T scalar.Scalar](data []T) (best float64, idx int) {
	switch d := any(data).(type) {
	case []float64:
		return scanColumnSIMD(d)
	case []float32:
		return scanColumnSIMD(d)
	default:
		return scanColumnScalarFrom(data, 0)
	}
}

// UpdateAndScanColumn first computes dst[i] += lhs[i]*rhs for every i
// (a fused multiply-add where available), then returns the ScanColumn
// result over the updated dst — one sweep of memory instead of two.
func UpdateAndScanColumn[T scalar.Scalar](dst, lhs []T, rhs T) (best float64, idx int) {
	switch d := any(dst).(type) {
	case []float64:
		return updateAndScanColumnSIMD(d, any(lhs).([]float64), any(rhs).(float64))
	case []float32:
		return updateAndScanColumnSIMD(d, any(lhs).([]float32), any(rhs).(float32))
	default:
		return updateAndScanColumnScalarFrom(dst, lhs, rhs, 0)
	}
}

// scanColumnSIMD is the lane-generic scan-only kernel, unrolled by 3
// independent accumulator chains. Go slices carry no pointer-alignment
// information the way a raw SIMD intrinsic call would need, so there is
// no scalar prologue scanning up to an aligned boundary; only the
// trailing remainder (the epilogue) ever falls back to the scalar
// accumulator.
func scanColumnSIMD[T simd.Lanes](data []T) (float64, int) {
	n := len(data)
	if n == 0 {
		return 0, 0
	}
	if simd.NoSimdEnv() || !simd.HasSIMD() {
		return scanColumnScalarFrom(data, 0)
	}
	const unroll = 3
	L := simd.MaxLanes[T]()
	chunk := L * unroll
	if L <= 1 || n < chunk {
		return scanColumnScalarFrom(data, 0)
	}
	bodyLen := (n / chunk) * chunk

	accVal := make([]simd.Vec[T], unroll)
	accIdx := make([][]int, unroll)
	for u := 0; u < unroll; u++ {
		off := u * L
		accVal[u] = simd.Abs(simd.Load(data[off : off+L]))
		accIdx[u] = simd.Iota(off, L)
	}
	for base := chunk; base < bodyLen; base += chunk {
		for u := 0; u < unroll; u++ {
			off := base + u*L
			av := simd.Abs(simd.Load(data[off : off+L]))
			idx := simd.Iota(off, L)
			mask := simd.GreaterThan(av, accVal[u])
			accVal[u] = simd.IfThenElse(mask, av, accVal[u])
			accIdx[u] = simd.SelectIndex(simd.GreaterThanBits(mask), idx, accIdx[u])
		}
	}

	bestVal, bestIdx := foldAccumulators(accVal, accIdx)
	if bodyLen < n {
		if remVal, remIdx := scanColumnScalarFrom(data[bodyLen:], bodyLen); remVal > bestVal {
			bestVal, bestIdx = remVal, remIdx
		}
	}
	return bestVal, bestIdx
}

// updateAndScanColumnSIMD is the lane-generic update-and-scan kernel,
// unrolled by 2 independent accumulator chains.
func updateAndScanColumnSIMD[T simd.Lanes](dst, lhs []T, rhs T) (float64, int) {
	n := len(dst)
	if n == 0 {
		return 0, 0
	}
	if simd.NoSimdEnv() || !simd.HasSIMD() {
		return updateAndScanColumnScalarFrom(dst, lhs, rhs, 0)
	}
	const unroll = 2
	L := simd.MaxLanes[T]()
	chunk := L * unroll
	if L <= 1 || n < chunk {
		return updateAndScanColumnScalarFrom(dst, lhs, rhs, 0)
	}
	bodyLen := (n / chunk) * chunk
	rhsVec := simd.Set(rhs)

	updateLane := func(off int) simd.Vec[T] {
		d := simd.Load(dst[off : off+L])
		l := simd.Load(lhs[off : off+L])
		updated := simd.FMA(l, rhsVec, d)
		updated.Store(dst[off : off+L])
		return updated
	}

	accVal := make([]simd.Vec[T], unroll)
	accIdx := make([][]int, unroll)
	for u := 0; u < unroll; u++ {
		off := u * L
		accVal[u] = simd.Abs(updateLane(off))
		accIdx[u] = simd.Iota(off, L)
	}
	for base := chunk; base < bodyLen; base += chunk {
		for u := 0; u < unroll; u++ {
			off := base + u*L
			av := simd.Abs(updateLane(off))
			idx := simd.Iota(off, L)
			mask := simd.GreaterThan(av, accVal[u])
			accVal[u] = simd.IfThenElse(mask, av, accVal[u])
			accIdx[u] = simd.SelectIndex(simd.GreaterThanBits(mask), idx, accIdx[u])
		}
	}

	bestVal, bestIdx := foldAccumulators(accVal, accIdx)
	if bodyLen < n {
		if remVal, remIdx := updateAndScanColumnScalarFrom(dst[bodyLen:], lhs[bodyLen:], rhs, bodyLen); remVal > bestVal {
			bestVal, bestIdx = remVal, remIdx
		}
	}
	return bestVal, bestIdx
}

// foldAccumulators reduces K parallel SIMD (value, index) accumulators
// down to one scalar (value, index) pair by visiting every lane of every
// chain. A lane replaces the running winner on a strictly greater value,
// or on an equal value with a smaller index, so the smallest index
// attaining the maximum survives the fold, independent of lane count or
// unroll factor.
func foldAccumulators[T simd.Lanes](accVal []simd.Vec[T], accIdx [][]int) (float64, int) {
	scalarBest, scalarIdx := -1.0, accIdx[0][0]
	for u := range accVal {
		vals := make([]T, accVal[u].NumLanes())
		accVal[u].Store(vals)
		for i, x := range vals {
			v, idx := float64(x), accIdx[u][i]
			if v > scalarBest || (v == scalarBest && idx < scalarIdx) {
				scalarBest, scalarIdx = v, idx
			}
		}
	}
	if scalarBest < 0 {
		scalarBest = 0
	}
	return scalarBest, scalarIdx
}

// scanColumnScalarFrom is both the generic scalar path (for scalar
// types with no SIMD lane, called with base 0) and the epilogue every
// SIMD kernel above folds its remainder through. base is added to every
// returned index so a tail slice still reports positions relative to
// the full column.
func scanColumnScalarFrom[T scalar.Scalar](data []T, base int) (float64, int) {
	best := -1.0
	bestIdx := base
	for i, x := range data {
		if v := scalar.Abs(x); v > best {
			best = v
			bestIdx = base + i
		}
	}
	if best < 0 {
		best = 0
	}
	return best, bestIdx
}

func updateAndScanColumnScalarFrom[T scalar.Scalar](dst, lhs []T, rhs T, base int) (float64, int) {
	best := -1.0
	bestIdx := base
	for i := range dst {
		dst[i] = dst[i] + lhs[i]*rhs
		if v := scalar.Abs(dst[i]); v > best {
			best = v
			bestIdx = base + i
		}
	}
	if best < 0 {
		best = 0
	}
	return best, bestIdx
}
