// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

// Package linalg supplies the dense primitives the lu package treats as
// black boxes: general matrix multiplication, the two triangular
// solves, and permutation-apply. Each function documents its contract
// explicitly; shapes that violate it panic rather than return an
// error, since a mismatch is a caller bug, not a runtime condition.
package linalg

import (
	"github.com/kjellberg/fulllu/mat"
	"github.com/kjellberg/fulllu/scalar"
	"github.com/kjellberg/fulllu/workerpool"
)

// MatMul computes dst ← alpha·dst + beta·(lhs·rhs). The lu package's
// generic fallback calls it with alpha=one, beta=-one to perform the
// rank-one Schur complement update via a single dense multiply instead
// of the fused SIMD sweep the native float specializations get.
//
// Contract: dst is lhs.Rows()×rhs.Cols(), lhs is lhs.Rows()×K, rhs is
// K×rhs.Cols() for some shared K; violating this panics.
func MatMul[T scalar.Scalar](dst mat.Matrix[T], alpha T, lhs, rhs mat.Matrix[T], beta T) {
	m, n, k := lhs.Rows(), rhs.Cols(), lhs.Cols()
	if dst.Rows() != m || dst.Cols() != n || rhs.Rows() != k {
		panic("linalg: MatMul dimension mismatch")
	}

	zero := scalar.Zero[T]()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := zero
			for p := 0; p < k; p++ {
				sum += lhs.At(i, p) * rhs.At(p, j)
			}
			dst.Set(i, j, alpha*dst.At(i, j)+beta*sum)
		}
	}
}

// PermuteRows writes dst[:, j] = conj?(src[perm[:], j]) column by
// column, the row-permutation-apply step the solve pipeline uses at its
// two ends (T ← P_row · B, dst ← P_col⁻¹ · T). Looping column-outer, row-inner
// (rather than the mathematically equivalent row-outer order) gives it
// the same per-call-site shape as SolveUnitLowerTriangular and
// SolveUpperTriangular — n independent, equal-cost columns — so it can
// fan out across the same pool those two use instead of needing its own
// parallelization strategy.
//
// Contract: len(perm) == src.Rows() == dst.Rows(), dst.Cols() ==
// src.Cols(), and perm is a bijection on [0, src.Rows()). pool may be
// nil for sequential execution.
func PermuteRows[T scalar.Scalar](dst, src mat.Matrix[T], perm []int, conjSrc bool, pool *workerpool.Pool) {
	if len(perm) != src.Rows() || dst.Rows() != src.Rows() || dst.Cols() != src.Cols() {
		panic("linalg: PermuteRows dimension mismatch")
	}
	forEachColumn(pool, dst.Cols(), func(j int) {
		for i, p := range perm {
			dst.Set(i, j, scalar.ConjIf(src.At(p, j), conjSrc))
		}
	})
}

// SolveUnitLowerTriangular solves L·X = rhs in place, overwriting rhs
// with X, where L is the unit lower-triangular factor packed into the
// lower part of lu (diagonal implied 1). conjL requests conj(L) in
// place of L. pool may be nil for sequential execution.
//
// Contract: lu is square n×n, rhs is n×k.
func SolveUnitLowerTriangular[T scalar.Scalar](lu, rhs mat.Matrix[T], conjL bool, pool *workerpool.Pool) {
	n := lu.Rows()
	if lu.Cols() != n || rhs.Rows() != n {
		panic("linalg: SolveUnitLowerTriangular dimension mismatch")
	}
	forEachColumn(pool, rhs.Cols(), func(j int) {
		for i := 0; i < n; i++ {
			acc := rhs.At(i, j)
			for p := 0; p < i; p++ {
				acc -= scalar.ConjIf(lu.At(i, p), conjL) * rhs.At(p, j)
			}
			rhs.Set(i, j, acc)
		}
	})
}

// SolveUpperTriangular solves U·X = rhs in place, overwriting rhs with
// X, where U is the upper-triangular factor packed into the upper part
// of lu including the diagonal. pool may be nil for sequential
// execution.
//
// Contract: lu is square n×n, rhs is n×k.
func SolveUpperTriangular[T scalar.Scalar](lu, rhs mat.Matrix[T], conjU bool, pool *workerpool.Pool) {
	n := lu.Rows()
	if lu.Cols() != n || rhs.Rows() != n {
		panic("linalg: SolveUpperTriangular dimension mismatch")
	}
	forEachColumn(pool, rhs.Cols(), func(j int) {
		for i := n - 1; i >= 0; i-- {
			acc := rhs.At(i, j)
			for p := i + 1; p < n; p++ {
				acc -= scalar.ConjIf(lu.At(i, p), conjU) * rhs.At(p, j)
			}
			diag := scalar.ConjIf(lu.At(i, i), conjU)
			rhs.Set(i, j, acc*scalar.Inv(diag))
		}
	})
}

// forEachColumn runs fn(j) for j in [0, k), fanning out across pool's
// workers when pool is non-nil and there's more than one column to
// split across it, sequentially otherwise. pool is created once per
// SolveTo/SolveInPlace call (lu.Parallelism.pool) and reused across all
// three of these functions' calls within it, rather than spun up fresh
// per call.
func forEachColumn(pool *workerpool.Pool, k int, fn func(j int)) {
	if pool == nil || k <= 1 {
		for j := 0; j < k; j++ {
			fn(j)
		}
		return
	}
	pool.Columns(k, fn)
}
