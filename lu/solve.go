// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

import (
	"github.com/kjellberg/fulllu/linalg"
	"github.com/kjellberg/fulllu/mat"
	"github.com/kjellberg/fulllu/scalar"
)

// SolveTo, given a packed L\U factorization, its row/col permutations,
// and a right-hand side rhs, writes the solution of A·X = rhs (or its
// conjugated variants) into dst without disturbing rhs:
//
//  1. T ← P_row · rhs (with optional conjugation on rhs during the copy)
//  2. T ← L⁻¹ · T (unit-lower solve, optional conjugation on L)
//  3. T ← U⁻¹ · T (upper solve, optional conjugation on U)
//  4. dst ← P_col⁻¹ · T
//
// conjLHS applies to both L and U (the factors are conjugated together,
// not independently); conjRHS applies once, during step 1, and is never
// re-applied. lu must be square; rowPerm and colPermInv must have length
// lu.Rows(). scratch is sized by SolveReq.
func SolveTo[T scalar.Scalar](dst, lu mat.Matrix[T], conjLHS Conjugation,
	rowPerm, colPermInv []int, rhs mat.Matrix[T], conjRHS Conjugation,
	par Parallelism, scratch Scratch[T]) {

	n := lu.Rows()
	if lu.Cols() != n {
		panic("lu: solve requires a square factorization")
	}
	if len(rowPerm) != n || len(colPermInv) != n {
		panic("lu: permutation length mismatch")
	}
	if rhs.Rows() != n {
		panic("lu: rhs row count must match the factorization dimension")
	}
	k := rhs.Cols()
	if dst.Rows() != n || dst.Cols() != k {
		panic("lu: dst shape mismatch")
	}

	t := mat.FromColMajorSlice(scratch.take(n*k), n, k)

	pool, closePool := par.pool()
	defer closePool()

	linalg.PermuteRows(t, rhs, rowPerm, conjRHS.bool(), pool)
	linalg.SolveUnitLowerTriangular(lu, t, conjLHS.bool(), pool)
	linalg.SolveUpperTriangular(lu, t, conjLHS.bool(), pool)
	linalg.PermuteRows(dst, t, colPermInv, false, pool)
}

// SolveInPlace is SolveTo specialized to overwrite rhsAndDst with the
// solution. The scratch buffer decouples the read-from-rhs and
// write-to-dst phases (both of which alias rhsAndDst here), so no
// aliasing violation occurs.
func SolveInPlace[T scalar.Scalar](lu mat.Matrix[T], conjLHS Conjugation,
	rowPerm, colPermInv []int, rhsAndDst mat.Matrix[T], conjRHS Conjugation,
	par Parallelism, scratch Scratch[T]) {
	SolveTo(rhsAndDst, lu, conjLHS, rowPerm, colPermInv, rhsAndDst, conjRHS, par, scratch)
}
