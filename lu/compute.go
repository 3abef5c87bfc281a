// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

import (
	"github.com/kjellberg/fulllu/mat"
	"github.com/kjellberg/fulllu/scalar"
)

// LUInPlace runs the unblocked, fully-pivoted elimination loop. It
// factors a in place so that P_row·A·P_col = L·U, packing unit-lower L
// below the diagonal and upper U on and above it.
//
// rowTrans and colTrans must arrive pre-initialized to the identity
// (entry i = i) and have lengths a.Rows() and a.Cols(); on return they
// hold the transposition sequence actually applied. rowPerm/rowPermInv
// (length a.Rows()) and colPerm/colPermInv (length a.Cols()) are filled
// exactly once from that sequence before return; an empty matrix (zero
// rows or columns) returns 0 before any buffer is written. par is accepted for
// interface symmetry with SolveTo but unused: the elimination's
// dependency chain across steps k is inherently serial. scratch is
// sized by LUInPlaceReq, currently always zero elements.
//
// Returns the total number of non-identity row+column swaps performed.
func LUInPlace[T scalar.Scalar](a mat.Matrix[T], rowTrans, colTrans []int,
	rowPerm, rowPermInv, colPerm, colPermInv []int,
	par Parallelism, scratch Scratch[T], opts *Options) int {

	m, n := a.Rows(), a.Cols()
	if len(rowTrans) != m || len(colTrans) != n {
		panic("lu: transposition buffer length mismatch")
	}
	if len(rowPerm) != m || len(rowPermInv) != m {
		panic("lu: row permutation buffer length mismatch")
	}
	if len(colPerm) != n || len(colPermInv) != n {
		panic("lu: column permutation buffer length mismatch")
	}
	if m == 0 || n == 0 {
		return 0
	}

	size := min(m, n)
	nTrans := 0

	// Pre-loop pivot step: locate the global maximum before any
	// elimination happens.
	v, r, c := ScanMatrix(a)
	rowTrans[0] = r
	colTrans[0] = c
	opts.notifyPivot(0, r, c, v)
	if r != 0 {
		a.SwapRows(0, r)
		nTrans++
	}
	if c != 0 {
		a.SwapCols(0, c)
		nTrans++
	}

	for k := 0; k < size; k++ {
		p := a.At(k, k)
		inv := scalar.Inv(p)
		for i := k + 1; i < m; i++ {
			a.Set(i, k, a.At(i, k)*inv)
		}
		if k+1 == size {
			break
		}

		sub := a.Submatrix(k+1, k+1, m-k-1, n-k-1)
		lhs := a.Col(k).Slice(k+1, m-k-1)
		rhs := a.Row(k).Slice(k+1, n-k-1)

		sv, sr, sc := UpdateAndScanMatrix(sub, lhs, rhs)
		r, c = sr+k+1, sc+k+1

		// The pivot search can never return a position outside the
		// trailing submatrix it searched; assert that bound directly
		// instead of trusting downstream offset arithmetic.
		if r < k+1 || c < k+1 {
			panic("lu: pivot search returned a position outside the trailing submatrix")
		}

		rowTrans[k+1] = r
		colTrans[k+1] = c
		opts.notifyPivot(k+1, r, c, sv)

		if r != k+1 {
			a.SwapRows(k+1, r)
			nTrans++
		}
		if c != k+1 {
			a.SwapCols(k+1, c)
			nTrans++
		}
	}

	MaterializePermutation(rowTrans, rowPerm, rowPermInv)
	MaterializePermutation(colTrans, colPerm, colPermInv)

	return nTrans
}
