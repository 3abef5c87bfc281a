// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

import (
	"github.com/kjellberg/fulllu/mat"
	"github.com/kjellberg/fulllu/scalar"
)

// ScanMatrix walks a trailing submatrix column by column (dispatching
// each column to ScanColumn) and returns the running (value, row, col)
// winner. Column-major views take the direct path; row-major views are
// handled by logically transposing before dispatch and swapping
// (row, col) back on return; anything neither column- nor
// row-contiguous falls back to the generic scalar scan.
func ScanMatrix[T scalar.Scalar](m mat.Matrix[T]) (value float64, row, col int) {
	if m.IsColContiguous() {
		return scanMatrixColMajor(m)
	}
	if m.IsRowContiguous() {
		v, r, c := scanMatrixColMajor(m.Transpose())
		return v, c, r
	}
	return scanMatrixGeneric(m)
}

// UpdateAndScanMatrix is ScanMatrix's update-and-scan counterpart: for
// column j it invokes UpdateAndScanColumn with -rhs[j] as the scalar
// multiplier, so the operation performed is dst ← dst − rhs[j]·lhs, the
// rank-one subtraction at the heart of Gaussian elimination.
func UpdateAndScanMatrix[T scalar.Scalar](m mat.Matrix[T], lhs, rhs mat.Vector[T]) (value float64, row, col int) {
	if m.IsColContiguous() {
		return updateAndScanMatrixColMajor(m, lhs, rhs)
	}
	if m.IsRowContiguous() {
		v, r, c := updateAndScanMatrixColMajor(m.Transpose(), rhs, lhs)
		return v, c, r
	}
	return updateAndScanMatrixGeneric(m, lhs, rhs)
}

func scanMatrixColMajor[T scalar.Scalar](m mat.Matrix[T]) (float64, int, int) {
	bestV, bestI, bestJ := 0.0, 0, 0
	for j := 0; j < m.Cols(); j++ {
		col, ok := m.Col(j).Contiguous()
		if !ok {
			panic("lu: expected a contiguous column in a column-major matrix")
		}
		if v, i := ScanColumn(col); v > bestV {
			bestV, bestI, bestJ = v, i, j
		}
	}
	return bestV, bestI, bestJ
}

func updateAndScanMatrixColMajor[T scalar.Scalar](m mat.Matrix[T], lhs, rhs mat.Vector[T]) (float64, int, int) {
	lhsFlat, ok := lhs.Contiguous()
	if !ok {
		panic("lu: expected a contiguous lhs vector")
	}
	bestV, bestI, bestJ := 0.0, 0, 0
	for j := 0; j < m.Cols(); j++ {
		col, ok := m.Col(j).Contiguous()
		if !ok {
			panic("lu: expected a contiguous column in a column-major matrix")
		}
		mult := -rhs.At(j)
		if v, i := UpdateAndScanColumn(col, lhsFlat, mult); v > bestV {
			bestV, bestI, bestJ = v, i, j
		}
	}
	return bestV, bestI, bestJ
}
