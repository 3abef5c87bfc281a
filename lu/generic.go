// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

import (
	"github.com/kjellberg/fulllu/linalg"
	"github.com/kjellberg/fulllu/mat"
	"github.com/kjellberg/fulllu/scalar"
)

// scanMatrixGeneric is a plain nested-loop scan using the same
// strict-greater tie-break as the SIMD path, for layouts that are
// neither column- nor row-contiguous (of any scalar type). Correctness,
// not throughput, is the goal here.
func scanMatrixGeneric[T scalar.Scalar](m mat.Matrix[T]) (float64, int, int) {
	bestV, bestI, bestJ := 0.0, 0, 0
	for j := 0; j < m.Cols(); j++ {
		for i := 0; i < m.Rows(); i++ {
			if v := scalar.Abs(m.At(i, j)); v > bestV {
				bestV, bestI, bestJ = v, i, j
			}
		}
	}
	return bestV, bestI, bestJ
}

// updateAndScanMatrixGeneric is the fallback for layouts that are
// neither column- nor row-contiguous, of any scalar type; contiguous
// complex matrices take UpdateAndScanMatrix's column-major path and
// pivot.go's plain scalar column loop instead. It performs the rank-one update
// dst ← dst − lhs·rhs via the matmul primitive (coefficients α=1,
// β=−1) and then runs the generic scan.
func updateAndScanMatrixGeneric[T scalar.Scalar](m mat.Matrix[T], lhs, rhs mat.Vector[T]) (float64, int, int) {
	one := scalar.One[T]()
	linalg.MatMul(m, one, lhs.AsColumn(), rhs.AsRow(), -one)
	return scanMatrixGeneric(m)
}
