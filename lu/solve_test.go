// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/kjellberg/fulllu/lu"
	"github.com/kjellberg/fulllu/mat"
	"github.com/stretchr/testify/require"
)

func randMatrix(rng *rand.Rand, rows, cols int) mat.Matrix[float64] {
	m := mat.NewColMajor[float64](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, rng.Float64())
		}
	}
	return m
}

func cloneMatrix(m mat.Matrix[float64]) mat.Matrix[float64] {
	out := mat.NewColMajor[float64](m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}

func matMulPlain(a, b mat.Matrix[float64]) mat.Matrix[float64] {
	out := mat.NewColMajor[float64](a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			sum := 0.0
			for p := 0; p < a.Cols(); p++ {
				sum += a.At(i, p) * b.At(p, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

func infNorm(m mat.Matrix[float64]) float64 {
	best := 0.0
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v := math.Abs(m.At(i, j)); v > best {
				best = v
			}
		}
	}
	return best
}

// TestSolveRoundTrip: ‖A·X − B‖_∞ / ‖B‖_∞ < τ for random square A and
// B, τ = 1e-10 at n=64, double precision.
func TestSolveRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 64
	a := randMatrix(rng, n, n)
	b := randMatrix(rng, n, 1)

	aCopy := cloneMatrix(a)
	rowTrans, colTrans := identitySeq(n), identitySeq(n)
	rowPerm, rowPermInv := make([]int, n), make([]int, n)
	colPerm, colPermInv := make([]int, n), make([]int, n)
	lu.LUInPlace(a, rowTrans, colTrans, rowPerm, rowPermInv, colPerm, colPermInv,
		lu.Sequential, lu.NewScratch[float64](0), nil)

	x := mat.NewColMajor[float64](n, 1)
	scratch := lu.NewScratch[float64](n)
	lu.SolveTo(x, a, lu.No, rowPerm, colPermInv, b, lu.No, lu.Sequential, scratch)

	ax := matMulPlain(aCopy, x)
	resid := mat.NewColMajor[float64](n, 1)
	for i := 0; i < n; i++ {
		resid.Set(i, 0, ax.At(i, 0)-b.At(i, 0))
	}
	tau := infNorm(resid) / infNorm(b)
	require.Less(t, tau, 1e-10)
}

func randMatrixC128(rng *rand.Rand, rows, cols int) mat.Matrix[complex128] {
	m := mat.NewColMajor[complex128](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, complex(rng.Float64(), rng.Float64()))
		}
	}
	return m
}

func cloneMatrixC128(m mat.Matrix[complex128]) mat.Matrix[complex128] {
	out := mat.NewColMajor[complex128](m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}

func conjMatrixC128(m mat.Matrix[complex128]) mat.Matrix[complex128] {
	out := mat.NewColMajor[complex128](m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out.Set(i, j, cmplx.Conj(m.At(i, j)))
		}
	}
	return out
}

func matMulPlainC128(a, b mat.Matrix[complex128]) mat.Matrix[complex128] {
	out := mat.NewColMajor[complex128](a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var sum complex128
			for p := 0; p < a.Cols(); p++ {
				sum += a.At(i, p) * b.At(p, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

func infNormC128(m mat.Matrix[complex128]) float64 {
	best := 0.0
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v := cmplx.Abs(m.At(i, j)); v > best {
				best = v
			}
		}
	}
	return best
}

// TestConjugationCorrectness exercises all four conjLHS×conjRHS
// combinations. conjLHS selects conj(A) vs A on the left, conjRHS
// selects conj(B) vs B on the right; every combination is checked
// against its own expected relation so a sign/ordering bug confined to
// one conjugation path (e.g. PermuteRows applying conjSrc before the
// unit-lower solve) cannot hide behind the other three passing.
func TestConjugationCorrectness(t *testing.T) {
	cases := []struct {
		name             string
		conjLHS, conjRHS lu.Conjugation
	}{
		{"No,No", lu.No, lu.No},
		{"Yes,No", lu.Yes, lu.No},
		{"No,Yes", lu.No, lu.Yes},
		{"Yes,Yes", lu.Yes, lu.Yes},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(99))
			n := 16
			a := randMatrixC128(rng, n, n)
			b := randMatrixC128(rng, n, 1)

			aCopy := cloneMatrixC128(a)
			rowTrans, colTrans := identitySeq(n), identitySeq(n)
			rowPerm, rowPermInv := make([]int, n), make([]int, n)
			colPerm, colPermInv := make([]int, n), make([]int, n)
			lu.LUInPlace(a, rowTrans, colTrans, rowPerm, rowPermInv, colPerm, colPermInv,
				lu.Sequential, lu.NewScratch[complex128](0), nil)

			x := mat.NewColMajor[complex128](n, 1)
			scratch := lu.NewScratch[complex128](n)
			lu.SolveTo(x, a, c.conjLHS, rowPerm, colPermInv, b, c.conjRHS, lu.Sequential, scratch)

			// lhsMat is A or conj(A) depending on conjLHS; rhsMat is B or
			// conj(B) depending on conjRHS. lhsMat·X should equal rhsMat.
			lhsMat := aCopy
			if c.conjLHS == lu.Yes {
				lhsMat = conjMatrixC128(aCopy)
			}
			rhsMat := b
			if c.conjRHS == lu.Yes {
				rhsMat = conjMatrixC128(b)
			}

			ax := matMulPlainC128(lhsMat, x)
			resid := mat.NewColMajor[complex128](n, 1)
			for i := 0; i < n; i++ {
				resid.Set(i, 0, ax.At(i, 0)-rhsMat.At(i, 0))
			}
			tau := infNormC128(resid) / infNormC128(rhsMat)
			require.Less(t, tau, 1e-9)
		})
	}
}

// TestSolveInPlaceMatchesSolveTo checks that overwriting the rhs in
// place (decoupled through the scratch buffer) produces the same
// answer as writing to a distinct destination.
func TestSolveInPlaceMatchesSolveTo(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := 10
	a := randMatrix(rng, n, n)
	aForInPlace := cloneMatrix(a)
	b := randMatrix(rng, n, 2)
	bForInPlace := cloneMatrix(b)

	rowTrans, colTrans := identitySeq(n), identitySeq(n)
	rowPerm, rowPermInv := make([]int, n), make([]int, n)
	colPerm, colPermInv := make([]int, n), make([]int, n)
	lu.LUInPlace(a, rowTrans, colTrans, rowPerm, rowPermInv, colPerm, colPermInv,
		lu.Sequential, lu.NewScratch[float64](0), nil)

	dst := mat.NewColMajor[float64](n, 2)
	lu.SolveTo(dst, a, lu.No, rowPerm, colPermInv, b, lu.No, lu.Sequential, lu.NewScratch[float64](n*2))

	rowTrans2, colTrans2 := identitySeq(n), identitySeq(n)
	rowPerm2, rowPermInv2 := make([]int, n), make([]int, n)
	colPerm2, colPermInv2 := make([]int, n), make([]int, n)
	lu.LUInPlace(aForInPlace, rowTrans2, colTrans2, rowPerm2, rowPermInv2, colPerm2, colPermInv2,
		lu.Sequential, lu.NewScratch[float64](0), nil)
	lu.SolveInPlace(aForInPlace, lu.No, rowPerm2, colPermInv2, bForInPlace, lu.No,
		lu.Sequential, lu.NewScratch[float64](n*2))

	for i := 0; i < n; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, dst.At(i, j), bForInPlace.At(i, j), 1e-9)
		}
	}
}
