// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kjellberg/fulllu/lu"
	"github.com/kjellberg/fulllu/mat"
	"github.com/stretchr/testify/require"
)

func naiveNormMaxReal(m mat.Matrix[float64]) float64 {
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

// TestNormMaxLargeMagnitude: a 9×10 matrix with entries 1e250·(i+j)
// has a max-norm within 1e-14 relative of 1e250·17 — no intermediate
// squaring that would overflow.
func TestNormMaxLargeMagnitude(t *testing.T) {
	m := mat.NewColMajor[float64](9, 10)
	for i := 0; i < 9; i++ {
		for j := 0; j < 10; j++ {
			m.Set(i, j, 1e250*float64(i+j))
		}
	}
	got := lu.NormMax(m)
	want := 1e250 * 17
	require.Less(t, math.Abs(got-want)/want, 1e-14)
}

// TestNormMaxVsNaive compares against the brute-force scan over
// several shapes, crossing the pairwise-split threshold both ways.
func TestNormMaxVsNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	shapes := [][2]int{{1, 1}, {5, 1}, {1, 7}, {64, 3}, {3, 64}, {200, 5}, {129, 129}}
	for _, sh := range shapes {
		rows, cols := sh[0], sh[1]
		m := mat.NewColMajor[float64](rows, cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				m.Set(i, j, (rng.Float64()-0.5)*1e6)
			}
		}
		got := lu.NormMax(m)
		want := naiveNormMaxReal(m)
		if want == 0 {
			require.Equal(t, 0.0, got)
			continue
		}
		require.Less(t, math.Abs(got-want)/want, 1e-14)
	}
}

func TestNormMaxAllZerosIsExact(t *testing.T) {
	m := mat.NewColMajor[float64](50, 50)
	require.Equal(t, 0.0, lu.NormMax(m))
}

func TestNormMaxRowMajorLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := mat.NewRowMajor[float64](17, 23)
	for i := 0; i < 17; i++ {
		for j := 0; j < 23; j++ {
			m.Set(i, j, rng.Float64()*100-50)
		}
	}
	require.InDelta(t, naiveNormMaxReal(m), lu.NormMax(m), 1e-9)
}

func TestNormMaxComplex(t *testing.T) {
	m := mat.NewColMajor[complex128](4, 3)
	m.Set(0, 0, complex(3, 4))
	m.Set(1, 1, complex(-9, 1))
	m.Set(2, 2, complex(2, -7))
	got := lu.NormMax(m)
	require.InDelta(t, 9.0, got, 1e-12)
}
