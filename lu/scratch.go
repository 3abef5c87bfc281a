// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

import "github.com/kjellberg/fulllu/scalar"

// Scratch is caller-provided, caller-owned working storage for one
// LUInPlace or solve call, sized by LUInPlaceReq/SolveReq first.
// Capacity is measured in elements of the scalar type the call uses
// rather than raw bytes: the type parameter already says how big each
// element is, so a byte count would convey nothing extra.
type Scratch[T scalar.Scalar] struct {
	buf []T
}

// NewScratch allocates scratch storage holding n elements of T. Callers
// size n via LUInPlaceReq or SolveReq.
func NewScratch[T scalar.Scalar](n int) Scratch[T] {
	return Scratch[T]{buf: make([]T, n)}
}

// Len reports the scratch buffer's element capacity.
func (s Scratch[T]) Len() int { return len(s.buf) }

func (s Scratch[T]) take(n int) []T {
	if n > len(s.buf) {
		panic("lu: scratch buffer too small")
	}
	return s.buf[:n]
}

// LUInPlaceReq returns the scratch element count LUInPlace needs to
// factor an m×n matrix under the given parallelism. The unblocked
// elimination loop performs its rank-one update directly on the
// caller's matrix and needs no working storage of its own. The function
// still exists, and callers are still expected to call it first, so a
// future blocked variant can change the requirement without breaking
// call sites.
func LUInPlaceReq[T scalar.Scalar](m, n int, par Parallelism) (int, error) {
	if m < 0 || n < 0 {
		panic("lu: negative dimension")
	}
	return 0, nil
}

// SolveReq returns the scratch element count SolveTo/SolveInPlace need
// to solve an luRows×luCols factorization against rhsCols right-hand
// sides: one luCols×rhsCols temporary for the permuted working copy.
func SolveReq[T scalar.Scalar](luRows, luCols, rhsCols int, par Parallelism) (int, error) {
	if luRows < 0 || luCols < 0 || rhsCols < 0 {
		panic("lu: negative dimension")
	}
	n := luCols
	product := n * rhsCols
	if n != 0 && product/n != rhsCols {
		return 0, ErrScratchSizeOverflow
	}
	return product, nil
}
