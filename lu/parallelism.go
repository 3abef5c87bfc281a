// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

import "github.com/kjellberg/fulllu/workerpool"

// Parallelism is the hint the solve driver hands down to the
// triangular-solve and permutation-apply primitives. LUInPlace never
// consults it — the elimination's dependency chain across steps k is
// inherently serial — so only SolveTo/SolveInPlace use it.
type Parallelism struct {
	// N is the worker count. N <= 0 (the zero value) means sequential.
	N int
}

// Sequential is the zero-value Parallelism.
var Sequential = Parallelism{}

// pool creates, when N > 1, the single workerpool.Pool that SolveTo and
// SolveInPlace reuse across all four of the solve pipeline's
// column-independent passes (P_row·B, the unit-lower solve, the upper
// solve, P_col⁻¹·T) instead of spinning one up per pass. The returned
// close func is always safe to call, including when pool is nil.
func (p Parallelism) pool() (pool *workerpool.Pool, closePool func()) {
	if p.N <= 1 {
		return nil, func() {}
	}
	pl := workerpool.New(p.N)
	return pl, pl.Close
}
