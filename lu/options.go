// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

// Options carries optional, purely-additive instrumentation for
// LUInPlace. The zero value disables every hook and costs nothing.
type Options struct {
	// OnPivot, if non-nil, is invoked once per pivot choice — once for
	// the pre-loop pivot (step 0) and once per elimination step k+1
	// thereafter — with the (row, col) chosen and its magnitude, before
	// the corresponding row/column swap is applied. It exists so a test
	// can observe pivot maximality (that |U[k,k]| really was the max of
	// the trailing submatrix just before scaling) without re-deriving it
	// from the finished factorization.
	OnPivot func(step, row, col int, value float64)
}

func (o *Options) notifyPivot(step, row, col int, value float64) {
	if o != nil && o.OnPivot != nil {
		o.OnPivot(step, row, col, value)
	}
}
