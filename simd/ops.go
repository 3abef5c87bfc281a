// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package simd

import "math"

// Load creates a vector from the first MaxLanes[T]() elements of src.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Set creates a vector with every lane set to value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with every lane set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota creates a vector whose lane i holds start+i, used to seed the
// per-lane candidate-index accumulators in pivot.go.
func Iota(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// Add performs lane-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		out[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: out}
}

// Mul performs lane-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		out[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: out}
}

// FMA computes a*b+c lane-wise using a fused multiply-add when the
// element type supports one (float64, float32 via math.FMA).
func FMA[T Lanes](a, b, c Vec[T]) Vec[T] {
	n := min(len(c.data), min(len(a.data), len(b.data)))
	out := make([]T, n)
	for i := range n {
		out[i] = fma(a.data[i], b.data[i], c.data[i])
	}
	return Vec[T]{data: out}
}

func fma[T Lanes](a, b, c T) T {
	switch av := any(a).(type) {
	case float64:
		return any(math.FMA(av, any(b).(float64), any(c).(float64))).(T)
	case float32:
		return any(float32(math.FMA(float64(av), float64(any(b).(float32)), float64(any(c).(float32))))).(T)
	}
	panic("simd: unsupported lane type")
}

// Abs computes the lane-wise absolute value.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		if x < 0 {
			out[i] = -x
		} else {
			out[i] = x
		}
	}
	return Vec[T]{data: out}
}

// GreaterThan performs a lane-wise strict greater-than comparison. This
// is the load-bearing comparison for pivot.go's tie-break rule: a tie
// fails the strict comparison, so the incumbent (earlier-index)
// candidate is never displaced.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// IfThenElse selects lane-wise between a (mask true) and b (mask false).
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(mask.bits), min(len(a.data), len(b.data)))
	out := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// SelectIndex is IfThenElse specialized to the parallel index vector:
// it picks the candidate row index belonging to whichever of a/b value
// vector won the comparison that produced mask.
func SelectIndex(mask BoolMask, a, b []int) []int {
	n := min(len(mask.bits), min(len(a), len(b)))
	out := make([]int, n)
	for i := range n {
		if mask.bits[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// GreaterThanBits exposes the raw bit vector so callers (pivot.go) can
// reuse one Mask[T] comparison result to select both the value lane and
// its parallel index lane without recomputing the comparison.
func GreaterThanBits[T Lanes](m Mask[T]) BoolMask {
	return BoolMask{bits: m.bits}
}

// ReduceMax folds all lanes of v to their maximum value.
func ReduceMax[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var z T
		return z
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Max returns the lane-wise maximum of a and b.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		if a.data[i] > b.data[i] {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}
