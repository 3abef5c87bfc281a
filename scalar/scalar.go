// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

// Package scalar defines the capability set a coefficient type must
// support to participate in the LU factorization: zero, one, negation,
// addition, multiplication, multiplicative inverse, absolute value, and a
// total order on |x|. Native Go arithmetic already gives us +, -, *, and
// unary - for every type in Scalar, so this package only supplies the
// handful of operations Go doesn't spell with an operator: Inv, Abs, and
// Conj, dispatched once per call via a type switch over any() rather
// than per-element reflection.
package scalar

import "math/cmplx"

// Real is the constraint for native floating-point scalars.
type Real interface {
	~float32 | ~float64
}

// Complex is the constraint for native complex scalars.
type Complex interface {
	~complex64 | ~complex128
}

// Scalar is the full constraint accepted by the LU core: real or complex,
// single or double precision.
type Scalar interface {
	Real | Complex
}

// Inv returns the multiplicative inverse of x. For a zero pivot this
// produces ±Inf (real, by the sign of the zero) or a complex value with infinite components: the
// factorization does not special-case a zero pivot, it lets the
// division propagate and callers inspect the U diagonal.
func Inv[T Scalar](x T) T {
	var one T = One[T]()
	return any(divide(any(one), any(x))).(T)
}

func divide(a, b any) any {
	switch av := a.(type) {
	case float32:
		return av / b.(float32)
	case float64:
		return av / b.(float64)
	case complex64:
		return av / b.(complex64)
	case complex128:
		return av / b.(complex128)
	}
	panic("scalar: unsupported type")
}

// Zero returns the additive identity for T.
func Zero[T Scalar]() T {
	var z T
	return z
}

// One returns the multiplicative identity for T.
func One[T Scalar]() T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32(1)).(T)
	case float64:
		return any(float64(1)).(T)
	case complex64:
		return any(complex64(1)).(T)
	case complex128:
		return any(complex128(1)).(T)
	}
	panic("scalar: unsupported type")
}

// Abs returns |x| as a float64, the universal magnitude type used
// throughout the LU core for pivot comparisons and the max-norm
// reduction. Using float64 regardless of T's precision costs nothing
// observable: an up-cast float32->float64 magnitude is exact, and it
// lets the pivot search's running-winner bookkeeping stay monomorphic
// instead of threading a second type parameter everywhere.
func Abs[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return absF64(float64(v))
	case float64:
		return absF64(v)
	case complex64:
		return cmplx.Abs(complex128(v))
	case complex128:
		return cmplx.Abs(v)
	}
	panic("scalar: unsupported type")
}

func absF64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Conj returns the complex conjugate of x, or x unchanged for real types.
func Conj[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(v).(T)
	case float64:
		return any(v).(T)
	case complex64:
		return any(complex64(cmplx.Conj(complex128(v)))).(T)
	case complex128:
		return any(cmplx.Conj(v)).(T)
	}
	panic("scalar: unsupported type")
}

// IsComplex reports whether T is one of the complex scalar types.
func IsComplex[T Scalar]() bool {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return true
	default:
		return false
	}
}

// ConjIf returns Conj(x) if cond is true, x otherwise. This is the
// building block for the solve driver's conjugation flags: callers
// never materialize a conjugated copy of a whole matrix, they apply
// ConjIf element-by-element as values are read.
func ConjIf[T Scalar](x T, cond bool) T {
	if cond {
		return Conj(x)
	}
	return x
}
