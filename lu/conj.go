// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

// Conjugation selects whether a solve step uses a factor as stored or
// its elementwise complex conjugate, without ever materializing the
// conjugate. It is a no-op on real scalar types.
type Conjugation bool

const (
	// No uses the factor as stored.
	No Conjugation = false
	// Yes uses the elementwise conjugate of the factor.
	Yes Conjugation = true
)

func (c Conjugation) bool() bool { return bool(c) }
