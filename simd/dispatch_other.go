// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

//go:build !amd64 && !arm64

package simd

// init falls back to the scalar path on architectures with no lane
// abstraction wired up yet.
func init() {
	setScalarMode()
}
