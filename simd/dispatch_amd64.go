// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// init picks the widest lane width this amd64 CPU actually supports.
func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	switch {
	case cpu.X86.HasAVX512F:
		currentLevel = Level512
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentLevel = Level256
		currentWidth = 32
	default:
		// SSE2 is part of the amd64 baseline.
		currentLevel = Level128
		currentWidth = 16
	}
}
