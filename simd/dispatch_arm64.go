// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// init picks NEON's 128-bit width on arm64. NEON (ASIMD) is part of
// the ARMv8-A baseline, so this is really just recording it rather
// than detecting anything optional.
func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	if cpu.ARM64.HasASIMD {
		currentLevel = Level128
		currentWidth = 16
		return
	}
	setScalarMode()
}
