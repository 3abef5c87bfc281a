// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

// MaterializePermutation converts a transposition sequence t (entry i
// records the swap partner of i applied at step i, t[i] ≥ i, initial
// value i) into the forward permutation perm and its inverse inv. perm
// and inv must have the same length as t; both are overwritten in
// place. Runs in O(n).
func MaterializePermutation(t []int, perm, inv []int) {
	n := len(t)
	if len(perm) != n || len(inv) != n {
		panic("lu: permutation buffer length mismatch")
	}
	for i := 0; i < n; i++ {
		perm[i] = i
	}
	for i := 0; i < n; i++ {
		perm[i], perm[t[i]] = perm[t[i]], perm[i]
	}
	for i := 0; i < n; i++ {
		inv[perm[i]] = i
	}
}
