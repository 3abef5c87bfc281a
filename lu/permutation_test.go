// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu_test

import (
	"testing"

	"github.com/kjellberg/fulllu/lu"
	"github.com/stretchr/testify/require"
)

func TestMaterializePermutationIdentity(t *testing.T) {
	t_ := identitySeq(5)
	perm := make([]int, 5)
	inv := make([]int, 5)
	lu.MaterializePermutation(t_, perm, inv)
	for i := 0; i < 5; i++ {
		require.Equal(t, i, perm[i])
		require.Equal(t, i, inv[i])
	}
}

func TestMaterializePermutationSingleSwap(t *testing.T) {
	// Step 0 swaps row 0 with row 3; all later steps are no-ops.
	trans := []int{3, 1, 2, 3}
	perm := make([]int, 4)
	inv := make([]int, 4)
	lu.MaterializePermutation(trans, perm, inv)

	requireBijection(t, perm, inv)
	require.Equal(t, []int{3, 1, 2, 0}, perm)
}

func TestMaterializePermutationChainedSwaps(t *testing.T) {
	// 0<->2 at step 0, then 1<->3 at step 1.
	trans := []int{2, 3, 2, 3}
	perm := make([]int, 4)
	inv := make([]int, 4)
	lu.MaterializePermutation(trans, perm, inv)
	requireBijection(t, perm, inv)
}
