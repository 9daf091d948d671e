// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinimumBalance(t *testing.T) {
	require := require.New(t)

	// Mainnet values for well-known data lengths.
	require.Equal(uint64(890_880), MinimumBalance(0))
	require.Equal(uint64(1_586_880), MinimumBalance(100))
	require.Equal(uint64(2_039_280), MinimumBalance(165))
}

func TestMinimumBalanceMonotonic(t *testing.T) {
	require := require.New(t)

	prev := MinimumBalance(0)
	for dataLen := 1; dataLen <= 4096; dataLen++ {
		cur := MinimumBalance(dataLen)
		require.GreaterOrEqual(cur, prev)
		prev = cur
	}
}
