// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/solana-toolkit/accountgen/serialization"
)

func TestMapSetGetRemove(t *testing.T) {
	require := require.New(t)

	m := NewAccountMap()
	require.True(m.IsEmpty())

	pubkey := solana.NewWallet().PublicKey()
	first := NewAccountBuilder().Balance(1).Build()
	second := NewAccountBuilder().Balance(2).Build()

	m.SetAccount(pubkey, first)
	m.SetAccount(pubkey, second) // upsert overwrites
	require.Equal(1, m.Len())

	got, ok := m.GetAccount(pubkey)
	require.True(ok)
	require.Equal(uint64(2), got.Lamports)

	removed, ok := m.RemoveAccount(pubkey)
	require.True(ok)
	require.Equal(uint64(2), removed.Lamports)
	require.True(m.IsEmpty())

	_, ok = m.GetAccount(pubkey)
	require.False(ok)
}

func TestMapAddWithBuilder(t *testing.T) {
	require := require.New(t)

	m := NewAccountMap()
	pubkey := solana.NewWallet().PublicKey()

	err := m.AddWithBuilder(pubkey, NewAccountBuilder().Data(struct{ C chan int }{}))
	require.ErrorIs(err, serialization.ErrSerialization)
	require.True(m.IsEmpty())

	require.NoError(m.AddWithBuilder(pubkey, NewAccountBuilder().Balance(500)))
	require.Equal(1, m.Len())
}

func TestMapMergeOtherWins(t *testing.T) {
	require := require.New(t)

	shared := solana.NewWallet().PublicKey()
	only := solana.NewWallet().PublicKey()

	base := NewAccountMap()
	base.SetAccount(shared, NewAccountBuilder().Balance(100).Build())

	overrides := NewAccountMap()
	overrides.SetAccount(shared, NewAccountBuilder().Balance(999).Build())
	overrides.SetAccount(only, NewAccountBuilder().Balance(1).Build())

	base.Merge(overrides)
	require.Equal(2, base.Len())

	got, ok := base.GetAccount(shared)
	require.True(ok)
	require.Equal(uint64(999), got.Lamports)
}

func TestMapFilter(t *testing.T) {
	require := require.New(t)

	m := NewAccountMap()
	m.SetAccount(solana.NewWallet().PublicKey(), NewAccountBuilder().Balance(100).Build())
	m.SetAccount(solana.NewWallet().PublicKey(), NewAccountBuilder().Balance(200).Build())

	filtered := m.Filter(func(_ solana.PublicKey, acct Account) bool {
		return acct.Lamports > 150
	})
	require.Equal(1, filtered.Len())
	require.Equal(2, m.Len()) // source untouched
}

func TestMapIterRestartable(t *testing.T) {
	require := require.New(t)

	m := AccountMapFromPairs([]Pair{
		{Pubkey: solana.NewWallet().PublicKey(), Account: NewAccountBuilder().Build()},
		{Pubkey: solana.NewWallet().PublicKey(), Account: NewAccountBuilder().Build()},
		{Pubkey: solana.NewWallet().PublicKey(), Account: NewAccountBuilder().Build()},
	})

	for i := 0; i < 2; i++ {
		seen := 0
		m.Iter(func(solana.PublicKey, Account) bool {
			seen++
			return true
		})
		require.Equal(3, seen)
	}

	// Early termination stops the walk.
	seen := 0
	m.Iter(func(solana.PublicKey, Account) bool {
		seen++
		return false
	})
	require.Equal(1, seen)
}
