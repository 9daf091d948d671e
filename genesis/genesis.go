// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package genesis stages accounts that must exist before a simulated
// ledger starts. The collection is handed to the test environment at its
// start boundary; registration after that boundary is not supported.
package genesis

import (
	"github.com/gagliardetto/solana-go"

	"github.com/solana-toolkit/accountgen/account"
)

// Accounts is a staging collection of genesis accounts.
type Accounts struct {
	accounts *account.AccountMap
}

// NewAccounts returns an empty staging collection.
func NewAccounts() *Accounts {
	return &Accounts{
		accounts: account.NewAccountMap(),
	}
}

// Add stages an account under pubkey. Returns the receiver for chaining.
func (a *Accounts) Add(pubkey solana.PublicKey, acct account.Account) *Accounts {
	a.accounts.SetAccount(pubkey, acct)
	return a
}

// AddMap stages every account in m, overwriting staged entries on key
// collision.
func (a *Accounts) AddMap(m *account.AccountMap) *Accounts {
	a.accounts.Merge(m)
	return a
}

// Iter calls f for every staged (pubkey, account) pair until f returns
// false.
func (a *Accounts) Iter(f func(pubkey solana.PublicKey, acct account.Account) bool) {
	a.accounts.Iter(f)
}

// Len returns the number of staged accounts.
func (a *Accounts) Len() int {
	return a.accounts.Len()
}

// IsEmpty reports whether nothing has been staged.
func (a *Accounts) IsEmpty() bool {
	return a.accounts.IsEmpty()
}
