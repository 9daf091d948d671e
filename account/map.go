// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import "github.com/gagliardetto/solana-go"

// AccountMap stages a batch of accounts for a single test run, keyed by
// pubkey. Keys are unique; inserting an existing key overwrites.
type AccountMap struct {
	accounts map[solana.PublicKey]Account
}

// NewAccountMap returns an empty map.
func NewAccountMap() *AccountMap {
	return &AccountMap{
		accounts: make(map[solana.PublicKey]Account),
	}
}

// Pair is a (pubkey, account) entry used for bulk construction.
type Pair struct {
	Pubkey  solana.PublicKey
	Account Account
}

// AccountMapFromPairs bulk-constructs a map, equivalent to repeated
// SetAccount calls.
func AccountMapFromPairs(pairs []Pair) *AccountMap {
	m := NewAccountMap()
	for _, p := range pairs {
		m.SetAccount(p.Pubkey, p.Account)
	}
	return m
}

// SetAccount upserts an account under pubkey.
func (m *AccountMap) SetAccount(pubkey solana.PublicKey, acct Account) {
	m.accounts[pubkey] = acct
}

// AddWithBuilder builds the given builder and upserts the result. Build
// errors are propagated and leave the map unchanged.
func (m *AccountMap) AddWithBuilder(pubkey solana.PublicKey, b AccountBuilder) error {
	acct, err := b.TryBuild()
	if err != nil {
		return err
	}
	m.accounts[pubkey] = acct
	return nil
}

// GetAccount returns the account under pubkey, if present.
func (m *AccountMap) GetAccount(pubkey solana.PublicKey) (Account, bool) {
	acct, ok := m.accounts[pubkey]
	return acct, ok
}

// RemoveAccount deletes and returns the account under pubkey, if present.
func (m *AccountMap) RemoveAccount(pubkey solana.PublicKey) (Account, bool) {
	acct, ok := m.accounts[pubkey]
	if ok {
		delete(m.accounts, pubkey)
	}
	return acct, ok
}

// Iter calls f for every (pubkey, account) pair until f returns false.
// Order is unspecified. Iteration may be restarted by calling Iter again.
func (m *AccountMap) Iter(f func(pubkey solana.PublicKey, acct Account) bool) {
	for pubkey, acct := range m.accounts {
		if !f(pubkey, acct) {
			return
		}
	}
}

// Merge consumes other's entries into m. On key collision other's entry
// wins, so callers can layer per-test overrides on top of a base fixture.
func (m *AccountMap) Merge(other *AccountMap) {
	for pubkey, acct := range other.accounts {
		m.accounts[pubkey] = acct
	}
}

// Filter returns a new map containing only the entries for which predicate
// holds. The receiver is not mutated.
func (m *AccountMap) Filter(predicate func(pubkey solana.PublicKey, acct Account) bool) *AccountMap {
	filtered := NewAccountMap()
	for pubkey, acct := range m.accounts {
		if predicate(pubkey, acct) {
			filtered.accounts[pubkey] = acct
		}
	}
	return filtered
}

// Len returns the number of staged accounts.
func (m *AccountMap) Len() int {
	return len(m.accounts)
}

// IsEmpty reports whether the map holds no accounts.
func (m *AccountMap) IsEmpty() bool {
	return len(m.accounts) == 0
}
