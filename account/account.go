// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package account builds mock ledger account records for program tests.
//
// The central type is [AccountBuilder], a fluent configuration value that
// resolves sensible defaults at build time: an unset owner becomes the
// system program and an unset balance becomes the rent-exempt minimum for
// the configured data length. Omitting fields in a test therefore produces
// a valid account rather than an under-funded one.
package account

import (
	"github.com/gagliardetto/solana-go"
)

// Account is a ledger account snapshot.
//
// The JSON field names match the ledger's external account representation.
type Account struct {
	Lamports   uint64           `json:"lamports"`
	Owner      solana.PublicKey `json:"owner"`
	Executable bool             `json:"executable"`
	RentEpoch  uint64           `json:"rent_epoch"`
	Data       []byte           `json:"data"`
}
