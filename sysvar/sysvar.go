// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sysvar builds mock sysvar accounts. Sysvar data uses the
// ledger's fixed little-endian layout, so each sysvar type here is encoded
// with the binary codec rather than Borsh.
package sysvar

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/solana-toolkit/accountgen/account"
)

// Owner is the program that owns all sysvar accounts.
var Owner = solana.MustPublicKeyFromBase58("Sysvar1111111111111111111111111111111111111")

// Clock mirrors the Clock sysvar.
type Clock struct {
	Slot                uint64
	EpochStartTimestamp int64
	Epoch               uint64
	LeaderScheduleEpoch uint64
	UnixTimestamp       int64
}

// Rent mirrors the Rent sysvar.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  float64
	BurnPercent         uint8
}

// ClockAccount builds the account registered at [solana.SysVarClockPubkey].
func ClockAccount(clock Clock) (account.Account, error) {
	return sysvarAccount(clock)
}

// RentAccount builds the account registered at [solana.SysVarRentPubkey].
func RentAccount(rent Rent) (account.Account, error) {
	return sysvarAccount(rent)
}

func sysvarAccount(v any) (account.Account, error) {
	var buf bytes.Buffer
	if err := bin.NewBinEncoder(&buf).Encode(v); err != nil {
		return account.Account{}, err
	}

	return account.NewAccountBuilder().
		Balance(1).
		Owner(Owner).
		DataRaw(buf.Bytes()).
		TryBuild()
}
