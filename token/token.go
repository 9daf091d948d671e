// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package token builds mock SPL token accounts using the token program's
// packed 165-byte account layout.
package token

import (
	"bytes"
	"encoding/binary"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/solana-toolkit/accountgen/account"
	"github.com/solana-toolkit/accountgen/rent"
)

// AccountLen is the packed size of an SPL token account.
const AccountLen = 165

const stateInitialized = 1

// CreateTokenAccount builds an initialized token account holding amount of
// mint, owned by owner, with a rent-exempt balance. tokenProgramID becomes
// the account owner on the ledger; pass [solana.TokenProgramID] unless a
// test targets a forked token program.
func CreateTokenAccount(
	mint solana.PublicKey,
	owner solana.PublicKey,
	amount uint64,
	tokenProgramID solana.PublicKey,
) (account.Account, error) {
	data, err := packTokenAccount(mint, owner, amount)
	if err != nil {
		return account.Account{}, err
	}

	return account.NewAccountBuilder().
		Balance(rent.MinimumBalance(AccountLen)).
		Owner(tokenProgramID).
		DataRaw(data).
		TryBuild()
}

// packTokenAccount writes the token program's fixed account layout. COption
// fields occupy their full width whether set or not: a 4 byte tag followed
// by the (possibly zeroed) value.
func packTokenAccount(mint, owner solana.PublicKey, amount uint64) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(AccountLen)
	enc := bin.NewBinEncoder(buf)

	if err := enc.WriteBytes(mint.Bytes(), false); err != nil {
		return nil, err
	}
	if err := enc.WriteBytes(owner.Bytes(), false); err != nil {
		return nil, err
	}
	if err := enc.WriteUint64(amount, binary.LittleEndian); err != nil {
		return nil, err
	}
	// delegate: COption::None
	if err := writeNoneOption(enc, 32); err != nil {
		return nil, err
	}
	if err := enc.WriteByte(stateInitialized); err != nil {
		return nil, err
	}
	// is_native: COption::None
	if err := writeNoneOption(enc, 8); err != nil {
		return nil, err
	}
	// delegated_amount
	if err := enc.WriteUint64(0, binary.LittleEndian); err != nil {
		return nil, err
	}
	// close_authority: COption::None
	if err := writeNoneOption(enc, 32); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeNoneOption(enc *bin.Encoder, valueLen int) error {
	if err := enc.WriteUint32(0, binary.LittleEndian); err != nil {
		return err
	}
	return enc.WriteBytes(make([]byte, valueLen), false)
}
