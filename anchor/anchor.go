// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package anchor builds fixtures matching the Anchor framework's on-wire
// layout. Anchor identifies account types and instruction methods with an
// 8-byte discriminator: the first 8 bytes of the SHA-256 digest of
// "account:{type}" and "global:{method}" respectively. The helpers here
// keep that convention out of individual call sites.
package anchor

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/solana-toolkit/accountgen/account"
	"github.com/solana-toolkit/accountgen/serialization"
)

// DiscriminatorLen is the length of an Anchor discriminator.
const DiscriminatorLen = 8

// ErrDataTooShort marks account data too short to carry a discriminator.
// It is always returned wrapped in [serialization.ErrDeserialization].
var ErrDataTooShort = errors.New("account data too short for anchor discriminator")

// AccountDiscriminator returns the discriminator for an account type name.
func AccountDiscriminator(accountType string) [DiscriminatorLen]byte {
	return sha256First8("account:" + accountType)
}

// MethodDiscriminator returns the discriminator for an instruction method
// name.
func MethodDiscriminator(methodName string) [DiscriminatorLen]byte {
	return sha256First8("global:" + methodName)
}

func sha256First8(s string) [DiscriminatorLen]byte {
	h := sha256.Sum256([]byte(s))
	var disc [DiscriminatorLen]byte
	copy(disc[:], h[:DiscriminatorLen])
	return disc
}

// CreateAccount builds an account whose data is the account-type
// discriminator followed by the Borsh encoding of v.
func CreateAccount(
	accountType string,
	programID solana.PublicKey,
	v any,
	lamports uint64,
) (account.Account, error) {
	data, err := taggedData(AccountDiscriminator(accountType), v)
	if err != nil {
		return account.Account{}, err
	}

	return account.NewAccountBuilder().
		Balance(lamports).
		Owner(programID).
		DataRaw(data).
		TryBuild()
}

// CreateInstruction builds an instruction whose data is the method
// discriminator followed by the Borsh encoding of v. The account metas are
// passed through verbatim.
func CreateInstruction(
	programID solana.PublicKey,
	methodName string,
	accounts []*solana.AccountMeta,
	v any,
) (*solana.GenericInstruction, error) {
	data, err := taggedData(MethodDiscriminator(methodName), v)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(programID, accounts, data), nil
}

// CreatePDA derives the program address for seeds under programID and
// builds an Anchor account there, combining [account.CreatePDA] address
// derivation with discriminator tagging.
func CreatePDA(
	accountType string,
	programID solana.PublicKey,
	seeds [][]byte,
	v any,
	lamports uint64,
) (solana.PublicKey, uint8, account.Account, error) {
	pda, bump, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, 0, account.Account{}, err
	}

	acct, err := CreateAccount(accountType, programID, v, lamports)
	if err != nil {
		return solana.PublicKey{}, 0, account.Account{}, err
	}

	return pda, bump, acct, nil
}

// DeserializeAccount decodes an Anchor account's state, skipping the
// 8-byte discriminator. It fails with [ErrDataTooShort] if the data cannot
// hold a discriminator and any payload.
func DeserializeAccount[T any](acct account.Account) (T, error) {
	var state T
	if len(acct.Data) <= DiscriminatorLen {
		return state, fmt.Errorf("%w: %w: %d bytes", serialization.ErrDeserialization, ErrDataTooShort, len(acct.Data))
	}
	if err := serialization.Borsh.Decode(acct.Data[DiscriminatorLen:], &state); err != nil {
		return state, err
	}
	return state, nil
}

func taggedData(disc [DiscriminatorLen]byte, v any) ([]byte, error) {
	payload, err := serialization.Borsh.Encode(v)
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, DiscriminatorLen+len(payload))
	data = append(data, disc[:]...)
	data = append(data, payload...)
	return data, nil
}
