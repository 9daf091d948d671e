// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"encoding/base64"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/solana-toolkit/accountgen/rent"
	"github.com/solana-toolkit/accountgen/serialization"
)

// AccountBuilder is a fluent configuration for a mock [Account].
//
// It has value semantics: every setter returns an updated copy, so a
// partially configured builder can be reused as a template. Setters never
// fail; [AccountBuilder.Data] and [AccountBuilder.DataFromBase64] record
// their error in the builder and the build methods surface it.
type AccountBuilder struct {
	pubkey     solana.PublicKey
	hasPubkey  bool
	lamports   uint64
	hasBalance bool
	owner      solana.PublicKey
	hasOwner   bool
	executable bool
	rentEpoch  uint64
	data       []byte
	err        error
}

// NewAccountBuilder returns a builder in the all-default state.
func NewAccountBuilder() AccountBuilder {
	return AccountBuilder{}
}

// Pubkey sets the address the account will be registered under.
func (b AccountBuilder) Pubkey(pubkey solana.PublicKey) AccountBuilder {
	b.pubkey = pubkey
	b.hasPubkey = true
	return b
}

// Balance sets the account balance in lamports.
func (b AccountBuilder) Balance(lamports uint64) AccountBuilder {
	b.lamports = lamports
	b.hasBalance = true
	return b
}

// Owner sets the program allowed to mutate the account.
func (b AccountBuilder) Owner(owner solana.PublicKey) AccountBuilder {
	b.owner = owner
	b.hasOwner = true
	return b
}

// Executable marks the account as an executable program account.
func (b AccountBuilder) Executable(executable bool) AccountBuilder {
	b.executable = executable
	return b
}

// RentEpoch sets the rent epoch bookkeeping field.
func (b AccountBuilder) RentEpoch(rentEpoch uint64) AccountBuilder {
	b.rentEpoch = rentEpoch
	return b
}

// DataRaw sets the account data to the given bytes verbatim.
func (b AccountBuilder) DataRaw(data []byte) AccountBuilder {
	b.data = data
	return b
}

// Data sets the account data to the Borsh encoding of v.
func (b AccountBuilder) Data(v any) AccountBuilder {
	data, err := serialization.Borsh.Encode(v)
	if err != nil {
		b.err = err
		return b
	}
	b.data = data
	return b
}

// DataFromBase64 sets the account data to the decoding of text.
func (b AccountBuilder) DataFromBase64(text string) AccountBuilder {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		b.err = fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		return b
	}
	b.data = data
	return b
}

// TryBuild resolves defaults and returns the finished account.
//
// An unset owner resolves to the system program and an unset balance
// resolves to the rent-exempt minimum for the configured data length, so
// TryBuild fails only if a prior Data call failed to serialize.
func (b AccountBuilder) TryBuild() (Account, error) {
	if b.err != nil {
		return Account{}, b.err
	}

	owner := b.owner
	if !b.hasOwner {
		owner = solana.SystemProgramID
	}
	lamports := b.lamports
	if !b.hasBalance {
		lamports = rent.MinimumBalance(len(b.data))
	}
	// Copy so mutating a built account never reaches back into the
	// builder or into sibling accounts built from the same template.
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return Account{
		Lamports:   lamports,
		Owner:      owner,
		Executable: b.executable,
		RentEpoch:  b.rentEpoch,
		Data:       data,
	}, nil
}

// Build is the strict variant of [AccountBuilder.TryBuild]. It panics if a
// prior Data call failed; under valid inputs the two are identical.
func (b AccountBuilder) Build() Account {
	acct, err := b.TryBuild()
	if err != nil {
		panic(err)
	}
	return acct
}

// TryBuildWithPubkey is TryBuild for callers that also need the address the
// account was configured under. It fails with [ErrMissingPubkey] if Pubkey
// was never set.
func (b AccountBuilder) TryBuildWithPubkey() (solana.PublicKey, Account, error) {
	if !b.hasPubkey {
		return solana.PublicKey{}, Account{}, ErrMissingPubkey
	}
	acct, err := b.TryBuild()
	if err != nil {
		return solana.PublicKey{}, Account{}, err
	}
	return b.pubkey, acct, nil
}

// TryBuildRentExempt is TryBuild with the rent floor enforced: an explicit
// balance below the rent-exempt minimum for the configured data length
// fails with [ErrInsufficientBalance].
func (b AccountBuilder) TryBuildRentExempt() (Account, error) {
	acct, err := b.TryBuild()
	if err != nil {
		return Account{}, err
	}
	if min := rent.MinimumBalance(len(acct.Data)); acct.Lamports < min {
		return Account{}, fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, acct.Lamports, min)
	}
	return acct, nil
}

// CreatePDA derives the program address for seeds under programID and
// builds an account at that address owned by programID, with the Borsh
// encoding of v as data. The (address, bump) pair is exactly what
// [solana.FindProgramAddress] returns for the same inputs.
func CreatePDA(
	programID solana.PublicKey,
	seeds [][]byte,
	balance uint64,
	v any,
) (solana.PublicKey, uint8, Account, error) {
	pda, bump, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, 0, Account{}, err
	}

	acct, err := NewAccountBuilder().
		Balance(balance).
		Owner(programID).
		Data(v).
		TryBuild()
	if err != nil {
		return solana.PublicKey{}, 0, Account{}, err
	}

	return pda, bump, acct, nil
}
