// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import "errors"

var (
	// ErrMissingOwner is reserved for callers that bypass default owner
	// resolution; the builder itself always resolves an owner.
	ErrMissingOwner = errors.New("account owner must be set")

	ErrMissingPubkey       = errors.New("account pubkey must be set")
	ErrInvalidEncoding     = errors.New("invalid data encoding")
	ErrInsufficientBalance = errors.New("balance below rent-exempt minimum")
)
