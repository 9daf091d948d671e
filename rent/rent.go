// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rent computes minimum balances under the ledger's storage-cost
// convention. Accounts funded at or above [MinimumBalance] for their data
// length are exempt from rent collection.
package rent

const (
	// LamportsPerByteYear is the mainnet default storage cost.
	LamportsPerByteYear uint64 = 3480

	// ExemptionThreshold is the number of years of rent an account must
	// hold to be exempt.
	ExemptionThreshold uint64 = 2

	// AccountStorageOverhead is charged on top of the data length to
	// cover account metadata.
	AccountStorageOverhead uint64 = 128
)

// MinimumBalance returns the smallest lamport balance that makes an account
// with [dataLen] bytes of data rent-exempt.
func MinimumBalance(dataLen int) uint64 {
	return (AccountStorageOverhead + uint64(dataLen)) * LamportsPerByteYear * ExemptionThreshold
}
