// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serialization

import "errors"

var (
	ErrSerialization   = errors.New("failed to serialize data")
	ErrDeserialization = errors.New("failed to deserialize data")
)
