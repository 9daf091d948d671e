// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package serialization defines the payload codecs supported by the fixture
// builders. Borsh is the primary format and matches the ledger's canonical
// on-chain encoding; JSON is a secondary textual format used for tooling
// interchange. Both are part of this library's public contract.
package serialization

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/near/borsh-go"
)

// Codec encodes and decodes typed payloads to and from account data buffers.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

var (
	// Borsh is the compact binary codec used for on-chain account data.
	Borsh Codec = borshCodec{}
	// JSON is the textual codec used for CLI and tooling round-trips.
	JSON Codec = jsonCodec{}
)

type borshCodec struct{}

func (borshCodec) Encode(v any) ([]byte, error) {
	// borsh-go silently emits nothing for kinds outside the Borsh data
	// model, so unencodable topologies are rejected here.
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrSerialization)
	}
	if err := checkBorshable(reflect.TypeOf(v), make(map[reflect.Type]bool)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	data, err := borsh.Serialize(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return data, nil
}

// checkBorshable walks a type and rejects kinds the Borsh data model
// cannot represent. seen guards against recursive types.
func checkBorshable(t reflect.Type, seen map[reflect.Type]bool) error {
	if seen[t] {
		return nil
	}
	seen[t] = true

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return nil
	case reflect.Ptr, reflect.Slice, reflect.Array:
		return checkBorshable(t.Elem(), seen)
	case reflect.Map:
		if err := checkBorshable(t.Key(), seen); err != nil {
			return err
		}
		return checkBorshable(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.PkgPath != "" || field.Tag.Get("borsh_skip") == "true" {
				continue
			}
			if err := checkBorshable(field.Type, seen); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported kind: %s", t.Kind())
	}
}

func (borshCodec) Decode(data []byte, v any) error {
	if err := borsh.Deserialize(v, data); err != nil {
		return fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	return nil
}

type jsonCodec struct{}

func (jsonCodec) Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return data, nil
}

func (jsonCodec) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	return nil
}
