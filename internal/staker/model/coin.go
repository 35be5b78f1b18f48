// Package model defines domain models for proof-of-stake block production.
package model

import (
	"encoding/hex"
	"fmt"
)

type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)

// KeyID is the HASH160 of a compressed public key.
type KeyID [20]byte

// KeyIDFromBytes copies a 20-byte slice into a KeyID.
func KeyIDFromBytes(b []byte) (KeyID, error) {
	var id KeyID
	if len(b) != len(id) {
		return id, fmt.Errorf("key id must be %d bytes, got %d", len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

func (k KeyID) String() string {
	return hex.EncodeToString(k[:])
}

// IsZero reports whether the key id is unset.
func (k KeyID) IsZero() bool {
	return k == KeyID{}
}
