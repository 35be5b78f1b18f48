package template

import (
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/goodnatureofminers/yody-staker/internal/staker/delegation"
	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

var ErrUnknownKey = errors.New("unknown signing key")

// Keyring is an in-memory Signer.
type Keyring struct {
	mu   sync.RWMutex
	keys map[model.KeyID]*btcec.PrivateKey
}

// NewKeyring constructs an empty Keyring.
func NewKeyring() *Keyring {
	return &Keyring{keys: make(map[model.KeyID]*btcec.PrivateKey)}
}

// ImportWIF adds a key in wallet import format and returns its key id.
func (k *Keyring) ImportWIF(wif string) (model.KeyID, error) {
	decoded, err := btcutil.DecodeWIF(wif)
	if err != nil {
		return model.KeyID{}, fmt.Errorf("decode wif: %w", err)
	}
	if !decoded.CompressPubKey {
		return model.KeyID{}, fmt.Errorf("uncompressed keys are not supported")
	}
	return k.Add(decoded.PrivKey), nil
}

// Add stores key and returns its key id.
func (k *Keyring) Add(key *btcec.PrivateKey) model.KeyID {
	id := delegation.KeyIDOf(key.PubKey())
	k.mu.Lock()
	k.keys[id] = key
	k.mu.Unlock()
	return id
}

func (k *Keyring) key(id model.KeyID) (*btcec.PrivateKey, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	key, ok := k.keys[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, id)
	}
	return key, nil
}

// PublicKey returns the public key of id.
func (k *Keyring) PublicKey(id model.KeyID) (*btcec.PublicKey, error) {
	key, err := k.key(id)
	if err != nil {
		return nil, err
	}
	return key.PubKey(), nil
}

// SignCompact returns a recoverable signature over hash.
func (k *Keyring) SignCompact(id model.KeyID, hash chainhash.Hash) ([]byte, error) {
	key, err := k.key(id)
	if err != nil {
		return nil, err
	}
	return ecdsa.SignCompact(key, hash[:], true), nil
}

// SignDER returns a DER signature over hash.
func (k *Keyring) SignDER(id model.KeyID, hash []byte) ([]byte, error) {
	key, err := k.key(id)
	if err != nil {
		return nil, err
	}
	return ecdsa.Sign(key, hash).Serialize(), nil
}
