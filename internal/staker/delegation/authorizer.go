// Package delegation verifies proofs of delegation and keeps the local delegation registry.
package delegation

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

// PoDMagic prefixes every proof-of-delegation message.
const PoDMagic = "Yody Signed Message:\n"

// PoDHash is the digest a delegator signs to authorize staker.
func PoDHash(staker model.KeyID) chainhash.Hash {
	var buf bytes.Buffer
	// writes to a bytes.Buffer do not fail
	_ = wire.WriteVarString(&buf, 0, PoDMagic)
	_ = wire.WriteVarBytes(&buf, 0, staker[:])
	return chainhash.DoubleHashH(buf.Bytes())
}

// KeyIDOf is the HASH160 of a compressed public key.
func KeyIDOf(pub *btcec.PublicKey) model.KeyID {
	var id model.KeyID
	copy(id[:], btcutil.Hash160(pub.SerializeCompressed()))
	return id
}

// RecoverKeyID returns the key id that produced a compact signature over hash.
func RecoverKeyID(hash chainhash.Hash, sig []byte) (model.KeyID, error) {
	if len(sig) != model.PoDSize {
		return model.KeyID{}, fmt.Errorf("compact signature must be %d bytes, got %d", model.PoDSize, len(sig))
	}
	pub, _, err := ecdsa.RecoverCompact(sig, hash[:])
	if err != nil {
		return model.KeyID{}, fmt.Errorf("recover public key: %w", err)
	}
	return KeyIDOf(pub), nil
}

// SignPoD produces a proof of delegation from the delegator key to staker.
func SignPoD(delegator *btcec.PrivateKey, staker model.KeyID) []byte {
	h := PoDHash(staker)
	return ecdsa.SignCompact(delegator, h[:], true)
}

// Authorizer checks proofs of delegation and delegated block signatures.
type Authorizer struct{}

// NewAuthorizer constructs an Authorizer.
func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// Verify reports whether pod is delegator's signature authorizing staker.
func (a *Authorizer) Verify(delegator, staker model.KeyID, pod []byte) bool {
	return a.Check(delegator, staker, pod) == nil
}

// Check is Verify with a reason.
func (a *Authorizer) Check(delegator, staker model.KeyID, pod []byte) error {
	signer, err := RecoverKeyID(PoDHash(staker), pod)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDelegationProof, err)
	}
	if signer != delegator {
		return fmt.Errorf("%w: signed by %s, expected %s", ErrInvalidDelegationProof, signer, delegator)
	}
	return nil
}

// VerifyBlockSignature checks the staker signature over hash and, when delegator is set, the
// proof of delegation appended to it.
func (a *Authorizer) VerifyBlockSignature(hash chainhash.Hash, sig []byte, staker model.KeyID, delegator *model.KeyID) error {
	own, pod, err := SplitBlockSignature(sig, delegator != nil)
	if err != nil {
		return err
	}
	signer, err := RecoverKeyID(hash, own)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBlockSignature, err)
	}
	if signer != staker {
		return fmt.Errorf("%w: signed by %s, expected %s", ErrInvalidBlockSignature, signer, staker)
	}
	if delegator == nil {
		return nil
	}
	return a.Check(*delegator, staker, pod)
}

// JoinBlockSignature appends a proof of delegation to the staker signature.
func JoinBlockSignature(own, pod []byte) []byte {
	sig := make([]byte, 0, len(own)+len(pod))
	sig = append(sig, own...)
	return append(sig, pod...)
}

// SplitBlockSignature separates the staker signature from an appended proof of delegation.
func SplitBlockSignature(sig []byte, delegated bool) (own, pod []byte, err error) {
	want := model.PoDSize
	if delegated {
		want += model.PoDSize
	}
	if len(sig) != want {
		return nil, nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidBlockSignature, len(sig), want)
	}
	if !delegated {
		return sig, nil, nil
	}
	return sig[:model.PoDSize], sig[model.PoDSize:], nil
}
