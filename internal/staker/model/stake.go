package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// StakeModifier is the per-block entropy mixed into every kernel hash.
type StakeModifier = chainhash.Hash

// UnspentOutput is a coin that may be staked.
type UnspentOutput struct {
	OutPoint   wire.OutPoint
	Value      int64
	PkScript   []byte
	Depth      uint32
	OriginTime uint32
	Owner      KeyID
}

// Eligible reports whether the output is mature and large enough to stake.
func (u UnspentOutput) Eligible(maturity uint32, minValue int64) bool {
	return u.Depth >= maturity && u.Value > 0 && u.Value >= minValue
}

// KernelProof is a winning (output, timestamp) pair.
type KernelProof struct {
	Output    UnspentOutput
	Timestamp uint32
	Hash      chainhash.Hash
}

// TipSnapshot is the chain state a template is built on. Bits is the target of the block being
// built.
type TipSnapshot struct {
	Hash      chainhash.Hash
	Height    uint64
	Time      uint32
	Bits      uint32
	Modifier  StakeModifier
	StateRoot chainhash.Hash
	UTXORoot  chainhash.Hash
}

// NextHeight is the height of the block being built.
func (t TipSnapshot) NextHeight() uint64 {
	return t.Height + 1
}
