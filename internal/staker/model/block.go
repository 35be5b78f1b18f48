package model

import (
	"bytes"
	"encoding/binary"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Payout is a single coinstake output.
type Payout struct {
	Amount int64
	Script []byte
}

// SignedBlock is a candidate block ready for submission. The header extends the bitcoin header
// with the contract state roots, the kernel outpoint and the block signature.
type SignedBlock struct {
	Block        *wire.MsgBlock
	StateRoot    chainhash.Hash
	UTXORoot     chainhash.Hash
	PrevoutStake wire.OutPoint
	Signature    []byte

	Height       uint64
	Proof        KernelProof
	InputValue   int64
	Payouts      []Payout
	Fees         int64
	Subsidy      int64
	GasUsed      uint64
	NextModifier StakeModifier
	Delegation   *DelegationRecord
}

// Hash is the hash of the full header, signature included.
func (b *SignedBlock) Hash() chainhash.Hash {
	var buf bytes.Buffer
	_ = b.writeHeader(&buf, true)
	return chainhash.DoubleHashH(buf.Bytes())
}

// SigHash is the digest the staker signs: the header without its signature.
func (b *SignedBlock) SigHash() chainhash.Hash {
	var buf bytes.Buffer
	_ = b.writeHeader(&buf, false)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Serialize writes the block in network encoding.
func (b *SignedBlock) Serialize(w io.Writer) error {
	if err := b.writeHeader(w, true); err != nil {
		return err
	}
	if err := wire.WriteVarInt(w, 0, uint64(len(b.Block.Transactions))); err != nil {
		return err
	}
	for _, tx := range b.Block.Transactions {
		if err := tx.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

// Bytes is Serialize into a new slice.
func (b *SignedBlock) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *SignedBlock) writeHeader(w io.Writer, withSig bool) error {
	if err := b.Block.Header.Serialize(w); err != nil {
		return err
	}
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], b.PrevoutStake.Index)
	for _, chunk := range [][]byte{b.StateRoot[:], b.UTXORoot[:], b.PrevoutStake.Hash[:], idx[:]} {
		if _, err := w.Write(chunk); err != nil {
			return err
		}
	}
	if !withSig {
		return nil
	}
	return wire.WriteVarBytes(w, 0, b.Signature)
}

// MintedBlock is a journal row for a produced block.
type MintedBlock struct {
	Network      Network
	Height       uint64
	Hash         string
	PrevHash     string
	Timestamp    time.Time
	Bits         uint32
	KernelTxID   string
	KernelIndex  uint32
	KernelValue  int64
	Subsidy      int64
	Fees         int64
	GasUsed      uint64
	TxCount      uint32
	Delegator    string
	DelegatorFee uint8
	Submitted    bool
	RejectReason string
}

// MintedPayout is a journal row for one coinstake output.
type MintedPayout struct {
	Network   Network
	Height    uint64
	BlockHash string
	Index     uint32
	Amount    int64
	ScriptHex string
}

// MintedRecord groups a block row with its payouts for batch insertion.
type MintedRecord struct {
	Block   MintedBlock
	Payouts []MintedPayout
}
