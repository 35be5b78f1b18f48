package template

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"

	"github.com/goodnatureofminers/yody-staker/internal/staker/kernel"
	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/internal/staker/reward"
	"github.com/goodnatureofminers/yody-staker/pkg/safe"
)

var ErrInvalidBlock = errors.New("invalid block")

// ValidationContext is the chain state a block is checked against.
type ValidationContext struct {
	Modifier model.StakeModifier
	Bits     uint32
	Mask     uint32
	Staker   model.KeyID
	Auth     BlockAuthorizer
}

// Validate checks a signed block: structure, kernel proof, merkle root, block signature with any
// proof of delegation, and that the coinstake creates no more than the input plus reward pool.
func Validate(sb *model.SignedBlock, vc ValidationContext) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidBlock, fmt.Sprintf(format, args...))
	}

	txs := sb.Block.Transactions
	if len(txs) < 2 {
		return invalid("%d transactions", len(txs))
	}
	if !blockchain.IsCoinBaseTx(txs[0]) {
		return invalid("first transaction is not a coinbase")
	}
	if !isCoinstake(txs[1]) {
		return invalid("second transaction is not a coinstake")
	}
	if uint32(sb.Block.Header.Timestamp.Unix()) != sb.Proof.Timestamp {
		return invalid("header time %d, kernel time %d", sb.Block.Header.Timestamp.Unix(), sb.Proof.Timestamp)
	}
	if sb.PrevoutStake != sb.Proof.Output.OutPoint {
		return invalid("prevout stake %s, kernel %s", sb.PrevoutStake, sb.Proof.Output.OutPoint)
	}
	if err := kernel.CheckProof(vc.Modifier, vc.Bits, vc.Mask, sb.Proof); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}
	if root := merkleRoot(txs); root != sb.Block.Header.MerkleRoot {
		return invalid("merkle root %s, want %s", sb.Block.Header.MerkleRoot, root)
	}

	var delegator *model.KeyID
	switch {
	case sb.Delegation != nil:
		if sb.Delegation.Delegator != sb.Proof.Output.Owner {
			return invalid("delegation from %s, kernel owned by %s", sb.Delegation.Delegator, sb.Proof.Output.Owner)
		}
		delegator = &sb.Delegation.Delegator
	case sb.Proof.Output.Owner != vc.Staker:
		return invalid("kernel owned by %s without delegation", sb.Proof.Output.Owner)
	}
	if err := vc.Auth.VerifyBlockSignature(sb.SigHash(), sb.Signature, vc.Staker, delegator); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}

	var created int64
	for _, out := range txs[1].TxOut {
		var err error
		if created, err = safe.AddInt64(created, out.Value); err != nil {
			return invalid("coinstake value: %v", err)
		}
	}
	paid, err := reward.Total(sb.Payouts)
	if err != nil || paid != created {
		return invalid("coinstake creates %d, payouts total %d", created, paid)
	}
	limit, err := safe.SumInt64(sb.InputValue, sb.Subsidy, sb.Fees)
	if err != nil {
		return invalid("reward limit: %v", err)
	}
	if created > limit {
		return invalid("coinstake creates %d, limit %d", created, limit)
	}
	return nil
}
