// Package template assembles and signs proof-of-stake candidate blocks.
package template

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/delegation"
	"github.com/goodnatureofminers/yody-staker/internal/staker/kernel"
	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/internal/staker/reward"
)

var (
	// ErrNoStakerCoin means a delegated kernel was found but the staker has no coin of its own
	// to carry the coinstake.
	ErrNoStakerCoin = errors.New("no staker coin for delegated coinstake")

	zeroHash chainhash.Hash
)

// Params configures block assembly.
type Params struct {
	BlockVersion int32
	// SearchWindow bounds how far back from now kernel timestamps are tried.
	SearchWindow time.Duration
	// FutureDrift is how far past now a block timestamp may be.
	FutureDrift time.Duration
	Subsidy     reward.SubsidyParams
}

// DefaultParams are the mainnet assembly parameters.
func DefaultParams() Params {
	return Params{
		BlockVersion: 0x20000000,
		SearchWindow: time.Minute,
		FutureDrift:  15 * time.Second,
		Subsidy:      reward.DefaultSubsidyParams(),
	}
}

// Snapshot is the consistent view one template is built from.
type Snapshot struct {
	Tip model.TipSnapshot
	Now time.Time
	// Outputs are the staker's own outputs and the delegated outputs it may stake.
	Outputs []model.UnspentOutput
	// Delegations are the verified records of delegated outputs, by delegator.
	Delegations map[model.KeyID]model.DelegationRecord
	// MPoSParticipants are payout scripts of earlier signers when reward sharing is active.
	MPoSParticipants [][]byte
	Mempool          []model.MempoolEntry
}

// Assembler builds signed candidate blocks for one staker key.
type Assembler struct {
	staker   model.KeyID
	params   Params
	kernel   KernelSearcher
	selector Selector
	splitter Splitter
	signer   Signer
	auth     BlockAuthorizer
	logger   *zap.Logger
}

// NewAssembler constructs an Assembler.
func NewAssembler(
	logger *zap.Logger,
	staker model.KeyID,
	params Params,
	kernel KernelSearcher,
	selector Selector,
	splitter Splitter,
	signer Signer,
	auth BlockAuthorizer,
) *Assembler {
	return &Assembler{
		staker:   staker,
		params:   params,
		kernel:   kernel,
		selector: selector,
		splitter: splitter,
		signer:   signer,
		auth:     auth,
		logger:   logger.Named("assembler").With(zap.Stringer("staker", staker)),
	}
}

// SearchWindow returns the kernel timestamp range for snap.
func (a *Assembler) SearchWindow(snap Snapshot) (minTime, maxTime uint32) {
	now := snap.Now.Unix()
	minTime = snap.Tip.Time + 1
	if from := now - int64(a.params.SearchWindow/time.Second); from > int64(minTime) {
		minTime = uint32(from)
	}
	maxTime = uint32(now + int64(a.params.FutureDrift/time.Second))
	return minTime, maxTime
}

// TryProduceBlock searches for a kernel on snap and, when one is found, returns a signed block.
// A search without result returns an error matching kernel.ErrNoEligibleKernel.
func (a *Assembler) TryProduceBlock(ctx context.Context, snap Snapshot, policy model.GasPolicy) (*model.SignedBlock, error) {
	minTime, maxTime := a.SearchWindow(snap)
	proof, err := a.kernel.FindProof(ctx, snap.Tip.Modifier, snap.Tip.Bits, snap.Outputs, minTime, maxTime)
	if err != nil {
		return nil, fmt.Errorf("find kernel: %w", err)
	}

	input := proof.Output
	var dlg *reward.Delegation
	var record *model.DelegationRecord
	if proof.Output.Owner != a.staker {
		rec, ok := snap.Delegations[proof.Output.Owner]
		if !ok || rec.Staker != a.staker {
			return nil, fmt.Errorf("%w: no delegation from %s", reward.ErrUnauthorizedDelegation, proof.Output.Owner)
		}
		record = &rec
		dlg = &reward.Delegation{Record: rec, DelegatorScript: P2PKHScript(rec.Delegator)}
		if input, err = a.fundingCoin(snap.Outputs, proof.Output); err != nil {
			return nil, err
		}
	}

	sel := a.selector.Select(withoutSpendsOf(snap.Mempool, proof.Output.OutPoint, input.OutPoint), policy)
	height := snap.Tip.NextHeight()
	subsidy := a.params.Subsidy.Subsidy(height)

	req := reward.Request{
		KernelValue:  input.Value,
		Subsidy:      subsidy,
		Fees:         sel.Fees,
		StakerScript: P2PKHScript(a.staker),
		Delegation:   dlg,
	}
	if len(snap.MPoSParticipants) > 0 {
		req.MPoS = &reward.MPoS{Participants: snap.MPoSParticipants}
	}
	payouts, err := a.splitter.ComputeOutputs(req)
	if err != nil {
		return nil, fmt.Errorf("compute payouts: %w", err)
	}

	coinbase, err := buildCoinbase(height)
	if err != nil {
		return nil, err
	}
	coinstake := buildCoinstake(input, payouts)
	if err := signInput(coinstake, 0, input, a.signer); err != nil {
		return nil, fmt.Errorf("sign coinstake: %w", err)
	}

	txs := make([]*wire.MsgTx, 0, len(sel.Selected)+2)
	txs = append(txs, coinbase, coinstake)
	for _, e := range sel.Selected {
		txs = append(txs, e.Tx)
	}

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    a.params.BlockVersion,
			PrevBlock:  snap.Tip.Hash,
			MerkleRoot: merkleRoot(txs),
			Timestamp:  time.Unix(int64(proof.Timestamp), 0),
			Bits:       snap.Tip.Bits,
		},
		Transactions: txs,
	}
	sb := &model.SignedBlock{
		Block:        block,
		StateRoot:    snap.Tip.StateRoot,
		UTXORoot:     snap.Tip.UTXORoot,
		PrevoutStake: proof.Output.OutPoint,
		Height:       height,
		Proof:        *proof,
		InputValue:   input.Value,
		Payouts:      payouts,
		Fees:         sel.Fees,
		Subsidy:      subsidy,
		GasUsed:      sel.GasUsed,
		Delegation:   record,
	}

	sig, err := a.signer.SignCompact(a.staker, sb.SigHash())
	if err != nil {
		return nil, fmt.Errorf("sign block: %w", err)
	}
	if record != nil {
		sig = delegation.JoinBlockSignature(sig, record.PoD)
	}
	sb.Signature = sig
	sb.NextModifier = kernel.NextModifier(snap.Tip.Modifier, *proof, &block.Header)

	if err := Validate(sb, ValidationContext{
		Modifier: snap.Tip.Modifier,
		Bits:     snap.Tip.Bits,
		Mask:     a.kernel.Mask(),
		Staker:   a.staker,
		Auth:     a.auth,
	}); err != nil {
		return nil, fmt.Errorf("self check: %w", err)
	}

	a.logger.Info("block produced",
		zap.Uint64("height", height),
		zap.Stringer("hash", sb.Hash()),
		zap.Stringer("kernel", proof.Output.OutPoint),
		zap.Bool("delegated", record != nil),
		zap.Int("txs", len(txs)),
		zap.Int64("fees", sel.Fees),
		zap.Uint64("gas_used", sel.GasUsed),
	)
	return sb, nil
}

// fundingCoin picks the staker's largest own coin other than the delegated kernel.
func (a *Assembler) fundingCoin(outputs []model.UnspentOutput, kernelOut model.UnspentOutput) (model.UnspentOutput, error) {
	for _, o := range kernel.OrderOutputs(outputs) {
		if o.Owner == a.staker && o.OutPoint != kernelOut.OutPoint {
			return o, nil
		}
	}
	return model.UnspentOutput{}, ErrNoStakerCoin
}

func withoutSpendsOf(entries []model.MempoolEntry, spent ...wire.OutPoint) []model.MempoolEntry {
	out := make([]model.MempoolEntry, 0, len(entries))
next:
	for _, e := range entries {
		for _, in := range e.Tx.TxIn {
			for _, op := range spent {
				if in.PreviousOutPoint == op {
					continue next
				}
			}
		}
		out = append(out, e)
	}
	return out
}

func merkleRoot(txs []*wire.MsgTx) chainhash.Hash {
	wrapped := make([]*btcutil.Tx, len(txs))
	for i, tx := range txs {
		wrapped[i] = btcutil.NewTx(tx)
	}
	return blockchain.CalcMerkleRoot(wrapped, false)
}
