package service

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/pkg/batcher"
)

// JournalWriter batches produced blocks into the minted block repository.
type JournalWriter struct {
	network model.Network
	batcher *batcher.Batcher[model.MintedRecord]
}

func NewJournalWriter(logger *zap.Logger, repo MintedRepository, network model.Network) (*JournalWriter, error) {
	if repo == nil {
		return nil, errors.New("minted repository is required")
	}
	logger = logger.Named("journal")
	return &JournalWriter{
		network: network,
		batcher: batcher.New(logger, repo.InsertMinted, batcher.Config{
			Size:             journalBatchSize,
			Interval:         journalFlushInterval,
			FlushesPerSecond: journalFlushesPerSecond,
			Retries:          journalRetries,
		}),
	}, nil
}

func (w *JournalWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes buffered records and waits for the writer to exit.
func (w *JournalWriter) Stop() {
	w.batcher.Stop()
}

// Record queues a produced block. submitErr is the node's verdict, nil when accepted.
func (w *JournalWriter) Record(ctx context.Context, block *model.SignedBlock, submitErr error) error {
	return w.batcher.Add(ctx, MintedRecordOf(w.network, block, submitErr))
}

// MintedRecordOf flattens a produced block into journal rows.
func MintedRecordOf(network model.Network, block *model.SignedBlock, submitErr error) model.MintedRecord {
	hash := block.Hash().String()
	header := block.Block.Header

	row := model.MintedBlock{
		Network:     network,
		Height:      block.Height,
		Hash:        hash,
		PrevHash:    header.PrevBlock.String(),
		Timestamp:   header.Timestamp.UTC().Truncate(time.Second),
		Bits:        header.Bits,
		KernelTxID:  block.PrevoutStake.Hash.String(),
		KernelIndex: block.PrevoutStake.Index,
		KernelValue: block.Proof.Output.Value,
		Subsidy:     block.Subsidy,
		Fees:        block.Fees,
		GasUsed:     block.GasUsed,
		TxCount:     uint32(len(block.Block.Transactions)),
		Submitted:   submitErr == nil,
	}
	if submitErr != nil {
		row.RejectReason = submitErr.Error()
	}
	if block.Delegation != nil {
		row.Delegator = block.Delegation.Delegator.String()
		row.DelegatorFee = block.Delegation.Fee
	}

	payouts := make([]model.MintedPayout, 0, len(block.Payouts))
	for i, p := range block.Payouts {
		payouts = append(payouts, model.MintedPayout{
			Network:   network,
			Height:    block.Height,
			BlockHash: hash,
			// Output 0 of the coinstake is the empty marker.
			Index:     uint32(i + 1),
			Amount:    p.Amount,
			ScriptHex: hex.EncodeToString(p.Script),
		})
	}
	return model.MintedRecord{Block: row, Payouts: payouts}
}
