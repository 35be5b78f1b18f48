package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

// InsertMinted stores produced blocks and their payouts.
func (r *Repository) InsertMinted(ctx context.Context, records []model.MintedRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_minted", firstNetwork(records), err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	if err = r.insertBlocks(ctx, records); err != nil {
		return err
	}
	if err = r.insertPayouts(ctx, records); err != nil {
		return err
	}
	return nil
}

func (r *Repository) insertBlocks(ctx context.Context, records []model.MintedRecord) error {
	const query = `
INSERT INTO staker_minted_blocks (
	network,
	height,
	hash,
	prev_hash,
	timestamp,
	bits,
	kernel_txid,
	kernel_index,
	kernel_value,
	subsidy,
	fees,
	gas_used,
	tx_count,
	delegator,
	delegator_fee,
	submitted,
	reject_reason
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare minted blocks batch: %w", err)
	}

	for _, rec := range records {
		b := rec.Block
		if err := batch.Append(
			string(b.Network),
			b.Height,
			b.Hash,
			b.PrevHash,
			b.Timestamp,
			b.Bits,
			b.KernelTxID,
			b.KernelIndex,
			b.KernelValue,
			b.Subsidy,
			b.Fees,
			b.GasUsed,
			b.TxCount,
			b.Delegator,
			b.DelegatorFee,
			b.Submitted,
			b.RejectReason,
		); err != nil {
			return fmt.Errorf("append minted block: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert minted blocks: %w", err)
	}
	return nil
}

func (r *Repository) insertPayouts(ctx context.Context, records []model.MintedRecord) error {
	const query = `
INSERT INTO staker_minted_payouts (
	network,
	height,
	block_hash,
	output_index,
	amount,
	script_hex
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare minted payouts batch: %w", err)
	}

	for _, rec := range records {
		for _, p := range rec.Payouts {
			if err := batch.Append(
				string(p.Network),
				p.Height,
				p.BlockHash,
				p.Index,
				p.Amount,
				p.ScriptHex,
			); err != nil {
				return fmt.Errorf("append minted payout: %w", err)
			}
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert minted payouts: %w", err)
	}
	return nil
}
