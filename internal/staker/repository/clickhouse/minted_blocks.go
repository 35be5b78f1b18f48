package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

// RecentMinted returns the latest produced blocks of a network, newest first.
func (r *Repository) RecentMinted(ctx context.Context, network model.Network, limit int) (blocks []model.MintedBlock, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("recent_minted", network, err, start)
	}()

	const query = `
SELECT
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
FROM staker_minted_blocks FINAL
WHERE network = ?
ORDER BY height DESC, hash
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, string(network), limit)
	if err != nil {
		return nil, fmt.Errorf("query minted blocks: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		b := model.MintedBlock{Network: network}
		if err = rows.Scan(
			&b.Height,
			&b.Hash,
			&b.PrevHash,
			&b.Timestamp,
			&b.Bits,
			&b.KernelTxID,
			&b.KernelIndex,
			&b.KernelValue,
			&b.Subsidy,
			&b.Fees,
			&b.GasUsed,
			&b.TxCount,
			&b.Delegator,
			&b.DelegatorFee,
			&b.Submitted,
			&b.RejectReason,
		); err != nil {
			return nil, fmt.Errorf("scan minted block: %w", err)
		}
		blocks = append(blocks, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate minted blocks: %w", err)
	}
	return blocks, nil
}
