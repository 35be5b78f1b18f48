package node

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/pkg/workerpool"
)

type pendingRef struct {
	hash chainhash.Hash
	fee  int64
	time int64
}

// Mempool reads the node's mempool. Every txid is reported; transactions known already are not
// fetched, the rest come back in arrival order.
func (c *Client) Mempool(ctx context.Context, known func(chainhash.Hash) bool) (model.NodeMempool, error) {
	if err := ctx.Err(); err != nil {
		return model.NodeMempool{}, err
	}
	verbose, err := c.rpc.GetRawMempoolVerbose()
	if err != nil {
		return model.NodeMempool{}, fmt.Errorf("get raw mempool: %w", err)
	}

	view := model.NodeMempool{TxIDs: make(map[chainhash.Hash]struct{}, len(verbose))}
	refs := make([]pendingRef, 0, len(verbose))
	for txid, info := range verbose {
		hash, err := chainhash.NewHashFromStr(txid)
		if err != nil {
			return model.NodeMempool{}, fmt.Errorf("parse mempool txid %s: %w", txid, err)
		}
		view.TxIDs[*hash] = struct{}{}
		if known != nil && known(*hash) {
			continue
		}
		fee, err := btcutil.NewAmount(info.Fee)
		if err != nil {
			return model.NodeMempool{}, fmt.Errorf("parse fee of %s: %w", txid, err)
		}
		refs = append(refs, pendingRef{hash: *hash, fee: int64(fee), time: info.Time})
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].time != refs[j].time {
			return refs[i].time < refs[j].time
		}
		return refs[i].hash.String() < refs[j].hash.String()
	})

	view.Pending, err = workerpool.Map(ctx, c.workers, refs, func(_ context.Context, ref pendingRef) (model.PendingTx, error) {
		tx, err := c.rpc.GetRawTransaction(&ref.hash)
		if err != nil {
			return model.PendingTx{}, fmt.Errorf("get mempool transaction %s: %w", ref.hash, err)
		}
		return model.PendingTx{Tx: tx.MsgTx(), Fee: ref.fee, Time: ref.time}, nil
	})
	if err != nil {
		return model.NodeMempool{}, err
	}
	return view, nil
}

// SubmitBlock hands a signed block to the node. A rejection carries the node's reason.
func (c *Client) SubmitBlock(ctx context.Context, block *model.SignedBlock) error {
	raw, err := block.Bytes()
	if err != nil {
		return fmt.Errorf("serialize block: %w", err)
	}
	var reason *string
	if err := c.call(ctx, "submitblock", &reason, hex.EncodeToString(raw)); err != nil {
		return err
	}
	if reason != nil && *reason != "" {
		return fmt.Errorf("%w: %s", ErrBlockRejected, *reason)
	}
	return nil
}
