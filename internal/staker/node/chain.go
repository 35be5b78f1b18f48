package node

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/pkg/safe"
	"github.com/goodnatureofminers/yody-staker/pkg/workerpool"
)

type blockResult struct {
	Hash      string    `json:"hash"`
	Height    uint64    `json:"height"`
	Time      uint32    `json:"time"`
	Bits      string    `json:"bits"`
	Modifier  string    `json:"modifier"`
	StateRoot string    `json:"hashStateRoot"`
	UTXORoot  string    `json:"hashUTXORoot"`
	Tx        []blockTx `json:"tx"`
}

type blockTx struct {
	Vout []struct {
		ScriptPubKey struct {
			Hex string `json:"hex"`
		} `json:"scriptPubKey"`
	} `json:"vout"`
}

func (c *Client) block(ctx context.Context, hash *chainhash.Hash, verbosity int) (*blockResult, error) {
	var res blockResult
	if err := c.call(ctx, "getblock", &res, hash.String(), verbosity); err != nil {
		return nil, err
	}
	return &res, nil
}

// Tip reads the best block and the state the next block builds on.
func (c *Client) Tip(ctx context.Context) (model.TipSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.TipSnapshot{}, err
	}
	best, err := c.rpc.GetBestBlockHash()
	if err != nil {
		return model.TipSnapshot{}, fmt.Errorf("get best block hash: %w", err)
	}
	res, err := c.block(ctx, best, 1)
	if err != nil {
		return model.TipSnapshot{}, err
	}

	tip := model.TipSnapshot{
		Hash:   *best,
		Height: res.Height,
		Time:   res.Time,
	}
	if tip.Bits, err = ParseBits(res.Bits); err != nil {
		return model.TipSnapshot{}, err
	}
	for _, f := range []struct {
		name string
		src  string
		dst  *chainhash.Hash
	}{
		{"modifier", res.Modifier, &tip.Modifier},
		{"hashStateRoot", res.StateRoot, &tip.StateRoot},
		{"hashUTXORoot", res.UTXORoot, &tip.UTXORoot},
	} {
		h, err := chainhash.NewHashFromStr(f.src)
		if err != nil {
			return model.TipSnapshot{}, fmt.Errorf("parse %s: %w", f.name, err)
		}
		*f.dst = *h
	}
	return tip, nil
}

// PayoutScripts returns the staker payout script of the block at each height, in order.
func (c *Client) PayoutScripts(ctx context.Context, heights []uint64) ([][]byte, error) {
	return workerpool.Map(ctx, c.workers, heights, func(ctx context.Context, height uint64) ([]byte, error) {
		h, err := safe.Int64(height)
		if err != nil {
			return nil, fmt.Errorf("block height %d: %w", height, err)
		}
		hash, err := c.rpc.GetBlockHash(h)
		if err != nil {
			return nil, fmt.Errorf("get block hash %d: %w", height, err)
		}
		res, err := c.block(ctx, hash, 2)
		if err != nil {
			return nil, err
		}
		// vout[0] of the coinstake is the empty marker.
		if len(res.Tx) < 2 || len(res.Tx[1].Vout) < 2 {
			return nil, fmt.Errorf("%w: height %d", ErrMissingPayout, height)
		}
		script, err := hex.DecodeString(res.Tx[1].Vout[1].ScriptPubKey.Hex)
		if err != nil {
			return nil, fmt.Errorf("decode payout script at %d: %w", height, err)
		}
		return script, nil
	})
}
