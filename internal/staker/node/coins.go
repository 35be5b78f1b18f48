package node

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/pkg/safe"
	"github.com/goodnatureofminers/yody-staker/pkg/workerpool"
)

const maxConfirmations = 9_999_999

type addressUTXO struct {
	Address     string `json:"address"`
	TxID        string `json:"txid"`
	OutputIndex uint32 `json:"outputIndex"`
	Script      string `json:"script"`
	Satoshis    int64  `json:"satoshis"`
	Height      uint64 `json:"height"`
}

// Coins lists the wallet's confirmed pay-to-pubkey-hash outputs.
func (c *Client) Coins(ctx context.Context) ([]model.UnspentOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	list, err := c.rpc.ListUnspentMinMax(1, maxConfirmations)
	if err != nil {
		return nil, fmt.Errorf("list unspent: %w", err)
	}

	outputs := make([]model.UnspentOutput, 0, len(list))
	for _, u := range list {
		if !u.Spendable {
			continue
		}
		owner, err := c.KeyIDOf(u.Address)
		if err != nil {
			c.logger.Debug("skip output", zap.String("txid", u.TxID), zap.Uint32("vout", u.Vout), zap.Error(err))
			continue
		}
		hash, err := chainhash.NewHashFromStr(u.TxID)
		if err != nil {
			return nil, fmt.Errorf("parse txid %s: %w", u.TxID, err)
		}
		amount, err := btcutil.NewAmount(u.Amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount of %s:%d: %w", u.TxID, u.Vout, err)
		}
		script, err := hex.DecodeString(u.ScriptPubKey)
		if err != nil {
			return nil, fmt.Errorf("decode script of %s:%d: %w", u.TxID, u.Vout, err)
		}
		depth, err := safe.Uint32(u.Confirmations)
		if err != nil {
			return nil, fmt.Errorf("confirmations of %s:%d: %w", u.TxID, u.Vout, err)
		}
		outputs = append(outputs, model.UnspentOutput{
			OutPoint: wire.OutPoint{Hash: *hash, Index: u.Vout},
			Value:    int64(amount),
			PkScript: script,
			Depth:    depth,
			Owner:    owner,
		})
	}
	return c.withOriginTimes(ctx, outputs)
}

// CoinsOf lists the confirmed outputs held by owners, using the node's address index.
func (c *Client) CoinsOf(ctx context.Context, owners []model.KeyID, tipHeight uint64) ([]model.UnspentOutput, error) {
	if len(owners) == 0 {
		return nil, nil
	}
	addresses := make([]string, 0, len(owners))
	byAddress := make(map[string]model.KeyID, len(owners))
	for _, id := range owners {
		addr, err := c.Address(id)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
		byAddress[addr] = id
	}

	var list []addressUTXO
	if err := c.call(ctx, "getaddressutxos", &list, map[string]any{"addresses": addresses}); err != nil {
		return nil, err
	}

	outputs := make([]model.UnspentOutput, 0, len(list))
	for _, u := range list {
		owner, ok := byAddress[u.Address]
		if !ok || u.Height == 0 || u.Height > tipHeight {
			continue
		}
		hash, err := chainhash.NewHashFromStr(u.TxID)
		if err != nil {
			return nil, fmt.Errorf("parse txid %s: %w", u.TxID, err)
		}
		script, err := hex.DecodeString(u.Script)
		if err != nil {
			return nil, fmt.Errorf("decode script of %s:%d: %w", u.TxID, u.OutputIndex, err)
		}
		depth, err := safe.Uint32(tipHeight - u.Height + 1)
		if err != nil {
			return nil, fmt.Errorf("depth of %s:%d: %w", u.TxID, u.OutputIndex, err)
		}
		outputs = append(outputs, model.UnspentOutput{
			OutPoint: wire.OutPoint{Hash: *hash, Index: u.OutputIndex},
			Value:    u.Satoshis,
			PkScript: script,
			Depth:    depth,
			Owner:    owner,
		})
	}
	return c.withOriginTimes(ctx, outputs)
}

func (c *Client) withOriginTimes(ctx context.Context, outputs []model.UnspentOutput) ([]model.UnspentOutput, error) {
	return workerpool.Map(ctx, c.workers, outputs, func(ctx context.Context, out model.UnspentOutput) (model.UnspentOutput, error) {
		t, err := c.originTime(ctx, out.OutPoint.Hash)
		if err != nil {
			return model.UnspentOutput{}, err
		}
		out.OriginTime = t
		return out, nil
	})
}

// originTime is the time of the block that confirmed txid. Confirmed times never change, so
// they are cached for the life of the client.
func (c *Client) originTime(ctx context.Context, txid chainhash.Hash) (uint32, error) {
	c.mu.Lock()
	t, ok := c.originTimes[txid]
	c.mu.Unlock()
	if ok {
		return t, nil
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := c.rpc.GetRawTransactionVerbose(&txid)
	if err != nil {
		return 0, fmt.Errorf("get transaction %s: %w", txid, err)
	}
	if res.Blocktime <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnconfirmed, txid)
	}
	if t, err = safe.Uint32(res.Blocktime); err != nil {
		return 0, fmt.Errorf("block time of %s: %w", txid, err)
	}

	c.mu.Lock()
	c.originTimes[txid] = t
	c.mu.Unlock()
	return t, nil
}
