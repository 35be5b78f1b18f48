// Package node adapts a yody node's RPC interface to the staking service.
package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

const defaultWorkerCount = 8

var (
	ErrBlockRejected  = errors.New("block rejected by node")
	ErrUnconfirmed    = errors.New("transaction not confirmed")
	ErrMissingPayout  = errors.New("block has no coinstake payout")
	ErrContractFailed = errors.New("contract call failed")
)

// Client reads chain state from a node and submits blocks to it.
type Client struct {
	rpc     RPC
	network model.Network
	params  *chaincfg.Params
	workers int
	logger  *zap.Logger

	mu          sync.Mutex
	originTimes map[chainhash.Hash]uint32
}

// New constructs a Client. workers bounds concurrent per-item RPC calls.
func New(logger *zap.Logger, rpc RPC, network model.Network, workers int) (*Client, error) {
	if rpc == nil {
		return nil, errors.New("node rpc is required")
	}
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = defaultWorkerCount
	}
	return &Client{
		rpc:         rpc,
		network:     network,
		params:      params,
		workers:     workers,
		logger:      logger.Named("node").With(zap.String("network", string(network))),
		originTimes: make(map[chainhash.Hash]uint32),
	}, nil
}

// Params are the address parameters of the client's network.
func (c *Client) Params() *chaincfg.Params {
	return c.params
}

// Address encodes a key id as a pay-to-pubkey-hash address.
func (c *Client) Address(id model.KeyID) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(id[:], c.params)
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// KeyIDOf decodes a pay-to-pubkey-hash address into its key id.
func (c *Client) KeyIDOf(address string) (model.KeyID, error) {
	addr, err := btcutil.DecodeAddress(address, c.params)
	if err != nil {
		return model.KeyID{}, fmt.Errorf("decode address %s: %w", address, err)
	}
	pkh, ok := addr.(*btcutil.AddressPubKeyHash)
	if !ok {
		return model.KeyID{}, fmt.Errorf("address %s is not pay-to-pubkey-hash", address)
	}
	return model.KeyID(*pkh.Hash160()), nil
}

// ParseBits parses the hex compact target reported by the node.
func ParseBits(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse bits %q: %w", s, err)
	}
	return uint32(v), nil
}

func (c *Client) call(ctx context.Context, method string, out any, params ...any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal %s params: %w", method, err)
		}
		raw = append(raw, b)
	}
	res, err := c.rpc.RawRequest(method, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(res, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}
