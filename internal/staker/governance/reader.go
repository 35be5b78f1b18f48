// Package governance reads consensus gas parameters from the chain's governance contracts.
package governance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	methodBlockGasLimit = "getBlockGasLimit"
	methodMinGasPrice   = "getMinGasPrice"
)

const paramsABI = `[
	{"inputs":[],"name":"getBlockGasLimit","outputs":[{"name":"","type":"uint64[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getMinGasPrice","outputs":[{"name":"","type":"uint64[]"}],"stateMutability":"view","type":"function"}
]`

var ErrEmptyParameter = errors.New("governance contract returned no value")

type (
	// Caller runs read-only contract calls at the tip.
	Caller interface {
		CallContract(ctx context.Context, address string, data []byte) ([]byte, error)
	}
)

// Config holds the contract addresses. An empty address leaves that parameter to local policy.
type Config struct {
	BlockGasLimitContract string
	MinGasPriceContract   string
}

// Reader resolves gas parameters for the next block.
type Reader struct {
	caller Caller
	cfg    Config
	abi    abi.ABI
	logger *zap.Logger
}

func NewReader(logger *zap.Logger, caller Caller, cfg Config) (*Reader, error) {
	parsed, err := abi.JSON(strings.NewReader(paramsABI))
	if err != nil {
		return nil, fmt.Errorf("parse governance abi: %w", err)
	}
	return &Reader{
		caller: caller,
		cfg:    cfg,
		abi:    parsed,
		logger: logger.Named("governance"),
	}, nil
}

// BlockGasLimit is the consensus hard block gas limit.
func (r *Reader) BlockGasLimit(ctx context.Context) (uint64, error) {
	return r.uint64Param(ctx, r.cfg.BlockGasLimitContract, methodBlockGasLimit)
}

// MinGasPrice is the consensus floor for gas prices.
func (r *Reader) MinGasPrice(ctx context.Context) (uint64, error) {
	return r.uint64Param(ctx, r.cfg.MinGasPriceContract, methodMinGasPrice)
}

// Policy layers the governance parameters over base. The hard limit is replaced; the min price
// only ever rises.
func (r *Reader) Policy(ctx context.Context, base model.GasPolicy) (model.GasPolicy, error) {
	policy := base
	if r.cfg.BlockGasLimitContract != "" {
		limit, err := r.BlockGasLimit(ctx)
		if err != nil {
			return base, err
		}
		policy.HardBlockGasLimit = limit
	}
	if r.cfg.MinGasPriceContract != "" {
		price, err := r.MinGasPrice(ctx)
		if err != nil {
			return base, err
		}
		policy.MinTxGasPrice = max(policy.MinTxGasPrice, price)
	}
	if policy != base {
		r.logger.Debug("governance policy applied",
			zap.Uint64("hard_block_gas_limit", policy.HardBlockGasLimit),
			zap.Uint64("min_tx_gas_price", policy.MinTxGasPrice))
	}
	return policy, policy.Validate()
}

func (r *Reader) uint64Param(ctx context.Context, address, method string) (uint64, error) {
	if address == "" {
		return 0, fmt.Errorf("%s: no contract configured", method)
	}
	data, err := r.abi.Pack(method)
	if err != nil {
		return 0, fmt.Errorf("pack %s: %w", method, err)
	}
	out, err := r.caller.CallContract(ctx, address, data)
	if err != nil {
		return 0, fmt.Errorf("call %s: %w", method, err)
	}
	values, err := r.abi.Unpack(method, out)
	if err != nil {
		return 0, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmptyParameter, method)
	}
	list, ok := values[0].([]uint64)
	if !ok || len(list) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmptyParameter, method)
	}
	return list[0], nil
}
