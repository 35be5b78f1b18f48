// Package kernel searches for proof-of-stake kernels and derives stake modifiers.
package kernel

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

const (
	// DefaultTimestampMask leaves one candidate timestamp per 16 seconds.
	DefaultTimestampMask uint32 = 15
	DefaultCacheSize            = 100_000
)

// Params configures a Kernel.
type Params struct {
	TimestampMask uint32
	CacheSize     int
}

// Kernel finds stake kernels. It is safe for concurrent use.
type Kernel struct {
	mask   uint32
	misses *lru.Cache
	logger *zap.Logger
}

type checkKey struct {
	modifier   chainhash.Hash
	outpoint   wire.OutPoint
	value      int64
	originTime uint32
	timestamp  uint32
	bits       uint32
}

// New constructs a Kernel.
func New(logger *zap.Logger, params Params) (*Kernel, error) {
	if params.CacheSize <= 0 {
		params.CacheSize = DefaultCacheSize
	}
	cache, err := lru.New(params.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create kernel cache: %w", err)
	}
	return &Kernel{
		mask:   params.TimestampMask,
		misses: cache,
		logger: logger.Named("kernel"),
	}, nil
}

// Mask is the timestamp granularity mask.
func (k *Kernel) Mask() uint32 {
	return k.mask
}

// FindProof returns the first (timestamp, output) pair in canonical order whose kernel hash meets
// the target encoded by bits. Timestamps are the outer loop.
func (k *Kernel) FindProof(
	ctx context.Context,
	modifier model.StakeModifier,
	bits uint32,
	outputs []model.UnspentOutput,
	minTime, maxTime uint32,
) (*model.KernelProof, error) {
	target := blockchain.CompactToBig(bits)
	ordered := OrderOutputs(outputs)
	times := CandidateTimes(minTime, maxTime, k.mask)

	for _, ts := range times {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, out := range ordered {
			key := checkKey{
				modifier:   modifier,
				outpoint:   out.OutPoint,
				value:      out.Value,
				originTime: out.OriginTime,
				timestamp:  ts,
				bits:       bits,
			}
			if k.misses.Contains(key) {
				continue
			}
			h := Hash(modifier, out, ts)
			if !MeetsTarget(h, out.Value, target) {
				k.misses.Add(key, struct{}{})
				continue
			}
			k.logger.Debug("kernel found",
				zap.Stringer("outpoint", out.OutPoint),
				zap.Uint32("timestamp", ts),
				zap.Stringer("hash", h),
			)
			return &model.KernelProof{Output: out, Timestamp: ts, Hash: h}, nil
		}
	}

	return nil, ErrNoEligibleKernel
}

// CheckProof re-validates a proof against the modifier and compact target.
func (k *Kernel) CheckProof(modifier model.StakeModifier, bits uint32, proof model.KernelProof) error {
	return CheckProof(modifier, bits, k.mask, proof)
}

// CheckProof validates a proof without a Kernel instance.
func CheckProof(modifier model.StakeModifier, bits, mask uint32, proof model.KernelProof) error {
	if proof.Timestamp&mask != 0 {
		return fmt.Errorf("%w: timestamp %d not aligned to mask %d", ErrInvalidKernelProof, proof.Timestamp, mask)
	}
	h := Hash(modifier, proof.Output, proof.Timestamp)
	if h != proof.Hash {
		return fmt.Errorf("%w: hash mismatch", ErrInvalidKernelProof)
	}
	if !MeetsTarget(h, proof.Output.Value, blockchain.CompactToBig(bits)) {
		return fmt.Errorf("%w: hash above target", ErrInvalidKernelProof)
	}
	return nil
}

// Weight sums the value of outputs, the total stake offered to the search.
func Weight(outputs []model.UnspentOutput) int64 {
	var sum int64
	for _, o := range outputs {
		sum += o.Value
	}
	return sum
}
