// Package reward computes coinstake payouts.
package reward

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/pkg/safe"
)

// MaxDelegationFee is the largest fee percentage a delegation may carry.
const MaxDelegationFee = 100

type (
	// Authorizer checks a proof of delegation.
	Authorizer interface {
		Check(delegator, staker model.KeyID, pod []byte) error
	}
)

// Delegation pays part of the reward pool to the owner of a delegated kernel.
type Delegation struct {
	Record          model.DelegationRecord
	DelegatorScript []byte
}

// MPoS shares the reward pool with signers of earlier blocks.
type MPoS struct {
	// Participants are the output scripts of the N-1 non-current participants.
	Participants [][]byte
}

// Request is everything the splitter needs for one coinstake.
type Request struct {
	KernelValue  int64
	Subsidy      int64
	Fees         int64
	StakerScript []byte
	Delegation   *Delegation
	MPoS         *MPoS
}

// Splitter computes payout amounts. Outputs are returned in coinstake order.
type Splitter struct {
	auth   Authorizer
	logger *zap.Logger
}

// NewSplitter constructs a Splitter.
func NewSplitter(logger *zap.Logger, auth Authorizer) *Splitter {
	return &Splitter{auth: auth, logger: logger.Named("reward")}
}

// ComputeOutputs returns the coinstake payouts for req.
func (s *Splitter) ComputeOutputs(req Request) ([]model.Payout, error) {
	if req.KernelValue < 0 || req.Subsidy < 0 || req.Fees < 0 {
		return nil, ErrInvalidAmount
	}
	if req.Delegation != nil && req.MPoS != nil {
		return nil, ErrIncompatiblePolicyCombination
	}

	pool, err := safe.AddInt64(req.Subsidy, req.Fees)
	if err != nil {
		return nil, fmt.Errorf("reward pool: %w", err)
	}

	switch {
	case req.Delegation != nil:
		return s.delegated(req, pool)
	case req.MPoS != nil:
		return s.mpos(req, pool)
	default:
		total, err := safe.AddInt64(pool, req.KernelValue)
		if err != nil {
			return nil, fmt.Errorf("stake total: %w", err)
		}
		return splitInHalf(total, req.StakerScript), nil
	}
}

func (s *Splitter) delegated(req Request, pool int64) ([]model.Payout, error) {
	rec := req.Delegation.Record
	if rec.Fee > MaxDelegationFee {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFee, rec.Fee)
	}
	if s.auth == nil {
		return nil, fmt.Errorf("%w: no authorizer for delegator %s", ErrUnauthorizedDelegation, rec.Delegator)
	}
	if err := s.auth.Check(rec.Delegator, rec.Staker, rec.PoD); err != nil {
		return nil, fmt.Errorf("%w: delegator %s staker %s: %w", ErrUnauthorizedDelegation, rec.Delegator, rec.Staker, err)
	}

	feeShare, err := safe.MulInt64(pool, int64(rec.Fee))
	if err != nil {
		return nil, fmt.Errorf("staker share: %w", err)
	}
	stakerShare := feeShare / 100
	delegatorShare := pool - stakerShare
	stakerOut, err := safe.AddInt64(stakerShare, req.KernelValue)
	if err != nil {
		return nil, fmt.Errorf("staker output: %w", err)
	}

	s.logger.Debug("delegated split",
		zap.Stringer("delegator", rec.Delegator),
		zap.Uint8("fee", rec.Fee),
		zap.Int64("staker_share", stakerShare),
		zap.Int64("delegator_share", delegatorShare),
	)

	out := []model.Payout{{Amount: stakerOut, Script: req.StakerScript}}
	// A full fee leaves the delegator nothing, and the coinstake carries no empty output for it.
	if delegatorShare > 0 {
		out = append(out, model.Payout{Amount: delegatorShare, Script: req.Delegation.DelegatorScript})
	}
	return out, nil
}

func (s *Splitter) mpos(req Request, pool int64) ([]model.Payout, error) {
	n := int64(len(req.MPoS.Participants)) + 1
	per := pool / n
	own, err := safe.AddInt64(per, req.KernelValue)
	if err != nil {
		return nil, fmt.Errorf("staker output: %w", err)
	}

	out := splitInHalf(own, req.StakerScript)
	for _, script := range req.MPoS.Participants {
		out = append(out, model.Payout{Amount: per, Script: script})
	}

	s.logger.Debug("mpos split",
		zap.Int64("participants", n),
		zap.Int64("per_participant", per),
		zap.Int64("dropped", pool-per*n),
	)
	return out, nil
}

func splitInHalf(total int64, script []byte) []model.Payout {
	half := total / 2
	return []model.Payout{
		{Amount: half, Script: script},
		{Amount: half, Script: script},
	}
}

// Total sums payout amounts.
func Total(payouts []model.Payout) (int64, error) {
	amounts := make([]int64, len(payouts))
	for i, p := range payouts {
		amounts[i] = p.Amount
	}
	return safe.SumInt64(amounts...)
}
