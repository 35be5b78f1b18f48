package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/mempool"
	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/internal/staker/template"
)

// snapshot reads everything one template is built from.
func (s *StakerService) snapshot(ctx context.Context) (template.Snapshot, model.GasPolicy, error) {
	tip, err := s.deps.Chain.Tip(ctx)
	if err != nil {
		return template.Snapshot{}, model.GasPolicy{}, fmt.Errorf("read tip: %w", err)
	}
	next := tip.NextHeight()

	policy := s.cfg.Policy
	if s.deps.Governance != nil {
		if policy, err = s.deps.Governance.Policy(ctx, policy); err != nil {
			return template.Snapshot{}, model.GasPolicy{}, fmt.Errorf("read governance policy: %w", err)
		}
	}
	s.deps.Pool.SetPolicy(policy)

	own, err := s.deps.Coins.Coins(ctx)
	if err != nil {
		return template.Snapshot{}, model.GasPolicy{}, fmt.Errorf("list coins: %w", err)
	}
	outputs := s.eligible(own, func(o model.UnspentOutput) bool { return o.Owner == s.cfg.Staker })

	var participants [][]byte
	mpos := s.cfg.MPoS.Active(next)
	if mpos {
		heights, err := s.cfg.MPoS.Heights(next)
		if err != nil {
			return template.Snapshot{}, model.GasPolicy{}, err
		}
		if participants, err = s.deps.Chain.PayoutScripts(ctx, heights); err != nil {
			return template.Snapshot{}, model.GasPolicy{}, fmt.Errorf("read reward sharing scripts: %w", err)
		}
	}

	// Delegated blocks cannot share rewards, so delegations wait for the sharing window to end.
	var delegations map[model.KeyID]model.DelegationRecord
	if !mpos {
		if delegations, err = s.delegations(next); err != nil {
			return template.Snapshot{}, model.GasPolicy{}, err
		}
		delegated, err := s.delegatedCoins(ctx, delegations, tip.Height)
		if err != nil {
			return template.Snapshot{}, model.GasPolicy{}, err
		}
		outputs = append(outputs, delegated...)
	}

	if err := s.syncMempool(ctx); err != nil {
		return template.Snapshot{}, model.GasPolicy{}, err
	}

	return template.Snapshot{
		Tip:              tip,
		Now:              s.now(),
		Outputs:          outputs,
		Delegations:      delegations,
		MPoSParticipants: participants,
		Mempool:          s.deps.Pool.Snapshot(),
	}, policy, nil
}

func (s *StakerService) eligible(outputs []model.UnspentOutput, keep func(model.UnspentOutput) bool) []model.UnspentOutput {
	out := make([]model.UnspentOutput, 0, len(outputs))
	for _, o := range outputs {
		if keep(o) && o.Eligible(s.cfg.Maturity, s.cfg.MinUTXOValue) {
			out = append(out, o)
		}
	}
	return out
}

// delegations returns the verified records of this staker active at height.
func (s *StakerService) delegations(height uint64) (map[model.KeyID]model.DelegationRecord, error) {
	records, err := s.deps.Delegations.ByStaker(s.cfg.Staker)
	if err != nil {
		return nil, fmt.Errorf("list delegations: %w", err)
	}
	out := make(map[model.KeyID]model.DelegationRecord, len(records))
	for _, rec := range records {
		if rec.ActivationHeight > height {
			continue
		}
		if !s.deps.Verifier.Verify(rec.Delegator, rec.Staker, rec.PoD) {
			s.logger.Warn("skip delegation with invalid proof", zap.Stringer("delegator", rec.Delegator))
			continue
		}
		out[rec.Delegator] = rec
	}
	return out, nil
}

func (s *StakerService) delegatedCoins(ctx context.Context, delegations map[model.KeyID]model.DelegationRecord, tipHeight uint64) ([]model.UnspentOutput, error) {
	if len(delegations) == 0 {
		return nil, nil
	}
	owners := make([]model.KeyID, 0, len(delegations))
	for id := range delegations {
		owners = append(owners, id)
	}
	coins, err := s.deps.Coins.CoinsOf(ctx, owners, tipHeight)
	if err != nil {
		return nil, fmt.Errorf("list delegated coins: %w", err)
	}
	return s.eligible(coins, func(o model.UnspentOutput) bool {
		_, ok := delegations[o.Owner]
		return ok
	}), nil
}

// syncMempool admits node mempool transactions the local pool has not seen and evicts those
// the node no longer holds.
func (s *StakerService) syncMempool(ctx context.Context) error {
	view, err := s.deps.Mempool.Mempool(ctx, s.deps.Pool.Has)
	if err != nil {
		return fmt.Errorf("read mempool: %w", err)
	}
	for _, p := range view.Pending {
		if _, err := s.deps.Pool.Add(p.Tx, p.Fee); err != nil {
			if !errors.Is(err, mempool.ErrAlreadyInPool) {
				s.logger.Debug("transaction not admitted", zap.Stringer("txid", p.Tx.TxHash()), zap.Error(err))
			}
		}
	}
	if evicted := s.deps.Pool.Retain(view.Contains); evicted > 0 {
		s.logger.Debug("pool reconciled with node mempool", zap.Int("evicted", evicted))
	}
	return nil
}
