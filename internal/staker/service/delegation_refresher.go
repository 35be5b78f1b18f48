package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/clock"
	"github.com/goodnatureofminers/yody-staker/internal/staker/delegation"
	"github.com/goodnatureofminers/yody-staker/internal/staker/governance"
	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

// DelegationRefresher mirrors the on-chain delegations of allowed delegators into the local
// registry. Records naming another staker, or carrying a proof that does not verify, are dropped.
type DelegationRefresher struct {
	source     DelegationSource
	registry   DelegationRegistry
	verifier   DelegationVerifier
	staker     model.KeyID
	delegators []model.KeyID
	interval   time.Duration
	logger     *zap.Logger
	sleep      func(context.Context, time.Duration) error
}

func NewDelegationRefresher(
	logger *zap.Logger,
	source DelegationSource,
	registry DelegationRegistry,
	verifier DelegationVerifier,
	staker model.KeyID,
	delegators []model.KeyID,
	interval time.Duration,
) *DelegationRefresher {
	if interval <= 0 {
		interval = delegationRefreshInterval
	}
	return &DelegationRefresher{
		source:     source,
		registry:   registry,
		verifier:   verifier,
		staker:     staker,
		delegators: delegators,
		interval:   interval,
		logger:     logger.Named("delegation_refresher"),
		sleep:      clock.SleepWithContext,
	}
}

// Run refreshes until the context is canceled.
func (r *DelegationRefresher) Run(ctx context.Context) error {
	for {
		if err := r.Refresh(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Warn("delegation refresh failed", zap.Error(err))
		}
		if err := r.sleep(ctx, r.interval); err != nil {
			return err
		}
	}
}

// Refresh reads every allowed delegator once.
func (r *DelegationRefresher) Refresh(ctx context.Context) error {
	var errs []error
	for _, id := range r.delegators {
		if err := r.refresh(ctx, id); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *DelegationRefresher) refresh(ctx context.Context, id model.KeyID) error {
	rec, err := r.source.Delegation(ctx, id)
	switch {
	case errors.Is(err, governance.ErrNoDelegation):
		return r.remove(id)
	case err != nil:
		return fmt.Errorf("read delegation of %s: %w", id, err)
	case rec.Staker != r.staker:
		r.logger.Info("delegator moved to another staker", zap.Stringer("delegator", id), zap.Stringer("staker", rec.Staker))
		return r.remove(id)
	case !r.verifier.Verify(rec.Delegator, rec.Staker, rec.PoD):
		r.logger.Warn("delegation proof does not verify", zap.Stringer("delegator", id))
		return r.remove(id)
	}

	stored, err := r.registry.Put(rec)
	if err != nil {
		return fmt.Errorf("store delegation of %s: %w", id, err)
	}
	if stored {
		r.logger.Info("delegation stored",
			zap.Stringer("delegator", id),
			zap.Uint8("fee", rec.Fee),
			zap.Uint64("activation_height", rec.ActivationHeight))
	}
	return nil
}

func (r *DelegationRefresher) remove(id model.KeyID) error {
	if err := r.registry.Remove(id); err != nil && !errors.Is(err, delegation.ErrDelegationNotFound) {
		return fmt.Errorf("remove delegation of %s: %w", id, err)
	}
	return nil
}
