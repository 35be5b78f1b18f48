// Package service runs the staking loop against a node.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/clock"
	"github.com/goodnatureofminers/yody-staker/internal/metrics"
	"github.com/goodnatureofminers/yody-staker/internal/staker/kernel"
	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/internal/staker/reward"
)

// Config is the staking policy of one staker key.
type Config struct {
	Network      model.Network
	Staker       model.KeyID
	Maturity     uint32
	MinUTXOValue int64
	Policy       model.GasPolicy
	MPoS         reward.MPoSParams
	// TimestampMask is the kernel timestamp granularity; idle rounds sleep until the next slot.
	TimestampMask uint32
}

// Dependencies are the collaborators of a StakerService. Governance and Journal are optional.
type Dependencies struct {
	Chain       ChainSource
	Coins       CoinSource
	Mempool     MempoolSource
	Sink        BlockSink
	Delegations DelegationStore
	Verifier    DelegationVerifier
	Producer    BlockProducer
	Pool        LocalPool
	Governance  GovernanceReader
	Journal     Journal
	Metrics     StakerMetrics
	// TipSignal fires when the node sees a new block.
	TipSignal <-chan struct{}
}

// Status is a point-in-time view of the staking loop.
type Status struct {
	Network        model.Network   `json:"network"`
	Staker         string          `json:"staker"`
	TipHeight      uint64          `json:"tip_height"`
	Weight         int64           `json:"weight"`
	Outputs        int             `json:"outputs"`
	Delegations    int             `json:"delegations"`
	LastAttempt    time.Time       `json:"last_attempt"`
	LastOutcome    string          `json:"last_outcome"`
	LastError      string          `json:"last_error,omitempty"`
	LastBlockHash  string          `json:"last_block_hash,omitempty"`
	BlocksProduced uint64          `json:"blocks_produced"`
	Policy         model.GasPolicy `json:"policy"`
}

// StakerService repeatedly tries to produce a block on the current tip.
type StakerService struct {
	cfg    Config
	deps   Dependencies
	logger *zap.Logger
	now    func() time.Time
	sleep  func(context.Context, time.Duration) error

	mu     sync.RWMutex
	status Status
}

func NewStakerService(logger *zap.Logger, cfg Config, deps Dependencies) (*StakerService, error) {
	switch {
	case deps.Chain == nil:
		return nil, errors.New("chain source is required")
	case deps.Coins == nil:
		return nil, errors.New("coin source is required")
	case deps.Mempool == nil:
		return nil, errors.New("mempool source is required")
	case deps.Sink == nil:
		return nil, errors.New("block sink is required")
	case deps.Delegations == nil || deps.Verifier == nil:
		return nil, errors.New("delegation store and verifier are required")
	case deps.Producer == nil:
		return nil, errors.New("block producer is required")
	case deps.Pool == nil:
		return nil, errors.New("local pool is required")
	case deps.Metrics == nil:
		return nil, errors.New("staker metrics is required")
	}
	if err := cfg.Policy.Validate(); err != nil {
		return nil, err
	}

	return &StakerService{
		cfg:    cfg,
		deps:   deps,
		logger: logger.With(zap.String("network", string(cfg.Network)), zap.Stringer("staker", cfg.Staker)),
		now:    time.Now,
		sleep:  clock.SleepWithContext,
		status: Status{
			Network: cfg.Network,
			Staker:  cfg.Staker.String(),
			Policy:  cfg.Policy,
		},
	}, nil
}

// Status returns a copy of the current status.
func (s *StakerService) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Run stakes until the context is canceled.
func (s *StakerService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		wait, err := s.attempt(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("staking attempt failed, backing off", zap.Error(err), zap.Duration("sleep", retryDelay))
			wait = retryDelay
		}
		if err := s.wait(ctx, wait); err != nil {
			return err
		}
	}
}

// attempt runs one production round and returns how long to wait before the next.
func (s *StakerService) attempt(ctx context.Context) (time.Duration, error) {
	started := s.now()
	snap, policy, err := s.snapshot(ctx)
	if err != nil {
		s.finish(metrics.OutcomeError, started, err, nil)
		return 0, err
	}

	weight := kernel.Weight(snap.Outputs)
	s.deps.Metrics.SetTipHeight(snap.Tip.Height)
	s.deps.Metrics.SetWeight(weight)
	s.mu.Lock()
	s.status.TipHeight = snap.Tip.Height
	s.status.Weight = weight
	s.status.Outputs = len(snap.Outputs)
	s.status.Delegations = len(snap.Delegations)
	s.status.Policy = policy
	s.mu.Unlock()

	attemptCtx, cancel := context.WithCancel(ctx)
	stopped := s.cancelOnNewTip(attemptCtx, cancel)
	block, err := s.deps.Producer.TryProduceBlock(attemptCtx, snap, policy)
	cancel()
	newTip := <-stopped

	switch {
	case errors.Is(err, kernel.ErrNoEligibleKernel):
		s.finish(metrics.OutcomeNoKernel, started, nil, nil)
		return clock.UntilNextSlot(s.now(), s.cfg.TimestampMask), nil
	case err != nil && newTip && ctx.Err() == nil:
		s.logger.Debug("attempt canceled by new tip", zap.Uint64("height", snap.Tip.Height))
		s.finish(metrics.OutcomeCanceled, started, nil, nil)
		return 0, nil
	case err != nil:
		s.finish(metrics.OutcomeError, started, err, nil)
		return 0, fmt.Errorf("produce block: %w", err)
	}

	submitErr := s.deps.Sink.SubmitBlock(ctx, block)
	s.deps.Metrics.ObserveSubmit(submitErr)
	if submitErr != nil {
		s.logger.Warn("block submission failed",
			zap.Uint64("height", block.Height),
			zap.Stringer("hash", block.Hash()),
			zap.Error(submitErr))
	} else {
		removed, evicted := s.deps.Pool.ApplyBlock(block.Block)
		s.logger.Info("block submitted",
			zap.Uint64("height", block.Height),
			zap.Stringer("hash", block.Hash()),
			zap.Int("mempool_removed", removed),
			zap.Int("mempool_evicted", evicted))
	}
	if s.deps.Journal != nil {
		if err := s.deps.Journal.Record(ctx, block, submitErr); err != nil {
			s.logger.Warn("journal record failed", zap.Error(err))
		}
	}

	s.finish(metrics.OutcomeProduced, started, submitErr, block)
	return clock.UntilNextSlot(s.now(), s.cfg.TimestampMask), nil
}

// cancelOnNewTip cancels the attempt when a new tip arrives. The returned channel yields
// whether that happened once the attempt context is done.
func (s *StakerService) cancelOnNewTip(ctx context.Context, cancel context.CancelFunc) <-chan bool {
	done := make(chan bool, 1)
	go func() {
		select {
		case <-ctx.Done():
			done <- false
		case <-s.deps.TipSignal:
			cancel()
			done <- true
		}
	}()
	return done
}

func (s *StakerService) finish(outcome string, started time.Time, err error, block *model.SignedBlock) {
	s.deps.Metrics.ObserveAttempt(outcome, started)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.LastAttempt = started
	s.status.LastOutcome = outcome
	s.status.LastError = ""
	if err != nil {
		s.status.LastError = err.Error()
	}
	if block != nil {
		s.status.LastBlockHash = block.Hash().String()
		s.status.BlocksProduced++
	}
}

func (s *StakerService) wait(ctx context.Context, d time.Duration) error {
	if s.deps.TipSignal == nil {
		return s.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.deps.TipSignal:
		return nil
	case <-timer.C:
		return nil
	}
}
