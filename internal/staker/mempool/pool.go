// Package mempool holds admitted transactions awaiting a template.
package mempool

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/gas"
	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

var (
	ErrAlreadyInPool = errors.New("transaction already in pool")
	ErrSpendConflict = errors.New("transaction spends an output already spent in pool")
)

// Pool is a single-writer transaction pool. Readers get copies.
type Pool struct {
	mu      sync.RWMutex
	entries map[chainhash.Hash]*model.MempoolEntry
	spends  map[wire.OutPoint]chainhash.Hash
	arrival uint64
	policy  model.GasPolicy
	logger  *zap.Logger
}

// New constructs an empty Pool admitting under policy.
func New(logger *zap.Logger, policy model.GasPolicy) *Pool {
	return &Pool{
		entries: make(map[chainhash.Hash]*model.MempoolEntry),
		spends:  make(map[wire.OutPoint]chainhash.Hash),
		policy:  policy,
		logger:  logger.Named("mempool"),
	}
}

// SetPolicy replaces the admission policy. Entries already in the pool stay.
func (p *Pool) SetPolicy(policy model.GasPolicy) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.policy = policy
}

// Add admits tx paying fee. Rejected transactions never enter the pool.
func (p *Pool) Add(tx *wire.MsgTx, fee int64) (model.MempoolEntry, error) {
	hash := tx.TxHash()

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.entries[hash]; ok {
		return model.MempoolEntry{}, fmt.Errorf("%w: %s", ErrAlreadyInPool, hash)
	}
	for _, in := range tx.TxIn {
		if other, ok := p.spends[in.PreviousOutPoint]; ok {
			return model.MempoolEntry{}, fmt.Errorf("%w: %s spent by %s", ErrSpendConflict, in.PreviousOutPoint, other)
		}
	}

	adm, err := gas.Admit(tx, fee, p.policy)
	if err != nil {
		p.logger.Debug("transaction rejected", zap.Stringer("tx", hash), zap.Error(err))
		return model.MempoolEntry{}, fmt.Errorf("admit %s: %w", hash, err)
	}

	p.arrival++
	e := &model.MempoolEntry{
		Tx:         tx,
		TxHash:     hash,
		GasOutputs: adm.Outputs,
		Demand:     adm.Demand,
		Fee:        fee,
		Arrival:    p.arrival,
		State:      model.EntryPending,
	}
	p.entries[hash] = e
	for _, in := range tx.TxIn {
		p.spends[in.PreviousOutPoint] = hash
	}
	return *e, nil
}

// Has reports whether a transaction is pooled.
func (p *Pool) Has(hash chainhash.Hash) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.entries[hash]
	return ok
}

// Len is the number of pooled transactions.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}

// Snapshot copies the pool in arrival order.
func (p *Pool) Snapshot() []model.MempoolEntry {
	p.mu.RLock()
	out := make([]model.MempoolEntry, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, *e)
	}
	p.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Arrival < out[j].Arrival })
	return out
}

// Remove drops a transaction. It reports whether it was pooled.
func (p *Pool) Remove(hash chainhash.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remove(hash)
}

// ApplyBlock removes transactions the block includes and evicts those that conflict with its
// spends.
func (p *Pool) ApplyBlock(block *wire.MsgBlock) (removed, evicted int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, tx := range block.Transactions {
		if p.remove(tx.TxHash()) {
			removed++
		}
	}
	for _, tx := range block.Transactions {
		for _, in := range tx.TxIn {
			if other, ok := p.spends[in.PreviousOutPoint]; ok {
				p.entries[other].State = model.EntryEvicted
				p.remove(other)
				evicted++
			}
		}
	}

	if removed > 0 || evicted > 0 {
		p.logger.Debug("block applied",
			zap.Stringer("block", block.BlockHash()),
			zap.Int("removed", removed),
			zap.Int("evicted", evicted),
			zap.Int("remaining", len(p.entries)),
		)
	}
	return removed, evicted
}

// Retain evicts every entry keep rejects and reports how many went. The node drops
// transactions once another block confirms them or they expire, so the pool follows it.
func (p *Pool) Retain(keep func(chainhash.Hash) bool) (evicted int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for hash, e := range p.entries {
		if keep(hash) {
			continue
		}
		e.State = model.EntryEvicted
		p.remove(hash)
		evicted++
	}
	if evicted > 0 {
		p.logger.Debug("stale transactions evicted",
			zap.Int("evicted", evicted),
			zap.Int("remaining", len(p.entries)),
		)
	}
	return evicted
}

func (p *Pool) remove(hash chainhash.Hash) bool {
	e, ok := p.entries[hash]
	if !ok {
		return false
	}
	for _, in := range e.Tx.TxIn {
		if p.spends[in.PreviousOutPoint] == hash {
			delete(p.spends, in.PreviousOutPoint)
		}
	}
	delete(p.entries, hash)
	return true
}
