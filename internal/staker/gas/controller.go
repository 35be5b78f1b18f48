// Package gas applies block and transaction gas budgets to mempool admission and template
// selection.
package gas

import (
	"fmt"
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/pkg/safe"
)

// Admission is the gas summary of an admitted transaction.
type Admission struct {
	Outputs   []model.GasMeteredOutput
	Demand    uint64
	CostBound uint64
}

// DecodeTx extracts every contract output of tx.
func DecodeTx(tx *wire.MsgTx) ([]model.GasMeteredOutput, error) {
	var outs []model.GasMeteredOutput
	for i, txOut := range tx.TxOut {
		if !IsContractScript(txOut.PkScript) {
			continue
		}
		out, err := DecodeOutput(uint32(i), txOut.PkScript)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		outs = append(outs, out)
	}
	return outs, nil
}

// Demand sums the gas limits of outs; the transaction is checked against budgets as one unit.
func Demand(outs []model.GasMeteredOutput) (uint64, error) {
	var total uint64
	for _, o := range outs {
		var err error
		if total, err = safe.AddUint64(total, o.GasLimit); err != nil {
			return 0, fmt.Errorf("gas demand: %w", err)
		}
	}
	return total, nil
}

// CostBound is the most a transaction's outputs can spend on gas.
func CostBound(outs []model.GasMeteredOutput) (uint64, error) {
	var total uint64
	for _, o := range outs {
		cost, err := safe.MulUint64(o.GasLimit, o.GasPrice)
		if err != nil {
			return 0, fmt.Errorf("gas cost: %w", err)
		}
		if total, err = safe.AddUint64(total, cost); err != nil {
			return 0, fmt.Errorf("gas cost: %w", err)
		}
	}
	return total, nil
}

// Admit decides whether tx may enter the mempool under policy. A negative fee skips the fee
// check.
func Admit(tx *wire.MsgTx, fee int64, policy model.GasPolicy) (Admission, error) {
	outs, err := DecodeTx(tx)
	if err != nil {
		return Admission{}, err
	}
	if len(outs) == 0 {
		return Admission{}, nil
	}

	for _, o := range outs {
		if o.GasPrice < policy.MinTxGasPrice {
			return Admission{}, fmt.Errorf("%w: output %d price %d, minimum %d", ErrGasPriceTooLow, o.Index, o.GasPrice, policy.MinTxGasPrice)
		}
	}
	demand, err := Demand(outs)
	if err != nil {
		return Admission{}, fmt.Errorf("%w: %w", ErrExceedsBlockGasLimit, err)
	}
	if demand > policy.HardBlockGasLimit {
		return Admission{}, fmt.Errorf("%w: demand %d, limit %d", ErrExceedsBlockGasLimit, demand, policy.HardBlockGasLimit)
	}
	cost, err := CostBound(outs)
	if err != nil {
		return Admission{}, fmt.Errorf("%w: %w", ErrInsufficientGasFee, err)
	}
	if fee >= 0 && uint64(fee) < cost {
		return Admission{}, fmt.Errorf("%w: fee %d, gas cost %d", ErrInsufficientGasFee, fee, cost)
	}
	return Admission{Outputs: outs, Demand: demand, CostBound: cost}, nil
}

// Deferral is an entry left in the pool for a later template.
type Deferral struct {
	Entry  model.MempoolEntry
	Reason error
}

// Rejection is an entry no template may carry under the current policy.
type Rejection struct {
	Entry  model.MempoolEntry
	Reason error
}

// Selection partitions a mempool snapshot for one template.
type Selection struct {
	Selected []model.MempoolEntry
	Deferred []Deferral
	Rejected []Rejection
	GasUsed  uint64
	Fees     int64
}

// SelectForTemplate partitions snapshot under policy. It reads entries in arrival order and
// never modifies snapshot, so equal inputs give equal partitions.
func SelectForTemplate(snapshot []model.MempoolEntry, policy model.GasPolicy) Selection {
	ordered := make([]model.MempoolEntry, len(snapshot))
	copy(ordered, snapshot)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Arrival < ordered[j].Arrival })

	budget := policy.BlockBudget()
	var sel Selection

	pooled := make(map[chainhash.Hash]struct{}, len(ordered))
	for _, e := range ordered {
		pooled[e.TxHash] = struct{}{}
	}
	included := make(map[chainhash.Hash]struct{}, len(ordered))
	// A child may only follow its in-pool parents into the block.
	parentsIncluded := func(e model.MempoolEntry) bool {
		for _, in := range e.Tx.TxIn {
			parent := in.PreviousOutPoint.Hash
			if _, ok := pooled[parent]; !ok {
				continue
			}
			if _, ok := included[parent]; !ok {
				return false
			}
		}
		return true
	}

	selectEntry := func(e model.MempoolEntry) {
		e.State = model.EntrySelected
		sel.Selected = append(sel.Selected, e)
		sel.Fees += e.Fee
		included[e.TxHash] = struct{}{}
	}
	deferEntry := func(e model.MempoolEntry, reason error) {
		e.State = model.EntryDeferred
		sel.Deferred = append(sel.Deferred, Deferral{Entry: e, Reason: reason})
	}
	reject := func(e model.MempoolEntry, reason error) {
		e.State = model.EntryRejected
		sel.Rejected = append(sel.Rejected, Rejection{Entry: e, Reason: reason})
	}

	for _, e := range ordered {
		if !parentsIncluded(e) {
			deferEntry(e, ErrParentNotSelected)
			continue
		}
		if !e.Metered() {
			selectEntry(e)
			continue
		}
		switch {
		case e.Demand > policy.HardBlockGasLimit:
			reject(e, ErrExceedsBlockGasLimit)
		case e.MinGasPrice() < policy.MinTxGasPrice:
			reject(e, ErrGasPriceTooLow)
		case e.Demand > policy.MaxTxGasLimit:
			deferEntry(e, ErrTxExceedsPolicyGasLimit)
		case e.Demand > budget-sel.GasUsed:
			deferEntry(e, ErrBlockGasBudgetExceeded)
		default:
			sel.GasUsed += e.Demand
			selectEntry(e)
		}
	}
	return sel
}

// Controller runs template selection with logging and metrics.
type Controller struct {
	metrics Metrics
	logger  *zap.Logger
}

// NewController constructs a Controller.
func NewController(logger *zap.Logger, metrics Metrics) *Controller {
	return &Controller{metrics: metrics, logger: logger.Named("gas")}
}

// Select is SelectForTemplate observed by metrics.
func (c *Controller) Select(snapshot []model.MempoolEntry, policy model.GasPolicy) Selection {
	started := time.Now()
	sel := SelectForTemplate(snapshot, policy)
	if c.metrics != nil {
		c.metrics.ObserveSelection(len(sel.Selected), len(sel.Deferred), len(sel.Rejected), sel.GasUsed, started)
	}
	c.logger.Debug("template selection",
		zap.Int("selected", len(sel.Selected)),
		zap.Int("deferred", len(sel.Deferred)),
		zap.Int("rejected", len(sel.Rejected)),
		zap.Uint64("gas_used", sel.GasUsed),
		zap.Uint64("budget", policy.BlockBudget()),
	)
	return sel
}
