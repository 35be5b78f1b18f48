package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// EntryState tracks a mempool entry through template selection.
type EntryState string

const (
	EntryAdmitted EntryState = "admitted"
	EntryPending  EntryState = "pending"
	EntrySelected EntryState = "selected"
	EntryDeferred EntryState = "deferred"
	EntryEvicted  EntryState = "evicted"
	EntryRejected EntryState = "rejected"
)

// MempoolEntry is a transaction waiting to be mined.
type MempoolEntry struct {
	Tx         *wire.MsgTx
	TxHash     chainhash.Hash
	GasOutputs []GasMeteredOutput
	Demand     uint64
	Fee        int64
	Arrival    uint64
	State      EntryState
}

// Metered reports whether the entry carries contract outputs.
func (e MempoolEntry) Metered() bool {
	return len(e.GasOutputs) > 0
}

// MinGasPrice is the smallest per-output gas price, zero when unmetered.
func (e MempoolEntry) MinGasPrice() uint64 {
	if len(e.GasOutputs) == 0 {
		return 0
	}
	p := e.GasOutputs[0].GasPrice
	for _, o := range e.GasOutputs[1:] {
		p = min(p, o.GasPrice)
	}
	return p
}

// PendingTx is a transaction seen in the node's mempool with the fee the node computed for it.
type PendingTx struct {
	Tx   *wire.MsgTx
	Fee  int64
	Time int64
}

// NodeMempool is one read of the node's mempool. TxIDs holds every transaction the node
// reported; Pending carries only those the caller did not already know.
type NodeMempool struct {
	TxIDs   map[chainhash.Hash]struct{}
	Pending []PendingTx
}

// Contains reports whether the node still holds hash.
func (m NodeMempool) Contains(hash chainhash.Hash) bool {
	_, ok := m.TxIDs[hash]
	return ok
}
