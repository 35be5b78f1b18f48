package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/internal/staker/template"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainSource interface {
		Tip(ctx context.Context) (model.TipSnapshot, error)
		PayoutScripts(ctx context.Context, heights []uint64) ([][]byte, error)
	}
	CoinSource interface {
		Coins(ctx context.Context) ([]model.UnspentOutput, error)
		CoinsOf(ctx context.Context, owners []model.KeyID, tipHeight uint64) ([]model.UnspentOutput, error)
	}
	MempoolSource interface {
		Mempool(ctx context.Context, known func(chainhash.Hash) bool) (model.NodeMempool, error)
	}
	BlockSink interface {
		SubmitBlock(ctx context.Context, block *model.SignedBlock) error
	}
	DelegationStore interface {
		ByStaker(staker model.KeyID) ([]model.DelegationRecord, error)
	}
	DelegationSource interface {
		Delegation(ctx context.Context, delegator model.KeyID) (model.DelegationRecord, error)
	}
	DelegationRegistry interface {
		Put(rec model.DelegationRecord) (bool, error)
		Remove(delegator model.KeyID) error
	}
	DelegationVerifier interface {
		Verify(delegator, staker model.KeyID, pod []byte) bool
	}
	BlockProducer interface {
		TryProduceBlock(ctx context.Context, snap template.Snapshot, policy model.GasPolicy) (*model.SignedBlock, error)
	}
	LocalPool interface {
		SetPolicy(policy model.GasPolicy)
		Add(tx *wire.MsgTx, fee int64) (model.MempoolEntry, error)
		Has(hash chainhash.Hash) bool
		Snapshot() []model.MempoolEntry
		ApplyBlock(block *wire.MsgBlock) (removed, evicted int)
		Retain(keep func(chainhash.Hash) bool) (evicted int)
	}
	GovernanceReader interface {
		Policy(ctx context.Context, base model.GasPolicy) (model.GasPolicy, error)
	}
	Journal interface {
		Record(ctx context.Context, block *model.SignedBlock, submitErr error) error
	}
	MintedRepository interface {
		InsertMinted(ctx context.Context, records []model.MintedRecord) error
	}
	StakerMetrics interface {
		ObserveAttempt(outcome string, started time.Time)
		ObserveSubmit(err error)
		SetWeight(weight int64)
		SetTipHeight(height uint64)
	}
)
