package template

import (
	"context"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/yody-staker/internal/staker/gas"
	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/internal/staker/reward"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// KernelSearcher finds a stake kernel.
	KernelSearcher interface {
		FindProof(ctx context.Context, modifier model.StakeModifier, bits uint32, outputs []model.UnspentOutput, minTime, maxTime uint32) (*model.KernelProof, error)
		Mask() uint32
	}
	// Selector picks mempool transactions for a template.
	Selector interface {
		Select(snapshot []model.MempoolEntry, policy model.GasPolicy) gas.Selection
	}
	// Splitter computes coinstake payouts.
	Splitter interface {
		ComputeOutputs(req reward.Request) ([]model.Payout, error)
	}
	// Signer signs with keys it holds, addressed by key id.
	Signer interface {
		PublicKey(id model.KeyID) (*btcec.PublicKey, error)
		SignCompact(id model.KeyID, hash chainhash.Hash) ([]byte, error)
		SignDER(id model.KeyID, hash []byte) ([]byte, error)
	}
	// BlockAuthorizer checks block signatures and proofs of delegation.
	BlockAuthorizer interface {
		Check(delegator, staker model.KeyID, pod []byte) error
		VerifyBlockSignature(hash chainhash.Hash, sig []byte, staker model.KeyID, delegator *model.KeyID) error
	}
)
