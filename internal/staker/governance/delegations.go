package governance

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

const methodDelegations = "delegations"

const delegationsABI = `[
	{"inputs":[{"name":"","type":"address"}],"name":"delegations","outputs":[
		{"name":"staker","type":"address"},
		{"name":"fee","type":"uint8"},
		{"name":"blockHeight","type":"uint256"},
		{"name":"PoD","type":"bytes"}
	],"stateMutability":"view","type":"function"}
]`

var ErrNoDelegation = errors.New("no delegation on chain")

// DelegationReader reads delegation records from the chain's delegation contract.
type DelegationReader struct {
	caller   Caller
	contract string
	abi      abi.ABI
	logger   *zap.Logger
}

func NewDelegationReader(logger *zap.Logger, caller Caller, contract string) (*DelegationReader, error) {
	if contract == "" {
		return nil, errors.New("delegation contract address is required")
	}
	parsed, err := abi.JSON(strings.NewReader(delegationsABI))
	if err != nil {
		return nil, fmt.Errorf("parse delegation abi: %w", err)
	}
	return &DelegationReader{
		caller:   caller,
		contract: contract,
		abi:      parsed,
		logger:   logger.Named("delegations"),
	}, nil
}

// Delegation returns the record currently registered for delegator.
func (r *DelegationReader) Delegation(ctx context.Context, delegator model.KeyID) (model.DelegationRecord, error) {
	data, err := r.abi.Pack(methodDelegations, common.BytesToAddress(delegator[:]))
	if err != nil {
		return model.DelegationRecord{}, fmt.Errorf("pack %s: %w", methodDelegations, err)
	}
	out, err := r.caller.CallContract(ctx, r.contract, data)
	if err != nil {
		return model.DelegationRecord{}, fmt.Errorf("call %s: %w", methodDelegations, err)
	}
	values, err := r.abi.Unpack(methodDelegations, out)
	if err != nil {
		return model.DelegationRecord{}, fmt.Errorf("unpack %s: %w", methodDelegations, err)
	}
	if len(values) != 4 {
		return model.DelegationRecord{}, fmt.Errorf("unpack %s: got %d values", methodDelegations, len(values))
	}

	staker, ok1 := values[0].(common.Address)
	fee, ok2 := values[1].(uint8)
	height, ok3 := values[2].(*big.Int)
	pod, ok4 := values[3].([]byte)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return model.DelegationRecord{}, fmt.Errorf("unpack %s: unexpected value types", methodDelegations)
	}
	if staker == (common.Address{}) {
		return model.DelegationRecord{}, fmt.Errorf("%w: %s", ErrNoDelegation, delegator)
	}
	if !height.IsUint64() {
		return model.DelegationRecord{}, fmt.Errorf("unpack %s: activation height out of range", methodDelegations)
	}

	var stakerID model.KeyID
	copy(stakerID[:], staker.Bytes())
	return model.DelegationRecord{
		Delegator:        delegator,
		Staker:           stakerID,
		Fee:              fee,
		ActivationHeight: height.Uint64(),
		PoD:              pod,
	}, nil
}
