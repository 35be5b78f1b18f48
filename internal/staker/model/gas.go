package model

import (
	"errors"
	"fmt"
)

// OutputKind distinguishes contract deployments from contract calls.
type OutputKind uint8

const (
	OutputDeploy OutputKind = iota + 1
	OutputInvoke
)

func (k OutputKind) String() string {
	switch k {
	case OutputDeploy:
		return "deploy"
	case OutputInvoke:
		return "invoke"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ContractAddress is the 20-byte address of a deployed contract.
type ContractAddress [20]byte

// GasMeteredOutput is a decoded contract output.
type GasMeteredOutput struct {
	Index    uint32
	Kind     OutputKind
	Version  int64
	GasLimit uint64
	GasPrice uint64
	Payload  []byte
	Contract ContractAddress
}

const (
	DefaultHardBlockGasLimit uint64 = 40_000_000
	DefaultMinTxGasPrice     uint64 = 40
)

var ErrInvalidGasPolicy = errors.New("invalid gas policy")

// GasPolicy is the node-local gas policy layered on the consensus hard limit.
type GasPolicy struct {
	HardBlockGasLimit uint64
	SoftBlockGasLimit uint64
	MaxTxGasLimit     uint64
	MinTxGasPrice     uint64
}

// DefaultGasPolicy uses the consensus hard limit everywhere.
func DefaultGasPolicy() GasPolicy {
	return GasPolicy{
		HardBlockGasLimit: DefaultHardBlockGasLimit,
		SoftBlockGasLimit: DefaultHardBlockGasLimit,
		MaxTxGasLimit:     DefaultHardBlockGasLimit,
		MinTxGasPrice:     DefaultMinTxGasPrice,
	}
}

// BlockBudget is the gas a single template may consume.
func (p GasPolicy) BlockBudget() uint64 {
	return min(p.SoftBlockGasLimit, p.HardBlockGasLimit)
}

// Validate rejects policies that can never admit anything sensible.
func (p GasPolicy) Validate() error {
	if p.HardBlockGasLimit == 0 {
		return fmt.Errorf("%w: hard block gas limit is zero", ErrInvalidGasPolicy)
	}
	return nil
}
