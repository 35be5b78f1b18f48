package reward

import "errors"

var (
	// ErrUnauthorizedDelegation fails a delegated split whose proof of delegation does not hold.
	ErrUnauthorizedDelegation = errors.New("unauthorized delegation")
	// ErrIncompatiblePolicyCombination is returned when one coinstake asks for both delegation and mpos.
	ErrIncompatiblePolicyCombination = errors.New("delegation and mpos cannot be combined")
	// ErrInvalidFee rejects a delegation fee above MaxDelegationFee.
	ErrInvalidFee = errors.New("delegation fee out of range")
	// ErrInvalidAmount rejects negative subsidy, fee or kernel amounts.
	ErrInvalidAmount = errors.New("negative reward amount")
	// ErrInsufficientHistory means the chain is shorter than the mpos lookback window.
	ErrInsufficientHistory = errors.New("chain too short for mpos lookback")
)
