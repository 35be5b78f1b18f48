package kernel

import "errors"

var (
	// ErrNoEligibleKernel means no (output, timestamp) pair met the target. It is a normal outcome.
	ErrNoEligibleKernel = errors.New("no eligible kernel")
	// ErrInvalidKernelProof means a proof does not meet the target it claims.
	ErrInvalidKernelProof = errors.New("invalid kernel proof")
)
