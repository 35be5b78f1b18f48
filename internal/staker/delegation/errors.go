package delegation

import "errors"

var (
	// ErrInvalidDelegationProof rejects a block or record whose proof of delegation does not verify.
	ErrInvalidDelegationProof = errors.New("invalid delegation proof")
	// ErrInvalidBlockSignature means the staker's own block signature does not recover to the staker.
	ErrInvalidBlockSignature = errors.New("invalid block signature")
	// ErrDelegationNotFound is returned by registry lookups of an unknown delegator.
	ErrDelegationNotFound = errors.New("delegation not found")
)
