package model

// PoDSize is the length of a proof of delegation (compact signature).
const PoDSize = 65

// DelegationRecord authorizes Staker to stake Delegator's coins for a fee.
type DelegationRecord struct {
	Delegator        KeyID
	Staker           KeyID
	Fee              uint8
	ActivationHeight uint64
	PoD              []byte
}

// Supersedes reports whether r replaces other for the same delegator.
func (r DelegationRecord) Supersedes(other DelegationRecord) bool {
	return r.Delegator == other.Delegator && r.ActivationHeight > other.ActivationHeight
}
