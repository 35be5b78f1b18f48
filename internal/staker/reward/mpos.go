package reward

import "fmt"

// MPoSParams fixes the participant window of multi-participant staking.
type MPoSParams struct {
	FirstBlock uint64
	// LastBlock ends the MPoS era; zero means it never ends.
	LastBlock  uint64
	Recipients int
	// LookbackOffset is the distance from the block being built to the newest participant.
	LookbackOffset uint64
}

// DefaultMPoSParams mirrors mainnet: ten recipients looking back past coinbase maturity.
func DefaultMPoSParams() MPoSParams {
	return MPoSParams{
		FirstBlock:     5000,
		Recipients:     10,
		LookbackOffset: 500,
	}
}

// Active reports whether a block at height shares its reward.
func (p MPoSParams) Active(height uint64) bool {
	if p.Recipients < 2 || height < p.FirstBlock {
		return false
	}
	return p.LastBlock == 0 || height <= p.LastBlock
}

// Heights lists the heights of the N-1 earlier blocks whose signers share the reward of the block
// at height, newest first.
func (p MPoSParams) Heights(height uint64) ([]uint64, error) {
	if p.Recipients < 2 {
		return nil, nil
	}
	others := uint64(p.Recipients - 1)
	if height < p.LookbackOffset+others-1 {
		return nil, fmt.Errorf("%w: height %d", ErrInsufficientHistory, height)
	}
	heights := make([]uint64, 0, others)
	for i := uint64(0); i < others; i++ {
		heights = append(heights, height-p.LookbackOffset-i)
	}
	return heights, nil
}
