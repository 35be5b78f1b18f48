package reward

import "github.com/goodnatureofminers/yody-staker/internal/staker/model"

// SubsidyParams is the block subsidy halving schedule.
type SubsidyParams struct {
	Initial         int64
	HalvingInterval uint64
	MaxHalvings     uint64
}

// DefaultSubsidyParams is the mainnet schedule.
func DefaultSubsidyParams() SubsidyParams {
	return SubsidyParams{
		Initial:         4 * model.SatoshiPerCoin,
		HalvingInterval: 985_500,
		MaxHalvings:     7,
	}
}

// Subsidy is the newly minted amount for a block at height.
func (p SubsidyParams) Subsidy(height uint64) int64 {
	if p.HalvingInterval == 0 {
		return p.Initial
	}
	halvings := height / p.HalvingInterval
	if halvings >= p.MaxHalvings || halvings >= 63 {
		return 0
	}
	return p.Initial >> halvings
}
