package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SatoshiPerCoin is the number of base units in one coin.
const SatoshiPerCoin = 100_000_000

var satoshiPerCoin = decimal.NewFromInt(SatoshiPerCoin)

// CoinAmount is an amount in base units that parses from coin notation ("0.0001").
type CoinAmount int64

// ParseCoinAmount converts a decimal coin string to base units.
func ParseCoinAmount(s string) (CoinAmount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q is negative", s)
	}
	units := d.Mul(satoshiPerCoin)
	if !units.Equal(units.Truncate(0)) {
		return 0, fmt.Errorf("amount %q has more than 8 decimal places", s)
	}
	if units.GreaterThan(decimal.NewFromInt(maxMoney)) {
		return 0, fmt.Errorf("amount %q exceeds money supply", s)
	}
	return CoinAmount(units.IntPart()), nil
}

const maxMoney = 107_822_406 * SatoshiPerCoin

// UnmarshalFlag implements flags.Unmarshaler.
func (a *CoinAmount) UnmarshalFlag(value string) error {
	v, err := ParseCoinAmount(value)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Satoshi returns the amount in base units.
func (a CoinAmount) Satoshi() int64 {
	return int64(a)
}

func (a CoinAmount) String() string {
	return decimal.New(int64(a), -8).StringFixed(8)
}
