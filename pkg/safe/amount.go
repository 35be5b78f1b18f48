// Package safe provides overflow-checked integer helpers for monetary and gas arithmetic.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when an operation leaves the range of its result type.
var ErrOverflow = errors.New("integer overflow")

// AddInt64 returns a+b or ErrOverflow.
func AddInt64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return a + b, nil
}

// SumInt64 adds all values, failing on the first overflow.
func SumInt64(values ...int64) (int64, error) {
	var total int64
	for _, v := range values {
		var err error
		if total, err = AddInt64(total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// MulInt64 returns a*b or ErrOverflow.
func MulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return c, nil
}

// AddUint64 returns a+b or ErrOverflow.
func AddUint64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return a + b, nil
}

// MulUint64 returns a*b or ErrOverflow.
func MulUint64(a, b uint64) (uint64, error) {
	if a != 0 && b > math.MaxUint64/a {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return a * b, nil
}
