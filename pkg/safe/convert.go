package safe

import (
	"fmt"
	"math"
)

// Uint32 narrows v to uint32. Negative values and values above math.MaxUint32 are rejected.
func Uint32[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range: %w", v, ErrOverflow)
	}
	return uint32(v), nil
}

// Int64 widens or narrows v to int64. Values above math.MaxInt64 are rejected.
func Int64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range: %w", v, ErrOverflow)
	}
	return int64(v), nil
}
