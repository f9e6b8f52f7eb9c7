package rollbloom

import (
	"fmt"
	"math"
)

const (
	// DefaultSize is the bit array length used by NewDefault.
	DefaultSize = 100
	// DefaultHashCount is the number of hash functions used by NewDefault.
	DefaultHashCount = 3
)

// EstimateFalsePositiveRate estimates the false positive rate of a filter of
// size bits using k hash functions after items insertions.
// Formula: (1 - e^(-kn/m))^k
//
// The estimate assumes independent, uniform hash functions. PolynomialHash
// is neither, so treat the result as a lower bound for short or similar keys.
func EstimateFalsePositiveRate(size uint64, k uint32, items uint64) float64 {
	m := float64(size)
	n := float64(items)
	kf := float64(k)

	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-kf*n/m), kf)
}

// validate checks constructor parameters and converts them to the widths the
// filters store.
func validate(size, hashCount int, h HashFunc) (uint64, uint32, error) {
	if size <= 0 {
		return 0, 0, fmt.Errorf("%w: size must be positive (got %d)", ErrInvalidConfiguration, size)
	}
	if hashCount <= 0 {
		return 0, 0, fmt.Errorf("%w: hash count must be positive (got %d)", ErrInvalidConfiguration, hashCount)
	}
	if uint64(hashCount) > math.MaxUint32 {
		return 0, 0, fmt.Errorf("%w: hash count too large (got %d)", ErrInvalidConfiguration, hashCount)
	}
	if h == nil {
		return 0, 0, fmt.Errorf("%w: hash function is nil", ErrInvalidConfiguration)
	}
	return uint64(size), uint32(hashCount), nil
}
