package rollbloom

import (
	"math/bits"

	"github.com/zeebo/xxh3"
)

// HashFunc maps an item to a bit index in [0, size) for the given seed.
// Implementations must be deterministic: the same (item, seed, size) always
// yields the same index.
type HashFunc func(item string, seed, size uint64) uint64

// PolynomialHash is a seeded polynomial rolling hash over the Unicode code
// points of item. For every code point c, in order:
//
//	acc = (acc*seed + c) mod size
//
// starting from acc = 0. The multiply-add is carried out in 128 bits and
// reduced after every step, so the result is exact for any size and seed.
// Invalid UTF-8 bytes are read as U+FFFD.
func PolynomialHash(item string, seed, size uint64) uint64 {
	var acc uint64
	for _, r := range item {
		// acc < size and r < 2^21, so the sum stays below size * 2^64
		// and hi never overflows.
		hi, lo := bits.Mul64(acc, seed)
		lo, carry := bits.Add64(lo, uint64(r), 0)
		acc = bits.Rem64(hi+carry, lo, size)
	}
	return acc
}

// XXH3Hash derives an index from the seeded xxh3 hash of item. It has much
// better distribution than PolynomialHash but produces different indices,
// so filters built with one cannot be queried with the other.
func XXH3Hash(item string, seed, size uint64) uint64 {
	return xxh3.HashStringSeed(item, seed) % size
}

// routeHash returns the raw 64-bit hash used to pick a shard.
func routeHash(item string) uint64 {
	return xxh3.HashString(item)
}
