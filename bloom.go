package rollbloom

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// ErrInvalidConfiguration is returned when a filter is constructed with a
// non-positive size or hash count, or without a hash function.
var ErrInvalidConfiguration = errors.New("rollbloom: invalid configuration")

// Filter is a non-thread-safe bloom filter over string items.
//
// The filter owns a fixed bit array of Size bits and applies K seeded hash
// functions per operation, using seeds 1 through K. Bits are only ever set,
// never cleared, so an inserted item is always reported as present.
type Filter struct {
	bits  *bitset.BitSet // one bit per slot
	size  uint64         // Number of bits, fixed at construction
	k     uint32         // Number of hash functions
	hash  HashFunc       // Hash family, seeded 1..k
	count uint64         // Number of Insert calls
}

// New creates a bloom filter with size bits and hashCount hash functions
// using PolynomialHash. Both parameters must be positive.
func New(size, hashCount int) (*Filter, error) {
	return NewWithHash(size, hashCount, PolynomialHash)
}

// NewDefault creates a bloom filter with DefaultSize bits and
// DefaultHashCount hash functions.
func NewDefault() *Filter {
	f, err := New(DefaultSize, DefaultHashCount)
	if err != nil {
		panic(err) // unreachable, defaults are valid
	}
	return f
}

// NewWithHash creates a bloom filter that derives bit positions with h
// instead of PolynomialHash.
func NewWithHash(size, hashCount int, h HashFunc) (*Filter, error) {
	m, k, err := validate(size, hashCount, h)
	if err != nil {
		return nil, err
	}

	return &Filter{
		bits: bitset.New(uint(m)),
		size: m,
		k:    k,
		hash: h,
	}, nil
}

// Hash returns the bit index of item for a single seed. The result is always
// in [0, Size()).
func (f *Filter) Hash(item string, seed uint64) uint64 {
	return f.hash(item, seed, f.size)
}

// HashValues returns the K bit indices for item, one per seed in ascending
// order starting at 1. Indices are not deduplicated.
func (f *Filter) HashValues(item string) []uint64 {
	out := make([]uint64, f.k)
	for i := range out {
		out[i] = f.hash(item, uint64(i)+1, f.size)
	}
	return out
}

// Insert adds item to the bloom filter.
func (f *Filter) Insert(item string) {
	for seed := uint64(1); seed <= uint64(f.k); seed++ {
		f.bits.Set(uint(f.hash(item, seed, f.size)))
	}
	f.count++
}

// MayContain checks if item might be in the bloom filter.
// Returns true if the item might be present (with false positive probability),
// or false if the item is definitely not present.
func (f *Filter) MayContain(item string) bool {
	for seed := uint64(1); seed <= uint64(f.k); seed++ {
		if !f.bits.Test(uint(f.hash(item, seed, f.size))) {
			return false
		}
	}
	return true
}

// CheckAndInsert reports whether item might have been present, then inserts it.
func (f *Filter) CheckAndInsert(item string) bool {
	present := f.MayContain(item)
	f.Insert(item)
	return present
}

// Size returns the length of the bit array.
func (f *Filter) Size() uint64 {
	return f.size
}

// K returns the number of hash functions used.
func (f *Filter) K() uint32 {
	return f.k
}

// Count returns the number of Insert calls, including repeated items.
func (f *Filter) Count() uint64 {
	return f.count
}

// SetBits returns the number of bits currently set.
func (f *Filter) SetBits() uint64 {
	return uint64(f.bits.Count())
}

// EstimatedFillRatio returns the proportion of bits that are set.
func (f *Filter) EstimatedFillRatio() float64 {
	return float64(f.SetBits()) / float64(f.size)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the number of items added.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.size, f.k, f.count)
}
