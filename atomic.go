package rollbloom

import (
	"math/bits"
	"runtime"
	"sync/atomic"
)

// AtomicFilter is a thread-safe bloom filter using atomic operations.
// It derives bit positions exactly like Filter, but stores the bit array
// as atomic.Uint64 words so Insert and MayContain may run concurrently.
type AtomicFilter struct {
	words []atomic.Uint64 // size bits packed 64 per word
	size  uint64          // Number of bits, fixed at construction
	k     uint32          // Number of hash functions
	hash  HashFunc        // Hash family, seeded 1..k
	count atomic.Uint64   // Number of Insert calls
}

// NewAtomic creates a thread-safe bloom filter with size bits and hashCount
// hash functions using PolynomialHash.
func NewAtomic(size, hashCount int) (*AtomicFilter, error) {
	return NewAtomicWithHash(size, hashCount, PolynomialHash)
}

// NewAtomicWithHash creates a thread-safe bloom filter that derives bit
// positions with h.
func NewAtomicWithHash(size, hashCount int, h HashFunc) (*AtomicFilter, error) {
	m, k, err := validate(size, hashCount, h)
	if err != nil {
		return nil, err
	}

	return &AtomicFilter{
		words: make([]atomic.Uint64, (m+63)/64),
		size:  m,
		k:     k,
		hash:  h,
	}, nil
}

// Hash returns the bit index of item for a single seed.
func (f *AtomicFilter) Hash(item string, seed uint64) uint64 {
	return f.hash(item, seed, f.size)
}

// HashValues returns the K bit indices for item, one per seed in ascending
// order starting at 1.
func (f *AtomicFilter) HashValues(item string) []uint64 {
	out := make([]uint64, f.k)
	for i := range out {
		out[i] = f.hash(item, uint64(i)+1, f.size)
	}
	return out
}

// Insert adds item to the bloom filter atomically.
func (f *AtomicFilter) Insert(item string) {
	for seed := uint64(1); seed <= uint64(f.k); seed++ {
		pos := f.hash(item, seed, f.size)
		f.words[pos/64].Or(1 << (pos % 64))
	}
	f.count.Add(1)
}

// MayContain checks if item might be in the bloom filter.
// This operation is safe to call concurrently with Insert.
func (f *AtomicFilter) MayContain(item string) bool {
	for seed := uint64(1); seed <= uint64(f.k); seed++ {
		pos := f.hash(item, seed, f.size)
		if f.words[pos/64].Load()&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

// CheckAndInsert reports whether item might have been present, then inserts
// it. The check and the insert are not one atomic step: two goroutines
// inserting the same new item may both observe false.
func (f *AtomicFilter) CheckAndInsert(item string) bool {
	present := f.MayContain(item)
	f.Insert(item)
	return present
}

// Size returns the length of the bit array.
func (f *AtomicFilter) Size() uint64 {
	return f.size
}

// K returns the number of hash functions used.
func (f *AtomicFilter) K() uint32 {
	return f.k
}

// Count returns the number of Insert calls.
func (f *AtomicFilter) Count() uint64 {
	return f.count.Load()
}

// SetBits returns the number of bits currently set.
func (f *AtomicFilter) SetBits() uint64 {
	var n uint64
	for i := range f.words {
		n += uint64(bits.OnesCount64(f.words[i].Load()))
	}
	return n
}

// EstimatedFillRatio returns the proportion of bits that are set.
func (f *AtomicFilter) EstimatedFillRatio() float64 {
	return float64(f.SetBits()) / float64(f.size)
}

// EstimatedFalsePositiveRate estimates the current false positive rate.
func (f *AtomicFilter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.size, f.k, f.count.Load())
}

// ShardedAtomicFilter is a thread-safe bloom filter that distributes writes
// across multiple shards to reduce contention under parallel workloads.
// Each shard is an independent AtomicFilter, and items are consistently
// routed to shards by their xxh3 hash.
type ShardedAtomicFilter struct {
	shards    []*AtomicFilter
	numShards uint64
	mask      uint64 // numShards - 1, for fast modulo
}

// NewShardedAtomic creates a sharded thread-safe bloom filter. The size bits
// are split evenly across shards, rounding each shard up to a whole bit.
// numShards must be a power of 2 (will be rounded up if not).
func NewShardedAtomic(size, hashCount int, numShards uint64) (*ShardedAtomicFilter, error) {
	if _, _, err := validate(size, hashCount, PolynomialHash); err != nil {
		return nil, err
	}

	numShards = nextPowerOf2(numShards)
	perShard := (uint64(size) + numShards - 1) / numShards

	shards := make([]*AtomicFilter, numShards)
	for i := range shards {
		s, err := NewAtomic(int(perShard), hashCount)
		if err != nil {
			return nil, err
		}
		shards[i] = s
	}

	return &ShardedAtomicFilter{
		shards:    shards,
		numShards: numShards,
		mask:      numShards - 1,
	}, nil
}

// NewShardedAtomicDefault creates a sharded filter with a number of shards
// tuned to the current GOMAXPROCS value (minimum 4).
func NewShardedAtomicDefault(size, hashCount int) (*ShardedAtomicFilter, error) {
	numShards := max(uint64(runtime.GOMAXPROCS(0)), 4)
	return NewShardedAtomic(size, hashCount, numShards)
}

func (f *ShardedAtomicFilter) shard(item string) *AtomicFilter {
	return f.shards[routeHash(item)&f.mask]
}

// Insert adds item to its shard.
func (f *ShardedAtomicFilter) Insert(item string) {
	f.shard(item).Insert(item)
}

// MayContain checks if item might be in the bloom filter.
func (f *ShardedAtomicFilter) MayContain(item string) bool {
	return f.shard(item).MayContain(item)
}

// CheckAndInsert reports whether item might have been present, then inserts
// it. Like AtomicFilter.CheckAndInsert it is best-effort under concurrency.
func (f *ShardedAtomicFilter) CheckAndInsert(item string) bool {
	return f.shard(item).CheckAndInsert(item)
}

// Size returns the total number of bits across all shards.
func (f *ShardedAtomicFilter) Size() uint64 {
	var total uint64
	for _, s := range f.shards {
		total += s.Size()
	}
	return total
}

// K returns the number of hash functions used per shard.
func (f *ShardedAtomicFilter) K() uint32 {
	return f.shards[0].K()
}

// Count returns the total number of Insert calls.
func (f *ShardedAtomicFilter) Count() uint64 {
	var total uint64
	for _, s := range f.shards {
		total += s.Count()
	}
	return total
}

// NumShards returns the number of shards.
func (f *ShardedAtomicFilter) NumShards() uint64 {
	return f.numShards
}

// SetBits returns the number of bits set across all shards.
func (f *ShardedAtomicFilter) SetBits() uint64 {
	var total uint64
	for _, s := range f.shards {
		total += s.SetBits()
	}
	return total
}

// EstimatedFillRatio returns the proportion of bits set across all shards.
func (f *ShardedAtomicFilter) EstimatedFillRatio() float64 {
	return float64(f.SetBits()) / float64(f.Size())
}

// EstimatedFalsePositiveRate estimates the current false positive rate as
// the average across shards.
func (f *ShardedAtomicFilter) EstimatedFalsePositiveRate() float64 {
	var sum float64
	for _, s := range f.shards {
		sum += s.EstimatedFalsePositiveRate()
	}
	return sum / float64(f.numShards)
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
