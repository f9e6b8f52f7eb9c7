// Package rollbloom provides a small, exact bloom filter for string items.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Hashing
//
// Each filter owns a bit array of fixed size m and applies k hash functions
// per item. The k functions are one algorithm, [PolynomialHash], run with the
// seeds 1, 2, ..., k:
//
//	acc = 0
//	for each code point c of item:
//	    acc = (acc*seed + c) mod m
//
// The reduction happens after every step on a 128-bit intermediate, so the
// indices match an arbitrary-precision evaluation of the same recurrence for
// any item length, size or seed.
//
// The polynomial hash is simple and has no distribution guarantees. Short or
// similar keys collide readily, and single-character keys map every seed to
// the same bit. [XXH3Hash] is provided as a drop-in, seeded alternative for
// callers that want a lower false positive rate and do not need indices
// compatible with the polynomial scheme. Select it with [NewWithHash] or
// [NewAtomicWithHash].
//
// # Implementations
//
// [Filter] is the single-threaded filter, backed by a packed bitset.
//
// [AtomicFilter] provides thread-safety using lock-free atomic operations.
// Multiple goroutines can safely call Insert and MayContain concurrently.
//
// [ShardedAtomicFilter] distributes items across multiple independent
// AtomicFilter shards to reduce contention under heavy parallel writes.
//
// # Choosing Parameters
//
// Size and hash count are given explicitly and must both be positive:
//
//	f, err := rollbloom.New(1000, 3)
//
// [NewDefault] uses 100 bits and 3 hash functions. There is no sizing from an
// expected item count; [EstimateFalsePositiveRate] reports the textbook
// estimate for a given configuration.
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. Use external synchronization or choose
// [AtomicFilter] or [ShardedAtomicFilter] for concurrent access.
//
// The CheckAndInsert methods of the atomic filters are NOT single atomic
// operations – there is a race window between the check and the insert.
package rollbloom
