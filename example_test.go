package rollbloom_test

import (
	"fmt"
	"sync"

	"github.com/jcalabro/rollbloom"
)

// This example demonstrates basic bloom filter usage for membership testing.
func Example() {
	// Create a filter with 100 bits and 3 hash functions
	f, err := rollbloom.New(100, 3)
	if err != nil {
		panic(err)
	}

	// Add some items
	f.Insert("apple")
	f.Insert("banana")
	f.Insert("cherry")

	// Test membership
	fmt.Println("apple:", f.MayContain("apple"))   // true (added)
	fmt.Println("banana:", f.MayContain("banana")) // true (added)
	fmt.Println("grape:", f.MayContain("grape"))   // false (not added)

	// Output:
	// apple: true
	// banana: true
	// grape: false
}

// This example shows the bit indices derived for an item.
func ExampleFilter_HashValues() {
	f := rollbloom.NewDefault()

	fmt.Println(f.HashValues("apple"))

	// Output:
	// [30 13 14]
}

// This example demonstrates using AtomicFilter for concurrent access.
func Example_concurrent() {
	// AtomicFilter is safe for concurrent Insert and MayContain
	f, err := rollbloom.NewAtomic(100_000, 3)
	if err != nil {
		panic(err)
	}

	var wg sync.WaitGroup

	// Spawn multiple writers
	for i := range 4 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range 1000 {
				f.Insert(fmt.Sprintf("worker-%d-item-%d", id, j))
			}
		}(i)
	}

	// Spawn multiple readers (can run concurrently with writers)
	for i := range 4 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range 1000 {
				_ = f.MayContain(fmt.Sprintf("worker-%d-item-%d", id, j))
			}
		}(i)
	}

	wg.Wait()
	fmt.Println("Items added:", f.Count())

	// Output:
	// Items added: 4000
}

// This example shows ShardedAtomicFilter for high-throughput concurrent writes.
func Example_sharded() {
	f, err := rollbloom.NewShardedAtomic(1_000_000, 3, 16)
	if err != nil {
		panic(err)
	}

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range 10_000 {
				f.Insert(fmt.Sprintf("key-%d-%d", id, j))
			}
		}(i)
	}

	wg.Wait()
	fmt.Println("Shards:", f.NumShards())
	fmt.Println("Total items:", f.Count())

	// Output:
	// Shards: 16
	// Total items: 80000
}

// This example shows how to monitor filter statistics.
func Example_statistics() {
	f := rollbloom.NewDefault()

	for _, s := range []string{"apple", "banana", "cherry"} {
		f.Insert(s)
	}

	fmt.Printf("Size: %d bits\n", f.Size())
	fmt.Printf("Hash functions (k): %d\n", f.K())
	fmt.Printf("Items added: %d\n", f.Count())
	fmt.Printf("Fill ratio: %.1f%%\n", f.EstimatedFillRatio()*100)

	// Output:
	// Size: 100 bits
	// Hash functions (k): 3
	// Items added: 3
	// Fill ratio: 9.0%
}

// This example swaps the polynomial hash for seeded xxh3.
func ExampleNewWithHash() {
	f, err := rollbloom.NewWithHash(10_000, 7, rollbloom.XXH3Hash)
	if err != nil {
		panic(err)
	}

	f.Insert("hello")
	fmt.Println(f.MayContain("hello"))

	// Output:
	// true
}

func ExampleNew_invalid() {
	_, err := rollbloom.New(0, 3)
	fmt.Println(err)

	// Output:
	// rollbloom: invalid configuration: size must be positive (got 0)
}

func ExampleEstimateFalsePositiveRate() {
	rate := rollbloom.EstimateFalsePositiveRate(1000, 3, 100)
	fmt.Printf("Estimated FP rate: %.2f%%\n", rate*100)

	// Output:
	// Estimated FP rate: 1.74%
}
