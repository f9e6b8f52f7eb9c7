// Command analysis measures the false positive rate of rollbloom filters
// across a range of sizes and prints it next to the textbook estimate.
//
//	go run . -items 1000 -k 3 -sizes 1000,10000,100000 -hash polynomial
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jcalabro/rollbloom"
)

func main() {
	items := flag.Int("items", 1000, "number of distinct items to insert")
	probes := flag.Int("probes", 100_000, "number of never-inserted items to query")
	k := flag.Int("k", rollbloom.DefaultHashCount, "number of hash functions")
	sizes := flag.String("sizes", "100,1000,10000,100000", "comma-separated filter sizes in bits")
	hashName := flag.String("hash", "polynomial", "hash family: polynomial or xxh3")
	flag.Parse()

	if err := run(*items, *probes, *k, *sizes, *hashName); err != nil {
		fmt.Fprintln(os.Stderr, "analysis:", err)
		os.Exit(1)
	}
}

func run(items, probes, k int, sizeList, hashName string) error {
	var h rollbloom.HashFunc
	switch hashName {
	case "polynomial":
		h = rollbloom.PolynomialHash
	case "xxh3":
		h = rollbloom.XXH3Hash
	default:
		return fmt.Errorf("unknown hash family %q", hashName)
	}
	if probes <= 0 {
		return fmt.Errorf("probes must be positive (got %d)", probes)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "size\tk\tset bits\tmeasured FP\testimated FP\t")

	for _, field := range strings.Split(sizeList, ",") {
		size, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("bad size %q: %w", field, err)
		}

		f, err := rollbloom.NewWithHash(size, k, h)
		if err != nil {
			return err
		}
		for i := range items {
			f.Insert(fmt.Sprintf("item-%d", i))
		}

		var fp int
		for i := range probes {
			if f.MayContain(fmt.Sprintf("probe-%d", i)) {
				fp++
			}
		}

		fmt.Fprintf(w, "%d\t%d\t%d\t%.4f\t%.4f\t\n",
			f.Size(), f.K(), f.SetBits(),
			float64(fp)/float64(probes), f.EstimatedFalsePositiveRate())
	}

	return w.Flush()
}
