// Package dhash_test provides scale testing for the double hashing table.
//
// This file contains small-scale benchmarks that test the performance with
// ten thousand entries, providing insights into baseline performance.
// It measures:
//   - Insertion performance (overall and per batch)
//   - Random lookup performance
//   - Sequential lookup performance
//   - Deletion performance, including the shrink back to the minimum size
//   - Memory efficiency (heap bytes per key-value pair)
package dhash_test

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/theflywheel/dhash"
	"github.com/theflywheel/dhash/internal/benchfmt"
)

// BenchmarkTenThousandKeys evaluates the performance of the table with ten
// thousand numeric keys.
//
// Metrics collected:
// - Insertion rate: Keys inserted per second with progress reporting
// - Random lookup rate: Performance of random access patterns
// - Sequential lookup rate: Performance of sequential key verification
// - Deletion rate: Keys deleted per second
// - Memory: Average heap bytes per key-value pair
func BenchmarkTenThousandKeys(b *testing.B) {
	fmt.Printf("BenchmarkTenThousandKeys started execution, b.N = %d\n", b.N)

	// Force benchmark to run only once regardless of -benchtime flag
	b.N = 1

	b.ResetTimer()
	b.StopTimer()

	numKeys := 10_000
	progressInterval := 1_000

	keys := make([]string, numKeys)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}

	heapBefore := heapAlloc()
	tbl := dhash.New()
	defer tbl.Destroy()

	metrics := benchfmt.Result{
		Name:       "TenThousandKeys",
		Category:   "scale",
		Operations: numKeys,
		Metrics:    make(map[string]float64),
	}

	b.Logf("Starting insertion of %d keys...", numKeys)
	b.StartTimer()
	writeStart := time.Now()

	for i, key := range keys {
		// Same value as key
		tbl.Insert(key, key)

		if (i+1)%progressInterval == 0 {
			b.StopTimer()
			elapsed := time.Since(writeStart)
			rate := float64(i+1) / elapsed.Seconds()
			b.Logf("Inserted %d keys... (%.2f keys/sec)", i+1, rate)
			b.StartTimer()
		}
	}

	b.StopTimer()
	writeTime := time.Since(writeStart)
	insertionRate := float64(numKeys) / writeTime.Seconds()
	b.Logf("Time to insert %d keys: %v (%.2f keys/sec), table size %d",
		numKeys, writeTime, insertionRate, tbl.Size())
	metrics.Metrics["insertion_rate"] = insertionRate

	heapAfter := heapAlloc()

	randomSampleSize := 1_000
	b.Logf("Verifying random sample of %d keys...", randomSampleSize)

	b.StartTimer()
	randomReadStart := time.Now()

	for i := 0; i < randomSampleSize; i++ {
		keyID := (i*31 + 17) % numKeys

		val, found := tbl.Search(keys[keyID])
		if !found {
			b.Fatalf("Random key %d not found", keyID)
		}
		if val != keys[keyID] {
			b.Fatalf("Value mismatch for random key %d: expected %s, got %s",
				keyID, keys[keyID], val)
		}
	}

	b.StopTimer()
	randomReadTime := time.Since(randomReadStart)
	randomLookupRate := float64(randomSampleSize) / randomReadTime.Seconds()
	b.Logf("Time to perform %d random lookups: %v (%.2f lookups/sec)",
		randomSampleSize, randomReadTime, randomLookupRate)
	metrics.Metrics["random_lookup_rate"] = randomLookupRate

	b.Logf("Verifying all %d keys sequentially...", numKeys)

	b.StartTimer()
	seqReadStart := time.Now()

	for i, key := range keys {
		val, found := tbl.Search(key)
		if !found {
			b.Fatalf("Key %d not found", i)
		}
		if val != key {
			b.Fatalf("Value mismatch for key %d: expected %s, got %s", i, key, val)
		}
	}

	b.StopTimer()
	seqReadTime := time.Since(seqReadStart)
	seqLookupRate := float64(numKeys) / seqReadTime.Seconds()
	b.Logf("Time to verify all %d keys sequentially: %v (%.2f lookups/sec)",
		numKeys, seqReadTime, seqLookupRate)
	metrics.Metrics["sequential_lookup_rate"] = seqLookupRate

	b.StartTimer()
	deleteStart := time.Now()

	for _, key := range keys {
		tbl.Delete(key)
	}

	b.StopTimer()
	deleteTime := time.Since(deleteStart)
	deletionRate := float64(numKeys) / deleteTime.Seconds()
	st := tbl.Stats()
	b.Logf("Time to delete %d keys: %v (%.2f keys/sec), %d shrinks, final size %d",
		numKeys, deleteTime, deletionRate, st.Shrinks, st.Size)
	metrics.Metrics["deletion_rate"] = deletionRate
	metrics.Metrics["shrinks"] = float64(st.Shrinks)

	if tbl.Len() != 0 {
		b.Fatalf("Expected empty table after deleting every key, got %d entries", tbl.Len())
	}

	bytesPerKey := float64(heapAfter-min(heapBefore, heapAfter)) / float64(numKeys)
	b.Logf("Average heap bytes per key-value pair: %.2f bytes", bytesPerKey)

	metrics.Metrics["bytes_per_key"] = bytesPerKey
	metrics.NsPerOp = float64(writeTime.Nanoseconds()+randomReadTime.Nanoseconds()+
		seqReadTime.Nanoseconds()+deleteTime.Nanoseconds()) / float64(numKeys)
	metrics.BytesPerOp = int(bytesPerKey)

	if err := saveBenchmarkResult(metrics, "latest.json"); err != nil {
		b.Logf("Failed to save benchmark result to latest.json: %v", err)
	}

	b.Logf("Ten thousand keys benchmark completed successfully")
}
