package dhash_test

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/theflywheel/dhash/internal/benchfmt"
)

// getMemoryUsage returns the current memory stats as a formatted string
func getMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB",
		float64(m.Alloc)/1024/1024,
		float64(m.Sys)/1024/1024)
}

// getMemoryStats returns the current memory stats as a map
func getMemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

// heapAlloc returns the live heap after a forced collection.
func heapAlloc() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// saveBenchmarkResult appends a result to the repository's benchmark_history.
func saveBenchmarkResult(metrics benchfmt.Result, resultsFile string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// bench/ sits one level below the repository root
	path, err := benchfmt.Append(filepath.Dir(currentDir), resultsFile, metrics)
	if err != nil {
		return err
	}

	fmt.Printf("Benchmark results saved to: %s\n", path)
	return nil
}
