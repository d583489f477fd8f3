// Package benchfmt reads, writes and compares the JSON benchmark history
// produced by the scale benchmarks.
package benchfmt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Result holds the metrics of a single benchmark run.
type Result struct {
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Operations  int                `json:"operations"`
	NsPerOp     float64            `json:"ns_per_op"`
	BytesPerOp  int                `json:"bytes_per_op,omitempty"`
	AllocsPerOp int                `json:"allocs_per_op,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Summary is the content of one history file.
type Summary struct {
	Timestamp string   `json:"timestamp"`
	CommitID  string   `json:"commit_id"`
	Branch    string   `json:"branch"`
	GoVersion string   `json:"go_version"`
	Results   []Result `json:"results"`
}

// Load reads a history file.
func Load(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &s, nil
}

// Write stores the summary as indented JSON.
func (s *Summary) Write(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	return nil
}

// CleanMetrics drops the per-batch progress metrics, which vary with the
// batch count and cannot be compared across runs.
func CleanMetrics(metrics map[string]float64) map[string]float64 {
	filtered := make(map[string]float64, len(metrics))
	for key, value := range metrics {
		if strings.HasPrefix(key, "batch_rate_") ||
			strings.HasPrefix(key, "memory_mb_") ||
			strings.HasPrefix(key, "batch_insert_") ||
			strings.HasPrefix(key, "batch_retrieve_") ||
			strings.HasPrefix(key, "batch_validate_") {
			continue
		}
		filtered[key] = value
	}
	return filtered
}

// Append adds r to <repoRoot>/benchmark_history/<file>, creating the file if
// needed, and returns the path written.
func Append(repoRoot, file string, r Result) (string, error) {
	r.Metrics = CleanMetrics(r.Metrics)

	dir := filepath.Join(repoRoot, "benchmark_history")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	commitID, branch := gitInfo(repoRoot)
	summary := &Summary{
		Timestamp: time.Now().Format(time.RFC3339),
		CommitID:  commitID,
		Branch:    branch,
		GoVersion: runtime.Version(),
		Results:   []Result{r},
	}

	path := filepath.Join(dir, file)
	if existing, err := Load(path); err == nil {
		summary.Results = append(existing.Results, r)
	}

	if err := summary.Write(path); err != nil {
		return "", err
	}
	return path, nil
}

// gitInfo reads the current commit and branch straight from .git, falling
// back to "local"/"dev" outside a checkout.
func gitInfo(repoRoot string) (commitID, branch string) {
	commitID, branch = "local", "dev"

	head, err := os.ReadFile(filepath.Join(repoRoot, ".git", "HEAD"))
	if err != nil {
		return
	}
	content := strings.TrimSpace(string(head))
	if !strings.HasPrefix(content, "ref: ") {
		// Detached HEAD holds the commit itself.
		return truncate(content, 8), branch
	}

	ref := strings.TrimPrefix(content, "ref: ")
	if name, ok := strings.CutPrefix(ref, "refs/heads/"); ok {
		branch = name
	}
	if commit, err := os.ReadFile(filepath.Join(repoRoot, ".git", ref)); err == nil {
		commitID = truncate(strings.TrimSpace(string(commit)), 8)
	}
	return
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
