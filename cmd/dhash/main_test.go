package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/dhash/internal/benchfmt"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)

	err := app.Run(context.Background(), append([]string{"dhash"}, args...))
	return out.String(), err
}

func TestRunScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("insert k v\nsearch k\nsearch missing\n"), 0644))

	for _, hasher := range []string{"polynomial", "xxhash"} {
		t.Run(hasher, func(t *testing.T) {
			out, err := runApp(t, "", "--hasher", hasher, "--log-format", "text", "run", path)
			require.NoError(t, err)
			assert.Equal(t, "v\n(not found)\n", out)
		})
	}
}

func TestRunScriptStdin(t *testing.T) {
	out, err := runApp(t, "insert a 1\nstats\n", "--base-size", "100", "run")
	require.NoError(t, err)
	assert.Equal(t, "count=1 size=101 base_size=100 tombstones=0 load=0% grows=0 shrinks=0\n", out)
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := runApp(t, "insert a 1\n", "--hasher", "fnv", "run")
	assert.ErrorContains(t, err, "invalid --hasher")

	_, err = runApp(t, "bogus\n", "run")
	assert.ErrorContains(t, err, "invalid script")

	_, err = runApp(t, "", "--log-format", "xml", "run")
	assert.ErrorContains(t, err, "unknown log format")

	_, err = runApp(t, "", "run", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "failed to open script")
}

func TestBenchCompare(t *testing.T) {
	dir := t.TempDir()
	base := &benchfmt.Summary{CommitID: "aaaa", Results: []benchfmt.Result{
		{Name: "TenThousandKeys", Category: "scale", Metrics: map[string]float64{"insertion_rate": 100}},
	}}
	current := &benchfmt.Summary{CommitID: "bbbb", Results: []benchfmt.Result{
		{Name: "TenThousandKeys", Category: "scale", Metrics: map[string]float64{"insertion_rate": 50}},
	}}
	basePath := filepath.Join(dir, "base.json")
	currentPath := filepath.Join(dir, "current.json")
	require.NoError(t, base.Write(basePath))
	require.NoError(t, current.Write(currentPath))

	out, err := runApp(t, "", "bench", "compare", basePath, currentPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Benchmark Comparison: aaaa vs bbbb")
	assert.Contains(t, out, "[REGRESSION] TenThousandKeys (scale)")
	assert.Contains(t, out, "-50.00%")

	reportPath := filepath.Join(dir, "report.json")
	_, err = runApp(t, "", "bench", "compare", "--fail-on-regression", "--output", reportPath, basePath, currentPath)
	assert.ErrorContains(t, err, "1 significant performance regressions")
	assert.FileExists(t, reportPath)

	_, err = runApp(t, "", "bench", "compare", basePath)
	assert.Error(t, err)
}
