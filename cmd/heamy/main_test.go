package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReportCommand(t *testing.T) {
	out, err := execute(t, "report", "--metric", "mse", "1", "2", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Metric: mean_squared_error\n"+
		"Folds accuracy: [1.0, 2.0, 3.0]\n"+
		"Mean accuracy: 2.0\n"+
		"Standard Deviation: 0.8164"), out)

	out, err = execute(t, "report", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "Accuracy: 0.5\n", out)

	_, err = execute(t, "report", "abc")
	assert.Error(t, err)

	_, err = execute(t, "report")
	assert.Error(t, err)
}

func TestReportCommandTableAndPlot(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "scores.png")
	out, err := execute(t, "report", "--table", "--plot", plot, "0.25", "0.75")
	require.NoError(t, err)
	assert.Contains(t, out, "Mean accuracy: 0.5")
	assert.Contains(t, strings.ToUpper(out), "FOLD")
	assert.FileExists(t, plot)
}

func TestFlushCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "m"), 0o755))

	out, err := execute(t, "flush", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "Cache flushed: "+dir+"\n", out)
	assert.NoDirExists(t, dir)
}

func TestFlushCommandUsesConfig(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "from-config")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	cfg := writeFile(t, tmp, "heamy.toml", "cache_dir = \""+filepath.ToSlash(dir)+"\"\n")

	_, err := execute(t, "--config", cfg, "flush")
	require.NoError(t, err)
	assert.NoDirExists(t, dir)
}

func TestBlendCommand(t *testing.T) {
	tmp := t.TempDir()
	truth := writeFile(t, tmp, "truth.csv", "y\n1\n2\n3\n4\n")
	good := writeFile(t, tmp, "good.csv", "pred\n1\n2\n3\n4\n")
	bad := writeFile(t, tmp, "bad.csv", "pred\n2\n3\n4\n5\n")

	out, err := execute(t, "blend", "--truth", truth, "--pred", good, "--pred", bad)
	require.NoError(t, err)
	assert.Contains(t, out, "Best Score (mean_squared_error): ")
	assert.Contains(t, out, "Best Weights: [")
	assert.Contains(t, out, "good.csv")
	assert.Contains(t, out, "bad.csv")

	_, err = execute(t, "blend", "--truth", truth, "--pred", good, "--method", "slsqp")
	assert.Error(t, err)

	_, err = execute(t, "blend", "--truth", truth)
	assert.Error(t, err)

	_, err = execute(t, "blend", "--truth", filepath.Join(tmp, "missing.csv"), "--pred", good)
	assert.Error(t, err)
}

func TestBlendCommandIterationLimit(t *testing.T) {
	tmp := t.TempDir()
	truth := writeFile(t, tmp, "truth.csv", "y\n1\n2\n3\n4\n")
	good := writeFile(t, tmp, "good.csv", "pred\n1\n2\n3\n4\n")
	bad := writeFile(t, tmp, "bad.csv", "pred\n2\n3\n4\n5\n")

	_, err := execute(t, "blend", "--truth", truth, "--pred", good, "--pred", bad, "--max-iter", "1")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"--log-level", "trace", "report", "1"})
	root.SetOut(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}
