package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_Usage(t *testing.T) {
	cases := map[string][]string{
		"no args":      {},
		"two args":     {"0", "0"},
		"four args":    {"0", "0", "in.txt", "extra"},
		"bad flag":     {"x", "0", "in.txt"},
		"bad selector": {"0", "two", "in.txt"},
		"unknown opt":  {"--bogus", "0", "0", "in.txt"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, out, _ := execute(t, args...)
			assert.Equal(t, 1, code)
			assert.Equal(t, usageLine+"\n", out)
		})
	}
}

func TestRun_Differencing(t *testing.T) {
	path := writeFile(t, "in.txt", "8\n7\n6\n5\n")
	code, out, errOut := execute(t, "--size", "4", "0", "0", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "0\n", out)
}

func TestRun_FlagIsParsedAsFloat(t *testing.T) {
	path := writeFile(t, "in.txt", "5 3 2\n")
	code, out, errOut := execute(t, "--size", "3", "0.0", "0", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "0\n", out)
}

func TestRun_LocalSearch(t *testing.T) {
	path := writeFile(t, "in.txt", "10 9 8 7 6 5 4 3 2 1\n")
	for _, algo := range []string{"1", "2", "3", "11", "12", "13"} {
		t.Run(algo, func(t *testing.T) {
			code, out, errOut := execute(t, "--size", "10", "--iterations", "300", "--seed", "3", "0", algo, path)
			require.Equal(t, 0, code, errOut)
			v, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
			require.NoError(t, err)
			// Total 55 is odd, so the residue is odd and at least 1.
			assert.Equal(t, int64(1), v%2)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	path := writeFile(t, "in.txt", "1 2 3\n")

	code, out, errOut := execute(t, "--size", "3", "0", "7", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "unsupported algorithm")

	code, _, errOut = execute(t, "--size", "4", "0", "0", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "not enough weights")

	code, _, _ = execute(t, "0", "0", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)

	code, _, errOut = execute(t, "--workers", "0", "1", "0", "unused")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid configuration")
}

func TestRun_Sweep(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "sweep.prom")
	code, out, errOut := execute(t,
		"--trials", "2", "--size", "6", "--iterations", "20", "--seed", "5",
		"--workers", "2", "--metrics-file", metrics, "--log-level", "error",
		"1", "0", "unused")
	require.Equal(t, 0, code, errOut)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 14)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `partition_runs_total{algorithm="kk"} 2`)
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	cfgPath := writeFile(t, "partition.yaml", "size: 3\niterations: 10\n")
	in := writeFile(t, "in.txt", "5 3 2 100\n")

	code, out, errOut := execute(t, "--config", cfgPath, "0", "0", in)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "0\n", out, "size from the file reads three weights")

	code, out, errOut = execute(t, "--config", cfgPath, "--size", "4", "0", "0", in)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "90\n", out, "flag overrides the file")

	code, _, _ = execute(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "0", "0", in)
	assert.Equal(t, 1, code)
}

func TestRun_NegativeFlag(t *testing.T) {
	path := writeFile(t, "in.txt", "8\n7\n6\n5\n")
	cases := map[string][]string{
		"flags first":         {"--size", "4", "-1", "0", path},
		"fractional":          {"--size", "4", "-0.5", "0", path},
		"flags last":          {"-1", "0", path, "--size", "4"},
		"negative flag value": {"--seed", "-5", "--size=4", "-1", "0", path},
		"explicit separator":  {"--size", "4", "--", "-1", "0", path},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, out, errOut := execute(t, args...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, "0\n", out)
		})
	}

	// A negative selector is a number too; it is rejected as an unknown algorithm.
	code, out, errOut := execute(t, "--size", "4", "-1", "-3", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "unsupported algorithm")
}

func TestPositionalsLast(t *testing.T) {
	fs := newRootCmd(&bytes.Buffer{}, &bytes.Buffer{}).PersistentFlags()
	cases := []struct {
		in, want []string
	}{
		{[]string{"-1", "0", "f"}, []string{"--", "-1", "0", "f"}},
		{[]string{"-1", "--seed", "-7", "0", "f"}, []string{"--seed", "-7", "--", "-1", "0", "f"}},
		{[]string{"--no-color", "2", "0", "f"}, []string{"--no-color", "--", "2", "0", "f"}},
		{[]string{"1", "--", "--x", "f"}, []string{"--", "1", "--x", "f"}},
		{nil, []string{"--"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, positionalsLast(fs, tc.in), "%q", tc.in)
	}
}
