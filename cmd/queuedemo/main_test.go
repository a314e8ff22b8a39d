package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huynhanx03/go-queue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-queue/pkg/settings"
)

const primesOutput = `true
false
2
5
[
 11,
 7,
 5,
 3,
 2
]
2
4
[
 11,
 7,
 5,
 3
]
`

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// =============================================================================
// Primes walkthrough
// =============================================================================

func TestRunPrimes(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runPrimes(&out))
	assert.Equal(t, primesOutput, out.String())
}

func TestRootCmd_Primes(t *testing.T) {
	stdout, _, err := execute(t, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, primesOutput, stdout)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "unexpected")
	assert.Error(t, err)
}

// =============================================================================
// Subcommand: run
// =============================================================================

func TestRunItems(t *testing.T) {
	t.Run("unbounded", func(t *testing.T) {
		var out bytes.Buffer
		err := runItems(&out, zap.NewNop(), settings.Queue{}, []string{"a", "b", "c"})
		require.NoError(t, err)
		assert.Equal(t, "size: 3\nfull: false\nfront: a\n[\n c,\n b,\n a\n]\na\nb\nc\n", out.String())
	})

	t.Run("bounded_drops_overflow", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		var out bytes.Buffer
		err := runItems(&out, zap.New(core), settings.Queue{Capacity: 2}, []string{"a", "b", "c"})
		require.NoError(t, err)
		assert.Equal(t, "size: 2\nfull: true\nfront: a\n[\n b,\n a\n]\na\nb\n", out.String())

		entries := logs.FilterMessage("queue full, dropping item").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "c", entries[0].ContextMap()["item"])
		assert.EqualValues(t, 2, entries[0].ContextMap()["capacity"])
	})

	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		err := runItems(&out, zap.NewNop(), settings.Queue{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "size: 0\nfull: false\n[]\n", out.String())
	})

	t.Run("invalid_capacity", func(t *testing.T) {
		err := runItems(&bytes.Buffer{}, zap.NewNop(), settings.Queue{Capacity: -1}, []string{"a"})
		require.Error(t, err)
		assert.ErrorIs(t, err, queue.ErrInvalidCapacity)
	})
}

func TestRunCmd(t *testing.T) {
	t.Run("capacity_flag", func(t *testing.T) {
		stdout, _, err := execute(t, "run", "--log-level", "error", "--capacity", "1", "x", "y")
		require.NoError(t, err)
		assert.Equal(t, "size: 1\nfull: true\nfront: x\n[\n x\n]\nx\n", stdout)
	})

	t.Run("config_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "queue.yaml")
		require.NoError(t, os.WriteFile(path, []byte("queue:\n  capacity: 2\nlogger:\n  log_level: error\n"), 0o600))

		stdout, _, err := execute(t, "run", "--config", path, "1", "2", "3")
		require.NoError(t, err)
		assert.Contains(t, stdout, "size: 2\nfull: true\n")
	})

	t.Run("negative_capacity_prints_trace", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "demo.log")
		_, stderr, err := execute(t, "run", "--log-file", logFile, "--capacity", "-1", "x")
		require.Error(t, err)
		assert.ErrorIs(t, err, queue.ErrInvalidCapacity)
		assert.Contains(t, stderr, "queue: can't declare queue size of -1")
		assert.Contains(t, stderr, "failed to create queue")

		logged, readErr := os.ReadFile(logFile)
		require.NoError(t, readErr)
		assert.Contains(t, string(logged), "queue demo failed")
	})

	t.Run("bad_config", func(t *testing.T) {
		_, stderr, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, stderr, "failed to read config")
	})
}
