package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// TestLoggerInterface tests the TestLogger implementation
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationGroup)
	testLogger.Warn("warning message", ErrorCodeKey, ErrorEmptyData)
	testLogger.Error("error message", fmt.Errorf("test error"), ErrorCodeKey, ErrorConvergence)

	require.NotEmpty(t, buffer.String())

	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		assert.True(t, testLogger.ContainsMessage(msg), msg)
	}
	assert.True(t, testLogger.ContainsField("key1", "value1"))
	assert.True(t, testLogger.ContainsField("number", 42.0))
	assert.True(t, testLogger.ContainsField(ErrAttrKey, "test error"))
}

// TestLoggerWith tests contextual fields
func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ComponentKey, "ensemble",
		ModelsKey, 2,
	)
	contextLogger.Info("contextual message", OperationKey, OperationOptimize)
	testLogger.Info("parent message")

	entries, err := testLogger.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "ensemble", entries[0][ComponentKey])
	assert.Equal(t, 2.0, entries[0][ModelsKey])
	assert.Equal(t, OperationOptimize, entries[0][OperationKey])
	_, leaked := entries[1][ComponentKey]
	assert.False(t, leaked, "child fields must not leak into the parent")
}

// TestLoggerEnabled tests level filtering
func TestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	assert.True(t, testLogger.Enabled(ctx, LevelInfo))
	assert.True(t, testLogger.Enabled(ctx, LevelError))
	assert.False(t, testLogger.Enabled(ctx, LevelDebug))

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	assert.False(t, testLogger.ContainsMessage("this should not appear"))
	assert.True(t, testLogger.ContainsMessage("this should appear"))
}

// TestConcurrentLogging tests that With-derived loggers share a safe buffer
func TestConcurrentLogging(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			child := testLogger.With("goroutine_id", id)
			for j := 0; j < 5; j++ {
				child.Info("message", "message_id", j)
			}
		}(i)
	}
	wg.Wait()

	entries, err := testLogger.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("hidden")
	logger.With(ComponentKey, "cache").Info("flushed", PathKey, ".cache/heamy")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "flushed", entry["message"])
	assert.Equal(t, "cache", entry[ComponentKey])
	assert.Equal(t, ".cache/heamy", entry[PathKey])

	assert.True(t, logger.Enabled(context.Background(), LevelWarn))
	assert.False(t, logger.Enabled(context.Background(), LevelDebug))
}

func TestZerologLoggerErrorStack(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	logger.Error("solve failed", errors.New("diverged"), MethodKey, "bfgs")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "diverged", entry[ErrAttrKey])
	assert.Equal(t, "bfgs", entry[MethodKey])
	assert.Contains(t, entry, StacktraceAttrKey)
}

func TestZerologWarnRouting(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)
	errors.SetZerologWarnFunc(logger.warn)
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewDataConversionWarning("Frame", "Array", "mixed container kinds"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	warning, ok := entry["warning"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Array", warning["to_type"])
}
