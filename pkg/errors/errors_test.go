package errors

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"dimension rows", NewDimensionError("Blend", 3, 2, 0), "axis 0 (rows). Expected 3, got 2"},
		{"dimension columns", NewDimensionError("Blend", 1, 2, 1), "axis 1 (columns)"},
		{"validation", NewValidationError("test_size", "must be in (0, 1)", 1.5), "parameter 'test_size'"},
		{"value", NewValueError("ParseMethod", "unknown method \"slsqp\""), "ParseMethod: unknown method"},
		{"shape", NewInputShapeError("Concatenate", []int{2}, []int{3}), "Expected shape [2], got [3]"},
		{"convergence", NewConvergenceError("NelderMead", 10, "IterationLimit", 0.5), "failed to converge after 10 iterations"},
		{"not fitted", NewNotFittedError("MeanRegressor", "Predict"), "not fitted yet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Contains(t, tt.err.Error(), tt.contains)
		})
	}
}

func TestErrorsAs(t *testing.T) {
	err := Wrap(NewConvergenceError("BFGS", 3, "Failure", math.NaN()), "solve")

	var convErr *ConvergenceError
	require.True(t, As(err, &convErr))
	assert.Equal(t, "BFGS", convErr.Algorithm)
	assert.Equal(t, 3, convErr.Iterations)
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("Group", "validate failed", ErrEmptyData)
	assert.True(t, Is(err, ErrEmptyData))
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Warn().Object("warning", NewDataConversionWarning("Frame", "Array", "mixed inputs")).Msg("converted")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	warning := entry["warning"].(map[string]interface{})
	assert.Equal(t, "Frame", warning["from_type"])
	assert.Equal(t, "DataConversionWarning", warning["type"])
}

func TestWarnRouting(t *testing.T) {
	var got []string
	SetWarningHandler(func(w error) { got = append(got, "plain:"+w.Error()) })
	defer SetWarningHandler(func(w error) {})

	Warn(New("first"))

	SetZerologWarnFunc(func(w error) { got = append(got, "zerolog:"+w.Error()) })
	Warn(New("second"))
	SetZerologWarnFunc(nil)

	require.Len(t, got, 2)
	assert.True(t, strings.HasPrefix(got[0], "plain:first"))
	assert.True(t, strings.HasPrefix(got[1], "zerolog:second"))
}

func TestCheckNumericalStability(t *testing.T) {
	assert.NoError(t, CheckNumericalStability("loss", []float64{1, 2, 3}, 0))

	err := CheckNumericalStability("loss", []float64{1, math.NaN(), math.Inf(1)}, 4)
	var numErr *NumericalInstabilityError
	require.True(t, As(err, &numErr))
	assert.Len(t, numErr.Values, 2)
	assert.Equal(t, 4, numErr.Iteration)

	assert.Error(t, CheckScalar("loss", math.Inf(-1), 0))
	assert.NoError(t, CheckScalar("loss", 0.25, 0))
}

func TestClipValue(t *testing.T) {
	assert.Equal(t, 0.0, ClipValue(-0.1, 0, 1))
	assert.Equal(t, 1.0, ClipValue(1.2, 0, 1))
	assert.Equal(t, 0.4, ClipValue(0.4, 0, 1))
}
