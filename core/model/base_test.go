package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

func TestBaseEstimatorState(t *testing.T) {
	var e BaseEstimator
	assert.False(t, e.IsFitted())

	err := e.CheckFitted("MeanRegressor", "Predict")
	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))
	assert.Equal(t, "Predict", notFitted.Method)

	e.SetFitted()
	assert.True(t, e.IsFitted())
	assert.NoError(t, e.CheckFitted("MeanRegressor", "Predict"))

	e.Reset()
	assert.False(t, e.IsFitted())
}
