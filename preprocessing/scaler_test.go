package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goheamy/core/model"
	"github.com/YuminosukeSato/goheamy/linear"
	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

func TestStandardScaler(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 5,
		2, 5,
		3, 5,
		4, 5,
	})
	s := NewStandardScaler(true, true)
	Xs, err := s.FitTransform(X)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{2.5, 5}, s.Mean, 1e-12)
	assert.Equal(t, 1.0, s.Scale[1], "constant feature is not scaled")
	assert.InDelta(t, 0.0, mean(mat.Col(nil, 0, Xs)), 1e-12)
	assert.Equal(t, 0.0, Xs.At(0, 1))

	back, err := s.InverseTransform(Xs)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(X, back, 1e-12))
	assert.Contains(t, s.String(), "n_features=2")
}

func mean(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

func TestStandardScalerErrors(t *testing.T) {
	s := NewStandardScaler(true, true)
	_, err := s.Transform(mat.NewDense(1, 1, nil))
	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))

	require.NoError(t, s.Fit(mat.NewDense(2, 1, []float64{1, 2})))
	_, err = s.Transform(mat.NewDense(1, 2, nil))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	assert.Error(t, s.Fit(&mat.Dense{}))
}

func TestStandardizedFactory(t *testing.T) {
	factory := Standardized(func() model.Estimator { return linear.NewLinearRegression() })
	a, b := factory(), factory()
	assert.NotSame(t, a, b)

	X := mat.NewDense(4, 1, []float64{10, 20, 30, 40})
	y := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	require.NoError(t, a.Fit(X, y))

	pred, err := a.Predict(mat.NewDense(1, 1, []float64{50}))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, pred.At(0, 0), 1e-9)
}
