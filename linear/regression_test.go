package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

func TestLinearRegressionFit(t *testing.T) {
	// y = 2*x0 - x1 + 3
	X := mat.NewDense(5, 2, []float64{
		1, 0,
		2, 1,
		3, 5,
		4, 2,
		0, 3,
	})
	y := mat.NewDense(5, 1, nil)
	for i := 0; i < 5; i++ {
		y.Set(i, 0, 2*X.At(i, 0)-X.At(i, 1)+3)
	}

	lr := NewLinearRegression()
	require.NoError(t, lr.Fit(X, y))
	assert.InDeltaSlice(t, []float64{2, -1}, lr.Weights(), 1e-9)
	assert.InDelta(t, 3.0, lr.Intercept[0], 1e-9)

	pred, err := lr.Predict(mat.NewDense(1, 2, []float64{10, 10}))
	require.NoError(t, err)
	assert.InDelta(t, 13.0, pred.At(0, 0), 1e-9)
}

func TestLinearRegressionRidgeShrinks(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	ols := NewLinearRegression()
	require.NoError(t, ols.Fit(X, y))
	ridge := NewLinearRegression(WithAlpha(10))
	require.NoError(t, ridge.Fit(X, y))

	assert.InDelta(t, 2.0, ols.Weights()[0], 1e-9)
	assert.Less(t, ridge.Weights()[0], ols.Weights()[0])
	assert.Greater(t, ridge.Weights()[0], 0.0)
}

func TestLinearRegressionNoIntercept(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{3, 5, 7})

	lr := NewLinearRegression(WithFitIntercept(false))
	require.NoError(t, lr.Fit(X, y))
	assert.Equal(t, 0.0, lr.Intercept[0])
	// least squares through the origin: sum(xy)/sum(x^2) = 34/14
	assert.InDelta(t, 34.0/14.0, lr.Weights()[0], 1e-9)
}

func TestLinearRegressionErrors(t *testing.T) {
	lr := NewLinearRegression()

	_, err := lr.Predict(mat.NewDense(1, 1, nil))
	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))

	err = lr.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}), mat.NewDense(2, 1, nil))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	err = NewLinearRegression(WithAlpha(-1)).Fit(mat.NewDense(1, 1, []float64{1}), mat.NewDense(1, 1, []float64{1}))
	var validationErr *errors.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	require.NoError(t, lr.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}), mat.NewDense(3, 1, []float64{1, 2, 3})))
	_, err = lr.Predict(mat.NewDense(1, 2, nil))
	assert.True(t, errors.As(err, &dimErr))
}
