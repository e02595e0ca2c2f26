// Package linear provides a least-squares linear model usable as a base
// estimator in ensembles.
package linear

import (
	"github.com/YuminosukeSato/goheamy/core/model"
	"github.com/YuminosukeSato/goheamy/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LinearRegression fits y = X*Coef + Intercept by least squares, optionally
// with an L2 penalty on the coefficients (ridge). y may have several columns.
type LinearRegression struct {
	model.BaseEstimator

	fitIntercept bool
	alpha        float64

	Coef      *mat.Dense // nFeatures x nTargets
	Intercept []float64  // one per target
	NFeatures int
}

var _ model.Estimator = (*LinearRegression)(nil)

// NewLinearRegression creates an unfitted model.
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{fitIntercept: true}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit trains the model on X (samples x features) and y (samples x targets).
//
// Without regularisation the system is solved by QR least squares; with
// alpha > 0 the normal equations (X^T X + alpha*I) w = X^T y are solved.
// The intercept is never penalised: data are centred first.
func (lr *LinearRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LinearRegression.Fit")

	r, c := X.Dims()
	ry, cy := y.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if lr.alpha < 0 {
		return errors.NewValidationError("alpha", "must be non-negative", lr.alpha)
	}

	xMean := make([]float64, c)
	yMean := make([]float64, cy)
	if lr.fitIntercept {
		columnMeans(X, xMean)
		columnMeans(y, yMean)
	}

	xc := mat.NewDense(r, c, nil)
	xc.Apply(func(_, j int, v float64) float64 { return v - xMean[j] }, X)
	yc := mat.NewDense(ry, cy, nil)
	yc.Apply(func(_, j int, v float64) float64 { return v - yMean[j] }, y)

	var coef mat.Dense
	if lr.alpha == 0 && r >= c {
		if err := coef.Solve(xc, yc); err != nil {
			return errors.NewModelError("LinearRegression.Fit", "singular matrix", err)
		}
	} else {
		var gram mat.Dense
		gram.Mul(xc.T(), xc)
		for j := 0; j < c; j++ {
			gram.Set(j, j, gram.At(j, j)+lr.alpha)
		}
		var rhs mat.Dense
		rhs.Mul(xc.T(), yc)
		if err := coef.Solve(&gram, &rhs); err != nil {
			return errors.NewModelError("LinearRegression.Fit", "singular matrix", err)
		}
	}

	intercept := make([]float64, cy)
	for k := 0; k < cy; k++ {
		intercept[k] = yMean[k]
		for j := 0; j < c; j++ {
			intercept[k] -= xMean[j] * coef.At(j, k)
		}
	}

	lr.Coef = &coef
	lr.Intercept = intercept
	lr.NFeatures = c
	lr.SetFitted()
	return nil
}

// Predict returns X*Coef + Intercept.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := lr.CheckFitted("LinearRegression", "Predict"); err != nil {
		return nil, err
	}
	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}
	if r == 0 {
		return &mat.Dense{}, nil
	}

	var out mat.Dense
	out.Mul(X, lr.Coef)
	out.Apply(func(_, k int, v float64) float64 { return v + lr.Intercept[k] }, &out)
	return &out, nil
}

// Weights returns the coefficients of the first target.
func (lr *LinearRegression) Weights() []float64 {
	if lr.Coef == nil {
		return nil
	}
	return mat.Col(nil, 0, lr.Coef)
}

func columnMeans(m mat.Matrix, dst []float64) {
	r, c := m.Dims()
	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += m.At(i, j)
		}
		dst[j] = sum / float64(r)
	}
}
