package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goheamy/core/model"
)

// Scaled wraps an estimator so that its features are standardised with
// statistics of the training rows only.
type Scaled struct {
	Scaler    *StandardScaler
	Estimator model.Estimator
}

var _ model.Estimator = (*Scaled)(nil)

// Fit fits the scaler on X, then the estimator on the scaled X.
func (p *Scaled) Fit(X, y mat.Matrix) error {
	Xs, err := p.Scaler.FitTransform(X)
	if err != nil {
		return err
	}
	return p.Estimator.Fit(Xs, y)
}

// Predict scales X with the fitted statistics and predicts.
func (p *Scaled) Predict(X mat.Matrix) (mat.Matrix, error) {
	Xs, err := p.Scaler.Transform(X)
	if err != nil {
		return nil, err
	}
	return p.Estimator.Predict(Xs)
}

// Standardized returns a factory producing factory's estimators behind a
// fresh StandardScaler, for use with validation.NewModel.
func Standardized(factory model.Factory) model.Factory {
	return func() model.Estimator {
		return &Scaled{Scaler: NewStandardScaler(true, true), Estimator: factory()}
	}
}
