// Package model defines the estimator contracts consumed by the validation
// package.
package model

import "gonum.org/v1/gonum/mat"

// Fitter is a model that can be trained.
type Fitter interface {
	// Fit trains the model on X (samples x features) and y (samples x targets).
	Fit(X, y mat.Matrix) error
}

// Predictor is a model that can predict.
type Predictor interface {
	// Predict returns one row of predictions per row of X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator is a supervised model.
type Estimator interface {
	Fitter
	Predictor
}

// Factory returns a fresh, unfitted estimator. Cross-validation fits one
// estimator per fold.
type Factory func() Estimator
