// Package goheamy provides helpers for model ensembling and stacking in Go.
//
// A workflow validates several base models, collects their held-out
// predictions per fold and either stacks them or blends them with convex
// weights found by an optimiser.
//
// # Quick Start
//
// Blend two models' holdout predictions:
//
//	package main
//
//	import (
//	    "log"
//
//	    "github.com/YuminosukeSato/goheamy/container"
//	    "github.com/YuminosukeSato/goheamy/core/model"
//	    "github.com/YuminosukeSato/goheamy/ensemble"
//	    "github.com/YuminosukeSato/goheamy/linear"
//	    "github.com/YuminosukeSato/goheamy/metrics"
//	    "github.com/YuminosukeSato/goheamy/validation"
//	)
//
//	func main() {
//	    X, _ := container.NewArray([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 10, 1)
//	    y := container.NewVector([]float64{2.1, 3.9, 6.2, 8.1, 9.8, 12.2, 13.9, 16.1, 18.0, 20.2})
//
//	    ols, _ := validation.NewModel("ols", func() model.Estimator {
//	        return linear.NewLinearRegression()
//	    }, X, y)
//	    ridge, _ := validation.NewModel("ridge", func() model.Estimator {
//	        return linear.NewLinearRegression(linear.WithAlpha(5))
//	    }, X, y)
//
//	    opt, err := ensemble.NewOptimizer([]ensemble.Validator{ols, ridge}, metrics.MeanSquaredError)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    weights, err := opt.Minimize(ensemble.NelderMead)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = weights // printed as "Best Weights: [...]"
//	}
//
// # Packages
//
//   - container: Frame and Array containers; Split, Concatenate, Ensure2D, Index, ColumnNames, Blend
//   - metrics: loss functions and named scorers
//   - report: score summaries, fold tables and charts
//   - validation: KFold/holdout splitting and a Validator built from an estimator factory
//   - ensemble: per-fold prediction grouping and blend weight optimisation
//   - cache: cache directory cleanup
//   - config: settings for the heamy command
//   - linear, preprocessing: simple base estimators
//   - pkg/errors, pkg/log: structured errors and logging
//
// # Error Handling
//
// Errors carry stack traces and are typed, so callers can branch with
// errors.As:
//
//	w, err := opt.Minimize(ensemble.BFGS)
//	var convErr *errors.ConvergenceError
//	if errors.As(err, &convErr) {
//	    // raise the iteration limit or try ensemble.NelderMead
//	}
package goheamy
