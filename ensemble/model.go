// Package ensemble combines the predictions of several models: Group collects
// them per validation fold and Optimizer searches for the convex blend weights
// that minimise a scorer.
package ensemble

import (
	"fmt"

	"github.com/YuminosukeSato/goheamy/container"
	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// Validator is a model that can produce held-out predictions.
//
// Validate returns parallel slices indexed by fold: the true labels of each
// validation fold and the model's predictions for it. k is the number of
// folds; k == 1 requests a single holdout fold of testSize fraction.
type Validator interface {
	Validate(k int, testSize float64) (yTrue, yPred []container.Container, err error)
}

// ValidationParams are the arguments passed to Validator.Validate.
type ValidationParams struct {
	K        int
	TestSize float64
}

// DefaultValidationParams returns 5 folds with a 0.1 holdout fraction.
func DefaultValidationParams() ValidationParams {
	return ValidationParams{K: 5, TestSize: 0.1}
}

// StaticModel serves precomputed out-of-fold predictions, e.g. loaded from
// disk. It holds a fixed number of folds and only accepts that k.
type StaticModel struct {
	name        string
	truth       []container.Container
	predictions []container.Container
}

// NewStaticModel creates a StaticModel from parallel per-fold slices.
func NewStaticModel(name string, truth, predictions []container.Container) (*StaticModel, error) {
	if len(truth) != len(predictions) {
		return nil, errors.NewDimensionError("NewStaticModel", len(truth), len(predictions), 0)
	}
	if len(predictions) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "NewStaticModel %s", name)
	}
	return &StaticModel{
		name:        name,
		truth:       append([]container.Container(nil), truth...),
		predictions: append([]container.Container(nil), predictions...),
	}, nil
}

// NewHoldoutModel creates a single-fold StaticModel.
func NewHoldoutModel(name string, truth, prediction container.Container) *StaticModel {
	return &StaticModel{
		name:        name,
		truth:       []container.Container{truth},
		predictions: []container.Container{prediction},
	}
}

// Name returns the model name.
func (m *StaticModel) Name() string { return m.name }

// Validate returns the stored folds. testSize is ignored.
func (m *StaticModel) Validate(k int, _ float64) ([]container.Container, []container.Container, error) {
	if k != len(m.predictions) {
		return nil, nil, errors.NewValidationError("k", fmt.Sprintf("%s holds %d precomputed folds", m.name, len(m.predictions)), k)
	}
	return append([]container.Container(nil), m.truth...), append([]container.Container(nil), m.predictions...), nil
}
