package ensemble

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/YuminosukeSato/goheamy/container"
	"github.com/YuminosukeSato/goheamy/pkg/errors"
	"github.com/YuminosukeSato/goheamy/pkg/log"
)

// FoldPredictions maps a fold index to the predictions of every model for
// that fold, in model order. A missing fold reads as an empty slice.
type FoldPredictions map[int][]container.Container

// Folds returns the fold indices in ascending order.
func (p FoldPredictions) Folds() []int {
	folds := lo.Keys(p)
	sort.Ints(folds)
	return folds
}

// FoldLabels maps a fold index to its true labels.
type FoldLabels map[int]container.Container

// Group validates every model with params and groups the predictions by fold.
// The true labels of a fold are taken from the first model; later models are
// assumed to report the same labels. Every model must report the same number
// of folds.
func Group(models []Validator, params ValidationParams) (FoldPredictions, FoldLabels, error) {
	logger := log.GetLogger().With(log.ComponentKey, "ensemble", log.OperationKey, log.OperationGroup)

	preds := FoldPredictions{}
	labels := FoldLabels{}
	folds := -1
	for i, m := range models {
		yTrue, yPred, err := m.Validate(params.K, params.TestSize)
		if err != nil {
			return nil, nil, errors.NewModelError("Group", fmt.Sprintf("model %d: validate", i), err)
		}
		if len(yTrue) != len(yPred) {
			return nil, nil, errors.NewDimensionError(fmt.Sprintf("Group: model %d folds", i), len(yTrue), len(yPred), 0)
		}
		if folds < 0 {
			folds = len(yPred)
		} else if len(yPred) != folds {
			return nil, nil, errors.NewValidationError("folds",
				fmt.Sprintf("model %d returned a different number of folds than model 0 (%d)", i, folds), len(yPred))
		}

		for fold, pred := range yPred {
			if _, ok := labels[fold]; !ok {
				labels[fold] = yTrue[fold]
			}
			preds[fold] = append(preds[fold], pred)
		}
		logger.Debug("model validated", log.ModelIndexKey, i, log.FoldsKey, len(yPred))
	}

	logger.Info("predictions grouped", log.ModelsKey, len(models), log.FoldsKey, len(preds))
	return preds, labels, nil
}
