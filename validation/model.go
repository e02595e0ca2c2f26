package validation

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goheamy/container"
	"github.com/YuminosukeSato/goheamy/core/model"
	"github.com/YuminosukeSato/goheamy/pkg/errors"
	"github.com/YuminosukeSato/goheamy/pkg/log"
)

// Model is an estimator factory bound to a training set. Its Validate method
// satisfies ensemble.Validator.
type Model struct {
	name    string
	factory model.Factory
	X, y    container.Container

	shuffle bool
	seed    uint64
	logger  log.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithShuffle shuffles rows with seed before splitting.
func WithShuffle(seed uint64) Option {
	return func(m *Model) {
		m.shuffle = true
		m.seed = seed
	}
}

// WithLogger sets the logger for per-fold diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// NewModel binds factory to features X and targets y.
func NewModel(name string, factory model.Factory, X, y container.Container, opts ...Option) (*Model, error) {
	if factory == nil {
		return nil, errors.NewValidationError("factory", "must not be nil", nil)
	}
	if X.Len() != y.Len() {
		return nil, errors.NewDimensionError("NewModel", X.Len(), y.Len(), 0)
	}
	if X.Len() == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "NewModel %s", name)
	}

	m := &Model{name: name, factory: factory, X: X, y: y}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.GetLogger()
	}
	m.logger = m.logger.With(log.ComponentKey, "validation", log.ModelNameKey, name)
	return m, nil
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Validate fits one estimator per fold and predicts the held-out rows. k == 1
// is a holdout of testSize; k >= 2 is k-fold. Predictions have the kind and
// row labels of y.
func (m *Model) Validate(k int, testSize float64) (yTrue, yPred []container.Container, err error) {
	splitter, err := NewSplitter(k, testSize, m.shuffle, m.seed)
	if err != nil {
		return nil, nil, err
	}
	folds, err := splitter.Split(m.X.Len())
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	for i, fold := range folds {
		truth, pred, err := m.fitFold(fold)
		if err != nil {
			return nil, nil, errors.NewModelError("Model.Validate", fmt.Sprintf("%s fold %d", m.name, i), err)
		}
		yTrue = append(yTrue, truth)
		yPred = append(yPred, pred)
		m.logger.Debug("fold fitted",
			log.FoldKey, i,
			log.RowsKey, len(fold.Train),
		)
	}

	m.logger.Info("model validated",
		log.OperationKey, log.OperationValidate,
		log.FoldsKey, len(folds),
		log.TestSizeKey, testSize,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return yTrue, yPred, nil
}

func (m *Model) fitFold(fold Fold) (container.Container, container.Container, error) {
	est := m.factory()
	if err := est.Fit(m.X.Take(fold.Train).Values(), m.y.Take(fold.Train).Values()); err != nil {
		return nil, nil, err
	}
	raw, err := est.Predict(m.X.Take(fold.Test).Values())
	if err != nil {
		return nil, nil, err
	}

	truth := m.y.Take(fold.Test)
	pred, err := truth.WithValues(mat.DenseCopyOf(raw))
	if err != nil {
		return nil, nil, err
	}
	return truth, pred, nil
}
