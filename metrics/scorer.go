package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goheamy/container"
	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// Scorer maps (truth, prediction) to a scalar loss. Lower is better.
type Scorer interface {
	// Name identifies the scorer in reports and logs.
	Name() string
	// Score computes the loss of yPred against yTrue.
	Score(yTrue, yPred container.Container) (float64, error)
}

// VecFunc is a loss over flattened vectors, e.g. MSE.
type VecFunc func(yTrue, yPred *mat.VecDense) (float64, error)

type vecScorer struct {
	name string
	fn   VecFunc
}

// NewScorer adapts a vector loss into a Scorer. Containers are flattened row
// by row, so for multi-column data the loss is averaged over every element.
func NewScorer(name string, fn VecFunc) Scorer {
	return &vecScorer{name: name, fn: fn}
}

func (s *vecScorer) Name() string { return s.name }

func (s *vecScorer) Score(yTrue, yPred container.Container) (float64, error) {
	if yTrue.Len() != yPred.Len() {
		return 0, errors.NewDimensionError(s.name, yTrue.Len(), yPred.Len(), 0)
	}
	if yTrue.Columns() != yPred.Columns() {
		return 0, errors.NewDimensionError(s.name, yTrue.Columns(), yPred.Columns(), 1)
	}
	return s.fn(Flatten(yTrue), Flatten(yPred))
}

func (s *vecScorer) String() string { return s.name }

// Flatten copies the container into a vector in row-major order.
func Flatten(c container.Container) *mat.VecDense {
	values := c.Values()
	if values.IsEmpty() {
		return &mat.VecDense{}
	}
	r, cols := values.Dims()
	data := make([]float64, 0, r*cols)
	for i := 0; i < r; i++ {
		data = append(data, values.RawRowView(i)...)
	}
	return mat.NewVecDense(len(data), data)
}

var (
	MeanSquaredError            = NewScorer("mean_squared_error", MSE)
	RootMeanSquaredError        = NewScorer("root_mean_squared_error", RMSE)
	MeanAbsoluteError           = NewScorer("mean_absolute_error", MAE)
	MeanAbsolutePercentageError = NewScorer("mean_absolute_percentage_error", MAPE)
	BinaryLogLoss               = NewScorer("log_loss", LogLoss)
)

var registry = lo.SliceToMap([]Scorer{
	MeanSquaredError,
	RootMeanSquaredError,
	MeanAbsoluteError,
	MeanAbsolutePercentageError,
	BinaryLogLoss,
}, func(s Scorer) (string, Scorer) { return s.Name(), s })

var aliases = map[string]string{
	"mse":  "mean_squared_error",
	"rmse": "root_mean_squared_error",
	"mae":  "mean_absolute_error",
	"mape": "mean_absolute_percentage_error",
}

// Lookup returns the registered scorer for a name or short alias
// (mse, rmse, mae, mape).
func Lookup(name string) (Scorer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if full, ok := aliases[key]; ok {
		key = full
	}
	if s, ok := registry[key]; ok {
		return s, nil
	}
	return nil, errors.NewValueError("metrics.Lookup", fmt.Sprintf("unknown scorer %q, expected one of %v", name, Names()))
}

// Names lists the registered scorer names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}
