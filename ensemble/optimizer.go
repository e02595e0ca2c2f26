package ensemble

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/YuminosukeSato/goheamy/container"
	"github.com/YuminosukeSato/goheamy/metrics"
	"github.com/YuminosukeSato/goheamy/pkg/errors"
	"github.com/YuminosukeSato/goheamy/pkg/log"
	"github.com/YuminosukeSato/goheamy/report"
)

const (
	defaultTestSize = 0.2
	defaultPenalty  = 1.0
	// starting value of every coordinate before projection
	seedWeight = 0.5
	// finite differences on the penalised objective are noisy well above
	// gonum's default threshold
	gradientThreshold = 1e-6
)

// Optimizer finds the convex blend weights of several models' holdout
// predictions that minimise a scorer.
//
// The solver works on unconstrained points x and scores their projection
// P(x) onto the simplex, adding penalty*||x-P(x)||^2, so every evaluated and
// returned weight vector is non-negative and sums to 1.
type Optimizer struct {
	scorer        metrics.Scorer
	testSize      float64
	penalty       float64
	maxIterations int
	out           io.Writer
	logger        log.Logger

	truth       container.Container
	predictions []container.Container
}

// Result is the outcome of a successful Solve.
type Result struct {
	Weights     []float64
	Score       float64
	Method      Method
	Status      optimize.Status
	Iterations  int
	Evaluations int
	Runtime     time.Duration
}

// NewOptimizer validates every model once with k = 1 and caches the
// predictions. The truth of the first model is used as ground truth.
func NewOptimizer(models []Validator, scorer metrics.Scorer, opts ...Option) (*Optimizer, error) {
	o := &Optimizer{
		scorer:   scorer,
		testSize: defaultTestSize,
		penalty:  defaultPenalty,
		out:      os.Stdout,
		logger:   log.GetLogger().With(log.ComponentKey, "ensemble"),
	}
	for _, opt := range opts {
		opt(o)
	}

	if scorer == nil {
		return nil, errors.NewValidationError("scorer", "must not be nil", nil)
	}
	if o.testSize <= 0 || o.testSize >= 1 {
		return nil, errors.NewValidationError("test_size", "must be in (0, 1)", o.testSize)
	}
	if o.penalty < 0 {
		return nil, errors.NewValidationError("penalty", "must be non-negative", o.penalty)
	}
	if o.maxIterations < 0 {
		return nil, errors.NewValidationError("max_iterations", "must be non-negative", o.maxIterations)
	}
	if len(models) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "NewOptimizer: no models")
	}

	for i, m := range models {
		yTrue, yPred, err := m.Validate(1, o.testSize)
		if err != nil {
			return nil, errors.NewModelError("NewOptimizer", fmt.Sprintf("model %d: validate", i), err)
		}
		if len(yPred) == 0 || len(yTrue) == 0 {
			return nil, errors.Wrapf(errors.ErrEmptyData, "NewOptimizer: model %d returned no folds", i)
		}
		if o.truth == nil {
			o.truth = yTrue[0]
		}
		o.predictions = append(o.predictions, yPred[0])
	}

	o.logger.Debug("holdout predictions cached",
		log.ModelsKey, len(o.predictions),
		log.TestSizeKey, o.testSize,
		log.RowsKey, o.truth.Len(),
	)
	return o, nil
}

// Truth returns the shared ground truth.
func (o *Optimizer) Truth() container.Container { return o.truth }

// Predictions returns the cached predictions in model order.
func (o *Optimizer) Predictions() []container.Container {
	return append([]container.Container(nil), o.predictions...)
}

// Loss scores the blend of the cached predictions under weights.
func (o *Optimizer) Loss(weights []float64) (float64, error) {
	blended, err := container.Blend(weights, o.predictions)
	if err != nil {
		return 0, err
	}
	return o.scorer.Score(o.truth, blended)
}

// Minimize returns the optimal weights found by method.
func (o *Optimizer) Minimize(method Method) ([]float64, error) {
	res, err := o.Solve(method)
	if err != nil {
		return nil, err
	}
	return res.Weights, nil
}

// Solve runs method and prints the best score and weights to the output
// writer. A solver that stops on a limit or failure yields a
// ConvergenceError.
func (o *Optimizer) Solve(method Method) (res *Result, err error) {
	defer errors.Recover(&err, "Optimizer.Solve")
	began := time.Now()

	solver, err := method.solver()
	if err != nil {
		return nil, err
	}
	logger := o.logger.With(log.OperationKey, log.OperationOptimize, log.MethodKey, method.String(), log.ScorerKey, o.scorer.Name())

	var lossErr error
	objective := func(x []float64) float64 {
		w := ProjectSimplex(x)
		loss, err := o.Loss(w)
		if err != nil {
			if lossErr == nil {
				lossErr = err
			}
			return math.Inf(1)
		}
		return loss + o.penalty*distanceSquared(x, w)
	}

	problem := optimize.Problem{Func: objective}
	if method.usesGradient() {
		problem.Grad = func(grad, x []float64) {
			fd.Gradient(grad, objective, x, &fd.Settings{Formula: fd.Central})
		}
	}

	x0 := make([]float64, len(o.predictions))
	floats.AddConst(seedWeight, x0)

	result, solveErr := optimize.Minimize(problem, x0, o.settings(), solver)
	iterations, evaluations := 0, 0
	if result != nil {
		iterations, evaluations = result.MajorIterations, result.FuncEvaluations
	}

	// The objective has kinks on the faces of the simplex, where line
	// searches stop making progress. Nelder-Mead continues from the best
	// point reached.
	if lossErr == nil && method.usesGradient() && lineSearchStalled(solveErr) {
		start, best := x0, math.Inf(1)
		if result != nil && !math.IsInf(result.F, 1) {
			start, best = result.X, result.F
		}
		logger.Debug("line search stalled, refining with nelder-mead",
			log.IterationKey, iterations,
			log.LossKey, best,
		)
		result, solveErr = optimize.Minimize(optimize.Problem{Func: objective}, start, o.settings(), &optimize.NelderMead{})
		if result != nil {
			iterations += result.MajorIterations
			evaluations += result.FuncEvaluations
		}
	}

	if lossErr != nil {
		logger.Error("scorer failed during optimization", lossErr)
		return nil, lossErr
	}
	if solveErr != nil || !converged(result.Status) {
		status, score := optimize.Failure, math.NaN()
		if result != nil {
			status, score = result.Status, result.F
		}
		convErr := errors.NewConvergenceError(method.String(), iterations, status.String(), score)
		if solveErr != nil {
			convErr = errors.Wrap(convErr, solveErr.Error())
		}
		logger.Error("weight optimization did not converge", convErr,
			log.ErrorCodeKey, log.ErrorConvergence,
			log.StatusKey, status.String(),
			log.IterationKey, iterations,
		)
		return nil, convErr
	}

	weights := ProjectSimplex(result.X)
	if sum := floats.Sum(weights); sum > 0 {
		floats.Scale(1/sum, weights)
	}
	if err := errors.CheckNumericalStability("Optimizer.Solve", weights, iterations); err != nil {
		return nil, err
	}
	score, err := o.Loss(weights)
	if err != nil {
		return nil, err
	}
	if err := errors.CheckScalar("Optimizer.Solve", score, iterations); err != nil {
		return nil, err
	}

	res = &Result{
		Weights:     weights,
		Score:       score,
		Method:      method,
		Status:      result.Status,
		Iterations:  iterations,
		Evaluations: evaluations,
		Runtime:     time.Since(began),
	}
	logger.Info("weights optimized",
		log.LossKey, score,
		log.WeightsKey, weights,
		log.StatusKey, result.Status.String(),
		log.IterationKey, iterations,
		log.EvaluationsKey, evaluations,
		log.DurationMsKey, res.Runtime.Milliseconds(),
	)

	if _, err := fmt.Fprintf(o.out, "Best Score (%s): %s\n", o.scorer.Name(), report.FormatFloat(score)); err != nil {
		return nil, errors.Wrap(err, "Optimizer.Solve: write result")
	}
	if _, err := fmt.Fprintf(o.out, "Best Weights: %s\n", report.FormatFloats(weights)); err != nil {
		return nil, errors.Wrap(err, "Optimizer.Solve: write result")
	}
	return res, nil
}

func (o *Optimizer) settings() *optimize.Settings {
	return &optimize.Settings{
		MajorIterations:   o.maxIterations,
		GradientThreshold: gradientThreshold,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 100,
		},
	}
}

var lineSearchErrors = []error{
	optimize.ErrNoProgress,
	optimize.ErrLinesearcherFailure,
	optimize.ErrNonDescentDirection,
	optimize.ErrLinesearcherBound,
}

// lineSearchStalled reports whether a gradient method stopped because its
// line search could not make progress.
func lineSearchStalled(err error) bool {
	if err == nil {
		return false
	}
	return lo.SomeBy(lineSearchErrors, func(target error) bool { return errors.Is(err, target) })
}
