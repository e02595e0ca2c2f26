package ensemble

import (
	"io"

	"github.com/YuminosukeSato/goheamy/pkg/log"
)

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithTestSize sets the holdout fraction passed to Validate. Default 0.2.
func WithTestSize(testSize float64) Option {
	return func(o *Optimizer) {
		o.testSize = testSize
	}
}

// WithLogger sets the logger used for solver diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(o *Optimizer) {
		o.logger = logger
	}
}

// WithOutput sets where the best score and weights are printed. Default
// os.Stdout; io.Discard silences the output.
func WithOutput(w io.Writer) Option {
	return func(o *Optimizer) {
		o.out = w
	}
}

// WithMaxIterations limits the solver's major iterations. Zero means no limit.
func WithMaxIterations(n int) Option {
	return func(o *Optimizer) {
		o.maxIterations = n
	}
}

// WithPenalty sets the weight of the squared distance between the solver's
// point and its simplex projection. Default 1.
func WithPenalty(penalty float64) Option {
	return func(o *Optimizer) {
		o.penalty = penalty
	}
}
