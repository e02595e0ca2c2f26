package ensemble

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/optimize"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// Method names an unconstrained gonum solver used by Optimizer.
type Method string

// Supported methods.
const (
	NelderMead      Method = "nelder-mead"
	BFGS            Method = "bfgs"
	LBFGS           Method = "lbfgs"
	CG              Method = "cg"
	GradientDescent Method = "gradient-descent"
)

// Methods returns every supported method, NelderMead first.
func Methods() []Method {
	return []Method{NelderMead, BFGS, LBFGS, CG, GradientDescent}
}

// ParseMethod resolves a method name case-insensitively. Underscores and
// spaces are read as dashes, so "Nelder_Mead" and "L-BFGS" are accepted.
func ParseMethod(name string) (Method, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	switch normalized {
	case "nelder-mead", "neldermead":
		return NelderMead, nil
	case "bfgs":
		return BFGS, nil
	case "lbfgs", "l-bfgs":
		return LBFGS, nil
	case "cg", "conjugate-gradient":
		return CG, nil
	case "gradient-descent", "gd":
		return GradientDescent, nil
	}
	return "", errors.NewValueError("ParseMethod", fmt.Sprintf("unknown method %q, want one of %v", name, Methods()))
}

func (m Method) String() string { return string(m) }

// usesGradient reports whether the solver needs Problem.Grad.
func (m Method) usesGradient() bool {
	return m != NelderMead
}

func (m Method) solver() (optimize.Method, error) {
	switch m {
	case NelderMead:
		return &optimize.NelderMead{}, nil
	case BFGS:
		return &optimize.BFGS{}, nil
	case LBFGS:
		return &optimize.LBFGS{}, nil
	case CG:
		return &optimize.CG{}, nil
	case GradientDescent:
		return &optimize.GradientDescent{}, nil
	}
	return nil, errors.NewValueError("Optimizer.Solve", fmt.Sprintf("unknown method %q", string(m)))
}

// converged reports whether status is a successful termination.
func converged(status optimize.Status) bool {
	switch status {
	case optimize.Success,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.GradientThreshold,
		optimize.StepConvergence,
		optimize.MethodConverge:
		return true
	}
	return false
}
