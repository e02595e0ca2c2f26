// Package report prints summary statistics over per-fold scores.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/goheamy/metrics"
)

// Summary holds population statistics over fold scores.
type Summary struct {
	Scores   []float64
	Mean     float64
	StdDev   float64
	Variance float64
}

// Summarize computes the population mean, standard deviation and variance.
// Empty input yields NaN statistics.
func Summarize(scores []float64) Summary {
	return Summary{
		Scores:   scores,
		Mean:     stat.Mean(scores, nil),
		StdDev:   stat.PopStdDev(scores, nil),
		Variance: stat.PopVariance(scores, nil),
	}
}

// Report writes a human-readable score summary to w. A non-nil metric is named
// first. A single score prints as one accuracy line; otherwise the folds and
// their mean, standard deviation and variance are printed.
func Report(w io.Writer, scores []float64, metric metrics.Scorer) error {
	var b strings.Builder
	if metric != nil {
		fmt.Fprintf(&b, "Metric: %s\n", metric.Name())
	}
	if len(scores) == 1 {
		fmt.Fprintf(&b, "Accuracy: %s\n", FormatFloat(scores[0]))
	} else {
		s := Summarize(scores)
		fmt.Fprintf(&b, "Folds accuracy: %s\n", FormatFloats(scores))
		fmt.Fprintf(&b, "Mean accuracy: %s\n", FormatFloat(s.Mean))
		fmt.Fprintf(&b, "Standard Deviation: %s\n", FormatFloat(s.StdDev))
		fmt.Fprintf(&b, "Variance: %s\n", FormatFloat(s.Variance))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Print writes the report to standard output.
func Print(scores []float64, metric metrics.Scorer) {
	_ = Report(os.Stdout, scores, metric)
}

// FormatFloat renders v like Python's repr: the shortest round-trip digits,
// in positional form for magnitudes in [1e-4, 1e16) and with an exponent
// otherwise. Integral values keep a ".0", so 5 prints as 5.0.
func FormatFloat(v float64) string {
	format := byte('g')
	if abs := math.Abs(v); abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		format = 'f'
	}
	s := strconv.FormatFloat(v, format, -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

// FormatFloats renders values as a bracketed, comma separated list.
func FormatFloats(values []float64) string {
	return "[" + strings.Join(lo.Map(values, func(v float64, _ int) string { return FormatFloat(v) }), ", ") + "]"
}
