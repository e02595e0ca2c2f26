package report

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// PlotScores saves a bar chart of fold scores with a horizontal mean line.
// The image format follows the file extension (png, svg, pdf, ...).
func PlotScores(scores []float64, title, path string) error {
	if len(scores) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "PlotScores")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Fold"
	p.Y.Label.Text = "Score"

	bars, err := plotter.NewBarChart(plotter.Values(scores), vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "PlotScores: bar chart")
	}
	p.Add(bars)

	mean := Summarize(scores).Mean
	meanLine := plotter.NewFunction(func(float64) float64 { return mean })
	meanLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(meanLine)
	p.Legend.Add("mean", meanLine)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "PlotScores: save %s", path)
	}
	return nil
}
