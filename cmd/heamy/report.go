package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/goheamy/metrics"
	"github.com/YuminosukeSato/goheamy/pkg/errors"
	"github.com/YuminosukeSato/goheamy/report"
)

func newReportCommand(_ *cli) *cobra.Command {
	var (
		metric   string
		table    bool
		plotPath string
	)
	cmd := &cobra.Command{
		Use:   "report SCORE...",
		Short: "Summarise per-fold scores",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := parseScores(args)
			if err != nil {
				return err
			}
			var scorer metrics.Scorer
			if metric != "" {
				if scorer, err = metrics.Lookup(metric); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if err := report.Report(out, scores, scorer); err != nil {
				return err
			}
			if table {
				if err := report.WriteTable(out, scores); err != nil {
					return err
				}
			}
			if plotPath != "" {
				title := "Fold scores"
				if scorer != nil {
					title += " (" + scorer.Name() + ")"
				}
				return report.PlotScores(scores, title, plotPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&metric, "metric", "m", "", "scorer name printed with the report")
	cmd.Flags().BoolVar(&table, "table", false, "also render a per-fold table")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a bar chart of the scores to this PNG/SVG/PDF path")
	return cmd
}

func parseScores(args []string) ([]float64, error) {
	scores := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.NewValueError("report", "score "+strconv.Quote(arg)+" is not a number")
		}
		scores[i] = v
	}
	return scores, nil
}
