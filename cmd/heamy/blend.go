package main

import (
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/goheamy/container"
	"github.com/YuminosukeSato/goheamy/ensemble"
	"github.com/YuminosukeSato/goheamy/metrics"
	"github.com/YuminosukeSato/goheamy/pkg/errors"
	"github.com/YuminosukeSato/goheamy/pkg/log"
	"github.com/YuminosukeSato/goheamy/report"
)

func newBlendCommand(c *cli) *cobra.Command {
	var (
		truthPath string
		predPaths []string
		method    string
		scorer    string
		maxIter   int
	)
	cmd := &cobra.Command{
		Use:   "blend --truth FILE --pred FILE...",
		Short: "Find convex blend weights for holdout predictions stored as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("method") {
				method = c.cfg.Method
			}
			if !cmd.Flags().Changed("scorer") {
				scorer = c.cfg.Scorer
			}
			if !cmd.Flags().Changed("max-iter") {
				maxIter = c.cfg.MaxIterations
			}
			if len(predPaths) == 0 {
				return errors.NewValidationError("pred", "at least one prediction file is required", predPaths)
			}

			m, err := ensemble.ParseMethod(method)
			if err != nil {
				return err
			}
			s, err := metrics.Lookup(scorer)
			if err != nil {
				return err
			}

			truth, err := container.LoadCSV(truthPath)
			if err != nil {
				return err
			}
			models := make([]ensemble.Validator, 0, len(predPaths))
			for _, path := range predPaths {
				pred, err := container.LoadCSV(path)
				if err != nil {
					return err
				}
				models = append(models, ensemble.NewHoldoutModel(filepath.Base(path), truth, pred))
			}

			out := cmd.OutOrStdout()
			opt, err := ensemble.NewOptimizer(models, s,
				ensemble.WithTestSize(c.cfg.TestSize),
				ensemble.WithMaxIterations(maxIter),
				ensemble.WithPenalty(c.cfg.Penalty),
				ensemble.WithOutput(out),
				ensemble.WithLogger(log.GetLogger().With(log.ComponentKey, "cli")),
			)
			if err != nil {
				return err
			}
			res, err := opt.Solve(m)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(out)
			table.Header("Model", "Weight")
			for i, path := range predPaths {
				if err := table.Append([]string{filepath.Base(path), report.FormatFloat(res.Weights[i])}); err != nil {
					return errors.Wrap(err, "blend: append row")
				}
			}
			return errors.Wrap(table.Render(), "blend: render table")
		},
	}
	cmd.Flags().StringVar(&truthPath, "truth", "", "CSV file with the true labels")
	cmd.Flags().StringSliceVar(&predPaths, "pred", nil, "CSV file with one model's predictions (repeatable)")
	cmd.Flags().StringVar(&method, "method", "", "solver: nelder-mead, bfgs, lbfgs, cg, gradient-descent")
	cmd.Flags().StringVar(&scorer, "scorer", "", "scoring function, e.g. mse or mae")
	cmd.Flags().IntVar(&maxIter, "max-iter", 0, "maximum solver iterations, 0 for no limit")
	_ = cmd.MarkFlagRequired("truth")
	return cmd
}
