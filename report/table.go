package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders one row per fold followed by mean, standard deviation
// and variance rows.
func WriteTable(w io.Writer, scores []float64) error {
	s := Summarize(scores)

	table := tablewriter.NewWriter(w)
	table.Header("Fold", "Score")
	for i, score := range scores {
		if err := table.Append([]string{strconv.Itoa(i), FormatFloat(score)}); err != nil {
			return err
		}
	}
	rows := [][]string{
		{"mean", FormatFloat(s.Mean)},
		{"std", FormatFloat(s.StdDev)},
		{"var", FormatFloat(s.Variance)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
