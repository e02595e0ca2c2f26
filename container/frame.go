package container

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// Frame is a labelled table: ordered rows identified by string labels and
// optionally named columns. Rows are addressed by position; labels travel with
// the rows through Slice, Take and Concatenate.
type Frame struct {
	index   []string
	columns []string // nil when unnamed
	ncols   int
	data    []float64
}

// NewFrame copies values into a Frame. A nil index labels rows "0".."n-1";
// nil columns leave the columns unnamed.
func NewFrame(values mat.Matrix, index, columns []string) (*Frame, error) {
	r, c := values.Dims()
	if index == nil {
		index = rangeLabels(r)
	}
	if len(index) != r {
		return nil, errors.NewDimensionError("NewFrame", r, len(index), 0)
	}
	if columns != nil && len(columns) != c {
		return nil, errors.NewDimensionError("NewFrame", c, len(columns), 1)
	}
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, values.At(i, j))
		}
	}
	return &Frame{
		index:   append([]string(nil), index...),
		columns: cloneOrNil(columns),
		ncols:   c,
		data:    data,
	}, nil
}

// NewSeries creates a single-column Frame named name.
func NewSeries(name string, values []float64, index []string) (*Frame, error) {
	if len(values) == 0 {
		return newFrame(index, []string{name}, 1, nil)
	}
	return NewFrame(mat.NewVecDense(len(values), values), index, []string{name})
}

func newFrame(index, columns []string, ncols int, data []float64) (*Frame, error) {
	if index == nil {
		index = []string{}
	}
	if len(index)*ncols != len(data) {
		return nil, errors.NewInputShapeError("Frame", []int{len(index), ncols}, []int{len(data)})
	}
	return &Frame{index: index, columns: columns, ncols: ncols, data: data}, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.index) }

// Columns returns the number of columns.
func (f *Frame) Columns() int { return f.ncols }

// Shape returns [rows, columns].
func (f *Frame) Shape() []int { return []int{len(f.index), f.ncols} }

// Index returns a copy of the row labels.
func (f *Frame) Index() []string { return append([]string(nil), f.index...) }

// ColumnLabels returns the column names, or nil when unnamed.
func (f *Frame) ColumnLabels() []string { return cloneOrNil(f.columns) }

// At returns the value at row i, column j.
func (f *Frame) At(i, j int) float64 { return f.data[i*f.ncols+j] }

// Column returns a copy of the named column.
func (f *Frame) Column(name string) ([]float64, error) {
	j := lo.IndexOf(f.columns, name)
	if j < 0 {
		return nil, errors.NewValueError("Frame.Column", fmt.Sprintf("no column named %q", name))
	}
	out := make([]float64, f.Len())
	for i := range out {
		out[i] = f.At(i, j)
	}
	return out, nil
}

// Slice returns rows [i, j) by position with slice-expression semantics.
func (f *Frame) Slice(i, j int) Container {
	i, j = clampRange(i, j, f.Len())
	return &Frame{
		index:   f.index[i:j],
		columns: f.columns,
		ncols:   f.ncols,
		data:    f.data[i*f.ncols : j*f.ncols],
	}
}

// Take copies the rows at the given positions. Positions must be in range.
func (f *Frame) Take(rows []int) Container {
	index := make([]string, 0, len(rows))
	data := make([]float64, 0, len(rows)*f.ncols)
	for _, r := range rows {
		index = append(index, f.index[r])
		data = append(data, f.data[r*f.ncols:(r+1)*f.ncols]...)
	}
	return &Frame{index: index, columns: f.columns, ncols: f.ncols, data: data}
}

// Values copies the frame into a rows x columns matrix.
func (f *Frame) Values() *mat.Dense {
	if f.Len() == 0 || f.ncols == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(f.Len(), f.ncols, append([]float64(nil), f.data...))
}

// WithValues returns a Frame with the same labels holding values.
func (f *Frame) WithValues(values *mat.Dense) (Container, error) {
	r, c := values.Dims()
	if r != f.Len() {
		return nil, errors.NewDimensionError("Frame.WithValues", f.Len(), r, 0)
	}
	if c != f.ncols {
		return nil, errors.NewDimensionError("Frame.WithValues", f.ncols, c, 1)
	}
	return &Frame{index: f.Index(), columns: cloneOrNil(f.columns), ncols: c, data: denseData(values)}, nil
}

func (f *Frame) String() string {
	return fmt.Sprintf("Frame(rows=%d, columns=%v)", f.Len(), f.effectiveColumns())
}

// effectiveColumns names unnamed columns by position.
func (f *Frame) effectiveColumns() []string {
	if f.columns != nil {
		return f.columns
	}
	return rangeLabels(f.ncols)
}

func rangeLabels(n int) []string {
	return lo.Times(n, func(i int) string { return strconv.Itoa(i) })
}

func cloneOrNil(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
