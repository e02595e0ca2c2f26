// Package container provides the data containers passed between models,
// scorers and the ensemble optimizer, together with shape utilities that
// behave the same for labelled frames and plain arrays.
//
// Two adapters implement Container:
//
//   - *Frame: rows with string labels and optional column names;
//   - *Array: a row-major numeric array of any rank >= 1.
//
// All row addressing is positional. Frames keep their labels attached to the
// rows they select.
package container

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// Container is the capability set shared by frames and arrays.
type Container interface {
	// Len returns the size of the first axis.
	Len() int
	// Columns returns the number of columns, 1 for 1-D data.
	Columns() int
	// Shape returns the full shape.
	Shape() []int
	// Slice returns rows [i, j) with slice-expression semantics.
	Slice(i, j int) Container
	// Take copies the rows at in-range positions.
	Take(rows []int) Container
	// Values copies the data into a Len x (trailing size) matrix.
	Values() *mat.Dense
	// WithValues returns a container of the same kind, shape and labels
	// holding values.
	WithValues(values *mat.Dense) (Container, error)
}

// Split returns c[0:k] and c[k:]. Negative k counts from the end; k beyond
// either end is clamped.
func Split(c Container, k int) (Container, Container) {
	return c.Slice(0, k), c.Slice(k, c.Len())
}

// Concatenate stacks containers along the first axis.
//
// When every argument is a *Frame the row labels are preserved as-is and
// columns are unioned by name in first-seen order, with NaN for cells a frame
// does not have. Otherwise every argument is treated as an array, trailing
// shapes must match, and the result is an *Array.
func Concatenate(cs ...Container) (Container, error) {
	if len(cs) == 0 {
		return nil, errors.NewValueError("Concatenate", "need at least one container")
	}

	frames := lo.FilterMap(cs, func(c Container, _ int) (*Frame, bool) {
		f, ok := c.(*Frame)
		return f, ok
	})
	if len(frames) == len(cs) {
		return concatFrames(frames)
	}
	if len(frames) > 0 {
		errors.Warn(errors.NewDataConversionWarning("Frame", "Array", "mixed container kinds passed to Concatenate"))
	}
	return concatArrays(cs)
}

func concatArrays(cs []Container) (Container, error) {
	trailing := cs[0].Shape()[1:]
	rows := 0
	var data []float64
	for _, c := range cs {
		shape := c.Shape()
		if !slices.Equal(shape[1:], trailing) {
			expected := append([]int{shape[0]}, trailing...)
			return nil, errors.NewInputShapeError("Concatenate", expected, shape)
		}
		rows += shape[0]
		data = append(data, arrayData(c)...)
	}
	if data == nil {
		data = []float64{}
	}
	return NewArray(data, append([]int{rows}, trailing...)...)
}

// arrayData returns the row-major elements of c.
func arrayData(c Container) []float64 {
	switch v := c.(type) {
	case *Array:
		return v.data
	case *Frame:
		return v.data
	}
	if c.Len() == 0 {
		return nil
	}
	return denseData(c.Values())
}

func concatFrames(frames []*Frame) (Container, error) {
	named := lo.SomeBy(frames, func(f *Frame) bool { return f.columns != nil })
	if !named {
		ncols := frames[0].ncols
		for _, f := range frames[1:] {
			if f.ncols != ncols {
				return nil, errors.NewInputShapeError("Concatenate", []int{f.Len(), ncols}, f.Shape())
			}
		}
	}

	var columns []string
	for _, f := range frames {
		columns = lo.Union(columns, f.effectiveColumns())
	}
	positions := make(map[string]int, len(columns))
	for j, name := range columns {
		positions[name] = j
	}

	var (
		index []string
		data  []float64
	)
	for _, f := range frames {
		targets := lo.Map(f.effectiveColumns(), func(name string, _ int) int { return positions[name] })
		for i := 0; i < f.Len(); i++ {
			row := make([]float64, len(columns))
			for j := range row {
				row[j] = math.NaN()
			}
			for j, target := range targets {
				row[target] = f.At(i, j)
			}
			data = append(data, row...)
		}
		index = append(index, f.index...)
	}
	if !named {
		columns = nil
	}
	return newFrame(index, columns, len(positions), data)
}

// Ensure2D reshapes a 1-D array to a column vector (n, 1). Any other container
// is returned unchanged.
func Ensure2D(c Container) Container {
	if a, ok := c.(*Array); ok && a.Rank() == 1 {
		return &Array{shape: []int{a.Len(), 1}, data: a.data}
	}
	return c
}

// Index returns the rows at the given positions. Negative positions count
// from the end.
func Index(c Container, rows ...int) (Container, error) {
	n := c.Len()
	resolved := make([]int, len(rows))
	for k, r := range rows {
		if r < 0 {
			r += n
		}
		if r < 0 || r >= n {
			return nil, errors.NewValueError("Index", fmt.Sprintf("index %d is out of bounds for axis 0 with size %d", rows[k], n))
		}
		resolved[k] = r
	}
	return c.Take(resolved), nil
}

// ColumnNames returns [base] for single-column or 1-D data, and
// base_0 .. base_{n-1} otherwise.
func ColumnNames(c Container, base string) []string {
	n := c.Columns()
	if n == 1 {
		return []string{base}
	}
	return lo.Times(n, func(i int) string { return fmt.Sprintf("%s_%d", base, i) })
}

// Blend returns sum(weights[i] * preds[i]) element-wise. The result has the
// kind, shape and labels of preds[0].
func Blend(weights []float64, preds []Container) (Container, error) {
	if len(preds) == 0 {
		return nil, errors.ErrEmptyData
	}
	if len(weights) != len(preds) {
		return nil, errors.NewDimensionError("Blend", len(preds), len(weights), 0)
	}

	first := preds[0]
	r, c := first.Values().Dims()
	for k, p := range preds[1:] {
		pr, pc := p.Values().Dims()
		if pr != r {
			return nil, errors.NewDimensionError(fmt.Sprintf("Blend: prediction %d", k+1), r, pr, 0)
		}
		if pc != c {
			return nil, errors.NewDimensionError(fmt.Sprintf("Blend: prediction %d", k+1), c, pc, 1)
		}
	}
	if r == 0 || c == 0 {
		return first, nil
	}

	acc := mat.NewDense(r, c, nil)
	var term mat.Dense
	for k, p := range preds {
		term.Scale(weights[k], p.Values())
		acc.Add(acc, &term)
	}
	return first.WithValues(acc)
}
