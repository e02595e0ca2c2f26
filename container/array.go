package container

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// Array is a dense row-major numeric array of rank >= 1.
type Array struct {
	shape []int
	data  []float64
}

// NewArray creates an Array over data with the given shape. Without a shape the
// array is 1-D. data is used directly, not copied.
func NewArray(data []float64, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	size := 1
	for axis, d := range shape {
		if d < 0 {
			return nil, errors.NewValidationError("shape", fmt.Sprintf("axis %d must be non-negative", axis), shape)
		}
		size *= d
	}
	if size != len(data) {
		return nil, errors.NewInputShapeError("NewArray", []int{size}, []int{len(data)})
	}
	return &Array{shape: append([]int(nil), shape...), data: data}, nil
}

// NewVector creates a 1-D Array.
func NewVector(data []float64) *Array {
	return &Array{shape: []int{len(data)}, data: data}
}

// FromMatrix copies a gonum matrix into a 2-D Array.
func FromMatrix(m mat.Matrix) *Array {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}
	return &Array{shape: []int{r, c}, data: data}
}

// Len returns the size of the first axis.
func (a *Array) Len() int { return a.shape[0] }

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.shape) }

// Columns returns the size of the second axis, or 1 for a vector.
func (a *Array) Columns() int {
	if len(a.shape) == 1 {
		return 1
	}
	return a.shape[1]
}

// Shape returns a copy of the array shape.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Data returns the underlying row-major buffer.
func (a *Array) Data() []float64 { return a.data }

// rowSize is the number of elements in one first-axis entry.
func (a *Array) rowSize() int {
	size := 1
	for _, d := range a.shape[1:] {
		size *= d
	}
	return size
}

// Reshape returns an Array sharing data with a new shape of the same size.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	return NewArray(a.data, shape...)
}

// Slice returns rows [i, j) with slice-expression semantics: negative bounds
// count from the end and out-of-range bounds are clamped.
func (a *Array) Slice(i, j int) Container {
	i, j = clampRange(i, j, a.Len())
	step := a.rowSize()
	shape := a.Shape()
	shape[0] = j - i
	return &Array{shape: shape, data: a.data[i*step : j*step]}
}

// Take copies the rows at the given positions. Positions must be in range.
func (a *Array) Take(rows []int) Container {
	step := a.rowSize()
	data := make([]float64, 0, len(rows)*step)
	for _, r := range rows {
		data = append(data, a.data[r*step:(r+1)*step]...)
	}
	shape := a.Shape()
	shape[0] = len(rows)
	return &Array{shape: shape, data: data}
}

// Values copies the array into a Len x (product of trailing axes) matrix.
func (a *Array) Values() *mat.Dense {
	if a.Len() == 0 || a.rowSize() == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(a.Len(), a.rowSize(), append([]float64(nil), a.data...))
}

// WithValues returns an Array of the same shape holding values.
func (a *Array) WithValues(values *mat.Dense) (Container, error) {
	r, c := values.Dims()
	if r != a.Len() {
		return nil, errors.NewDimensionError("Array.WithValues", a.Len(), r, 0)
	}
	if c != a.rowSize() {
		return nil, errors.NewDimensionError("Array.WithValues", a.rowSize(), c, 1)
	}
	return &Array{shape: a.Shape(), data: denseData(values)}, nil
}

func (a *Array) String() string {
	return fmt.Sprintf("Array(shape=%v, data=%v)", a.shape, a.data)
}

func denseData(m *mat.Dense) []float64 {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, m.RawRowView(i)...)
	}
	return data
}

func clampRange(i, j, n int) (int, int) {
	i = clampIndex(i, n)
	j = clampIndex(j, n)
	if j < i {
		j = i
	}
	return i, j
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}
