package ensemble

import (
	"sort"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// ProjectSimplex returns the Euclidean projection of x onto the probability
// simplex {w : w_i >= 0, sum(w) = 1}.
//
// The threshold theta is found from the sorted coordinates (Duchi et al.,
// 2008); the projection is max(x_i - theta, 0).
func ProjectSimplex(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}

	u := append([]float64(nil), x...)
	sort.Sort(sort.Reverse(sort.Float64Slice(u)))

	var cumsum, theta float64
	for j := 0; j < n; j++ {
		cumsum += u[j]
		t := (cumsum - 1) / float64(j+1)
		if u[j]-t > 0 {
			theta = t
		}
	}

	w := make([]float64, n)
	for i, v := range x {
		w[i] = errors.ClipValue(v-theta, 0, 1)
	}
	return w
}

// distanceSquared returns ||a - b||^2.
func distanceSquared(a, b []float64) float64 {
	var d float64
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}
	return d
}
