package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			yPred:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "simple case",
			yTrue:     mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0}),
			yPred:     mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5}),
			want:      0.25, // four errors of ±0.5
			tolerance: 1e-10,
		},
		{
			name:      "larger errors",
			yTrue:     mat.NewVecDense(3, []float64{10.0, 20.0, 30.0}),
			yPred:     mat.NewVecDense(3, []float64{12.0, 18.0, 33.0}),
			want:      17.0 / 3.0,
			tolerance: 1e-10,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:   mat.NewVecDense(2, []float64{1.0, 2.0}),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)

			if (err != nil) != tt.wantErr {
				t.Errorf("MSE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MSE() = %v, want %v (tolerance: %v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestRMSEAndMAE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, 2, 3, 4})
	yPred := mat.NewVecDense(4, []float64{2, 2, 3, 6})

	rmse, err := RMSE(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5.0/4.0), rmse, 1e-12)

	mae, err := MAE(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, mae, 1e-12)

	_, err = MAE(yTrue, mat.NewVecDense(1, []float64{1}))
	assert.Error(t, err)
}

func TestR2Score(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{1, 2, 3})

	r2, err := R2Score(yTrue, yTrue)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r2, 1e-12)

	r2, err = R2Score(yTrue, mat.NewVecDense(3, []float64{2, 2, 2}))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r2, 1e-12)

	_, err = R2Score(mat.NewVecDense(2, []float64{1, 1}), mat.NewVecDense(2, []float64{1, 2}))
	assert.Error(t, err)
}

func TestMAPE(t *testing.T) {
	got, err := MAPE(mat.NewVecDense(3, []float64{100, 0, 50}), mat.NewVecDense(3, []float64{110, 5, 45}))
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, 1e-12)

	_, err = MAPE(mat.NewVecDense(2, []float64{0, 0}), mat.NewVecDense(2, []float64{1, 1}))
	assert.Error(t, err)
}

func TestLogLoss(t *testing.T) {
	got, err := LogLoss(mat.NewVecDense(2, []float64{1, 0}), mat.NewVecDense(2, []float64{0.5, 0.5}))
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2, got, 1e-12)

	got, err = LogLoss(mat.NewVecDense(1, []float64{1}), mat.NewVecDense(1, []float64{0}))
	require.NoError(t, err)
	assert.False(t, math.IsInf(got, 0), "probabilities are clipped")
}
