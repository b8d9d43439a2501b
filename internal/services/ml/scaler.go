package ml

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RobustScaler centers features on the median and scales by the
// interquartile range, making the transform resistant to outliers. Fit on
// training rows only; the same fitted transform is applied to test and
// inference rows.
type RobustScaler struct {
	center []float64
	scale  []float64
}

// Fit estimates the per-feature median and IQR.
func (s *RobustScaler) Fit(X [][]float64) error {
	if len(X) == 0 || len(X[0]) == 0 {
		return fmt.Errorf("scaler: empty matrix")
	}
	d := len(X[0])
	s.center = make([]float64, d)
	s.scale = make([]float64, d)

	col := make([]float64, len(X))
	for j := 0; j < d; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		sort.Float64s(col)
		s.center[j] = stat.Quantile(0.5, stat.Empirical, col, nil)
		iqr := stat.Quantile(0.75, stat.Empirical, col, nil) - stat.Quantile(0.25, stat.Empirical, col, nil)
		if iqr == 0 {
			iqr = 1
		}
		s.scale[j] = iqr
	}
	return nil
}

// Transform scales a matrix with the fitted parameters.
func (s *RobustScaler) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = s.TransformRow(row)
	}
	return out
}

// TransformRow scales a single feature vector.
func (s *RobustScaler) TransformRow(x []float64) []float64 {
	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - s.center[j]) / s.scale[j]
	}
	return out
}
