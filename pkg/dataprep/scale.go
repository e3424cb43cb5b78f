package dataprep

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler standardizes named columns to zero mean and unit variance.
// Means and scales are computed once at fit time and frozen; they are the
// exact statistics serialized into the baseline artifact.
type StandardScaler struct {
	Columns []string
	Mean    []float64
	Scale   []float64
	fit     bool
}

// NewStandardScaler creates a scaler for the given column names. The name
// order fixes the column order of every matrix passed to Fit and Transform.
func NewStandardScaler(columns []string) *StandardScaler {
	return &StandardScaler{Columns: columns}
}

// Fit computes the per-column mean and population standard deviation.
// A zero-variance column gets scale 1 so constant flags pass through as
// zeros instead of dividing by zero.
func (s *StandardScaler) Fit(X [][]float64) {
	cols := len(s.Columns)
	s.Mean = make([]float64, cols)
	s.Scale = make([]float64, cols)
	col := make([]float64, len(X))
	for j := 0; j < cols; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		s.Mean[j] = stat.Mean(col, nil)
		// Population variance, not the sample estimator, to match the
		// statistics frozen by the historical extractor.
		v := 0.0
		for _, x := range col {
			d := x - s.Mean[j]
			v += d * d
		}
		s.Scale[j] = math.Sqrt(v / float64(len(col)))
		if s.Scale[j] == 0 {
			s.Scale[j] = 1
		}
	}
	s.fit = true
}

// Transform returns a new matrix with each column standardized as
// (x - mean) / scale. Calling Transform before Fit returns X unchanged.
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	if !s.fit {
		return X
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		r := make([]float64, len(s.Columns))
		for j := range s.Columns {
			r[j] = (row[j] - s.Mean[j]) / s.Scale[j]
		}
		out[i] = r
	}
	return out
}

// FitTransform fits the scaler and transforms X in one call.
func (s *StandardScaler) FitTransform(X [][]float64) [][]float64 {
	s.Fit(X)
	return s.Transform(X)
}
