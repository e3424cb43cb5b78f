package dataprep

import "math"

// LogTransform applies log(x+1) to each value. Used on the elapsed-seconds
// target to compress its right-skewed scale while staying defined near zero.
func LogTransform(X []float64) []float64 {
	out := make([]float64, len(X))
	for i, v := range X {
		out[i] = math.Log1p(v)
	}
	return out
}

// HStack concatenates two row-aligned matrices column-wise. Either side may
// have zero columns.
func HStack(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		row := make([]float64, 0, len(a[i])+len(b[i]))
		row = append(row, a[i]...)
		row = append(row, b[i]...)
		out[i] = row
	}
	return out
}
