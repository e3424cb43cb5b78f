package model

// MAE returns the mean absolute error between two aligned vectors.
func MAE(yTrue, yPred []float64) float64 {
	n := float64(len(yTrue))
	s := 0.0
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		if d < 0 {
			d = -d
		}
		s += d
	}
	return s / n
}
