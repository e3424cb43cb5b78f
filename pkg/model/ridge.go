package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Ridge is an L2-regularized linear model solved in closed form.
type Ridge struct {
	W     []float64 // coefficients, one per feature column
	B     float64   // intercept
	Alpha float64   // penalty strength, fixed per run
}

// NewRidge initializes an unfitted ridge model with the given penalty.
func NewRidge(alpha float64) *Ridge {
	return &Ridge{Alpha: alpha}
}

// Fit solves the normal equations (Xc'Xc + alpha*I) w = Xc'yc over centered
// columns and recovers the intercept as mean(y) - mean(x)·w, leaving the
// intercept unpenalized. With alpha > 0 the system is positive definite and
// the Cholesky factorization cannot fail on well-formed input.
func (m *Ridge) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return errors.New("ridge: no training rows")
	}
	if len(y) != n {
		return fmt.Errorf("ridge: %d rows but %d targets", n, len(y))
	}
	d := len(X[0])

	xMean := make([]float64, d)
	for _, row := range X {
		for j, v := range row {
			xMean[j] += v
		}
	}
	for j := range xMean {
		xMean[j] /= float64(n)
	}
	yMean := 0.0
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	gram := mat.NewSymDense(d, nil)
	for j := 0; j < d; j++ {
		for k := j; k < d; k++ {
			s := 0.0
			for i := 0; i < n; i++ {
				s += (X[i][j] - xMean[j]) * (X[i][k] - xMean[k])
			}
			if j == k {
				s += m.Alpha
			}
			gram.SetSym(j, k, s)
		}
	}
	rhs := mat.NewVecDense(d, nil)
	for j := 0; j < d; j++ {
		s := 0.0
		for i := 0; i < n; i++ {
			s += (X[i][j] - xMean[j]) * (y[i] - yMean)
		}
		rhs.SetVec(j, s)
	}

	var chol mat.Cholesky
	if !chol.Factorize(gram) {
		return errors.New("ridge: normal equations are not positive definite")
	}
	w := mat.NewVecDense(d, nil)
	if err := chol.SolveVecTo(w, rhs); err != nil {
		return fmt.Errorf("ridge: solve normal equations: %w", err)
	}

	m.W = make([]float64, d)
	m.B = yMean
	for j := 0; j < d; j++ {
		m.W[j] = w.AtVec(j)
		m.B -= xMean[j] * m.W[j]
	}
	return nil
}

// Predict returns intercept + Xw for each row.
func (m *Ridge) Predict(X [][]float64) []float64 {
	pred := make([]float64, len(X))
	for i, row := range X {
		sum := m.B
		for j, v := range row {
			sum += m.W[j] * v
		}
		pred[i] = sum
	}
	return pred
}
