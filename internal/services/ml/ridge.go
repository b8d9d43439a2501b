package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Ridge is a linear regressor with L2 regularization, solved in closed form
// via the normal equations. The intercept is not penalized.
type Ridge struct {
	Lambda float64

	weights   []float64
	intercept float64
}

// NewRidge creates a ridge regressor with the given regularization strength.
func NewRidge(lambda float64) *Ridge {
	return &Ridge{Lambda: lambda}
}

func (r *Ridge) Name() string { return "ridge" }

// Fit solves (AᵀA + λI)β = Aᵀy where A is X with a trailing bias column.
func (r *Ridge) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 || len(X[0]) == 0 {
		return fmt.Errorf("ridge: empty training data")
	}
	d := len(X[0])

	a := mat.NewDense(n, d+1, nil)
	for i, row := range X {
		for j, v := range row {
			a.Set(i, j, v)
		}
		a.Set(i, d, 1)
	}
	yv := mat.NewVecDense(n, y)

	var gram mat.Dense
	gram.Mul(a.T(), a)
	for j := 0; j < d; j++ {
		gram.Set(j, j, gram.At(j, j)+r.Lambda)
	}

	var aty mat.VecDense
	aty.MulVec(a.T(), yv)

	var beta mat.VecDense
	if err := beta.SolveVec(&gram, &aty); err != nil {
		return fmt.Errorf("ridge: solve normal equations: %w", err)
	}

	r.weights = make([]float64, d)
	for j := 0; j < d; j++ {
		r.weights[j] = beta.AtVec(j)
	}
	r.intercept = beta.AtVec(d)
	return nil
}

// Predict returns the linear response for one feature vector.
func (r *Ridge) Predict(x []float64) float64 {
	out := r.intercept
	for j, w := range r.weights {
		out += w * x[j]
	}
	return out
}
