package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Polyfit fits a degree-order polynomial to the x/y pairs by least squares
// and returns its coefficients in descending-power order (coefs[0] is the
// x^order term, coefs[len(coefs)-1] is the constant term). It is the Go
// equivalent of a LAPACK dgels_ least-squares solve, backed here by gonum's
// QR-based Dense.Solve.
func Polyfit(x, y []float64, order int) ([]float64, error) {
	n := len(x)
	cols := order + 1
	a := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			a.Set(i, j, math.Pow(x[i], float64(cols-j-1)))
		}
	}
	b := mat.NewDense(n, 1, append([]float64(nil), y...))

	var coef mat.Dense
	if err := coef.Solve(a, b); err != nil {
		return nil, fmt.Errorf("numeric: polyfit solve failed: %w", err)
	}

	out := make([]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = coef.At(j, 0)
	}
	return out, nil
}

// PolyEval evaluates a polynomial given in descending-power coefficient
// order (as returned by Polyfit) at x, via Horner's method.
func PolyEval(coefs []float64, x float64) float64 {
	result := 0.0
	for _, c := range coefs {
		result = result*x + c
	}
	return result
}
