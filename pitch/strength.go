package pitch

import (
	"math"

	"github.com/prosodylab/swipe/numeric"
)

// windowStep is the slice of the candidate grid a given window size
// contributes to, and the triangular weight each candidate in that slice
// receives.
type windowStep struct {
	lo, hi int
	mu     []float64
}

// stepBoundary computes the candidate-grid slice and triangular weights
// for window-ladder step n out of W. There are three boundary conditions —
// the first step, the last step, and every step in between — but they are
// one accumulation routine (accumulateStep) away from being identical:
// this function is the only place that branches on which one applies.
func stepBoundary(d []float64, n, W int) windowStep {
	var lo, hi int
	var center float64
	switch n {
	case 0:
		lo, hi = 0, numeric.Bisect(d, 2.0)
		center = 1.0
	case W - 1:
		lo, hi = numeric.Bisect(d, float64(n)), len(d)
		center = float64(n + 1)
	default:
		lo, hi = numeric.Bisect(d, float64(n)), numeric.Bisect(d, float64(n+2))
		center = float64(n + 1)
	}
	mu := make([]float64, hi-lo)
	for i := lo; i < hi; i++ {
		mu[i-lo] = 1.0 - math.Abs(d[i]-center)
	}
	return windowStep{lo: lo, hi: hi, mu: mu}
}

// accumulateStep projects the loudness matrix L for one window size onto
// its candidate-grid slice via the prime-harmonic kernel, then resamples
// the result onto the output time grid (spaced by dt) and adds it into S.
func accumulateStep(S [][]float64, L [][]float64, fERBs, pc []float64, primeMask []bool, step windowStep, dt, rate float64, w int) {
	w2 := w / 2
	psz := step.hi - step.lo

	local := make([][]float64, psz)
	for i := 0; i < psz; i++ {
		kernel := buildKernel(pc[step.lo+i], fERBs, primeMask)
		row := make([]float64, len(L))
		for j := range L {
			var sum float64
			for k := range kernel {
				sum += kernel[k] * L[j][k]
			}
			row[j] = sum
		}
		local[i] = row
	}

	dtp := float64(w2) / rate
	t, tp := 0.0, 0.0
	k := 0
	T := len(S[0])
	for j := 0; j < T; j++ {
		td := t - tp
		for td >= 0 {
			k++
			tp += dtp
			td -= dtp
		}
		for i := 0; i < psz; i++ {
			S[step.lo+i][j] += (local[i][k] + (td*(local[i][k]-local[i][k-1]))/dtp) * step.mu[i]
		}
		t += dt
	}
}
