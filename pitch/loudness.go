package pitch

import (
	"math"

	"github.com/prosodylab/swipe/algorithms/spectral"
	"github.com/prosodylab/swipe/algorithms/windowing"
	"github.com/prosodylab/swipe/numeric"
)

// loudnessMatrix builds the ERB-frequency x time loudness matrix for one
// window size. Each row is one analysis frame: a Hann-windowed, FFT'd,
// magnitude-spectrum slice of signal, spline-interpolated from the linear
// FFT bin grid onto fERBs, square-rooted, and finally L2-normalized across
// the row.
//
// Frames are zero-padded at both ends rather than only analyzing the
// interior of signal: frame i covers signal[(i-1)*hop : (i-1)*hop+w),
// clamped to zero outside [0, len(signal)). This single indexing rule
// reproduces the reference implementation's three separate first/middle/
// last-frame loops, since the left edge's zero padding, the interior's
// sliding window, and the right edge's zero padding are all the same
// formula evaluated at different frame indices.
func loudnessMatrix(signal []float64, fERBs []float64, nyquist float64, w int) [][]float64 {
	w2 := w / 2
	fstep := nyquist / float64(w2)

	f := make([]float64, w2)
	for i := range f {
		f[i] = float64(i) * fstep
	}

	hann := windowing.NewHann(w, false).GetCoefficients()
	hi0 := clampHi(numeric.Bisect(f, fERBs[0]), len(f))

	n := len(signal)
	frames := int(math.Ceil(float64(n)/float64(w2))) + 1
	L := make([][]float64, frames)

	fftCalc := spectral.NewFFT()
	frame := make([]float64, w)
	mag := make([]float64, w2)

	for i := 0; i < frames; i++ {
		base := (i - 1) * w2
		for j := 0; j < w; j++ {
			idx := base + j
			sample := 0.0
			if idx >= 0 && idx < n {
				sample = signal[idx]
			}
			frame[j] = sample * hann[j]
		}

		spectrum := fftCalc.Compute(frame)
		for j := 0; j < w2; j++ {
			c := spectrum[j]
			mag[j] = math.Sqrt(real(c)*real(c) + imag(c)*imag(c))
		}

		y2 := numeric.Spline(f, mag)
		row := make([]float64, len(fERBs))
		hi := hi0
		row[0] = fixnan(math.Sqrt(numeric.SplineQuery(f, mag, y2, fERBs[0], hi)))
		for j := 1; j < len(fERBs); j++ {
			hi = clampHi(numeric.BisectFrom(f, fERBs[j], hi), len(f))
			row[j] = fixnan(math.Sqrt(numeric.SplineQuery(f, mag, y2, fERBs[j], hi)))
		}
		L[i] = row
	}

	for i := range L {
		var norm float64
		for _, v := range L[i] {
			norm += v * v
		}
		if norm != 0 {
			norm = math.Sqrt(norm)
			for j := range L[i] {
				L[i][j] /= norm
			}
		}
	}

	return L
}

// clampHi keeps a bisection result usable as SplineQuery's upper knot index.
// f's top bin f[len(f)-1] sits strictly below Nyquist (f is the linear FFT
// bin grid, spaced nyquist/w2 apart), while fERBs can reach all the way to
// Nyquist itself, so a query at or beyond f's last knot reports hi ==
// len(f), one past the end. The reference C implementation tolerates that
// as a harmless one-past-end read; Go slices do not, so queries past f's
// range are clamped into its last interval (extrapolating along the final
// spline segment) instead of indexing off the end.
func clampHi(hi, n int) int {
	if hi >= n {
		return n - 1
	}
	if hi < 1 {
		return 1
	}
	return hi
}

// fixnan treats NaN as 0: spline extrapolation right at the edge of the
// analyzed frequency range can produce a small negative value whose square
// root is NaN, and the reference tracker zeroes it rather than letting it
// propagate into the strength computation.
func fixnan(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}
