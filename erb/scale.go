// Package erb converts between Hertz, the ERB (Equivalent Rectangular
// Bandwidth) psychoacoustic scale used to lay out the pitch tracker's
// frequency grid, and Mel, used only for the CLI's optional -m output.
package erb

import "math"

// HzToERB converts a frequency in Hertz to ERBs.
func HzToERB(hz float64) float64 {
	return 21.4 * math.Log10(1.0+hz/229.0)
}

// ERBToHz converts an ERB value back to Hertz.
func ERBToHz(erb float64) float64 {
	return (math.Pow(10, erb/21.4) - 1.0) * 229.0
}

// HzToMel converts a frequency in Hertz to Mel, using the constant from
// the original SWIPE' reference. This is not the same constant as the
// O'Shaughnessy mel formula used elsewhere in this codebase's spectral
// utilities (spectral.MelScale) — the CLI's -m flag must reproduce the
// reference tool's output, so it uses this conversion specifically.
func HzToMel(hz float64) float64 {
	return 1127.01048 * math.Log(1.0+hz/700.0)
}
