// Package pitch implements the SWIPE' pitch estimator: candidate/window
// grid construction, an ERB-scale loudness analyzer, a prime-harmonic
// strength kernel, a strength-matrix assembler, and a parabolic-refinement
// pitch extractor.
package pitch

const (
	// dlog2p is the candidate-pitch grid resolution, 1/96th of an octave.
	dlog2p = 1.0 / 96.0
	// dERBs is the ERB-frequency grid resolution.
	dERBs = 0.1
	// polyV is the parabolic-refinement search resolution, 1/768th of an
	// octave (1 / 12 / 64).
	polyV = 1.0 / 768.0
	// harmonicsK ties the window-size ladder to its "optimal pitch":
	// pOptimal(w) = 4*K*rate/w.
	harmonicsK = 2.0

	// DefaultStrengthThreshold is used whenever a caller-supplied strength
	// threshold falls outside [0, 1].
	DefaultStrengthThreshold = 0.3
	// DefaultTimeStep is used whenever a caller-supplied timestep is below
	// the 1ms floor.
	DefaultTimeStep = 0.001
)
