package pitch

import (
	"context"
	"fmt"
	"math"

	"github.com/prosodylab/swipe/logging"
)

// Options configures one Track call. Zero-value fields are not valid
// defaults for MinPitch/MaxPitch (a zero or negative pitch range is
// rejected); use DefaultOptions for a ready-to-use starting point.
type Options struct {
	MinPitch          float64
	MaxPitch          float64
	StrengthThreshold float64
	TimeStep          float64
}

// DefaultOptions returns the reference tool's defaults: 100-600 Hz search
// range, strength threshold 0.3, 1ms timestep.
func DefaultOptions() Options {
	return Options{
		MinPitch:          100.0,
		MaxPitch:          600.0,
		StrengthThreshold: DefaultStrengthThreshold,
		TimeStep:          DefaultTimeStep,
	}
}

// Track runs the SWIPE' pitch estimator over signal, sampled at rate Hz,
// and returns one pitch estimate per output frame, spaced dt seconds apart,
// along with the effective dt actually used. Unvoiced or below-threshold
// frames are math.NaN().
//
// Track validates MinPitch, MaxPitch, and rate and returns an error
// without doing any work if they are nonsensical. MaxPitch above the
// Nyquist frequency, StrengthThreshold outside [0, 1], and TimeStep below
// 1ms or above rate are instead clamped to a sane value, with a warning
// logged through the logging package; the returned dt reflects whichever
// value (requested or clamped) the frame grid was actually built from, so
// callers printing a time axis alongside the track don't have to
// re-derive the clamping logic themselves.
//
// ctx is checked for cancellation between window-ladder iterations, the
// coarsest-grained point at which the algorithm can be interrupted without
// corrupting a partially accumulated strength matrix.
func Track(ctx context.Context, signal []float64, rate float64, opts Options) ([]float64, float64, error) {
	if rate <= 0 {
		return nil, 0, fmt.Errorf("pitch: sample rate must be positive, got %v", rate)
	}
	if opts.MinPitch < 1.0 {
		return nil, 0, fmt.Errorf("pitch: min pitch must be >= 1 Hz, got %v", opts.MinPitch)
	}
	if opts.MaxPitch <= opts.MinPitch {
		return nil, 0, fmt.Errorf("pitch: max pitch (%v Hz) must exceed min pitch (%v Hz)", opts.MaxPitch, opts.MinPitch)
	}
	if len(signal) == 0 {
		return []float64{}, opts.TimeStep, nil
	}

	nyquist := rate / 2.0
	pmax := opts.MaxPitch
	if pmax > nyquist {
		logging.Warn("max pitch exceeds Nyquist, clamping", logging.Fields{
			"max_pitch": pmax, "nyquist": nyquist,
		})
		pmax = nyquist
	}

	st := opts.StrengthThreshold
	if st < 0 || st > 1 {
		logging.Warn("strength threshold out of range, using default", logging.Fields{
			"requested": st, "default": DefaultStrengthThreshold,
		})
		st = DefaultStrengthThreshold
	}

	dt := opts.TimeStep
	if dt < DefaultTimeStep {
		logging.Warn("timestep below 1ms floor, clamping", logging.Fields{
			"requested": dt, "clamped_to": DefaultTimeStep,
		})
		dt = DefaultTimeStep
	}
	if dt > rate {
		logging.Warn("timestep exceeds sample rate, clamping", logging.Fields{
			"requested": dt, "clamped_to": rate,
		})
		dt = rate
	}

	g := buildGrid(opts.MinPitch, pmax, rate)
	if len(g.pc) < 3 {
		return nil, 0, fmt.Errorf("pitch: range %v-%v Hz is too narrow to build a candidate grid", opts.MinPitch, pmax)
	}

	T := int(math.Ceil((float64(len(signal)) / rate) / dt))
	S := make([][]float64, len(g.pc))
	for i := range S {
		S[i] = make([]float64, T)
	}

	W := len(g.ws)
	for n := 0; n < W; n++ {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		w := g.ws[n]
		L := loudnessMatrix(signal, g.fERBs, g.nyquist, w)
		step := stepBoundary(g.d, n, W)
		accumulateStep(S, L, g.fERBs, g.pc, g.primeMask, step, dt, g.nyquist2, w)
	}

	return extractPitch(S, g.pc, st), dt, nil
}
