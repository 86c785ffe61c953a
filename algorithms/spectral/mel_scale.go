package spectral

import "math"

// MelScale converts between Hertz and the O'Shaughnessy Mel convention
// (2595*log10(1+hz/700)). It is distinct from erb.HzToMel, which uses the
// SWIPE' reference's own Mel constant; this one exists for diagnostic
// tooling that wants the more common filter-bank convention instead.
type MelScale struct{}

// NewMelScale creates a new mel scale converter.
func NewMelScale() *MelScale {
	return &MelScale{}
}

// HzToMel converts frequency in Hz to mel scale.
func (ms *MelScale) HzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// MelToHz converts mel scale to frequency in Hz.
func (ms *MelScale) MelToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}
