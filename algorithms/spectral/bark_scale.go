package spectral

// BarkScale converts between Hertz and the Bark critical-band scale via
// the Traunmuller (1990) approximation.
type BarkScale struct{}

// NewBarkScale creates a new bark scale converter.
func NewBarkScale() *BarkScale {
	return &BarkScale{}
}

// HzToBark converts frequency in Hz to the Bark scale.
func (bs *BarkScale) HzToBark(hz float64) float64 {
	return (26.81 * hz / (1960.0 + hz)) - 0.53
}

// BarkToHz converts a Bark value back to frequency in Hz.
func (bs *BarkScale) BarkToHz(bark float64) float64 {
	return 1960.0 * (bark + 0.53) / (26.28 - bark)
}
