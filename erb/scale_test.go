package erb

import "testing"

func TestERBRoundTrip(t *testing.T) {
	for _, hz := range []float64{50, 100, 440, 1000, 4000} {
		e := HzToERB(hz)
		back := ERBToHz(e)
		if diff := back - hz; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("round-trip Hz->ERB->Hz for %v: got %v", hz, back)
		}
	}
}

func TestHzToERBZero(t *testing.T) {
	if got := HzToERB(0); got != 0 {
		t.Errorf("HzToERB(0) = %v, want 0", got)
	}
}

func TestHzToMelKnownValue(t *testing.T) {
	// The original SWIPE' mel constant is scaled so that 1000 Hz maps to
	// 1000 mel: 1127.01048*ln(1+1000/700) is 1000 to within a few 1e-5.
	got := HzToMel(1000)
	want := 1000.0
	if diff := got - want; diff > 0.1 || diff < -0.1 {
		t.Errorf("HzToMel(1000) = %v, want ~%v", got, want)
	}
}

func TestHzToMelZero(t *testing.T) {
	if got := HzToMel(0); got != 0 {
		t.Errorf("HzToMel(0) = %v, want 0", got)
	}
}
