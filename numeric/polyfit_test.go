package numeric

import "testing"

func TestPolyfitExactLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9} // y = 2x + 1

	coefs, err := Polyfit(x, y, 1)
	if err != nil {
		t.Fatalf("Polyfit returned error: %v", err)
	}
	if len(coefs) != 2 {
		t.Fatalf("Polyfit returned %d coefficients, want 2", len(coefs))
	}

	if diff := coefs[0] - 2.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("slope = %v, want 2", coefs[0])
	}
	if diff := coefs[1] - 1.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("intercept = %v, want 1", coefs[1])
	}
}

func TestPolyEvalHorner(t *testing.T) {
	// 2x^2 + 3x + 4, evaluated at x = 5: 2*25 + 15 + 4 = 69
	coefs := []float64{2, 3, 4}
	got := PolyEval(coefs, 5)
	if got != 69 {
		t.Errorf("PolyEval = %v, want 69", got)
	}
}

func TestPolyfitQuadratic(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = xi*xi + 2 // y = x^2 + 2
	}

	coefs, err := Polyfit(x, y, 2)
	if err != nil {
		t.Fatalf("Polyfit returned error: %v", err)
	}
	for i, xi := range x {
		got := PolyEval(coefs, xi)
		if diff := got - y[i]; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("PolyEval(coefs, %v) = %v, want %v", xi, got, y[i])
		}
	}
}
