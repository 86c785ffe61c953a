package numeric

import "testing"

func TestSplineInterpolatesKnots(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 4, 9, 16}
	y2 := Spline(x, y)

	if len(y2) != len(x) {
		t.Fatalf("Spline returned %d values, want %d", len(y2), len(x))
	}

	// The spline must reproduce the y value of every knot from x[1] on
	// exactly when queried at that knot as the upper end of its interval
	// (a = 0, b = 1).
	for hi := 1; hi < len(x); hi++ {
		got := SplineQuery(x, y, y2, x[hi], hi)
		if diff := got - y[hi]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("SplineQuery at knot x=%v: got %v, want %v", x[hi], got, y[hi])
		}
	}
}

func TestSplineQueryBetweenKnots(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 0, 0, 0}
	y2 := Spline(x, y)

	got := SplineQuery(x, y, y2, 1.5, 2)
	if got < -1.0 || got > 1.0 {
		t.Errorf("SplineQuery on flat data produced implausible value %v", got)
	}
}
