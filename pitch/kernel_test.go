package pitch

import (
	"math"
	"testing"

	"github.com/prosodylab/swipe/erb"
	"github.com/prosodylab/swipe/numeric"
)

func buildTestFERBs(pmin, nyquist float64) []float64 {
	start := erb.HzToERB(pmin / 4.0)
	n := int(math.Ceil((erb.HzToERB(nyquist) - start) / dERBs))
	fERBs := make([]float64, n)
	for i := range fERBs {
		fERBs[i] = erb.ERBToHz(start + float64(i)*dERBs)
	}
	return fERBs
}

func TestBuildKernelUnitNorm(t *testing.T) {
	fERBs := buildTestFERBs(100, 8000)
	primeMaskLen := int(math.Floor(fERBs[len(fERBs)-1]/200.0 - 0.75))
	primeMask := numeric.Sieve(primeMaskLen)

	kernel := buildKernel(200.0, fERBs, primeMask)
	if len(kernel) != len(fERBs) {
		t.Fatalf("kernel length %d != fERBs length %d", len(kernel), len(fERBs))
	}

	var posNorm float64
	for _, v := range kernel {
		if v > 0 {
			posNorm += v * v
		}
	}
	if diff := posNorm - 1.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("sum of squares over positive kernel entries = %v, want 1", posNorm)
	}
}

func TestBuildKernelDegenerateNoPanic(t *testing.T) {
	// A pitch candidate high enough that plim <= 0 must not divide by zero.
	fERBs := []float64{100, 200, 300}
	primeMask := numeric.Sieve(1)
	kernel := buildKernel(10000.0, fERBs, primeMask)
	for _, v := range kernel {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("degenerate kernel produced non-finite value: %v", kernel)
		}
	}
}
