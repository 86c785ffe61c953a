package pitch

import (
	"math"

	"github.com/prosodylab/swipe/erb"
	"github.com/prosodylab/swipe/numeric"
)

// grid bundles the structures that depend only on (pmin, pmax, rate), not
// on the signal itself: the candidate-pitch ladder, the window-size
// ladder, the window-assignment map, the ERB frequency grid, and the
// prime-harmonic mask.
type grid struct {
	pc        []float64 // candidate pitches, ascending
	d         []float64 // window-assignment value per candidate
	ws        []int     // window sizes, descending (ws[0] is largest)
	fERBs     []float64 // ERB-spaced frequency grid, min/4 .. Nyquist
	primeMask []bool    // primeMask[h-1] reports whether harmonic h counts
	nyquist   float64
	nyquist2  float64 // == rate; named for parity with the window-ladder math
}

// buildGrid constructs every per-invocation structure the strength
// assembler and extractor need, given the pitch search range and sample
// rate.
func buildGrid(pmin, pmax, rate float64) grid {
	nyquist := rate / 2.0
	nyquist2 := rate
	nyquist16 := rate * 4.0 * harmonicsK

	W := int(math.Round(math.Log2(nyquist16/pmin)-math.Log2(nyquist16/pmax))) + 1
	ws := make([]int, W)
	top := math.Round(math.Log2(nyquist16 / pmin))
	for i := range ws {
		ws[i] = int(math.Pow(2, top) / math.Pow(2, float64(i)))
	}

	P := int(math.Ceil((math.Log2(pmax) - math.Log2(pmin)) / dlog2p))
	pc := make([]float64, P)
	d := make([]float64, P)
	var log2Min float64
	for i := P - 1; i >= 0; i-- {
		log2Min = math.Log2(pmin) + float64(i)*dlog2p
		pc[i] = math.Pow(2, log2Min)
		d[i] = 1.0 + log2Min - math.Log2(nyquist16/float64(ws[0]))
	}

	fERBsLen := int(math.Ceil((erb.HzToERB(nyquist) - erb.HzToERB(pmin/4.0)) / dERBs))
	fERBs := make([]float64, fERBsLen)
	start := erb.HzToERB(pmin / 4.0)
	for i := range fERBs {
		fERBs[i] = erb.ERBToHz(start + float64(i)*dERBs)
	}

	primeMaskLen := int(math.Floor(fERBs[len(fERBs)-1]/pc[0] - 0.75))
	primeMask := numeric.Sieve(primeMaskLen)

	return grid{
		pc:        pc,
		d:         d,
		ws:        ws,
		fERBs:     fERBs,
		primeMask: primeMask,
		nyquist:   nyquist,
		nyquist2:  nyquist2,
	}
}
