package pitch

import (
	"math"

	"github.com/prosodylab/swipe/numeric"
)

// extractPitch turns the strength matrix S (candidates x output frames)
// into a pitch track: per frame, find the strongest candidate, bail out to
// the NaN sentinel if it doesn't clear st, and otherwise refine it with a
// degree-2 polyfit over the neighboring candidates in normalized
// log-period space.
//
// At the grid's lower edge the refinement falls back to the edge
// candidate itself, matching the reference implementation. At the upper
// edge this implementation falls back to the *last* candidate
// (pc[len(pc)-1]) rather than the first — the reference emits pc[0] in
// both edge cases, which looks like a copy-paste artifact rather than
// intended behavior; see DESIGN.md.
func extractPitch(S [][]float64, pc []float64, st float64) []float64 {
	P := len(S)
	T := len(S[0])

	// Candidates are laid out on a uniform log2 grid, so the log2-period
	// span between any candidate and its two neighbors is the same
	// constant; the first three candidates are as good a sample as any.
	search := int(math.Round((math.Log2(pc[2])-math.Log2(pc[0]))/polyV + 1.0))

	p := make([]float64, T)
	for j := 0; j < T; j++ {
		maxVal := math.Inf(-1)
		maxIdx := 0
		for i := 0; i < P; i++ {
			if S[i][j] > maxVal {
				maxVal = S[i][j]
				maxIdx = i
			}
		}

		switch {
		case maxVal <= st:
			p[j] = math.NaN()
		case maxIdx == 0:
			p[j] = pc[0]
		case maxIdx == P-1:
			p[j] = pc[P-1]
		default:
			p[j] = refinePitch(S, pc, maxIdx, j, search)
		}
	}
	return p
}

// refinePitch performs the parabolic (degree-2 polyfit) refinement around
// the strongest candidate maxIdx for output frame j.
func refinePitch(S [][]float64, pc []float64, maxIdx, j, search int) float64 {
	tc2 := 1.0 / pc[maxIdx]
	log2pc := math.Log2(pc[maxIdx-1])

	s := []float64{S[maxIdx-1][j], S[maxIdx][j], S[maxIdx+1][j]}
	ntc := []float64{
		((1.0/pc[maxIdx-1])/tc2 - 1.0) * 2.0 * math.Pi,
		0.0,
		((1.0/pc[maxIdx+1])/tc2 - 1.0) * 2.0 * math.Pi,
	}

	coefs, err := numeric.Polyfit(ntc, s, 2)
	if err != nil {
		return pc[maxIdx]
	}

	bestVal := math.Inf(-1)
	bestI := 0
	for i := 0; i < search; i++ {
		lf := log2pc + float64(i)*polyV
		nftc := numeric.PolyEval(coefs, ((1.0/math.Pow(2, lf))/tc2-1.0)*2.0*math.Pi)
		if nftc > bestVal {
			bestVal = nftc
			bestI = i
		}
	}
	return math.Pow(2, log2pc+float64(bestI)*polyV)
}
