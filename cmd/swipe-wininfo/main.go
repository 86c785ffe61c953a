// Command swipe-wininfo prints basic spectral properties (coherent gain,
// equivalent noise bandwidth) of the Hann window the pitch tracker's
// loudness analyzer builds, and optionally the ERB/Mel/Bark conversions of
// a given frequency.
//
// Usage:
//
//	swipe-wininfo [-size N] [-periodic] [-freq HZ]
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/prosodylab/swipe/algorithms/spectral"
	"github.com/prosodylab/swipe/algorithms/windowing"
	"github.com/prosodylab/swipe/erb"
)

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	periodic := flag.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	freq := flag.Float64("freq", 0, "also print Hz/Mel/Bark/ERB conversions for this frequency")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: swipe-wininfo [-size N] [-periodic] [-freq HZ]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	w := windowing.NewHann(*size, !*periodic)
	gain, enbw := analyze(w.GetCoefficients())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\n")
	fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\n", w.GetType(), w.GetSize(), gain, enbw)
	tw.Flush()

	if *freq > 0 {
		printScaleConversions(*freq)
	}
}

// analyze computes coherent gain (mean coefficient) and equivalent noise
// bandwidth in bins, the two properties every window-comparison table
// starts with.
func analyze(coeffs []float64) (coherentGain, enbw float64) {
	n := float64(len(coeffs))
	var sum, sumSq float64
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return 0, math.NaN()
	}
	coherentGain = sum / n
	enbw = n * sumSq / (sum * sum)
	return coherentGain, enbw
}

// printScaleConversions reports hz in the psychoacoustic scales the pitch
// tracker and its filter-bank-adjacent tooling care about: ERB (the scale
// the loudness analyzer's frequency grid is built on), the original SWIPE' Mel constant
// (what -m in the swipe command prints), and the O'Shaughnessy Mel and
// Traunmuller Bark conventions used by generic spectral filter-bank work.
func printScaleConversions(hz float64) {
	mel := spectral.NewMelScale()
	bark := spectral.NewBarkScale()

	fmt.Printf("\n%.2f Hz in other scales:\n", hz)
	fmt.Printf("  ERB:                 %.4f\n", erb.HzToERB(hz))
	fmt.Printf("  Mel (original):      %.4f\n", erb.HzToMel(hz))
	fmt.Printf("  Mel (O'Shaughnessy): %.4f\n", mel.HzToMel(hz))
	fmt.Printf("  Bark (Traunmuller):  %.4f\n", bark.HzToBark(hz))
}
