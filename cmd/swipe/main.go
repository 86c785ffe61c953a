// Command swipe runs the SWIPE' pitch tracker over a WAV file (or stdin)
// and prints a time/pitch track, one "time pitch" pair per line.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/prosodylab/swipe/audioio"
	"github.com/prosodylab/swipe/erb"
	"github.com/prosodylab/swipe/pitch"
)

const version = "1.0"

const usage = `swipe [-i INPUT] [-b LIST] [-o OUTPUT] [-r MIN:MAX] [-s ST] [-t DT] [-mnhv]

FLAG:           DESCRIPTION:                                    DEFAULT:

-i FILE         input file                                      stdin
-o FILE         output file                                     stdout
-b LIST         batch mode: a file containing one
                "INPUT OUTPUT" pair per line

-r MIN:MAX      pitch range in Hertz                             100:600
-s THRSHLD      strength threshold  [0 <= x <= 1]                 0.300
-t SECONDS      timestep in seconds [must be >= 0.001]            0.001

-m              output Mel instead of Hertz                      no
-n              don't output unvoiced frames                     no
-h              display this message, then quit
-v              display version number, then quit

OUTPUT: one "time pitch" pair per line, time in seconds, pitch in Hz (or Mel
with -m). Unvoiced frames print as NaN unless -n is given, which omits them.
`

func main() {
	var inPath, outPath, batchPath, rangeFlag string
	var strengthThreshold, timeStep float64
	var mel, suppressUnvoiced, showVersion bool

	flag.StringVar(&inPath, "i", "-", "input WAV file (- for stdin)")
	flag.StringVar(&outPath, "o", "-", "output file (- for stdout)")
	flag.StringVar(&batchPath, "b", "", "batch mode: file of \"input output\" pairs")
	flag.StringVar(&rangeFlag, "r", "100:600", "pitch range in Hertz, MIN:MAX")
	flag.Float64Var(&strengthThreshold, "s", pitch.DefaultStrengthThreshold, "strength threshold")
	flag.Float64Var(&timeStep, "t", pitch.DefaultTimeStep, "timestep in seconds")
	flag.BoolVar(&mel, "m", false, "output Mel instead of Hertz")
	flag.BoolVar(&suppressUnvoiced, "n", false, "don't output unvoiced frames")
	flag.BoolVar(&showVersion, "v", false, "display version number, then quit")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if showVersion {
		fmt.Fprintf(os.Stderr, "This is SWIPE', v. %s.\n", version)
		os.Exit(0)
	}

	minPitch, maxPitch, err := parseRange(rangeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := pitch.Options{
		MinPitch:          minPitch,
		MaxPitch:          maxPitch,
		StrengthThreshold: strengthThreshold,
		TimeStep:          timeStep,
	}

	if batchPath != "" {
		runBatch(batchPath, opts, mel, suppressUnvoiced)
		return
	}

	if err := runOne(inPath, outPath, opts, mel, suppressUnvoiced); err != nil {
		fmt.Fprintf(os.Stderr, "File or stream %s failed: %v\n", inPath, err)
		os.Exit(1)
	}
}

func parseRange(s string) (float64, float64, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("swipe: -r expects MIN:MAX, got %q", s)
	}
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("swipe: invalid min pitch %q: %w", parts[0], err)
	}
	max, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("swipe: invalid max pitch %q: %w", parts[1], err)
	}
	return min, max, nil
}

func runOne(inPath, outPath string, opts pitch.Options, mel, suppressUnvoiced bool) error {
	var signal []float64
	var rate int
	var err error
	if inPath == "-" {
		signal, rate, err = audioio.ReadWAVReader(os.Stdin)
	} else {
		signal, rate, err = audioio.ReadWAV(inPath)
	}
	if err != nil {
		return err
	}

	track, dt, err := pitch.Track(context.Background(), signal, float64(rate), opts)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("swipe: output %s not writable: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}
	writeTrack(out, track, dt, mel, suppressUnvoiced)
	return nil
}

func runBatch(batchPath string, opts pitch.Options, mel, suppressUnvoiced bool) {
	f, err := os.Open(batchPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		in, out := fields[0], fields[1]
		fmt.Fprintf(os.Stderr, "%s -> %s ... ", in, out)
		if err := runOne(in, out, opts, mel, suppressUnvoiced); err != nil {
			fmt.Fprintf(os.Stderr, "failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "done.")
	}
}

func writeTrack(w *os.File, track []float64, dt float64, mel, suppressUnvoiced bool) {
	writer := bufio.NewWriter(w)
	defer writer.Flush()

	t := 0.0
	for _, hz := range track {
		voiced := !math.IsNaN(hz)
		if voiced || !suppressUnvoiced {
			value := hz
			if mel && voiced {
				value = erb.HzToMel(hz)
			}
			fmt.Fprintf(writer, "%4.7f %5.4f\n", t, value)
		}
		t += dt
	}
}
