// Command approxinfo prints accuracy figures for the fast function
// approximations in this module, measured against the Go standard
// library over each function's documented input range.
//
// Usage:
//
//	approxinfo [flags] [kernel-name ...]
//
// Without arguments it prints the error table for all kernels.
//
// Examples:
//
//	approxinfo tanh exp
//	approxinfo -samples 100000
//	approxinfo -list
//	approxinfo -harmonics -drive 4
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-approx"
	"github.com/cwbudde/algo-vecmath"
)

type kernelEntry struct {
	name   string
	lo, hi float64
	fast   func(float64) float64
	ref    func(float64) float64
}

var kernels = []kernelEntry{
	{"cosh", -5, 5, approx.Cosh[float64], math.Cosh},
	{"sinh", -5, 5, approx.Sinh[float64], math.Sinh},
	{"tanh", -5, 5, approx.Tanh[float64], math.Tanh},
	{"cos", -math.Pi, math.Pi, approx.Cos[float64], math.Cos},
	{"sin", -math.Pi, math.Pi, approx.Sin[float64], math.Sin},
	{"tan", -math.Pi / 2, math.Pi / 2, approx.Tan[float64], math.Tan},
	{"exp", -6, 4, approx.Exp[float64], math.Exp},
	{"log1p", -0.8, 5, approx.Log1p[float64], math.Log1p},
}

func main() {
	samples := flag.Int("samples", 10000, "sample points per kernel for error measurement")
	list := flag.Bool("list", false, "list available kernel names")
	harmonics := flag.Bool("harmonics", false, "measure harmonic levels of a tanh-waveshaped sine instead")
	drive := flag.Float64("drive", 2, "input gain before the waveshaper (with -harmonics)")
	count := flag.Int("count", 8, "number of harmonics to report (with -harmonics)")
	size := flag.Int("size", 4096, "FFT size (with -harmonics)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: approxinfo [flags] [kernel-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints accuracy figures for the fast function approximations.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the error table for all kernels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  approxinfo tanh exp\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -samples 100000\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -harmonics -drive 4\n")
	}
	flag.Parse()

	if *list {
		for _, k := range kernels {
			fmt.Println(k.name)
		}
		return
	}

	if *harmonics {
		if err := printHarmonics(*drive, *count, *size); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries := resolveKernels(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching kernels\n")
		os.Exit(1)
	}

	printAccuracy(entries, *samples)
}

func resolveKernels(names []string) []kernelEntry {
	if len(names) == 0 {
		return kernels
	}

	byName := make(map[string]kernelEntry, len(kernels))
	for _, k := range kernels {
		byName[k.name] = k
	}

	var result []kernelEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		k, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown kernel %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, k)
	}
	return result
}

// measure samples the open interval (lo, hi) to keep range-end poles
// (tan at ±π/2) out of the statistics.
func measure(k kernelEntry, samples int) (maxAbs, maxRel, rms float64) {
	if samples < 2 {
		samples = 2
	}

	sumSq := 0.0
	for i := range samples {
		x := k.lo + (k.hi-k.lo)*(float64(i)+0.5)/float64(samples)
		want := k.ref(x)

		err := math.Abs(k.fast(x) - want)
		if err > maxAbs {
			maxAbs = err
		}

		if r := math.Abs(want); r > 1e-12 {
			if rel := err / r; rel > maxRel {
				maxRel = rel
			}
		}

		sumSq += err * err
	}

	rms = math.Sqrt(sumSq / float64(samples))
	return maxAbs, maxRel, rms
}

func printAccuracy(entries []kernelEntry, samples int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tDomain\tMax Abs Err\tMax Rel Err\tRMS Err\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t------\t-----------\t-----------\t-------\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, k := range entries {
		maxAbs, maxRel, rms := measure(k, samples)

		if _, err := fmt.Fprintf(tw, "%s\t[%.4g, %.4g]\t%.3e\t%.3e\t%.3e\n",
			k.name, k.lo, k.hi, maxAbs, maxRel, rms,
		); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// printHarmonics drives a full-scale sine through the tanh waveshaper
// and reports the level of each harmonic relative to the fundamental.
// The sine completes an integer number of cycles per FFT frame, so no
// window is needed.
func printHarmonics(drive float64, count, size int) error {
	const cycles = 63

	if size < 4*cycles {
		return fmt.Errorf("fft size %d too small", size)
	}

	if count < 1 {
		count = 1
	}

	if count*cycles > size/2 {
		return fmt.Errorf("%d harmonics do not fit in the spectrum of an fft of size %d", count, size)
	}

	src := make([]float64, size)
	for i := range src {
		src[i] = math.Sin(2 * math.Pi * cycles * float64(i) / float64(size))
	}

	shaped := make([]float64, size)
	vecmath.ScaleBlock(shaped, src, drive)
	approx.TanhInPlace(shaped)

	in := make([]complex128, size)
	for i, v := range shaped {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return err
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return err
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range re {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	fundamental := mag[cycles]
	if fundamental <= 0 {
		return fmt.Errorf("no fundamental detected at bin %d", cycles)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Harmonic\tBin\tLevel [dB]\n"); err != nil {
		return err
	}

	for k := 1; k <= count; k++ {
		level := math.Inf(-1)
		if m := mag[k*cycles]; m > 0 {
			level = 20 * math.Log10(m/fundamental)
		}

		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.2f\n", k, k*cycles, level); err != nil {
			return err
		}
	}

	return tw.Flush()
}
