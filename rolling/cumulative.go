package rolling

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Cumulative-strategy kernels. Per-window loops are replaced with
// running or prefix sums, making the cost O(n) regardless of width.
// Validation has already happened in resolve.

// cumSum computes rolling sums. The Valid path keeps one running sum
// and slides it: subtract the sample leaving the window, add the one
// entering. The Clamp path uses a prefix array because edge windows
// change length.
func cumSum(signal []float64, o Options) []float64 {
	n, w := len(signal), o.Width

	if o.Mode == Valid {
		out := make([]float64, n-w+1)
		s := floats.Sum(signal[:w])
		out[0] = s
		for i := 1; i < len(out); i++ {
			s += signal[i+w-1] - signal[i-1]
			out[i] = s
		}

		return out
	}

	p := prefix(signal)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		lo, hi := clampBounds(i, w, n)
		out[i] = p[hi] - p[lo]
	}

	return out
}

// cumMean is cumSum scaled by the (per-window) sample count.
func cumMean(signal []float64, o Options) []float64 {
	out := cumSum(signal, o)

	if o.Mode == Valid {
		floats.Scale(1/float64(o.Width), out)

		return out
	}

	n := len(signal)
	for i := range out {
		lo, hi := clampBounds(i, o.Width, n)
		out[i] /= float64(hi - lo)
	}

	return out
}

// cumStd computes the rolling population standard deviation from
// prefix sums of the centered signal: with d = x − x̄ for the global
// mean x̄, Var = E[d²] − E[d]². Centering first keeps the two prefix
// terms the same order of magnitude as the spread itself — raw x and
// x² prefixes cancel catastrophically once the signal rides an offset.
// Residual rounding can still push the variance a hair below zero,
// hence sqrtNonNeg.
func cumStd(signal []float64, o Options) []float64 {
	n, w := len(signal), o.Width

	mu := stat.Mean(signal, nil)
	p := make([]float64, n+1)
	p2 := make([]float64, n+1)
	for i, x := range signal {
		d := x - mu
		p[i+1] = p[i] + d
		p2[i+1] = p2[i] + d*d
	}

	window := func(lo, hi int) float64 {
		if hi-lo == 1 {
			return 0 // a single sample has no spread
		}
		c := float64(hi - lo)
		mean := (p[hi] - p[lo]) / c

		return sqrtNonNeg((p2[hi]-p2[lo])/c - mean*mean)
	}

	if o.Mode == Valid {
		out := make([]float64, n-w+1)
		for i := range out {
			out[i] = window(i, i+w)
		}

		return out
	}

	out := make([]float64, n)
	for i := range out {
		lo, hi := clampBounds(i, w, n)
		out[i] = window(lo, hi)
	}

	return out
}

// prefix returns the cumulative-sum array of signal with a leading 0,
// so that sum(signal[lo:hi]) == p[hi] - p[lo].
func prefix(signal []float64) []float64 {
	p := make([]float64, len(signal)+1)
	for i, x := range signal {
		p[i+1] = p[i] + x
	}

	return p
}
