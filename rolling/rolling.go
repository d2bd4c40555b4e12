package rolling

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/stride/view"
)

// reducer collapses one window into a single value.
type reducer func(window []float64) float64

// Mean computes the rolling average of signal.
//
// Example:
//
//	opts := rolling.DefaultOptions()
//	opts.Width = 3
//	out, err := rolling.Mean([]float64{1, 2, 3, 4}, &opts) // [2 3]
func Mean(signal []float64, opts *Options) ([]float64, error) {
	o, err := resolve(signal, opts)
	if err != nil {
		return nil, err
	}
	if o.Strategy == Cumulative {
		return cumMean(signal, o), nil
	}

	return reduce(signal, o, func(w []float64) float64 { return stat.Mean(w, nil) }), nil
}

// Sum computes the rolling sum of signal.
func Sum(signal []float64, opts *Options) ([]float64, error) {
	o, err := resolve(signal, opts)
	if err != nil {
		return nil, err
	}
	if o.Strategy == Cumulative {
		return cumSum(signal, o), nil
	}

	return reduce(signal, o, floats.Sum), nil
}

// Min computes the rolling minimum of signal.
// The Cumulative strategy carries no order statistics and is rejected
// with ErrCumulativeUnsupported.
func Min(signal []float64, opts *Options) ([]float64, error) {
	o, err := resolve(signal, opts)
	if err != nil {
		return nil, err
	}
	if o.Strategy == Cumulative {
		return nil, ErrCumulativeUnsupported
	}

	return reduce(signal, o, floats.Min), nil
}

// Max computes the rolling maximum of signal.
// Rejects the Cumulative strategy like Min.
func Max(signal []float64, opts *Options) ([]float64, error) {
	o, err := resolve(signal, opts)
	if err != nil {
		return nil, err
	}
	if o.Strategy == Cumulative {
		return nil, ErrCumulativeUnsupported
	}

	return reduce(signal, o, floats.Max), nil
}

// Std computes the rolling population standard deviation of signal.
func Std(signal []float64, opts *Options) ([]float64, error) {
	o, err := resolve(signal, opts)
	if err != nil {
		return nil, err
	}
	if o.Strategy == Cumulative {
		return cumStd(signal, o), nil
	}

	return reduce(signal, o, func(w []float64) float64 { return stat.PopStdDev(w, nil) }), nil
}

// resolve applies defaults for a nil opts and validates the rest.
func resolve(signal []float64, opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if len(signal) == 0 {
		return o, ErrEmptySignal
	}
	if o.Width < 1 || o.Width > len(signal) {
		return o, ErrBadWidth
	}
	if o.Mode != Valid && o.Mode != Clamp {
		return o, ErrBadMode
	}
	if o.Strategy != Copy && o.Strategy != View && o.Strategy != Cumulative {
		return o, ErrBadStrategy
	}

	return o, nil
}

// clampBounds returns the half-open window [lo, hi) for output index i
// in Clamp mode: centered with left half (width-1)/2, truncated to the
// signal bounds. hi-lo < width only near the edges.
func clampBounds(i, width, n int) (lo, hi int) {
	lo = i - (width-1)/2
	hi = lo + width
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}

	return lo, hi
}

// reduce runs fn over every window of signal for the Copy and View
// strategies. Both walk the same windows; they differ only in whether
// each window is materialized first — which is exactly what the
// benchmarks measure.
func reduce(signal []float64, o Options, fn reducer) []float64 {
	n := len(signal)

	if o.Mode == Valid {
		rows := n - o.Width + 1
		out := make([]float64, rows)
		switch o.Strategy {
		case View:
			// Sliding cannot fail here: width was validated against n.
			v, _ := view.Sliding(signal, o.Width)
			for i := 0; i < rows; i++ {
				w, _ := v.Row(i)
				out[i] = fn(w)
			}
		default: // Copy
			scratch := make([]float64, o.Width)
			for i := 0; i < rows; i++ {
				copy(scratch, signal[i:i+o.Width])
				out[i] = fn(scratch)
			}
		}

		return out
	}

	// Clamp: one output per sample; windows shrink at the edges instead
	// of reading outside the buffer.
	out := make([]float64, n)
	switch o.Strategy {
	case View:
		v, _ := view.Sliding(signal, o.Width)
		for i := 0; i < n; i++ {
			lo, hi := clampBounds(i, o.Width, n)
			if hi-lo == o.Width {
				w, _ := v.Row(lo)
				out[i] = fn(w)
			} else {
				out[i] = fn(signal[lo:hi])
			}
		}
	default: // Copy
		scratch := make([]float64, o.Width)
		for i := 0; i < n; i++ {
			lo, hi := clampBounds(i, o.Width, n)
			w := scratch[:hi-lo]
			copy(w, signal[lo:hi])
			out[i] = fn(w)
		}
	}

	return out
}

// sqrtNonNeg guards the variance→deviation step against tiny negative
// values produced by floating-point cancellation.
func sqrtNonNeg(x float64) float64 {
	if x < 0 {
		return 0
	}

	return math.Sqrt(x)
}
