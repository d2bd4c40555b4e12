// Package rolling defines options, strategies and edge modes for
// sliding-window reductions.
package rolling

import "errors"

// Sentinel errors for rolling reductions.
var (
	// ErrEmptySignal indicates the input signal is empty.
	ErrEmptySignal = errors.New("rolling: signal must be non-empty")
	// ErrBadWidth indicates a window width below 1 or beyond the signal.
	ErrBadWidth = errors.New("rolling: width must be between 1 and len(signal)")
	// ErrBadMode indicates an unknown EdgeMode value.
	ErrBadMode = errors.New("rolling: unknown edge mode")
	// ErrBadStrategy indicates an unknown Strategy value.
	ErrBadStrategy = errors.New("rolling: unknown strategy")
	// ErrCumulativeUnsupported indicates Min or Max was requested with
	// the Cumulative strategy, which only carries running sums.
	ErrCumulativeUnsupported = errors.New("rolling: Min and Max require the Copy or View strategy")
)

// Strategy selects how windows are delivered to the reducer.
//
//   - Copy       — materialize every window into a scratch buffer before
//     reducing it. The naive baseline: correct, allocation-heavy.
//   - View       — reduce rows of a zero-copy strided view of the signal.
//     Same arithmetic as Copy, no per-window copying.
//   - Cumulative — running/prefix sums, O(n) regardless of width.
//     Supports Sum, Mean and Std; Min and Max reject it.
type Strategy int

const (
	// Copy materializes each window; the copy-based baseline.
	Copy Strategy = iota
	// View reduces windows in place through a strided view.
	View
	// Cumulative replaces per-window loops with running sums.
	Cumulative
)

// EdgeMode controls what happens where a full window does not fit.
//
//   - Valid — emit only complete windows. Output length is n-width+1;
//     output[i] reduces signal[i : i+width].
//   - Clamp — emit one value per input sample. The window is centered
//     on the sample (left half (width-1)/2) and clamped to the signal
//     bounds, so edge windows shrink instead of reading out of range.
type EdgeMode int

const (
	// Valid emits complete windows only.
	Valid EdgeMode = iota
	// Clamp emits one value per sample, truncating windows at the edges.
	Clamp
)

// Options configures a rolling reduction.
//
// Fields:
//   - Width    — window width in samples, 1 ≤ Width ≤ len(signal).
//   - Mode     — Valid or Clamp edge handling.
//   - Strategy — Copy, View or Cumulative window delivery.
//
// Example:
//
//	opts := rolling.DefaultOptions()
//	opts.Width = 16
//	opts.Mode = rolling.Clamp
//	smooth, err := rolling.Mean(signal, &opts)
type Options struct {
	Width    int
	Mode     EdgeMode
	Strategy Strategy
}

// DefaultOptions returns the default configuration:
// Width=5, Mode=Valid, Strategy=View.
func DefaultOptions() Options {
	return Options{Width: 5, Mode: Valid, Strategy: View}
}
