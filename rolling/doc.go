// Package rolling computes sliding-window reductions — Mean, Sum, Min,
// Max, Std — over 1-D float64 signals.
//
// 🚀 The point
//
//	A rolling mean is trivially written as "for every position, copy the
//	window, average it". This package keeps that version (Strategy=Copy,
//	powered by gonum) as the baseline and offers two faster deliveries
//	of the exact same numbers:
//
//	  • View       — windows are rows of a zero-copy strided view
//	                 (package view); nothing is materialized.
//	  • Cumulative — running/prefix sums; O(n) independent of width
//	                 (Sum, Mean, Std only).
//
// ✨ Edge handling:
//   - Valid — complete windows only; output is len(signal)-width+1 long.
//   - Clamp — one output per sample; the window is centered and clamped
//     at both edges, so boundary windows shrink rather than read out of
//     the buffer.
//
// ⚙️ Usage:
//
//	opts := rolling.DefaultOptions()
//	opts.Width = 16
//	smooth, err := rolling.Mean(noisy, &opts)
//
// All strategies agree to within floating-point tolerance; the
// benchmarks in bench_test.go are the wall-clock comparison between
// them. Std is the population standard deviation.
//
// Complexity: Copy/View are O(n·width); Cumulative is O(n).
package rolling
