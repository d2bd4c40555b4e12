// Package stride is a small toolkit for sliding-window work over 1-D
// numeric signals: zero-copy strided views, rolling reductions, and
// deterministic generators to feed them.
//
// 🚀 What is stride?
//
//	The classic numerical-library trick: reinterpret a flat buffer as a
//	virtual 2-D matrix of overlapping rows by manipulating shape/stride
//	metadata, then reduce along the window axis — no shifted copies,
//	no per-window allocation.
//
// ✨ What's inside?
//
//	view/    — bounds-checked strided views over []float64:
//	           AsStrided, Sliding, SlidingStep, Materialize
//	rolling/ — windowed Mean / Sum / Min / Max / Std with three
//	           strategies (Copy baseline, View zero-copy, Cumulative
//	           running-sum) and two edge modes (Valid, Clamp)
//	signal/  — deterministic Sine / Pulse / RandomWalk generators
//
// ⚙️ Quick taste:
//
//	data := signal.Sine(1024, 42, signal.WithNoise(0.1))
//	opts := rolling.DefaultOptions()
//	opts.Width = 16
//	opts.Mode = rolling.Clamp
//	smooth, err := rolling.Mean(data, &opts)
//
// Every strategy produces the same numbers; the benchmarks in
// rolling/bench_test.go show why the zero-copy ones are worth having.
//
// Pure Go, no cgo. gonum powers the copy-based baselines.
//
//	go get github.com/katalvlaran/stride
package stride
