// Package view builds zero-copy "virtual" 2-D views over flat 1-D
// float64 buffers by manipulating shape and stride metadata.
//
// 🚀 What is a strided view?
//
//	Instead of materializing every shifted copy of a signal, a View
//	records four integers — rows, cols, rowStride, colStride — and maps
//	logical coordinates onto the original buffer:
//
//	  flat index of (i, j) = i*rowStride + j*colStride
//
//	With rowStride=1 and colStride=1 the rows become overlapping
//	sliding windows, the idiom behind numpy's sliding_window_view and
//	as_strided. No element is copied; every row aliases the input.
//
// ✨ Key features:
//   - AsStrided — general shape/stride reinterpretation, validated up
//     front so miscomputed metadata is an error, never a silent
//     out-of-bounds read
//   - Sliding / SlidingStep — the overlapping-window special case,
//     with an optional hop size
//   - Row — zero-copy access to a window as a subslice
//   - Materialize — explicit copy-out, the baseline the benchmarks in
//     package rolling compare against
//
// ⚙️ Usage:
//
//	v, err := view.Sliding(data, 16)     // len(data)-15 windows of 16
//	if err != nil { ... }
//	r, c := v.Dims()
//	w, _ := v.Row(3)                     // aliases data[3:19]
//
// A View is immutable and non-owning: it never outlives the validity of
// the slice it was built from, and writes through Row are visible in
// the original buffer.
//
// Complexity: construction O(1), Row O(1), Materialize O(rows·cols).
package view
