package view

import (
	"errors"
	"fmt"
)

// Sentinel errors for view construction and access.
var (
	// ErrEmptyData indicates the backing slice is empty.
	ErrEmptyData = errors.New("view: data must be non-empty")
	// ErrBadShape indicates rows or cols below 1.
	ErrBadShape = errors.New("view: rows and cols must be at least 1")
	// ErrBadStride indicates a negative stride, or a zero hop in SlidingStep.
	ErrBadStride = errors.New("view: stride must be non-negative")
	// ErrBounds indicates the shape/stride combination reaches past the
	// end of the backing slice.
	ErrBounds = errors.New("view: shape and strides reach past the end of data")
	// ErrOutOfRange indicates a row or column index outside the view.
	ErrOutOfRange = errors.New("view: index out of range")
	// ErrWindowTooWide indicates a sliding width larger than the signal.
	ErrWindowTooWide = errors.New("view: window wider than data")
)

// View is a non-owning 2-D reinterpretation of a flat float64 buffer.
// Element (i, j) lives at flat offset i*rowStride + j*colStride.
// A View is immutable once built and is safe for concurrent reads.
type View struct {
	data      []float64 // backing buffer, never copied
	rows      int       // number of logical rows (windows)
	cols      int       // elements per row
	rowStride int       // flat distance between consecutive rows
	colStride int       // flat distance between consecutive elements in a row
}

// AsStrided reinterprets data as a rows×cols matrix with explicit strides.
// The maximal reachable flat offset, (rows-1)*rowStride + (cols-1)*colStride,
// must fall inside data; otherwise ErrBounds is returned and no View is
// built. This check is the whole safety story: once constructed, a View
// cannot read outside its buffer.
//
// Overlapping rows (rowStride < cols*colStride) are legal and are the
// point of the package. A zero stride repeats the same elements, which
// is occasionally useful for broadcasting a row.
//
// Complexity: O(1); no allocation beyond the View header.
func AsStrided(data []float64, rows, cols, rowStride, colStride int) (*View, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("AsStrided(%dx%d): %w", rows, cols, ErrBadShape)
	}
	if rowStride < 0 || colStride < 0 {
		return nil, fmt.Errorf("AsStrided(strides %d,%d): %w", rowStride, colStride, ErrBadStride)
	}
	// Bounds-safety of the reinterpretation: the farthest element any
	// (i, j) can address must exist in data.
	last := (rows-1)*rowStride + (cols-1)*colStride
	if last >= len(data) {
		return nil, fmt.Errorf("AsStrided(%dx%d, strides %d,%d) over %d elements: %w",
			rows, cols, rowStride, colStride, len(data), ErrBounds)
	}

	return &View{data: data, rows: rows, cols: cols, rowStride: rowStride, colStride: colStride}, nil
}

// Sliding builds the overlapping-window view of data with the given
// window width: len(data)-width+1 rows, each a width-long window that
// starts one sample after the previous. Rows alias the input buffer.
//
// Complexity: O(1).
func Sliding(data []float64, width int) (*View, error) {
	return SlidingStep(data, width, 1)
}

// SlidingStep is Sliding with a hop size: consecutive windows start
// step samples apart. step >= width yields non-overlapping windows.
// The number of rows is 1 + (len(data)-width)/step; trailing samples
// that do not fill a whole window are not represented.
func SlidingStep(data []float64, width, step int) (*View, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if width < 1 {
		return nil, fmt.Errorf("SlidingStep(width=%d): %w", width, ErrBadShape)
	}
	if step < 1 {
		return nil, fmt.Errorf("SlidingStep(step=%d): %w", step, ErrBadStride)
	}
	if width > len(data) {
		return nil, fmt.Errorf("SlidingStep(width=%d, n=%d): %w", width, len(data), ErrWindowTooWide)
	}
	rows := 1 + (len(data)-width)/step

	return AsStrided(data, rows, width, step, 1)
}

// Dims returns the logical (rows, cols) of the view.
func (v *View) Dims() (rows, cols int) { return v.rows, v.cols }

// Strides returns the (rowStride, colStride) metadata in elements.
func (v *View) Strides() (rowStride, colStride int) { return v.rowStride, v.colStride }

// At reads the element at (i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (v *View) At(i, j int) (float64, error) {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		return 0, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.data[i*v.rowStride+j*v.colStride], nil
}

// Row returns row i without copying. When colStride is 1 the result is
// a subslice of the backing buffer: writes through it are visible in
// the original data, and it stays valid exactly as long as the buffer
// does. Views with colStride != 1 cannot be expressed as a subslice,
// so Row gathers the row into a fresh slice in that case.
//
// Complexity: O(1) for colStride==1, O(cols) otherwise.
func (v *View) Row(i int) ([]float64, error) {
	if i < 0 || i >= v.rows {
		return nil, fmt.Errorf("View.Row(%d): %w", i, ErrOutOfRange)
	}
	start := i * v.rowStride
	if v.colStride == 1 {
		return v.data[start : start+v.cols : start+v.cols], nil
	}
	row := make([]float64, v.cols)
	for j := range row {
		row[j] = v.data[start+j*v.colStride]
	}

	return row, nil
}

// Materialize copies the view out into a freshly allocated [][]float64.
// This is exactly the shifted-copies approach the view exists to avoid;
// it is kept as the correctness and benchmark baseline.
//
// Complexity: O(rows·cols) time and memory.
func (v *View) Materialize() [][]float64 {
	out := make([][]float64, v.rows)
	flat := make([]float64, v.rows*v.cols)
	for i := 0; i < v.rows; i++ {
		row := flat[i*v.cols : (i+1)*v.cols]
		base := i * v.rowStride
		if v.colStride == 1 {
			copy(row, v.data[base:base+v.cols])
		} else {
			for j := 0; j < v.cols; j++ {
				row[j] = v.data[base+j*v.colStride]
			}
		}
		out[i] = row
	}

	return out
}
