package view_test

import (
	"fmt"

	"github.com/katalvlaran/stride/view"
)

// ExampleSliding demonstrates the overlapping-window view: six samples,
// windows of three, no copying.
//
// Scenario:
//
//	data = [0 1 2 3 4 5]
//	rows become [0 1 2], [1 2 3], [2 3 4], [3 4 5]
//
// Complexity: O(1) construction, O(1) per Row.
func ExampleSliding() {
	data := []float64{0, 1, 2, 3, 4, 5}

	v, err := view.Sliding(data, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rows, cols := v.Dims()
	fmt.Printf("dims=%dx%d\n", rows, cols)
	for i := 0; i < rows; i++ {
		w, _ := v.Row(i)
		fmt.Println(w)
	}
	// Output:
	// dims=4x3
	// [0 1 2]
	// [1 2 3]
	// [2 3 4]
	// [3 4 5]
}

// ExampleAsStrided shows the general form: the same buffer read as a
// 2x3 matrix whose rows overlap by one element (rowStride=2).
func ExampleAsStrided() {
	data := []float64{0, 1, 2, 3, 4}

	v, err := view.AsStrided(data, 2, 3, 2, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, row := range v.Materialize() {
		fmt.Println(row)
	}
	// Output:
	// [0 1 2]
	// [2 3 4]
}
