package view_test

import (
	"testing"

	"github.com/katalvlaran/stride/view"
)

// benchmarkRowWalk builds a sliding view over n samples with the given
// window width and walks every row once per iteration.
func benchmarkRowWalk(b *testing.B, n, width int) {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	v, err := view.Sliding(data, width)
	if err != nil {
		b.Fatalf("Sliding failed: %v", err)
	}
	rows, _ := v.Dims()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sink float64
		for r := 0; r < rows; r++ {
			w, _ := v.Row(r)
			sink += w[0]
		}
		_ = sink
	}
}

// benchmarkMaterialize measures the copy-out path on the same shapes,
// the allocation cost the view avoids.
func benchmarkMaterialize(b *testing.B, n, width int) {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	v, err := view.Sliding(data, width)
	if err != nil {
		b.Fatalf("Sliding failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Materialize()
	}
}

// BenchmarkRowWalk_10kW16 walks 10k samples with width 16 windows.
func BenchmarkRowWalk_10kW16(b *testing.B) { benchmarkRowWalk(b, 10_000, 16) }

// BenchmarkRowWalk_10kW128 walks 10k samples with width 128 windows.
func BenchmarkRowWalk_10kW128(b *testing.B) { benchmarkRowWalk(b, 10_000, 128) }

// BenchmarkMaterialize_10kW16 copies out 10k samples with width 16 windows.
func BenchmarkMaterialize_10kW16(b *testing.B) { benchmarkMaterialize(b, 10_000, 16) }

// BenchmarkMaterialize_10kW128 copies out 10k samples with width 128 windows.
func BenchmarkMaterialize_10kW128(b *testing.B) { benchmarkMaterialize(b, 10_000, 128) }
