package rolling_test

import (
	"testing"

	"github.com/katalvlaran/stride/rolling"
	"github.com/katalvlaran/stride/signal"
)

// benchmarkMean is the view-vs-copy comparison: the same rolling mean
// over the same deterministic noisy sine, delivered by each strategy.
func benchmarkMean(b *testing.B, n, width int, s rolling.Strategy) {
	data := signal.Sine(n, 42, signal.WithNoise(0.25))
	if data == nil {
		b.Fatal("signal.Sine returned nil")
	}
	opts := rolling.DefaultOptions()
	opts.Width = width
	opts.Strategy = s

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rolling.Mean(data, &opts); err != nil {
			b.Fatalf("Mean failed: %v", err)
		}
	}
}

// BenchmarkMean_Copy_100kW16 is the materializing baseline.
func BenchmarkMean_Copy_100kW16(b *testing.B) { benchmarkMean(b, 100_000, 16, rolling.Copy) }

// BenchmarkMean_View_100kW16 reduces through the zero-copy view.
func BenchmarkMean_View_100kW16(b *testing.B) { benchmarkMean(b, 100_000, 16, rolling.View) }

// BenchmarkMean_Cumulative_100kW16 replaces window loops with running sums.
func BenchmarkMean_Cumulative_100kW16(b *testing.B) {
	benchmarkMean(b, 100_000, 16, rolling.Cumulative)
}

// BenchmarkMean_Copy_100kW256 widens the window; copy cost grows with it.
func BenchmarkMean_Copy_100kW256(b *testing.B) { benchmarkMean(b, 100_000, 256, rolling.Copy) }

// BenchmarkMean_View_100kW256 widens the window on the view path.
func BenchmarkMean_View_100kW256(b *testing.B) { benchmarkMean(b, 100_000, 256, rolling.View) }

// BenchmarkMean_Cumulative_100kW256 stays O(n) at any width.
func BenchmarkMean_Cumulative_100kW256(b *testing.B) {
	benchmarkMean(b, 100_000, 256, rolling.Cumulative)
}

// BenchmarkStd_View_100kW64 exercises a non-trivial reducer on the view path.
func BenchmarkStd_View_100kW64(b *testing.B) {
	data := signal.Sine(100_000, 42, signal.WithNoise(0.25))
	opts := rolling.DefaultOptions()
	opts.Width = 64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rolling.Std(data, &opts); err != nil {
			b.Fatalf("Std failed: %v", err)
		}
	}
}
