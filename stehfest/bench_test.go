package stehfest_test

import (
	"testing"

	"github.com/katalvlaran/laplace/stehfest"
)

// benchmarkInvert measures one inversion of 1/(1+p) at t=1 for the
// given order.
func benchmarkInvert(b *testing.B, order int) {
	inv, err := stehfest.New(order)
	if err != nil {
		b.Fatalf("New(%d): %v", order, err)
	}
	image := func(p float64) float64 { return 1.0 / (1.0 + p) }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := inv.Invert(image, 1.0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInvert_Order6(b *testing.B)  { benchmarkInvert(b, 6) }
func BenchmarkInvert_Order14(b *testing.B) { benchmarkInvert(b, 14) }
func BenchmarkInvert_Order24(b *testing.B) { benchmarkInvert(b, 24) }

// BenchmarkInvertBatch_1024 measures the parallel fan-out over a grid
// of 1024 time points at the default order.
func BenchmarkInvertBatch_1024(b *testing.B) {
	inv, err := stehfest.New(stehfest.DefaultOrder)
	if err != nil {
		b.Fatal(err)
	}
	image := func(p float64) float64 { return 1.0 / (p * p) }
	ts := make([]float64, 1024)
	for i := range ts {
		ts[i] = 0.01 + 0.01*float64(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := inv.InvertBatch(image, ts); err != nil {
			b.Fatal(err)
		}
	}
}
