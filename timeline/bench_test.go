package timeline_test

import (
	"testing"

	"github.com/katalvlaran/meshlens/timeline"
)

// benchmarkMetric runs m on ramps of lengths n and k.
func benchmarkMetric(b *testing.B, m timeline.Metric, n, k int) {
	x := make([]float64, n)
	y := make([]float64, k)
	for i := range x {
		x[i] = float64(i)
	}
	for j := range y {
		y[j] = float64(j)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Distance(x, y); err != nil {
			b.Fatalf("%s failed: %v", m.Name(), err)
		}
	}
}

func BenchmarkDTW_500(b *testing.B) { benchmarkMetric(b, timeline.DTW{}, 500, 500) }
func BenchmarkDTW_500_Window10(b *testing.B) { benchmarkMetric(b, timeline.DTW{Window: 10}, 500, 500) }
func BenchmarkEuclidean_500(b *testing.B) { benchmarkMetric(b, timeline.Euclidean{}, 500, 500) }
