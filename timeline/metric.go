package timeline

import (
	"errors"
	"math"
)

// ErrEmptySequence indicates one or both series are empty.
var ErrEmptySequence = errors.New("timeline: series must be non-empty")

// Metric measures how far apart two value series are. Smaller is more similar.
// Implementations must be symmetric and safe for concurrent use.
type Metric interface {
	Name() string
	Distance(a, b []float64) (float64, error)
}

// MetricFunc adapts a plain function to Metric under the name "custom".
type MetricFunc func(a, b []float64) (float64, error)

func (MetricFunc) Name() string { return "custom" }

func (f MetricFunc) Distance(a, b []float64) (float64, error) { return f(a, b) }

// DTW is Dynamic Time Warping with an optional Sakoe–Chiba band.
//
// Recurrence (rolling rows, no path recovery):
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +∞
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//
// Window <= 0 means unconstrained. A band narrower than |len(a)-len(b)| could
// never reach the corner, so it is widened to that difference.
//
// Complexity: O(n·m) time, O(m) memory.
type DTW struct {
	Window       int
	SlopePenalty float64
}

func (DTW) Name() string { return MetricDTW }

func (d DTW) Distance(a, b []float64) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, ErrEmptySequence
	}
	window := math.MaxInt
	if d.Window > 0 {
		window = max(d.Window, abs(n-m))
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + min(prev[j]+d.SlopePenalty, curr[j-1]+d.SlopePenalty, prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// Euclidean is the L2 distance over the most recent min(len(a), len(b))
// samples of each series, so series of unequal length compare their common tail.
type Euclidean struct{}

func (Euclidean) Name() string { return MetricEuclidean }

func (Euclidean) Distance(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptySequence
	}
	k := min(len(a), len(b))
	a, b = a[len(a)-k:], b[len(b)-k:]
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return math.Sqrt(s), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// zNormalize rescales s to zero mean and unit variance. A constant series maps to zeros.
func zNormalize(s []float64) []float64 {
	out := make([]float64, len(s))
	if len(s) == 0 {
		return out
	}
	mean := 0.0
	for _, v := range s {
		mean += v
	}
	mean /= float64(len(s))
	variance := 0.0
	for _, v := range s {
		variance += (v - mean) * (v - mean)
	}
	std := math.Sqrt(variance / float64(len(s)))
	if std == 0 {
		return out
	}
	for i, v := range s {
		out[i] = (v - mean) / std
	}

	return out
}
