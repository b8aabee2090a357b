package timeline

import (
	"fmt"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/params"
)

const algorithm = "timeline"

// Built-in metric names.
const (
	MetricDTW       = "dtw"
	MetricEuclidean = "euclidean"
)

// Parameter keys read by FromParams.
const (
	ParamMetric       = "metric"        // string: "dtw" | "euclidean"
	ParamMetricImpl   = "metric_impl"   // Metric value, overrides "metric"
	ParamWindow       = "window"        // int, DTW band
	ParamSlopePenalty = "slope_penalty" // float64 >= 0, DTW
	ParamNormalize    = "normalize"     // bool
	ParamTarget       = "target"        // string vertex ID
	ParamTopK         = "top_k"         // int >= 0
)

// Options configures Run.
type Options struct {
	// Metric compares two value series. nil means DTW{}.
	Metric Metric

	// Normalize z-normalizes each series first, comparing shape over level.
	Normalize bool

	// Target, if set, ranks every other node against this one instead of all pairs.
	Target string

	// TopK bounds Pairs. 0 keeps every pair.
	TopK int
}

// DefaultOptions returns DTW, no normalization, all-pairs, TopK 1.
func DefaultOptions() Options {
	return Options{Metric: DTW{}, TopK: 1}
}

// MetricByName returns a built-in metric.
func MetricByName(name string, window int, slope float64) (Metric, error) {
	switch name {
	case MetricDTW:
		return DTW{Window: window, SlopePenalty: slope}, nil
	case MetricEuclidean:
		return Euclidean{}, nil
	}

	return nil, algoerr.Invalid(algorithm, ParamMetric, fmt.Sprintf("unknown metric %q", name))
}

// FromParams builds Options. No key is required.
func FromParams(b *params.Bag) (Options, error) {
	opts := DefaultOptions()
	if m, ok := params.Get[Metric](b, ParamMetricImpl); ok && m != nil {
		opts.Metric = m
	} else {
		slope := params.FloatOr(b, ParamSlopePenalty, 0.0)
		if slope < 0 {
			return opts, algoerr.Invalid(algorithm, ParamSlopePenalty, fmt.Sprintf("must be >= 0, got %g", slope))
		}
		m, err := MetricByName(params.GetOr(b, ParamMetric, MetricDTW), params.GetOr(b, ParamWindow, 0), slope)
		if err != nil {
			return opts, err
		}
		opts.Metric = m
	}
	opts.Normalize = params.GetOr(b, ParamNormalize, opts.Normalize)
	opts.Target = params.GetOr(b, ParamTarget, opts.Target)
	opts.TopK = params.GetOr(b, ParamTopK, opts.TopK)
	if opts.TopK < 0 {
		return opts, algoerr.Invalid(algorithm, ParamTopK, fmt.Sprintf("must be >= 0, got %d", opts.TopK))
	}

	return opts, nil
}

// Pair is two nodes and the distance between their histories.
type Pair struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Distance float64 `json:"distance"`
}

// Result lists the closest pairs.
type Result struct {
	// Best is Pairs[0].
	Best Pair `json:"best"`

	// Pairs are sorted by Distance, then A, then B.
	Pairs []Pair `json:"pairs"`

	// Compared is the number of nodes with history that took part.
	Compared int `json:"compared"`

	// Excluded lists nodes skipped for lack of samples, sorted.
	Excluded []string `json:"excluded"`

	Metric string `json:"metric"`
}
