// Package timeline answers "which two mesh nodes behaved most alike?" by
// comparing their sample histories (RSSI, SNR, battery, ...) pairwise.
//
// The comparison is a pluggable Metric. Two are built in:
//
//	DTW        dynamic time warping; tolerates phase shifts and unequal lengths
//	Euclidean  L2 over the common most-recent tail
//
// Parameters (params.Bag):
//
//	metric         string   "dtw" (default) | "euclidean"
//	metric_impl    Metric   custom metric, overrides "metric"
//	window         int      DTW Sakoe–Chiba band (<= 0 = none)
//	slope_penalty  float64  DTW cost per insertion/deletion step
//	normalize      bool     z-normalize each series first
//	target         string   compare one node against every other
//	top_k          int      pairs to keep (default 1, 0 = all)
//
// Errors:
//
//   - algoerr.ErrInsufficientHistory when fewer than two nodes carry samples,
//     or when target has none.
//   - algoerr.ParamError for an unknown metric name or target vertex.
//   - algoerr.ErrEmptyGraph / algoerr.ErrNilGraph.
package timeline
