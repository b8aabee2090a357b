// Package predict estimates the near-future state of a mesh from per-node
// (or per-link) sample histories.
//
// Each series is handed to a Predictor together with the instant to
// predict for: the last sample time plus a horizon. Built-ins:
//
//	linear  least-squares line through (seconds, value)
//	last    most recent value
//	ewma    exponentially weighted moving average, alpha in (0, 1]
//
// Parameters (params.Bag):
//
//	method     string          "linear" (default) | "last" | "ewma"
//	predictor  Predictor       custom predictor, overrides "method"
//	horizon    time.Duration   or a duration string; default one mean sampling interval
//	alpha      float64         EWMA smoothing (default 0.5)
//	window     int             use only the last N samples (0 = all)
//	scope      string          "nodes" (default) | "edges"
//
// Series without samples are reported in Result.Excluded rather than failing
// the run. Invalid values are algoerr.ParamError.
package predict
