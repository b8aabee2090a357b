package predict

import (
	"fmt"
	"time"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/params"
)

const algorithm = "predict"

// Built-in method names.
const (
	MethodLinear = "linear"
	MethodLast   = "last"
	MethodEWMA   = "ewma"
)

// Scope selects which histories are extrapolated.
type Scope string

const (
	ScopeNodes Scope = "nodes"
	ScopeEdges Scope = "edges"
)

// Parameter keys read by FromParams.
const (
	ParamMethod    = "method"
	ParamPredictor = "predictor"
	ParamHorizon   = "horizon"
	ParamAlpha     = "alpha"
	ParamWindow    = "window"
	ParamScope     = "scope"
)

// DefaultAlpha is the EWMA smoothing factor when none is given.
const DefaultAlpha = 0.5

// Options configures Run.
type Options struct {
	// Predictor extrapolates each series. nil means Linear{}.
	Predictor Predictor

	// Horizon is how far past the last sample to predict.
	// 0 means one mean sampling interval of that series.
	Horizon time.Duration

	// Window keeps only the last Window samples. 0 keeps all.
	Window int

	Scope Scope
}

// DefaultOptions returns linear prediction over node histories, one interval ahead.
func DefaultOptions() Options {
	return Options{Predictor: Linear{}, Scope: ScopeNodes}
}

// Validate checks ranges.
func (o Options) Validate() error {
	if o.Horizon < 0 {
		return algoerr.Invalid(algorithm, ParamHorizon, fmt.Sprintf("must be >= 0, got %s", o.Horizon))
	}
	if o.Window < 0 {
		return algoerr.Invalid(algorithm, ParamWindow, fmt.Sprintf("must be >= 0, got %d", o.Window))
	}
	switch o.Scope {
	case ScopeNodes, ScopeEdges, "":
	default:
		return algoerr.Invalid(algorithm, ParamScope, fmt.Sprintf("unknown scope %q", o.Scope))
	}

	return nil
}

// PredictorByName returns a built-in predictor.
func PredictorByName(name string, alpha float64) (Predictor, error) {
	switch name {
	case MethodLinear:
		return Linear{}, nil
	case MethodLast:
		return Last{}, nil
	case MethodEWMA:
		return EWMA{Alpha: alpha}, nil
	}

	return nil, algoerr.Invalid(algorithm, ParamMethod, fmt.Sprintf("unknown method %q", name))
}

// FromParams builds Options. No key is required.
// horizon accepts a time.Duration or a string such as "90s".
func FromParams(b *params.Bag) (Options, error) {
	opts := DefaultOptions()

	if p, ok := params.Get[Predictor](b, ParamPredictor); ok && p != nil {
		opts.Predictor = p
	} else {
		alpha := params.FloatOr(b, ParamAlpha, DefaultAlpha)
		if alpha <= 0 || alpha > 1 {
			return opts, algoerr.Invalid(algorithm, ParamAlpha, fmt.Sprintf("must be in (0, 1], got %g", alpha))
		}
		p, err := PredictorByName(params.GetOr(b, ParamMethod, MethodLinear), alpha)
		if err != nil {
			return opts, err
		}
		opts.Predictor = p
	}

	if d, ok := params.Get[time.Duration](b, ParamHorizon); ok {
		opts.Horizon = d
	} else if s, ok := params.Get[string](b, ParamHorizon); ok {
		d, err := time.ParseDuration(s)
		if err != nil {
			return opts, algoerr.Invalid(algorithm, ParamHorizon, err.Error())
		}
		opts.Horizon = d
	}
	opts.Window = params.GetOr(b, ParamWindow, opts.Window)
	if s, ok := params.Get[string](b, ParamScope); ok {
		opts.Scope = Scope(s)
	}

	return opts, opts.Validate()
}

// Prediction is the extrapolated value of one series.
type Prediction struct {
	ID      string    `json:"id"`
	At      time.Time `json:"at"`
	Value   float64   `json:"value"`
	Samples int       `json:"samples"`
}

// Result holds one prediction per series with samples.
type Result struct {
	// Predictions are ordered by ID: vertex IDs ascending, edge IDs in creation order.
	Predictions []Prediction `json:"predictions"`

	// Excluded lists series without samples.
	Excluded []string `json:"excluded"`

	Method string `json:"method"`
	Scope  Scope  `json:"scope"`
}

// Get returns the prediction for id.
func (r *Result) Get(id string) (Prediction, bool) {
	for _, p := range r.Predictions {
		if p.ID == id {
			return p, true
		}
	}

	return Prediction{}, false
}
