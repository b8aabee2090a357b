package dispatch

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/meshlens/algoconf"
)

// Outcome is the result of one algorithm in one dispatch: a Result on
// success, otherwise Err.
type Outcome struct {
	Kind    algoconf.Kind
	Result  any
	Err     error
	Elapsed time.Duration
}

// OK reports whether the algorithm succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

type outcomeJSON struct {
	Kind      algoconf.Kind `json:"kind"`
	OK        bool          `json:"ok"`
	Result    any           `json:"result,omitempty"`
	Error     string        `json:"error,omitempty"`
	ElapsedMS float64       `json:"elapsed_ms"`
}

// MarshalJSON renders Err as a string and Elapsed in milliseconds.
func (o Outcome) MarshalJSON() ([]byte, error) {
	out := outcomeJSON{
		Kind:      o.Kind,
		OK:        o.OK(),
		Result:    o.Result,
		ElapsedMS: float64(o.Elapsed) / float64(time.Millisecond),
	}
	if o.Err != nil {
		out.Error = o.Err.Error()
	}

	return json.Marshal(out)
}

// Report holds the outcomes of one dispatch in kind order.
// Disabled kinds have no entry.
type Report struct {
	ID       uuid.UUID `json:"id"`
	Started  time.Time `json:"started"`
	Nodes    int       `json:"nodes"`
	Edges    int       `json:"edges"`
	Outcomes []Outcome `json:"outcomes"`
}

// Get returns the outcome for k.
func (r *Report) Get(k algoconf.Kind) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Kind == k {
			return o, true
		}
	}

	return Outcome{}, false
}

// Has reports whether k ran.
func (r *Report) Has(k algoconf.Kind) bool {
	_, ok := r.Get(k)

	return ok
}

// Kinds lists the kinds that ran, in dispatch order.
func (r *Report) Kinds() []algoconf.Kind {
	out := make([]algoconf.Kind, len(r.Outcomes))
	for i, o := range r.Outcomes {
		out[i] = o.Kind
	}

	return out
}

// Len is the number of outcomes.
func (r *Report) Len() int { return len(r.Outcomes) }

// Failed lists the kinds whose outcome carries an error.
func (r *Report) Failed() []algoconf.Kind {
	var out []algoconf.Kind
	for _, o := range r.Outcomes {
		if !o.OK() {
			out = append(out, o.Kind)
		}
	}

	return out
}
