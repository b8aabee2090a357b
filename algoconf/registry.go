package algoconf

import (
	"fmt"

	"github.com/katalvlaran/meshlens/params"
)

// Activation is the on/off switch of one algorithm. The zero value is off.
type Activation struct {
	run bool
}

// Set turns the algorithm on or off.
func (a *Activation) Set(on bool) { a.run = on }

// Get reports whether the algorithm is on.
func (a Activation) Get() bool { return a.run }

// AlgorithmConfig pairs an activation flag with the parameters of one algorithm.
type AlgorithmConfig struct {
	Activation Activation
	Params     *params.Bag
}

func newAlgorithmConfig() AlgorithmConfig {
	return AlgorithmConfig{Params: params.New()}
}

// Registry holds the configuration of every algorithm kind.
//
// It is a plain value with no locking; wrap it in a Store when it is shared
// with a dispatching goroutine.
type Registry struct {
	ArticulationPoints  AlgorithmConfig
	GlobalMinCut        AlgorithmConfig
	DiffusionCentrality AlgorithmConfig
	MostSimilarTimeline AlgorithmConfig
	PredictedState      AlgorithmConfig
}

// New returns a Registry with every kind off and empty parameter bags.
func New() *Registry {
	return &Registry{
		ArticulationPoints:  newAlgorithmConfig(),
		GlobalMinCut:        newAlgorithmConfig(),
		DiffusionCentrality: newAlgorithmConfig(),
		MostSimilarTimeline: newAlgorithmConfig(),
		PredictedState:      newAlgorithmConfig(),
	}
}

// config maps a kind to its field. An unknown kind is a programming error.
func (r *Registry) config(k Kind) *AlgorithmConfig {
	switch k {
	case ArticulationPoints:
		return &r.ArticulationPoints
	case GlobalMinCut:
		return &r.GlobalMinCut
	case DiffusionCentrality:
		return &r.DiffusionCentrality
	case MostSimilarTimeline:
		return &r.MostSimilarTimeline
	case PredictedState:
		return &r.PredictedState
	}
	panic(fmt.Sprintf("algoconf: invalid kind %d", uint8(k)))
}

// SetAlgorithms assigns every activation flag from mask: bit i enables Kind(i).
// The assignment is absolute, so kinds whose bit is clear are switched off.
// Bits above PredictedState are ignored.
func (r *Registry) SetAlgorithms(mask uint8) {
	for _, k := range Kinds() {
		r.config(k).Activation.Set(mask&k.Bit() != 0)
	}
}

// Mask derives the activation bitfield from the current flags.
func (r *Registry) Mask() uint8 {
	var m uint8
	for _, k := range Kinds() {
		if r.config(k).Activation.Get() {
			m |= k.Bit()
		}
	}

	return m
}

// Set switches kind k on or off.
func (r *Registry) Set(k Kind, on bool) { r.config(k).Activation.Set(on) }

// Active reports whether kind k is on.
func (r *Registry) Active(k Kind) bool { return r.config(k).Activation.Get() }

// Params returns the parameter bag of kind k. It is never nil.
func (r *Registry) Params(k Kind) *params.Bag {
	c := r.config(k)
	if c.Params == nil {
		c.Params = params.New()
	}

	return c.Params
}

// SetParams replaces the parameter bag of kind k.
func (r *Registry) SetParams(k Kind, b *params.Bag) {
	if b == nil {
		b = params.New()
	}
	r.config(k).Params = b
}

func (r *Registry) SetArticulationPoints(on bool)  { r.Set(ArticulationPoints, on) }
func (r *Registry) SetGlobalMinCut(on bool)        { r.Set(GlobalMinCut, on) }
func (r *Registry) SetDiffusionCentrality(on bool) { r.Set(DiffusionCentrality, on) }
func (r *Registry) SetMostSimilarTimeline(on bool) { r.Set(MostSimilarTimeline, on) }
func (r *Registry) SetPredictedState(on bool)      { r.Set(PredictedState, on) }

func (r *Registry) ArticulationPointsActive() bool  { return r.Active(ArticulationPoints) }
func (r *Registry) GlobalMinCutActive() bool        { return r.Active(GlobalMinCut) }
func (r *Registry) DiffusionCentralityActive() bool { return r.Active(DiffusionCentrality) }
func (r *Registry) MostSimilarTimelineActive() bool { return r.Active(MostSimilarTimeline) }
func (r *Registry) PredictedStateActive() bool      { return r.Active(PredictedState) }

func (r *Registry) ArticulationPointsParams() *params.Bag  { return r.Params(ArticulationPoints) }
func (r *Registry) GlobalMinCutParams() *params.Bag        { return r.Params(GlobalMinCut) }
func (r *Registry) DiffusionCentralityParams() *params.Bag { return r.Params(DiffusionCentrality) }
func (r *Registry) MostSimilarTimelineParams() *params.Bag { return r.Params(MostSimilarTimeline) }
func (r *Registry) PredictedStateParams() *params.Bag      { return r.Params(PredictedState) }

// Enabled lists the active kinds in dispatch order.
func (r *Registry) Enabled() []Kind {
	var out []Kind
	for _, k := range Kinds() {
		if r.Active(k) {
			out = append(out, k)
		}
	}

	return out
}

// Clone copies the flags and gives each kind its own bag with the same entries.
func (r *Registry) Clone() *Registry {
	c := New()
	for _, k := range Kinds() {
		dst := c.config(k)
		src := r.config(k)
		dst.Activation = src.Activation
		dst.Params = src.Params.Clone()
	}

	return c
}
