package predict

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/meshlens/core"
)

// ErrNoSamples is returned by a Predictor given an empty series.
var ErrNoSamples = errors.New("predict: series has no samples")

// Predictor extrapolates a time-ordered series to the instant at.
// Implementations must be safe for concurrent use.
type Predictor interface {
	Name() string
	Predict(samples []core.Sample, at time.Time) (float64, error)
}

// Linear fits value = a + b·t by ordinary least squares, t in seconds since
// the first sample, and evaluates the line at at. One sample, or samples
// sharing a single timestamp, give their mean.
type Linear struct{}

func (Linear) Name() string { return MethodLinear }

func (Linear) Predict(samples []core.Sample, at time.Time) (float64, error) {
	n := len(samples)
	if n == 0 {
		return 0, ErrNoSamples
	}
	origin := samples[0].At
	var sumT, sumV float64
	for _, s := range samples {
		sumT += s.At.Sub(origin).Seconds()
		sumV += s.Value
	}
	meanT, meanV := sumT/float64(n), sumV/float64(n)

	var sxx, sxy float64
	for _, s := range samples {
		dt := s.At.Sub(origin).Seconds() - meanT
		sxx += dt * dt
		sxy += dt * (s.Value - meanV)
	}
	if sxx == 0 {
		return meanV, nil
	}
	slope := sxy / sxx

	return meanV + slope*(at.Sub(origin).Seconds()-meanT), nil
}

// Last returns the most recent value.
type Last struct{}

func (Last) Name() string { return MethodLast }

func (Last) Predict(samples []core.Sample, _ time.Time) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}

	return samples[len(samples)-1].Value, nil
}

// EWMA returns the exponentially weighted moving average, seeded with the first
// value: s = Alpha·v + (1-Alpha)·s. The level is carried forward unchanged.
type EWMA struct {
	Alpha float64
}

func (EWMA) Name() string { return MethodEWMA }

func (e EWMA) Predict(samples []core.Sample, _ time.Time) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	if e.Alpha <= 0 || e.Alpha > 1 {
		return 0, fmt.Errorf("predict: ewma alpha %g outside (0, 1]", e.Alpha)
	}
	level := samples[0].Value
	for _, s := range samples[1:] {
		level = e.Alpha*s.Value + (1-e.Alpha)*level
	}

	return level, nil
}

// PredictorFunc adapts a function to Predictor under the name "custom".
type PredictorFunc func(samples []core.Sample, at time.Time) (float64, error)

func (PredictorFunc) Name() string { return "custom" }

func (f PredictorFunc) Predict(samples []core.Sample, at time.Time) (float64, error) {
	return f(samples, at)
}

// meanInterval is the average gap between consecutive samples, or 0.
func meanInterval(samples []core.Sample) time.Duration {
	if len(samples) < 2 {
		return 0
	}

	return core.Span(samples) / time.Duration(len(samples)-1)
}
