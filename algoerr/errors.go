// Package algoerr holds the error taxonomy shared by every meshlens algorithm.
//
// Three classes exist, each a sentinel matched with errors.Is:
//
//	ErrMissingParameter    - a required parameter is absent, mistyped or out of range.
//	ErrInvalidGraph        - the snapshot cannot be analyzed (nil, empty, too small).
//	ErrInsufficientHistory - too few nodes carry samples for a temporal algorithm.
//
// More specific sentinels wrap a class so callers can test either level:
// errors.Is(ErrEmptyGraph, ErrInvalidGraph) is true.
package algoerr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/meshlens/core"
)

var (
	// ErrMissingParameter indicates a required parameter is absent or unusable.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidGraph indicates the graph cannot be analyzed.
	ErrInvalidGraph = errors.New("invalid graph")

	// ErrInsufficientHistory indicates too few nodes have history samples.
	ErrInsufficientHistory = errors.New("insufficient history")

	// ErrNilGraph is returned for a nil *core.Graph.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidGraph)

	// ErrEmptyGraph is returned for a graph with zero vertices.
	ErrEmptyGraph = fmt.Errorf("%w: graph has no vertices", ErrInvalidGraph)
)

// ParamError describes a parameter problem for one algorithm.
// It matches ErrMissingParameter under errors.Is.
type ParamError struct {
	Algorithm string
	Key       string
	Reason    string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: parameter %q: %s", e.Algorithm, e.Key, e.Reason)
}

// Unwrap exposes the class sentinel.
func (e *ParamError) Unwrap() error { return ErrMissingParameter }

// Missing builds the ParamError for an absent or wrongly typed required key.
func Missing(algorithm, key, want string) error {
	return &ParamError{Algorithm: algorithm, Key: key, Reason: "required " + want + " is absent or has the wrong type"}
}

// Invalid builds the ParamError for a present key with an unusable value.
func Invalid(algorithm, key, reason string) error {
	return &ParamError{Algorithm: algorithm, Key: key, Reason: reason}
}

// CheckGraph admits a snapshot for analysis: non-nil and at least one vertex.
func CheckGraph(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return ErrEmptyGraph
	}

	return nil
}
