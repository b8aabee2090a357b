package algoconf

import "fmt"

// Kind identifies one algorithm of the closed set. The numeric value is the
// bit position in an activation mask and the position in dispatch order.
type Kind uint8

const (
	ArticulationPoints Kind = iota
	GlobalMinCut
	DiffusionCentrality
	MostSimilarTimeline
	PredictedState

	// NumKinds is the size of the closed set.
	NumKinds
)

// MaxMask has every known kind enabled (0b11111).
const MaxMask uint8 = 1<<NumKinds - 1

var kindNames = [NumKinds]string{
	ArticulationPoints:  "articulation_points",
	GlobalMinCut:        "global_min_cut",
	DiffusionCentrality: "diffusion_centrality",
	MostSimilarTimeline: "most_similar_timeline",
	PredictedState:      "predicted_state",
}

// Kinds lists every kind in dispatch order.
func Kinds() []Kind {
	return []Kind{ArticulationPoints, GlobalMinCut, DiffusionCentrality, MostSimilarTimeline, PredictedState}
}

// Valid reports whether k belongs to the closed set.
func (k Kind) Valid() bool { return k < NumKinds }

// Bit returns the activation-mask bit of k.
func (k Kind) Bit() uint8 { return 1 << k }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("algoconf: unknown algorithm %q", s)
}

// MarshalText encodes k by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("algoconf: invalid kind %d", uint8(k))
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v

	return nil
}
