// Package snapshot reads and writes mesh graph snapshots as YAML or JSON.
//
//	loops: false
//	multi_edges: true
//	nodes:
//	  - id: "!a1"
//	    metadata: {role: router}
//	    history: [{at: 2024-05-01T10:00:00Z, value: -91.5}]
//	edges:
//	  - {from: "!a1", to: "!b2", weight: 3.5, history: []}
//
// Edges receive IDs e1, e2, ... in file order when loaded.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/meshlens/core"
)

// ErrInvalidSnapshot wraps every validation failure.
var ErrInvalidSnapshot = errors.New("snapshot: invalid snapshot")

// File is the on-disk form of a core.Graph.
type File struct {
	Loops      bool   `yaml:"loops" json:"loops"`
	MultiEdges bool   `yaml:"multi_edges" json:"multi_edges"`
	Nodes      []Node `yaml:"nodes" json:"nodes" validate:"dive"`
	Edges      []Edge `yaml:"edges" json:"edges" validate:"dive"`
}

// Node is one vertex with its metadata and samples.
type Node struct {
	ID       string         `yaml:"id" json:"id" validate:"required"`
	Metadata map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	History  []Sample       `yaml:"history,omitempty" json:"history,omitempty" validate:"dive"`
}

// Edge is one undirected link. Endpoints missing from Nodes are created.
type Edge struct {
	From    string   `yaml:"from" json:"from" validate:"required"`
	To      string   `yaml:"to" json:"to" validate:"required"`
	Weight  float64  `yaml:"weight" json:"weight" validate:"gte=0"`
	History []Sample `yaml:"history,omitempty" json:"history,omitempty" validate:"dive"`
}

// Sample is one timestamped measurement.
type Sample struct {
	At    time.Time `yaml:"at" json:"at" validate:"required"`
	Value float64   `yaml:"value" json:"value"`
}

var validate = validator.New()

// Format selects the encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf maps a file extension to a Format. Unknown extensions are YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}

	return YAML
}

// Decode parses and validates a snapshot.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse snapshot json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse snapshot yaml: %w", err)
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks required IDs, timestamps and non-negative weights.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	return nil
}

// Graph builds a core.Graph from f.
func (f *File) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if f.Loops {
		opts = append(opts, core.WithLoops())
	}
	if f.MultiEdges {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)

	for i, n := range f.Nodes {
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("snapshot: node %d %q: %w", i, n.ID, err)
		}
		if n.Metadata != nil {
			_ = g.SetMetadata(n.ID, n.Metadata)
		}
		if len(n.History) > 0 {
			_ = g.SetVertexHistory(n.ID, toCore(n.History))
		}
	}
	for i, e := range f.Edges {
		eid, err := g.AddEdge(e.From, e.To, e.Weight)
		if err != nil {
			return nil, fmt.Errorf("snapshot: edge %d %s-%s: %w", i, e.From, e.To, err)
		}
		if len(e.History) > 0 {
			_ = g.SetEdgeHistory(eid, toCore(e.History))
		}
	}

	return g, nil
}

// FromGraph captures g. Edges are written in creation order.
func FromGraph(g *core.Graph) *File {
	f := &File{Loops: g.Looped(), MultiEdges: g.Multigraph()}
	for _, id := range g.Vertices() {
		n := Node{ID: id}
		if v, err := g.Vertex(id); err == nil && len(v.Metadata) > 0 {
			n.Metadata = v.Metadata
		}
		h, _ := g.VertexHistory(id)
		n.History = fromCore(h)
		f.Nodes = append(f.Nodes, n)
	}
	for _, e := range g.Edges() {
		h, _ := g.EdgeHistory(e.ID)
		f.Edges = append(f.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight, History: fromCore(h)})
	}

	return f
}

// Encode renders f.
func Encode(f *File, format Format) ([]byte, error) {
	if format == JSON {
		return json.MarshalIndent(f, "", "  ")
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode snapshot yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Load reads path and builds the graph. The format follows the extension.
func Load(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	f, err := Decode(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f.Graph()
}

// Save writes g to path. The format follows the extension.
func Save(path string, g *core.Graph) error {
	data, err := Encode(FromGraph(g), FormatOf(path))
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func toCore(in []Sample) []core.Sample {
	out := make([]core.Sample, len(in))
	for i, s := range in {
		out[i] = core.Sample{At: s.At, Value: s.Value}
	}

	return out
}

func fromCore(in []core.Sample) []Sample {
	if len(in) == 0 {
		return nil
	}
	out := make([]Sample, len(in))
	for i, s := range in {
		out[i] = Sample{At: s.At, Value: s.Value}
	}

	return out
}
