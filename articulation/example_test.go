package articulation_test

import (
	"fmt"

	"github.com/katalvlaran/meshlens/articulation"
	"github.com/katalvlaran/meshlens/core"
)

// ExampleRun shows a relay node that joins two halves of a mesh.
func ExampleRun() {
	g := core.NewGraph()
	_, _ = g.AddEdge("!base", "!relay", 1)
	_, _ = g.AddEdge("!relay", "!hill", 1)
	_, _ = g.AddEdge("!hill", "!cabin", 1)
	_, _ = g.AddEdge("!cabin", "!relay", 1)

	res, _ := articulation.Run(g, articulation.DefaultOptions())
	fmt.Println("points:", res.Points)
	for _, b := range res.Bridges {
		fmt.Println("bridge:", b.From, b.To)
	}

	// Output:
	// points: [!relay]
	// bridge: !base !relay
}
