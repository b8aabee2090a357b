package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/dfs"
)

// ExampleComponents splits a mesh into its radio islands.
func ExampleComponents() {
	g := core.NewGraph()
	_, _ = g.AddEdge("!a1", "!b2", 1)
	_, _ = g.AddEdge("!c3", "!d4", 1)
	_ = g.AddVertex("!e5")

	comps, _ := dfs.Components(g)
	fmt.Println(comps)

	// Output:
	// [[!a1 !b2] [!c3 !d4] [!e5]]
}
