package algoconf_test

import (
	"fmt"

	"github.com/katalvlaran/meshlens/algoconf"
)

func ExampleRegistry_SetAlgorithms() {
	r := algoconf.New()
	r.SetAlgorithms(0b00111)
	for _, k := range algoconf.Kinds() {
		fmt.Println(k, r.Active(k))
	}

	// Output:
	// articulation_points true
	// global_min_cut true
	// diffusion_centrality true
	// most_similar_timeline false
	// predicted_state false
}
