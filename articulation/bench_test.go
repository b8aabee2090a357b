package articulation_test

import (
	"testing"

	"github.com/katalvlaran/meshlens/articulation"
	"github.com/katalvlaran/meshlens/builder"
)

// BenchmarkRun_RandomMesh runs Tarjan on a sparse 2k-node mesh.
func BenchmarkRun_RandomMesh(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomMesh(2000, 0.001))
	if err != nil {
		b.Fatal(err)
	}
	opts := articulation.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := articulation.Run(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_LongPath exercises the explicit stack on a deep traversal.
func BenchmarkRun_LongPath(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(50000))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := articulation.Run(g, articulation.Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
