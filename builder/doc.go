// Package builder produces deterministic mesh fixtures for tests, benchmarks
// and the "meshlens generate" command.
//
// A fixture is assembled by BuildGraph from topology constructors (Path,
// Cycle, Star, Complete, RandomMesh) followed by Histories, which attaches
// synthetic time series to every node and link:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithMultiEdges()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithNodeNumIDs(0xa1b2c300)},
//		builder.RandomMesh(20, 0.1),
//		builder.Histories(30),
//	)
//
// Options:
//   - ID schemes (IDFn): DefaultIDFn, SymbolIDFn, SymbolNumberIDFn, NodeNumIDFn.
//   - Weights (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//   - Randomness: WithSeed / WithRand. Stochastic constructors fail with
//     ErrNeedRandSource without one.
//   - Histories: WithTimeline, WithSignal, WithNoise.
//
// Same options, seed and constructor order give identical graphs, edge IDs
// and samples.
package builder
