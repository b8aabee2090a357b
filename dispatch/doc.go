// Package dispatch runs the enabled algorithms of an algoconf.Registry
// against a core.Graph snapshot and gathers their outcomes in a Report.
//
// Kinds run in their fixed order (articulation points, min cut, diffusion
// centrality, most similar timeline, predicted state). Every active kind
// gets exactly one Outcome, whether it succeeded, returned an error or
// panicked; inactive kinds get none. A failure never stops the rest.
//
// Each dispatch is traced with OpenTelemetry: a "dispatch.Run" span with one
// child per algorithm. Observers (see the metrics package) receive every
// outcome and the finished report.
//
// The algorithms themselves are synchronous and uninterruptible. RunContext
// lets a caller stop waiting on a deadline; RunBatch fans out over several
// snapshots with a concurrency limit.
package dispatch
