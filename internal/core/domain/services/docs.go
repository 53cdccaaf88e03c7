// Package services contains stateless domain services for the assignment
// core: the carrier match engine that ranks carriers against a job's
// requirements, the compliance evaluator that classifies a carrier's
// document set, and the assignment coordinator that validates a selection
// and drives the allocation transition.
//
// All services are pure over their inputs: no I/O, no clocks (timestamps are
// parameters), no randomness. Identical inputs always produce identical
// output, which makes scoring reproducible and trivially parallelizable
// across jobs or carrier batches.
package services
