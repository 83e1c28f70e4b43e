// Package parallel provides the fork/join primitives used by seam carving.
//
// Three shapes of parallelism are offered:
//
//   - [ForkJoin] splits an index range in two, runs the upper part on a new
//     goroutine and the lower part on the caller, and returns only after both
//     finish. Calling it once per DP layer gives a hard barrier between layers.
//   - [WorkerPool.ExecuteRange] scatters an index range across a fixed set of
//     long-lived workers and gathers before returning.
//   - [Bands] runs banded loops on an errgroup, used where work items are
//     fully independent (seam removal).
//
// None of the helpers share mutable state between chunks; callers must make
// sure chunks write disjoint memory.
package parallel
