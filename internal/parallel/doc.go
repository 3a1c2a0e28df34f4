// Package parallel implements fork-join reductions over int64 slices.
//
// A Runner splits [0, n) into contiguous spans, one per granted worker, the
// last span absorbing the remainder. Each span runs on its own goroutine
// (golang.org/x/sync/errgroup), the caller blocks until all spans finish, and
// partial results are folded with an associative, commutative combiner.
//
// Worker slots come from a shared resource.Controller. A reduction takes
// what is free without waiting; with one slot or none it runs inline on the
// calling goroutine. Reductions cannot be cancelled and always run to
// completion.
package parallel
