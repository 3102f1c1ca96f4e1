// Package parallel provides a small ordered fork-join helper for the
// per-index passes in the analytics engine.
//
// Every use site follows the same contract: the function body for index i
// reads only shared immutable input and writes only to output slot i, so the
// result is identical to a sequential loop regardless of worker count.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinSize is the input length below which ForEach runs sequentially.
// Goroutine scheduling costs more than the work itself for short series.
const MinSize = 2048

// ForEach invokes fn(i) for every i in [0, n), fanning out across
// GOMAXPROCS workers for large n. fn must be index-independent: it may not
// read or write state belonging to any other index.
func ForEach(n int, fn func(i int)) {
	if n < MinSize {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, n)
		if start >= end {
			break
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	// fn has no error path; errgroup is used only as the join point.
	_ = g.Wait()
}
