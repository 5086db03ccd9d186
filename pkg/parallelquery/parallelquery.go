// Package parallelquery runs independent per-item work concurrently, bounded
// by a worker limit, and hands back results in the same order as the input.
// It backs World.ParallelQuery: decomposition of "collect a snapshot from
// every admitting pool" across goroutines.
package parallelquery

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Collect applies fn to every item concurrently and returns the results in
// input order. workers <= 0 means unbounded concurrency. fn must not itself
// block on another pool's lock — see the World's lock hierarchy.
func Collect[T, R any](items []T, workers int, fn func(T) R) []R {
	out := make([]R, len(items))
	g, _ := errgroup.WithContext(context.Background())
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			out[i] = fn(item)
			return nil
		})
	}

	_ = g.Wait() // fn never errors; Wait only drains the group
	return out
}
