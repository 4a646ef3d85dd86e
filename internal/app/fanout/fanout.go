// Package fanout runs a function over a slice with a bounded number of
// goroutines and returns the outcomes in input order. The tracker uses it to
// assemble startup trees concurrently.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight
// (minimum 1) and returns the results in input order.
//
// Items still queued when ctx is canceled get ctx.Err() without calling fn.
// Calls already running are left to finish and should watch ctx themselves.
// Empty input yields an empty, non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	slots := make(chan struct{}, max(maxWorkers, 1))

	var wg sync.WaitGroup
	for i := range items {
		wg.Go(func() {
			select {
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			case slots <- struct{}{}:
			}
			defer func() { <-slots }()
			results[i].Value, results[i].Err = fn(ctx, items[i])
		})
	}
	wg.Wait()
	return results
}

// Values unwraps results in order, stopping at the first error. The values
// collected before it are returned alongside.
func Values[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			return values, r.Err
		}
		values = append(values, r.Value)
	}
	return values, nil
}
