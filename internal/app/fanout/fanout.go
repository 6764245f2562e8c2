// Package fanout runs independent lookups concurrently for application
// services. Work is spread over a fixed number of goroutines and results come
// back in input order, so callers can index them positionally.
//
// Concurrency is bounded by a semaphore channel and a canceled context stops
// work that has not started yet. Only the standard library is used.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// If ctx is canceled while a goroutine is waiting for a semaphore slot,
// that goroutine records ctx.Err() and does not call fn. Goroutines that
// have already acquired a slot run to completion (fn is responsible for
// checking ctx internally if it supports cancellation).
//
// Run blocks until all goroutines complete. If items is empty, it returns
// an empty non-nil slice immediately.
//
// A maxWorkers below 1 is treated as 1. If maxWorkers >= len(items), all
// items run concurrently with no semaphore contention.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			// Context-aware semaphore acquisition.
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// All runs each call with at most maxWorkers in flight and returns the
// results in call order.
func All[R any](ctx context.Context, maxWorkers int, calls ...func(context.Context) (R, error)) []Result[R] {
	return Run(ctx, maxWorkers, calls, func(ctx context.Context, call func(context.Context) (R, error)) (R, error) {
		return call(ctx)
	})
}

// FirstError returns the error of the earliest failed result in input order,
// or nil if every result succeeded.
func FirstError[R any](results []Result[R]) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
