package testutil

import (
	"context"
	"sync"
	"sync/atomic"
)

// RunConcurrent executes fn in parallel goroutines and returns the number of
// nil-error runs. This helper replaces the common pattern of WaitGroup +
// atomic counters in concurrency tests.
func RunConcurrent(goroutines int, fn func(idx int) error) int32 {
	successes, _ := RunConcurrentCollect(goroutines, fn)
	return successes
}

// RunConcurrentCtx executes fn in parallel goroutines with context support.
// Useful for tests that pin a request-scoped timestamp on the context.
func RunConcurrentCtx(ctx context.Context, goroutines int, fn func(ctx context.Context, idx int) error) int32 {
	return RunConcurrent(goroutines, func(idx int) error {
		return fn(ctx, idx)
	})
}

// RunConcurrentCollect executes fn in parallel and collects all errors.
// Use this when individual failures need inspection.
func RunConcurrentCollect(goroutines int, fn func(idx int) error) (successes int32, errs []error) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var successCount atomic.Int32
	collectedErrs := make([]error, 0)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := fn(idx); err != nil {
				mu.Lock()
				collectedErrs = append(collectedErrs, err)
				mu.Unlock()
			} else {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()
	return successCount.Load(), collectedErrs
}
