// Package batch runs a fixed set of indexed work items under a bounded
// worker pool.
//
// The pool keeps up to the configured limit of items in flight and
// starts the next queued item as soon as one completes. Completion
// order is unspecified; every result is tagged with its originating
// index and the final slice is reassembled in submission order.
package batch

import (
	"context"
	"fmt"
	"sync"
)

// Func executes the work item with the given 1-based index and returns
// its captured output.
type Func func(ctx context.Context, index int) (string, error)

type result struct {
	index  int
	output string
	err    error
}

// Run executes fn for every index in [1, n] with at most limit
// invocations in flight, and returns the outputs in index order.
//
// On the first failure no further items are dispatched,
// already-started items drain and their results are discarded, and the
// failure is returned tagged with its trial index. A cancelled context
// also stops dispatch and surfaces ctx.Err() once the pool drains.
func Run(ctx context.Context, n, limit int, fn Func) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("batch size must be at least 1, got %d", n)
	}
	if limit < 1 {
		return nil, fmt.Errorf("concurrency limit must be at least 1, got %d", limit)
	}
	if limit > n {
		limit = n
	}

	jobs := make(chan int)
	results := make(chan result)
	quit := make(chan struct{})

	var wg sync.WaitGroup
	for w := 0; w < limit; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				out, err := fn(ctx, idx)
				results <- result{index: idx, output: out, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 1; i <= n; i++ {
			// Checked up front so an abort never dispatches more than the
			// one item already blocked in the send below.
			select {
			case <-quit:
				return
			case <-ctx.Done():
				return
			default:
			}
			select {
			case jobs <- i:
			case <-quit:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	outputs := make([]string, n)
	completed := 0
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("trial %d: %w", res.index, res.err)
				close(quit)
			}
			continue
		}
		outputs[res.index-1] = res.output
		completed++
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if completed != n {
		// Unreachable with a correct pool; guards the aggregate invariant.
		return nil, fmt.Errorf("batch incomplete: %d of %d trials finished", completed, n)
	}
	return outputs, nil
}
