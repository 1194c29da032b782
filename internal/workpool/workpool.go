// Package workpool provides a reusable worker pool for parallel,
// order-preserving batch transforms.
//
// Every page transform is independent of every other page, so the batch is
// embarrassingly parallel; the only ordering requirement is that results
// rejoin in input order before serialization, which the pool guarantees by
// writing each result into its input's slot.
package workpool

import (
	"runtime"
	"sync"
)

// DefaultWorkers returns the default worker count for a batch.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Map applies fn to every element of in on up to workers goroutines and
// returns the results in input order. If any application fails, Map
// returns the error from the lowest input index so repeated runs report
// the same failure.
func Map[In any, Out any](workers int, in []In, fn func(In) (Out, error)) ([]Out, error) {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	if workers > len(in) {
		workers = len(in)
	}

	out := make([]Out, len(in))
	if len(in) == 0 {
		return out, nil
	}

	var (
		mu       sync.Mutex
		firstErr error
		errIdx   int
	)
	record := func(idx int, err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil || idx < errIdx {
			firstErr = err
			errIdx = idx
		}
	}

	jobs := make(chan int, len(in))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				result, err := fn(in[idx])
				if err != nil {
					record(idx, err)
					continue
				}
				out[idx] = result
			}
		}()
	}

	for idx := range in {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
