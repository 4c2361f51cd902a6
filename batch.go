package bnggrid

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the batch size below which the sequential
// path typically beats the parallel one. Goroutine fan-out costs a few
// microseconds per call, which dominates small batches.
const DefaultParallelThreshold = 65536

// ConvertBatchParallel is ConvertBatchWorkers with one worker per
// available CPU.
func ConvertBatchParallel(lons, lats []float64) ([]GridPoint, error) {
	return ConvertBatchWorkers(lons, lats, runtime.GOMAXPROCS(0))
}

// ConvertBatchWorkers converts a batch using at most workers goroutines.
// The input is split into contiguous chunks and each worker writes only its
// own disjoint output range, so the result is element-for-element identical
// to ConvertBatch regardless of scheduling. The call blocks until every
// chunk has completed; a failing worker aborts the whole batch.
func ConvertBatchWorkers(lons, lats []float64, workers int) ([]GridPoint, error) {
	if len(lons) != len(lats) {
		return nil, ErrLengthMismatch
	}

	n := len(lons)
	out := make([]GridPoint, n)
	if n == 0 {
		return out, nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = Convert(lons[i], lats[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
