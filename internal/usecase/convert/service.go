// Package convert applies batch sizing policy and instrumentation on top
// of the core conversion engine.
package convert

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/bnggrid"
	"github.com/kailas-cloud/bnggrid/internal/metrics"
)

// ErrBatchTooLarge signals that a request exceeds the configured batch cap.
// The library itself has no size limit; this is a service-level guard.
type ErrBatchTooLarge struct {
	Size, Max int
}

func (e *ErrBatchTooLarge) Error() string {
	return fmt.Sprintf("batch of %d exceeds maximum of %d", e.Size, e.Max)
}

// Service routes conversions to the sequential or parallel execution path
// based on batch size.
type Service struct {
	parallelThreshold int
	maxWorkers        int
	maxBatchSize      int
}

// New creates a conversion service with the library default threshold and
// no batch cap.
func New() *Service {
	return &Service{parallelThreshold: bnggrid.DefaultParallelThreshold}
}

// WithLimits configures the parallel threshold, worker cap, and maximum
// batch size. Zero values keep the existing setting.
func (s *Service) WithLimits(parallelThreshold, maxWorkers, maxBatchSize int) *Service {
	if parallelThreshold > 0 {
		s.parallelThreshold = parallelThreshold
	}
	if maxWorkers > 0 {
		s.maxWorkers = maxWorkers
	}
	if maxBatchSize > 0 {
		s.maxBatchSize = maxBatchSize
	}
	return s
}

// Single converts one coordinate.
func (s *Service) Single(lon, lat float64) bnggrid.GridPoint {
	metrics.PointsConverted.WithLabelValues(metrics.PathSingle).Inc()
	return bnggrid.Convert(lon, lat)
}

// Inverse converts one grid point back to lon/lat.
func (s *Service) Inverse(easting, northing float64) (lon, lat float64) {
	metrics.PointsConverted.WithLabelValues(metrics.PathInverse).Inc()
	return bnggrid.Inverse(easting, northing)
}

// Batch converts a batch, choosing the execution path by size. Output is
// identical on either path; only wall time differs.
func (s *Service) Batch(lons, lats []float64) ([]bnggrid.GridPoint, error) {
	n := len(lons)
	if s.maxBatchSize > 0 && n > s.maxBatchSize {
		return nil, &ErrBatchTooLarge{Size: n, Max: s.maxBatchSize}
	}

	metrics.BatchSize.Observe(float64(n))

	path := metrics.PathSequential
	start := time.Now()

	var (
		out []bnggrid.GridPoint
		err error
	)
	if n >= s.parallelThreshold {
		path = metrics.PathParallel
		if s.maxWorkers > 0 {
			out, err = bnggrid.ConvertBatchWorkers(lons, lats, s.maxWorkers)
		} else {
			out, err = bnggrid.ConvertBatchParallel(lons, lats)
		}
	} else {
		out, err = bnggrid.ConvertBatch(lons, lats)
	}
	if err != nil {
		return nil, err
	}

	metrics.ConvertDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	metrics.PointsConverted.WithLabelValues(path).Add(float64(n))
	return out, nil
}
