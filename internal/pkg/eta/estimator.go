package eta

import (
	"context"
	"time"

	"github.com/rizaldy/angkut/internal/utils"
)

// Metrics is the outcome of a distance estimation between two points.
type Metrics struct {
	DistanceKm float64
	Duration   time.Duration
}

// Estimator produces travel estimates between two coordinates.
type Estimator interface {
	Estimate(ctx context.Context, from, to utils.GeoPoint) (Metrics, error)
}

// HaversineEstimator approximates travel time from straight-line distance
// and an average city speed.
type HaversineEstimator struct {
	avgSpeedKmh float64
}

// NewHaversineEstimator creates an estimator with the given average speed.
func NewHaversineEstimator(avgSpeedKmh float64) *HaversineEstimator {
	if avgSpeedKmh <= 0 {
		avgSpeedKmh = 30.0
	}
	return &HaversineEstimator{avgSpeedKmh: avgSpeedKmh}
}

// Estimate returns the haversine distance and the time to cover it at the
// configured average speed.
func (h *HaversineEstimator) Estimate(_ context.Context, from, to utils.GeoPoint) (Metrics, error) {
	distKm := utils.HaversineKm(from, to)
	hours := distKm / h.avgSpeedKmh
	return Metrics{
		DistanceKm: distKm,
		Duration:   time.Duration(hours * float64(time.Hour)),
	}, nil
}

// FallbackEstimator tries a primary estimator and falls back to a secondary
// one when the primary fails.
type FallbackEstimator struct {
	primary  Estimator
	fallback Estimator
}

// NewFallbackEstimator chains two estimators.
func NewFallbackEstimator(primary, fallback Estimator) *FallbackEstimator {
	return &FallbackEstimator{primary: primary, fallback: fallback}
}

// Estimate delegates to the primary estimator, then the fallback.
func (f *FallbackEstimator) Estimate(ctx context.Context, from, to utils.GeoPoint) (Metrics, error) {
	m, err := f.primary.Estimate(ctx, from, to)
	if err == nil {
		return m, nil
	}
	return f.fallback.Estimate(ctx, from, to)
}
