package geo

import (
	"context"
	"time"

	"github.com/rizaldy/angkut/internal/utils"
)

// Entry is a driver position returned from a nearest query, ordered by
// ascending distance from the query point.
type Entry struct {
	ID         string
	Location   utils.GeoPoint
	Timestamp  time.Time
	DistanceKm float64
}

// Index stores driver positions and answers nearest-neighbor queries.
type Index interface {
	// Upsert records the latest position for the given driver. Samples
	// older than the one already stored are ignored.
	Upsert(ctx context.Context, id string, loc utils.GeoPoint, ts time.Time) error

	// Remove drops the driver from the index. Removing an absent driver
	// is a no-op.
	Remove(ctx context.Context, id string) error

	// Nearest returns up to limit drivers within radiusKm of the point,
	// nearest first.
	Nearest(ctx context.Context, center utils.GeoPoint, radiusKm float64, limit int) ([]Entry, error)

	// Get returns the stored position for a driver, or ok=false when the
	// driver is not indexed.
	Get(ctx context.Context, id string) (Entry, bool, error)
}
