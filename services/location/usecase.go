package location

import (
	"context"

	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/internal/utils"
)

// LocationUseCase defines the driver availability and position operations
type LocationUseCase interface {
	// ReportLocation ingests a driver position sample. Samples from
	// offline drivers are dropped.
	ReportLocation(ctx context.Context, driverID string, loc models.Location) error

	// SetAvailability transitions a driver's availability status. Going
	// offline evicts the driver from the spatial index.
	SetAvailability(ctx context.Context, driverID string, status models.AvailabilityStatus) error

	// GetAvailability returns the driver's current status. Unknown
	// drivers are offline.
	GetAvailability(ctx context.Context, driverID string) (models.AvailabilityStatus, error)

	// NearestAvailable returns up to limit idle drivers within radiusKm
	// of the point, nearest first. Drivers with stale positions are
	// excluded.
	NearestAvailable(ctx context.Context, center utils.GeoPoint, radiusKm float64, limit int) ([]models.NearbyDriver, error)

	// GetCoordinate returns the last known position of a driver.
	GetCoordinate(ctx context.Context, driverID string) (utils.GeoPoint, error)
}
