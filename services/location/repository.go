package location

import (
	"context"

	"github.com/rizaldy/angkut/internal/pkg/models"
)

// LocationRepo persists driver availability statuses
type LocationRepo interface {
	// SetAvailability stores the driver's availability status
	SetAvailability(ctx context.Context, driverID string, status models.AvailabilityStatus) error

	// GetAvailability returns the stored status. Drivers with no stored
	// status are offline.
	GetAvailability(ctx context.Context, driverID string) (models.AvailabilityStatus, error)
}
