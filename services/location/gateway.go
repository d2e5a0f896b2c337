package location

import (
	"context"

	"github.com/rizaldy/angkut/internal/pkg/models"
)

// LocationGW publishes location events to the message broker
type LocationGW interface {
	// PublishLocationUpdate emits a driver.location.updated event
	PublishLocationUpdate(ctx context.Context, update models.DriverLocationUpdate) error
}
