package trip

import (
	"context"

	"github.com/rizaldy/angkut/internal/pkg/models"
)

// TripGW broadcasts trip events and notifies riders. All methods are
// fire-and-forget from the lifecycle's point of view: a failure here never
// rolls back a committed transition.
type TripGW interface {
	// PublishTripUpdated broadcasts the full trip snapshot on trip.updated
	PublishTripUpdated(ctx context.Context, trip *models.Trip) error

	// PublishTripRemoved announces on trip.removed that the trip is no
	// longer open for acceptance
	PublishTripRemoved(ctx context.Context, trip *models.Trip) error

	// NotifyRider pushes a rider-facing notification
	NotifyRider(ctx context.Context, notification models.RiderNotification) error
}
