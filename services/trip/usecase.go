package trip

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rizaldy/angkut/internal/pkg/models"
)

// CreateTripRequest is a rider's trip submission
type CreateTripRequest struct {
	RiderID    uuid.UUID          `json:"rider_id"`
	ServiceID  uuid.UUID          `json:"service_id"`
	Points     models.RoutePoints `json:"points"`
	ExpectedAt *time.Time         `json:"expected_at,omitempty"`
}

// TripUseCase owns the trip lifecycle state machine
type TripUseCase interface {
	// RequestTrip creates a trip in requested status
	RequestTrip(ctx context.Context, req CreateTripRequest) (*models.Trip, error)

	// GetTrip loads a trip with relations
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)

	// AdvanceTrip moves a trip to the requested status, enforcing the
	// transition preconditions. Statuses outside the driver-advanceable
	// set fail with ErrInvalidTransition.
	AdvanceTrip(ctx context.Context, tripID uuid.UUID, requested models.TripStatus, driverID uuid.UUID, paidAmount int64) (*models.Trip, error)

	// CancelByDriver cancels a trip on the driver's behalf, permitted
	// from driver_accepted and arrived
	CancelByDriver(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error)

	// CancelByRider cancels a trip on the rider's behalf, permitted from
	// any pre-started status
	CancelByRider(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)

	// ListActivities returns the trip's audit trail, oldest first
	ListActivities(ctx context.Context, tripID uuid.UUID) ([]models.ActivityRecord, error)
}

// DriverRegistry is the slice of the availability registry the lifecycle
// needs to release or claim drivers on transitions
type DriverRegistry interface {
	SetAvailability(ctx context.Context, driverID string, status models.AvailabilityStatus) error
}

// CancelPolicy decides what happens to a canceled trip beyond the status
// change. The default policy closes the trip and returns the driver to idle.
type CancelPolicy interface {
	OnCancel(ctx context.Context, trip *models.Trip) error
}

// SettleOutcome reports the financial result of finishing a trip
type SettleOutcome struct {
	PaidAmount  int64
	Outstanding int64
}

// SettlePolicy settles a finished trip given the payment made at finish
type SettlePolicy interface {
	OnFinish(ctx context.Context, trip *models.Trip, paidAmount int64) (SettleOutcome, error)
}
