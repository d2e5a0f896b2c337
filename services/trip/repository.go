package trip

import (
	"context"

	"github.com/google/uuid"

	"github.com/rizaldy/angkut/internal/pkg/models"
)

// TripRepo persists trips and their activity records
type TripRepo interface {
	// CreateTrip inserts a new trip
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip loads a trip, optionally with its rider, driver and service
	// relations populated. Returns trip.ErrNotFound when absent.
	GetTrip(ctx context.Context, id uuid.UUID, withRelations bool) (*models.Trip, error)

	// UpdateStatusWhere applies the update and appends the transition's
	// activity record as one atomic write, guarded by the allowed status
	// set. When the trip's current status is not in the set, nothing
	// changes and trip.ErrStatusConflict is returned; an unknown id
	// returns trip.ErrNotFound. This is the only way trip status is
	// mutated.
	UpdateStatusWhere(ctx context.Context, id uuid.UUID, allowed []models.TripStatus, upd models.TripUpdate, activity models.ActivityType) error

	// ListActivities returns a trip's activity records, oldest first
	ListActivities(ctx context.Context, tripID uuid.UUID) ([]models.ActivityRecord, error)

	// GetServiceTier loads the pricing tier a trip was requested under
	GetServiceTier(ctx context.Context, id uuid.UUID) (*models.ServiceTier, error)
}
