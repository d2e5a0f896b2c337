package match

import (
	"context"

	"github.com/google/uuid"

	"github.com/rizaldy/angkut/internal/pkg/models"
)

// MatchUseCase coordinates driver acceptance attempts
type MatchUseCase interface {
	// AcceptTrip claims the trip for the driver. Exactly one driver wins
	// per trip; losers receive trip.ErrAlreadyTaken.
	AcceptTrip(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error)
}
