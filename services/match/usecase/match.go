package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rizaldy/angkut/internal/pkg/eta"
	"github.com/rizaldy/angkut/internal/pkg/logger"
	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/internal/utils"
	"github.com/rizaldy/angkut/services/location"
	"github.com/rizaldy/angkut/services/trip"
)

// MatchUC implements the match.MatchUseCase interface. The conditional
// status update in the trip repository is the authoritative guard against
// two drivers claiming the same trip; everything before it is advisory.
type MatchUC struct {
	tripRepo   trip.TripRepo
	tripGW     trip.TripGW
	locationUC location.LocationUseCase
	estimator  eta.Estimator
	now        func() time.Time
}

// NewMatchUC creates a new match use case
func NewMatchUC(tripRepo trip.TripRepo, tripGW trip.TripGW, locationUC location.LocationUseCase, estimator eta.Estimator) *MatchUC {
	return &MatchUC{
		tripRepo:   tripRepo,
		tripGW:     tripGW,
		locationUC: locationUC,
		estimator:  estimator,
		now:        time.Now,
	}
}

// AcceptTrip claims the trip for the driver
func (uc *MatchUC) AcceptTrip(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error) {
	// Optimistic pre-check. Cheap rejection for trips that are clearly
	// gone; the conditional update below is still the only real guard.
	current, err := uc.tripRepo.GetTrip(ctx, tripID, false)
	if err != nil {
		return nil, err
	}
	if !acceptable(current.Status) {
		return nil, trip.ErrAlreadyTaken
	}

	etaPickup := uc.estimatePickup(ctx, current, driverID)

	upd := models.TripUpdate{
		Status:    models.TripStatusDriverAccepted,
		DriverID:  &driverID,
		ETAPickup: &etaPickup,
	}

	// One retry absorbs transient storage contention; a conflict that
	// survives it means another driver won. The claim commits the status
	// change and the driver_accepted activity together.
	err = uc.tripRepo.UpdateStatusWhere(ctx, tripID, models.PreAcceptStatuses(), upd, models.ActivityDriverAccepted)
	if errors.Is(err, trip.ErrStatusConflict) {
		err = uc.tripRepo.UpdateStatusWhere(ctx, tripID, models.PreAcceptStatuses(), upd, models.ActivityDriverAccepted)
	}
	if errors.Is(err, trip.ErrStatusConflict) {
		return nil, trip.ErrAlreadyTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim trip: %w", err)
	}

	if err := uc.locationUC.SetAvailability(ctx, driverID.String(), models.DriverInService); err != nil {
		// The claim is committed. A driver stuck as idle only risks a
		// second match offer, which the conditional update rejects.
		logger.Error("Failed to mark driver in service",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}

	accepted, err := uc.tripRepo.GetTrip(ctx, tripID, true)
	if err != nil {
		return nil, err
	}

	uc.announce(ctx, accepted)

	logger.Info("Trip accepted",
		logger.String("trip_id", tripID.String()),
		logger.String("driver_id", driverID.String()))
	return accepted, nil
}

// estimatePickup computes the driver's ETA to the pickup point. An
// unavailable coordinate or estimator degrades to a zero ETA instead of
// failing the acceptance.
func (uc *MatchUC) estimatePickup(ctx context.Context, t *models.Trip, driverID uuid.UUID) time.Time {
	pickup, ok := t.Pickup()
	if !ok {
		return uc.now()
	}

	coord, err := uc.locationUC.GetCoordinate(ctx, driverID.String())
	if err != nil {
		logger.Warn("Driver coordinate unavailable, defaulting ETA to zero",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return uc.now()
	}

	metrics, err := uc.estimator.Estimate(ctx, coord,
		utils.GeoPoint{Latitude: pickup.Latitude, Longitude: pickup.Longitude})
	if err != nil {
		logger.Warn("Distance estimator unavailable, defaulting ETA to zero",
			logger.String("trip_id", t.ID.String()),
			logger.Err(err))
		return uc.now()
	}
	return uc.now().Add(metrics.Duration)
}

// announce notifies the rider and broadcasts both the trip update and its
// removal from other drivers' feeds
func (uc *MatchUC) announce(ctx context.Context, t *models.Trip) {
	notification := models.RiderNotification{
		RiderID:   t.RiderID.String(),
		TripID:    t.ID.String(),
		Kind:      models.NotifyTripAccepted,
		CreatedAt: uc.now(),
	}
	if err := uc.tripGW.NotifyRider(ctx, notification); err != nil {
		logger.Warn("Failed to notify rider of acceptance",
			logger.String("trip_id", t.ID.String()),
			logger.Err(err))
	}
	if err := uc.tripGW.PublishTripUpdated(ctx, t); err != nil {
		logger.Warn("Failed to broadcast trip update",
			logger.String("trip_id", t.ID.String()),
			logger.Err(err))
	}
	if err := uc.tripGW.PublishTripRemoved(ctx, t); err != nil {
		logger.Warn("Failed to broadcast trip removal",
			logger.String("trip_id", t.ID.String()),
			logger.Err(err))
	}
}

func acceptable(status models.TripStatus) bool {
	for _, s := range models.PreAcceptStatuses() {
		if status == s {
			return true
		}
	}
	return false
}
