package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rizaldy/angkut/internal/pkg/logger"
	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/internal/utils"
	"github.com/rizaldy/angkut/services/trip"
)

// TripUC implements the trip.TripUseCase interface. Every transition
// follows the same ordering: conditional status update, activity append,
// aggregate reload, rider notification, broadcast. Gateway failures after
// the conditional update are logged and never undo the transition.
type TripUC struct {
	repo         trip.TripRepo
	gw           trip.TripGW
	cancelPolicy trip.CancelPolicy
	settlePolicy trip.SettlePolicy
	now          func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(repo trip.TripRepo, gw trip.TripGW, cancelPolicy trip.CancelPolicy, settlePolicy trip.SettlePolicy) *TripUC {
	return &TripUC{
		repo:         repo,
		gw:           gw,
		cancelPolicy: cancelPolicy,
		settlePolicy: settlePolicy,
		now:          time.Now,
	}
}

// RequestTrip creates a trip in requested status. The agreed cost is the
// tier base fare plus the per-kilometer rate over the route's great-circle
// length.
func (uc *TripUC) RequestTrip(ctx context.Context, req trip.CreateTripRequest) (*models.Trip, error) {
	if len(req.Points) < 2 {
		return nil, errors.New("a trip needs at least a pickup and a destination")
	}
	for _, p := range req.Points {
		if !utils.ValidCoordinate(p.Latitude, p.Longitude) {
			return nil, errors.New("invalid route coordinate")
		}
	}

	tier, err := uc.repo.GetServiceTier(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service tier: %w", err)
	}

	t := &models.Trip{
		ID:          uuid.New(),
		Status:      models.TripStatusRequested,
		RiderID:     req.RiderID,
		ServiceID:   req.ServiceID,
		Points:      req.Points,
		Cost:        tier.BaseFare + int64(routeLengthKm(req.Points)*float64(tier.PerKm)),
		Currency:    "IDR",
		RequestedAt: uc.now(),
		ExpectedAt:  req.ExpectedAt,
	}

	if err := uc.repo.CreateTrip(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	created, err := uc.repo.GetTrip(ctx, t.ID, true)
	if err != nil {
		return nil, err
	}

	if err := uc.gw.PublishTripUpdated(ctx, created); err != nil {
		logger.Warn("Failed to broadcast trip creation",
			logger.String("trip_id", t.ID.String()),
			logger.Err(err))
	}

	logger.Info("Trip requested",
		logger.String("trip_id", t.ID.String()),
		logger.String("rider_id", req.RiderID.String()),
		logger.Int64("cost", t.Cost))
	return created, nil
}

// GetTrip loads a trip with relations
func (uc *TripUC) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	return uc.repo.GetTrip(ctx, tripID, true)
}

// ListActivities returns the trip's audit trail, oldest first
func (uc *TripUC) ListActivities(ctx context.Context, tripID uuid.UUID) ([]models.ActivityRecord, error) {
	return uc.repo.ListActivities(ctx, tripID)
}

// AdvanceTrip moves a trip to the requested status on the driver's behalf
func (uc *TripUC) AdvanceTrip(ctx context.Context, tripID uuid.UUID, requested models.TripStatus, driverID uuid.UUID, paidAmount int64) (*models.Trip, error) {
	switch requested {
	case models.TripStatusArrived:
		return uc.driverArrived(ctx, tripID)
	case models.TripStatusStarted:
		return uc.startTrip(ctx, tripID)
	case models.TripStatusFinished:
		return uc.finishTrip(ctx, tripID, paidAmount)
	case models.TripStatusCanceled:
		return uc.CancelByDriver(ctx, tripID, driverID)
	}
	return nil, trip.ErrInvalidTransition
}

// driverArrived marks the driver at the pickup point
func (uc *TripUC) driverArrived(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	allowed := []models.TripStatus{models.TripStatusDriverAccepted}
	upd := models.TripUpdate{Status: models.TripStatusArrived}

	return uc.transition(ctx, tripID, allowed, upd,
		models.ActivityArrivedToPickupPoint, models.NotifyDriverArrived, false)
}

// startTrip begins the ride. Accepting drivers may start without an
// explicit arrival report; driver_accepted and arrived are equivalent
// pre-trip states for this transition.
func (uc *TripUC) startTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	allowed := []models.TripStatus{models.TripStatusArrived, models.TripStatusDriverAccepted}
	startedAt := uc.now()
	upd := models.TripUpdate{Status: models.TripStatusStarted, StartedAt: &startedAt}

	return uc.transition(ctx, tripID, allowed, upd,
		models.ActivityStarted, models.NotifyTripStarted, false)
}

// finishTrip completes the ride and settles the paid amount. A rider who
// has not covered the agreed cost is notified to post-pay instead of
// receiving the finished notification.
func (uc *TripUC) finishTrip(ctx context.Context, tripID uuid.UUID, paidAmount int64) (*models.Trip, error) {
	current, err := uc.repo.GetTrip(ctx, tripID, false)
	if err != nil {
		return nil, err
	}

	outcome, err := uc.settlePolicy.OnFinish(ctx, current, paidAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to settle trip: %w", err)
	}

	finishedAt := uc.now()
	upd := models.TripUpdate{
		Status:     models.TripStatusFinished,
		PaidAmount: &outcome.PaidAmount,
		FinishedAt: &finishedAt,
	}

	kind := models.NotifyTripFinished
	if outcome.PaidAmount < current.Cost {
		kind = models.NotifyWaitingPostPay
	}

	allowed := []models.TripStatus{models.TripStatusStarted}
	return uc.transition(ctx, tripID, allowed, upd,
		models.ActivityArrivedToDestination, kind, false)
}

// CancelByDriver cancels a trip on the driver's behalf. Only the assigned
// driver may cancel.
func (uc *TripUC) CancelByDriver(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error) {
	current, err := uc.repo.GetTrip(ctx, tripID, false)
	if err != nil {
		return nil, err
	}
	if current.DriverID == nil || *current.DriverID != driverID {
		return nil, trip.ErrInvalidTransition
	}

	allowed := []models.TripStatus{models.TripStatusDriverAccepted, models.TripStatusArrived}
	return uc.cancel(ctx, tripID, allowed, models.ActivityCanceledByDriver)
}

// CancelByRider cancels a trip on the rider's behalf
func (uc *TripUC) CancelByRider(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	allowed := []models.TripStatus{
		models.TripStatusRequested,
		models.TripStatusFound,
		models.TripStatusNoCloseFound,
		models.TripStatusBooked,
		models.TripStatusDriverAccepted,
		models.TripStatusArrived,
	}
	return uc.cancel(ctx, tripID, allowed, models.ActivityCanceledByRider)
}

func (uc *TripUC) cancel(ctx context.Context, tripID uuid.UUID, allowed []models.TripStatus, activity models.ActivityType) (*models.Trip, error) {
	upd := models.TripUpdate{Status: models.TripStatusCanceled}
	canceled, err := uc.transition(ctx, tripID, allowed, upd, activity, models.NotifyTripCanceled, false)
	if err != nil {
		return nil, err
	}

	if err := uc.cancelPolicy.OnCancel(ctx, canceled); err != nil {
		// The cancellation itself is committed; a failed driver release
		// only leaves the driver marked busy until their next status change.
		logger.Error("Cancel policy failed",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}
	return canceled, nil
}

// transition applies the unified transition contract. The conditional
// update commits the status change and activity record together; a
// conflict means the trip was not in an allowed status and surfaces as
// ErrInvalidTransition.
func (uc *TripUC) transition(
	ctx context.Context,
	tripID uuid.UUID,
	allowed []models.TripStatus,
	upd models.TripUpdate,
	activity models.ActivityType,
	kind models.NotificationKind,
	announceRemoved bool,
) (*models.Trip, error) {
	err := uc.repo.UpdateStatusWhere(ctx, tripID, allowed, upd, activity)
	if errors.Is(err, trip.ErrStatusConflict) {
		return nil, trip.ErrInvalidTransition
	}
	if errors.Is(err, trip.ErrNotFound) {
		return nil, trip.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update trip status: %w", err)
	}

	// Reload the full aggregate so subscribers receive a consistent,
	// fully populated snapshot.
	updated, err := uc.repo.GetTrip(ctx, tripID, true)
	if err != nil {
		return nil, err
	}

	uc.notifyAndBroadcast(ctx, updated, kind, announceRemoved)

	logger.Info("Trip transitioned",
		logger.String("trip_id", tripID.String()),
		logger.String("status", string(updated.Status)),
		logger.String("activity", string(activity)))
	return updated, nil
}

func (uc *TripUC) notifyAndBroadcast(ctx context.Context, t *models.Trip, kind models.NotificationKind, announceRemoved bool) {
	notification := models.RiderNotification{
		RiderID:   t.RiderID.String(),
		TripID:    t.ID.String(),
		Kind:      kind,
		CreatedAt: uc.now(),
	}
	if err := uc.gw.NotifyRider(ctx, notification); err != nil {
		logger.Warn("Failed to notify rider",
			logger.String("trip_id", t.ID.String()),
			logger.String("kind", string(kind)),
			logger.Err(err))
	}

	if err := uc.gw.PublishTripUpdated(ctx, t); err != nil {
		logger.Warn("Failed to broadcast trip update",
			logger.String("trip_id", t.ID.String()),
			logger.Err(err))
	}

	if announceRemoved {
		if err := uc.gw.PublishTripRemoved(ctx, t); err != nil {
			logger.Warn("Failed to broadcast trip removal",
				logger.String("trip_id", t.ID.String()),
				logger.Err(err))
		}
	}
}

func routeLengthKm(points models.RoutePoints) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += utils.HaversineKm(
			utils.GeoPoint{Latitude: points[i-1].Latitude, Longitude: points[i-1].Longitude},
			utils.GeoPoint{Latitude: points[i].Latitude, Longitude: points[i].Longitude},
		)
	}
	return total
}
