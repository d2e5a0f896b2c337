package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rizaldy/angkut/internal/pkg/eta"
	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/internal/utils"
	"github.com/rizaldy/angkut/services/location"
	"github.com/rizaldy/angkut/services/match/mocks"
	"github.com/rizaldy/angkut/services/trip"
	tripmocks "github.com/rizaldy/angkut/services/trip/mocks"
	triprepo "github.com/rizaldy/angkut/services/trip/repository"
)

func seedRequestedTrip(t *testing.T, repo *triprepo.MemoryTripRepo) *models.Trip {
	t.Helper()
	tr := &models.Trip{
		ID:        uuid.New(),
		Status:    models.TripStatusRequested,
		RiderID:   uuid.New(),
		ServiceID: uuid.New(),
		Points: models.RoutePoints{
			{Latitude: 40.0, Longitude: -73.0},
			{Latitude: 40.1, Longitude: -73.1},
		},
		Cost:        15000,
		Currency:    "IDR",
		RequestedAt: time.Now(),
	}
	assert.NoError(t, repo.CreateTrip(context.Background(), tr))
	return tr
}

func TestAcceptTripSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repo := triprepo.NewMemoryTripRepo()
	gw := tripmocks.NewMockTripGW(ctrl)
	locationUC := mocks.NewMockLocationUseCase(ctrl)
	estimator := mocks.NewMockEstimator(ctrl)

	tr := seedRequestedTrip(t, repo)
	driverID := uuid.New()
	driverAt := utils.GeoPoint{Latitude: 40.01, Longitude: -73.01}

	locationUC.EXPECT().GetCoordinate(gomock.Any(), driverID.String()).Return(driverAt, nil)
	estimator.EXPECT().Estimate(gomock.Any(), driverAt, utils.GeoPoint{Latitude: 40.0, Longitude: -73.0}).
		Return(eta.Metrics{DistanceKm: 1.4, Duration: 5 * time.Minute}, nil)
	locationUC.EXPECT().SetAvailability(gomock.Any(), driverID.String(), models.DriverInService).Return(nil)

	gw.EXPECT().NotifyRider(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.RiderNotification) error {
			assert.Equal(t, models.NotifyTripAccepted, n.Kind)
			return nil
		})
	gw.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTripRemoved(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewMatchUC(repo, gw, locationUC, estimator)

	before := time.Now()
	accepted, err := uc.AcceptTrip(ctx, tr.ID, driverID)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusDriverAccepted, accepted.Status)
	assert.NotNil(t, accepted.DriverID)
	assert.Equal(t, driverID, *accepted.DriverID)
	assert.NotNil(t, accepted.ETAPickup)
	assert.False(t, accepted.ETAPickup.Before(before.Add(5*time.Minute)))

	records, err := repo.ListActivities(ctx, tr.ID)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, models.ActivityDriverAccepted, records[0].Type)
}

func TestAcceptTripSecondDriverLoses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repo := triprepo.NewMemoryTripRepo()
	gw := tripmocks.NewMockTripGW(ctrl)
	locationUC := mocks.NewMockLocationUseCase(ctrl)
	estimator := mocks.NewMockEstimator(ctrl)

	tr := seedRequestedTrip(t, repo)
	winner := uuid.New()
	loser := uuid.New()

	locationUC.EXPECT().GetCoordinate(gomock.Any(), winner.String()).
		Return(utils.GeoPoint{Latitude: 40.01, Longitude: -73.01}, nil)
	estimator.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(eta.Metrics{Duration: time.Minute}, nil)
	locationUC.EXPECT().SetAvailability(gomock.Any(), winner.String(), models.DriverInService).Return(nil)
	gw.EXPECT().NotifyRider(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTripRemoved(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewMatchUC(repo, gw, locationUC, estimator)

	_, err := uc.AcceptTrip(ctx, tr.ID, winner)
	assert.NoError(t, err)

	// The pre-check rejects the loser before any coordinate lookup
	_, err = uc.AcceptTrip(ctx, tr.ID, loser)
	assert.ErrorIs(t, err, trip.ErrAlreadyTaken)

	final, err := repo.GetTrip(ctx, tr.ID, false)
	assert.NoError(t, err)
	assert.Equal(t, winner, *final.DriverID)
}

func TestAcceptTripDefaultsETAWhenCoordinateUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repo := triprepo.NewMemoryTripRepo()
	gw := tripmocks.NewMockTripGW(ctrl)
	locationUC := mocks.NewMockLocationUseCase(ctrl)
	estimator := mocks.NewMockEstimator(ctrl)

	tr := seedRequestedTrip(t, repo)
	driverID := uuid.New()

	locationUC.EXPECT().GetCoordinate(gomock.Any(), driverID.String()).
		Return(utils.GeoPoint{}, location.ErrLocationUnknown)
	locationUC.EXPECT().SetAvailability(gomock.Any(), driverID.String(), models.DriverInService).Return(nil)
	gw.EXPECT().NotifyRider(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTripRemoved(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewMatchUC(repo, gw, locationUC, estimator)

	before := time.Now()
	accepted, err := uc.AcceptTrip(ctx, tr.ID, driverID)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusDriverAccepted, accepted.Status)
	assert.NotNil(t, accepted.ETAPickup)
	// Zero travel time: the ETA is the acceptance moment itself
	assert.WithinDuration(t, before, *accepted.ETAPickup, 5*time.Second)
}

func TestAcceptTripDefaultsETAWhenEstimatorFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repo := triprepo.NewMemoryTripRepo()
	gw := tripmocks.NewMockTripGW(ctrl)
	locationUC := mocks.NewMockLocationUseCase(ctrl)
	estimator := mocks.NewMockEstimator(ctrl)

	tr := seedRequestedTrip(t, repo)
	driverID := uuid.New()

	locationUC.EXPECT().GetCoordinate(gomock.Any(), driverID.String()).
		Return(utils.GeoPoint{Latitude: 40.01, Longitude: -73.01}, nil)
	estimator.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(eta.Metrics{}, assert.AnError)
	locationUC.EXPECT().SetAvailability(gomock.Any(), driverID.String(), models.DriverInService).Return(nil)
	gw.EXPECT().NotifyRider(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTripRemoved(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewMatchUC(repo, gw, locationUC, estimator)

	accepted, err := uc.AcceptTrip(ctx, tr.ID, driverID)
	assert.NoError(t, err)
	assert.NotNil(t, accepted.ETAPickup)
}

func TestAcceptTripNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := triprepo.NewMemoryTripRepo()
	gw := tripmocks.NewMockTripGW(ctrl)
	locationUC := mocks.NewMockLocationUseCase(ctrl)
	estimator := mocks.NewMockEstimator(ctrl)

	uc := NewMatchUC(repo, gw, locationUC, estimator)

	_, err := uc.AcceptTrip(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, trip.ErrNotFound)
}

func TestAcceptTripRetriesTransientConflictOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repo := tripmocks.NewMockTripRepo(ctrl)
	gw := tripmocks.NewMockTripGW(ctrl)
	locationUC := mocks.NewMockLocationUseCase(ctrl)
	estimator := mocks.NewMockEstimator(ctrl)

	tripID := uuid.New()
	driverID := uuid.New()
	pending := &models.Trip{
		ID:      tripID,
		Status:  models.TripStatusFound,
		RiderID: uuid.New(),
		Points: models.RoutePoints{
			{Latitude: 40.0, Longitude: -73.0},
			{Latitude: 40.1, Longitude: -73.1},
		},
	}
	driverAccepted := &models.Trip{
		ID:       tripID,
		Status:   models.TripStatusDriverAccepted,
		RiderID:  pending.RiderID,
		DriverID: &driverID,
		Points:   pending.Points,
	}

	repo.EXPECT().GetTrip(gomock.Any(), tripID, false).Return(pending, nil)
	locationUC.EXPECT().GetCoordinate(gomock.Any(), driverID.String()).
		Return(utils.GeoPoint{Latitude: 40.01, Longitude: -73.01}, nil)
	estimator.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(eta.Metrics{Duration: time.Minute}, nil)

	first := repo.EXPECT().UpdateStatusWhere(gomock.Any(), tripID, gomock.Any(), gomock.Any(), models.ActivityDriverAccepted).
		Return(trip.ErrStatusConflict)
	repo.EXPECT().UpdateStatusWhere(gomock.Any(), tripID, gomock.Any(), gomock.Any(), models.ActivityDriverAccepted).
		Return(nil).After(first)

	locationUC.EXPECT().SetAvailability(gomock.Any(), driverID.String(), models.DriverInService).Return(nil)
	repo.EXPECT().GetTrip(gomock.Any(), tripID, true).Return(driverAccepted, nil)
	gw.EXPECT().NotifyRider(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTripUpdated(gomock.Any(), driverAccepted).Return(nil)
	gw.EXPECT().PublishTripRemoved(gomock.Any(), driverAccepted).Return(nil)

	uc := NewMatchUC(repo, gw, locationUC, estimator)

	accepted, err := uc.AcceptTrip(ctx, tripID, driverID)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusDriverAccepted, accepted.Status)
}

func TestAcceptTripPersistentConflictIsAlreadyTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repo := tripmocks.NewMockTripRepo(ctrl)
	gw := tripmocks.NewMockTripGW(ctrl)
	locationUC := mocks.NewMockLocationUseCase(ctrl)
	estimator := mocks.NewMockEstimator(ctrl)

	tripID := uuid.New()
	driverID := uuid.New()
	pending := &models.Trip{
		ID:      tripID,
		Status:  models.TripStatusRequested,
		RiderID: uuid.New(),
		Points: models.RoutePoints{
			{Latitude: 40.0, Longitude: -73.0},
			{Latitude: 40.1, Longitude: -73.1},
		},
	}

	repo.EXPECT().GetTrip(gomock.Any(), tripID, false).Return(pending, nil)
	locationUC.EXPECT().GetCoordinate(gomock.Any(), driverID.String()).
		Return(utils.GeoPoint{Latitude: 40.01, Longitude: -73.01}, nil)
	estimator.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(eta.Metrics{Duration: time.Minute}, nil)
	repo.EXPECT().UpdateStatusWhere(gomock.Any(), tripID, gomock.Any(), gomock.Any(), models.ActivityDriverAccepted).
		Return(trip.ErrStatusConflict).Times(2)

	uc := NewMatchUC(repo, gw, locationUC, estimator)

	_, err := uc.AcceptTrip(ctx, tripID, driverID)
	assert.ErrorIs(t, err, trip.ErrAlreadyTaken)
}
