package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/services/trip"
	"github.com/rizaldy/angkut/services/trip/mocks"
	"github.com/rizaldy/angkut/services/trip/repository"
)

type lifecycleFixture struct {
	uc       *TripUC
	repo     *repository.MemoryTripRepo
	gw       *mocks.MockTripGW
	registry *mocks.MockDriverRegistry
}

func newLifecycleFixture(t *testing.T) (*lifecycleFixture, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := repository.NewMemoryTripRepo()
	gw := mocks.NewMockTripGW(ctrl)
	registry := mocks.NewMockDriverRegistry(ctrl)

	uc := NewTripUC(repo, gw,
		trip.NewClosingCancelPolicy(registry),
		trip.NewBalanceSettlePolicy(registry))

	return &lifecycleFixture{uc: uc, repo: repo, gw: gw, registry: registry}, ctrl
}

func seedTrip(t *testing.T, repo *repository.MemoryTripRepo, status models.TripStatus, driverID *uuid.UUID, cost int64) *models.Trip {
	t.Helper()
	tr := &models.Trip{
		ID:        uuid.New(),
		Status:    status,
		RiderID:   uuid.New(),
		DriverID:  driverID,
		ServiceID: uuid.New(),
		Points: models.RoutePoints{
			{Latitude: 40.0, Longitude: -73.0},
			{Latitude: 40.05, Longitude: -73.05},
		},
		Cost:     cost,
		Currency: "IDR",
	}
	assert.NoError(t, repo.CreateTrip(context.Background(), tr))
	return tr
}

func TestRequestTripComputesCost(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tier := &models.ServiceTier{ID: uuid.New(), Name: "standard", BaseFare: 10000, PerKm: 3000}
	f.repo.SeedServiceTier(tier)

	f.gw.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	created, err := f.uc.RequestTrip(ctx, trip.CreateTripRequest{
		RiderID:   uuid.New(),
		ServiceID: tier.ID,
		Points: models.RoutePoints{
			{Latitude: -6.2000, Longitude: 106.8166},
			{Latitude: -6.2500, Longitude: 106.8166}, // ~5.6km
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusRequested, created.Status)
	assert.Greater(t, created.Cost, tier.BaseFare)
	assert.Equal(t, "standard", created.Service.Name)
}

func TestRequestTripNeedsTwoPoints(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()

	_, err := f.uc.RequestTrip(context.Background(), trip.CreateTripRequest{
		RiderID:   uuid.New(),
		ServiceID: uuid.New(),
		Points:    models.RoutePoints{{Latitude: 1, Longitude: 1}},
	})
	assert.Error(t, err)
}

func TestAdvanceTripFullLifecycle(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()
	ctx := context.Background()

	driverID := uuid.New()
	tr := seedTrip(t, f.repo, models.TripStatusDriverAccepted, &driverID, 15000)

	var kinds []models.NotificationKind
	f.gw.EXPECT().NotifyRider(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.RiderNotification) error {
			kinds = append(kinds, n.Kind)
			return nil
		}).Times(3)
	f.gw.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.registry.EXPECT().SetAvailability(gomock.Any(), driverID.String(), models.DriverIdle).Return(nil).Times(1)

	arrived, err := f.uc.AdvanceTrip(ctx, tr.ID, models.TripStatusArrived, driverID, 0)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusArrived, arrived.Status)

	started, err := f.uc.AdvanceTrip(ctx, tr.ID, models.TripStatusStarted, driverID, 0)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusStarted, started.Status)
	assert.NotNil(t, started.StartedAt)

	finished, err := f.uc.AdvanceTrip(ctx, tr.ID, models.TripStatusFinished, driverID, 15000)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusFinished, finished.Status)
	assert.Equal(t, int64(15000), finished.PaidAmount)
	assert.NotNil(t, finished.FinishedAt)

	assert.Equal(t, []models.NotificationKind{
		models.NotifyDriverArrived,
		models.NotifyTripStarted,
		models.NotifyTripFinished,
	}, kinds)

	records, err := f.uc.ListActivities(ctx, tr.ID)
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, models.ActivityArrivedToPickupPoint, records[0].Type)
	assert.Equal(t, models.ActivityStarted, records[1].Type)
	assert.Equal(t, models.ActivityArrivedToDestination, records[2].Type)
}

func TestFinishWithPartialPaymentNotifiesPostPay(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()
	ctx := context.Background()

	driverID := uuid.New()
	tr := seedTrip(t, f.repo, models.TripStatusStarted, &driverID, 15)

	var got models.RiderNotification
	f.gw.EXPECT().NotifyRider(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.RiderNotification) error {
			got = n
			return nil
		}).Times(1)
	f.gw.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.registry.EXPECT().SetAvailability(gomock.Any(), driverID.String(), models.DriverIdle).Return(nil).Times(1)

	finished, err := f.uc.AdvanceTrip(ctx, tr.ID, models.TripStatusFinished, driverID, 10)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusFinished, finished.Status)
	assert.Equal(t, models.NotifyWaitingPostPay, got.Kind)
}

func TestFinishAddsPriorPaymentsBeforeComparing(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()
	ctx := context.Background()

	driverID := uuid.New()
	tr := &models.Trip{
		ID:        uuid.New(),
		Status:    models.TripStatusStarted,
		RiderID:   uuid.New(),
		DriverID:  &driverID,
		ServiceID: uuid.New(),
		Points: models.RoutePoints{
			{Latitude: 40.0, Longitude: -73.0},
			{Latitude: 40.05, Longitude: -73.05},
		},
		Cost:       15,
		PaidAmount: 10,
		Currency:   "IDR",
	}
	assert.NoError(t, f.repo.CreateTrip(ctx, tr))

	var got models.RiderNotification
	f.gw.EXPECT().NotifyRider(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.RiderNotification) error {
			got = n
			return nil
		}).Times(1)
	f.gw.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.registry.EXPECT().SetAvailability(gomock.Any(), driverID.String(), models.DriverIdle).Return(nil).Times(1)

	// 10 prepaid plus 5 at finish covers the cost in full
	finished, err := f.uc.AdvanceTrip(ctx, tr.ID, models.TripStatusFinished, driverID, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusFinished, finished.Status)
	assert.Equal(t, int64(15), finished.PaidAmount)
	assert.Equal(t, models.NotifyTripFinished, got.Kind)
}

func TestArrivedFromWrongStatusFails(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()
	ctx := context.Background()

	driverID := uuid.New()
	tr := seedTrip(t, f.repo, models.TripStatusRequested, &driverID, 100)

	_, err := f.uc.AdvanceTrip(ctx, tr.ID, models.TripStatusArrived, driverID, 0)
	assert.ErrorIs(t, err, trip.ErrInvalidTransition)

	records, err := f.uc.ListActivities(ctx, tr.ID)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestAdvanceTripUnknownTripIsNotFound(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()

	_, err := f.uc.AdvanceTrip(context.Background(), uuid.New(), models.TripStatusArrived, uuid.New(), 0)
	assert.ErrorIs(t, err, trip.ErrNotFound)

	_, err = f.uc.AdvanceTrip(context.Background(), uuid.New(), models.TripStatusStarted, uuid.New(), 0)
	assert.ErrorIs(t, err, trip.ErrNotFound)
}

func TestAdvanceTripRejectsUnknownStatus(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tr := seedTrip(t, f.repo, models.TripStatusStarted, &driverID, 100)

	_, err := f.uc.AdvanceTrip(context.Background(), tr.ID, models.TripStatusBooked, driverID, 0)
	assert.ErrorIs(t, err, trip.ErrInvalidTransition)
}

func TestCancelByDriverIsIdempotent(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()
	ctx := context.Background()

	driverID := uuid.New()
	tr := seedTrip(t, f.repo, models.TripStatusDriverAccepted, &driverID, 100)

	f.gw.EXPECT().NotifyRider(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.registry.EXPECT().SetAvailability(gomock.Any(), driverID.String(), models.DriverIdle).Return(nil).Times(1)

	canceled, err := f.uc.CancelByDriver(ctx, tr.ID, driverID)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusCanceled, canceled.Status)

	// Second cancel must fail without appending activity or broadcasting;
	// the mock controller rejects any further gateway call.
	_, err = f.uc.CancelByDriver(ctx, tr.ID, driverID)
	assert.ErrorIs(t, err, trip.ErrInvalidTransition)

	records, err := f.uc.ListActivities(ctx, tr.ID)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, models.ActivityCanceledByDriver, records[0].Type)
}

func TestCancelByDriverRequiresAssignedDriver(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tr := seedTrip(t, f.repo, models.TripStatusDriverAccepted, &driverID, 100)

	_, err := f.uc.CancelByDriver(context.Background(), tr.ID, uuid.New())
	assert.ErrorIs(t, err, trip.ErrInvalidTransition)
}

func TestCancelByRider(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tr := seedTrip(t, f.repo, models.TripStatusRequested, nil, 100)

	f.gw.EXPECT().NotifyRider(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	canceled, err := f.uc.CancelByRider(ctx, tr.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusCanceled, canceled.Status)

	records, err := f.uc.ListActivities(ctx, tr.ID)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, models.ActivityCanceledByRider, records[0].Type)
}

func TestCancelByRiderAfterStartFails(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	tr := seedTrip(t, f.repo, models.TripStatusStarted, &driverID, 100)

	_, err := f.uc.CancelByRider(context.Background(), tr.ID)
	assert.ErrorIs(t, err, trip.ErrInvalidTransition)
}

func TestGetTripNotFound(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()

	_, err := f.uc.GetTrip(context.Background(), uuid.New())
	assert.ErrorIs(t, err, trip.ErrNotFound)
}

func TestBroadcastFailureDoesNotRollBackTransition(t *testing.T) {
	f, ctrl := newLifecycleFixture(t)
	defer ctrl.Finish()
	ctx := context.Background()

	driverID := uuid.New()
	tr := seedTrip(t, f.repo, models.TripStatusDriverAccepted, &driverID, 100)

	f.gw.EXPECT().NotifyRider(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)
	f.gw.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)

	arrived, err := f.uc.AdvanceTrip(ctx, tr.ID, models.TripStatusArrived, driverID, 0)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusArrived, arrived.Status)

	reloaded, err := f.uc.GetTrip(ctx, tr.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusArrived, reloaded.Status)
}
