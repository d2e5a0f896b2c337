package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/internal/utils"
	"github.com/rizaldy/angkut/services/geo"
	"github.com/rizaldy/angkut/services/location"
	"github.com/rizaldy/angkut/services/location/repository"
)

type fakeGateway struct {
	mu      sync.Mutex
	updates []models.DriverLocationUpdate
	err     error
}

func (g *fakeGateway) PublishLocationUpdate(_ context.Context, update models.DriverLocationUpdate) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return g.err
	}
	g.updates = append(g.updates, update)
	return nil
}

func (g *fakeGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.updates)
}

func newTestUC(t *testing.T) (*LocationUC, *repository.MemoryLocationRepo, *geo.MemoryIndex, *fakeGateway) {
	t.Helper()
	repo := repository.NewMemoryLocationRepo()
	index := geo.NewMemoryIndex(6)
	gw := &fakeGateway{}
	cfg := &models.Config{}
	cfg.Location.MaxAgeSeconds = 120
	uc := NewLocationUC(repo, index, gw, cfg)
	return uc, repo, index, gw
}

func TestReportLocationIndexesAndPublishes(t *testing.T) {
	uc, repo, index, gw := newTestUC(t)
	ctx := context.Background()

	assert.NoError(t, repo.SetAvailability(ctx, "driver-1", models.DriverIdle))

	loc := models.Location{Latitude: -6.2000, Longitude: 106.8166, Timestamp: time.Now()}
	assert.NoError(t, uc.ReportLocation(ctx, "driver-1", loc))

	entry, ok, err := index.Get(ctx, "driver-1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, loc.Latitude, entry.Location.Latitude)
	assert.Equal(t, 1, gw.count())
}

func TestReportLocationDropsOfflineDrivers(t *testing.T) {
	uc, _, index, gw := newTestUC(t)
	ctx := context.Background()

	loc := models.Location{Latitude: -6.2000, Longitude: 106.8166, Timestamp: time.Now()}
	assert.NoError(t, uc.ReportLocation(ctx, "driver-offline", loc))

	_, ok, err := index.Get(ctx, "driver-offline")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, gw.count())
}

func TestReportLocationRejectsInvalidCoordinate(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	loc := models.Location{Latitude: 99.0, Longitude: 200.0}
	assert.Error(t, uc.ReportLocation(context.Background(), "driver-1", loc))
}

func TestReportLocationSurvivesPublishFailure(t *testing.T) {
	uc, repo, index, gw := newTestUC(t)
	ctx := context.Background()
	gw.err = assert.AnError

	assert.NoError(t, repo.SetAvailability(ctx, "driver-1", models.DriverIdle))

	loc := models.Location{Latitude: -6.2000, Longitude: 106.8166, Timestamp: time.Now()}
	assert.NoError(t, uc.ReportLocation(ctx, "driver-1", loc))

	_, ok, err := index.Get(ctx, "driver-1")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestSetAvailabilityOfflineEvictsFromIndex(t *testing.T) {
	uc, repo, index, _ := newTestUC(t)
	ctx := context.Background()

	assert.NoError(t, repo.SetAvailability(ctx, "driver-1", models.DriverIdle))
	loc := models.Location{Latitude: -6.2000, Longitude: 106.8166, Timestamp: time.Now()}
	assert.NoError(t, uc.ReportLocation(ctx, "driver-1", loc))

	assert.NoError(t, uc.SetAvailability(ctx, "driver-1", models.DriverOffline))

	_, ok, err := index.Get(ctx, "driver-1")
	assert.NoError(t, err)
	assert.False(t, ok)

	status, err := uc.GetAvailability(ctx, "driver-1")
	assert.NoError(t, err)
	assert.Equal(t, models.DriverOffline, status)
}

func TestSetAvailabilityRejectsUnknownStatus(t *testing.T) {
	uc, _, _, _ := newTestUC(t)
	assert.Error(t, uc.SetAvailability(context.Background(), "driver-1", "busy"))
}

func TestNearestAvailableFiltersStatusAndStaleness(t *testing.T) {
	uc, repo, index, _ := newTestUC(t)
	ctx := context.Background()
	now := time.Now()
	center := utils.GeoPoint{Latitude: -6.2000, Longitude: 106.8166}

	// idle with a fresh sample, matchable
	assert.NoError(t, repo.SetAvailability(ctx, "driver-idle", models.DriverIdle))
	assert.NoError(t, index.Upsert(ctx, "driver-idle",
		utils.GeoPoint{Latitude: -6.2010, Longitude: 106.8166}, now))

	// serving a trip, not matchable
	assert.NoError(t, repo.SetAvailability(ctx, "driver-busy", models.DriverInService))
	assert.NoError(t, index.Upsert(ctx, "driver-busy",
		utils.GeoPoint{Latitude: -6.2005, Longitude: 106.8166}, now))

	// idle but the sample is older than the staleness window
	assert.NoError(t, repo.SetAvailability(ctx, "driver-stale", models.DriverIdle))
	assert.NoError(t, index.Upsert(ctx, "driver-stale",
		utils.GeoPoint{Latitude: -6.2002, Longitude: 106.8166}, now.Add(-10*time.Minute)))

	drivers, err := uc.NearestAvailable(ctx, center, 5.0, 10)
	assert.NoError(t, err)
	assert.Len(t, drivers, 1)
	assert.Equal(t, "driver-idle", drivers[0].DriverID)
}

func TestNearestAvailableOrderingAndLimit(t *testing.T) {
	uc, repo, index, _ := newTestUC(t)
	ctx := context.Background()
	now := time.Now()
	center := utils.GeoPoint{Latitude: -6.2000, Longitude: 106.8166}

	near := utils.GeoPoint{Latitude: -6.2010, Longitude: 106.8166}
	far := utils.GeoPoint{Latitude: -6.2030, Longitude: 106.8166}

	assert.NoError(t, repo.SetAvailability(ctx, "driver-near", models.DriverIdle))
	assert.NoError(t, index.Upsert(ctx, "driver-near", near, now))
	assert.NoError(t, repo.SetAvailability(ctx, "driver-far", models.DriverIdle))
	assert.NoError(t, index.Upsert(ctx, "driver-far", far, now))

	drivers, err := uc.NearestAvailable(ctx, center, 5.0, 10)
	assert.NoError(t, err)
	assert.Len(t, drivers, 2)
	assert.Equal(t, "driver-near", drivers[0].DriverID)
	assert.Less(t, drivers[0].Distance, drivers[1].Distance)

	limited, err := uc.NearestAvailable(ctx, center, 5.0, 1)
	assert.NoError(t, err)
	assert.Len(t, limited, 1)
	assert.Equal(t, "driver-near", limited[0].DriverID)
}

func TestNearestAvailableWidensPastBusyCluster(t *testing.T) {
	uc, repo, index, _ := newTestUC(t)
	ctx := context.Background()
	now := time.Now()
	center := utils.GeoPoint{Latitude: -6.2000, Longitude: 106.8166}

	// Four busy drivers sit closest to the center, swamping the initial
	// over-fetch page for limit 1.
	for i, lat := range []float64{-6.2001, -6.2002, -6.2003, -6.2004} {
		id := fmt.Sprintf("driver-busy-%d", i)
		assert.NoError(t, repo.SetAvailability(ctx, id, models.DriverInService))
		assert.NoError(t, index.Upsert(ctx, id,
			utils.GeoPoint{Latitude: lat, Longitude: 106.8166}, now))
	}

	assert.NoError(t, repo.SetAvailability(ctx, "driver-idle", models.DriverIdle))
	assert.NoError(t, index.Upsert(ctx, "driver-idle",
		utils.GeoPoint{Latitude: -6.2020, Longitude: 106.8166}, now))

	drivers, err := uc.NearestAvailable(ctx, center, 5.0, 1)
	assert.NoError(t, err)
	assert.Len(t, drivers, 1)
	assert.Equal(t, "driver-idle", drivers[0].DriverID)
}

func TestGetCoordinate(t *testing.T) {
	uc, _, index, _ := newTestUC(t)
	ctx := context.Background()

	_, err := uc.GetCoordinate(ctx, "driver-1")
	assert.ErrorIs(t, err, location.ErrLocationUnknown)

	p := utils.GeoPoint{Latitude: -6.2000, Longitude: 106.8166}
	assert.NoError(t, index.Upsert(ctx, "driver-1", p, time.Now()))

	got, err := uc.GetCoordinate(ctx, "driver-1")
	assert.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestGetCoordinateStalePositionIsUnknown(t *testing.T) {
	uc, _, index, _ := newTestUC(t)
	ctx := context.Background()

	p := utils.GeoPoint{Latitude: -6.2000, Longitude: 106.8166}
	assert.NoError(t, index.Upsert(ctx, "driver-1", p, time.Now().Add(-time.Hour)))

	_, err := uc.GetCoordinate(ctx, "driver-1")
	assert.ErrorIs(t, err, location.ErrLocationUnknown)

	// A fresh report revives the driver
	assert.NoError(t, index.Upsert(ctx, "driver-1", p, time.Now()))
	got, err := uc.GetCoordinate(ctx, "driver-1")
	assert.NoError(t, err)
	assert.Equal(t, p, got)
}
