package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rizaldy/angkut/internal/pkg/logger"
	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/internal/utils"
	"github.com/rizaldy/angkut/services/geo"
	"github.com/rizaldy/angkut/services/location"
)

// LocationUC implements the location.LocationUseCase interface
type LocationUC struct {
	repo   location.LocationRepo
	index  geo.Index
	gw     location.LocationGW
	maxAge time.Duration
	now    func() time.Time
}

// NewLocationUC creates a new location use case
func NewLocationUC(repo location.LocationRepo, index geo.Index, gw location.LocationGW, cfg *models.Config) *LocationUC {
	maxAge := time.Duration(cfg.Location.MaxAgeSeconds) * time.Second
	if maxAge <= 0 {
		maxAge = 2 * time.Minute
	}
	return &LocationUC{
		repo:   repo,
		index:  index,
		gw:     gw,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// ReportLocation ingests a driver position sample. Offline drivers are not
// tracked, so their samples are dropped without error.
func (uc *LocationUC) ReportLocation(ctx context.Context, driverID string, loc models.Location) error {
	if !utils.ValidCoordinate(loc.Latitude, loc.Longitude) {
		return errors.New("invalid coordinate")
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = uc.now()
	}

	status, err := uc.repo.GetAvailability(ctx, driverID)
	if err != nil {
		return fmt.Errorf("failed to get driver availability: %w", err)
	}
	if status == models.DriverOffline {
		return nil
	}

	point := utils.GeoPoint{Latitude: loc.Latitude, Longitude: loc.Longitude}
	if err := uc.index.Upsert(ctx, driverID, point, loc.Timestamp); err != nil {
		return fmt.Errorf("failed to index driver location: %w", err)
	}

	update := models.DriverLocationUpdate{
		DriverID:  driverID,
		Location:  loc,
		CreatedAt: uc.now(),
	}
	if err := uc.gw.PublishLocationUpdate(ctx, update); err != nil {
		// The index already holds the position; a missed event only
		// delays downstream consumers until the next sample.
		logger.Warn("Failed to publish location update",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}
	return nil
}

// SetAvailability transitions a driver's availability status
func (uc *LocationUC) SetAvailability(ctx context.Context, driverID string, status models.AvailabilityStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid availability status: %s", status)
	}

	if err := uc.repo.SetAvailability(ctx, driverID, status); err != nil {
		return fmt.Errorf("failed to set driver availability: %w", err)
	}

	if status == models.DriverOffline {
		if err := uc.index.Remove(ctx, driverID); err != nil {
			return fmt.Errorf("failed to remove driver from index: %w", err)
		}
	}

	logger.Info("Driver availability updated",
		logger.String("driver_id", driverID),
		logger.String("status", string(status)))
	return nil
}

// GetAvailability returns the driver's current availability status
func (uc *LocationUC) GetAvailability(ctx context.Context, driverID string) (models.AvailabilityStatus, error) {
	return uc.repo.GetAvailability(ctx, driverID)
}

// NearestAvailable returns up to limit idle drivers within radiusKm of the
// point, nearest first. Drivers whose last sample is older than the
// staleness window are excluded even if still indexed.
func (uc *LocationUC) NearestAvailable(ctx context.Context, center utils.GeoPoint, radiusKm float64, limit int) ([]models.NearbyDriver, error) {
	if !utils.ValidCoordinate(center.Latitude, center.Longitude) {
		return nil, errors.New("invalid coordinate")
	}
	if radiusKm <= 0 {
		return nil, errors.New("radius must be positive")
	}

	// Over-fetch so availability and staleness filtering below still
	// leaves enough candidates. The fetch widens until the limit is met or
	// the radius is exhausted, so a cluster of stale or busy drivers close
	// to the center cannot mask matchable ones further out.
	fetch := limit * 3
	if limit <= 0 {
		fetch = 0
	}

	var drivers []models.NearbyDriver
	for {
		entries, err := uc.index.Nearest(ctx, center, radiusKm, fetch)
		if err != nil {
			return nil, fmt.Errorf("failed to query spatial index: %w", err)
		}

		cutoff := uc.now().Add(-uc.maxAge)
		drivers = make([]models.NearbyDriver, 0, len(entries))
		for _, e := range entries {
			if e.Timestamp.Before(cutoff) {
				continue
			}

			status, err := uc.repo.GetAvailability(ctx, e.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to get driver availability: %w", err)
			}
			if status != models.DriverIdle {
				continue
			}

			drivers = append(drivers, models.NearbyDriver{
				DriverID: e.ID,
				Location: models.Location{
					Latitude:  e.Location.Latitude,
					Longitude: e.Location.Longitude,
					Timestamp: e.Timestamp,
				},
				Distance: e.DistanceKm,
			})
		}

		// A fetch of 0 means the whole radius was scanned; a short page
		// means the index had nothing more to offer.
		if fetch == 0 || len(drivers) >= limit || len(entries) < fetch {
			break
		}
		fetch *= 2
	}

	if limit > 0 && len(drivers) > limit {
		drivers = drivers[:limit]
	}
	return drivers, nil
}

// GetCoordinate returns the last known position of a driver. A position
// older than the staleness window is treated the same as no position at all.
func (uc *LocationUC) GetCoordinate(ctx context.Context, driverID string) (utils.GeoPoint, error) {
	entry, ok, err := uc.index.Get(ctx, driverID)
	if err != nil {
		return utils.GeoPoint{}, fmt.Errorf("failed to load driver position: %w", err)
	}
	if !ok || entry.Timestamp.Before(uc.now().Add(-uc.maxAge)) {
		return utils.GeoPoint{}, location.ErrLocationUnknown
	}
	return entry.Location, nil
}
