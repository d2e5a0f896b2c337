package geo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rizaldy/angkut/internal/pkg/database"
	"github.com/rizaldy/angkut/internal/utils"
)

const (
	driverGeoKey      = "drivers:geo"
	driverLocationKey = "drivers:location:%s"
	driverLocationTTL = 30 * time.Minute
)

// RedisIndex is a spatial index backed by Redis geo sets. Positions live in
// a single GEO key and a per-driver hash carries the raw sample with its
// timestamp.
type RedisIndex struct {
	client *database.RedisClient
}

// NewRedisIndex creates a Redis-backed spatial index.
func NewRedisIndex(client *database.RedisClient) *RedisIndex {
	return &RedisIndex{client: client}
}

// Upsert records the latest position for the driver. Out-of-order samples
// are discarded by comparing against the stored timestamp.
func (r *RedisIndex) Upsert(ctx context.Context, id string, loc utils.GeoPoint, ts time.Time) error {
	hashKey := fmt.Sprintf(driverLocationKey, id)

	existing, err := r.client.HGetAll(ctx, hashKey)
	if err == nil && len(existing) > 0 {
		if prev, perr := strconv.ParseInt(existing["timestamp"], 10, 64); perr == nil {
			if ts.Unix() < prev {
				return nil
			}
		}
	}

	if err := r.client.GeoAdd(ctx, driverGeoKey, loc.Longitude, loc.Latitude, id); err != nil {
		return fmt.Errorf("failed to add driver to geo index: %w", err)
	}

	fields := map[string]interface{}{
		"latitude":  strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		"longitude": strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		"timestamp": strconv.FormatInt(ts.Unix(), 10),
	}
	if err := r.client.HMSet(ctx, hashKey, fields); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	return r.client.Expire(ctx, hashKey, driverLocationTTL)
}

// Remove drops the driver from the index.
func (r *RedisIndex) Remove(ctx context.Context, id string) error {
	if err := r.client.ZRem(ctx, driverGeoKey, id); err != nil {
		return fmt.Errorf("failed to remove driver from geo index: %w", err)
	}
	return r.client.Delete(ctx, fmt.Sprintf(driverLocationKey, id))
}

// Nearest returns up to limit drivers within radiusKm of center, nearest
// first.
func (r *RedisIndex) Nearest(ctx context.Context, center utils.GeoPoint, radiusKm float64, limit int) ([]Entry, error) {
	locations, err := r.client.GeoRadius(ctx, driverGeoKey, center.Longitude, center.Latitude, radiusKm, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	entries := make([]Entry, 0, len(locations))
	for _, loc := range locations {
		e := Entry{
			ID:         loc.Name,
			Location:   utils.GeoPoint{Latitude: loc.Latitude, Longitude: loc.Longitude},
			DistanceKm: loc.Dist,
		}
		hash, herr := r.client.HGetAll(ctx, fmt.Sprintf(driverLocationKey, loc.Name))
		if herr == nil {
			if ts, perr := strconv.ParseInt(hash["timestamp"], 10, 64); perr == nil {
				e.Timestamp = time.Unix(ts, 0)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Get returns the stored position for a driver.
func (r *RedisIndex) Get(ctx context.Context, id string) (Entry, bool, error) {
	hash, err := r.client.HGetAll(ctx, fmt.Sprintf(driverLocationKey, id))
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to load driver location: %w", err)
	}
	if len(hash) == 0 {
		return Entry{}, false, nil
	}

	lat, err := strconv.ParseFloat(hash["latitude"], 64)
	if err != nil {
		return Entry{}, false, fmt.Errorf("corrupt driver location for %s: %w", id, err)
	}
	lon, err := strconv.ParseFloat(hash["longitude"], 64)
	if err != nil {
		return Entry{}, false, fmt.Errorf("corrupt driver location for %s: %w", id, err)
	}

	e := Entry{ID: id, Location: utils.GeoPoint{Latitude: lat, Longitude: lon}}
	if ts, perr := strconv.ParseInt(hash["timestamp"], 10, 64); perr == nil {
		e.Timestamp = time.Unix(ts, 0)
	}
	return e, true, nil
}
