package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/rizaldy/angkut/internal/pkg/database"
	"github.com/rizaldy/angkut/internal/pkg/models"
)

const driverAvailabilityKey = "drivers:availability:%s"

// RedisLocationRepo stores driver availability statuses in Redis
type RedisLocationRepo struct {
	client *database.RedisClient
}

// NewRedisLocationRepo creates a Redis-backed availability repository
func NewRedisLocationRepo(client *database.RedisClient) *RedisLocationRepo {
	return &RedisLocationRepo{client: client}
}

// SetAvailability stores the driver's availability status. Offline clears
// the key so the registry never grows with inactive drivers.
func (r *RedisLocationRepo) SetAvailability(ctx context.Context, driverID string, status models.AvailabilityStatus) error {
	key := fmt.Sprintf(driverAvailabilityKey, driverID)

	if status == models.DriverOffline {
		return r.client.Delete(ctx, key)
	}
	return r.client.Set(ctx, key, string(status), 0)
}

// GetAvailability returns the stored status. Missing keys mean offline.
func (r *RedisLocationRepo) GetAvailability(ctx context.Context, driverID string) (models.AvailabilityStatus, error) {
	val, err := r.client.Get(ctx, fmt.Sprintf(driverAvailabilityKey, driverID))
	if err == redis.Nil {
		return models.DriverOffline, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get driver availability: %w", err)
	}

	status := models.AvailabilityStatus(val)
	if !status.Valid() {
		return "", fmt.Errorf("corrupt availability status for driver %s: %q", driverID, val)
	}
	return status, nil
}
