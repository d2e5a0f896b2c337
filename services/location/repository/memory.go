package repository

import (
	"context"
	"sync"

	"github.com/rizaldy/angkut/internal/pkg/models"
)

// MemoryLocationRepo is an in-process availability repository
type MemoryLocationRepo struct {
	mu       sync.RWMutex
	statuses map[string]models.AvailabilityStatus
}

// NewMemoryLocationRepo creates an in-memory availability repository
func NewMemoryLocationRepo() *MemoryLocationRepo {
	return &MemoryLocationRepo{statuses: make(map[string]models.AvailabilityStatus)}
}

// SetAvailability stores the driver's availability status
func (r *MemoryLocationRepo) SetAvailability(_ context.Context, driverID string, status models.AvailabilityStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if status == models.DriverOffline {
		delete(r.statuses, driverID)
		return nil
	}
	r.statuses[driverID] = status
	return nil
}

// GetAvailability returns the stored status, offline when absent
func (r *MemoryLocationRepo) GetAvailability(_ context.Context, driverID string) (models.AvailabilityStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status, ok := r.statuses[driverID]
	if !ok {
		return models.DriverOffline, nil
	}
	return status, nil
}
