package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/services/trip"
)

// MemoryTripRepo is an in-process trip repository. The conditional status
// update holds the mutex for its full check-and-set, giving the same
// linearization the Postgres repository gets from a guarded UPDATE.
type MemoryTripRepo struct {
	mu         sync.Mutex
	trips      map[uuid.UUID]*models.Trip
	activities map[uuid.UUID][]models.ActivityRecord
	tiers      map[uuid.UUID]*models.ServiceTier
	users      map[uuid.UUID]*models.User
}

// NewMemoryTripRepo creates an in-memory trip repository
func NewMemoryTripRepo() *MemoryTripRepo {
	return &MemoryTripRepo{
		trips:      make(map[uuid.UUID]*models.Trip),
		activities: make(map[uuid.UUID][]models.ActivityRecord),
		tiers:      make(map[uuid.UUID]*models.ServiceTier),
		users:      make(map[uuid.UUID]*models.User),
	}
}

// SeedServiceTier registers a pricing tier
func (r *MemoryTripRepo) SeedServiceTier(tier *models.ServiceTier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tiers[tier.ID] = tier
}

// SeedUser registers a rider or driver for relation loading
func (r *MemoryTripRepo) SeedUser(user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

// CreateTrip inserts a new trip
func (r *MemoryTripRepo) CreateTrip(_ context.Context, t *models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *t
	r.trips[t.ID] = &cp
	return nil
}

// GetTrip loads a trip copy, optionally with relations
func (r *MemoryTripRepo) GetTrip(_ context.Context, id uuid.UUID, withRelations bool) (*models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.trips[id]
	if !ok {
		return nil, trip.ErrNotFound
	}

	cp := *stored
	if withRelations {
		cp.Rider = r.users[cp.RiderID]
		if cp.DriverID != nil {
			cp.Driver = r.users[*cp.DriverID]
		}
		cp.Service = r.tiers[cp.ServiceID]
	}
	return &cp, nil
}

// UpdateStatusWhere applies the update and appends the activity record
// under one mutex hold, only while the trip's status is in the allowed set
func (r *MemoryTripRepo) UpdateStatusWhere(_ context.Context, id uuid.UUID, allowed []models.TripStatus, upd models.TripUpdate, activity models.ActivityType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.trips[id]
	if !ok {
		return trip.ErrNotFound
	}

	permitted := false
	for _, s := range allowed {
		if stored.Status == s {
			permitted = true
			break
		}
	}
	if !permitted {
		return trip.ErrStatusConflict
	}

	stored.Status = upd.Status
	if upd.DriverID != nil {
		stored.DriverID = upd.DriverID
	}
	if upd.ETAPickup != nil {
		stored.ETAPickup = upd.ETAPickup
	}
	if upd.PaidAmount != nil {
		stored.PaidAmount = *upd.PaidAmount
	}
	if upd.StartedAt != nil {
		stored.StartedAt = upd.StartedAt
	}
	if upd.FinishedAt != nil {
		stored.FinishedAt = upd.FinishedAt
	}

	r.activities[id] = append(r.activities[id], models.ActivityRecord{
		ID:        uuid.New(),
		TripID:    id,
		Type:      activity,
		CreatedAt: time.Now(),
	})
	return nil
}

// ListActivities returns a trip's activity records, oldest first
func (r *MemoryTripRepo) ListActivities(_ context.Context, tripID uuid.UUID) ([]models.ActivityRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]models.ActivityRecord, len(r.activities[tripID]))
	copy(records, r.activities[tripID])
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

// GetServiceTier loads a pricing tier
func (r *MemoryTripRepo) GetServiceTier(_ context.Context, id uuid.UUID) (*models.ServiceTier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tier, ok := r.tiers[id]
	if !ok {
		return nil, trip.ErrNotFound
	}
	cp := *tier
	return &cp, nil
}
