package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/services/trip"
)

// PostgresTripRepo persists trips in PostgreSQL
type PostgresTripRepo struct {
	db *sqlx.DB
}

// NewPostgresTripRepo creates a new trip repository
func NewPostgresTripRepo(db *sqlx.DB) *PostgresTripRepo {
	return &PostgresTripRepo{db: db}
}

// CreateTrip inserts a new trip
func (r *PostgresTripRepo) CreateTrip(ctx context.Context, t *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, status, rider_id, driver_id, service_id, points,
			cost, paid_amount, currency, eta_pickup,
			requested_at, expected_at, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Status,
		t.RiderID,
		t.DriverID,
		t.ServiceID,
		t.Points,
		t.Cost,
		t.PaidAmount,
		t.Currency,
		t.ETAPickup,
		t.RequestedAt,
		t.ExpectedAt,
		t.StartedAt,
		t.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// GetTrip loads a trip, optionally with its relations
func (r *PostgresTripRepo) GetTrip(ctx context.Context, id uuid.UUID, withRelations bool) (*models.Trip, error) {
	query := `
		SELECT id, status, rider_id, driver_id, service_id, points,
		       cost, paid_amount, currency, eta_pickup,
		       requested_at, expected_at, started_at, finished_at,
		       rider_seen_messages_at, driver_seen_messages_at
		FROM trips
		WHERE id = $1
	`

	var t models.Trip
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trip.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load trip: %w", err)
	}

	if !withRelations {
		return &t, nil
	}

	rider, err := r.getUser(ctx, t.RiderID)
	if err != nil {
		return nil, err
	}
	t.Rider = rider

	if t.DriverID != nil {
		driver, err := r.getUser(ctx, *t.DriverID)
		if err != nil {
			return nil, err
		}
		t.Driver = driver
	}

	tier, err := r.GetServiceTier(ctx, t.ServiceID)
	if err != nil {
		return nil, err
	}
	t.Service = tier

	return &t, nil
}

// UpdateStatusWhere applies the update and the activity insert in one
// transaction, only while the trip's status is in the allowed set. A zero
// row count on an existing trip means the guard failed.
func (r *PostgresTripRepo) UpdateStatusWhere(ctx context.Context, id uuid.UUID, allowed []models.TripStatus, upd models.TripUpdate, activity models.ActivityType) error {
	sets := []string{"status = $1"}
	args := []interface{}{upd.Status}
	idx := 2

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if upd.DriverID != nil {
		appendSet("driver_id", *upd.DriverID)
	}
	if upd.ETAPickup != nil {
		appendSet("eta_pickup", *upd.ETAPickup)
	}
	if upd.PaidAmount != nil {
		appendSet("paid_amount", *upd.PaidAmount)
	}
	if upd.StartedAt != nil {
		appendSet("started_at", *upd.StartedAt)
	}
	if upd.FinishedAt != nil {
		appendSet("finished_at", *upd.FinishedAt)
	}

	statuses := make([]string, len(allowed))
	for i, s := range allowed {
		statuses[i] = string(s)
	}

	query := fmt.Sprintf(
		"UPDATE trips SET %s WHERE id = $%d AND status = ANY($%d)",
		strings.Join(sets, ", "), idx, idx+1,
	)
	args = append(args, id, pq.Array(statuses))

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists, "SELECT EXISTS (SELECT 1 FROM trips WHERE id = $1)", id); err != nil {
			return fmt.Errorf("failed to check trip existence: %w", err)
		}
		if !exists {
			return trip.ErrNotFound
		}
		return trip.ErrStatusConflict
	}

	activityQuery := `
		INSERT INTO trip_activities (id, trip_id, type, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.ExecContext(ctx, activityQuery, uuid.New(), id, activity, time.Now()); err != nil {
		return fmt.Errorf("failed to append trip activity: %w", err)
	}

	return tx.Commit()
}

// ListActivities returns a trip's activity records, oldest first
func (r *PostgresTripRepo) ListActivities(ctx context.Context, tripID uuid.UUID) ([]models.ActivityRecord, error) {
	query := `
		SELECT id, trip_id, type, created_at
		FROM trip_activities
		WHERE trip_id = $1
		ORDER BY created_at ASC
	`

	var records []models.ActivityRecord
	if err := r.db.SelectContext(ctx, &records, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list trip activities: %w", err)
	}
	return records, nil
}

// GetServiceTier loads a pricing tier
func (r *PostgresTripRepo) GetServiceTier(ctx context.Context, id uuid.UUID) (*models.ServiceTier, error) {
	query := `SELECT id, name, base_fare, per_km FROM services WHERE id = $1`

	var tier models.ServiceTier
	if err := r.db.GetContext(ctx, &tier, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("service tier %s not found", id)
		}
		return nil, fmt.Errorf("failed to load service tier: %w", err)
	}
	return &tier, nil
}

func (r *PostgresTripRepo) getUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT id, full_name, msisdn, role, car_plate, car_model FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user %s: %w", id, err)
	}
	return &user, nil
}
