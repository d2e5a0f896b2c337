package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the lifecycle status of a trip
type TripStatus string

const (
	TripStatusRequested      TripStatus = "requested"
	TripStatusFound          TripStatus = "found"
	TripStatusNoCloseFound   TripStatus = "no_close_found"
	TripStatusBooked         TripStatus = "booked"
	TripStatusDriverAccepted TripStatus = "driver_accepted"
	TripStatusArrived        TripStatus = "arrived"
	TripStatusStarted        TripStatus = "started"
	TripStatusFinished       TripStatus = "finished"
	TripStatusCanceled       TripStatus = "canceled"
)

// Terminal reports whether the status admits no further transitions
func (s TripStatus) Terminal() bool {
	return s == TripStatusFinished || s == TripStatusCanceled
}

// PreAcceptStatuses is the set of statuses from which a driver may still
// claim the trip. The conditional status update is guarded by this set.
func PreAcceptStatuses() []TripStatus {
	return []TripStatus{
		TripStatusRequested,
		TripStatusFound,
		TripStatusNoCloseFound,
		TripStatusBooked,
	}
}

// RoutePoint is a single stop on a trip's route. The first point is always
// the pickup.
type RoutePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// RoutePoints is an ordered sequence of route points, stored as JSONB
type RoutePoints []RoutePoint

// Value implements driver.Valuer for JSONB storage
func (p RoutePoints) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for JSONB storage
func (p *RoutePoints) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = nil
		return nil
	}
	return fmt.Errorf("cannot scan %T into RoutePoints", src)
}

// User is a rider or driver referenced by a trip
type User struct {
	ID       uuid.UUID `json:"id" db:"id"`
	FullName string    `json:"full_name" db:"full_name"`
	MSISDN   string    `json:"msisdn" db:"msisdn"`
	Role     string    `json:"role" db:"role"`
	CarPlate string    `json:"car_plate,omitempty" db:"car_plate"`
	CarModel string    `json:"car_model,omitempty" db:"car_model"`
}

// ServiceTier describes the service class a trip was requested under
type ServiceTier struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	BaseFare int64     `json:"base_fare" db:"base_fare"`
	PerKm    int64     `json:"per_km" db:"per_km"`
}

// Trip represents a single ride request from submission to completion.
// Status is mutated exclusively through the trip lifecycle's conditional
// updates; terminal trips are immutable except for activity appends.
type Trip struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Status      TripStatus  `json:"status" db:"status"`
	RiderID     uuid.UUID   `json:"rider_id" db:"rider_id"`
	DriverID    *uuid.UUID  `json:"driver_id,omitempty" db:"driver_id"`
	ServiceID   uuid.UUID   `json:"service_id" db:"service_id"`
	Points      RoutePoints `json:"points" db:"points"`
	Cost        int64       `json:"cost" db:"cost"`
	PaidAmount  int64       `json:"paid_amount" db:"paid_amount"`
	Currency    string      `json:"currency" db:"currency"`
	ETAPickup   *time.Time  `json:"eta_pickup,omitempty" db:"eta_pickup"`
	RequestedAt time.Time   `json:"requested_at" db:"requested_at"`
	ExpectedAt  *time.Time  `json:"expected_at,omitempty" db:"expected_at"`
	StartedAt   *time.Time  `json:"started_at,omitempty" db:"started_at"`
	FinishedAt  *time.Time  `json:"finished_at,omitempty" db:"finished_at"`

	// Message-read watermarks for the in-trip conversation
	RiderSeenMessagesAt  *time.Time `json:"rider_seen_messages_at,omitempty" db:"rider_seen_messages_at"`
	DriverSeenMessagesAt *time.Time `json:"driver_seen_messages_at,omitempty" db:"driver_seen_messages_at"`

	// Relations, populated only when fetched with relations
	Rider   *User        `json:"rider,omitempty" db:"-"`
	Driver  *User        `json:"driver,omitempty" db:"-"`
	Service *ServiceTier `json:"service,omitempty" db:"-"`
}

// Pickup returns the trip's pickup point, the first route point
func (t *Trip) Pickup() (RoutePoint, bool) {
	if len(t.Points) == 0 {
		return RoutePoint{}, false
	}
	return t.Points[0], true
}

// TripUpdate carries the fields a conditional status update may set.
// Nil pointers are left untouched.
type TripUpdate struct {
	Status     TripStatus
	DriverID   *uuid.UUID
	ETAPickup  *time.Time
	PaidAmount *int64
	StartedAt  *time.Time
	FinishedAt *time.Time
}

// ActivityType enumerates auditable lifecycle transitions
type ActivityType string

const (
	ActivityDriverAccepted       ActivityType = "driver_accepted"
	ActivityCanceledByDriver     ActivityType = "canceled_by_driver"
	ActivityCanceledByRider      ActivityType = "canceled_by_rider"
	ActivityArrivedToPickupPoint ActivityType = "arrived_to_pickup_point"
	ActivityStarted              ActivityType = "started"
	ActivityArrivedToDestination ActivityType = "arrived_to_destination"
)

// ActivityRecord is an append-only audit entry for a trip transition
type ActivityRecord struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	TripID    uuid.UUID    `json:"trip_id" db:"trip_id"`
	Type      ActivityType `json:"type" db:"type"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}

// NotificationKind enumerates rider-facing push events emitted by transitions
type NotificationKind string

const (
	NotifyTripAccepted   NotificationKind = "trip_accepted"
	NotifyDriverArrived  NotificationKind = "driver_arrived"
	NotifyTripStarted    NotificationKind = "trip_started"
	NotifyTripFinished   NotificationKind = "trip_finished"
	NotifyWaitingPostPay NotificationKind = "waiting_post_pay"
	NotifyTripCanceled   NotificationKind = "trip_canceled"
)

// TripEvent is the payload broadcast on trip.updated and trip.removed topics
type TripEvent struct {
	Trip      *Trip     `json:"trip"`
	CreatedAt time.Time `json:"created_at"`
}

// RiderNotification is the payload published to the rider notification topic
type RiderNotification struct {
	RiderID   string           `json:"rider_id"`
	TripID    string           `json:"trip_id"`
	Kind      NotificationKind `json:"kind"`
	CreatedAt time.Time        `json:"created_at"`
}
