package models

import "time"

// Location represents a geographic coordinate with the time it was observed
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// DriverLocationUpdate is the event payload published whenever a driver
// reports a new position
type DriverLocationUpdate struct {
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// NearbyDriver represents a matchable driver together with their distance
// from the query point, in kilometers
type NearbyDriver struct {
	DriverID string   `json:"driver_id"`
	Location Location `json:"location"`
	Distance float64  `json:"distance_km"`
}
