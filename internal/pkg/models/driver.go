package models

// AvailabilityStatus represents a driver's availability for matching
type AvailabilityStatus string

const (
	// DriverOffline means the driver is not reachable; their position is not tracked
	DriverOffline AvailabilityStatus = "offline"
	// DriverIdle means the driver is online and eligible for matching
	DriverIdle AvailabilityStatus = "idle"
	// DriverInService means the driver is serving a trip and not matchable
	DriverInService AvailabilityStatus = "in_service"
)

// Valid reports whether s is one of the known availability statuses
func (s AvailabilityStatus) Valid() bool {
	switch s {
	case DriverOffline, DriverIdle, DriverInService:
		return true
	}
	return false
}

// AvailabilityUpdate is a driver's request to change their availability
type AvailabilityUpdate struct {
	DriverID string             `json:"driver_id"`
	Status   AvailabilityStatus `json:"status"`
}
