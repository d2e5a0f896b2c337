package trip

import "errors"

var (
	// ErrNotFound is returned when the trip does not exist
	ErrNotFound = errors.New("trip not found")

	// ErrInvalidTransition is returned when the requested status is not
	// reachable from the trip's current status
	ErrInvalidTransition = errors.New("Update status to this is not possible")

	// ErrAlreadyTaken is returned to drivers who lost the acceptance race
	ErrAlreadyTaken = errors.New("Already Taken")

	// ErrStatusConflict is returned by the repository when a conditional
	// status update matched no row because the status changed concurrently
	ErrStatusConflict = errors.New("trip status changed concurrently")
)
