package location

import "errors"

// ErrLocationUnknown is returned when a driver has no indexed position
var ErrLocationUnknown = errors.New("driver location unknown")
