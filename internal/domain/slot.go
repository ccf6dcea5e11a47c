package domain

import "github.com/m04kA/GZ-BookingService/pkg/types"

// Slot represents an hour-aligned bookable time unit for a station on a
// given date. It is a derived view and is never persisted.
type Slot struct {
	StartTime   types.TimeString
	IsAvailable bool
}

// DisplayTime returns the slot start in 12-hour notation for UI labels
func (s *Slot) DisplayTime() string {
	return s.StartTime.Format12Hour()
}
