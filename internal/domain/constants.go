package domain

import "github.com/m04kA/GZ-BookingService/pkg/types"

// Default centre configuration values
const (
	DefaultMaxDurationHours        = 6
	DefaultAdvanceBookingDays      = 30
	DefaultMinBookingNoticeMinutes = 0
)

// Default operating hours
const (
	DefaultOpenTime  types.TimeString = "10:00"
	DefaultCloseTime types.TimeString = "22:00"
)

// Business validation constants
const (
	SlotDurationMinutes         = 60 // hour-aligned slot grid
	MinDurationHours            = 1
	MaxDurationHours            = 12
	MinUserCount                = 1
	MaxUserCount                = 4
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365
	MaxCancellationReasonLength = 500
	MaxStationNameLength        = 100
	MaxUsernameLength           = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, при которых бронирование занимает слот
var ActiveStatuses = []BookingStatus{
	StatusUpcoming,
	StatusOngoing,
	StatusEnded,
}
