package domain

import (
	"time"

	"github.com/m04kA/GZ-BookingService/pkg/types"
)

// CentreConfig represents the gaming centre's booking configuration:
// operating hours and the limits applied to new bookings.
type CentreConfig struct {
	ID                      int64
	OpenTime                types.TimeString
	CloseTime               types.TimeString
	MaxDurationHours        int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
	UpdatedAt               time.Time
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *CentreConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// OperatingMinutes returns the length of the business day in minutes
func (c *CentreConfig) OperatingMinutes() int {
	open, err := c.OpenTime.MinutesFromMidnight()
	if err != nil {
		return 0
	}
	close, err := c.CloseTime.MinutesFromMidnight()
	if err != nil {
		return 0
	}
	if close <= open {
		return 0
	}
	return close - open
}

// DefaultCentreConfig returns the configuration used when none is stored
func DefaultCentreConfig() *CentreConfig {
	return &CentreConfig{
		OpenTime:                DefaultOpenTime,
		CloseTime:               DefaultCloseTime,
		MaxDurationHours:        DefaultMaxDurationHours,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}
