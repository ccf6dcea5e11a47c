package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "UPCOMING"
	StatusOngoing   BookingStatus = "ONGOING"
	StatusEnded     BookingStatus = "ENDED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a gaming session reservation on a station
type Booking struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	StationID     uuid.UUID
	BookingDate   time.Time
	StartTime     types.TimeString
	DurationHours int
	UserCount     int

	// Absolute session boundaries, used by the lifecycle job
	StartAt time.Time
	EndAt   time.Time

	TotalAmount    float64
	AdvancePayment bool
	AdvanceAmount  float64
	AmountPaid     float64

	Status BookingStatus

	// Denormalized station data for history
	StationName string
	StationType StationType
	HourlyRate  float64

	CancellationReason *string
	CancelledAt        *time.Time
	RefundAmount       *float64
	CancellationFee    *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelledBy returns true if the given user may cancel the booking.
// Owners cancel upcoming sessions; admins may also stop ongoing ones.
func (b *Booking) CanBeCancelledBy(userID uuid.UUID, isAdmin bool) bool {
	if b.Status == StatusUpcoming {
		return isAdmin || b.UserID == userID
	}
	if b.Status == StatusOngoing {
		return isAdmin
	}
	return false
}

// IsFullyPaid returns true if the paid amount covers the total
func (b *Booking) IsFullyPaid() bool {
	return b.AmountPaid >= b.TotalAmount
}

// Outstanding returns the remaining balance, clamped to zero so that an
// overpayment is never displayed as a negative amount.
func (b *Booking) Outstanding() float64 {
	return OutstandingBalance(b.TotalAmount, b.AmountPaid)
}

// EndTimeString returns the derived session end as "HH:MM:00"
func (b *Booking) EndTimeString() string {
	return b.StartTime.EndTimeString(b.DurationHours)
}

// BookingsFilter фильтр для выборки бронирований (админский список)
type BookingsFilter struct {
	StationID        *uuid.UUID     // Фильтр по станции (опционально)
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
