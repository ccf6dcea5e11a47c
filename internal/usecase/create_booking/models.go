package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         uuid.UUID        // Владелец бронирования
	StationID      uuid.UUID        // ID станции
	Date           time.Time        // Дата сессии (без времени)
	StartTime      types.TimeString // Время начала ("HH:MM")
	DurationHours  int              // Длительность в часах
	UserCount      int              // Количество игроков
	AdvancePayment bool             // Выбрана ли предоплата 30%
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	StationID      uuid.UUID
	BookingDate    time.Time
	StartTime      types.TimeString
	EndTime        string // "HH:MM:00"
	DurationHours  int
	UserCount      int
	Status         string
	TotalAmount    float64
	AdvancePayment bool
	AdvanceAmount  float64
	AmountPaid     float64
	StationName    string
	StationType    string
	HourlyRate     float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
