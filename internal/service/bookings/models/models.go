package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID uuid.UUID `json:"userId"`
	Status *string   `json:"status,omitempty"`
}

// GetBookingsRequest запрос на получение бронирований с фильтрацией (админский)
type GetBookingsRequest struct {
	StationID        *uuid.UUID `json:"stationId,omitempty"`        // Фильтр по станции (опционально)
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StationID:        r.StationID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateBookingRequest запрос на обновление бронирования (админский).
// Меняются только переданные поля, стоимость пересчитывается.
type UpdateBookingRequest struct {
	StartTime     *string `json:"startTime,omitempty"`     // "HH:MM"
	DurationHours *int    `json:"durationHours,omitempty"` // Длительность в часах
	UserCount     *int    `json:"userCount,omitempty"`     // Количество игроков
}

// UpdateStatusRequest запрос на обновление статуса бронирования (админский)
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePaymentRequest запрос на обновление оплаты (админский)
type UpdatePaymentRequest struct {
	AmountPaid float64 `json:"amountPaid"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	StationID     uuid.UUID `json:"stationId"`
	BookingDate   string    `json:"bookingDate"` // "2026-03-15"
	StartTime     string    `json:"startTime"`   // "10:00"
	EndTime       string    `json:"endTime"`     // "12:00:00"
	DisplayTime   string    `json:"displayTime"` // "10:00 AM"
	DurationHours int       `json:"durationHours"`
	UserCount     int       `json:"userCount"`
	Status        string    `json:"status"`

	TotalAmount    float64 `json:"totalAmount"`
	AdvancePayment bool    `json:"advancePayment"`
	AdvanceAmount  float64 `json:"advanceAmount"`
	AmountPaid     float64 `json:"amountPaid"`
	Outstanding    float64 `json:"outstanding"`

	// Денормализованные данные станции
	StationName string  `json:"stationName"`
	StationType string  `json:"stationType"`
	HourlyRate  float64 `json:"hourlyRate"`

	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledAt        *string  `json:"cancelledAt,omitempty"` // ISO 8601 format
	RefundAmount       *float64 `json:"refundAmount,omitempty"`
	CancellationFee    *float64 `json:"cancellationFee,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		StationID:          b.StationID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTimeString(),
		DisplayTime:        b.StartTime.Format12Hour(),
		DurationHours:      b.DurationHours,
		UserCount:          b.UserCount,
		Status:             string(b.Status),
		TotalAmount:        b.TotalAmount,
		AdvancePayment:     b.AdvancePayment,
		AdvanceAmount:      b.AdvanceAmount,
		AmountPaid:         b.AmountPaid,
		Outstanding:        b.Outstanding(),
		StationName:        b.StationName,
		StationType:        string(b.StationType),
		HourlyRate:         b.HourlyRate,
		CancellationReason: b.CancellationReason,
		RefundAmount:       b.RefundAmount,
		CancellationFee:    b.CancellationFee,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusUpcoming,
		domain.StatusOngoing,
		domain.StatusEnded,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
