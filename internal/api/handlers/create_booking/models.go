package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	createBooking "github.com/m04kA/GZ-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/GZ-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StationID      string `json:"stationId"`
	BookingDate    string `json:"bookingDate"` // "2026-09-15"
	StartTime      string `json:"startTime"`   // "10:00"
	DurationHours  int    `json:"durationHours"`
	UserCount      int    `json:"userCount"`
	AdvancePayment bool   `json:"advancePayment"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	StationID      string  `json:"stationId"`
	BookingDate    string  `json:"bookingDate"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	DurationHours  int     `json:"durationHours"`
	UserCount      int     `json:"userCount"`
	Status         string  `json:"status"`
	TotalAmount    float64 `json:"totalAmount"`
	AdvancePayment bool    `json:"advancePayment"`
	AdvanceAmount  float64 `json:"advanceAmount"`
	AmountPaid     float64 `json:"amountPaid"`
	StationName    string  `json:"stationName"`
	StationType    string  `json:"stationType"`
	HourlyRate     float64 `json:"hourlyRate"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID uuid.UUID) (*createBooking.Request, error) {
	stationID, err := uuid.Parse(r.StationID)
	if err != nil {
		return nil, err
	}

	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:         userID,
		StationID:      stationID,
		Date:           bookingDate,
		StartTime:      startTime,
		DurationHours:  r.DurationHours,
		UserCount:      r.UserCount,
		AdvancePayment: r.AdvancePayment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID.String(),
		UserID:         resp.UserID.String(),
		StationID:      resp.StationID.String(),
		BookingDate:    resp.BookingDate.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime,
		DurationHours:  resp.DurationHours,
		UserCount:      resp.UserCount,
		Status:         resp.Status,
		TotalAmount:    resp.TotalAmount,
		AdvancePayment: resp.AdvancePayment,
		AdvanceAmount:  resp.AdvanceAmount,
		AmountPaid:     resp.AmountPaid,
		StationName:    resp.StationName,
		StationType:    resp.StationType,
		HourlyRate:     resp.HourlyRate,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
