package cancel_booking

import (
	"time"

	cancelBooking "github.com/m04kA/GZ-BookingService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model.
// Суммы возврата авторитетны - клиент показывает их как есть.
type CancelBookingResponse struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	AmountPaid      float64 `json:"amountPaid"`
	RefundAmount    float64 `json:"refundAmount"`
	CancellationFee float64 `json:"cancellationFee"`
	CancelledAt     string  `json:"cancelledAt"`
}

// RefundQuoteResponse предварительный расчет возврата
type RefundQuoteResponse struct {
	ID              string  `json:"id"`
	AmountPaid      float64 `json:"amountPaid"`
	RefundAmount    float64 `json:"refundAmount"`
	CancellationFee float64 `json:"cancellationFee"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:              resp.BookingID.String(),
		Status:          resp.Status,
		AmountPaid:      resp.AmountPaid,
		RefundAmount:    resp.RefundAmount,
		CancellationFee: resp.CancellationFee,
		CancelledAt:     resp.CancelledAt.Format(time.RFC3339),
	}
}

// FromQuoteResponse конвертирует расчет возврата в HTTP response
func FromQuoteResponse(resp *cancelBooking.QuoteResponse) *RefundQuoteResponse {
	return &RefundQuoteResponse{
		ID:              resp.BookingID.String(),
		AmountPaid:      resp.AmountPaid,
		RefundAmount:    resp.RefundAmount,
		CancellationFee: resp.CancellationFee,
	}
}
