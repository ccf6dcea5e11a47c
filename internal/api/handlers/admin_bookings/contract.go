package admin_bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetWithFilter(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error)
	Update(ctx context.Context, bookingID uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *models.UpdateStatusRequest) error
	UpdatePayment(ctx context.Context, bookingID uuid.UUID, req *models.UpdatePaymentRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
