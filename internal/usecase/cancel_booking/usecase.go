package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/booking"
)

// UseCase use case отмены бронирования с расчетом возврата
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отменяет бронирование. Сумма возврата пересчитывается
// сервером внутри транзакции - результат авторитетен и сохраняется
// вместе со статусом CANCELLED.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%s, user=%s, isAdmin=%t", req.BookingID, req.UserID, req.IsAdmin)

	if err := validateRequest(req.BookingID, req.UserID); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *Response
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelledBy(req.UserID, req.IsAdmin) {
			// Различаем "нельзя вообще" и "нельзя этому пользователю"
			if booking.UserID != req.UserID && !req.IsAdmin {
				return ErrAccessDenied
			}
			return ErrCannotCancel
		}

		quote := domain.ComputeRefund(booking.AmountPaid, booking.CreatedAt, now)

		if err := uc.bookingRepo.Cancel(txCtx, req.BookingID, req.CancellationReason, quote.Refund, quote.Fee); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		result = &Response{
			BookingID:       req.BookingID,
			Status:          string(domain.StatusCancelled),
			AmountPaid:      booking.AmountPaid,
			RefundAmount:    quote.Refund,
			CancellationFee: quote.Fee,
			CancelledAt:     now,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrAccessDenied) || errors.Is(err, ErrCannotCancel) {
			uc.logger.Warn("CancelBooking: booking=%s: %v", req.BookingID, err)
			return nil, err
		}
		uc.logger.Error("CancelBooking: transaction failed for booking=%s: %v", req.BookingID, err)
		return nil, err
	}

	uc.logger.Info("CancelBooking: cancelled booking=%s, refund=%.2f, fee=%.2f",
		req.BookingID, result.RefundAmount, result.CancellationFee)
	return result, nil
}

// Quote возвращает предварительный расчет возврата без отмены.
// Расчет справочный: при фактической отмене сервер считает заново.
func (uc *UseCase) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	uc.logger.Info("RefundQuote: booking=%s, user=%s", req.BookingID, req.UserID)

	if err := validateRequest(req.BookingID, req.UserID); err != nil {
		uc.logger.Warn("RefundQuote: validation failed: %v", err)
		return nil, err
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RefundQuote: booking=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RefundQuote: failed to get booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !req.IsAdmin && booking.UserID != req.UserID {
		uc.logger.Warn("RefundQuote: access denied for user=%s to booking=%s", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	quote := domain.ComputeRefund(booking.AmountPaid, booking.CreatedAt, uc.timeProvider.Now())

	return &QuoteResponse{
		BookingID:       req.BookingID,
		AmountPaid:      booking.AmountPaid,
		RefundAmount:    quote.Refund,
		CancellationFee: quote.Fee,
	}, nil
}

func validateRequest(bookingID, userID uuid.UUID) error {
	if bookingID == uuid.Nil {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if userID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	return nil
}
