package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	cancelledID uuid.UUID
	reason      string
	refund      float64
	fee         float64
	cancelErr   error
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id uuid.UUID, reason string, refund, fee float64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = id
	f.reason = reason
	f.refund = refund
	f.fee = fee
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func upcomingBooking(ownerID uuid.UUID, createdAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:         uuid.New(),
		UserID:     ownerID,
		Status:     domain.StatusUpcoming,
		AmountPaid: 216,
		CreatedAt:  createdAt,
	}
}

func TestExecute_FullRefundWithinGracePeriod(t *testing.T) {
	ownerID := uuid.New()
	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	booking := upcomingBooking(ownerID, createdAt)

	repo := &fakeBookingRepo{booking: booking}
	uc := newTestUseCase(repo, createdAt.Add(30*time.Minute))

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:          booking.ID,
		UserID:             ownerID,
		CancellationReason: "changed plans",
	})
	require.NoError(t, err)

	assert.Equal(t, 216.0, resp.RefundAmount)
	assert.Equal(t, 0.0, resp.CancellationFee)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	// Сохраненные суммы совпадают с возвращенными
	assert.Equal(t, booking.ID, repo.cancelledID)
	assert.Equal(t, "changed plans", repo.reason)
	assert.Equal(t, resp.RefundAmount, repo.refund)
	assert.Equal(t, resp.CancellationFee, repo.fee)
}

func TestExecute_FeeAfterGracePeriod(t *testing.T) {
	ownerID := uuid.New()
	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	booking := upcomingBooking(ownerID, createdAt)

	repo := &fakeBookingRepo{booking: booking}
	uc := newTestUseCase(repo, createdAt.Add(2*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: booking.ID,
		UserID:    ownerID,
	})
	require.NoError(t, err)

	// 5% от уплаченных 216 = 10.80
	assert.Equal(t, 10.8, resp.CancellationFee)
	assert.Equal(t, 205.2, resp.RefundAmount)
	assert.Equal(t, resp.RefundAmount, repo.refund)
	assert.Equal(t, resp.CancellationFee, repo.fee)
}

func TestExecute_AccessDeniedForStranger(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	booking := upcomingBooking(uuid.New(), createdAt)

	repo := &fakeBookingRepo{booking: booking}
	uc := newTestUseCase(repo, createdAt.Add(time.Minute))

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: booking.ID,
		UserID:    uuid.New(),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, uuid.Nil, repo.cancelledID)
}

func TestExecute_OwnerCannotCancelOngoing(t *testing.T) {
	ownerID := uuid.New()
	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	booking := upcomingBooking(ownerID, createdAt)
	booking.Status = domain.StatusOngoing

	repo := &fakeBookingRepo{booking: booking}
	uc := newTestUseCase(repo, createdAt.Add(time.Minute))

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: booking.ID,
		UserID:    ownerID,
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestExecute_AdminCancelsOngoing(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	booking := upcomingBooking(uuid.New(), createdAt)
	booking.Status = domain.StatusOngoing

	repo := &fakeBookingRepo{booking: booking}
	uc := newTestUseCase(repo, createdAt.Add(time.Minute))

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: booking.ID,
		UserID:    uuid.New(),
		IsAdmin:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, booking.ID, repo.cancelledID)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(repo, time.Now())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: uuid.New(),
		UserID:    uuid.New(),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestQuote_DoesNotCancel(t *testing.T) {
	ownerID := uuid.New()
	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	booking := upcomingBooking(ownerID, createdAt)

	repo := &fakeBookingRepo{booking: booking}
	uc := newTestUseCase(repo, createdAt.Add(3*time.Hour))

	resp, err := uc.Quote(context.Background(), &QuoteRequest{
		BookingID: booking.ID,
		UserID:    ownerID,
	})
	require.NoError(t, err)

	assert.Equal(t, 216.0, resp.AmountPaid)
	assert.Equal(t, 10.8, resp.CancellationFee)
	assert.Equal(t, 205.2, resp.RefundAmount)

	// Расчет справочный, бронирование остается активным
	assert.Equal(t, uuid.Nil, repo.cancelledID)
}

func TestQuote_AccessDenied(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	booking := upcomingBooking(uuid.New(), createdAt)

	repo := &fakeBookingRepo{booking: booking}
	uc := newTestUseCase(repo, createdAt)

	_, err := uc.Quote(context.Background(), &QuoteRequest{
		BookingID: booking.ID,
		UserID:    uuid.New(),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
