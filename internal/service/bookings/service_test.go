package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GZ-BookingService/internal/service/bookings/models"
	"github.com/m04kA/GZ-BookingService/pkg/ptr"
	"github.com/m04kA/GZ-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*domain.Booking

	updated *domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[uuid.UUID]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.StationID != nil && b.StationID != *filter.StationID {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	stored := *booking
	f.bookings[booking.ID] = &stored
	f.updated = &stored
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	f.bookings[id].Status = status
	return nil
}

func (f *fakeBookingRepo) UpdatePayment(ctx context.Context, id uuid.UUID, amountPaid float64) error {
	f.bookings[id].AmountPaid = amountPaid
	return nil
}

type fakeProfileRepo struct {
	adjustedID   uuid.UUID
	adjustedBy   int
	transactions []*domain.PointsTransaction
}

func (f *fakeProfileRepo) AdjustPoints(ctx context.Context, userID uuid.UUID, delta int) error {
	f.adjustedID = userID
	f.adjustedBy = delta
	return nil
}

func (f *fakeProfileRepo) AddTransaction(ctx context.Context, tx *domain.PointsTransaction) error {
	f.transactions = append(f.transactions, tx)
	return nil
}

type fakeConfigProvider struct {
	config *domain.CentreConfig
}

func (f *fakeConfigProvider) GetDomainCentreConfig(ctx context.Context) (*domain.CentreConfig, error) {
	return f.config, nil
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

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testConfig() *domain.CentreConfig {
	return &domain.CentreConfig{
		OpenTime:                "10:00",
		CloseTime:               "22:00",
		MaxDurationHours:        6,
		AdvanceBookingDays:      30,
		MinBookingNoticeMinutes: 30,
	}
}

func upcomingBooking(stationID uuid.UUID, start string, durationHours int) *domain.Booking {
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		StationID:     stationID,
		BookingDate:   date,
		StartTime:     types.TimeString(start),
		DurationHours: durationHours,
		UserCount:     2,
		Status:        domain.StatusUpcoming,
		HourlyRate:    120,
	}
}

func newTestService(repo *fakeBookingRepo) (*Service, *fakeProfileRepo) {
	profiles := &fakeProfileRepo{}
	svc := NewService(repo, profiles, &fakeConfigProvider{config: testConfig()}, fakeTxManager{}, nopLogger{})
	return svc, profiles
}

func TestUpdate_RejectsOverlapWithOtherBooking(t *testing.T) {
	stationID := uuid.New()
	existing := upcomingBooking(stationID, "12:00", 2)
	edited := upcomingBooking(stationID, "15:00", 2)

	repo := newFakeBookingRepo(existing, edited)
	svc, _ := newTestService(repo)

	// Перенос на время, занятое другим активным бронированием
	_, err := svc.Update(context.Background(), edited.ID, &models.UpdateBookingRequest{
		StartTime: ptr.Ptr("12:00"),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.updated)
	assert.Equal(t, types.TimeString("15:00"), repo.bookings[edited.ID].StartTime)
}

func TestUpdate_AllowsBorderingBooking(t *testing.T) {
	stationID := uuid.New()
	existing := upcomingBooking(stationID, "12:00", 2)
	edited := upcomingBooking(stationID, "16:00", 1)

	repo := newFakeBookingRepo(existing, edited)
	svc, _ := newTestService(repo)

	// Граничащий интервал 14:00-15:00 не конфликтует с 12:00-14:00
	resp, err := svc.Update(context.Background(), edited.ID, &models.UpdateBookingRequest{
		StartTime: ptr.Ptr("14:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:00"), repo.bookings[edited.ID].StartTime)
	assert.Equal(t, "14:00", resp.StartTime)
}

func TestUpdate_IgnoresCancelledNeighbour(t *testing.T) {
	stationID := uuid.New()
	cancelled := upcomingBooking(stationID, "12:00", 2)
	cancelled.Status = domain.StatusCancelled
	edited := upcomingBooking(stationID, "16:00", 1)

	repo := newFakeBookingRepo(cancelled, edited)
	svc, _ := newTestService(repo)

	_, err := svc.Update(context.Background(), edited.ID, &models.UpdateBookingRequest{
		StartTime: ptr.Ptr("12:00"),
	})
	require.NoError(t, err)
}

func TestUpdate_RejectsSessionOutsideOperatingHours(t *testing.T) {
	stationID := uuid.New()
	edited := upcomingBooking(stationID, "14:00", 2)

	repo := newFakeBookingRepo(edited)
	svc, _ := newTestService(repo)

	// 21:00 + 2 часа заканчивается после закрытия в 22:00
	_, err := svc.Update(context.Background(), edited.ID, &models.UpdateBookingRequest{
		StartTime: ptr.Ptr("21:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Начало раньше открытия
	_, err = svc.Update(context.Background(), edited.ID, &models.UpdateBookingRequest{
		StartTime: ptr.Ptr("09:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Вне сетки часовых слотов
	_, err = svc.Update(context.Background(), edited.ID, &models.UpdateBookingRequest{
		StartTime: ptr.Ptr("14:30"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_RejectsDurationAboveCentreLimit(t *testing.T) {
	stationID := uuid.New()
	edited := upcomingBooking(stationID, "10:00", 2)

	repo := newFakeBookingRepo(edited)
	svc, _ := newTestService(repo)

	// Доменный потолок 12 часов, но лимит центра - 6
	_, err := svc.Update(context.Background(), edited.ID, &models.UpdateBookingRequest{
		DurationHours: ptr.Ptr(7),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.updated)
}

func TestUpdate_RecomputesTotalsAndBoundaries(t *testing.T) {
	stationID := uuid.New()
	edited := upcomingBooking(stationID, "14:00", 2)

	repo := newFakeBookingRepo(edited)
	svc, _ := newTestService(repo)

	resp, err := svc.Update(context.Background(), edited.ID, &models.UpdateBookingRequest{
		StartTime:     ptr.Ptr("16:00"),
		DurationHours: ptr.Ptr(3),
		UserCount:     ptr.Ptr(3),
	})
	require.NoError(t, err)

	// 120 руп/час x 3 часа x 3 игрока = 1080, предоплата 30% = 324
	assert.Equal(t, 1080.0, resp.TotalAmount)
	assert.Equal(t, 324.0, resp.AdvanceAmount)

	stored := repo.bookings[edited.ID]
	assert.Equal(t, time.Date(2026, 3, 20, 16, 0, 0, 0, time.UTC), stored.StartAt)
	assert.Equal(t, time.Date(2026, 3, 20, 19, 0, 0, 0, time.UTC), stored.EndAt)
}

func TestUpdate_NotEditableWhenNotUpcoming(t *testing.T) {
	stationID := uuid.New()
	edited := upcomingBooking(stationID, "14:00", 2)
	edited.Status = domain.StatusOngoing

	repo := newFakeBookingRepo(edited)
	svc, _ := newTestService(repo)

	_, err := svc.Update(context.Background(), edited.ID, &models.UpdateBookingRequest{
		StartTime: ptr.Ptr("16:00"),
	})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestUpdatePayment_AwardsPointsOnceOnFullPayment(t *testing.T) {
	stationID := uuid.New()
	booking := upcomingBooking(stationID, "14:00", 2)
	booking.TotalAmount = 480
	booking.AmountPaid = 144

	repo := newFakeBookingRepo(booking)
	svc, profiles := newTestService(repo)

	resp, err := svc.UpdatePayment(context.Background(), booking.ID, &models.UpdatePaymentRequest{AmountPaid: 480})
	require.NoError(t, err)

	assert.Equal(t, 480.0, resp.AmountPaid)
	assert.Equal(t, 480, profiles.adjustedBy)
	assert.Equal(t, booking.UserID, profiles.adjustedID)
	require.Len(t, profiles.transactions, 1)
	assert.Equal(t, domain.PointsEarned, profiles.transactions[0].Type)

	// Повторная запись той же суммы баллы не начисляет
	profiles.transactions = nil
	profiles.adjustedBy = 0
	_, err = svc.UpdatePayment(context.Background(), booking.ID, &models.UpdatePaymentRequest{AmountPaid: 480})
	require.NoError(t, err)
	assert.Equal(t, 0, profiles.adjustedBy)
	assert.Empty(t, profiles.transactions)
}
