package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GZ-BookingService/internal/service/stats/models"
)

type fakeBookingStats struct {
	aggregate *bookingRepo.SummaryAggregate
	payments  *domain.PaymentStats

	gotFrom *time.Time
	gotTo   *time.Time
}

func (f *fakeBookingStats) AggregateSummary(ctx context.Context, from, to *time.Time) (*bookingRepo.SummaryAggregate, error) {
	f.gotFrom = from
	f.gotTo = to
	return f.aggregate, nil
}

func (f *fakeBookingStats) AggregatePayments(ctx context.Context) (*domain.PaymentStats, error) {
	return f.payments, nil
}

type fakeStationRepo struct {
	count int64
}

func (f *fakeStationRepo) CountActive(ctx context.Context) (int64, error) {
	return f.count, nil
}

type fakeConfigProvider struct {
	config *domain.CentreConfig
}

func (f *fakeConfigProvider) GetDomainCentreConfig(ctx context.Context) (*domain.CentreConfig, error) {
	return f.config, nil
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

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestSummary_OccupancyRate(t *testing.T) {
	bookings := &fakeBookingStats{
		aggregate: &bookingRepo.SummaryAggregate{
			TotalBookings: 40,
			PaidBookings:  25,
			TotalRevenue:  28800,
			BookedHours:   100,
		},
	}
	svc := NewService(
		bookings,
		&fakeStationRepo{count: 5},
		&fakeConfigProvider{config: &domain.CentreConfig{OpenTime: "10:00", CloseTime: "22:00"}},
		&fakeTimeProvider{now: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)

	// Неделя: 5 станций x 12 часов x 7 дней = 420 станко-часов,
	// занято 100 -> 23.8%
	resp, err := svc.Summary(context.Background(), &models.SummaryRequest{
		StartDate: datePtr(2026, 3, 1),
		EndDate:   datePtr(2026, 3, 7),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(40), resp.TotalBookings)
	assert.Equal(t, int64(25), resp.PaidBookings)
	assert.Equal(t, 28800.0, resp.TotalRevenue)
	assert.Equal(t, 23.8, resp.OccupancyRate)
}

func TestSummary_NoStationsMeansZeroOccupancy(t *testing.T) {
	bookings := &fakeBookingStats{
		aggregate: &bookingRepo.SummaryAggregate{TotalBookings: 3, BookedHours: 6},
	}
	svc := NewService(
		bookings,
		&fakeStationRepo{count: 0},
		&fakeConfigProvider{config: &domain.CentreConfig{OpenTime: "10:00", CloseTime: "22:00"}},
		&fakeTimeProvider{now: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)

	resp, err := svc.Summary(context.Background(), &models.SummaryRequest{
		StartDate: datePtr(2026, 3, 1),
		EndDate:   datePtr(2026, 3, 7),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.OccupancyRate)
}

func TestSummary_DefaultPeriodIsLast30Days(t *testing.T) {
	bookings := &fakeBookingStats{aggregate: &bookingRepo.SummaryAggregate{}}
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	svc := NewService(
		bookings,
		&fakeStationRepo{count: 5},
		&fakeConfigProvider{config: &domain.CentreConfig{OpenTime: "10:00", CloseTime: "22:00"}},
		&fakeTimeProvider{now: now},
		nopLogger{},
	)

	_, err := svc.Summary(context.Background(), &models.SummaryRequest{})
	require.NoError(t, err)

	require.NotNil(t, bookings.gotFrom)
	require.NotNil(t, bookings.gotTo)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *bookings.gotTo)
	assert.Equal(t, time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), *bookings.gotFrom)
}

func TestSummary_InvalidPeriod(t *testing.T) {
	svc := NewService(
		&fakeBookingStats{},
		&fakeStationRepo{},
		&fakeConfigProvider{},
		&fakeTimeProvider{now: time.Now()},
		nopLogger{},
	)

	// Конец раньше начала
	_, err := svc.Summary(context.Background(), &models.SummaryRequest{
		StartDate: datePtr(2026, 3, 7),
		EndDate:   datePtr(2026, 3, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Половина диапазона
	_, err = svc.Summary(context.Background(), &models.SummaryRequest{
		StartDate: datePtr(2026, 3, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPayments(t *testing.T) {
	bookings := &fakeBookingStats{
		payments: &domain.PaymentStats{
			TotalAdvanceCollected: 4320,
			TotalRemaining:        10080,
			AdvanceBookingsCount:  20,
			TotalBookings:         35,
		},
	}
	svc := NewService(
		bookings,
		&fakeStationRepo{},
		&fakeConfigProvider{},
		&fakeTimeProvider{now: time.Now()},
		nopLogger{},
	)

	resp, err := svc.Payments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4320.0, resp.TotalAdvanceCollected)
	assert.Equal(t, 10080.0, resp.TotalRemaining)
	assert.Equal(t, int64(20), resp.AdvanceBookingsCount)
	assert.Equal(t, int64(35), resp.TotalBookings)
}
