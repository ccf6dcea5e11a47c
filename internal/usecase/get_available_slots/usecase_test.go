package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	stationRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/station"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetActiveByStationAndDate(ctx context.Context, stationID uuid.UUID, date time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeStationRepo struct {
	station *domain.Station
	err     error
}

func (f *fakeStationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Station, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.station, nil
}

type fakeConfigProvider struct {
	config *domain.CentreConfig
	err    error
}

func (f *fakeConfigProvider) GetDomainCentreConfig(ctx context.Context) (*domain.CentreConfig, error) {
	return f.config, f.err
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

func newTestUseCase(
	bookings *fakeBookingRepo,
	stations *fakeStationRepo,
	configs *fakeConfigProvider,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookings, stations, configs, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func activeStation(id uuid.UUID) *domain.Station {
	return &domain.Station{
		ID:         id,
		Name:       "PC-01",
		Type:       domain.StationTypePC,
		HourlyRate: 120,
		Active:     true,
	}
}

func TestExecute_AllSlotsFree(t *testing.T) {
	stationID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeStationRepo{station: activeStation(stationID)},
		&fakeConfigProvider{config: testConfig()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{StationID: stationID, Date: date})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 12)
	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable, "slot %s", slot.StartTime)
	}
	assert.Equal(t, stationID, resp.StationID)
	assert.Equal(t, date, resp.Date)
}

func TestExecute_BookedSlotsMarkedBusy(t *testing.T) {
	stationID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{StartTime: "12:00", DurationHours: 2, Status: domain.StatusUpcoming},
		// Отмененное бронирование слоты не занимает
		{StartTime: "18:00", DurationHours: 2, Status: domain.StatusCancelled},
	}

	uc := newTestUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeStationRepo{station: activeStation(stationID)},
		&fakeConfigProvider{config: testConfig()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{StationID: stationID, Date: date})
	require.NoError(t, err)

	busy := make([]string, 0)
	for _, slot := range resp.Slots {
		if !slot.IsAvailable {
			busy = append(busy, string(slot.StartTime))
		}
	}
	assert.Equal(t, []string{"12:00", "13:00"}, busy)
}

func TestExecute_StationNotFound(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeStationRepo{err: stationRepo.ErrStationNotFound},
		&fakeConfigProvider{config: testConfig()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		StationID: uuid.New(),
		Date:      now.AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrStationNotFound)
}

func TestExecute_StationInactive(t *testing.T) {
	stationID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	station := activeStation(stationID)
	station.Active = false

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeStationRepo{station: station},
		&fakeConfigProvider{config: testConfig()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{StationID: stationID, Date: now.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrStationInactive)
}

func TestExecute_DateTooFarInFuture(t *testing.T) {
	stationID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeStationRepo{station: activeStation(stationID)},
		&fakeConfigProvider{config: testConfig()},
		now,
	)

	// Окно бронирования 30 дней, запрашиваем 31-й
	_, err := uc.Execute(context.Background(), &Request{StationID: stationID, Date: now.AddDate(0, 0, 31)})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeStationRepo{station: activeStation(uuid.New())},
		&fakeConfigProvider{config: testConfig()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{StationID: uuid.Nil, Date: now})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StationID: uuid.New()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StorageErrorIsInternal(t *testing.T) {
	stationID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{err: errors.New("connection refused")},
		&fakeStationRepo{station: activeStation(stationID)},
		&fakeConfigProvider{config: testConfig()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{StationID: stationID, Date: now.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrInternal)
}
