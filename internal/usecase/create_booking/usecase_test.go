package create_booking

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
	identityClient "github.com/m04kA/GZ-BookingService/internal/integrations/identity"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	filterErr error
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *booking
	stored.ID = uuid.New()
	stored.CreatedAt = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	return f.existing, nil
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

type fakeIdentityClient struct {
	user *identityClient.User
	err  error
}

func (f *fakeIdentityClient) GetUserWithGracefulDegradation(ctx context.Context, userID uuid.UUID) (*identityClient.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

// fakeTxManager выполняет функцию без транзакции
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

type testEnv struct {
	bookings *fakeBookingRepo
	stations *fakeStationRepo
	configs  *fakeConfigProvider
	identity *fakeIdentityClient
	uc       *UseCase
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		bookings: &fakeBookingRepo{},
		stations: &fakeStationRepo{},
		configs:  &fakeConfigProvider{config: testConfig()},
		identity: &fakeIdentityClient{},
	}
	env.uc = NewUseCase(env.bookings, env.stations, env.configs, env.identity, fakeTxManager{}, nopLogger{})
	env.uc.timeProvider = &fakeTimeProvider{now: now}
	return env
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	stationID := uuid.New()
	env.stations.station = &domain.Station{
		ID:         stationID,
		Name:       "PC-01",
		Type:       domain.StationTypePC,
		HourlyRate: 120,
		Active:     true,
	}

	userID := uuid.New()
	env.identity.user = &identityClient.User{ID: userID, Email: "player@example.com"}

	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	resp, err := env.uc.Execute(context.Background(), &Request{
		UserID:         userID,
		StationID:      stationID,
		Date:           date,
		StartTime:      "14:00",
		DurationHours:  2,
		UserCount:      3,
		AdvancePayment: true,
	})
	require.NoError(t, err)

	// 120 x 2 часа x 3 игрока = 720, предоплата 30% = 216
	assert.Equal(t, 720.0, resp.TotalAmount)
	assert.Equal(t, 216.0, resp.AdvanceAmount)
	assert.Equal(t, 0.0, resp.AmountPaid)
	assert.True(t, resp.AdvancePayment)
	assert.Equal(t, string(domain.StatusUpcoming), resp.Status)
	assert.Equal(t, "16:00:00", resp.EndTime)
	assert.Equal(t, "PC-01", resp.StationName)
	assert.Equal(t, "PC", resp.StationType)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	// Абсолютные границы сессии считаются от даты и времени начала
	require.NotNil(t, env.bookings.created)
	assert.Equal(t, time.Date(2026, 3, 20, 14, 0, 0, 0, time.UTC), env.bookings.created.StartAt)
	assert.Equal(t, time.Date(2026, 3, 20, 16, 0, 0, 0, time.UTC), env.bookings.created.EndAt)
}

func TestExecute_SlotTaken(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	stationID := uuid.New()
	env.stations.station = &domain.Station{ID: stationID, Name: "PS5-01", Type: domain.StationTypePS5, HourlyRate: 150, Active: true}
	env.identity.user = &identityClient.User{ID: uuid.New()}
	env.bookings.existing = []*domain.Booking{
		{StartTime: "13:00", DurationHours: 2, Status: domain.StatusUpcoming},
	}

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:        uuid.New(),
		StationID:     stationID,
		Date:          time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:00",
		DurationHours: 2,
		UserCount:     1,
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, env.bookings.created)
}

func TestExecute_UserNotFound(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)
	env.identity.err = identityClient.ErrUserNotFound

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:        uuid.New(),
		StationID:     uuid.New(),
		Date:          time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:00",
		DurationHours: 1,
		UserCount:     1,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_IdentityDegradedProceeds(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	stationID := uuid.New()
	env.stations.station = &domain.Station{ID: stationID, Name: "PC-02", Type: domain.StationTypePC, HourlyRate: 100, Active: true}
	// Недоступность IdentityService бронирование не блокирует
	env.identity.err = identityClient.ErrServiceDegraded

	resp, err := env.uc.Execute(context.Background(), &Request{
		UserID:        uuid.New(),
		StationID:     stationID,
		Date:          time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		DurationHours: 1,
		UserCount:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, resp.TotalAmount)
}

func TestExecute_StationNotFound(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)
	env.identity.user = &identityClient.User{ID: uuid.New()}
	env.stations.err = stationRepo.ErrStationNotFound

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:        uuid.New(),
		StationID:     uuid.New(),
		Date:          time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:00",
		DurationHours: 1,
		UserCount:     1,
	})
	assert.ErrorIs(t, err, ErrStationNotFound)
}

func TestExecute_StationInactive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)
	env.identity.user = &identityClient.User{ID: uuid.New()}
	env.stations.station = &domain.Station{ID: uuid.New(), Active: false}

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:        uuid.New(),
		StationID:     uuid.New(),
		Date:          time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:00",
		DurationHours: 1,
		UserCount:     1,
	})
	assert.ErrorIs(t, err, ErrStationInactive)
}

func TestExecute_TooLateToBookToday(t *testing.T) {
	now := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)
	env := newTestEnv(now)
	env.identity.user = &identityClient.User{ID: uuid.New()}
	env.stations.station = &domain.Station{ID: uuid.New(), Name: "PC-01", Type: domain.StationTypePC, HourlyRate: 120, Active: true}

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:        uuid.New(),
		StationID:     env.stations.station.ID,
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:00",
		DurationHours: 1,
		UserCount:     1,
	})
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_StorageErrorIsInternal(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)
	env.identity.user = &identityClient.User{ID: uuid.New()}
	env.stations.station = &domain.Station{ID: uuid.New(), Name: "PC-01", Type: domain.StationTypePC, HourlyRate: 120, Active: true}
	env.bookings.filterErr = errors.New("connection refused")

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:        uuid.New(),
		StationID:     env.stations.station.ID,
		Date:          time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:00",
		DurationHours: 1,
		UserCount:     1,
	})
	assert.ErrorIs(t, err, ErrInternal)
}
