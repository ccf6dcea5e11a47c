package create_booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	"github.com/m04kA/GZ-BookingService/pkg/types"
)

func testConfig() *domain.CentreConfig {
	return &domain.CentreConfig{
		OpenTime:                "10:00",
		CloseTime:               "22:00",
		MaxDurationHours:        6,
		AdvanceBookingDays:      30,
		MinBookingNoticeMinutes: 30,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:        uuid.New(),
		StationID:     uuid.New(),
		Date:          time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:00",
		DurationHours: 2,
		UserCount:     2,
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *Request) {}},
		{name: "missing user", mutate: func(r *Request) { r.UserID = uuid.Nil }, wantErr: true},
		{name: "missing station", mutate: func(r *Request) { r.StationID = uuid.Nil }, wantErr: true},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: true},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: true},
		{name: "bad start time", mutate: func(r *Request) { r.StartTime = "25:00" }, wantErr: true},
		{name: "zero duration", mutate: func(r *Request) { r.DurationHours = 0 }, wantErr: true},
		{name: "duration above limit", mutate: func(r *Request) { r.DurationHours = 13 }, wantErr: true},
		{name: "zero players", mutate: func(r *Request) { r.UserCount = 0 }, wantErr: true},
		{name: "too many players", mutate: func(r *Request) { r.UserCount = 5 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// Прошедшая дата
	err := validateDate(now.AddDate(0, 0, -1), now, 30)
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Сегодня и последний день окна допустимы
	assert.NoError(t, validateDate(now, now, 30))
	assert.NoError(t, validateDate(now.AddDate(0, 0, 30), now, 30))

	// За пределами окна
	err = validateDate(now.AddDate(0, 0, 31), now, 30)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	// advanceBookingDays = 0 снимает ограничение
	assert.NoError(t, validateDate(now.AddDate(1, 0, 0), now, 0))
}

func TestValidateSessionWindow(t *testing.T) {
	config := testConfig()

	tests := []struct {
		name      string
		startTime types.TimeString
		duration  int
		wantErr   error
	}{
		{name: "fits exactly to closing", startTime: "20:00", duration: 2},
		{name: "opening slot", startTime: "10:00", duration: 1},
		{name: "before opening", startTime: "09:00", duration: 1, wantErr: ErrOutsideOperatingHours},
		{name: "ends after closing", startTime: "21:00", duration: 2, wantErr: ErrOutsideOperatingHours},
		{name: "off the slot grid", startTime: "10:30", duration: 1, wantErr: ErrSlotNotAligned},
		{name: "duration above centre limit", startTime: "10:00", duration: 7, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSessionWindow(tt.startTime, tt.duration, config)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBookingTime(t *testing.T) {
	now := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	// Завтрашняя дата не проверяется по уведомлению
	assert.NoError(t, validateBookingTime(tomorrow, "10:00", now, 30))

	// Сегодня: 14:15 и позже допустимо при уведомлении 30 минут
	assert.NoError(t, validateBookingTime(today, "15:00", now, 30))

	err := validateBookingTime(today, "14:00", now, 30)
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestHasOverlappingBooking(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "12:00", DurationHours: 2, Status: domain.StatusUpcoming},
		{StartTime: "16:00", DurationHours: 1, Status: domain.StatusCancelled},
	}

	// Пересечение с активным бронированием
	overlaps, err := hasOverlappingBooking("13:00", 2, bookings)
	assert.NoError(t, err)
	assert.True(t, overlaps)

	// Граничащий интервал не мешает
	overlaps, err = hasOverlappingBooking("14:00", 2, bookings)
	assert.NoError(t, err)
	assert.False(t, overlaps)

	// Отмененное бронирование слот не занимает
	overlaps, err = hasOverlappingBooking("16:00", 1, bookings)
	assert.NoError(t, err)
	assert.False(t, overlaps)
}
