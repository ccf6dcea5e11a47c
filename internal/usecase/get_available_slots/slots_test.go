package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestGenerateTimeSlots_FutureDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(testConfig(), futureDate, now)
	require.NoError(t, err)

	// 10:00 - 22:00 даёт 12 часовых слотов, последний начинается в 21:00
	require.Len(t, slots, 12)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("21:00"), slots[11])
}

func TestGenerateTimeSlots_PastDateIsEmpty(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	pastDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(testConfig(), pastDate, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_TodayFiltersByNotice(t *testing.T) {
	// Сейчас 13:45, уведомление 30 минут: первый допустимый слот 14:15,
	// по часовой сетке это 15:00
	now := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(testConfig(), today, now)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("15:00"), slots[0])
	assert.Equal(t, types.TimeString("21:00"), slots[len(slots)-1])
}

func TestGenerateTimeSlots_TodayAfterClosing(t *testing.T) {
	now := time.Date(2026, 3, 15, 22, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(testConfig(), today, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestMarkAvailability(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	futureDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(testConfig(), futureDate, now)
	require.NoError(t, err)
	require.Len(t, slots, 12)

	// Бронирование 11:00-14:00 занимает три слота
	bookings := []*domain.Booking{
		{StartTime: "11:00", DurationHours: 3, Status: domain.StatusUpcoming},
	}

	marked := markAvailability(slots, bookings)
	require.Len(t, marked, 12)

	busy := 0
	for _, slot := range marked {
		if !slot.IsAvailable {
			busy++
		}
	}
	assert.Equal(t, 3, busy)

	byStart := make(map[types.TimeString]Slot)
	for _, slot := range marked {
		byStart[slot.StartTime] = slot
	}
	assert.True(t, byStart["10:00"].IsAvailable)
	assert.False(t, byStart["11:00"].IsAvailable)
	assert.False(t, byStart["12:00"].IsAvailable)
	assert.False(t, byStart["13:00"].IsAvailable)
	// Слот, начинающийся ровно в момент окончания бронирования, свободен
	assert.True(t, byStart["14:00"].IsAvailable)

	assert.Equal(t, "10:00 AM", byStart["10:00"].DisplayTime)
	assert.Equal(t, "2:00 PM", byStart["14:00"].DisplayTime)
}

func TestHasOverlappingBooking_BoundariesDoNotConflict(t *testing.T) {
	// Слот 11:00-12:00
	slot := types.TimeString("11:00")

	tests := []struct {
		name    string
		booking *domain.Booking
		want    bool
	}{
		{
			name:    "booking ends at slot start",
			booking: &domain.Booking{StartTime: "10:00", DurationHours: 1, Status: domain.StatusUpcoming},
			want:    false,
		},
		{
			name:    "booking starts at slot end",
			booking: &domain.Booking{StartTime: "12:00", DurationHours: 2, Status: domain.StatusUpcoming},
			want:    false,
		},
		{
			name:    "booking covers slot",
			booking: &domain.Booking{StartTime: "10:00", DurationHours: 3, Status: domain.StatusUpcoming},
			want:    true,
		},
		{
			name:    "cancelled booking does not occupy slot",
			booking: &domain.Booking{StartTime: "10:00", DurationHours: 3, Status: domain.StatusCancelled},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasOverlappingBooking(slot, []*domain.Booking{tt.booking})
			assert.Equal(t, tt.want, got)
		})
	}
}
