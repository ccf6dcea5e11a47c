package get_available_slots

import (
	"time"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	"github.com/m04kA/GZ-BookingService/pkg/types"
)

// generateTimeSlots генерирует список часовых слотов на день.
// Слоты идут с открытия центра с шагом в час; слот, не помещающийся
// до закрытия, не создается. Для сегодняшней даты слоты раньше
// текущего времени плюс минимального уведомления отфильтровываются.
func generateTimeSlots(
	config *domain.CentreConfig,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	// Прошедшие даты остаются без слотов
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	openMinutes, err := config.OpenTime.MinutesFromMidnight()
	if err != nil {
		return nil, err
	}
	closeMinutes, err := config.CloseTime.MinutesFromMidnight()
	if err != nil {
		return nil, err
	}

	// Генерируем слоты в минутах от полуночи, чтобы не зависеть
	// от суточного переноса при арифметике со временем
	allSlots := make([]types.TimeString, 0)
	for start := openMinutes; start+domain.SlotDurationMinutes <= closeMinutes; start += domain.SlotDurationMinutes {
		allSlots = append(allSlots, types.FromMinutes(start))
	}

	// На будущие даты доступны все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Сегодня: отсекаем слоты раньше минимально допустимого времени
	nowMinutes := now.Hour()*60 + now.Minute()
	minAllowedMinutes := nowMinutes + config.MinBookingNoticeMinutes

	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		slotMinutes, err := slot.MinutesFromMidnight()
		if err != nil {
			return nil, err
		}
		if slotMinutes >= minAllowedMinutes {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// markAvailability помечает каждый слот свободным или занятым.
// Слот занят, когда с ним пересекается активное бронирование.
func markAvailability(slots []types.TimeString, bookings []*domain.Booking) []Slot {
	result := make([]Slot, len(slots))

	for i, slotStart := range slots {
		result[i] = Slot{
			StartTime:   slotStart,
			DisplayTime: slotStart.Format12Hour(),
			IsAvailable: !hasOverlappingBooking(slotStart, bookings),
		}
	}

	return result
}

// hasOverlappingBooking проверяет, пересекается ли слот с активным бронированием.
// Пересечение строгое: бронирование, заканчивающееся ровно в начале слота
// (или начинающееся ровно в его конце), слот не занимает.
//
// Примеры для слота 11:00-12:00:
// - бронирование 10:00-11:30 → занят (пересечение 11:00-11:30)
// - бронирование 10:00-11:00 → свободен (граничат)
// - бронирование 12:00-14:00 → свободен (граничат)
func hasOverlappingBooking(slotStart types.TimeString, bookings []*domain.Booking) bool {
	slotStartMinutes, err := slotStart.MinutesFromMidnight()
	if err != nil {
		return false
	}
	slotEndMinutes := slotStartMinutes + domain.SlotDurationMinutes

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingStartMinutes, err := booking.StartTime.MinutesFromMidnight()
		if err != nil {
			continue
		}
		bookingEndMinutes := bookingStartMinutes + booking.DurationHours*60

		// Интервалы пересекаются, только если начало бронирования
		// строго раньше конца слота и конец строго позже начала
		if bookingStartMinutes < slotEndMinutes && bookingEndMinutes > slotStartMinutes {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
