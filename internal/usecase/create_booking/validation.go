package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	"github.com/m04kA/GZ-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.StationID == uuid.Nil {
		return fmt.Errorf("%w: stationID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationHours < domain.MinDurationHours || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration must be between %d and %d hours",
			ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}

	if req.UserCount < domain.MinUserCount || req.UserCount > domain.MaxUserCount {
		return fmt.Errorf("%w: user count must be between %d and %d",
			ErrInvalidInput, domain.MinUserCount, domain.MaxUserCount)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateSessionWindow проверяет, что сессия лежит в часах работы центра:
// время начала совпадает с сеткой часовых слотов, длительность не превышает
// лимит, и сессия заканчивается не позже закрытия. Из-за этой проверки
// переход сессии через полночь для сохраненных бронирований недостижим.
func validateSessionWindow(startTime types.TimeString, durationHours int, config *domain.CentreConfig) error {
	startMinutes, err := startTime.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	openMinutes, err := config.OpenTime.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: invalid centre open time: %v", ErrInternal, err)
	}
	closeMinutes, err := config.CloseTime.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: invalid centre close time: %v", ErrInternal, err)
	}

	if durationHours > config.MaxDurationHours {
		return fmt.Errorf("%w: duration exceeds the %d hour limit", ErrInvalidInput, config.MaxDurationHours)
	}

	if startMinutes < openMinutes {
		return ErrOutsideOperatingHours
	}

	if (startMinutes-openMinutes)%domain.SlotDurationMinutes != 0 {
		return ErrSlotNotAligned
	}

	endMinutes := startMinutes + durationHours*60
	if endMinutes > closeMinutes {
		return ErrOutsideOperatingHours
	}

	return nil
}

// validateBookingTime проверяет, что бронирование не нарушает minBookingNoticeMinutes
func validateBookingTime(
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minBookingNoticeMinutes int,
) error {
	// Если дата бронирования не сегодня, проверка не нужна
	if !isSameDay(bookingDate, now) {
		return nil
	}

	startMinutes, err := startTime.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	if startMinutes < nowMinutes+minBookingNoticeMinutes {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minBookingNoticeMinutes)
	}

	return nil
}

// hasOverlappingBooking проверяет, пересекается ли запрошенный интервал
// с активным бронированием. Пересечение строгое: интервалы, граничащие
// по времени, друг другу не мешают.
func hasOverlappingBooking(
	startTime types.TimeString,
	durationHours int,
	bookings []*domain.Booking,
) (bool, error) {
	startMinutes, err := startTime.MinutesFromMidnight()
	if err != nil {
		return false, err
	}
	endMinutes := startMinutes + durationHours*60

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingStartMinutes, err := booking.StartTime.MinutesFromMidnight()
		if err != nil {
			continue
		}
		bookingEndMinutes := bookingStartMinutes + booking.DurationHours*60

		if bookingStartMinutes < endMinutes && bookingEndMinutes > startMinutes {
			return true, nil
		}
	}

	return false, nil
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
