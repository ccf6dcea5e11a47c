package bookings

import (
	"fmt"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	"github.com/m04kA/GZ-BookingService/pkg/types"
)

// validateSessionWindow проверяет, что сессия лежит в часах работы центра:
// время начала совпадает с сеткой часовых слотов, длительность не превышает
// лимит центра, и сессия заканчивается не позже закрытия. Те же правила,
// что и при создании бронирования - админское редактирование не может
// вывести сессию за пределы рабочего дня.
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
		return fmt.Errorf("%w: session starts before opening time", ErrInvalidInput)
	}

	if (startMinutes-openMinutes)%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: start time is not aligned to the slot grid", ErrInvalidInput)
	}

	if startMinutes+durationHours*60 > closeMinutes {
		return fmt.Errorf("%w: session ends after closing time", ErrInvalidInput)
	}

	return nil
}

// hasOverlappingBooking проверяет, пересекается ли новое время бронирования
// с другим активным бронированием станции. Само редактируемое бронирование
// и отмененные не учитываются; пересечение строгое - граничащие интервалы
// друг другу не мешают.
func hasOverlappingBooking(candidate *domain.Booking, bookings []*domain.Booking) bool {
	startMinutes, err := candidate.StartTime.MinutesFromMidnight()
	if err != nil {
		return false
	}
	endMinutes := startMinutes + candidate.DurationHours*60

	for _, other := range bookings {
		if other.ID == candidate.ID || !other.IsActive() {
			continue
		}

		otherStartMinutes, err := other.StartTime.MinutesFromMidnight()
		if err != nil {
			continue
		}
		otherEndMinutes := otherStartMinutes + other.DurationHours*60

		if otherStartMinutes < endMinutes && otherEndMinutes > startMinutes {
			return true
		}
	}

	return false
}
