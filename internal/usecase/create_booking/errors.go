package create_booking

import "errors"

var (
	// ErrStationNotFound возвращается, когда станция не найдена
	ErrStationNotFound = errors.New("station not found")

	// ErrStationInactive возвращается, когда станция выведена из эксплуатации
	ErrStationInactive = errors.New("station is not available for booking")

	// ErrUserNotFound возвращается, когда пользователь не найден в IdentityService
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrTooLateToBook возвращается, когда нарушено минимальное время до начала
	ErrTooLateToBook = errors.New("too late to book this slot")

	// ErrOutsideOperatingHours возвращается, когда сессия не помещается
	// в часы работы центра
	ErrOutsideOperatingHours = errors.New("booking is outside operating hours")

	// ErrSlotNotAligned возвращается, когда время начала не совпадает
	// с сеткой часовых слотов
	ErrSlotNotAligned = errors.New("start time is not aligned to the slot grid")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
