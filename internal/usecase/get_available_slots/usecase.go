package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	stationRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/station"
)

// UseCase use case для получения доступных слотов станции на дату
type UseCase struct {
	bookingRepo  BookingRepository
	stationRepo  StationRepository
	configSource CentreConfigProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	stationRepo StationRepository,
	configSource CentreConfigProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		stationRepo:  stationRepo,
		configSource: configSource,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: station=%s, date=%s",
		req.StationID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Проверяем станцию
	station, err := uc.stationRepo.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("GetAvailableSlots: station id=%s not found", req.StationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get station id=%s: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}
	if !station.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: station id=%s is inactive", req.StationID)
		return nil, ErrStationInactive
	}

	// 3. Получаем настройки центра
	config, err := uc.configSource.GetDomainCentreConfig(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get centre config: %v", err)
		return nil, fmt.Errorf("%w: failed to get centre config: %v", ErrInternal, err)
	}

	// 4. Валидация даты с учетом окна предварительного бронирования
	if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Генерируем часовые слоты
	timeSlots, err := generateTimeSlots(config, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 6. Получаем активные бронирования станции на эту дату.
	// Ошибка хранилища - это ошибка, а не "нет слотов"
	bookings, err := uc.bookingRepo.GetActiveByStationAndDate(ctx, req.StationID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Помечаем занятость каждого слота
	slots := markAvailability(timeSlots, bookings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for station=%s, date=%s",
		len(slots), req.StationID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		StationID: req.StationID,
		Slots:     slots,
	}, nil
}
