package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	stationRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/station"
	identityClient "github.com/m04kA/GZ-BookingService/internal/integrations/identity"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	stationRepo    StationRepository
	configSource   CentreConfigProvider
	identityClient IdentityClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	stationRepo StationRepository,
	configSource CentreConfigProvider,
	identityClient IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		stationRepo:    stationRepo,
		configSource:   configSource,
		identityClient: identityClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, station=%s, date=%s, time=%s, duration=%dh, players=%d",
		req.UserID, req.StationID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours, req.UserCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Сверяем пользователя с IdentityService.
	// При недоступности сервиса бронирование не блокируем
	if _, err := uc.identityClient.GetUserWithGracefulDegradation(ctx, req.UserID); err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		if !errors.Is(err, identityClient.ErrServiceDegraded) {
			uc.logger.Error("CreateBooking: identity check failed for user id=%s: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: identity check failed: %v", ErrInternal, err)
		}
		uc.logger.Warn("CreateBooking: identity service degraded, proceeding for user id=%s", req.UserID)
	}

	// 3. Получаем станцию
	station, err := uc.stationRepo.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("CreateBooking: station id=%s not found", req.StationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("CreateBooking: failed to get station id=%s: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}
	if !station.IsBookable() {
		uc.logger.Warn("CreateBooking: station id=%s is inactive", req.StationID)
		return nil, ErrStationInactive
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем настройки центра
		config, err := uc.configSource.GetDomainCentreConfig(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get centre config: %v", err)
			return fmt.Errorf("%w: failed to get centre config: %v", ErrInternal, err)
		}

		// 4.2. Валидация даты с учетом окна предварительного бронирования
		if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 4.3. Сессия должна лежать в часах работы центра и на сетке слотов
		if err := validateSessionWindow(req.StartTime, req.DurationHours, config); err != nil {
			uc.logger.Warn("CreateBooking: session window validation failed: %v", err)
			return err
		}

		// 4.4. Валидация времени бронирования (minBookingNoticeMinutes)
		if err := validateBookingTime(req.Date, req.StartTime, now, config.MinBookingNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
			return err
		}

		// 4.5. Читаем активные бронирования станции на дату с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			StationID: &req.StationID,
			StartDate: &req.Date,
			EndDate:   &req.Date,
		}

		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.6. Станция вмещает одну сессию - любое пересечение занимает слот
		overlaps, err := hasOverlappingBooking(req.StartTime, req.DurationHours, bookings)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to check overlapping bookings: %v", ErrInternal, err)
		}
		if overlaps {
			uc.logger.Warn("CreateBooking: slot %s on station=%s is taken", req.StartTime, req.StationID)
			return ErrSlotNotAvailable
		}

		// 4.7. Считаем стоимость и абсолютные границы сессии
		total := domain.BookingTotal(station.HourlyRate, req.DurationHours, req.UserCount)
		advance := domain.AdvanceAmount(total)

		startMinutes, err := req.StartTime.MinutesFromMidnight()
		if err != nil {
			return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}
		dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
		startAt := dayStart.Add(time.Duration(startMinutes) * time.Minute)

		booking := &domain.Booking{
			UserID:         req.UserID,
			StationID:      req.StationID,
			BookingDate:    req.Date,
			StartTime:      req.StartTime,
			DurationHours:  req.DurationHours,
			UserCount:      req.UserCount,
			StartAt:        startAt,
			EndAt:          startAt.Add(time.Duration(req.DurationHours) * time.Hour),
			TotalAmount:    total,
			AdvancePayment: req.AdvancePayment,
			AdvanceAmount:  advance,
			AmountPaid:     0,
			Status:         domain.StatusUpcoming,
			// Денормализация данных станции
			StationName: station.Name,
			StationType: station.Type,
			HourlyRate:  station.HourlyRate,
		}

		// 4.8. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%.2f, advance=%.2f",
		result.ID, result.TotalAmount, result.AdvanceAmount)

	return &Response{
		ID:             result.ID,
		UserID:         result.UserID,
		StationID:      result.StationID,
		BookingDate:    result.BookingDate,
		StartTime:      result.StartTime,
		EndTime:        result.EndTimeString(),
		DurationHours:  result.DurationHours,
		UserCount:      result.UserCount,
		Status:         string(result.Status),
		TotalAmount:    result.TotalAmount,
		AdvancePayment: result.AdvancePayment,
		AdvanceAmount:  result.AdvanceAmount,
		AmountPaid:     result.AmountPaid,
		StationName:    result.StationName,
		StationType:    string(result.StationType),
		HourlyRate:     result.HourlyRate,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
