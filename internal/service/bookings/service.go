package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GZ-BookingService/internal/service/bookings/models"
	"github.com/m04kA/GZ-BookingService/pkg/types"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	profileRepo  ProfileRepository
	configSource CentreConfigProvider
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	profileRepo ProfileRepository,
	configSource CentreConfigProvider,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		profileRepo:  profileRepo,
		configSource: configSource,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, админ - любое
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу; без фильтра отменённые не включаются
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetWithFilter получает бронирования с гибкой фильтрацией (админский список)
// Поддерживает фильтрацию по станции, периоду, статусу и включению отменённых
func (s *Service) GetWithFilter(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "GetWithFilter: fetching bookings"
	if req.StationID != nil {
		logMsg += fmt.Sprintf(", station=%s", *req.StationID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetWithFilter: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetWithFilter: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWithFilter - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWithFilter: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update изменяет параметры предстоящего бронирования (админская операция).
// Стоимость и границы сессии пересчитываются по новым параметрам. Новое
// время проходит те же проверки, что и при создании: сессия в часах работы
// центра, на сетке слотов и без пересечения с другими активными
// бронированиями станции. Сериализуемая транзакция с FOR UPDATE чтением
// защищает от гонки с параллельным созданием на ту же дату.
func (s *Service) Update(ctx context.Context, bookingID uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s", bookingID)

	var updated *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		// Менять можно только предстоящие бронирования
		if booking.Status != domain.StatusUpcoming {
			return ErrNotEditable
		}

		if req.StartTime != nil {
			startTime, err := types.NewTimeStringFromString(*req.StartTime)
			if err != nil {
				return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
			}
			booking.StartTime = startTime
		}

		if req.DurationHours != nil {
			if *req.DurationHours < domain.MinDurationHours || *req.DurationHours > domain.MaxDurationHours {
				return fmt.Errorf("%w: invalid duration", ErrInvalidInput)
			}
			booking.DurationHours = *req.DurationHours
		}

		if req.UserCount != nil {
			if *req.UserCount < domain.MinUserCount || *req.UserCount > domain.MaxUserCount {
				return fmt.Errorf("%w: invalid user count", ErrInvalidInput)
			}
			booking.UserCount = *req.UserCount
		}

		config, err := s.configSource.GetDomainCentreConfig(ctx)
		if err != nil {
			return fmt.Errorf("%w: Update - load centre config: %v", ErrInternal, err)
		}

		if err := validateSessionWindow(booking.StartTime, booking.DurationHours, config); err != nil {
			return err
		}

		// Читаем бронирования станции на дату с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			StationID: &booking.StationID,
			StartDate: &booking.BookingDate,
			EndDate:   &booking.BookingDate,
		}
		neighbours, err := s.bookingRepo.GetWithFilter(ctx, filter)
		if err != nil {
			return fmt.Errorf("%w: Update - get bookings: %v", ErrInternal, err)
		}

		if hasOverlappingBooking(booking, neighbours) {
			return ErrSlotNotAvailable
		}

		// Пересчитываем стоимость и абсолютные границы сессии
		booking.TotalAmount = domain.BookingTotal(booking.HourlyRate, booking.DurationHours, booking.UserCount)
		booking.AdvanceAmount = domain.AdvanceAmount(booking.TotalAmount)

		startMinutes, err := booking.StartTime.MinutesFromMidnight()
		if err != nil {
			return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
		}
		dayStart := time.Date(
			booking.BookingDate.Year(), booking.BookingDate.Month(), booking.BookingDate.Day(),
			0, 0, 0, 0, booking.BookingDate.Location(),
		)
		booking.StartAt = dayStart.Add(time.Duration(startMinutes) * time.Minute)
		booking.EndAt = booking.StartAt.Add(time.Duration(booking.DurationHours) * time.Hour)

		if err := s.bookingRepo.Update(ctx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated = booking
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrNotEditable) ||
			errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("Update: booking id=%s: %v", bookingID, err)
			return nil, err
		}
		s.logger.Error("Update: transaction failed for booking id=%s: %v", bookingID, err)
		return nil, err
	}

	s.logger.Info("Update: successfully updated booking id=%s", bookingID)
	return models.FromDomainBooking(updated), nil
}

// UpdateStatus обновляет статус бронирования (админская операция)
func (s *Service) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, newStatus)
	return nil
}

// UpdatePayment записывает оплату по бронированию (админская операция).
// При переходе к полной оплате начисляет баллы лояльности - одна
// транзакция с записью в журнал, чтобы баланс не разошёлся с журналом.
func (s *Service) UpdatePayment(ctx context.Context, bookingID uuid.UUID, req *models.UpdatePaymentRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdatePayment: updating booking id=%s, amount_paid=%.2f", bookingID, req.AmountPaid)

	if req.AmountPaid < 0 {
		s.logger.Warn("UpdatePayment: negative amount=%.2f for booking id=%s", req.AmountPaid, bookingID)
		return nil, fmt.Errorf("%w: amount paid cannot be negative", ErrInvalidInput)
	}

	var updated *domain.Booking
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdatePayment - repository error: %v", ErrInternal, err)
		}

		if !booking.IsActive() {
			return ErrNotEditable
		}

		wasFullyPaid := booking.IsFullyPaid()

		if err := s.bookingRepo.UpdatePayment(ctx, bookingID, req.AmountPaid); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdatePayment - repository error: %v", ErrInternal, err)
		}

		booking.AmountPaid = req.AmountPaid

		// Баллы начисляются один раз - при переходе к полной оплате
		if !wasFullyPaid && booking.IsFullyPaid() {
			points := domain.PointsForBooking(booking.TotalAmount)
			if points > 0 {
				if err := s.profileRepo.AdjustPoints(ctx, booking.UserID, points); err != nil {
					return fmt.Errorf("%w: UpdatePayment - award points: %v", ErrInternal, err)
				}
				tx := &domain.PointsTransaction{
					UserID:      booking.UserID,
					Type:        domain.PointsEarned,
					Points:      points,
					Description: fmt.Sprintf("Booking %s paid in full", booking.ID),
				}
				if err := s.profileRepo.AddTransaction(ctx, tx); err != nil {
					return fmt.Errorf("%w: UpdatePayment - record points transaction: %v", ErrInternal, err)
				}
				s.logger.Info("UpdatePayment: awarded %d points to user=%s for booking id=%s", points, booking.UserID, bookingID)
			}
		}

		updated = booking
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrNotEditable) {
			s.logger.Warn("UpdatePayment: booking id=%s: %v", bookingID, err)
			return nil, err
		}
		s.logger.Error("UpdatePayment: transaction failed for booking id=%s: %v", bookingID, err)
		return nil, err
	}

	s.logger.Info("UpdatePayment: successfully updated booking id=%s", bookingID)
	return models.FromDomainBooking(updated), nil
}
