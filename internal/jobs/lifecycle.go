package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// LifecycleService двигает статусы бронирований по времени сессии:
// UPCOMING переходит в ONGOING после начала, ONGOING в ENDED после конца.
// Отмененные бронирования job не трогает.
type LifecycleService struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
	cron         *cron.Cron
}

// NewLifecycleService создает новый экземпляр сервиса переходов статусов
func NewLifecycleService(bookingRepo BookingRepository, logger Logger) *LifecycleService {
	return &LifecycleService{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start запускает периодический переход статусов по cron-расписанию
func (s *LifecycleService) Start(schedule string) error {
	s.cron = cron.New()

	if _, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.Run(ctx)
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Lifecycle job started with schedule %q", schedule)
	return nil
}

// Stop останавливает cron и дожидается завершения текущего прогона
func (s *LifecycleService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("Lifecycle job stopped")
}

// Run выполняет один прогон переходов статусов
func (s *LifecycleService) Run(ctx context.Context) {
	now := s.timeProvider.Now()

	started, err := s.bookingRepo.MarkOngoing(ctx, now)
	if err != nil {
		s.logger.Error("Lifecycle job: failed to mark ongoing bookings: %v", err)
	} else if started > 0 {
		s.logger.Info("Lifecycle job: %d bookings moved to ONGOING", started)
	}

	ended, err := s.bookingRepo.MarkEnded(ctx, now)
	if err != nil {
		s.logger.Error("Lifecycle job: failed to mark ended bookings: %v", err)
	} else if ended > 0 {
		s.logger.Info("Lifecycle job: %d bookings moved to ENDED", ended)
	}
}
