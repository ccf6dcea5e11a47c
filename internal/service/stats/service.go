package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	"github.com/m04kA/GZ-BookingService/internal/service/stats/models"
)

// defaultSummaryDays период сводной статистики, когда диапазон не задан
const defaultSummaryDays = 30

// Service сервис админской статистики
type Service struct {
	bookingRepo  BookingStatsRepository
	stationRepo  StationRepository
	configSource CentreConfigProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	bookingRepo BookingStatsRepository,
	stationRepo StationRepository,
	configSource CentreConfigProvider,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		stationRepo:  stationRepo,
		configSource: configSource,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Summary собирает сводную статистику бронирований за период.
// Загрузка считается как занятые станко-часы против доступных:
// активные станции x часы работы центра x дни периода.
func (s *Service) Summary(ctx context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error) {
	from, to, err := s.resolvePeriod(req)
	if err != nil {
		s.logger.Warn("Summary: invalid period: %v", err)
		return nil, err
	}
	s.logger.Info("Summary: computing stats for period %s to %s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	aggregate, err := s.bookingRepo.AggregateSummary(ctx, &from, &to)
	if err != nil {
		s.logger.Error("Summary: repository error: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	stationCount, err := s.stationRepo.CountActive(ctx)
	if err != nil {
		s.logger.Error("Summary: failed to count stations: %v", err)
		return nil, fmt.Errorf("%w: Summary - count stations: %v", ErrInternal, err)
	}

	config, err := s.configSource.GetDomainCentreConfig(ctx)
	if err != nil {
		s.logger.Error("Summary: failed to load centre config: %v", err)
		return nil, fmt.Errorf("%w: Summary - load centre config: %v", ErrInternal, err)
	}

	result := &domain.SummaryStats{
		TotalBookings: aggregate.TotalBookings,
		PaidBookings:  aggregate.PaidBookings,
		TotalRevenue:  aggregate.TotalRevenue,
		OccupancyRate: occupancyRate(aggregate.BookedHours, stationCount, config, from, to),
	}

	s.logger.Info("Summary: total=%d, paid=%d, revenue=%.2f, occupancy=%.1f%%",
		result.TotalBookings, result.PaidBookings, result.TotalRevenue, result.OccupancyRate)
	return models.FromDomainSummary(result), nil
}

// Payments собирает статистику предоплат. Независима от Summary -
// запросы никак не упорядочены между собой.
func (s *Service) Payments(ctx context.Context) (*models.PaymentsResponse, error) {
	s.logger.Info("Payments: computing payment stats")

	paymentStats, err := s.bookingRepo.AggregatePayments(ctx)
	if err != nil {
		s.logger.Error("Payments: repository error: %v", err)
		return nil, fmt.Errorf("%w: Payments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Payments: advance=%.2f, remaining=%.2f, advanceCount=%d",
		paymentStats.TotalAdvanceCollected, paymentStats.TotalRemaining, paymentStats.AdvanceBookingsCount)
	return models.FromDomainPayments(paymentStats), nil
}

func (s *Service) resolvePeriod(req *models.SummaryRequest) (time.Time, time.Time, error) {
	if req.StartDate != nil && req.EndDate != nil {
		if req.EndDate.Before(*req.StartDate) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
		}
		return *req.StartDate, *req.EndDate, nil
	}
	if req.StartDate != nil || req.EndDate != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: both start and end dates are required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := to.AddDate(0, 0, -(defaultSummaryDays - 1))
	return from, to, nil
}

// occupancyRate возвращает процент занятых станко-часов за период
func occupancyRate(bookedHours, stationCount int64, config *domain.CentreConfig, from, to time.Time) float64 {
	if stationCount == 0 {
		return 0
	}

	operatingHours := config.OperatingMinutes() / 60
	if operatingHours == 0 {
		return 0
	}

	days := int64(to.Sub(from).Hours()/24) + 1
	availableHours := stationCount * int64(operatingHours) * days
	if availableHours == 0 {
		return 0
	}

	rate := float64(bookedHours) / float64(availableHours) * 100
	return math.Round(rate*10) / 10
}
