package stats

import (
	"context"
	"time"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/booking"
)

// BookingStatsRepository интерфейс агрегатных запросов по бронированиям
type BookingStatsRepository interface {
	AggregateSummary(ctx context.Context, from, to *time.Time) (*bookingRepo.SummaryAggregate, error)
	AggregatePayments(ctx context.Context) (*domain.PaymentStats, error)
}

// StationRepository интерфейс репозитория станций
type StationRepository interface {
	CountActive(ctx context.Context) (int64, error)
}

// CentreConfigProvider поставщик настроек центра
type CentreConfigProvider interface {
	GetDomainCentreConfig(ctx context.Context) (*domain.CentreConfig, error)
}

// TimeProvider поставщик текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
