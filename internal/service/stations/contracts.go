package stations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

// StationRepository интерфейс репозитория станций
type StationRepository interface {
	Create(ctx context.Context, station *domain.Station) (*domain.Station, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Station, error)
	GetAll(ctx context.Context, onlyActive bool) ([]*domain.Station, error)
	Update(ctx context.Context, station *domain.Station) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingRepository интерфейс репозитория бронирований
// для проверки перед удалением станции
type BookingRepository interface {
	CountActiveByStation(ctx context.Context, stationID uuid.UUID) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
