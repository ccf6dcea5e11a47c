package tournaments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

// TournamentRepository интерфейс репозитория турниров
type TournamentRepository interface {
	Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error)
	GetAll(ctx context.Context) ([]*domain.Tournament, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TournamentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
