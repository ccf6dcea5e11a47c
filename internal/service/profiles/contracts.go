package profiles

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	GetAll(ctx context.Context) ([]*domain.UserProfile, error)
	Update(ctx context.Context, profile *domain.UserProfile) error
	IsUsernameTaken(ctx context.Context, username string, excludeUserID *uuid.UUID) (bool, error)
	GetTransactions(ctx context.Context, userID *uuid.UUID) ([]*domain.PointsTransaction, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
