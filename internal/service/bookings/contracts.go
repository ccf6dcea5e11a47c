package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
	UpdatePayment(ctx context.Context, id uuid.UUID, amountPaid float64) error
}

// CentreConfigProvider поставщик настроек работы центра
type CentreConfigProvider interface {
	GetDomainCentreConfig(ctx context.Context) (*domain.CentreConfig, error)
}

// ProfileRepository интерфейс репозитория профилей для начисления баллов
type ProfileRepository interface {
	AdjustPoints(ctx context.Context, userID uuid.UUID, delta int) error
	AddTransaction(ctx context.Context, tx *domain.PointsTransaction) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
