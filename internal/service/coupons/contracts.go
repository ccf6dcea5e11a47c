package coupons

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Coupon, error)
	GetAll(ctx context.Context) ([]*domain.Coupon, error)
	MarkUsed(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileRepository интерфейс репозитория профилей для списания баллов
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
