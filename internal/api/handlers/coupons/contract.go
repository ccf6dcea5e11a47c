package coupons

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/service/coupons/models"
)

type CouponService interface {
	GetAll(ctx context.Context) (*models.CouponListResponse, error)
	Create(ctx context.Context, req *models.CreateCouponRequest) (*models.CouponResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Redeem(ctx context.Context, couponID uuid.UUID, userID uuid.UUID) (*models.RedeemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
