package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

// Request модели

// CreateCouponRequest запрос на создание купона
type CreateCouponRequest struct {
	Code          string  `json:"code"`
	DiscountValue float64 `json:"discountValue"`
}

// Response модели

// CouponResponse ответ с данными купона
type CouponResponse struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	DiscountValue float64    `json:"discountValue"`
	UsedBy        *uuid.UUID `json:"usedBy,omitempty"`
	IsUsed        bool       `json:"isUsed"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// CouponListResponse ответ со списком купонов
type CouponListResponse struct {
	Coupons []CouponResponse `json:"coupons"`
}

// RedeemResponse результат обмена баллов на купон
type RedeemResponse struct {
	Coupon       CouponResponse `json:"coupon"`
	PointsSpent  int            `json:"pointsSpent"`
	PointsTarget uuid.UUID      `json:"userId"`
}

// FromDomainCoupon конвертирует domain модель в DTO
func FromDomainCoupon(c *domain.Coupon) *CouponResponse {
	if c == nil {
		return nil
	}

	return &CouponResponse{
		ID:            c.ID,
		Code:          c.Code,
		DiscountValue: c.DiscountValue,
		UsedBy:        c.UsedBy,
		IsUsed:        c.IsUsed(),
		CreatedAt:     c.CreatedAt,
	}
}

// FromDomainCouponList конвертирует список domain моделей в DTO
func FromDomainCouponList(coupons []*domain.Coupon) *CouponListResponse {
	resp := &CouponListResponse{
		Coupons: make([]CouponResponse, 0, len(coupons)),
	}

	for _, coupon := range coupons {
		if couponResp := FromDomainCoupon(coupon); couponResp != nil {
			resp.Coupons = append(resp.Coupons, *couponResp)
		}
	}

	return resp
}
