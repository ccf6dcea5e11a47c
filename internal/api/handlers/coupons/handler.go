package coupons

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/GZ-BookingService/internal/api/handlers"
	"github.com/m04kA/GZ-BookingService/internal/api/middleware"
	couponsService "github.com/m04kA/GZ-BookingService/internal/service/coupons"
	"github.com/m04kA/GZ-BookingService/internal/service/coupons/models"
)

const (
	msgInvalidCouponID    = "invalid coupon id"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "authentication required"
	msgNotFound           = "coupon not found"
	msgAlreadyUsed        = "coupon has already been used"
	msgDuplicateCode      = "coupon code already exists"
	msgInsufficientPoints = "not enough loyalty points"
	msgProfileNotFound    = "loyalty profile not found"
	msgInvalidInput       = "invalid coupon parameters"
)

type Handler struct {
	service CouponService
	logger  Logger
}

func NewHandler(service CouponService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/coupons
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/coupons - Failed to list coupons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/coupons - Coupons retrieved successfully: count=%d", len(result.Coupons))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/coupons
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/coupons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, couponsService.ErrDuplicateCode):
			h.logger.Warn("POST /admin/coupons - Duplicate code: code=%s", req.Code)
			handlers.RespondConflict(w, msgDuplicateCode)

		case errors.Is(err, couponsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/coupons - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/coupons - Failed to create coupon: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/coupons - Coupon created successfully: coupon_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleDelete DELETE /api/v1/admin/coupons/{couponId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	couponID, err := uuid.Parse(mux.Vars(r)["couponId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/coupons/{id} - Invalid coupon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCouponID)
		return
	}

	if err := h.service.Delete(r.Context(), couponID); err != nil {
		switch {
		case errors.Is(err, couponsService.ErrCouponNotFound):
			h.logger.Warn("DELETE /admin/coupons/{id} - Coupon not found: coupon_id=%s", couponID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/coupons/{id} - Failed to delete coupon: coupon_id=%s, error=%v", couponID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/coupons/{id} - Coupon deleted successfully: coupon_id=%s", couponID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleRedeem POST /api/v1/coupons/{couponId}/redeem
// Списывает баллы лояльности пользователя в обмен на купон
func (h *Handler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	couponID, err := uuid.Parse(mux.Vars(r)["couponId"])
	if err != nil {
		h.logger.Warn("POST /coupons/{id}/redeem - Invalid coupon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCouponID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /coupons/{id}/redeem - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Redeem(r.Context(), couponID, userID)
	if err != nil {
		switch {
		case errors.Is(err, couponsService.ErrCouponNotFound):
			h.logger.Warn("POST /coupons/{id}/redeem - Coupon not found: coupon_id=%s", couponID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, couponsService.ErrCouponAlreadyUsed):
			h.logger.Warn("POST /coupons/{id}/redeem - Coupon already used: coupon_id=%s, user_id=%s", couponID, userID)
			handlers.RespondConflict(w, msgAlreadyUsed)

		case errors.Is(err, couponsService.ErrInsufficientPoints):
			h.logger.Warn("POST /coupons/{id}/redeem - Insufficient points: coupon_id=%s, user_id=%s", couponID, userID)
			handlers.RespondBadRequest(w, msgInsufficientPoints)

		case errors.Is(err, couponsService.ErrProfileNotFound):
			h.logger.Warn("POST /coupons/{id}/redeem - Profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		default:
			h.logger.Error("POST /coupons/{id}/redeem - Failed to redeem coupon: coupon_id=%s, user_id=%s, error=%v",
				couponID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coupons/{id}/redeem - Coupon redeemed successfully: coupon_id=%s, user_id=%s, points_spent=%d",
		couponID, userID, result.PointsSpent)
	handlers.RespondJSON(w, http.StatusOK, result)
}
