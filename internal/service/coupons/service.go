package coupons

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	couponRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/coupon"
	profileRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/profile"
	"github.com/m04kA/GZ-BookingService/internal/service/coupons/models"
)

// Service сервис для работы с купонами и обменом баллов
type Service struct {
	couponRepo  CouponRepository
	profileRepo ProfileRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса купонов
func NewService(
	couponRepo CouponRepository,
	profileRepo ProfileRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		couponRepo:  couponRepo,
		profileRepo: profileRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetAll получает все купоны (админский список)
func (s *Service) GetAll(ctx context.Context) (*models.CouponListResponse, error) {
	s.logger.Info("GetAll: fetching coupons")

	coupons, err := s.couponRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: successfully fetched %d coupons", len(coupons))
	return models.FromDomainCouponList(coupons), nil
}

// Create создает новый купон (админская операция)
func (s *Service) Create(ctx context.Context, req *models.CreateCouponRequest) (*models.CouponResponse, error) {
	s.logger.Info("Create: creating coupon code=%s", req.Code)

	code := strings.TrimSpace(strings.ToUpper(req.Code))
	if code == "" {
		s.logger.Warn("Create: empty coupon code")
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if req.DiscountValue <= 0 {
		s.logger.Warn("Create: invalid discount value=%.2f", req.DiscountValue)
		return nil, fmt.Errorf("%w: discount value must be positive", ErrInvalidInput)
	}

	coupon := &domain.Coupon{
		Code:          code,
		DiscountValue: req.DiscountValue,
	}

	created, err := s.couponRepo.Create(ctx, coupon)
	if err != nil {
		if errors.Is(err, couponRepo.ErrDuplicateCode) {
			s.logger.Warn("Create: duplicate coupon code=%s", code)
			return nil, ErrDuplicateCode
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created coupon id=%s", created.ID)
	return models.FromDomainCoupon(created), nil
}

// Delete удаляет купон (админская операция)
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting coupon id=%s", id)

	if err := s.couponRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			s.logger.Warn("Delete: coupon id=%s not found", id)
			return ErrCouponNotFound
		}
		s.logger.Error("Delete: repository error for coupon id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted coupon id=%s", id)
	return nil
}

// Redeem обменивает баллы пользователя на купон: 100 баллов за рупию
// номинала. Списание баланса, пометка купона и запись в журнал идут
// одной транзакцией.
func (s *Service) Redeem(ctx context.Context, couponID uuid.UUID, userID uuid.UUID) (*models.RedeemResponse, error) {
	s.logger.Info("Redeem: user=%s redeeming coupon id=%s", userID, couponID)

	var resp *models.RedeemResponse
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		coupon, err := s.couponRepo.GetByID(ctx, couponID)
		if err != nil {
			if errors.Is(err, couponRepo.ErrCouponNotFound) {
				return ErrCouponNotFound
			}
			return fmt.Errorf("%w: Redeem - repository error: %v", ErrInternal, err)
		}

		if coupon.IsUsed() {
			return ErrCouponAlreadyUsed
		}

		pointsCost := int(coupon.DiscountValue * domain.PointsPerRupee)

		if err := s.profileRepo.AdjustPoints(ctx, userID, -pointsCost); err != nil {
			switch {
			case errors.Is(err, profileRepo.ErrInsufficientPoints):
				return ErrInsufficientPoints
			case errors.Is(err, profileRepo.ErrProfileNotFound):
				return ErrProfileNotFound
			default:
				return fmt.Errorf("%w: Redeem - deduct points: %v", ErrInternal, err)
			}
		}

		if err := s.couponRepo.MarkUsed(ctx, couponID, userID); err != nil {
			// Конкурирующий выкуп того же купона
			if errors.Is(err, couponRepo.ErrCouponNotFound) {
				return ErrCouponAlreadyUsed
			}
			return fmt.Errorf("%w: Redeem - mark coupon used: %v", ErrInternal, err)
		}

		tx := &domain.PointsTransaction{
			UserID:      userID,
			Type:        domain.PointsRedeemed,
			Points:      pointsCost,
			Description: fmt.Sprintf("Redeemed coupon %s", coupon.Code),
		}
		if err := s.profileRepo.AddTransaction(ctx, tx); err != nil {
			return fmt.Errorf("%w: Redeem - record points transaction: %v", ErrInternal, err)
		}

		usedBy := userID
		coupon.UsedBy = &usedBy
		resp = &models.RedeemResponse{
			Coupon:       *models.FromDomainCoupon(coupon),
			PointsSpent:  pointsCost,
			PointsTarget: userID,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCouponNotFound) || errors.Is(err, ErrCouponAlreadyUsed) ||
			errors.Is(err, ErrInsufficientPoints) || errors.Is(err, ErrProfileNotFound) {
			s.logger.Warn("Redeem: coupon id=%s, user=%s: %v", couponID, userID, err)
			return nil, err
		}
		s.logger.Error("Redeem: transaction failed for coupon id=%s, user=%s: %v", couponID, userID, err)
		return nil, err
	}

	s.logger.Info("Redeem: user=%s redeemed coupon id=%s for %d points", userID, couponID, resp.PointsSpent)
	return resp, nil
}
