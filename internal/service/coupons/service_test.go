package coupons

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	couponRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/coupon"
	profileRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/profile"
	"github.com/m04kA/GZ-BookingService/internal/service/coupons/models"
)

type fakeCouponRepo struct {
	coupon    *domain.Coupon
	getErr    error
	createErr error

	markedID     uuid.UUID
	markedUserID uuid.UUID
	markErr      error
}

func (f *fakeCouponRepo) Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *coupon
	stored.ID = uuid.New()
	stored.CreatedAt = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	return &stored, nil
}

func (f *fakeCouponRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Coupon, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.coupon, nil
}

func (f *fakeCouponRepo) GetAll(ctx context.Context) ([]*domain.Coupon, error) {
	if f.coupon == nil {
		return []*domain.Coupon{}, nil
	}
	return []*domain.Coupon{f.coupon}, nil
}

func (f *fakeCouponRepo) MarkUsed(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.markedID = id
	f.markedUserID = userID
	return nil
}

func (f *fakeCouponRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeProfileRepo struct {
	adjustErr    error
	adjustedID   uuid.UUID
	adjustedBy   int
	transactions []*domain.PointsTransaction
}

func (f *fakeProfileRepo) AdjustPoints(ctx context.Context, userID uuid.UUID, delta int) error {
	if f.adjustErr != nil {
		return f.adjustErr
	}
	f.adjustedID = userID
	f.adjustedBy = delta
	return nil
}

func (f *fakeProfileRepo) AddTransaction(ctx context.Context, tx *domain.PointsTransaction) error {
	f.transactions = append(f.transactions, tx)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func freshCoupon() *domain.Coupon {
	return &domain.Coupon{
		ID:            uuid.New(),
		Code:          "SAVE5",
		DiscountValue: 5,
		CreatedAt:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestRedeem_Success(t *testing.T) {
	coupon := freshCoupon()
	coupons := &fakeCouponRepo{coupon: coupon}
	profiles := &fakeProfileRepo{}
	svc := NewService(coupons, profiles, fakeTxManager{}, nopLogger{})

	userID := uuid.New()
	resp, err := svc.Redeem(context.Background(), coupon.ID, userID)
	require.NoError(t, err)

	// Купон на 5 рупий стоит 500 баллов
	assert.Equal(t, 500, resp.PointsSpent)
	assert.Equal(t, userID, resp.PointsTarget)
	assert.True(t, resp.Coupon.IsUsed)
	require.NotNil(t, resp.Coupon.UsedBy)
	assert.Equal(t, userID, *resp.Coupon.UsedBy)

	// Баллы списаны, купон помечен, операция записана в журнал
	assert.Equal(t, -500, profiles.adjustedBy)
	assert.Equal(t, userID, profiles.adjustedID)
	assert.Equal(t, coupon.ID, coupons.markedID)
	assert.Equal(t, userID, coupons.markedUserID)
	require.Len(t, profiles.transactions, 1)
	assert.Equal(t, domain.PointsRedeemed, profiles.transactions[0].Type)
	assert.Equal(t, 500, profiles.transactions[0].Points)
}

func TestRedeem_InsufficientPoints(t *testing.T) {
	coupon := freshCoupon()
	coupons := &fakeCouponRepo{coupon: coupon}
	profiles := &fakeProfileRepo{adjustErr: profileRepo.ErrInsufficientPoints}
	svc := NewService(coupons, profiles, fakeTxManager{}, nopLogger{})

	_, err := svc.Redeem(context.Background(), coupon.ID, uuid.New())
	assert.ErrorIs(t, err, ErrInsufficientPoints)
	assert.Equal(t, uuid.Nil, coupons.markedID)
	assert.Empty(t, profiles.transactions)
}

func TestRedeem_AlreadyUsed(t *testing.T) {
	coupon := freshCoupon()
	other := uuid.New()
	coupon.UsedBy = &other

	coupons := &fakeCouponRepo{coupon: coupon}
	profiles := &fakeProfileRepo{}
	svc := NewService(coupons, profiles, fakeTxManager{}, nopLogger{})

	_, err := svc.Redeem(context.Background(), coupon.ID, uuid.New())
	assert.ErrorIs(t, err, ErrCouponAlreadyUsed)
	assert.Equal(t, 0, profiles.adjustedBy)
}

func TestRedeem_ConcurrentRedeemLosesRace(t *testing.T) {
	coupon := freshCoupon()
	// MarkUsed не находит свободный купон: его успел выкупить другой
	coupons := &fakeCouponRepo{coupon: coupon, markErr: couponRepo.ErrCouponNotFound}
	profiles := &fakeProfileRepo{}
	svc := NewService(coupons, profiles, fakeTxManager{}, nopLogger{})

	_, err := svc.Redeem(context.Background(), coupon.ID, uuid.New())
	assert.ErrorIs(t, err, ErrCouponAlreadyUsed)
}

func TestRedeem_ProfileNotFound(t *testing.T) {
	coupon := freshCoupon()
	coupons := &fakeCouponRepo{coupon: coupon}
	profiles := &fakeProfileRepo{adjustErr: profileRepo.ErrProfileNotFound}
	svc := NewService(coupons, profiles, fakeTxManager{}, nopLogger{})

	_, err := svc.Redeem(context.Background(), coupon.ID, uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestRedeem_CouponNotFound(t *testing.T) {
	coupons := &fakeCouponRepo{getErr: couponRepo.ErrCouponNotFound}
	svc := NewService(coupons, &fakeProfileRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.Redeem(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestCreate_NormalizesCode(t *testing.T) {
	coupons := &fakeCouponRepo{}
	svc := NewService(coupons, &fakeProfileRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateCouponRequest{
		Code:          "  save10 ",
		DiscountValue: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", resp.Code)
	assert.False(t, resp.IsUsed)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeCouponRepo{}, &fakeProfileRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCouponRequest{Code: "  ", DiscountValue: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateCouponRequest{Code: "SAVE10", DiscountValue: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DuplicateCode(t *testing.T) {
	coupons := &fakeCouponRepo{createErr: couponRepo.ErrDuplicateCode}
	svc := NewService(coupons, &fakeProfileRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCouponRequest{Code: "SAVE10", DiscountValue: 10})
	assert.ErrorIs(t, err, ErrDuplicateCode)
}
