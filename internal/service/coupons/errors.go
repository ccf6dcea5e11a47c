package coupons

import "errors"

var (
	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrCouponAlreadyUsed возвращается при попытке использовать
	// уже выкупленный купон
	ErrCouponAlreadyUsed = errors.New("coupon already used")

	// ErrDuplicateCode возвращается при создании купона с существующим кодом
	ErrDuplicateCode = errors.New("coupon code already exists")

	// ErrInsufficientPoints возвращается, когда на балансе не хватает
	// баллов для обмена на купон
	ErrInsufficientPoints = errors.New("insufficient points balance")

	// ErrProfileNotFound возвращается, когда профиль пользователя не найден
	ErrProfileNotFound = errors.New("user profile not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
