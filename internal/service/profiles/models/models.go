package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

// Request модели

// UpdateProfileRequest запрос на обновление профиля.
// Меняются только переданные поля.
type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty"`
	FullName  *string `json:"fullName,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// Response модели

// ProfileResponse ответ с данными профиля
type ProfileResponse struct {
	UserID        uuid.UUID `json:"userId"`
	Username      string    `json:"username"`
	FullName      *string   `json:"fullName,omitempty"`
	AvatarURL     *string   `json:"avatarUrl,omitempty"`
	PointsBalance int       `json:"pointsBalance"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProfileListResponse ответ со списком профилей
type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// UsernameCheckResponse результат проверки доступности username
type UsernameCheckResponse struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}

// PointsTransactionResponse запись журнала операций с баллами
type PointsTransactionResponse struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Type        string    `json:"type"`
	Points      int       `json:"points"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PointsTransactionListResponse ответ с журналом операций
type PointsTransactionListResponse struct {
	Transactions []PointsTransactionResponse `json:"transactions"`
}

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.UserProfile) *ProfileResponse {
	if p == nil {
		return nil
	}

	return &ProfileResponse{
		UserID:        p.UserID,
		Username:      p.Username,
		FullName:      p.FullName,
		AvatarURL:     p.AvatarURL,
		PointsBalance: p.PointsBalance,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainProfileList конвертирует список domain моделей в DTO
func FromDomainProfileList(profiles []*domain.UserProfile) *ProfileListResponse {
	resp := &ProfileListResponse{
		Profiles: make([]ProfileResponse, 0, len(profiles)),
	}

	for _, profile := range profiles {
		if profileResp := FromDomainProfile(profile); profileResp != nil {
			resp.Profiles = append(resp.Profiles, *profileResp)
		}
	}

	return resp
}

// FromDomainTransactionList конвертирует журнал операций в DTO
func FromDomainTransactionList(transactions []*domain.PointsTransaction) *PointsTransactionListResponse {
	resp := &PointsTransactionListResponse{
		Transactions: make([]PointsTransactionResponse, 0, len(transactions)),
	}

	for _, tx := range transactions {
		resp.Transactions = append(resp.Transactions, PointsTransactionResponse{
			ID:          tx.ID,
			UserID:      tx.UserID,
			Type:        string(tx.Type),
			Points:      tx.Points,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		})
	}

	return resp
}
