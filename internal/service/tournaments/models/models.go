package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе турнира
	ErrInvalidStatus = errors.New("invalid tournament status")
)

// Request модели

// CreateTournamentRequest запрос на создание турнира
type CreateTournamentRequest struct {
	Name           string  `json:"name"`
	Game           string  `json:"game"`
	Platform       string  `json:"platform"` // PC | PS5
	MaxPlayers     int     `json:"maxPlayers"`
	TournamentType string  `json:"tournamentType"` // knockout | round_robin
	Description    *string `json:"description,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса турнира
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// TournamentResponse ответ с данными турнира
type TournamentResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Game           string    `json:"game"`
	Platform       string    `json:"platform"`
	MaxPlayers     int       `json:"maxPlayers"`
	TournamentType string    `json:"tournamentType"`
	Status         string    `json:"status"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TournamentListResponse ответ со списком турниров
type TournamentListResponse struct {
	Tournaments []TournamentResponse `json:"tournaments"`
}

// FromDomainTournament конвертирует domain модель в DTO
func FromDomainTournament(t *domain.Tournament) *TournamentResponse {
	if t == nil {
		return nil
	}

	return &TournamentResponse{
		ID:             t.ID,
		Name:           t.Name,
		Game:           t.Game,
		Platform:       string(t.Platform),
		MaxPlayers:     t.MaxPlayers,
		TournamentType: string(t.TournamentType),
		Status:         string(t.Status),
		Description:    t.Description,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// FromDomainTournamentList конвертирует список domain моделей в DTO
func FromDomainTournamentList(tournaments []*domain.Tournament) *TournamentListResponse {
	resp := &TournamentListResponse{
		Tournaments: make([]TournamentResponse, 0, len(tournaments)),
	}

	for _, tournament := range tournaments {
		if tournamentResp := FromDomainTournament(tournament); tournamentResp != nil {
			resp.Tournaments = append(resp.Tournaments, *tournamentResp)
		}
	}

	return resp
}

// ToDomainTournamentStatus конвертирует строку в domain.TournamentStatus с валидацией
func ToDomainTournamentStatus(status string) (domain.TournamentStatus, error) {
	s := domain.TournamentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
