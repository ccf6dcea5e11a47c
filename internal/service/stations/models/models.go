package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

// Request модели

// CreateStationRequest запрос на создание станции
type CreateStationRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"` // PC | PS5
	HourlyRate  float64 `json:"hourlyRate"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"` // По умолчанию true
}

// UpdateStationRequest запрос на обновление станции.
// Меняются только переданные поля.
type UpdateStationRequest struct {
	Name        *string  `json:"name,omitempty"`
	Type        *string  `json:"type,omitempty"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
	Description *string  `json:"description,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// Response модели

// StationResponse ответ с данными станции
type StationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	HourlyRate  float64   `json:"hourlyRate"`
	Description *string   `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StationListResponse ответ со списком станций
type StationListResponse struct {
	Stations []StationResponse `json:"stations"`
}

// FromDomainStation конвертирует domain модель в DTO
func FromDomainStation(s *domain.Station) *StationResponse {
	if s == nil {
		return nil
	}

	return &StationResponse{
		ID:          s.ID,
		Name:        s.Name,
		Type:        string(s.Type),
		HourlyRate:  s.HourlyRate,
		Description: s.Description,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainStationList конвертирует список domain моделей в DTO
func FromDomainStationList(stations []*domain.Station) *StationListResponse {
	resp := &StationListResponse{
		Stations: make([]StationResponse, 0, len(stations)),
	}

	for _, station := range stations {
		if stationResp := FromDomainStation(station); stationResp != nil {
			resp.Stations = append(resp.Stations, *stationResp)
		}
	}

	return resp
}
