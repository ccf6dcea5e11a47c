package models

import (
	"time"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

// Request модели

// SummaryRequest запрос сводной статистики за период.
// Без периода берутся последние 30 дней.
type SummaryRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Response модели

// SummaryResponse сводная статистика бронирований
type SummaryResponse struct {
	TotalBookings int64   `json:"totalBookings"`
	PaidBookings  int64   `json:"paidBookings"`
	TotalRevenue  float64 `json:"totalRevenue"`
	OccupancyRate float64 `json:"occupancyRate"` // Процент занятых станко-часов
}

// PaymentsResponse статистика предоплат
type PaymentsResponse struct {
	TotalAdvanceCollected float64 `json:"totalAdvanceCollected"`
	TotalRemaining        float64 `json:"totalRemaining"`
	AdvanceBookingsCount  int64   `json:"advanceBookingsCount"`
	TotalBookings         int64   `json:"totalBookings"`
}

// FromDomainSummary конвертирует domain модель в DTO
func FromDomainSummary(s *domain.SummaryStats) *SummaryResponse {
	if s == nil {
		return nil
	}

	return &SummaryResponse{
		TotalBookings: s.TotalBookings,
		PaidBookings:  s.PaidBookings,
		TotalRevenue:  s.TotalRevenue,
		OccupancyRate: s.OccupancyRate,
	}
}

// FromDomainPayments конвертирует domain модель в DTO
func FromDomainPayments(p *domain.PaymentStats) *PaymentsResponse {
	if p == nil {
		return nil
	}

	return &PaymentsResponse{
		TotalAdvanceCollected: p.TotalAdvanceCollected,
		TotalRemaining:        p.TotalRemaining,
		AdvanceBookingsCount:  p.AdvanceBookingsCount,
		TotalBookings:         p.TotalBookings,
	}
}
