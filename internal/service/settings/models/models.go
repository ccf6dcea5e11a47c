package models

import (
	"time"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

// Request модели

// UpdateAdminEmailsRequest запрос на замену списка админов
type UpdateAdminEmailsRequest struct {
	AdminEmails []string `json:"adminEmails"`
}

// UpdateCentreConfigRequest запрос на обновление настроек центра
type UpdateCentreConfigRequest struct {
	OpenTime                string `json:"openTime"`  // "10:00"
	CloseTime               string `json:"closeTime"` // "22:00"
	MaxDurationHours        int    `json:"maxDurationHours"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"` // 0 = без ограничения
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
}

// Response модели

// AdminEmailsResponse список email администраторов
type AdminEmailsResponse struct {
	AdminEmails []string `json:"adminEmails"`
}

// CentreConfigResponse настройки работы центра
type CentreConfigResponse struct {
	OpenTime                string    `json:"openTime"`
	CloseTime               string    `json:"closeTime"`
	MaxDurationHours        int       `json:"maxDurationHours"`
	AdvanceBookingDays      int       `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int       `json:"minBookingNoticeMinutes"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// FromDomainCentreConfig конвертирует domain модель в DTO
func FromDomainCentreConfig(c *domain.CentreConfig) *CentreConfigResponse {
	if c == nil {
		return nil
	}

	return &CentreConfigResponse{
		OpenTime:                c.OpenTime.String(),
		CloseTime:               c.CloseTime.String(),
		MaxDurationHours:        c.MaxDurationHours,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		UpdatedAt:               c.UpdatedAt,
	}
}
