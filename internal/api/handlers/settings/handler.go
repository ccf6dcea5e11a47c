package settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/GZ-BookingService/internal/api/handlers"
	settingsService "github.com/m04kA/GZ-BookingService/internal/service/settings"
	"github.com/m04kA/GZ-BookingService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEmails      = "admin email list contains invalid addresses"
	msgInvalidConfig      = "invalid centre configuration"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGetAdminEmails GET /api/v1/admin/settings/admins
func (h *Handler) HandleGetAdminEmails(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAdminEmails(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/settings/admins - Failed to get admin emails: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateAdminEmails PUT /api/v1/admin/settings/admins
func (h *Handler) HandleUpdateAdminEmails(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAdminEmailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/admins - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateAdminEmails(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings/admins - Invalid emails: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmails)

		default:
			h.logger.Error("PUT /admin/settings/admins - Failed to update admin emails: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings/admins - Admin emails updated successfully: count=%d", len(result.AdminEmails))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGetCentreConfig GET /api/v1/centre-config
// Публичный endpoint: клиент строит сетку слотов по часам работы
func (h *Handler) HandleGetCentreConfig(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetCentreConfig(r.Context())
	if err != nil {
		h.logger.Error("GET /centre-config - Failed to get centre config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateCentreConfig PUT /api/v1/admin/settings/centre-config
func (h *Handler) HandleUpdateCentreConfig(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCentreConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/centre-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCentreConfig(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings/centre-config - Invalid config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /admin/settings/centre-config - Failed to update centre config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings/centre-config - Centre config updated successfully: open=%s, close=%s",
		result.OpenTime, result.CloseTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
