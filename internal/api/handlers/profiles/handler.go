package profiles

import (
	"errors"
	"net/http"

	"github.com/m04kA/GZ-BookingService/internal/api/handlers"
	"github.com/m04kA/GZ-BookingService/internal/api/middleware"
	profilesService "github.com/m04kA/GZ-BookingService/internal/service/profiles"
	"github.com/m04kA/GZ-BookingService/internal/service/profiles/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "authentication required"
	msgMissingUsername    = "username query parameter is required"
	msgNotFound           = "profile not found"
	msgUsernameTaken      = "username is already taken"
	msgInvalidInput       = "invalid profile parameters"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/profile
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /profile - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, profilesService.ErrProfileNotFound):
			h.logger.Warn("GET /profile - Profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /profile - Failed to get profile: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/profile
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /profile - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, profilesService.ErrProfileNotFound):
			h.logger.Warn("PUT /profile - Profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, profilesService.ErrUsernameTaken):
			h.logger.Warn("PUT /profile - Username taken: user_id=%s", userID)
			handlers.RespondConflict(w, msgUsernameTaken)

		case errors.Is(err, profilesService.ErrInvalidInput):
			h.logger.Warn("PUT /profile - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /profile - Failed to update profile: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profile - Profile updated successfully: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCheckUsername GET /api/v1/profile/username-check
// Query params: username (required)
func (h *Handler) HandleCheckUsername(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /profile/username-check - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	username := r.URL.Query().Get("username")
	if username == "" {
		h.logger.Warn("GET /profile/username-check - Missing username")
		handlers.RespondBadRequest(w, msgMissingUsername)
		return
	}

	// Собственный текущий username всегда считается доступным
	result, err := h.service.CheckUsername(r.Context(), username, &userID)
	if err != nil {
		switch {
		case errors.Is(err, profilesService.ErrInvalidInput):
			h.logger.Warn("GET /profile/username-check - Invalid username: %s", username)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /profile/username-check - Failed to check username: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleTransactions GET /api/v1/profile/points-transactions
func (h *Handler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /profile/points-transactions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetTransactions(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /profile/points-transactions - Failed to get transactions: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /profile/points-transactions - Transactions retrieved successfully: user_id=%s, count=%d",
		userID, len(result.Transactions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdminTransactions GET /api/v1/admin/points/transactions
func (h *Handler) HandleAdminTransactions(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAllTransactions(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/points/transactions - Failed to get transactions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/points/transactions - Transactions retrieved successfully: count=%d",
		len(result.Transactions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdminList GET /api/v1/admin/profiles
func (h *Handler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/profiles - Failed to list profiles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/profiles - Profiles retrieved successfully: count=%d", len(result.Profiles))
	handlers.RespondJSON(w, http.StatusOK, result)
}
