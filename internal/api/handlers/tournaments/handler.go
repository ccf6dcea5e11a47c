package tournaments

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/GZ-BookingService/internal/api/handlers"
	tournamentsService "github.com/m04kA/GZ-BookingService/internal/service/tournaments"
	"github.com/m04kA/GZ-BookingService/internal/service/tournaments/models"
)

const (
	msgInvalidTournamentID = "invalid tournament id"
	msgInvalidRequestBody  = "invalid request body"
	msgNotFound            = "tournament not found"
	msgInvalidInput        = "invalid tournament parameters"
)

type Handler struct {
	service TournamentService
	logger  Logger
}

func NewHandler(service TournamentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/tournaments
// Публичный список: скрытые статусы (draft, completed) не отдаются
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context(), false)
	if err != nil {
		h.logger.Error("GET /tournaments - Failed to list tournaments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tournaments - Tournaments retrieved successfully: count=%d", len(result.Tournaments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdminList GET /api/v1/admin/tournaments
func (h *Handler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /admin/tournaments - Failed to list tournaments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/tournaments - Tournaments retrieved successfully: count=%d", len(result.Tournaments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/tournaments
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTournamentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/tournaments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tournamentsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/tournaments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/tournaments - Failed to create tournament: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/tournaments - Tournament created successfully: tournament_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdateStatus PATCH /api/v1/admin/tournaments/{tournamentId}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := uuid.Parse(mux.Vars(r)["tournamentId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/tournaments/{id}/status - Invalid tournament ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTournamentID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/tournaments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), tournamentID, &req); err != nil {
		switch {
		case errors.Is(err, tournamentsService.ErrTournamentNotFound):
			h.logger.Warn("PATCH /admin/tournaments/{id}/status - Tournament not found: tournament_id=%s", tournamentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tournamentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/tournaments/{id}/status - Invalid status: tournament_id=%s, status=%s",
				tournamentID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /admin/tournaments/{id}/status - Failed to update status: tournament_id=%s, error=%v",
				tournamentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/tournaments/{id}/status - Status updated successfully: tournament_id=%s, status=%s",
		tournamentID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// HandleDelete DELETE /api/v1/admin/tournaments/{tournamentId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := uuid.Parse(mux.Vars(r)["tournamentId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/tournaments/{id} - Invalid tournament ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTournamentID)
		return
	}

	if err := h.service.Delete(r.Context(), tournamentID); err != nil {
		switch {
		case errors.Is(err, tournamentsService.ErrTournamentNotFound):
			h.logger.Warn("DELETE /admin/tournaments/{id} - Tournament not found: tournament_id=%s", tournamentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/tournaments/{id} - Failed to delete tournament: tournament_id=%s, error=%v",
				tournamentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/tournaments/{id} - Tournament deleted successfully: tournament_id=%s", tournamentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
