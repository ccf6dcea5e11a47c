package stations

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/GZ-BookingService/internal/api/handlers"
	stationsService "github.com/m04kA/GZ-BookingService/internal/service/stations"
	"github.com/m04kA/GZ-BookingService/internal/service/stations/models"
)

const (
	msgInvalidStationID   = "invalid station id"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "station not found"
	msgStationInUse       = "station has active bookings and cannot be deleted"
	msgInvalidInput       = "invalid station parameters"
)

type Handler struct {
	service StationService
	logger  Logger
}

func NewHandler(service StationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/stations
// Query params: all (optional, включает неактивные станции)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("all") != "true"

	result, err := h.service.GetAll(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /stations - Failed to list stations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stations - Stations retrieved successfully: count=%d", len(result.Stations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/stations/{stationId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	stationID, err := uuid.Parse(mux.Vars(r)["stationId"])
	if err != nil {
		h.logger.Warn("GET /stations/{id} - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	result, err := h.service.GetByID(r.Context(), stationID)
	if err != nil {
		switch {
		case errors.Is(err, stationsService.ErrStationNotFound):
			h.logger.Warn("GET /stations/{id} - Station not found: station_id=%s", stationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /stations/{id} - Failed to get station: station_id=%s, error=%v", stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/stations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/stations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, stationsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/stations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/stations - Failed to create station: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/stations - Station created successfully: station_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/stations/{stationId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	stationID, err := uuid.Parse(mux.Vars(r)["stationId"])
	if err != nil {
		h.logger.Warn("PUT /admin/stations/{id} - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	var req models.UpdateStationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/stations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), stationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, stationsService.ErrStationNotFound):
			h.logger.Warn("PUT /admin/stations/{id} - Station not found: station_id=%s", stationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, stationsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/stations/{id} - Invalid input: station_id=%s, error=%v", stationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/stations/{id} - Failed to update station: station_id=%s, error=%v", stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/stations/{id} - Station updated successfully: station_id=%s", stationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/stations/{stationId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	stationID, err := uuid.Parse(mux.Vars(r)["stationId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/stations/{id} - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	if err := h.service.Delete(r.Context(), stationID); err != nil {
		switch {
		case errors.Is(err, stationsService.ErrStationNotFound):
			h.logger.Warn("DELETE /admin/stations/{id} - Station not found: station_id=%s", stationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, stationsService.ErrStationInUse):
			h.logger.Warn("DELETE /admin/stations/{id} - Station in use: station_id=%s", stationID)
			handlers.RespondConflict(w, msgStationInUse)

		default:
			h.logger.Error("DELETE /admin/stations/{id} - Failed to delete station: station_id=%s, error=%v", stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/stations/{id} - Station deleted successfully: station_id=%s", stationID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
