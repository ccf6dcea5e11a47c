package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/GZ-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/GZ-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStationID = "invalid station id"
	msgMissingDate      = "date query parameter is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgStationNotFound  = "station not found"
	msgStationInactive  = "station is not available for booking"
	msgInvalidDateValue = "invalid booking date"
	msgDateTooFar       = "date is too far in the future"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stations/{stationId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stationID, err := uuid.Parse(vars["stationId"])
	if err != nil {
		h.logger.Warn("GET /stations/{id}/available-slots - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stations/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(stationID, dateStr)
	if err != nil {
		h.logger.Warn("GET /stations/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStationNotFound):
			h.logger.Warn("GET /stations/{id}/available-slots - Station not found: station_id=%s", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, getAvailableSlots.ErrStationInactive):
			h.logger.Warn("GET /stations/{id}/available-slots - Station inactive: station_id=%s", stationID)
			handlers.RespondBadRequest(w, msgStationInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /stations/{id}/available-slots - Invalid date: station_id=%s, date=%s", stationID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDateValue)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /stations/{id}/available-slots - Date too far in future: station_id=%s, date=%s", stationID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		default:
			h.logger.Error("GET /stations/{id}/available-slots - Failed to get slots: station_id=%s, date=%s, error=%v",
				stationID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /stations/{id}/available-slots - Slots retrieved successfully: station_id=%s, date=%s, slots_count=%d",
		stationID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
