package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/GZ-BookingService/internal/api/handlers"
	"github.com/m04kA/GZ-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/GZ-BookingService/internal/usecase/create_booking"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRequest     = "invalid station id, booking date (YYYY-MM-DD) or start time (HH:MM)"
	msgStationNotFound    = "station not found"
	msgStationInactive    = "station is not available for booking"
	msgUserNotFound       = "user account not found"
	msgInvalidDate        = "invalid booking date"
	msgDateTooFar         = "booking date is too far in the future"
	msgTooLateToBook      = "too late to book this slot"
	msgOutsideHours       = "session does not fit within operating hours"
	msgSlotNotAligned     = "start time must align with the hourly slot grid"
	msgSlotNotAvailable   = "selected time slot is not available"
	msgInvalidInput       = "invalid booking parameters"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - No session in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%s, station_id=%s", userID, req.StationID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrStationNotFound):
			h.logger.Warn("POST /bookings - Station not found: station_id=%s", req.StationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, createBooking.ErrStationInactive):
			h.logger.Warn("POST /bookings - Station inactive: station_id=%s", req.StationID)
			handlers.RespondBadRequest(w, msgStationInactive)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%s, station_id=%s", userID, req.StationID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: user_id=%s, station_id=%s", userID, req.StationID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: user_id=%s, station_id=%s", userID, req.StationID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours):
			h.logger.Warn("POST /bookings - Outside operating hours: user_id=%s, station_id=%s", userID, req.StationID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrSlotNotAligned):
			h.logger.Warn("POST /bookings - Slot not aligned: user_id=%s, station_id=%s", userID, req.StationID)
			handlers.RespondBadRequest(w, msgSlotNotAligned)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, station_id=%s, error=%v", userID, req.StationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, station_id=%s, error=%v",
				userID, req.StationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, station_id=%s",
		result.ID, userID, req.StationID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
