package stats

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/GZ-BookingService/internal/api/handlers"
	"github.com/m04kA/GZ-BookingService/internal/domain"
	statsService "github.com/m04kA/GZ-BookingService/internal/service/stats"
	"github.com/m04kA/GZ-BookingService/internal/service/stats/models"
)

const (
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgInvalidPeriod = "startDate and endDate must be provided together, startDate not after endDate"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleSummary GET /api/v1/admin/stats/summary
// Query params: startDate, endDate (optional, YYYY-MM-DD, вместе)
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	req := &models.SummaryRequest{}

	if startStr := r.URL.Query().Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /admin/stats/summary - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &start
	}
	if endStr := r.URL.Query().Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			h.logger.Warn("GET /admin/stats/summary - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &end
	}

	result, err := h.service.Summary(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, statsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/stats/summary - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/stats/summary - Failed to compute summary: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/stats/summary - Summary computed successfully: total_bookings=%d", result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandlePayments GET /api/v1/admin/stats/payments
func (h *Handler) HandlePayments(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Payments(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats/payments - Failed to compute payment stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stats/payments - Payment stats computed successfully: total_bookings=%d", result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
