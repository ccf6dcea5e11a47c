package stats

import (
	"context"

	"github.com/m04kA/GZ-BookingService/internal/service/stats/models"
)

type StatsService interface {
	Summary(ctx context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error)
	Payments(ctx context.Context) (*models.PaymentsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
