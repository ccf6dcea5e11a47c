package stations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/service/stations/models"
)

type StationService interface {
	GetAll(ctx context.Context, onlyActive bool) (*models.StationListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.StationResponse, error)
	Create(ctx context.Context, req *models.CreateStationRequest) (*models.StationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateStationRequest) (*models.StationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
