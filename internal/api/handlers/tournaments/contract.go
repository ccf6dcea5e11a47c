package tournaments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/service/tournaments/models"
)

type TournamentService interface {
	GetAll(ctx context.Context, includeHidden bool) (*models.TournamentListResponse, error)
	Create(ctx context.Context, req *models.CreateTournamentRequest) (*models.TournamentResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
