package profiles

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/service/profiles/models"
)

type ProfileService interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error)
	GetAll(ctx context.Context) (*models.ProfileListResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.ProfileResponse, error)
	CheckUsername(ctx context.Context, username string, excludeUserID *uuid.UUID) (*models.UsernameCheckResponse, error)
	GetTransactions(ctx context.Context, userID uuid.UUID) (*models.PointsTransactionListResponse, error)
	GetAllTransactions(ctx context.Context) (*models.PointsTransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
