package settings

import (
	"context"

	"github.com/m04kA/GZ-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	GetAdminEmails(ctx context.Context) (*models.AdminEmailsResponse, error)
	UpdateAdminEmails(ctx context.Context, req *models.UpdateAdminEmailsRequest) (*models.AdminEmailsResponse, error)
	GetCentreConfig(ctx context.Context) (*models.CentreConfigResponse, error)
	UpdateCentreConfig(ctx context.Context, req *models.UpdateCentreConfigRequest) (*models.CentreConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
