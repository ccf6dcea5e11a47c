package settings

import (
	"context"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetAdminEmails(ctx context.Context) ([]string, error)
	UpdateAdminEmails(ctx context.Context, emails []string) error
	GetCentreConfig(ctx context.Context) (*domain.CentreConfig, error)
	UpdateCentreConfig(ctx context.Context, config *domain.CentreConfig) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
