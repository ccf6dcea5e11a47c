package settings

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/GZ-BookingService/internal/service/settings/models"
	"github.com/m04kA/GZ-BookingService/pkg/types"
)

// Service сервис настроек центра и списка администраторов
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetAdminEmails получает список email администраторов
func (s *Service) GetAdminEmails(ctx context.Context) (*models.AdminEmailsResponse, error) {
	s.logger.Info("GetAdminEmails: fetching admin emails")

	emails, err := s.settingsRepo.GetAdminEmails(ctx)
	if err != nil {
		s.logger.Error("GetAdminEmails: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAdminEmails - repository error: %v", ErrInternal, err)
	}

	return &models.AdminEmailsResponse{AdminEmails: emails}, nil
}

// UpdateAdminEmails заменяет список email администраторов целиком
func (s *Service) UpdateAdminEmails(ctx context.Context, req *models.UpdateAdminEmailsRequest) (*models.AdminEmailsResponse, error) {
	s.logger.Info("UpdateAdminEmails: updating %d admin emails", len(req.AdminEmails))

	normalized := make([]string, 0, len(req.AdminEmails))
	for _, email := range req.AdminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if _, err := mail.ParseAddress(email); err != nil {
			s.logger.Warn("UpdateAdminEmails: invalid email=%s", email)
			return nil, fmt.Errorf("%w: invalid email %q", ErrInvalidInput, email)
		}
		normalized = append(normalized, email)
	}

	if err := s.settingsRepo.UpdateAdminEmails(ctx, normalized); err != nil {
		s.logger.Error("UpdateAdminEmails: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateAdminEmails - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAdminEmails: successfully updated admin emails")
	return &models.AdminEmailsResponse{AdminEmails: normalized}, nil
}

// IsAdminEmail проверяет, входит ли email в список администраторов
func (s *Service) IsAdminEmail(ctx context.Context, email string) (bool, error) {
	emails, err := s.settingsRepo.GetAdminEmails(ctx)
	if err != nil {
		s.logger.Error("IsAdminEmail: repository error: %v", err)
		return false, fmt.Errorf("%w: IsAdminEmail - repository error: %v", ErrInternal, err)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	for _, adminEmail := range emails {
		if adminEmail == email {
			return true, nil
		}
	}
	return false, nil
}

// GetCentreConfig получает настройки работы центра.
// Пока админ ничего не сохранял, действуют значения по умолчанию.
func (s *Service) GetCentreConfig(ctx context.Context) (*models.CentreConfigResponse, error) {
	s.logger.Info("GetCentreConfig: fetching centre config")

	config, err := s.settingsRepo.GetCentreConfig(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrConfigNotFound) {
			s.logger.Info("GetCentreConfig: no stored config, using defaults")
			return models.FromDomainCentreConfig(domain.DefaultCentreConfig()), nil
		}
		s.logger.Error("GetCentreConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCentreConfig - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCentreConfig(config), nil
}

// GetDomainCentreConfig получает настройки центра как domain модель
// для внутренних потребителей (валидация бронирований, генерация слотов)
func (s *Service) GetDomainCentreConfig(ctx context.Context) (*domain.CentreConfig, error) {
	config, err := s.settingsRepo.GetCentreConfig(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrConfigNotFound) {
			return domain.DefaultCentreConfig(), nil
		}
		s.logger.Error("GetDomainCentreConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetDomainCentreConfig - repository error: %v", ErrInternal, err)
	}
	return config, nil
}

// UpdateCentreConfig сохраняет настройки работы центра
func (s *Service) UpdateCentreConfig(ctx context.Context, req *models.UpdateCentreConfigRequest) (*models.CentreConfigResponse, error) {
	s.logger.Info("UpdateCentreConfig: updating centre config, open=%s, close=%s", req.OpenTime, req.CloseTime)

	openTime, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		s.logger.Warn("UpdateCentreConfig: invalid open time=%s", req.OpenTime)
		return nil, fmt.Errorf("%w: invalid open time", ErrInvalidInput)
	}
	closeTime, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		s.logger.Warn("UpdateCentreConfig: invalid close time=%s", req.CloseTime)
		return nil, fmt.Errorf("%w: invalid close time", ErrInvalidInput)
	}
	if !openTime.IsBefore(closeTime) {
		s.logger.Warn("UpdateCentreConfig: open=%s is not before close=%s", req.OpenTime, req.CloseTime)
		return nil, fmt.Errorf("%w: open time must be before close time", ErrInvalidInput)
	}
	if req.MaxDurationHours < domain.MinDurationHours || req.MaxDurationHours > domain.MaxDurationHours {
		return nil, fmt.Errorf("%w: max duration must be between %d and %d hours", ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}
	if req.AdvanceBookingDays < 0 {
		return nil, fmt.Errorf("%w: advance booking days cannot be negative", ErrInvalidInput)
	}
	if req.MinBookingNoticeMinutes < 0 {
		return nil, fmt.Errorf("%w: minimum notice cannot be negative", ErrInvalidInput)
	}

	config := &domain.CentreConfig{
		OpenTime:                openTime,
		CloseTime:               closeTime,
		MaxDurationHours:        req.MaxDurationHours,
		AdvanceBookingDays:      req.AdvanceBookingDays,
		MinBookingNoticeMinutes: req.MinBookingNoticeMinutes,
	}

	if err := s.settingsRepo.UpdateCentreConfig(ctx, config); err != nil {
		s.logger.Error("UpdateCentreConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateCentreConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCentreConfig: successfully updated centre config")
	return models.FromDomainCentreConfig(config), nil
}
