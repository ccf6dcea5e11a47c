package profiles

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	profileRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/profile"
	"github.com/m04kA/GZ-BookingService/internal/service/profiles/models"
)

// usernamePattern допустимый формат username: 3-30 символов,
// латиница, цифры и подчеркивания
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// Service сервис для работы с профилями пользователей
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetByUserID получает профиль пользователя
func (s *Service) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error) {
	s.logger.Info("GetByUserID: fetching profile for user=%s", userID)

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("GetByUserID: profile for user=%s not found", userID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("GetByUserID: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetByUserID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

// GetAll получает все профили (админский список)
func (s *Service) GetAll(ctx context.Context) (*models.ProfileListResponse, error) {
	s.logger.Info("GetAll: fetching profiles")

	profiles, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: successfully fetched %d profiles", len(profiles))
	return models.FromDomainProfileList(profiles), nil
}

// Update обновляет профиль пользователя. Меняются только переданные
// поля; смена username проверяется на занятость без учета регистра.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Update: updating profile for user=%s", userID)

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("Update: profile for user=%s not found", userID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Update: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if !usernamePattern.MatchString(username) {
			s.logger.Warn("Update: invalid username=%s for user=%s", username, userID)
			return nil, fmt.Errorf("%w: username must be 3-30 characters (letters, digits, underscores)", ErrInvalidInput)
		}

		taken, err := s.profileRepo.IsUsernameTaken(ctx, username, &userID)
		if err != nil {
			s.logger.Error("Update: username check failed for user=%s: %v", userID, err)
			return nil, fmt.Errorf("%w: Update - username check: %v", ErrInternal, err)
		}
		if taken {
			s.logger.Warn("Update: username=%s already taken", username)
			return nil, ErrUsernameTaken
		}
		profile.Username = username
	}

	if req.FullName != nil {
		profile.FullName = req.FullName
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		switch {
		case errors.Is(err, profileRepo.ErrProfileNotFound):
			return nil, ErrProfileNotFound
		case errors.Is(err, profileRepo.ErrUsernameTaken):
			// Конкурирующая смена username на тот же
			return nil, ErrUsernameTaken
		default:
			s.logger.Error("Update: repository error for user=%s: %v", userID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated profile for user=%s", userID)
	return models.FromDomainProfile(profile), nil
}

// CheckUsername проверяет доступность username без учета регистра
func (s *Service) CheckUsername(ctx context.Context, username string, excludeUserID *uuid.UUID) (*models.UsernameCheckResponse, error) {
	username = strings.TrimSpace(username)
	s.logger.Info("CheckUsername: checking username=%s", username)

	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("%w: username must be 3-30 characters (letters, digits, underscores)", ErrInvalidInput)
	}

	taken, err := s.profileRepo.IsUsernameTaken(ctx, username, excludeUserID)
	if err != nil {
		s.logger.Error("CheckUsername: repository error: %v", err)
		return nil, fmt.Errorf("%w: CheckUsername - repository error: %v", ErrInternal, err)
	}

	return &models.UsernameCheckResponse{
		Username:  username,
		Available: !taken,
	}, nil
}

// GetTransactions получает журнал операций с баллами пользователя
func (s *Service) GetTransactions(ctx context.Context, userID uuid.UUID) (*models.PointsTransactionListResponse, error) {
	s.logger.Info("GetTransactions: fetching points ledger for user=%s", userID)

	transactions, err := s.profileRepo.GetTransactions(ctx, &userID)
	if err != nil {
		s.logger.Error("GetTransactions: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetTransactions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTransactions: successfully fetched %d entries for user=%s", len(transactions), userID)
	return models.FromDomainTransactionList(transactions), nil
}

// GetAllTransactions получает журнал операций с баллами всех пользователей
// (админский вид)
func (s *Service) GetAllTransactions(ctx context.Context) (*models.PointsTransactionListResponse, error) {
	s.logger.Info("GetAllTransactions: fetching points ledger for all users")

	transactions, err := s.profileRepo.GetTransactions(ctx, nil)
	if err != nil {
		s.logger.Error("GetAllTransactions: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllTransactions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllTransactions: successfully fetched %d entries", len(transactions))
	return models.FromDomainTransactionList(transactions), nil
}
