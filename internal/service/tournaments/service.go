package tournaments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	tournamentRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/tournament"
	"github.com/m04kA/GZ-BookingService/internal/service/tournaments/models"
)

// Service сервис для работы с турнирами
type Service struct {
	tournamentRepo TournamentRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса турниров
func NewService(tournamentRepo TournamentRepository, logger Logger) *Service {
	return &Service{
		tournamentRepo: tournamentRepo,
		logger:         logger,
	}
}

// GetAll получает турниры. Публичный список включает только открытые
// и приостановленные, админский - все.
func (s *Service) GetAll(ctx context.Context, includeHidden bool) (*models.TournamentListResponse, error) {
	s.logger.Info("GetAll: fetching tournaments, includeHidden=%t", includeHidden)

	tournaments, err := s.tournamentRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	if !includeHidden {
		visible := make([]*domain.Tournament, 0, len(tournaments))
		for _, t := range tournaments {
			if t.Status == domain.TournamentOpen || t.Status == domain.TournamentPaused {
				visible = append(visible, t)
			}
		}
		tournaments = visible
	}

	s.logger.Info("GetAll: successfully fetched %d tournaments", len(tournaments))
	return models.FromDomainTournamentList(tournaments), nil
}

// Create создает новый турнир в статусе draft (админская операция)
func (s *Service) Create(ctx context.Context, req *models.CreateTournamentRequest) (*models.TournamentResponse, error) {
	s.logger.Info("Create: creating tournament name=%s, game=%s", req.Name, req.Game)

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Game) == "" {
		s.logger.Warn("Create: name and game are required")
		return nil, fmt.Errorf("%w: name and game are required", ErrInvalidInput)
	}
	if !domain.StationType(req.Platform).IsValid() {
		s.logger.Warn("Create: invalid platform=%s", req.Platform)
		return nil, fmt.Errorf("%w: invalid platform", ErrInvalidInput)
	}
	if req.MaxPlayers <= 1 {
		s.logger.Warn("Create: invalid max players=%d", req.MaxPlayers)
		return nil, fmt.Errorf("%w: max players must be greater than one", ErrInvalidInput)
	}
	tournamentType := domain.TournamentType(req.TournamentType)
	if tournamentType != domain.TournamentKnockout && tournamentType != domain.TournamentRoundRobin {
		s.logger.Warn("Create: invalid tournament type=%s", req.TournamentType)
		return nil, fmt.Errorf("%w: invalid tournament type", ErrInvalidInput)
	}

	tournament := &domain.Tournament{
		Name:           strings.TrimSpace(req.Name),
		Game:           strings.TrimSpace(req.Game),
		Platform:       domain.StationType(req.Platform),
		MaxPlayers:     req.MaxPlayers,
		TournamentType: tournamentType,
		Status:         domain.TournamentDraft,
		Description:    req.Description,
	}

	created, err := s.tournamentRepo.Create(ctx, tournament)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created tournament id=%s", created.ID)
	return models.FromDomainTournament(created), nil
}

// UpdateStatus меняет статус турнира (админская операция)
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating tournament id=%s to status=%s", id, req.Status)

	status, err := models.ToDomainTournamentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for tournament id=%s", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.tournamentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			s.logger.Warn("UpdateStatus: tournament id=%s not found", id)
			return ErrTournamentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for tournament id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated tournament id=%s to status=%s", id, status)
	return nil
}

// Delete удаляет турнир (админская операция)
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting tournament id=%s", id)

	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			s.logger.Warn("Delete: tournament id=%s not found", id)
			return ErrTournamentNotFound
		}
		s.logger.Error("Delete: repository error for tournament id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted tournament id=%s", id)
	return nil
}
