package stations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	stationRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/station"
	"github.com/m04kA/GZ-BookingService/internal/service/stations/models"
)

// Service сервис для работы со станциями
type Service struct {
	stationRepo StationRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса станций
func NewService(stationRepo StationRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		stationRepo: stationRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetAll получает список станций. Публичный список включает
// только активные, админский - все.
func (s *Service) GetAll(ctx context.Context, onlyActive bool) (*models.StationListResponse, error) {
	s.logger.Info("GetAll: fetching stations, onlyActive=%t", onlyActive)

	stations, err := s.stationRepo.GetAll(ctx, onlyActive)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: successfully fetched %d stations", len(stations))
	return models.FromDomainStationList(stations), nil
}

// GetByID получает станцию по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.StationResponse, error) {
	s.logger.Info("GetByID: fetching station id=%s", id)

	station, err := s.stationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			s.logger.Warn("GetByID: station id=%s not found", id)
			return nil, ErrStationNotFound
		}
		s.logger.Error("GetByID: repository error for station id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStation(station), nil
}

// Create создает новую станцию
func (s *Service) Create(ctx context.Context, req *models.CreateStationRequest) (*models.StationResponse, error) {
	s.logger.Info("Create: creating station name=%s, type=%s", req.Name, req.Type)

	if err := validateStationFields(req.Name, req.Type, req.HourlyRate); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	station := &domain.Station{
		Name:        strings.TrimSpace(req.Name),
		Type:        domain.StationType(req.Type),
		HourlyRate:  req.HourlyRate,
		Description: req.Description,
		Active:      active,
	}

	created, err := s.stationRepo.Create(ctx, station)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created station id=%s", created.ID)
	return models.FromDomainStation(created), nil
}

// Update обновляет станцию. Меняются только переданные поля.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateStationRequest) (*models.StationResponse, error) {
	s.logger.Info("Update: updating station id=%s", id)

	station, err := s.stationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			s.logger.Warn("Update: station id=%s not found", id)
			return nil, ErrStationNotFound
		}
		s.logger.Error("Update: repository error for station id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		station.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		station.Type = domain.StationType(*req.Type)
	}
	if req.HourlyRate != nil {
		station.HourlyRate = *req.HourlyRate
	}
	if req.Description != nil {
		station.Description = req.Description
	}
	if req.Active != nil {
		station.Active = *req.Active
	}

	if err := validateStationFields(station.Name, string(station.Type), station.HourlyRate); err != nil {
		s.logger.Warn("Update: validation failed for station id=%s: %v", id, err)
		return nil, err
	}

	if err := s.stationRepo.Update(ctx, station); err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			return nil, ErrStationNotFound
		}
		s.logger.Error("Update: repository error for station id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated station id=%s", id)
	return models.FromDomainStation(station), nil
}

// Delete удаляет станцию. Станция с активными бронированиями
// не удаляется - сначала нужно разобраться с бронированиями.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting station id=%s", id)

	activeCount, err := s.bookingRepo.CountActiveByStation(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count active bookings for station id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - count active bookings: %v", ErrInternal, err)
	}

	if activeCount > 0 {
		s.logger.Warn("Delete: station id=%s has %d active bookings", id, activeCount)
		return ErrStationInUse
	}

	if err := s.stationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			s.logger.Warn("Delete: station id=%s not found", id)
			return ErrStationNotFound
		}
		s.logger.Error("Delete: repository error for station id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted station id=%s", id)
	return nil
}

func validateStationFields(name, stationType string, hourlyRate float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.StationType(stationType).IsValid() {
		return fmt.Errorf("%w: invalid station type", ErrInvalidInput)
	}
	if hourlyRate <= 0 {
		return fmt.Errorf("%w: hourly rate must be positive", ErrInvalidInput)
	}
	return nil
}
