package domain

import (
	"time"

	"github.com/google/uuid"
)

// StationType represents the kind of gaming rig
type StationType string

const (
	StationTypePC  StationType = "PC"
	StationTypePS5 StationType = "PS5"
)

// IsValid reports whether the station type is one of the known kinds
func (t StationType) IsValid() bool {
	return t == StationTypePC || t == StationTypePS5
}

// Station represents a bookable gaming rig
type Station struct {
	ID          uuid.UUID
	Name        string
	Type        StationType
	HourlyRate  float64
	Description *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsBookable returns true if the station accepts new bookings
func (s *Station) IsBookable() bool {
	return s.Active
}
