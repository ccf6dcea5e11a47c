package domain

import (
	"time"

	"github.com/google/uuid"
)

// TournamentStatus represents the lifecycle state of a tournament
type TournamentStatus string

const (
	TournamentDraft     TournamentStatus = "draft"
	TournamentOpen      TournamentStatus = "open"
	TournamentPaused    TournamentStatus = "paused"
	TournamentCompleted TournamentStatus = "completed"
)

// IsValid reports whether the status is a known tournament state
func (s TournamentStatus) IsValid() bool {
	switch s {
	case TournamentDraft, TournamentOpen, TournamentPaused, TournamentCompleted:
		return true
	}
	return false
}

// TournamentType вид турнирной сетки
type TournamentType string

const (
	TournamentKnockout   TournamentType = "knockout"
	TournamentRoundRobin TournamentType = "round_robin"
)

// Tournament represents an organized competition hosted by the centre
type Tournament struct {
	ID             uuid.UUID
	Name           string
	Game           string
	Platform       StationType
	MaxPlayers     int
	TournamentType TournamentType
	Status         TournamentStatus
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
