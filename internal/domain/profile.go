package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Points economy constants
const (
	// PointsPerRupee курс списания: 100 баллов = 1 рупия скидки
	PointsPerRupee = 100
)

// UserProfile represents a customer profile kept alongside the external
// identity provider's account.
type UserProfile struct {
	UserID        uuid.UUID
	Username      string
	FullName      *string
	AvatarURL     *string
	PointsBalance int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PointsTransactionType направление операции с баллами
type PointsTransactionType string

const (
	PointsEarned   PointsTransactionType = "earned"
	PointsRedeemed PointsTransactionType = "redeemed"
)

// PointsTransaction represents one entry in the loyalty points ledger
type PointsTransaction struct {
	ID          int64
	UserID      uuid.UUID
	Type        PointsTransactionType
	Points      int
	Description string
	CreatedAt   time.Time
}

// PointsForBooking returns the loyalty points awarded when a booking is
// fully paid: one point per whole rupee of the total.
func PointsForBooking(totalAmount float64) int {
	if totalAmount <= 0 {
		return 0
	}
	return int(math.Floor(totalAmount))
}

// RedemptionValue converts a points cost into its rupee discount value
func RedemptionValue(points int) float64 {
	return float64(points) / PointsPerRupee
}
