package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coupon represents a single-use discount coupon. Coupons are issued by
// admins or minted through points redemption.
type Coupon struct {
	ID            uuid.UUID
	Code          string
	DiscountValue float64 // rupees off, whole units
	UsedBy        *uuid.UUID
	CreatedAt     time.Time
}

// IsUsed returns true if the coupon has already been redeemed at checkout
func (c *Coupon) IsUsed() bool {
	return c.UsedBy != nil
}
