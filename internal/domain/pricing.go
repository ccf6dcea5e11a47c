package domain

import (
	"math"
	"time"
)

// Payment rules of the gaming centre. The advance share and cancellation
// fee percentages are fixed business constants, not configuration.
const (
	// AdvanceShare доля предоплаты при бронировании
	AdvanceShare = 0.30

	// CancellationFeeRate комиссия за отмену после грейс-периода
	CancellationFeeRate = 0.05

	// CancellationGracePeriod окно после создания бронирования,
	// в течение которого отмена возвращает всю оплаченную сумму
	CancellationGracePeriod = time.Hour
)

// BookingTotal computes the session price:
// hourly rate x whole hours x concurrent players.
func BookingTotal(hourlyRate float64, durationHours, userCount int) float64 {
	return hourlyRate * float64(durationHours) * float64(userCount)
}

// AdvanceAmount computes the upfront payment for the advance option,
// rounded to a whole rupee (amounts are displayed without sub-units).
func AdvanceAmount(total float64) float64 {
	return math.Round(total * AdvanceShare)
}

// OutstandingBalance returns the unpaid remainder, clamped to zero.
func OutstandingBalance(total, paid float64) float64 {
	remaining := total - paid
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RefundQuote holds the result of a cancellation computation.
// Refund + Fee always equals the amount paid.
type RefundQuote struct {
	Refund float64
	Fee    float64
}

// ComputeRefund calculates the refund for cancelling a booking at `now`.
// Within the grace period after creation the full paid amount is returned;
// afterwards a 5% fee (rounded to 2 decimal places) is withheld.
func ComputeRefund(amountPaid float64, createdAt, now time.Time) RefundQuote {
	if amountPaid <= 0 {
		return RefundQuote{}
	}

	elapsed := now.Sub(createdAt)
	if elapsed <= CancellationGracePeriod {
		return RefundQuote{Refund: amountPaid, Fee: 0}
	}

	fee := round2(amountPaid * CancellationFeeRate)
	return RefundQuote{Refund: amountPaid - fee, Fee: fee}
}

// round2 rounds to 2 decimal places (currency cents)
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
