package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingTotal(t *testing.T) {
	// 120 руп/час x 2 часа x 3 игрока
	assert.Equal(t, 720.0, BookingTotal(120, 2, 3))
	assert.Equal(t, 150.0, BookingTotal(150, 1, 1))
}

func TestAdvanceAmount(t *testing.T) {
	// 30% от суммы, округление до целой рупии
	assert.Equal(t, 216.0, AdvanceAmount(720))
	assert.Equal(t, 45.0, AdvanceAmount(150))
	// 30% от 125 = 37.5 -> 38
	assert.Equal(t, 38.0, AdvanceAmount(125))
}

func TestOutstandingBalance(t *testing.T) {
	assert.Equal(t, 504.0, OutstandingBalance(720, 216))
	assert.Equal(t, 0.0, OutstandingBalance(720, 720))
	// Переплата не уходит в минус
	assert.Equal(t, 0.0, OutstandingBalance(720, 800))
}

func TestComputeRefund_WithinGracePeriod(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// Ровно на границе грейс-периода возврат ещё полный
	quote := ComputeRefund(216, createdAt, createdAt.Add(time.Hour))
	assert.Equal(t, 216.0, quote.Refund)
	assert.Equal(t, 0.0, quote.Fee)

	quote = ComputeRefund(216, createdAt, createdAt.Add(10*time.Minute))
	assert.Equal(t, 216.0, quote.Refund)
	assert.Equal(t, 0.0, quote.Fee)
}

func TestComputeRefund_AfterGracePeriod(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	quote := ComputeRefund(216, createdAt, createdAt.Add(2*time.Hour))
	assert.Equal(t, 10.8, quote.Fee)
	assert.Equal(t, 205.2, quote.Refund)
}

func TestComputeRefund_NothingPaid(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	quote := ComputeRefund(0, createdAt, createdAt.Add(5*time.Hour))
	assert.Equal(t, 0.0, quote.Refund)
	assert.Equal(t, 0.0, quote.Fee)
}

func TestComputeRefund_RefundPlusFeeEqualsPaid(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	now := createdAt.Add(3 * time.Hour)

	for _, paid := range []float64{1, 45, 99.99, 216, 513.5, 1000} {
		quote := ComputeRefund(paid, createdAt, now)
		assert.InDelta(t, paid, quote.Refund+quote.Fee, 1e-9, "paid=%v", paid)
	}
}

func TestPointsForBooking(t *testing.T) {
	assert.Equal(t, 720, PointsForBooking(720))
	assert.Equal(t, 99, PointsForBooking(99.99))
	assert.Equal(t, 0, PointsForBooking(0))
}
