package domain

// SummaryStats aggregate booking metrics for the admin dashboard
type SummaryStats struct {
	TotalBookings int64
	PaidBookings  int64
	TotalRevenue  float64
	OccupancyRate float64 // booked station-hours / available station-hours, percent
}

// PaymentStats aggregate advance-payment metrics. Collected independently
// of SummaryStats: the two queries carry no ordering dependency.
type PaymentStats struct {
	TotalAdvanceCollected float64
	TotalRemaining        float64
	AdvanceBookingsCount  int64
	TotalBookings         int64
}
