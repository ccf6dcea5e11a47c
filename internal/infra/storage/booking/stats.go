package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	"github.com/m04kA/GZ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GZ-BookingService/pkg/psqlbuilder"
)

// SummaryAggregate сырые агрегаты по бронированиям за период.
// Occupancy считает сервис статистики - ему нужны ещё станции и режим работы.
type SummaryAggregate struct {
	TotalBookings int64
	PaidBookings  int64
	TotalRevenue  float64
	BookedHours   int64
}

// AggregateSummary собирает агрегаты по активным бронированиям за период
func (r *Repository) AggregateSummary(ctx context.Context, from, to *time.Time) (*SummaryAggregate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE amount_paid >= total_amount)",
		"COALESCE(SUM(total_amount), 0)",
		"COALESCE(SUM(duration_hours), 0)",
	).
		From("bookings").
		Where(squirrel.Eq{"status": domain.ActiveStatuses})

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AggregateSummary - build select query: %v", ErrBuildQuery, err)
	}

	var agg SummaryAggregate
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&agg.TotalBookings,
		&agg.PaidBookings,
		&agg.TotalRevenue,
		&agg.BookedHours,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: AggregateSummary - scan aggregates: %v", ErrScanRow, err)
	}

	return &agg, nil
}

// AggregatePayments собирает агрегаты по предоплатам и остаткам
func (r *Repository) AggregatePayments(ctx context.Context) (*domain.PaymentStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COALESCE(SUM(advance_amount) FILTER (WHERE advance_payment), 0)",
		"COALESCE(SUM(GREATEST(total_amount - amount_paid, 0)), 0)",
		"COUNT(*) FILTER (WHERE advance_payment)",
		"COUNT(*)",
	).
		From("bookings").
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AggregatePayments - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.PaymentStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalAdvanceCollected,
		&stats.TotalRemaining,
		&stats.AdvanceBookingsCount,
		&stats.TotalBookings,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: AggregatePayments - scan aggregates: %v", ErrScanRow, err)
	}

	return &stats, nil
}
