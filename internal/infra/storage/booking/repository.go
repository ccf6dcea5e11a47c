package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	"github.com/m04kA/GZ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GZ-BookingService/pkg/psqlbuilder"
)

// bookingColumns полный список колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"user_id",
	"station_id",
	"booking_date",
	"start_time",
	"duration_hours",
	"user_count",
	"start_at",
	"end_at",
	"total_amount",
	"advance_payment",
	"advance_amount",
	"amount_paid",
	"status",
	"station_name",
	"station_type",
	"hourly_rate",
	"cancellation_reason",
	"cancelled_at",
	"refund_amount",
	"cancellation_fee",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value),
// использует её - создание бронирования всегда выполняется в сериализуемой
// транзакции вместе с проверкой доступности слота.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"station_id",
			"booking_date",
			"start_time",
			"duration_hours",
			"user_count",
			"start_at",
			"end_at",
			"total_amount",
			"advance_payment",
			"advance_amount",
			"amount_paid",
			"status",
			"station_name",
			"station_type",
			"hourly_rate",
		).
		Values(
			booking.UserID,
			booking.StationID,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationHours,
			booking.UserCount,
			booking.StartAt,
			booking.EndAt,
			booking.TotalAmount,
			booking.AdvancePayment,
			booking.AdvanceAmount,
			booking.AmountPaid,
			booking.Status,
			booking.StationName,
			booking.StationType,
			booking.HourlyRate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя.
// По умолчанию отменённые бронирования исключаются; чтобы получить их,
// нужно явно запросить статус CANCELLED.
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ActiveStatuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetWithFilter получает бронирования с гибкой фильтрацией.
// Используется админским списком и проверкой доступности слотов.
//
// Если запрос выполняется внутри транзакции и фильтр указывает на одну
// конкретную дату и станцию, строки блокируются (FOR UPDATE) - это
// защищает создание бронирования от гонки за один слот.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.StationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"station_id": *filter.StationID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ActiveStatuses})
	}

	singleDay := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDay {
		// Для конкретной даты сортируем по времени начала
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDay && filter.StationID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetActiveByStationAndDate получает активные бронирования станции на дату.
// Вспомогательная обертка над GetWithFilter для расчёта слотов.
func (r *Repository) GetActiveByStationAndDate(ctx context.Context, stationID uuid.UUID, date time.Time) ([]*domain.Booking, error) {
	return r.GetWithFilter(ctx, domain.BookingsFilter{
		StationID: &stationID,
		StartDate: &date,
		EndDate:   &date,
	})
}

// Update обновляет редактируемые поля бронирования (админская правка)
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", booking.BookingDate).
		Set("start_time", booking.StartTime).
		Set("duration_hours", booking.DurationHours).
		Set("user_count", booking.UserCount).
		Set("start_at", booking.StartAt).
		Set("end_at", booking.EndAt).
		Set("total_amount", booking.TotalAmount).
		Set("status", booking.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Update")
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// UpdatePayment устанавливает оплаченную сумму бронирования
func (r *Repository) UpdatePayment(ctx context.Context, id uuid.UUID, amountPaid float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("amount_paid", amountPaid).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePayment - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdatePayment")
}

// Cancel отменяет бронирование, сохраняя применённый возврат и комиссию.
// Именно эти значения являются авторитетным результатом отмены.
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, reason string, refund, fee float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("refund_amount", refund).
		Set("cancellation_fee", fee).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// MarkOngoing переводит наступившие бронирования в статус ONGOING.
// Возвращает количество обновлённых строк. Используется фоновой задачей.
func (r *Repository) MarkOngoing(ctx context.Context, now time.Time) (int64, error) {
	return r.transition(ctx, domain.StatusUpcoming, domain.StatusOngoing, "start_at", now, "MarkOngoing")
}

// MarkEnded переводит завершившиеся бронирования в статус ENDED
func (r *Repository) MarkEnded(ctx context.Context, now time.Time) (int64, error) {
	return r.transition(ctx, domain.StatusOngoing, domain.StatusEnded, "end_at", now, "MarkEnded")
}

func (r *Repository) transition(ctx context.Context, from, to domain.BookingStatus, timeColumn string, now time.Time, op string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": from}).
		Where(squirrel.LtOrEq{timeColumn: now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	return rowsAffected, nil
}

// CountActiveByStation считает активные бронирования станции.
// Используется защитой от удаления станции с бронированиями.
func (r *Repository) CountActiveByStation(ctx context.Context, stationID uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"station_id": stationID}).
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByStation - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByStation - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.StationID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationHours,
		&booking.UserCount,
		&booking.StartAt,
		&booking.EndAt,
		&booking.TotalAmount,
		&booking.AdvancePayment,
		&booking.AdvanceAmount,
		&booking.AmountPaid,
		&booking.Status,
		&booking.StationName,
		&booking.StationType,
		&booking.HourlyRate,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&booking.RefundAmount,
		&booking.CancellationFee,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
