package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	"github.com/m04kA/GZ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GZ-BookingService/pkg/psqlbuilder"
)

// Настройки хранятся одной строкой с фиксированным id
const settingsRowID = 1

// Repository репозиторий настроек центра и списка админов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAdminEmails получает список email администраторов
func (r *Repository) GetAdminEmails(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("admin_emails").
		From("admin_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAdminEmails - build select query: %v", ErrBuildQuery, err)
	}

	var emails pq.StringArray
	err = executor.QueryRowContext(ctx, query, args...).Scan(&emails)
	if err == sql.ErrNoRows {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAdminEmails - scan emails: %v", ErrScanRow, err)
	}
	return []string(emails), nil
}

// UpdateAdminEmails заменяет список email администраторов целиком
func (r *Repository) UpdateAdminEmails(ctx context.Context, emails []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("admin_settings").
		Columns("id", "admin_emails").
		Values(settingsRowID, pq.StringArray(emails)).
		Suffix("ON CONFLICT (id) DO UPDATE SET admin_emails = EXCLUDED.admin_emails, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateAdminEmails - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateAdminEmails - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetCentreConfig получает настройки работы центра.
// Возвращает ErrConfigNotFound, если строка еще не создана -
// вызывающий подставляет значения по умолчанию.
func (r *Repository) GetCentreConfig(ctx context.Context) (*domain.CentreConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"open_time",
		"close_time",
		"max_duration_hours",
		"advance_booking_days",
		"min_booking_notice_minutes",
		"updated_at",
	).
		From("centre_config").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCentreConfig - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.CentreConfig
	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.OpenTime,
		&config.CloseTime,
		&config.MaxDurationHours,
		&config.AdvanceBookingDays,
		&config.MinBookingNoticeMinutes,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCentreConfig - scan config: %v", ErrScanRow, err)
	}

	config.UpdatedAt = updatedAt.Time
	return &config, nil
}

// UpdateCentreConfig сохраняет настройки работы центра
func (r *Repository) UpdateCentreConfig(ctx context.Context, config *domain.CentreConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("centre_config").
		Columns("id", "open_time", "close_time", "max_duration_hours", "advance_booking_days", "min_booking_notice_minutes").
		Values(settingsRowID, config.OpenTime, config.CloseTime, config.MaxDurationHours, config.AdvanceBookingDays, config.MinBookingNoticeMinutes).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			max_duration_hours = EXCLUDED.max_duration_hours,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCentreConfig - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateCentreConfig - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}
