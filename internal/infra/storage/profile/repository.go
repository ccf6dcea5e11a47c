package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	"github.com/m04kA/GZ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GZ-BookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var profileColumns = []string{
	"user_id",
	"username",
	"full_name",
	"avatar_url",
	"points_balance",
	"created_at",
	"updated_at",
}

// Repository репозиторий профилей пользователей и журнала баллов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает профиль пользователя
func (r *Repository) Create(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_profiles").
		Columns("user_id", "username", "full_name", "avatar_url", "points_balance").
		Values(profile.UserID, profile.Username, profile.FullName, profile.AvatarURL, profile.PointsBalance).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time
	return profile, nil
}

// GetByUserID получает профиль по ID пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From("user_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	profile, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan profile: %v", ErrScanRow, err)
	}
	return profile, nil
}

// GetAll получает все профили (админский список пользователей)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.UserProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From("user_profiles").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	profiles := make([]*domain.UserProfile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan profile: %v", ErrScanRow, err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}
	return profiles, nil
}

// Update обновляет редактируемые поля профиля
func (r *Repository) Update(ctx context.Context, profile *domain.UserProfile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("user_profiles").
		Set("username", profile.Username).
		Set("full_name", profile.FullName).
		Set("avatar_url", profile.AvatarURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": profile.UserID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// IsUsernameTaken проверяет занятость username без учета регистра
func (r *Repository) IsUsernameTaken(ctx context.Context, username string, excludeUserID *uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("user_profiles").
		Where(squirrel.Expr("username ILIKE ?", username))

	if excludeUserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"user_id": *excludeUserID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsUsernameTaken - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsUsernameTaken - scan count: %v", ErrScanRow, err)
	}
	return count > 0, nil
}

// AdjustPoints атомарно изменяет баланс баллов на delta.
// Отрицательный delta, уводящий баланс ниже нуля, отклоняется.
func (r *Repository) AdjustPoints(ctx context.Context, userID uuid.UUID, delta int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("user_profiles").
		Set("points_balance", squirrel.Expr("points_balance + ?", delta)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Expr("points_balance + ? >= 0", delta)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AdjustPoints - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AdjustPoints - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AdjustPoints - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо профиля нет, либо не хватает баллов - различаем отдельным запросом
		if _, getErr := r.GetByUserID(ctx, userID); getErr != nil {
			return getErr
		}
		return ErrInsufficientPoints
	}
	return nil
}

// AddTransaction записывает операцию в журнал баллов
func (r *Repository) AddTransaction(ctx context.Context, tx *domain.PointsTransaction) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("points_transactions").
		Columns("user_id", "type", "points", "description").
		Values(tx.UserID, tx.Type, tx.Points, tx.Description).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddTransaction - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&tx.ID, &createdAt); err != nil {
		return fmt.Errorf("%w: AddTransaction - execute insert: %v", ErrExecQuery, err)
	}

	tx.CreatedAt = createdAt.Time
	return nil
}

// GetTransactions получает журнал операций с баллами, новые первыми.
// При userID == nil возвращается журнал всех пользователей (админский вид).
func (r *Repository) GetTransactions(ctx context.Context, userID *uuid.UUID) ([]*domain.PointsTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "user_id", "type", "points", "description", "created_at").
		From("points_transactions").
		OrderBy("created_at DESC")

	if userID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *userID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTransactions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTransactions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.PointsTransaction, 0)
	for rows.Next() {
		var tx domain.PointsTransaction
		var createdAt sql.NullTime
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Points, &tx.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetTransactions - scan transaction: %v", ErrScanRow, err)
		}
		tx.CreatedAt = createdAt.Time
		transactions = append(transactions, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTransactions - rows error: %v", ErrScanRow, err)
	}
	return transactions, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&profile.UserID,
		&profile.Username,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.PointsBalance,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time
	return &profile, nil
}
