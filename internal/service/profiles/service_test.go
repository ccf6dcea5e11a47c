package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GZ-BookingService/internal/domain"
)

type fakeProfileRepo struct {
	transactions []*domain.PointsTransaction

	gotUserID    *uuid.UUID
	gotUserIDSet bool
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	return profile, nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	return &domain.UserProfile{UserID: userID}, nil
}

func (f *fakeProfileRepo) GetAll(ctx context.Context) ([]*domain.UserProfile, error) {
	return []*domain.UserProfile{}, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *domain.UserProfile) error {
	return nil
}

func (f *fakeProfileRepo) IsUsernameTaken(ctx context.Context, username string, excludeUserID *uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeProfileRepo) GetTransactions(ctx context.Context, userID *uuid.UUID) ([]*domain.PointsTransaction, error) {
	f.gotUserID = userID
	f.gotUserIDSet = true

	if userID == nil {
		return f.transactions, nil
	}
	filtered := make([]*domain.PointsTransaction, 0)
	for _, tx := range f.transactions {
		if tx.UserID == *userID {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func ledgerEntry(userID uuid.UUID, txType domain.PointsTransactionType, points int) *domain.PointsTransaction {
	return &domain.PointsTransaction{
		UserID:    userID,
		Type:      txType,
		Points:    points,
		CreatedAt: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetTransactions_ScopedToUser(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	repo := &fakeProfileRepo{
		transactions: []*domain.PointsTransaction{
			ledgerEntry(userID, domain.PointsEarned, 480),
			ledgerEntry(otherID, domain.PointsRedeemed, 500),
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetTransactions(context.Background(), userID)
	require.NoError(t, err)

	require.NotNil(t, repo.gotUserID)
	assert.Equal(t, userID, *repo.gotUserID)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, userID, resp.Transactions[0].UserID)
}

func TestGetAllTransactions_ReturnsEveryUsersLedger(t *testing.T) {
	repo := &fakeProfileRepo{
		transactions: []*domain.PointsTransaction{
			ledgerEntry(uuid.New(), domain.PointsEarned, 480),
			ledgerEntry(uuid.New(), domain.PointsRedeemed, 500),
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetAllTransactions(context.Background())
	require.NoError(t, err)

	// Админский вид запрашивает журнал без фильтра по пользователю
	assert.True(t, repo.gotUserIDSet)
	assert.Nil(t, repo.gotUserID)
	assert.Len(t, resp.Transactions, 2)
}
