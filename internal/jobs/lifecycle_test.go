package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeBookingRepo struct {
	started int64
	ended   int64

	ongoingErr error
	endedErr   error

	gotOngoingNow time.Time
	gotEndedNow   time.Time
}

func (f *fakeBookingRepo) MarkOngoing(ctx context.Context, now time.Time) (int64, error) {
	f.gotOngoingNow = now
	return f.started, f.ongoingErr
}

func (f *fakeBookingRepo) MarkEnded(ctx context.Context, now time.Time) (int64, error) {
	f.gotEndedNow = now
	return f.ended, f.endedErr
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestRun_PassesCurrentTimeToBothTransitions(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{started: 2, ended: 1}

	svc := NewLifecycleService(repo, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: now}

	svc.Run(context.Background())

	assert.Equal(t, now, repo.gotOngoingNow)
	assert.Equal(t, now, repo.gotEndedNow)
}

func TestRun_EndedRunsEvenIfOngoingFails(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{ongoingErr: errors.New("connection refused")}

	svc := NewLifecycleService(repo, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: now}

	svc.Run(context.Background())

	// Сбой первого перехода не отменяет второй
	assert.Equal(t, now, repo.gotEndedNow)
}
