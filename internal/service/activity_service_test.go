package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adminpanel/internal/model"
	"adminpanel/internal/repository"
)

// MockActivityLogRepository is a mock implementation of repository.ActivityLogRepository.
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) List(ctx context.Context, q repository.ListQuery) ([]model.ActivityLog, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) ListByUser(ctx context.Context, userID uint, q repository.ListQuery) ([]model.ActivityLog, error) {
	args := m.Called(ctx, userID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityLog), args.Error(1)
}

func TestActivityService_Record(t *testing.T) {
	t.Run("writes an entry", func(t *testing.T) {
		repo := new(MockActivityLogRepository)
		svc := NewActivityService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(entry *model.ActivityLog) bool {
			return entry.UserID == 1 && entry.Action == model.ActionSignIn && entry.IPAddress == "10.0.0.1"
		})).Return(nil)

		svc.Record(context.Background(), 1, model.ActionSignIn, "10.0.0.1", "")
		repo.AssertExpectations(t)
	})

	t.Run("repository failure is swallowed", func(t *testing.T) {
		repo := new(MockActivityLogRepository)
		svc := NewActivityService(repo)

		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("datastore down"))

		// Recording is best-effort; the call must not panic or surface the error.
		svc.Record(context.Background(), 1, model.ActionSignOut, "", "")
	})
}

func TestActivityService_ListByUser(t *testing.T) {
	repo := new(MockActivityLogRepository)
	svc := NewActivityService(repo)

	entries := []model.ActivityLog{{ID: 2, UserID: 1, Action: model.ActionSignIn}}
	q := repository.ListQuery{Limit: 10}
	repo.On("ListByUser", mock.Anything, uint(1), q).Return(entries, nil)

	got, err := svc.ListByUser(context.Background(), 1, q)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
