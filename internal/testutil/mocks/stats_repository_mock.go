package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sorabytes/otakudojo/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Submit(ctx context.Context, sub models.Submission) (*models.UserStats, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

func (m *MockStatsRepository) GetUserStats(ctx context.Context, username string) (*models.UserStats, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}
