package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sorabytes/otakudojo/internal/models"
)

// MockLeaderboardRepository is a mock implementation of repository.LeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) List(ctx context.Context, scope string, limit int) ([]models.LeaderboardEntry, error) {
	args := m.Called(ctx, scope, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) UserRank(ctx context.Context, username, scope string) (int, error) {
	args := m.Called(ctx, username, scope)
	return args.Int(0), args.Error(1)
}
