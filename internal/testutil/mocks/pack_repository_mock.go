package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sorabytes/otakudojo/internal/models"
)

// MockPackRepository is a mock implementation of repository.PackRepository
type MockPackRepository struct {
	mock.Mock
}

func (m *MockPackRepository) GetPack(ctx context.Context, date string) (*models.DailyPack, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyPack), args.Error(1)
}

func (m *MockPackRepository) InsertPack(ctx context.Context, pack models.DailyPack) error {
	args := m.Called(ctx, pack)
	return args.Error(0)
}

func (m *MockPackRepository) InsertTemplate(ctx context.Context, tmpl models.PuzzleTemplate) (bool, error) {
	args := m.Called(ctx, tmpl)
	return args.Bool(0), args.Error(1)
}
