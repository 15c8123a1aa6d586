package services

import (
	"context"

	"github.com/sorabytes/otakudojo/internal/errors"
	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/models"
	"github.com/sorabytes/otakudojo/internal/repository"
)

const maxLeaderboardLimit = 100

// LeaderboardService handles leaderboard queries
type LeaderboardService interface {
	List(ctx context.Context, scope string, limit int) ([]models.LeaderboardEntry, error)
	UserRank(ctx context.Context, username, scope string) (int, error)
}

type leaderboardService struct {
	repo         repository.LeaderboardRepository
	defaultLimit int
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(repo repository.LeaderboardRepository, defaultLimit int) LeaderboardService {
	return &leaderboardService{repo: repo, defaultLimit: defaultLimit}
}

func (s *leaderboardService) List(ctx context.Context, scope string, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing leaderboard: scope=%s, limit=%d", scope, limit)

	if scope == "" {
		scope = models.ScopeGlobal
	}
	if !models.ValidScope(scope) {
		return nil, errors.NewValidationError("scope", "must be global or a puzzle type")
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	entries, err := s.repo.List(ctx, scope, limit)
	if err != nil {
		log.Error("failed to list leaderboard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return entries, nil
}

func (s *leaderboardService) UserRank(ctx context.Context, username, scope string) (int, error) {
	log := logger.FromContext(ctx)
	log.Debug("fetching user rank: username=%s, scope=%s", username, scope)

	if username == "" {
		return 0, errors.NewValidationError("username", "cannot be empty")
	}
	if scope == "" {
		scope = models.ScopeGlobal
	}
	if !models.ValidScope(scope) {
		return 0, errors.NewValidationError("scope", "must be global or a puzzle type")
	}

	rank, err := s.repo.UserRank(ctx, username, scope)
	if err != nil {
		log.Error("failed to get user rank: %v", err)
		return 0, errors.NewInternalError(err)
	}
	return rank, nil
}
