package services

import (
	"context"
	"time"

	"github.com/sorabytes/otakudojo/internal/errors"
	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/models"
	"github.com/sorabytes/otakudojo/internal/repository"
	"github.com/sorabytes/otakudojo/internal/scoring"
)

// ScoreService handles score submission and user stats
type ScoreService interface {
	Submit(ctx context.Context, username, puzzleID string, puzzleType models.PuzzleType, metrics models.Metrics) (*models.SubmitResult, error)
	UserStats(ctx context.Context, username string) (*models.UserStats, error)
}

type scoreService struct {
	stats       repository.StatsRepository
	leaderboard repository.LeaderboardRepository
	now         func() time.Time
}

// NewScoreService creates a new ScoreService
func NewScoreService(stats repository.StatsRepository, leaderboard repository.LeaderboardRepository) ScoreService {
	return &scoreService{
		stats:       stats,
		leaderboard: leaderboard,
		now:         time.Now,
	}
}

func (s *scoreService) Submit(ctx context.Context, username, puzzleID string, puzzleType models.PuzzleType, metrics models.Metrics) (*models.SubmitResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting score: username=%s, puzzle_id=%s, type=%s", username, puzzleID, puzzleType)

	if username == "" {
		return nil, errors.NewValidationError("username", "must not be empty")
	}
	if puzzleID == "" {
		return nil, errors.NewValidationError("puzzle_id", "must not be empty")
	}
	if !puzzleType.Valid() {
		return nil, errors.NewValidationError("puzzle_type", "unknown puzzle type")
	}
	if metrics.Accuracy < 0 || metrics.Accuracy > 1 {
		return nil, errors.NewValidationError("accuracy", "must be between 0 and 1")
	}
	if metrics.TimeMs < 0 {
		return nil, errors.NewValidationError("time_ms", "must not be negative")
	}
	if metrics.HintsUsed < 0 {
		return nil, errors.NewValidationError("hints_used", "must not be negative")
	}

	score := scoring.Score(metrics.Accuracy, metrics.TimeMs, metrics.HintsUsed, puzzleType)

	_, err := s.stats.Submit(ctx, models.Submission{
		Username:   username,
		PuzzleID:   puzzleID,
		PuzzleType: puzzleType,
		Score:      score,
		Metrics:    metrics,
		PlayDate:   s.now().UTC(),
	})
	if err != nil {
		log.Error("failed to persist submission: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// The submission is already committed, so a rank lookup failure degrades
	// the response instead of failing it.
	rank, err := s.leaderboard.UserRank(ctx, username, string(puzzleType))
	if err != nil {
		log.Warn("failed to compute rank after submission: %v", err)
		rank = 0
	}

	log.Info("score submitted: username=%s, puzzle_id=%s, score=%d, rank=%d", username, puzzleID, score, rank)
	return &models.SubmitResult{
		Success: true,
		Score:   score,
		NewRank: rank,
	}, nil
}

func (s *scoreService) UserStats(ctx context.Context, username string) (*models.UserStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting user stats: username=%s", username)

	if username == "" {
		return nil, errors.NewValidationError("username", "must not be empty")
	}

	stats, err := s.stats.GetUserStats(ctx, username)
	if err != nil {
		log.Error("failed to get user stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if stats == nil {
		return nil, errors.NewNotFoundError("user", username)
	}
	return stats, nil
}
