package repository

import (
	"context"

	"github.com/sorabytes/otakudojo/internal/models"
)

// PackRepository handles daily pack and puzzle template data access
type PackRepository interface {
	// GetPack returns the pack for a YYYY-MM-DD date, or nil when none exists.
	GetPack(ctx context.Context, date string) (*models.DailyPack, error)
	InsertPack(ctx context.Context, pack models.DailyPack) error
	// InsertTemplate records a generated puzzle in the dedup cache. It reports
	// false when a template with the same content hash was already stored.
	InsertTemplate(ctx context.Context, tmpl models.PuzzleTemplate) (bool, error)
}

// StatsRepository handles user stats and score data access
type StatsRepository interface {
	// Submit records a scored play atomically: it upserts the user, replaces
	// any previous score for the same puzzle, and advances streak counters.
	// It returns the stats row as committed.
	Submit(ctx context.Context, sub models.Submission) (*models.UserStats, error)
	// GetUserStats returns the stats for a username, or nil when the user
	// has never submitted a score.
	GetUserStats(ctx context.Context, username string) (*models.UserStats, error)
}

// LeaderboardRepository handles leaderboard queries
type LeaderboardRepository interface {
	List(ctx context.Context, scope string, limit int) ([]models.LeaderboardEntry, error)
	// UserRank returns the 1-based rank of a user within a scope, or 0 when
	// the user does not qualify for that scope's board.
	UserRank(ctx context.Context, username, scope string) (int, error)
}
