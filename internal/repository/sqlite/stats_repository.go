package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/models"
	"github.com/sorabytes/otakudojo/internal/repository"
	"github.com/sorabytes/otakudojo/internal/streak"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Submit(ctx context.Context, sub models.Submission) (*models.UserStats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("submitting score: username=%s, puzzle_id=%s, score=%d", sub.Username, sub.PuzzleID, sub.Score)

	var out *models.UserStats
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		var userID int64
		err := tx.QueryRowContext(ctx, `
INSERT INTO users (username) VALUES (?)
ON CONFLICT(username) DO UPDATE SET username = excluded.username
RETURNING id
`, sub.Username).Scan(&userID)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO user_stats (user_id) VALUES (?)
`, userID); err != nil {
			return err
		}

		stats, err := scanStats(tx.QueryRowContext(ctx, selectStatsQuery+` WHERE s.user_id = ?`, userID))
		if err != nil {
			return err
		}

		advanced := streak.Advance(*stats, sub.PuzzleType, sub.Score, sub.PlayDate)

		// Replace any earlier score for the same puzzle. The running total
		// still grows by the full submitted score.
		if _, err := tx.ExecContext(ctx, `
INSERT INTO scores (user_id, puzzle_id, puzzle_type, score, time_ms, hints_used, accuracy, play_date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, puzzle_id) DO UPDATE SET
    puzzle_type = excluded.puzzle_type,
    score = excluded.score,
    time_ms = excluded.time_ms,
    hints_used = excluded.hints_used,
    accuracy = excluded.accuracy,
    play_date = excluded.play_date
`, userID, sub.PuzzleID, string(sub.PuzzleType), sub.Score,
			sub.Metrics.TimeMs, sub.Metrics.HintsUsed, sub.Metrics.Accuracy,
			sub.PlayDate.UTC().Format(dateLayout)); err != nil {
			return err
		}

		var lastPlay any
		if !advanced.LastPlayDate.IsZero() {
			lastPlay = advanced.LastPlayDate.UTC().Format(dateLayout)
		}
		if _, err := tx.ExecContext(ctx, `
UPDATE user_stats SET
    total_score = ?,
    puzzles_completed = ?,
    last_play_date = ?,
    global_streak = ?,
    streak_quote_fill = ?,
    streak_emoji_sensei = ?,
    streak_who_said_it = ?,
    streak_mood_match = ?,
    streak_who_am_i = ?,
    updated_at = CURRENT_TIMESTAMP
WHERE user_id = ?
`, advanced.TotalScore, advanced.PuzzlesCompleted, lastPlay, advanced.GlobalStreak,
			advanced.Streak(models.TypeQuoteFill),
			advanced.Streak(models.TypeEmojiSensei),
			advanced.Streak(models.TypeWhoSaidIt),
			advanced.Streak(models.TypeMoodMatch),
			advanced.Streak(models.TypeWhoAmI),
			userID); err != nil {
			return err
		}

		out = &advanced
		return nil
	})
	if err != nil {
		log.Error("failed to submit score: %v", err)
		return nil, err
	}
	log.Debug("score submitted: username=%s, total_score=%d, global_streak=%d", sub.Username, out.TotalScore, out.GlobalStreak)
	return out, nil
}

func (r *statsRepository) GetUserStats(ctx context.Context, username string) (*models.UserStats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("fetching user stats: username=%s", username)

	stats, err := scanStats(r.db.QueryRowContext(ctx, selectStatsQuery+` WHERE u.username = ?`, username))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("user not found: username=%s", username)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user stats: %v", err)
		return nil, err
	}
	return stats, nil
}

const selectStatsQuery = `
SELECT u.id, u.username, s.total_score, s.puzzles_completed, s.last_play_date,
       s.global_streak, s.streak_quote_fill, s.streak_emoji_sensei,
       s.streak_who_said_it, s.streak_mood_match, s.streak_who_am_i
FROM user_stats s
JOIN users u ON u.id = s.user_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStats(row rowScanner) (*models.UserStats, error) {
	var s models.UserStats
	var lastPlay sql.NullString
	var quoteFill, emojiSensei, whoSaidIt, moodMatch, whoAmI int
	if err := row.Scan(&s.UserID, &s.Username, &s.TotalScore, &s.PuzzlesCompleted, &lastPlay,
		&s.GlobalStreak, &quoteFill, &emojiSensei, &whoSaidIt, &moodMatch, &whoAmI); err != nil {
		return nil, err
	}
	if lastPlay.Valid && lastPlay.String != "" {
		t, err := time.ParseInLocation(dateLayout, lastPlay.String, time.UTC)
		if err != nil {
			return nil, err
		}
		s.LastPlayDate = t
	}
	s.TypeStreaks = map[models.PuzzleType]int{
		models.TypeQuoteFill:   quoteFill,
		models.TypeEmojiSensei: emojiSensei,
		models.TypeWhoSaidIt:   whoSaidIt,
		models.TypeMoodMatch:   moodMatch,
		models.TypeWhoAmI:      whoAmI,
	}
	return &s, nil
}
