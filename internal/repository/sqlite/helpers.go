package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/models"
)

// Helper functions shared across repository implementations

const dateLayout = "2006-01-02"

func tx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	log := logger.FromContext(ctx).WithPrefix("repo")
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction: %v", err)
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		log.Debug("transaction rolled back due to error: %v", err)
		return err
	}
	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction: %v", err)
		return err
	}
	log.Debug("transaction committed")
	return nil
}

// streakColumn maps a puzzle type to its user_stats column. Column names are
// fixed here, never taken from input, so they are safe to splice into SQL.
func streakColumn(t models.PuzzleType) (string, error) {
	switch t {
	case models.TypeQuoteFill:
		return "streak_quote_fill", nil
	case models.TypeEmojiSensei:
		return "streak_emoji_sensei", nil
	case models.TypeWhoSaidIt:
		return "streak_who_said_it", nil
	case models.TypeMoodMatch:
		return "streak_mood_match", nil
	case models.TypeWhoAmI:
		return "streak_who_am_i", nil
	default:
		return "", fmt.Errorf("unknown puzzle type %q", t)
	}
}
