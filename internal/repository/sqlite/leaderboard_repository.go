package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/models"
	"github.com/sorabytes/otakudojo/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type leaderboardRepository struct {
	db *sql.DB
}

// NewLeaderboardRepository creates a new LeaderboardRepository implementation
func NewLeaderboardRepository(db *sql.DB) repository.LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) List(ctx context.Context, scope string, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("leaderboard_repo")
	log.Debug("listing leaderboard: scope=%s, limit=%d", scope, limit)

	var query squirrel.SelectBuilder
	if scope == models.ScopeGlobal {
		query = sqlBuilder.Select("u.username", "s.total_score", "s.global_streak").
			From("user_stats s").
			Join("users u ON u.id = s.user_id").
			Where(squirrel.Gt{"s.total_score": 0}).
			OrderBy("s.total_score DESC", "u.id ASC").
			Limit(uint64(limit))
	} else {
		col, err := streakColumn(models.PuzzleType(scope))
		if err != nil {
			return nil, err
		}
		query = sqlBuilder.Select("u.username", "SUM(sc.score) AS type_score", "s."+col).
			From("scores sc").
			Join("users u ON u.id = sc.user_id").
			Join("user_stats s ON s.user_id = sc.user_id").
			Where(squirrel.Eq{"sc.puzzle_type": scope}).
			GroupBy("sc.user_id").
			Having(squirrel.Gt{"type_score": 0}).
			OrderBy("type_score DESC", "u.id ASC").
			Limit(uint64(limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build leaderboard query: %v", err)
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query leaderboard: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Score, &e.Streak); err != nil {
			log.Error("failed to scan leaderboard row: %v", err)
			return nil, err
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	log.Debug("leaderboard entries: %d", len(entries))
	return entries, rows.Err()
}

func (r *leaderboardRepository) UserRank(ctx context.Context, username, scope string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("leaderboard_repo")
	log.Debug("computing rank: username=%s, scope=%s", username, scope)

	var rank int
	var err error
	if scope == models.ScopeGlobal {
		// Rank is 1 plus the number of strictly higher totals. Users with no
		// positive score stay off the board.
		err = r.db.QueryRowContext(ctx, `
SELECT CASE WHEN me.total_score > 0
    THEN 1 + (SELECT COUNT(*) FROM user_stats o WHERE o.total_score > me.total_score)
    ELSE 0 END
FROM user_stats me
JOIN users u ON u.id = me.user_id
WHERE u.username = ?
`, username).Scan(&rank)
	} else {
		if _, colErr := streakColumn(models.PuzzleType(scope)); colErr != nil {
			return 0, colErr
		}
		err = r.db.QueryRowContext(ctx, `
WITH totals AS (
    SELECT user_id, SUM(score) AS type_score
    FROM scores
    WHERE puzzle_type = ?
    GROUP BY user_id
)
SELECT CASE WHEN me.type_score > 0
    THEN 1 + (SELECT COUNT(*) FROM totals o WHERE o.type_score > me.type_score)
    ELSE 0 END
FROM totals me
JOIN users u ON u.id = me.user_id
WHERE u.username = ?
`, scope, username).Scan(&rank)
	}
	if err == sql.ErrNoRows {
		log.Debug("user has no entry in scope: username=%s, scope=%s", username, scope)
		return 0, nil
	}
	if err != nil {
		log.Error("failed to compute rank: %v", err)
		return 0, fmt.Errorf("computing %s rank for %s: %w", scope, username, err)
	}
	return rank, nil
}
