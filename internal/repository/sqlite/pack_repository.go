package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/models"
	"github.com/sorabytes/otakudojo/internal/repository"
)

type packRepository struct {
	db *sql.DB
}

// NewPackRepository creates a new PackRepository implementation
func NewPackRepository(db *sql.DB) repository.PackRepository {
	return &packRepository{db: db}
}

func (r *packRepository) GetPack(ctx context.Context, date string) (*models.DailyPack, error) {
	log := logger.FromContext(ctx).WithPrefix("pack_repo")
	log.Debug("fetching pack: date=%s", date)

	var pack models.DailyPack
	var puzzlesJSON string
	err := r.db.QueryRowContext(ctx, `
SELECT pack_date, pack_id, language, puzzles
FROM daily_packs
WHERE pack_date = ?
`, date).Scan(&pack.Meta.Date, &pack.Meta.PackID, &pack.Meta.Language, &puzzlesJSON)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no pack for date=%s", date)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get pack: %v", err)
		return nil, err
	}
	if err := json.Unmarshal([]byte(puzzlesJSON), &pack.Puzzles); err != nil {
		log.Error("failed to decode stored puzzles: %v", err)
		return nil, err
	}
	log.Debug("pack found: date=%s, puzzles=%d", date, len(pack.Puzzles))
	return &pack, nil
}

func (r *packRepository) InsertPack(ctx context.Context, pack models.DailyPack) error {
	log := logger.FromContext(ctx).WithPrefix("pack_repo")
	log.Debug("inserting pack: date=%s, puzzles=%d", pack.Meta.Date, len(pack.Puzzles))

	puzzlesJSON, err := json.Marshal(pack.Puzzles)
	if err != nil {
		log.Error("failed to encode puzzles: %v", err)
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO daily_packs (pack_date, pack_id, language, puzzles)
VALUES (?, ?, ?, ?)
`, pack.Meta.Date, pack.Meta.PackID, pack.Meta.Language, string(puzzlesJSON))
	if err != nil {
		log.Error("failed to insert pack: %v", err)
	}
	return err
}

func (r *packRepository) InsertTemplate(ctx context.Context, tmpl models.PuzzleTemplate) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("pack_repo")
	log.Debug("inserting template: hash=%s, type=%s", tmpl.ContentHash, tmpl.Type)

	res, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO puzzle_templates (content_hash, puzzle_type, anime, character, data)
VALUES (?, ?, ?, ?, ?)
`, tmpl.ContentHash, string(tmpl.Type), tmpl.Anime, tmpl.Character, tmpl.Data)
	if err != nil {
		log.Error("failed to insert template: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
