package services

import (
	"context"
	"hash/fnv"
	"io"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sorabytes/otakudojo/internal/content"
	"github.com/sorabytes/otakudojo/internal/errors"
	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/models"
	"github.com/sorabytes/otakudojo/internal/pack"
	"github.com/sorabytes/otakudojo/internal/repository"
)

const dateLayout = "2006-01-02"

// PackService handles daily pack generation and retrieval
type PackService interface {
	// EnsureDailyPack returns the pack for a date, generating and persisting
	// it first when none exists. The bool reports whether this call created it.
	EnsureDailyPack(ctx context.Context, date time.Time) (*models.DailyPack, bool, error)
	GetPack(ctx context.Context, date string) (*models.DailyPack, error)
}

type packService struct {
	repo     repository.PackRepository
	provider content.Provider
	perType  int
	language string
	seedFor  func(date string) int64
	group    singleflight.Group
}

// NewPackService creates a new PackService
func NewPackService(repo repository.PackRepository, provider content.Provider, perType int, language string) PackService {
	return &packService{
		repo:     repo,
		provider: provider,
		perType:  perType,
		language: language,
		seedFor:  dateSeed,
	}
}

// dateSeed derives a stable seed from the pack date so a crashed generation
// retried later produces the same pack.
func dateSeed(date string) int64 {
	h := fnv.New64a()
	io.WriteString(h, date)
	return int64(h.Sum64())
}

type ensureResult struct {
	pack    *models.DailyPack
	created bool
}

func (s *packService) EnsureDailyPack(ctx context.Context, date time.Time) (*models.DailyPack, bool, error) {
	dateStr := date.UTC().Format(dateLayout)
	log := logger.FromContext(ctx)
	log.Debug("ensuring daily pack: date=%s", dateStr)

	// Collapse concurrent generation requests for the same date.
	v, err, _ := s.group.Do(dateStr, func() (interface{}, error) {
		existing, err := s.repo.GetPack(ctx, dateStr)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		if existing != nil {
			return ensureResult{pack: existing}, nil
		}

		gen := pack.New(s.provider,
			pack.WithSeed(s.seedFor(dateStr)),
			pack.WithPerType(s.perType),
			pack.WithLanguage(s.language),
		)
		generated := gen.Generate(date)

		for _, puzzle := range generated.Puzzles {
			inserted, err := s.repo.InsertTemplate(ctx, pack.Template(puzzle))
			if err != nil {
				return nil, errors.NewInternalError(err)
			}
			if !inserted {
				log.Debug("puzzle already in template cache: id=%s, type=%s", puzzle.ID, puzzle.Type)
			}
		}

		if err := s.repo.InsertPack(ctx, generated); err != nil {
			// Lost a race with another process writing the same date.
			existing, getErr := s.repo.GetPack(ctx, dateStr)
			if getErr == nil && existing != nil {
				log.Debug("pack inserted concurrently: date=%s", dateStr)
				return ensureResult{pack: existing}, nil
			}
			return nil, errors.NewInternalError(err)
		}

		log.Info("daily pack generated: date=%s, puzzles=%d", dateStr, len(generated.Puzzles))
		return ensureResult{pack: &generated, created: true}, nil
	})
	if err != nil {
		log.Error("failed to ensure daily pack: %v", err)
		return nil, false, err
	}
	res := v.(ensureResult)
	return res.pack, res.created, nil
}

func (s *packService) GetPack(ctx context.Context, date string) (*models.DailyPack, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting pack: date=%s", date)

	if _, err := time.ParseInLocation(dateLayout, date, time.UTC); err != nil {
		return nil, errors.NewValidationError("date", "must be formatted YYYY-MM-DD")
	}

	p, err := s.repo.GetPack(ctx, date)
	if err != nil {
		log.Error("failed to get pack: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("pack", date)
	}
	return p, nil
}
