package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/services"
)

// GeneratePackJob ensures the daily pack for a date exists.
type GeneratePackJob struct {
	Packs services.PackService
	Date  time.Time
}

func (j *GeneratePackJob) Name() string {
	return fmt.Sprintf("generate-pack-%s", j.Date.UTC().Format("2006-01-02"))
}

func (j *GeneratePackJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	pack, created, err := j.Packs.EnsureDailyPack(ctx, j.Date)
	if err != nil {
		return err
	}
	if created {
		log.Info("daily pack created: date=%s, puzzles=%d", pack.Meta.Date, len(pack.Puzzles))
	} else {
		log.Debug("daily pack already present: date=%s", pack.Meta.Date)
	}
	return nil
}
