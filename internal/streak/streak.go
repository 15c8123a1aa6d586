package streak

import (
	"time"

	"github.com/sorabytes/otakudojo/internal/models"
)

// Advance applies one scored submission to a user's aggregates and returns
// the updated copy. Streak rules work on calendar days: playing exactly one
// day after the last play extends both the global streak and the submitted
// type's streak; a longer gap resets both to 1; further submissions on the
// same day leave streaks untouched. A play date earlier than the recorded
// last play never moves LastPlayDate backwards.
func Advance(stats models.UserStats, t models.PuzzleType, score int, playDate time.Time) models.UserStats {
	if stats.TypeStreaks == nil {
		stats.TypeStreaks = make(map[models.PuzzleType]int, 5)
	} else {
		copied := make(map[models.PuzzleType]int, len(stats.TypeStreaks))
		for k, v := range stats.TypeStreaks {
			copied[k] = v
		}
		stats.TypeStreaks = copied
	}

	day := truncateDay(playDate)
	last := truncateDay(stats.LastPlayDate)

	switch {
	case stats.LastPlayDate.IsZero():
		stats.GlobalStreak = 1
		stats.TypeStreaks[t] = 1
		stats.LastPlayDate = day
	case day.Before(last):
		// Backdated submission: count the score, keep streaks and date.
	case day.Equal(last):
		if stats.TypeStreaks[t] == 0 {
			stats.TypeStreaks[t] = 1
		}
	case day.Equal(last.AddDate(0, 0, 1)):
		stats.GlobalStreak++
		stats.TypeStreaks[t]++
		stats.LastPlayDate = day
	default:
		stats.GlobalStreak = 1
		stats.TypeStreaks[t] = 1
		stats.LastPlayDate = day
	}

	stats.TotalScore += score
	stats.PuzzlesCompleted++
	return stats
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
