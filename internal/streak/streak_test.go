package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sorabytes/otakudojo/internal/models"
)

func day(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAdvanceFirstPlay(t *testing.T) {
	got := Advance(models.UserStats{}, models.TypeQuoteFill, 110, day("2026-08-29"))

	assert.Equal(t, 110, got.TotalScore)
	assert.Equal(t, 1, got.PuzzlesCompleted)
	assert.Equal(t, 1, got.GlobalStreak)
	assert.Equal(t, 1, got.Streak(models.TypeQuoteFill))
	assert.Equal(t, 0, got.Streak(models.TypeWhoAmI))
	assert.Equal(t, day("2026-08-29"), got.LastPlayDate)
}

func TestAdvanceConsecutiveDay(t *testing.T) {
	stats := models.UserStats{
		TotalScore:       100,
		PuzzlesCompleted: 1,
		LastPlayDate:     day("2026-08-28"),
		GlobalStreak:     1,
		TypeStreaks:      map[models.PuzzleType]int{models.TypeQuoteFill: 1},
	}

	got := Advance(stats, models.TypeQuoteFill, 90, day("2026-08-29"))

	assert.Equal(t, 2, got.GlobalStreak)
	assert.Equal(t, 2, got.Streak(models.TypeQuoteFill))
	assert.Equal(t, day("2026-08-29"), got.LastPlayDate)
	assert.Equal(t, 190, got.TotalScore)
	assert.Equal(t, 2, got.PuzzlesCompleted)
}

func TestAdvanceGapResets(t *testing.T) {
	stats := models.UserStats{
		LastPlayDate: day("2026-08-20"),
		GlobalStreak: 7,
		TypeStreaks:  map[models.PuzzleType]int{models.TypeMoodMatch: 7},
	}

	got := Advance(stats, models.TypeMoodMatch, 50, day("2026-08-29"))

	assert.Equal(t, 1, got.GlobalStreak)
	assert.Equal(t, 1, got.Streak(models.TypeMoodMatch))
	assert.Equal(t, day("2026-08-29"), got.LastPlayDate)
}

func TestAdvanceSameDayKeepsStreaks(t *testing.T) {
	stats := models.UserStats{
		LastPlayDate: day("2026-08-29"),
		GlobalStreak: 3,
		TypeStreaks:  map[models.PuzzleType]int{models.TypeQuoteFill: 3},
	}

	got := Advance(stats, models.TypeQuoteFill, 60, day("2026-08-29"))

	assert.Equal(t, 3, got.GlobalStreak)
	assert.Equal(t, 3, got.Streak(models.TypeQuoteFill))
	assert.Equal(t, 60, got.TotalScore)
}

func TestAdvanceSameDayStartsFreshTypeStreak(t *testing.T) {
	stats := models.UserStats{
		LastPlayDate: day("2026-08-29"),
		GlobalStreak: 3,
		TypeStreaks:  map[models.PuzzleType]int{models.TypeQuoteFill: 3},
	}

	got := Advance(stats, models.TypeWhoAmI, 80, day("2026-08-29"))

	assert.Equal(t, 3, got.GlobalStreak)
	assert.Equal(t, 3, got.Streak(models.TypeQuoteFill))
	assert.Equal(t, 1, got.Streak(models.TypeWhoAmI))
}

func TestAdvanceBackdatedPlay(t *testing.T) {
	stats := models.UserStats{
		TotalScore:   200,
		LastPlayDate: day("2026-08-29"),
		GlobalStreak: 4,
		TypeStreaks:  map[models.PuzzleType]int{models.TypeEmojiSensei: 4},
	}

	got := Advance(stats, models.TypeEmojiSensei, 35, day("2026-08-10"))

	assert.Equal(t, day("2026-08-29"), got.LastPlayDate)
	assert.Equal(t, 4, got.GlobalStreak)
	assert.Equal(t, 4, got.Streak(models.TypeEmojiSensei))
	assert.Equal(t, 235, got.TotalScore)
}

func TestAdvanceIgnoresTimeOfDay(t *testing.T) {
	stats := models.UserStats{
		LastPlayDate: day("2026-08-28"),
		GlobalStreak: 1,
		TypeStreaks:  map[models.PuzzleType]int{models.TypeWhoSaidIt: 1},
	}

	late := time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC)
	got := Advance(stats, models.TypeWhoSaidIt, 40, late)

	assert.Equal(t, 2, got.GlobalStreak)
	assert.Equal(t, day("2026-08-29"), got.LastPlayDate)
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	streaks := map[models.PuzzleType]int{models.TypeQuoteFill: 2}
	stats := models.UserStats{
		LastPlayDate: day("2026-08-28"),
		GlobalStreak: 2,
		TypeStreaks:  streaks,
	}

	Advance(stats, models.TypeQuoteFill, 10, day("2026-08-29"))

	assert.Equal(t, 2, streaks[models.TypeQuoteFill])
}
