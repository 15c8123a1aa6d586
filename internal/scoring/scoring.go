package scoring

import (
	"math"

	"github.com/sorabytes/otakudojo/internal/models"
)

const (
	accuracyScale = 100
	hintPenalty   = 20
	bonusCap      = 20
	bonusWindowMs = 30000
)

// Score converts a completed-puzzle event into an integer score.
//
// base = round(accuracy * 100); who_am_i puzzles pay 20 points per hint,
// clamped at zero, before the speed bonus is added. The bonus ramps linearly
// from 20 at 0ms down to 0 at 30s. A fast but heavily hinted who_am_i answer
// therefore still collects its bonus on top of a zeroed base; that mirrors
// the reference behavior and is kept on purpose.
func Score(accuracy float64, timeMs, hintsUsed int, puzzleType models.PuzzleType) int {
	base := math.Round(accuracy * accuracyScale)
	if puzzleType == models.TypeWhoAmI {
		base = math.Max(base-float64(hintsUsed*hintPenalty), 0)
	}

	remaining := float64(bonusWindowMs-timeMs) / bonusWindowMs
	bonus := math.Min(math.Max(remaining, 0)*bonusCap, bonusCap)

	return int(math.Round(base + bonus))
}
