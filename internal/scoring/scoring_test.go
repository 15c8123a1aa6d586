package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sorabytes/otakudojo/internal/models"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		accuracy   float64
		timeMs     int
		hintsUsed  int
		puzzleType models.PuzzleType
		want       int
	}{
		{"perfect and instant", 1.0, 0, 0, models.TypeQuoteFill, 120},
		{"perfect at bonus window edge", 1.0, 30000, 0, models.TypeQuoteFill, 100},
		{"perfect past bonus window", 1.0, 45000, 0, models.TypeQuoteFill, 100},
		{"half accuracy mid window", 0.5, 15000, 0, models.TypeMoodMatch, 60},
		{"zero accuracy still earns bonus", 0.0, 0, 0, models.TypeWhoSaidIt, 20},
		{"zero accuracy slow", 0.0, 60000, 0, models.TypeWhoSaidIt, 0},
		{"riddle with two hints instant", 1.0, 0, 2, models.TypeWhoAmI, 80},
		{"riddle hints cannot push base negative", 1.0, 30000, 5, models.TypeWhoAmI, 0},
		{"hints ignored outside riddles", 1.0, 30000, 3, models.TypeQuoteFill, 100},
		{"riddle one hint slow", 1.0, 30000, 1, models.TypeWhoAmI, 80},
		{"rounding of accuracy", 0.333, 30000, 0, models.TypeEmojiSensei, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.accuracy, tt.timeMs, tt.hintsUsed, tt.puzzleType)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreBounds(t *testing.T) {
	accuracies := []float64{0, 0.25, 0.5, 0.75, 1}
	times := []int{0, 1, 15000, 29999, 30000, 120000}
	hints := []int{0, 1, 2, 3, 10}

	for _, pt := range models.PuzzleTypes() {
		for _, acc := range accuracies {
			for _, ms := range times {
				for _, h := range hints {
					got := Score(acc, ms, h, pt)
					assert.GreaterOrEqual(t, got, 0, "type=%s acc=%v ms=%d hints=%d", pt, acc, ms, h)
					assert.LessOrEqual(t, got, 120, "type=%s acc=%v ms=%d hints=%d", pt, acc, ms, h)
				}
			}
		}
	}
}
