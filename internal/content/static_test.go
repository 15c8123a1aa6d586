package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sorabytes/otakudojo/internal/models"
)

func TestStaticProviderCorpus(t *testing.T) {
	p := NewStaticProvider()

	quotes := p.Quotes()
	require.NotEmpty(t, quotes)
	seen := map[string]bool{}
	for _, q := range quotes {
		assert.NotEmpty(t, q.Anime)
		assert.NotEmpty(t, q.Character)
		assert.GreaterOrEqual(t, len(strings.Fields(q.Quote)), 2, "quote too short to blank: %q", q.Quote)
		assert.False(t, seen[q.Quote], "duplicate quote: %q", q.Quote)
		seen[q.Quote] = true
	}

	assert.GreaterOrEqual(t, len(p.Emoji()), 10)
	assert.Len(t, p.Moods(), 5)

	for _, r := range p.Riddles() {
		assert.Len(t, r.Hints, 3)
		assert.NotEmpty(t, r.Answer)
	}
}

func TestStaticProviderReactionsAndFeedback(t *testing.T) {
	p := NewStaticProvider()

	for _, pt := range models.PuzzleTypes() {
		r, ok := p.TypeReaction(pt)
		assert.True(t, ok, "missing reaction for %s", pt)
		assert.NotEmpty(t, r.OnCorrect)

		fb := p.Feedback(pt)
		assert.NotEmpty(t, fb.Perfect)
		assert.NotEmpty(t, fb.Bad)
	}

	_, ok := p.CharacterReaction("Unknown Character")
	assert.False(t, ok)

	def := p.DefaultReaction()
	assert.NotEmpty(t, def.OnCorrect)
	assert.NotEmpty(t, def.OnFail)
}
