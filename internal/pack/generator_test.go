package pack

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sorabytes/otakudojo/internal/content"
	"github.com/sorabytes/otakudojo/internal/models"
)

var testDate = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

func TestGenerateFullPack(t *testing.T) {
	gen := New(content.NewStaticProvider(), WithSeed(7))
	pack := gen.Generate(testDate)

	assert.Equal(t, "2026-08-29", pack.Meta.Date)
	assert.Equal(t, "en", pack.Meta.Language)
	assert.NotEmpty(t, pack.Meta.PackID)
	require.Len(t, pack.Puzzles, 10)

	counts := map[models.PuzzleType]int{}
	for i, p := range pack.Puzzles {
		counts[p.Type]++
		assert.Equal(t, fmt.Sprintf("2026-08-29-%03d", i+1), p.ID)
		assert.NotEmpty(t, p.Anime)
		assert.NotEmpty(t, p.Feedback.Perfect)
		assert.NotEmpty(t, p.Reaction.OnCorrect)
	}
	for _, pt := range models.PuzzleTypes() {
		assert.Equal(t, 2, counts[pt], "type %s", pt)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := New(content.NewStaticProvider(), WithSeed(99)).Generate(testDate)
	b := New(content.NewStaticProvider(), WithSeed(99)).Generate(testDate)

	// Pack IDs are random UUIDs; puzzle content is what the seed pins.
	assert.Equal(t, a.Puzzles, b.Puzzles)

	c := New(content.NewStaticProvider(), WithSeed(100)).Generate(testDate)
	assert.NotEqual(t, a.Puzzles, c.Puzzles)
}

func TestGenerateNoRepeatedQuotes(t *testing.T) {
	gen := New(content.NewStaticProvider(), WithSeed(3))
	pack := gen.Generate(testDate)

	seen := map[string]bool{}
	for _, p := range pack.Puzzles {
		var quote string
		switch p.Type {
		case models.TypeQuoteFill:
			quote = p.QuoteFill.OriginalQuote
		case models.TypeWhoSaidIt:
			quote = p.WhoSaidIt.Quote
		case models.TypeMoodMatch:
			quote = p.MoodMatch.Quote
		default:
			continue
		}
		assert.False(t, seen[quote], "quote reused: %s", quote)
		seen[quote] = true
	}
}

func TestQuoteFillInvariants(t *testing.T) {
	gen := New(content.NewStaticProvider(), WithSeed(11), WithPerType(4))
	pack := gen.Generate(testDate)

	for _, p := range pack.Puzzles {
		if p.Type != models.TypeQuoteFill {
			continue
		}
		data := p.QuoteFill
		blanks := strings.Count(data.Text, "____")
		assert.GreaterOrEqual(t, blanks, 1)
		assert.LessOrEqual(t, blanks, 3)
		assert.Len(t, data.CorrectIndexes, blanks)
		assert.Len(t, data.Options, 6)
		assertUniqueFold(t, data.Options)
		for _, idx := range data.CorrectIndexes {
			assert.Contains(t, data.OriginalQuote, data.Options[idx])
		}
	}
}

func TestEmojiSenseiInvariants(t *testing.T) {
	gen := New(content.NewStaticProvider(), WithSeed(5))
	pack := gen.Generate(testDate)

	for _, p := range pack.Puzzles {
		if p.Type != models.TypeEmojiSensei {
			continue
		}
		data := p.EmojiSensei
		assert.Len(t, data.Concepts, 2)
		assert.Len(t, data.Options, 8)
		assert.Len(t, data.CorrectIndexes, 2)
		assertUniqueFold(t, data.Options)
		vocab := content.NewStaticProvider().Emoji()
		for _, concept := range data.Concepts {
			found := false
			for _, idx := range data.CorrectIndexes {
				if data.Options[idx] == vocab[concept] {
					found = true
				}
			}
			assert.True(t, found, "emoji for %q missing from correct options", concept)
		}
	}
}

func TestWhoSaidItInvariants(t *testing.T) {
	gen := New(content.NewStaticProvider(), WithSeed(13))
	pack := gen.Generate(testDate)

	for _, p := range pack.Puzzles {
		if p.Type != models.TypeWhoSaidIt {
			continue
		}
		data := p.WhoSaidIt
		assert.Len(t, data.Options, 4)
		assertUniqueFold(t, data.Options)
		require.GreaterOrEqual(t, data.CorrectIndex, 0)
		assert.Equal(t, p.Character, data.Options[data.CorrectIndex])
	}
}

func TestMoodMatchInvariants(t *testing.T) {
	provider := content.NewStaticProvider()
	gen := New(provider, WithSeed(17))
	pack := gen.Generate(testDate)

	for _, p := range pack.Puzzles {
		if p.Type != models.TypeMoodMatch {
			continue
		}
		data := p.MoodMatch
		assert.Equal(t, ClassifyMood(data.Quote), data.Mood)
		assert.Len(t, data.Options, 4)
		assertUniqueFold(t, data.Options)
		assert.Equal(t, provider.Moods()[data.Mood], data.Options[data.CorrectIndex])
	}
}

func TestWhoAmIInvariants(t *testing.T) {
	gen := New(content.NewStaticProvider(), WithSeed(19))
	pack := gen.Generate(testDate)

	answers := map[string]bool{}
	for _, p := range pack.Puzzles {
		if p.Type != models.TypeWhoAmI {
			continue
		}
		data := p.WhoAmI
		assert.Len(t, data.Hints, 3)
		assert.NotEmpty(t, data.Answer)
		assert.False(t, answers[data.Answer], "riddle reused: %s", data.Answer)
		answers[data.Answer] = true
	}
}

func TestClassifyMood(t *testing.T) {
	tests := []struct {
		quote string
		want  string
	}{
		{"I will never give up the fight", "defiant"},
		{"People die when they are killed", "sorrowful"},
		{"I'm gonna become king of the pirates", "cheerful"},
		{"I will protect everyone", "confident"},
		{"Pass the salt please", "neutral"},
		// Rule order wins when keywords from several moods appear.
		{"Fight or die", "defiant"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyMood(tt.quote), tt.quote)
	}
}

func TestShortPackWhenContentExhausted(t *testing.T) {
	// Asking for more riddles than the corpus holds shortens the pack
	// instead of failing.
	provider := content.NewStaticProvider()
	want := len(provider.Riddles()) + 2
	gen := New(provider, WithSeed(23), WithPerType(want))
	pack := gen.Generate(testDate)

	riddles := 0
	for _, p := range pack.Puzzles {
		if p.Type == models.TypeWhoAmI {
			riddles++
		}
	}
	assert.Equal(t, len(provider.Riddles()), riddles)
}

func TestTemplateHashIgnoresPackLocalFields(t *testing.T) {
	gen := New(content.NewStaticProvider(), WithSeed(29))
	pack := gen.Generate(testDate)
	p := pack.Puzzles[0]

	h1 := TemplateHash(p)
	p.ID = "some-other-id"
	h2 := TemplateHash(p)
	assert.Equal(t, h1, h2)
}

func TestTemplateHashDiffersAcrossPuzzles(t *testing.T) {
	gen := New(content.NewStaticProvider(), WithSeed(31))
	pack := gen.Generate(testDate)

	seen := map[string]string{}
	for _, p := range pack.Puzzles {
		h := TemplateHash(p)
		prev, dup := seen[h]
		assert.False(t, dup, "hash collision between %s and %s", prev, p.ID)
		seen[h] = p.ID
	}
}

func assertUniqueFold(t *testing.T, options []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, o := range options {
		key := strings.ToLower(o)
		assert.False(t, seen[key], "duplicate option %q", o)
		seen[key] = true
	}
}
