package pack

import (
	"encoding/json"
	"hash/fnv"
	"io"
	"strconv"
	"strings"

	"github.com/sorabytes/otakudojo/internal/models"
)

// TemplateHash derives the dedup-cache key for a generated puzzle. The hash
// covers the content that makes two puzzles interchangeable for a player:
// type, source anime/character, and the variant's question surface. Pack-local
// fields (ID, shuffled option order) are deliberately excluded.
func TemplateHash(p models.Puzzle) string {
	h := fnv.New64a()
	io.WriteString(h, string(p.Type))
	io.WriteString(h, "|")
	io.WriteString(h, p.Anime)
	io.WriteString(h, "|")
	io.WriteString(h, p.Character)
	io.WriteString(h, "|")
	io.WriteString(h, templateSurface(p))
	return strconv.FormatUint(h.Sum64(), 16)
}

func templateSurface(p models.Puzzle) string {
	switch p.Type {
	case models.TypeQuoteFill:
		return p.QuoteFill.OriginalQuote + "|" + p.QuoteFill.Text
	case models.TypeEmojiSensei:
		return strings.Join(p.EmojiSensei.Concepts, ",")
	case models.TypeWhoSaidIt:
		return p.WhoSaidIt.Quote
	case models.TypeMoodMatch:
		return p.MoodMatch.Quote + "|" + p.MoodMatch.Mood
	case models.TypeWhoAmI:
		return p.WhoAmI.Answer
	}
	return ""
}

// Template builds the full dedup-cache row for a puzzle.
func Template(p models.Puzzle) models.PuzzleTemplate {
	data, _ := json.Marshal(p)
	return models.PuzzleTemplate{
		ContentHash: TemplateHash(p),
		Type:        p.Type,
		Anime:       p.Anime,
		Character:   p.Character,
		Data:        string(data),
	}
}
