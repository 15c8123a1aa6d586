package content

import "github.com/sorabytes/otakudojo/internal/models"

// QuoteFact is one immutable entry of the quote corpus.
type QuoteFact struct {
	Anime     string
	Character string
	Quote     string
}

// Riddle is a hand-authored who_am_i entry. Hints are ordered hardest-first
// and always three long; Alternates are accepted alternative spellings of
// Answer.
type Riddle struct {
	Anime      string
	Character  string
	Hints      []string
	Answer     string
	Alternates []string
}

// Provider supplies the read-only reference data the generator consumes.
// Implementations must be safe for concurrent use; the engine never mutates
// anything returned from it.
type Provider interface {
	// Quotes returns the full quote corpus.
	Quotes() []QuoteFact
	// Emoji returns the emoji vocabulary keyed by concept.
	Emoji() map[string]string
	// Moods returns the mood vocabulary keyed by mood name.
	Moods() map[string]string
	// Riddles returns the who_am_i riddle set.
	Riddles() []Riddle

	// CharacterReaction resolves reaction tokens by character name.
	CharacterReaction(character string) (models.Reaction, bool)
	// TypeReaction resolves the per-type default reaction.
	TypeReaction(t models.PuzzleType) (models.Reaction, bool)
	// DefaultReaction is the global fallback.
	DefaultReaction() models.Reaction

	// Feedback returns the four tiered response strings for a puzzle type.
	Feedback(t models.PuzzleType) models.Feedback
}
