package models

// PuzzleType identifies one of the five fixed puzzle kinds.
type PuzzleType string

const (
	TypeQuoteFill   PuzzleType = "quote_fill"
	TypeEmojiSensei PuzzleType = "emoji_sensei"
	TypeWhoSaidIt   PuzzleType = "who_said_it"
	TypeMoodMatch   PuzzleType = "mood_match"
	TypeWhoAmI      PuzzleType = "who_am_i"
)

// PuzzleTypes returns every known type in a fixed order.
func PuzzleTypes() []PuzzleType {
	return []PuzzleType{TypeQuoteFill, TypeEmojiSensei, TypeWhoSaidIt, TypeMoodMatch, TypeWhoAmI}
}

func (t PuzzleType) Valid() bool {
	switch t {
	case TypeQuoteFill, TypeEmojiSensei, TypeWhoSaidIt, TypeMoodMatch, TypeWhoAmI:
		return true
	}
	return false
}

// Feedback holds the four tiered response strings shown after an answer.
type Feedback struct {
	Perfect string `json:"perfect"`
	Good    string `json:"good"`
	Average string `json:"average"`
	Bad     string `json:"bad"`
}

// Reaction holds the two opaque reaction tokens for a puzzle.
type Reaction struct {
	OnCorrect string `json:"on_correct"`
	OnFail    string `json:"on_fail"`
}

// QuoteFillData is the payload for quote_fill puzzles. CorrectIndexes are the
// post-shuffle positions of the blanked tokens inside Options.
type QuoteFillData struct {
	Text           string   `json:"text"`
	Options        []string `json:"options"`
	CorrectIndexes []int    `json:"correct_indexes"`
	OriginalQuote  string   `json:"original_quote"`
}

// EmojiSenseiData is the payload for emoji_sensei puzzles.
type EmojiSenseiData struct {
	Text           string   `json:"text"`
	Concepts       []string `json:"concepts"`
	Options        []string `json:"options"`
	CorrectIndexes []int    `json:"correct_indexes"`
}

// WhoSaidItData is the payload for who_said_it puzzles.
type WhoSaidItData struct {
	Quote        string   `json:"quote"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// MoodMatchData is the payload for mood_match puzzles. Options are mood emoji.
type MoodMatchData struct {
	Quote        string   `json:"quote"`
	Mood         string   `json:"mood"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// WhoAmIData is the payload for who_am_i riddles. Hints run hardest-first.
type WhoAmIData struct {
	Hints           []string `json:"hints"`
	Answer          string   `json:"answer"`
	AcceptedAnswers []string `json:"accepted_answers"`
}

// Puzzle is a tagged variant: Type names the kind and exactly one of the
// payload pointers is set.
type Puzzle struct {
	ID        string     `json:"id"`
	Type      PuzzleType `json:"type"`
	Anime     string     `json:"anime"`
	Character string     `json:"character,omitempty"`
	Feedback  Feedback   `json:"feedback"`
	Reaction  Reaction   `json:"pixel_reaction"`

	QuoteFill   *QuoteFillData   `json:"quote_fill,omitempty"`
	EmojiSensei *EmojiSenseiData `json:"emoji_sensei,omitempty"`
	WhoSaidIt   *WhoSaidItData   `json:"who_said_it,omitempty"`
	MoodMatch   *MoodMatchData   `json:"mood_match,omitempty"`
	WhoAmI      *WhoAmIData      `json:"who_am_i,omitempty"`
}

// PackMeta describes a daily pack.
type PackMeta struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Language string `json:"language"`
	PackID   string `json:"pack_id"`
}

// DailyPack is the immutable set of puzzles served for one calendar date.
type DailyPack struct {
	Meta    PackMeta `json:"meta"`
	Puzzles []Puzzle `json:"puzzles"`
}

// PuzzleTemplate is a row in the content-dedup cache, keyed by a hash of the
// generated payload so near-duplicate puzzles can be spotted across packs.
type PuzzleTemplate struct {
	ContentHash string     `json:"content_hash"`
	Type        PuzzleType `json:"type"`
	Anime       string     `json:"anime"`
	Character   string     `json:"character"`
	Data        string     `json:"data"`
}
