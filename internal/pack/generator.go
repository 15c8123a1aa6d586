package pack

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sorabytes/otakudojo/internal/content"
	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/models"
)

const (
	defaultPerType   = 2
	defaultLanguage  = "en"
	quoteFillOptions = 6
	emojiOptions     = 8
	whoSaidItOptions = 4
	moodOptions      = 4
	maxBlankedTokens = 3
)

// Generator builds daily puzzle packs from a read-only content provider.
// All randomness flows through a single seedable source so tests can pin the
// output; a Generator is single-use per goroutine (the rand source is not
// locked).
type Generator struct {
	content  content.Provider
	rng      *rand.Rand
	perType  int
	language string
	log      *logger.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed pins the random source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPerType sets how many puzzles of each type a pack requests.
func WithPerType(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.perType = n
		}
	}
}

// WithLanguage sets the pack language tag.
func WithLanguage(lang string) Option {
	return func(g *Generator) {
		if lang != "" {
			g.language = lang
		}
	}
}

// New creates a Generator. Without WithSeed the source is time-seeded.
func New(provider content.Provider, opts ...Option) *Generator {
	g := &Generator{
		content:  provider,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		perType:  defaultPerType,
		language: defaultLanguage,
		log:      logger.Default().WithPrefix("pack"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the pack for one calendar date. When the corpus cannot
// supply a requested count without repeats the pack simply comes out short;
// that is degraded content, never an error.
func (g *Generator) Generate(date time.Time) models.DailyPack {
	dateStr := date.Format("2006-01-02")
	g.log.Debug("generating pack: date=%s, per_type=%d", dateStr, g.perType)

	used := make(map[int]bool)
	usedRiddles := make(map[int]bool)

	var puzzles []models.Puzzle
	for _, t := range models.PuzzleTypes() {
		for i := 0; i < g.perType; i++ {
			var (
				p  models.Puzzle
				ok bool
			)
			switch t {
			case models.TypeQuoteFill:
				p, ok = g.buildQuoteFill(used)
			case models.TypeEmojiSensei:
				p, ok = g.buildEmojiSensei(used)
			case models.TypeWhoSaidIt:
				p, ok = g.buildWhoSaidIt(used)
			case models.TypeMoodMatch:
				p, ok = g.buildMoodMatch(used)
			case models.TypeWhoAmI:
				p, ok = g.buildWhoAmI(usedRiddles)
			}
			if !ok {
				g.log.Warn("content exhausted for type %s, pack will be short", t)
				break
			}
			puzzles = append(puzzles, p)
		}
	}

	// Uniform Fisher-Yates over the whole pack.
	g.rng.Shuffle(len(puzzles), func(i, j int) {
		puzzles[i], puzzles[j] = puzzles[j], puzzles[i]
	})
	for i := range puzzles {
		puzzles[i].ID = fmt.Sprintf("%s-%03d", dateStr, i+1)
	}

	g.log.Info("pack generated: date=%s, puzzles=%d", dateStr, len(puzzles))
	return models.DailyPack{
		Meta: models.PackMeta{
			Date:     dateStr,
			Language: g.language,
			PackID:   uuid.NewString(),
		},
		Puzzles: puzzles,
	}
}

// pickQuote draws a random corpus entry not yet used in this pack.
func (g *Generator) pickQuote(used map[int]bool) (content.QuoteFact, bool) {
	quotes := g.content.Quotes()
	var free []int
	for i := range quotes {
		if !used[i] {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return content.QuoteFact{}, false
	}
	idx := free[g.rng.Intn(len(free))]
	used[idx] = true
	return quotes[idx], true
}

func (g *Generator) buildQuoteFill(used map[int]bool) (models.Puzzle, bool) {
	fact, ok := g.pickQuote(used)
	if !ok {
		return models.Puzzle{}, false
	}

	tokens := strings.Fields(fact.Quote)
	if len(tokens) < 2 {
		return models.Puzzle{}, false
	}

	// Blank 1-3 token positions with pairwise-distinct token text, so the
	// option list stays duplicate-free and every blank maps to one option.
	want := 1 + g.rng.Intn(maxBlankedTokens)
	order := g.rng.Perm(len(tokens))
	var blankIdx []int
	seen := make(map[string]bool)
	for _, i := range order {
		key := strings.ToLower(tokens[i])
		if seen[key] {
			continue
		}
		seen[key] = true
		blankIdx = append(blankIdx, i)
		if len(blankIdx) == want {
			break
		}
	}

	display := make([]string, len(tokens))
	copy(display, tokens)
	var answers []string
	for _, i := range blankIdx {
		answers = append(answers, tokens[i])
		display[i] = "____"
	}

	options := g.padOptions(answers, g.fillerWords(fact), quoteFillOptions)
	correct := indexesOf(options, answers)

	return g.finish(models.Puzzle{
		Type:      models.TypeQuoteFill,
		Anime:     fact.Anime,
		Character: fact.Character,
		QuoteFill: &models.QuoteFillData{
			Text:           strings.Join(display, " "),
			Options:        options,
			CorrectIndexes: correct,
			OriginalQuote:  fact.Quote,
		},
	}), true
}

func (g *Generator) buildEmojiSensei(used map[int]bool) (models.Puzzle, bool) {
	fact, ok := g.pickQuote(used)
	if !ok {
		return models.Puzzle{}, false
	}

	vocab := g.content.Emoji()
	concepts := sortedKeys(vocab)
	if len(concepts) < 2 {
		return models.Puzzle{}, false
	}
	g.rng.Shuffle(len(concepts), func(i, j int) {
		concepts[i], concepts[j] = concepts[j], concepts[i]
	})
	chosen := concepts[:2]
	answers := []string{vocab[chosen[0]], vocab[chosen[1]]}

	var pool []string
	for _, c := range concepts[2:] {
		pool = append(pool, vocab[c])
	}
	options := g.padOptions(answers, pool, emojiOptions)
	correct := indexesOf(options, answers)

	text := fmt.Sprintf("The sensei hides %q and %q inside this moment from %s: \"%s\". Which two emoji capture them?",
		chosen[0], chosen[1], fact.Anime, fact.Quote)

	return g.finish(models.Puzzle{
		Type:      models.TypeEmojiSensei,
		Anime:     fact.Anime,
		Character: fact.Character,
		EmojiSensei: &models.EmojiSenseiData{
			Text:           text,
			Concepts:       chosen,
			Options:        options,
			CorrectIndexes: correct,
		},
	}), true
}

func (g *Generator) buildWhoSaidIt(used map[int]bool) (models.Puzzle, bool) {
	fact, ok := g.pickQuote(used)
	if !ok {
		return models.Puzzle{}, false
	}

	var others []string
	seen := map[string]bool{fact.Character: true}
	for _, q := range g.content.Quotes() {
		if !seen[q.Character] {
			seen[q.Character] = true
			others = append(others, q.Character)
		}
	}
	g.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	if len(others) > whoSaidItOptions-1 {
		others = others[:whoSaidItOptions-1]
	}

	options := append([]string{fact.Character}, others...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	correct := indexOf(options, fact.Character)

	return g.finish(models.Puzzle{
		Type:      models.TypeWhoSaidIt,
		Anime:     fact.Anime,
		Character: fact.Character,
		WhoSaidIt: &models.WhoSaidItData{
			Quote:        fact.Quote,
			Options:      options,
			CorrectIndex: correct,
		},
	}), true
}

func (g *Generator) buildMoodMatch(used map[int]bool) (models.Puzzle, bool) {
	fact, ok := g.pickQuote(used)
	if !ok {
		return models.Puzzle{}, false
	}

	mood := ClassifyMood(fact.Quote)
	moods := g.content.Moods()
	correct, ok := moods[mood]
	if !ok {
		return models.Puzzle{}, false
	}

	var pool []string
	for _, name := range sortedKeys(moods) {
		if name != mood {
			pool = append(pool, moods[name])
		}
	}
	options := g.padOptions([]string{correct}, pool, moodOptions)
	idx := indexOf(options, correct)

	return g.finish(models.Puzzle{
		Type:      models.TypeMoodMatch,
		Anime:     fact.Anime,
		Character: fact.Character,
		MoodMatch: &models.MoodMatchData{
			Quote:        fact.Quote,
			Mood:         mood,
			Options:      options,
			CorrectIndex: idx,
		},
	}), true
}

func (g *Generator) buildWhoAmI(usedRiddles map[int]bool) (models.Puzzle, bool) {
	riddles := g.content.Riddles()
	var free []int
	for i := range riddles {
		if !usedRiddles[i] {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return models.Puzzle{}, false
	}
	idx := free[g.rng.Intn(len(free))]
	usedRiddles[idx] = true
	r := riddles[idx]

	return g.finish(models.Puzzle{
		Type:      models.TypeWhoAmI,
		Anime:     r.Anime,
		Character: r.Character,
		WhoAmI: &models.WhoAmIData{
			Hints:           append([]string(nil), r.Hints...),
			Answer:          r.Answer,
			AcceptedAnswers: append([]string(nil), r.Alternates...),
		},
	}), true
}

// finish attaches feedback and the character/type/default reaction chain.
func (g *Generator) finish(p models.Puzzle) models.Puzzle {
	p.Feedback = g.content.Feedback(p.Type)
	if r, ok := g.content.CharacterReaction(p.Character); ok {
		p.Reaction = r
	} else if r, ok := g.content.TypeReaction(p.Type); ok {
		p.Reaction = r
	} else {
		p.Reaction = g.content.DefaultReaction()
	}
	return p
}

// fillerWords collects distractor tokens from every corpus quote except the
// source fact.
func (g *Generator) fillerWords(exclude content.QuoteFact) []string {
	var words []string
	for _, q := range g.content.Quotes() {
		if q.Quote == exclude.Quote {
			continue
		}
		words = append(words, strings.Fields(q.Quote)...)
	}
	return words
}

// padOptions builds a shuffled option list of the given size: the answers
// first, then unique fillers drawn at random. The list comes out shorter when
// the filler pool runs dry.
func (g *Generator) padOptions(answers, pool []string, size int) []string {
	options := make([]string, 0, size)
	seen := make(map[string]bool)
	for _, a := range answers {
		key := strings.ToLower(a)
		if !seen[key] {
			seen[key] = true
			options = append(options, a)
		}
	}

	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	for _, w := range pool {
		if len(options) >= size {
			break
		}
		key := strings.ToLower(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, w)
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// moodRules are matched in order; the first rule with any keyword present in
// the quote wins.
var moodRules = []struct {
	keywords []string
	mood     string
}{
	{keywords: []string{"fight", "win", "never"}, mood: "defiant"},
	{keywords: []string{"die", "lose", "sad"}, mood: "sorrowful"},
	{keywords: []string{"king", "become", "dream"}, mood: "cheerful"},
	{keywords: []string{"justice", "protect"}, mood: "confident"},
}

// ClassifyMood maps a quote to its dominant mood by ordered keyword match.
func ClassifyMood(quote string) string {
	lowered := strings.ToLower(quote)
	for _, rule := range moodRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.mood
			}
		}
	}
	return "neutral"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

func indexesOf(list []string, values []string) []int {
	var out []int
	for _, v := range values {
		if i := indexOf(list, v); i >= 0 {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
