package content

import "github.com/sorabytes/otakudojo/internal/models"

// staticProvider serves the built-in corpus. Content is swappable by
// injecting a different Provider; nothing below is reachable for mutation.
type staticProvider struct{}

// NewStaticProvider returns the built-in content tables.
func NewStaticProvider() Provider {
	return staticProvider{}
}

func (staticProvider) Quotes() []QuoteFact {
	return quotes
}

func (staticProvider) Emoji() map[string]string {
	return emojiVocab
}

func (staticProvider) Moods() map[string]string {
	return moodVocab
}

func (staticProvider) Riddles() []Riddle {
	return riddles
}

func (staticProvider) CharacterReaction(character string) (models.Reaction, bool) {
	r, ok := characterReactions[character]
	return r, ok
}

func (staticProvider) TypeReaction(t models.PuzzleType) (models.Reaction, bool) {
	r, ok := typeReactions[t]
	return r, ok
}

func (staticProvider) DefaultReaction() models.Reaction {
	return defaultReaction
}

func (staticProvider) Feedback(t models.PuzzleType) models.Feedback {
	if f, ok := typeFeedback[t]; ok {
		return f
	}
	return defaultFeedback
}

var quotes = []QuoteFact{
	{Anime: "Naruto", Character: "Naruto Uzumaki", Quote: "I never go back on my word because that is my ninja way"},
	{Anime: "Naruto", Character: "Rock Lee", Quote: "A dropout will beat a genius through hard work"},
	{Anime: "Naruto", Character: "Itachi Uchiha", Quote: "People live their lives bound by what they accept as correct and true"},
	{Anime: "One Piece", Character: "Monkey D. Luffy", Quote: "I am going to become the king of the pirates"},
	{Anime: "One Piece", Character: "Roronoa Zoro", Quote: "If I cannot win this fight then I do not deserve my dream"},
	{Anime: "One Piece", Character: "Sanji", Quote: "I will never kick a lady even if it costs me my life"},
	{Anime: "Attack on Titan", Character: "Eren Yeager", Quote: "I will fight until the day every last one of them is gone"},
	{Anime: "Attack on Titan", Character: "Levi Ackerman", Quote: "The only thing we are allowed to do is believe we will not regret the choice we made"},
	{Anime: "Attack on Titan", Character: "Mikasa Ackerman", Quote: "This world is cruel and it is also very beautiful"},
	{Anime: "Death Note", Character: "Light Yagami", Quote: "I will become the god of this new world and bring justice to it"},
	{Anime: "Death Note", Character: "L Lawliet", Quote: "Being alone is better than being with the wrong person"},
	{Anime: "Fullmetal Alchemist", Character: "Edward Elric", Quote: "A lesson without pain is meaningless for you cannot gain something without sacrificing something"},
	{Anime: "Fullmetal Alchemist", Character: "Roy Mustang", Quote: "It is a terrible day for rain but I must protect those below me"},
	{Anime: "My Hero Academia", Character: "Izuku Midoriya", Quote: "I have to win this fight because my dream is to become the greatest hero"},
	{Anime: "My Hero Academia", Character: "All Might", Quote: "It is fine now why because I am here to protect you all"},
	{Anime: "Demon Slayer", Character: "Tanjiro Kamado", Quote: "No matter how many people you may lose you have no choice but to go on living"},
	{Anime: "Demon Slayer", Character: "Kyojuro Rengoku", Quote: "Set your heart ablaze and never give in no matter how sad you feel"},
	{Anime: "Dragon Ball Z", Character: "Vegeta", Quote: "I do not fight for victory I fight because I will never surrender"},
	{Anime: "Dragon Ball Z", Character: "Goku", Quote: "I would rather be a brainless monkey than a heartless monster"},
	{Anime: "Hunter x Hunter", Character: "Killua Zoldyck", Quote: "If you want to lose everything then keep running away from what you fear"},
	{Anime: "Hunter x Hunter", Character: "Gon Freecss", Quote: "I cannot stand being on the sidelines while my friends fight to win"},
	{Anime: "Code Geass", Character: "Lelouch Lamperouge", Quote: "The only ones who should kill are those prepared to die for their dream"},
	{Anime: "Bleach", Character: "Ichigo Kurosaki", Quote: "I will protect everyone even if it means I have to die trying"},
	{Anime: "One Punch Man", Character: "Saitama", Quote: "I became a hero because I wanted to not because anyone asked me"},
}

var emojiVocab = map[string]string{
	"fire":      "\U0001F525",
	"sword":     "⚔️",
	"crown":     "\U0001F451",
	"ghost":     "\U0001F47B",
	"star":      "⭐",
	"lightning": "⚡",
	"skull":     "\U0001F480",
	"heart":     "❤️",
	"fist":      "\U0001F44A",
	"eye":       "\U0001F441️",
	"wave":      "\U0001F30A",
	"moon":      "\U0001F319",
	"leaf":      "\U0001F343",
	"scroll":    "\U0001F4DC",
	"mask":      "\U0001F3AD",
	"shield":    "\U0001F6E1️",
	"dragon":    "\U0001F409",
	"fox":       "\U0001F98A",
	"hat":       "\U0001F452",
	"notebook":  "\U0001F4D3",
}

// Mood vocabulary. The keys double as classification targets for mood_match.
var moodVocab = map[string]string{
	"defiant":   "\U0001F624",
	"sorrowful": "\U0001F622",
	"cheerful":  "\U0001F604",
	"confident": "\U0001F60E",
	"neutral":   "\U0001F610",
}

var riddles = []Riddle{
	{
		Anime:     "Naruto",
		Character: "Kakashi Hatake",
		Hints: []string{
			"My favorite book series is written by a legendary sannin",
			"I am famous for arriving late with questionable excuses",
			"I copied over a thousand jutsu with a single borrowed eye",
		},
		Answer:     "kakashi",
		Alternates: []string{"kakashi hatake", "hatake kakashi"},
	},
	{
		Anime:     "One Piece",
		Character: "Tony Tony Chopper",
		Hints: []string{
			"I once believed a lie about a cherry blossom cure",
			"I am the doctor of my crew despite my size",
			"I am a reindeer who ate a human-human fruit",
		},
		Answer:     "chopper",
		Alternates: []string{"tony tony chopper", "tonytony chopper"},
	},
	{
		Anime:     "Death Note",
		Character: "Ryuk",
		Hints: []string{
			"Boredom is the only reason I started all of this",
			"I am bound to the first human who touched my property",
			"I have an endless appetite for apples",
		},
		Answer:     "ryuk",
		Alternates: []string{"ryuk the shinigami"},
	},
	{
		Anime:     "Attack on Titan",
		Character: "Armin Arlert",
		Hints: []string{
			"I dreamed of seeing the ocean long before I ever fought",
			"My plans saved friends far stronger than myself",
			"I inherited the colossal power I once feared",
		},
		Answer:     "armin",
		Alternates: []string{"armin arlert"},
	},
	{
		Anime:     "Fullmetal Alchemist",
		Character: "Alphonse Elric",
		Hints: []string{
			"I cannot sleep yet I am always tired of waiting",
			"I collect stray cats inside myself when my brother is not looking",
			"My soul is bound to a suit of armor by a blood seal",
		},
		Answer:     "alphonse",
		Alternates: []string{"alphonse elric", "al"},
	},
	{
		Anime:     "My Hero Academia",
		Character: "Shoto Todoroki",
		Hints: []string{
			"My father pushed me so hard I refused half of myself",
			"Ice comes from my right and fire from my left",
			"I entered U.A. on recommendation with two quirks in one",
		},
		Answer:     "todoroki",
		Alternates: []string{"shoto todoroki", "shoto", "todoroki shoto"},
	},
}

var characterReactions = map[string]models.Reaction{
	"Naruto Uzumaki":    {OnCorrect: "naruto_grin", OnFail: "naruto_sulk"},
	"Monkey D. Luffy":   {OnCorrect: "luffy_laugh", OnFail: "luffy_confused"},
	"Levi Ackerman":     {OnCorrect: "levi_nod", OnFail: "levi_glare"},
	"Light Yagami":      {OnCorrect: "light_smirk", OnFail: "light_scowl"},
	"L Lawliet":         {OnCorrect: "l_crouch_point", OnFail: "l_sugar_stack"},
	"Edward Elric":      {OnCorrect: "ed_clap", OnFail: "ed_rage_short"},
	"Vegeta":            {OnCorrect: "vegeta_smirk", OnFail: "vegeta_scouter"},
	"Saitama":           {OnCorrect: "saitama_ok", OnFail: "saitama_blank"},
	"Kyojuro Rengoku":   {OnCorrect: "rengoku_flame", OnFail: "rengoku_umai"},
	"Kakashi Hatake":    {OnCorrect: "kakashi_eyesmile", OnFail: "kakashi_book"},
	"Tony Tony Chopper": {OnCorrect: "chopper_dance", OnFail: "chopper_hide"},
}

var typeReactions = map[models.PuzzleType]models.Reaction{
	models.TypeQuoteFill:   {OnCorrect: "scroll_unfurl", OnFail: "scroll_burn"},
	models.TypeEmojiSensei: {OnCorrect: "sensei_bow", OnFail: "sensei_sigh"},
	models.TypeWhoSaidIt:   {OnCorrect: "spotlight_on", OnFail: "spotlight_miss"},
	models.TypeMoodMatch:   {OnCorrect: "mood_sparkle", OnFail: "mood_cloud"},
	models.TypeWhoAmI:      {OnCorrect: "mask_off", OnFail: "mask_shrug"},
}

var defaultReaction = models.Reaction{OnCorrect: "pixel_cheer", OnFail: "pixel_drop"}

var typeFeedback = map[models.PuzzleType]models.Feedback{
	models.TypeQuoteFill: {
		Perfect: "Word for word, like you wrote the script yourself!",
		Good:    "Close enough to make the author proud.",
		Average: "You caught the gist, but the lines got away from you.",
		Bad:     "That quote needs a rewatch, senpai.",
	},
	models.TypeEmojiSensei: {
		Perfect: "The emoji sensei bows to your reading.",
		Good:    "Sharp eyes, just a glyph short of mastery.",
		Average: "Half the picture came through.",
		Bad:     "The emoji spoke, but the message was lost.",
	},
	models.TypeWhoSaidIt: {
		Perfect: "You knew that voice instantly.",
		Good:    "Good ear, you were barely guessing.",
		Average: "The voice rang a bell, faintly.",
		Bad:     "Completely the wrong mouth for those words.",
	},
	models.TypeMoodMatch: {
		Perfect: "You read the room like a mind reader.",
		Good:    "The feeling got through to you.",
		Average: "Roughly the right vibe, roughly.",
		Bad:     "The mood flew straight over your head.",
	},
	models.TypeWhoAmI: {
		Perfect: "Unmasked on the hardest hint, incredible!",
		Good:    "You saw through the disguise.",
		Average: "It took every hint, but you got there.",
		Bad:     "The mystery character walks away victorious.",
	},
}

var defaultFeedback = models.Feedback{
	Perfect: "Flawless victory!",
	Good:    "Nicely done.",
	Average: "Not bad, keep training.",
	Bad:     "Better luck on the next one.",
}
