package models

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStats is the per-user aggregate row. LastPlayDate is zero until the
// first submission; streak values never go negative.
type UserStats struct {
	UserID           int64              `json:"user_id"`
	Username         string             `json:"username"`
	TotalScore       int                `json:"total_score"`
	PuzzlesCompleted int                `json:"puzzles_completed"`
	LastPlayDate     time.Time          `json:"last_play_date"`
	GlobalStreak     int                `json:"global_streak"`
	TypeStreaks      map[PuzzleType]int `json:"type_streaks"`
}

// Streak returns the streak for one puzzle type.
func (s UserStats) Streak(t PuzzleType) int {
	if s.TypeStreaks == nil {
		return 0
	}
	return s.TypeStreaks[t]
}

// Metrics are the raw play measurements reported with a completed puzzle.
type Metrics struct {
	TimeMs    int     `json:"time_ms"`
	HintsUsed int     `json:"hints_used"`
	Accuracy  float64 `json:"accuracy"`
}

// Submission is one scored play event applied by the stats transaction.
type Submission struct {
	Username   string
	PuzzleID   string
	PuzzleType PuzzleType
	Score      int
	Metrics    Metrics
	PlayDate   time.Time
}

// ScoreRecord is the persisted row for one (user, puzzle) pair. A later
// submission for the same pair replaces it.
type ScoreRecord struct {
	UserID     int64      `json:"user_id"`
	PuzzleID   string     `json:"puzzle_id"`
	PuzzleType PuzzleType `json:"puzzle_type"`
	Score      int        `json:"score"`
	TimeMs     int        `json:"time_ms"`
	HintsUsed  int        `json:"hints_used"`
	Accuracy   float64    `json:"accuracy"`
	PlayDate   time.Time  `json:"play_date"`
}

// SubmitResult is returned to the caller of a score submission.
type SubmitResult struct {
	Success bool `json:"success"`
	Score   int  `json:"score"`
	NewRank int  `json:"new_rank,omitempty"`
}

// ScopeGlobal ranks by total score; any valid PuzzleType string is a
// per-type scope ranking by that type's summed scores.
const ScopeGlobal = "global"

// ValidScope reports whether s names the global scope or a puzzle type.
func ValidScope(s string) bool {
	return s == ScopeGlobal || PuzzleType(s).Valid()
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Streak   int    `json:"streak"`
}
