package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/services"
)

// Server holds the HTTP handler dependencies
type Server struct {
	Packs       services.PackService
	Scores      services.ScoreService
	Leaderboard services.LeaderboardService

	// Now is the clock used to resolve "today". Overridable in tests.
	Now func() time.Time
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
