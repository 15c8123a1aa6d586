package api

import (
	"net/http"
	"strconv"

	"github.com/sorabytes/otakudojo/internal/errors"
	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/models"
)

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	scope := r.URL.Query().Get("scope")
	username := r.URL.Query().Get("username")
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handleError(w, r, errors.NewBadRequestError("limit must be an integer"))
			return
		}
		limit = parsed
	}
	log.Debug("fetching leaderboard: scope=%s, limit=%d, username=%s", scope, limit, username)

	entries, err := s.Leaderboard.List(r.Context(), scope, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	body := map[string]any{
		"scope":   scopeOrGlobal(scope),
		"entries": entries,
	}
	// The caller's rank comes from the same store the listing was read
	// from, so the two stay consistent for this response.
	if username != "" {
		rank, err := s.Leaderboard.UserRank(r.Context(), username, scope)
		if err != nil {
			handleError(w, r, err)
			return
		}
		body["user_rank"] = rank
	}
	respondJSON(w, r, http.StatusOK, body)
}

func scopeOrGlobal(scope string) string {
	if scope == "" {
		return models.ScopeGlobal
	}
	return scope
}
