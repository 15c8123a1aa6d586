package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sorabytes/otakudojo/internal/errors"
	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/models"
)

type submitScoreRequest struct {
	Username   string  `json:"username"`
	PuzzleID   string  `json:"puzzle_id"`
	PuzzleType string  `json:"puzzle_type"`
	TimeMs     int     `json:"time_ms"`
	HintsUsed  int     `json:"hints_used"`
	Accuracy   float64 `json:"accuracy"`
}

func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("handling score submission")

	var req submitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	result, err := s.Scores.Submit(r.Context(), req.Username, req.PuzzleID,
		models.PuzzleType(req.PuzzleType), models.Metrics{
			TimeMs:    req.TimeMs,
			HintsUsed: req.HintsUsed,
			Accuracy:  req.Accuracy,
		})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	log := logger.FromContext(r.Context())
	log.Debug("fetching user stats: username=%s", username)

	stats, err := s.Scores.UserStats(r.Context(), username)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, stats)
}
