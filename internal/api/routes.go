package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/packs/generate", s.handleGeneratePack)
		r.Get("/packs/today", s.handleTodayPack)
		r.Get("/packs/{date}", s.handlePackByDate)
		r.Post("/scores", s.handleSubmitScore)
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/users/{username}/stats", s.handleUserStats)
	})

	return r
}
