package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sorabytes/otakudojo/internal/errors"
	"github.com/sorabytes/otakudojo/internal/logger"
)

// handleGeneratePack generates the pack for today, or for an explicit date
// passed in the body. Generation is idempotent, so repeating the call for the
// same date returns the stored pack.
func (s *Server) handleGeneratePack(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("generating daily pack")

	date := s.now().UTC()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			handleError(w, r, errors.NewValidationError("date", "must be formatted YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	pack, created, err := s.Packs.EnsureDailyPack(r.Context(), date)
	if err != nil {
		handleError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, r, status, map[string]any{
		"created": created,
		"pack":    pack,
	})
}

func (s *Server) handleTodayPack(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("fetching today's pack")

	// Today's pack is generated on demand so fresh deployments serve it
	// without waiting for the background worker.
	pack, _, err := s.Packs.EnsureDailyPack(r.Context(), s.now().UTC())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, pack)
}

func (s *Server) handlePackByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	log := logger.FromContext(r.Context())
	log.Debug("fetching pack: date=%s", date)

	pack, err := s.Packs.GetPack(r.Context(), date)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, pack)
}
