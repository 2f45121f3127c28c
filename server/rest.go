package server

import (
	"net/http"
	"time"
)

// statusHandler returns server status with freshness of the data
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.scheduler.Snapshot()
	status := map[string]any{
		"status":     "ok",
		"version":    s.version,
		"time":       time.Now().UTC(),
		"updated_at": snap.UpdatedAt,
		"news_state": snap.NewsState,
	}
	renderJSON(w, r, http.StatusOK, status)
}

// upcomingHandler returns next scheduled matches
func (s *Server) upcomingHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.scheduler.Snapshot().Upcoming)
}

// resultsHandler returns recent results, most recent first
func (s *Server) resultsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.scheduler.Snapshot().Results)
}

func (s *Server) standingsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.scheduler.Snapshot().Standings)
}

func (s *Server) squadHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.scheduler.Snapshot().Squad)
}

// newsHandler returns news items and whether they are placeholders
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.scheduler.Snapshot()
	renderJSON(w, r, http.StatusOK, map[string]any{
		"items": snap.News,
		"state": snap.NewsState,
	})
}

// snapshotHandler returns everything in one response
func (s *Server) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.scheduler.Snapshot())
}

// refreshHandler starts a full refresh and returns without waiting for it
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	s.scheduler.RefreshNow()
	renderJSON(w, r, http.StatusAccepted, map[string]string{"status": "refresh started"})
}
