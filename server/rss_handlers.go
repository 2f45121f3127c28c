package server

import (
	"log"
	"net/http"
	"time"

	"github.com/umputun/clubfeed/pkg/feed"
)

// rssHandler re-publishes current news as RSS feed
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.scheduler.Snapshot()
	fallback := snap.NewsState == string(feed.StateFallback)

	rss, err := s.generator.GenerateRSS(snap.News, fallback, time.Now())
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
