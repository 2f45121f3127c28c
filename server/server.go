package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/clubfeed/pkg/domain"
	"github.com/umputun/clubfeed/pkg/feed"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	scheduler Scheduler
	generator *feed.Generator
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Scheduler gives access to the latest data and on-demand refresh
type Scheduler interface {
	Snapshot() domain.Snapshot
	RefreshNow()
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetFeedConfig() (baseURL, title string)
}

// New initializes a new server instance
func New(cfg ConfigProvider, scheduler Scheduler, version string, debug bool) *Server {
	baseURL, title := cfg.GetFeedConfig()
	s := &Server{
		config:    cfg,
		scheduler: scheduler,
		generator: feed.NewGenerator(baseURL, title),
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.handler(),
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// handler wraps the router with middleware applied to every request, matched by a route or not
func (s *Server) handler() http.Handler {
	return rest.AppInfo("clubfeed", "umputun", s.version)(rest.Ping(s.router))
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // no request carries a body
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// unmatched requests go to the mux directly, so a wrong method gets 405 instead of the catch-all 404
	s.router.DisableNotFoundHandler()

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /matches/upcoming", s.upcomingHandler)
		r.HandleFunc("GET /matches/results", s.resultsHandler)
		r.HandleFunc("GET /standings", s.standingsHandler)
		r.HandleFunc("GET /squad", s.squadHandler)
		r.HandleFunc("GET /news", s.newsHandler)
		r.HandleFunc("GET /snapshot", s.snapshotHandler)
		r.HandleFunc("POST /refresh", s.refreshHandler)
	})

	s.router.HandleFunc("GET /rss/news", s.rssHandler)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}
