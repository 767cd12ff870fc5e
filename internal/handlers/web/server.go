package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/f4hy/blightedisland/internal/common/uuid"
	"github.com/f4hy/blightedisland/internal/services/messaging"
	"github.com/f4hy/blightedisland/internal/services/tracker"
)

const (
	// maxImportBytes bounds the body of an import request
	maxImportBytes = 10 << 20

	readHeaderTimeout = 10 * time.Second
)

// Config holds configuration for the HTTP server
type Config struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// Service dependencies
	TrackerService   tracker.Service
	MessagingService messaging.Service

	// UUID tags each request in the log, a google/uuid source when nil
	UUID uuid.UUID
}

// Server serves the JSON API
type Server struct {
	tracker    tracker.Service
	messaging  messaging.Service
	uuid       uuid.UUID
	httpServer *http.Server
}

// New creates a new HTTP server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	id := cfg.UUID
	if id == nil {
		id = uuid.New()
	}

	s := &Server{
		tracker:   cfg.TrackerService,
		messaging: cfg.MessagingService,
		uuid:      id,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s, nil
}

// Handler returns the routed API with request logging
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	mux.HandleFunc("GET /api/players", s.handleListPlayers)
	mux.HandleFunc("POST /api/players", s.handleAddPlayer)
	mux.HandleFunc("GET /api/games", s.handleListGames)
	mux.HandleFunc("POST /api/games", s.handleRecordGame)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/stats.xlsx", s.handleStatsWorkbook)
	mux.HandleFunc("GET /api/random/adversary", s.handlePickAdversary)
	mux.HandleFunc("GET /api/random/spirit", s.handlePickSpirit)
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("POST /api/import", s.handleImport)
	return s.withRequestLog(mux)
}

// Start serves until Stop is called
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop waits for in-flight requests to finish, up to ctx's deadline
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type requestIDKey struct{}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.Short(s.uuid.NewUUID())
		w.Header().Set("X-Request-Id", id)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("[%s] %s %s %d %s", id, r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}
