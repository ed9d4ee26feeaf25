// @lixen: #dev{feature[scoreboard(scoreboard,httpapi,cmd)]}

// Package httpapi serves a read-only JSON view of the running game and the scoreboard.
// Routes:
//   - GET /health        liveness
//   - GET /status        live metrics from the status registry (when attached)
//   - GET /scores        stored scores, best first; ?limit=n trims the list
//   - GET /scores/top    best stored entry
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/puyo/scoreboard"
	"github.com/lixenwraith/puyo/status"
)

const (
	handlerTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server bundles router, metrics registry and score store
type Server struct {
	r      *chi.Mux
	reg    *status.Registry
	store  scoreboard.Store
	logger zerolog.Logger

	mu   sync.Mutex
	http *http.Server
}

// New constructs a Server, installs middleware and registers routes
// reg or store may be nil; their routes are then not mounted
func New(reg *status.Registry, store scoreboard.Store, logger zerolog.Logger) *Server {
	s := &Server{r: chi.NewRouter(), reg: reg, store: store, logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(handlerTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(s.requestLogger)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	if reg != nil {
		s.r.Get("/status", s.handleStatus)
	}
	if store != nil {
		s.r.Get("/scores", s.handleScores)
		s.r.Get("/scores/top", s.handleTopScore)
	}

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router
func (s *Server) Router() chi.Router { return s.r }

// Start serves on addr until Shutdown; returns nil after a clean shutdown
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: handlerTimeout,
	}
	s.mu.Lock()
	s.http = srv
	s.mu.Unlock()

	s.logger.Info().Str("addr", addr).Msg("http server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops a started server, waiting for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.http
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.reg.Snapshot())
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}

	entries, err := s.store.Load(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("load scores")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	if limit > 0 {
		entries = scoreboard.Top(entries, limit)
	}
	if entries == nil {
		entries = []scoreboard.Entry{}
	}
	_ = json.NewEncoder(w).Encode(entries)
}

func (s *Server) handleTopScore(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.Load(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("load scores")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	if len(entries) == 0 {
		writeError(w, http.StatusNotFound, "no_scores")
		return
	}
	_ = json.NewEncoder(w).Encode(entries[0])
}

// jsonContentType sets a default JSON Content-Type header on all responses
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger emits one debug event per request
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("took", time.Since(start)).
			Str("request_id", chimw.GetReqID(r.Context())).
			Msg("http request")
	})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
