// internal/httpserver/server.go
//
// Read-only HTTP API over the session history.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health".
//   - History endpoints: GET /stats, GET /games, GET /games/{id}, GET /daily.
//   - Word list counts: GET /words.
//
// Notes:
//   - Nothing here mutates state; games are only recorded by the terminal client.
//   - Secrets of finished games are included; in-progress games never reach the store.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-tui/internal/daily"
	"github.com/robalobadob/wordle/apps/go-tui/internal/store"
	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

// Server bundles router, history store and word list.
type Server struct {
	r     *chi.Mux
	store store.Store
	words *words.List
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, wl *words.List) *Server {
	s := &Server{r: chi.NewRouter(), store: st, words: wl}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-tui","endpoints":["/health","/stats","/games","/games/{id}","/daily","/words"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/stats", s.handleStats)
	s.r.Get("/games", s.handleGames)
	s.r.Get("/games/{id}", s.handleGame)
	s.r.Get("/daily", s.handleDaily)
	s.r.Get("/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]int{"words": s.words.Len()})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- handlers ------------------------------------

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("stats")
		httpError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, st)
}

// handleGames lists recent sessions; ?limit= caps the count (default 20, max 100).
func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			httpError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = min(n, 100)
	}
	rs, err := s.store.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("recent games")
		httpError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if rs == nil {
		rs = []store.Record{}
	}
	writeJSON(w, rs)
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		httpError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get game")
		httpError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, rec)
}

// handleDaily reports whether today's (or ?date=YYYY-MM-DD) daily game was played.
// The word itself is never returned.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(time.Now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		httpError(w, http.StatusBadRequest, "bad_date")
		return
	}
	played, err := s.store.PlayedDaily(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Msg("played daily")
		httpError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, map[string]any{"date": date, "played": played})
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one zerolog line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
