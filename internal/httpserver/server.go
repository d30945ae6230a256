// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle aid.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, rate limiting).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Stateless endpoints: POST /compare, POST /candidates.
//   - Session endpoints: mounted under /sessions (see sessions.go).
//
// Notes:
//   - Candidate lists computed over the default word list are cached by history.
//   - Core errors wrapping aid.ErrInvalidInput become 400s with the core's message.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordleaid/internal/aid"
	"github.com/robalobadob/wordle/apps/wordleaid/internal/store"
)

// Options tunes the server; zero values pick the defaults noted per field.
type Options struct {
	ClientOrigin string        // CORS origin; default http://localhost:5173
	TokenSecret  string        // HS256 secret for session tokens; default dev_secret_change_me
	TokenTTL     time.Duration // session token lifetime; 0 never expires
	CacheTTL     time.Duration // candidate cache lifetime; default 10m
	RateLimit    float64       // requests per second per client; 0 disables
	RateBurst    int           // burst for RateLimit; default 2x rate
	MaxResults   int           // candidates returned per response; 0 returns all
}

// Server bundles router, aid, session store and caches.
type Server struct {
	r      *chi.Mux
	aid    *aid.Aid
	store  store.Store
	cache  *gocache.Cache
	tokens tokenSigner
	opts   Options

	sessionLocks [64]sync.Mutex
}

// New constructs a Server, installs middleware, and registers routes.
func New(a *aid.Aid, st store.Store, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 10 * time.Minute
	}
	s := &Server{
		r:      chi.NewRouter(),
		aid:    a,
		store:  st,
		cache:  gocache.New(opts.CacheTTL, 2*opts.CacheTTL),
		tokens: newTokenSigner(opts.TokenSecret, opts.TokenTTL),
		opts:   opts,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS
	if opts.RateLimit > 0 {
		s.r.Use(newRateLimiter(opts.RateLimit, opts.RateBurst, limiterIdle).middleware)
	}

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordleaid","endpoints":["/health","POST /compare","POST /candidates","/sessions/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"words":     len(s.aid.Words()),
			"length":    s.aid.WordLength(),
			"rendering": s.aid.Rendering(),
			"cached":    s.cache.ItemCount(),
		})
	})

	s.r.Post("/compare", s.handleCompare)
	s.r.Post("/candidates", s.handleCandidates)
	s.mountSessions(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found: "+r.URL.Path)
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return hs.Shutdown(shutdownCtx)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ COMPARE ------------------------------------

type compareReq struct {
	Guess  string `json:"guess"`
	Target string `json:"target"`
}
type compareRes struct {
	Tiles   aid.Feedback `json:"tiles"`
	Display string       `json:"display"`
	Solved  bool         `json:"solved"`
}

// handleCompare scores guess against target.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	fb, err := s.aid.Compare(req.Guess, req.Target)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(compareRes{Tiles: fb, Display: s.aid.Render(fb), Solved: fb.AllHit()})
}

// ----------------------------- CANDIDATES ----------------------------------

type candidatesReq struct {
	History []aid.GuessRecord `json:"history"`
	Pool    []string          `json:"pool,omitempty"` // omitted → default word list
}
type candidatesRes struct {
	Count      int      `json:"count"`
	Candidates []string `json:"candidates"`
	Truncated  bool     `json:"truncated,omitempty"`
}

// handleCandidates filters the given (or default) pool by history.
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	var req candidatesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, aid.ErrInvalidInput) {
			writeCoreError(w, err)
			return
		}
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	out, err := s.candidates(req.History, req.Pool)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(s.candidatesResponse(out))
}

// candidates runs the filter, consulting the cache when the default pool is used.
func (s *Server) candidates(history []aid.GuessRecord, pool []string) ([]string, error) {
	if pool != nil {
		return s.aid.FindCandidates(history, pool)
	}
	key := historyKey(history)
	if v, ok := s.cache.Get(key); ok {
		return v.([]string), nil
	}
	out, err := s.aid.FindCandidates(history, nil)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, out)
	return out, nil
}

func (s *Server) candidatesResponse(out []string) candidatesRes {
	res := candidatesRes{Count: len(out), Candidates: out}
	if s.opts.MaxResults > 0 && len(out) > s.opts.MaxResults {
		res.Candidates = out[:s.opts.MaxResults]
		res.Truncated = true
	}
	return res
}

// historyKey fingerprints a history by its JSON form (words and raw tile names).
func historyKey(history []aid.GuessRecord) string {
	b, _ := json.Marshal(history)
	return "candidates:" + string(b)
}

// ------------------------------ errors -------------------------------------

// writeError writes {"error": msg} with status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeCoreError maps aid/store errors onto HTTP statuses.
func writeCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, aid.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, aid.ErrNoWordList):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}
