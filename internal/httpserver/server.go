// internal/httpserver/server.go
//
// HTTP wiring for the word-guessing backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Game API: GET /api/word-info, POST /api/guess, POST /api/new-game.
//   - Diagnostics: "/health".
//   - Embedded static client served at the root.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - "Not ready" (word list unavailable) surfaces as 503; malformed
//     guesses are 400s; a guess that simply isn't in the dictionary is
//     a 200 with valid=false, since that's an expected user outcome,
//     not a fault.

package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/evanl44730/tusmo/assets"
	"github.com/evanl44730/tusmo/internal/game"
)

// Server bundles the router and the game controller.
type Server struct {
	r    *chi.Mux
	ctrl *game.Controller
}

// New constructs a Server, installs middleware, and registers routes.
func New(ctrl *game.Controller) *Server {
	s := &Server{r: chi.NewRouter(), ctrl: ctrl}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- game API ---
	s.r.Route("/api", func(r chi.Router) {
		r.Use(jsonContentType)
		r.Get("/word-info", s.handleWordInfo)
		r.Post("/guess", s.handleGuess)
		r.Post("/new-game", s.handleNewGame)
	})

	// --- static client ---
	pub, err := fs.Sub(assets.FS, "public")
	if err != nil {
		log.Error().Err(err).Msg("embedded assets unavailable")
	} else {
		s.r.Handle("/*", http.FileServer(http.FS(pub)))
	}

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on API responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:3000.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ handlers -----------------------------------

// handleWordInfo returns the active secret's first letter and length.
func (s *Server) handleWordInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.ctrl.WordInfo()
	if err != nil {
		http.Error(w, `{"error":"Game not ready"}`, http.StatusServiceUnavailable)
		return
	}
	_ = json.NewEncoder(w).Encode(info)
}

// guessReq is the payload for POST /api/guess.
// A missing guess field decodes to "" and is rejected as a length
// mismatch; a non-string guess fails decoding outright.
type guessReq struct {
	Guess string `json:"guess"`
}

// handleGuess validates and scores a guess against the shared secret.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	out, err := s.ctrl.SubmitGuess(req.Guess)
	var le *game.LengthError
	switch {
	case errors.As(err, &le):
		http.Error(w, fmt.Sprintf(`{"error":"Word must be %d letters long"}`, le.Want), http.StatusBadRequest)
		return
	case errors.Is(err, game.ErrNotReady):
		http.Error(w, `{"error":"Game not ready"}`, http.StatusServiceUnavailable)
		return
	case err != nil:
		log.Error().Err(err).Msg("submit guess")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleNewGame forces a fresh secret, replacing the current one for
// every connected player.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	info, err := s.ctrl.NewGame()
	if err != nil {
		if errors.Is(err, game.ErrNotReady) {
			http.Error(w, `{"error":"Game not ready"}`, http.StatusServiceUnavailable)
			return
		}
		log.Error().Err(err).Msg("new game")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(info)
}
