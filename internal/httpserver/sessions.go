// internal/httpserver/sessions.go
//
// HTTP routes for solving sessions:
//   - POST   /sessions              → create a session, returns its id and token
//   - GET    /sessions/{id}         → history and remaining candidates
//   - POST   /sessions/{id}/guesses → append a (word, feedback) record
//   - DELETE /sessions/{id}         → drop the session
//
// Everything but creation requires "Authorization: Bearer <token>" with the
// token issued for that session.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"hash/fnv"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordleaid/internal/aid"
	"github.com/robalobadob/wordle/apps/wordleaid/internal/session"
)

type ctxSessionKey struct{}

// mountSessions registers all /sessions routes.
func (s *Server) mountSessions(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleNewSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/", s.handleGetSession)
			r.Post("/guesses", s.handleSessionGuess)
			r.Delete("/", s.handleDeleteSession)
		})
	})
}

// requireSession checks the bearer token against {id} and loads the session.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		sid, err := s.tokens.verify(bearerToken(r))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		if sid != id {
			writeError(w, http.StatusForbidden, "token_session_mismatch")
			return
		}
		sess, err := s.store.Get(r.Context(), id)
		if err != nil {
			writeCoreError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxSessionKey{}, sess)))
	})
}

func sessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(ctxSessionKey{}).(*session.Session)
	return sess
}

// newSessionRes is returned by POST /sessions.
type newSessionRes struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := session.New()
	tok, err := s.tokens.sign(sess.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Str("sessionId", sess.ID).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("sessionId", sess.ID).Msg("session created")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newSessionRes{SessionID: sess.ID, Token: tok})
}

// sessionRes describes a session and what is left of the default word list.
type sessionRes struct {
	ID      string            `json:"id"`
	History []aid.GuessRecord `json:"history"`
	Display []string          `json:"display"`
	Solved  bool              `json:"solved"`
	candidatesRes
}

func (s *Server) describe(sess *session.Session, remaining []string) sessionRes {
	display := make([]string, len(sess.History))
	for i, h := range sess.History {
		display[i] = h.Word + " " + s.aid.Render(h.Feedback)
	}
	return sessionRes{
		ID:            sess.ID,
		History:       sess.History,
		Display:       display,
		Solved:        sess.Solved(),
		candidatesRes: s.candidatesResponse(remaining),
	}
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	remaining, err := s.candidates(sess.History, nil)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(s.describe(sess, remaining))
}

// lockSession serializes writers of one session. Locks are striped by id.
func (s *Server) lockSession(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &s.sessionLocks[h.Sum32()%uint32(len(s.sessionLocks))]
	mu.Lock()
	return mu.Unlock
}

// handleSessionGuess appends one record; an invalid record leaves the session untouched.
// The session is reloaded under its lock so concurrent appends never overwrite each other.
func (s *Server) handleSessionGuess(w http.ResponseWriter, r *http.Request) {
	var rec aid.GuessRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		if errors.Is(err, aid.ErrInvalidInput) {
			writeCoreError(w, err)
			return
		}
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	id := sessionFrom(r).ID
	unlock := s.lockSession(id)
	defer unlock()

	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	if sess.Solved() {
		writeError(w, http.StatusConflict, "session_solved")
		return
	}

	remaining, err := sess.Record(s.aid, rec)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Str("sessionId", sess.ID).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Debug().Str("sessionId", sess.ID).Int("guesses", len(sess.History)).Int("remaining", len(remaining)).Msg("guess recorded")
	_ = json.NewEncoder(w).Encode(s.describe(sess, remaining))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), sessionFrom(r).ID); err != nil {
		writeCoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
