// internal/session/session.go
//
// A solving session: the append-only guess history of one puzzle.
// Responsibilities:
//   - Create sessions with a random identifier.
//   - Validate and append guess records (via the aid's candidate filter).
//
// The history is never rewritten; a record is only appended once the
// filter has accepted the extended history.

package session

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/robalobadob/wordle/apps/wordleaid/internal/aid"
)

// Session holds the state of a single solving session.
type Session struct {
	ID        string            `json:"id"`
	History   []aid.GuessRecord `json:"history"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// New constructs an empty session.
func New() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        randomID(),
		History:   []aid.GuessRecord{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Record appends rec and returns the candidates left in a's default pool.
// On error the session is left unchanged.
func (s *Session) Record(a *aid.Aid, rec aid.GuessRecord) ([]string, error) {
	next := append(s.Clone().History, rec)
	candidates, err := a.FindCandidates(next, nil)
	if err != nil {
		return nil, err
	}
	s.History = next
	s.UpdatedAt = time.Now().UTC()
	return candidates, nil
}

// Solved reports whether the last record is all hits.
func (s *Session) Solved() bool {
	if len(s.History) == 0 {
		return false
	}
	return s.History[len(s.History)-1].Feedback.AllHit()
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	cp := *s
	cp.History = make([]aid.GuessRecord, len(s.History))
	for i, r := range s.History {
		cp.History[i] = aid.GuessRecord{Word: r.Word, Feedback: append(aid.Feedback(nil), r.Feedback...)}
	}
	return &cp
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
