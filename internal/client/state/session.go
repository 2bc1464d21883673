package state

import (
	"sync"

	"github.com/mogligram/mogligram/internal/client/models"
)

// SessionState holds the current authentication state. It is mutated only by
// full replacement (Login, Hydrate) or full reset (Logout); there is no
// partial session update.
type SessionState struct {
	mu  sync.Mutex
	rec models.SessionRecord
}

func NewSessionState() *SessionState {
	return &SessionState{}
}

// Login replaces the whole session with rec and marks it authenticated.
func (s *SessionState) Login(rec models.SessionRecord) {
	rec.IsAuthenticated = true
	s.mu.Lock()
	s.rec = rec
	s.mu.Unlock()
}

// Hydrate applies a session restored from the persistent store. The state
// transition is identical to Login; the separate operation keeps restored
// and interactive logins distinguishable at the call sites.
func (s *SessionState) Hydrate(rec models.SessionRecord) {
	s.Login(rec)
}

// Logout resets the session to the unauthenticated default.
func (s *SessionState) Logout() {
	s.mu.Lock()
	s.rec = models.SessionRecord{}
	s.mu.Unlock()
}

// Current returns a copy of the session record.
func (s *SessionState) Current() models.SessionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.rec
	if rec.User != nil {
		user := *rec.User
		rec.User = &user
	}
	return rec
}

// IsAuthenticated reports whether a user is logged in.
func (s *SessionState) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.IsAuthenticated
}
