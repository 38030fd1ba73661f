package scoreboard

import (
	"strings"
	"sync"
)

// Session carries the event-wide presentation flags. It is independent of
// the Store: a data reset never touches it.
type Session struct {
	mu         sync.Mutex
	suspense   bool
	pauseUntil string // empty means not paused
}

func NewSession() *Session {
	return &Session{}
}

// SessionState is the wire form of the session flags. PauseUntil is a
// pointer so an unset pause encodes as null.
type SessionState struct {
	SuspenseMode bool    `json:"suspenseMode"`
	PauseUntil   *string `json:"pauseUntil"`
}

// SetSuspense overwrites the suspense flag and returns the new value.
func (s *Session) SetSuspense(active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suspense = active
	return s.suspense
}

// SetPause stores resumeAt verbatim as the pause-until marker when it is a
// non-blank string, and clears the pause otherwise. The value is not
// validated as a timestamp; the frontend owns its interpretation.
func (s *Session) SetPause(resumeAt string) *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(resumeAt) != "" {
		s.pauseUntil = resumeAt
	} else {
		s.pauseUntil = ""
	}
	return s.pausePtr()
}

// State returns the current flag pair.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionState{
		SuspenseMode: s.suspense,
		PauseUntil:   s.pausePtr(),
	}
}

// pausePtr copies the marker out so callers never alias internal state.
// Callers must hold s.mu.
func (s *Session) pausePtr() *string {
	if s.pauseUntil == "" {
		return nil
	}
	v := s.pauseUntil
	return &v
}
