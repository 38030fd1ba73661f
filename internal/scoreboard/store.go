package scoreboard

import (
	"context"
	"fmt"
	"sync"
)

// Loader supplies a fresh snapshot of the seed data.
type Loader interface {
	Load(ctx context.Context) (Snapshot, error)
}

// Store owns the live collections. All mutations go through its methods and
// are serialized behind one write lock; read endpoints copy state out under
// the read lock so encoders never observe a half-applied mutation.
type Store struct {
	loader Loader

	mu         sync.RWMutex
	teams      []*Team
	challenges []*Challenge
	hints      []ChallengeHints
}

// NewStore loads the initial snapshot from loader. A load failure here is
// fatal to the caller: the server refuses to start without seed data.
func NewStore(ctx context.Context, loader Loader) (*Store, error) {
	s := &Store{loader: loader}
	if err := s.Reset(ctx); err != nil {
		return nil, fmt.Errorf("loading seed data: %w", err)
	}
	return s, nil
}

// Reset discards every runtime mutation and swaps in a freshly loaded
// snapshot, hints included. The swap happens under the write lock so
// concurrent readers see either the old state or the new, never a mix.
// On load failure the previous state is kept untouched.
func (s *Store) Reset(ctx context.Context) error {
	snap, err := s.loader.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.teams = snap.Teams
	s.challenges = snap.Challenges
	s.hints = snap.Hints
	s.mu.Unlock()
	return nil
}

// findTeam and findChallenge are linear scans; the collections stay in the
// tens of entries. Callers must hold s.mu.
func (s *Store) findTeam(id string) *Team {
	for _, t := range s.teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Store) findChallenge(id string) *Challenge {
	for _, c := range s.challenges {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Teams returns a deep copy of the current team collection.
func (s *Store) Teams() []Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, copyTeam(t))
	}
	return out
}

// Challenges returns a deep copy of the current challenge collection.
func (s *Store) Challenges() []Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Challenge, 0, len(s.challenges))
	for _, c := range s.challenges {
		out = append(out, copyChallenge(c))
	}
	return out
}

// The copies use make+copy rather than append so that empty collections
// stay non-nil and encode as [] instead of null.
func copyTeam(t *Team) Team {
	c := *t
	c.Players = make([]Player, len(t.Players))
	copy(c.Players, t.Players)
	c.CompletedChallenges = make([]string, len(t.CompletedChallenges))
	copy(c.CompletedChallenges, t.CompletedChallenges)
	return c
}

func copyChallenge(ch *Challenge) Challenge {
	c := *ch
	c.Winners = make([]string, len(ch.Winners))
	copy(c.Winners, ch.Winners)
	return c
}
