package scoreboard

import (
	"sort"
	"time"
)

// ActiveHints returns every hint whose window contains now, optionally
// restricted to a single challenge id. Windows are half-open: a hint is
// visible from revealAt inclusive until endAt exclusive. Windows whose
// bounds do not parse as RFC 3339 are skipped silently. The result is
// ordered by challenge id, then by reveal time within a challenge, and is
// never nil.
func (s *Store) ActiveHints(now time.Time, challengeID string) []ActiveHint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []ActiveHint{}
	for _, ch := range s.hints {
		if challengeID != "" && ch.ChallengeID != challengeID {
			continue
		}
		for _, group := range ch.Groups {
			for _, h := range group {
				reveal, err := time.Parse(time.RFC3339, h.RevealAt)
				if err != nil {
					continue
				}
				end, err := time.Parse(time.RFC3339, h.EndAt)
				if err != nil {
					continue
				}
				if now.Before(reveal) || !now.Before(end) {
					continue
				}
				out = append(out, ActiveHint{
					ChallengeID: ch.ChallengeID,
					Text:        h.Text,
					RevealAt:    h.RevealAt,
					EndAt:       h.EndAt,
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ChallengeID != out[j].ChallengeID {
			return out[i].ChallengeID < out[j].ChallengeID
		}
		ri, _ := time.Parse(time.RFC3339, out[i].RevealAt)
		rj, _ := time.Parse(time.RFC3339, out[j].RevealAt)
		return ri.Before(rj)
	})
	return out
}
