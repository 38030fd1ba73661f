package scoreboard

import (
	"testing"
	"time"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parsing %q: %v", value, err)
	}
	return ts
}

func TestActiveHintsWindowIsHalfOpen(t *testing.T) {
	s := newTestStore(t)

	// c2's first hint runs 10:00–10:05.
	cases := []struct {
		now  string
		want bool
	}{
		{"2026-06-01T09:59:59Z", false},
		{"2026-06-01T10:00:00Z", true},  // revealAt inclusive
		{"2026-06-01T10:02:30Z", true},
		{"2026-06-01T10:04:59Z", true},
		{"2026-06-01T10:05:00Z", false}, // endAt exclusive
	}

	for _, tc := range cases {
		hints := s.ActiveHints(at(t, tc.now), "c2")
		found := false
		for _, h := range hints {
			if h.Text == "premier indice" {
				found = true
			}
		}
		if found != tc.want {
			t.Errorf("now=%s: hint visible = %v, want %v", tc.now, found, tc.want)
		}
	}
}

func TestActiveHintsFilterAndOrder(t *testing.T) {
	s := newTestStore(t)

	// At 10:02 both c1's first hint and c2's first hint are open.
	hints := s.ActiveHints(at(t, "2026-06-01T10:02:00Z"), "")
	if len(hints) != 2 {
		t.Fatalf("got %d hints, want 2: %+v", len(hints), hints)
	}
	// Ordered by challenge id even though the seed lists c2 first.
	if hints[0].ChallengeID != "c1" || hints[1].ChallengeID != "c2" {
		t.Errorf("order = %s, %s; want c1, c2", hints[0].ChallengeID, hints[1].ChallengeID)
	}

	filtered := s.ActiveHints(at(t, "2026-06-01T10:02:00Z"), "c2")
	if len(filtered) != 1 || filtered[0].ChallengeID != "c2" {
		t.Errorf("filtered = %+v, want one c2 hint", filtered)
	}
}

func TestActiveHintsSkipsUnparseableWindows(t *testing.T) {
	s := newTestStore(t)

	// c1's second group has a bad revealAt; it must never surface, while
	// the valid window in the first group still does.
	hints := s.ActiveHints(at(t, "2026-06-01T10:30:00Z"), "c1")
	if len(hints) != 1 || hints[0].Text != "indice tour" {
		t.Errorf("hints = %+v, want only the valid window", hints)
	}
}

func TestActiveHintsEmptyIsNotNil(t *testing.T) {
	s := newTestStore(t)

	hints := s.ActiveHints(at(t, "2026-06-01T23:00:00Z"), "")
	if hints == nil {
		t.Fatal("result is nil, want empty slice")
	}
	if len(hints) != 0 {
		t.Fatalf("got %d hints, want 0", len(hints))
	}
}
