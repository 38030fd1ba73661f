package scoreboard

import "testing"

func TestSessionDefaults(t *testing.T) {
	s := NewSession()
	state := s.State()
	if state.SuspenseMode {
		t.Error("suspense on by default")
	}
	if state.PauseUntil != nil {
		t.Errorf("pauseUntil = %v, want nil", *state.PauseUntil)
	}
}

func TestSetSuspense(t *testing.T) {
	s := NewSession()
	if got := s.SetSuspense(true); !got {
		t.Error("SetSuspense(true) = false")
	}
	if !s.State().SuspenseMode {
		t.Error("state does not reflect suspense on")
	}
	s.SetSuspense(false)
	if s.State().SuspenseMode {
		t.Error("state does not reflect suspense off")
	}
}

func TestSetPauseStoresVerbatim(t *testing.T) {
	s := NewSession()

	got := s.SetPause("2024-01-01T10:00:00Z")
	if got == nil || *got != "2024-01-01T10:00:00Z" {
		t.Fatalf("SetPause returned %v, want the exact string", got)
	}
	if state := s.State(); state.PauseUntil == nil || *state.PauseUntil != "2024-01-01T10:00:00Z" {
		t.Errorf("state pauseUntil = %v", state.PauseUntil)
	}

	// The value is stored as-is, not validated as a timestamp.
	if got := s.SetPause("dans cinq minutes"); got == nil || *got != "dans cinq minutes" {
		t.Errorf("non-timestamp value not stored verbatim: %v", got)
	}
}

func TestSetPauseClears(t *testing.T) {
	s := NewSession()
	s.SetPause("2024-01-01T10:00:00Z")

	if got := s.SetPause(""); got != nil {
		t.Errorf("SetPause(\"\") = %v, want nil", *got)
	}
	if got := s.State().PauseUntil; got != nil {
		t.Errorf("pauseUntil = %v after clear, want nil", *got)
	}

	// Whitespace-only also clears.
	s.SetPause("2024-01-01T10:00:00Z")
	if got := s.SetPause("   "); got != nil {
		t.Errorf("blank SetPause = %v, want nil", *got)
	}
}
