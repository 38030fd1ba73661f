package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

func TestMetricsExposesCounters(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/validate", `{"teamId":"t1","challengeId":"c1"}`)
	doJSON(t, r, http.MethodPost, "/api/validate", `{"teamId":"ghost","challengeId":"c1"}`)

	rec := doJSON(t, r, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `scoreboard_operations_total{operation="validate",outcome="applied"} 1`) {
		t.Errorf("missing applied counter:\n%s", body)
	}
	if !strings.Contains(body, `scoreboard_operations_total{operation="validate",outcome="ignored"} 1`) {
		t.Errorf("missing ignored counter:\n%s", body)
	}
	if !strings.Contains(body, "scoreboard_http_requests_total") {
		t.Errorf("missing http request counter")
	}
}

func TestMetricsOperationLabels(t *testing.T) {
	m := NewMetrics()
	m.Operation("swapPlayers", scoreboard.Applied)
	m.Operation("swapPlayers", scoreboard.Ignored)
	// Registration panics on duplicate or invalid series; reaching here is
	// the assertion.
}
