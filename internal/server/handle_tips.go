package server

import (
	"net/http"
	"time"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

// TipsParams documents the query parameters of GET /api/tips.
type TipsParams struct {
	ChallengeID string `query:"challengeId" description:"Restrict hints to one challenge."`
	Now         string `query:"now" description:"RFC 3339 instant to evaluate windows at; defaults to the current time."`
}

func handleTips(store *scoreboard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		now := time.Now()
		if raw := q.Get("now"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid now timestamp")
				return
			}
			now = parsed
		}

		writeJSON(w, http.StatusOK, store.ActiveHints(now, q.Get("challengeId")))
	}
}
