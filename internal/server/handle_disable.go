package server

import (
	"net/http"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

type ToggleDisabledRequest struct {
	ChallengeID string `json:"challengeId"`
}

type ToggleDisabledResponse struct {
	Success    bool                   `json:"success"`
	Challenges []scoreboard.Challenge `json:"challenges"`
	Teams      []scoreboard.Team      `json:"teams"`
}

func handleToggleDisabled(store *scoreboard.Store, metrics *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ToggleDisabledRequest
		if err := readJSON(r, &req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		outcome := store.ToggleDisabled(req.ChallengeID)
		metrics.Operation("toggleDisabled", outcome)

		writeJSON(w, http.StatusOK, ToggleDisabledResponse{
			Success:    true,
			Challenges: store.Challenges(),
			Teams:      store.Teams(),
		})
	}
}
