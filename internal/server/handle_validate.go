package server

import (
	"net/http"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

type ValidateRequest struct {
	TeamID      string `json:"teamId"`
	ChallengeID string `json:"challengeId"`
}

type ValidateResponse struct {
	Success    bool                   `json:"success"`
	Teams      []scoreboard.Team      `json:"teams"`
	Challenges []scoreboard.Challenge `json:"challenges"`
}

// handleValidate toggles a challenge completion for a team. Ids that don't
// resolve (and toggles the engine refuses, like an exclusive challenge held
// by another team) still answer success with the unchanged collections.
func handleValidate(store *scoreboard.Store, metrics *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateRequest
		if err := readJSON(r, &req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		outcome := store.ToggleChallenge(req.TeamID, req.ChallengeID)
		metrics.Operation("validate", outcome)

		writeJSON(w, http.StatusOK, ValidateResponse{
			Success:    true,
			Teams:      store.Teams(),
			Challenges: store.Challenges(),
		})
	}
}
