package server

import (
	"net/http"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

type PersonalPointsRequest struct {
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
	Amount   int    `json:"amount"`
}

// TeamsResponse echoes the team collection after a mutation.
type TeamsResponse struct {
	Success bool              `json:"success"`
	Teams   []scoreboard.Team `json:"teams"`
}

func handleAddPersonalPoints(store *scoreboard.Store, metrics *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PersonalPointsRequest
		if err := readJSON(r, &req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		outcome := store.AddPersonalPoints(req.TeamID, req.PlayerID, req.Amount)
		metrics.Operation("addPersonalPoints", outcome)

		writeJSON(w, http.StatusOK, TeamsResponse{Success: true, Teams: store.Teams()})
	}
}
