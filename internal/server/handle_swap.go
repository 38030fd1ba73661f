package server

import (
	"net/http"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

type SwapPlayersRequest struct {
	PlayerID       string `json:"playerId"`
	TargetTeamID   string `json:"targetTeamId"`
	TargetPlayerID string `json:"targetPlayerId"`
}

func handleSwapPlayers(store *scoreboard.Store, metrics *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SwapPlayersRequest
		if err := readJSON(r, &req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		outcome := store.SwapPlayers(req.PlayerID, req.TargetTeamID, req.TargetPlayerID)
		metrics.Operation("swapPlayers", outcome)

		writeJSON(w, http.StatusOK, TeamsResponse{Success: true, Teams: store.Teams()})
	}
}
