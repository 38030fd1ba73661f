package server

import (
	"net/http"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

func handleTeams(store *scoreboard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Teams())
	}
}
