package server

import (
	"net/http"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

func handleChallenges(store *scoreboard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Challenges())
	}
}
