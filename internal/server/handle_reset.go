package server

import (
	"log/slog"
	"net/http"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

type ResetResponse struct {
	Success bool `json:"success"`
}

// handleReset reloads the seed data, discarding every runtime mutation.
// Session flags (suspense, pause) survive a reset.
func handleReset(store *scoreboard.Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Reset(r.Context()); err != nil {
			logger.Error("reset failed", "error", err)
			writeFailure(w, http.StatusInternalServerError, "reloading seed data failed")
			return
		}

		writeJSON(w, http.StatusOK, ResetResponse{Success: true})
	}
}
