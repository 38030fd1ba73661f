package server

import (
	"net/http"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

type SuspenseRequest struct {
	Active bool `json:"active"`
}

type SuspenseResponse struct {
	Success      bool `json:"success"`
	SuspenseMode bool `json:"suspenseMode"`
}

type PauseRequest struct {
	ResumeAt string `json:"resumeAt"`
}

type PauseResponse struct {
	Success    bool    `json:"success"`
	PauseUntil *string `json:"pauseUntil"`
}

func handleState(session *scoreboard.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session.State())
	}
}

func handleSetSuspense(session *scoreboard.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SuspenseRequest
		if err := readJSON(r, &req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		writeJSON(w, http.StatusOK, SuspenseResponse{
			Success:      true,
			SuspenseMode: session.SetSuspense(req.Active),
		})
	}
}

func handleSetPause(session *scoreboard.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PauseRequest
		if err := readJSON(r, &req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		writeJSON(w, http.StatusOK, PauseResponse{
			Success:    true,
			PauseUntil: session.SetPause(req.ResumeAt),
		})
	}
}
