package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

func addRoutes(r chi.Router, logger *slog.Logger, store *scoreboard.Store, session *scoreboard.Session, metrics *Metrics, checks map[string]Checker, spaDir string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Scoreboard API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, checks))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", handleState(session))
		r.Get("/teams", handleTeams(store))
		r.Get("/challenges", handleChallenges(store))
		r.Get("/tips", handleTips(store))
		r.Get("/reset", handleReset(store, logger))

		r.Post("/validate", handleValidate(store, metrics))
		r.Post("/addPersonalPoints", handleAddPersonalPoints(store, metrics))
		r.Post("/toggleDisabled", handleToggleDisabled(store, metrics))
		r.Post("/swapPlayers", handleSwapPlayers(store, metrics))
		r.Post("/setSuspense", handleSetSuspense(session))
		r.Post("/setPause", handleSetPause(session))

		// Unknown API routes answer in JSON, never with the SPA fallback.
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusNotFound, "Not found")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusNotFound, "Not found")
		})
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
