package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

// ErrorResponse is the error shape of GET routes and unknown API paths.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse is the error shape of the mutation routes.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Scoreboard API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the live-event scoreboard.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the reachability of the seed data source.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/state")
	getState.SetSummary("Session state")
	getState.SetDescription("Returns the suspense flag and the pause-until marker.")
	getState.AddRespStructure(scoreboard.SessionState{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getState)

	// GET /api/teams
	getTeams, _ := r.NewOperationContext(http.MethodGet, "/api/teams")
	getTeams.SetSummary("List teams")
	getTeams.SetDescription("Returns every team with players, points, and completed challenges.")
	getTeams.AddRespStructure([]scoreboard.Team{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getTeams)

	// GET /api/challenges
	getChallenges, _ := r.NewOperationContext(http.MethodGet, "/api/challenges")
	getChallenges.SetSummary("List challenges")
	getChallenges.SetDescription("Returns every challenge with its winners and disabled flag.")
	getChallenges.AddRespStructure([]scoreboard.Challenge{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getChallenges)

	// GET /api/tips
	getTips, _ := r.NewOperationContext(http.MethodGet, "/api/tips")
	getTips.SetSummary("Active hints")
	getTips.SetDescription("Returns the hints whose reveal window contains the given instant.")
	getTips.AddReqStructure(TipsParams{})
	getTips.AddRespStructure([]scoreboard.ActiveHint{}, openapi.WithHTTPStatus(http.StatusOK))
	getTips.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getTips)

	// POST /api/validate
	postValidate, _ := r.NewOperationContext(http.MethodPost, "/api/validate")
	postValidate.SetSummary("Toggle challenge completion")
	postValidate.SetDescription("Validates or un-validates a challenge for a team and echoes the updated collections.")
	postValidate.AddReqStructure(ValidateRequest{})
	postValidate.AddRespStructure(ValidateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postValidate.AddRespStructure(FailureResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postValidate)

	// POST /api/addPersonalPoints
	postPoints, _ := r.NewOperationContext(http.MethodPost, "/api/addPersonalPoints")
	postPoints.SetSummary("Award personal points")
	postPoints.SetDescription("Adds (or with a negative amount deducts) personal points for a player and the owning team.")
	postPoints.AddReqStructure(PersonalPointsRequest{})
	postPoints.AddRespStructure(TeamsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postPoints.AddRespStructure(FailureResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postPoints)

	// POST /api/toggleDisabled
	postDisable, _ := r.NewOperationContext(http.MethodPost, "/api/toggleDisabled")
	postDisable.SetSummary("Enable or disable a challenge")
	postDisable.SetDescription("Flips a challenge's disabled flag and replays the credit bookkeeping for its winners.")
	postDisable.AddReqStructure(ToggleDisabledRequest{})
	postDisable.AddRespStructure(ToggleDisabledResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postDisable.AddRespStructure(FailureResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postDisable)

	// POST /api/swapPlayers
	postSwap, _ := r.NewOperationContext(http.MethodPost, "/api/swapPlayers")
	postSwap.SetSummary("Swap two players")
	postSwap.SetDescription("Exchanges two players' roster slots across teams, moving their personal points with them.")
	postSwap.AddReqStructure(SwapPlayersRequest{})
	postSwap.AddRespStructure(TeamsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSwap.AddRespStructure(FailureResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postSwap)

	// POST /api/setSuspense
	postSuspense, _ := r.NewOperationContext(http.MethodPost, "/api/setSuspense")
	postSuspense.SetSummary("Set suspense mode")
	postSuspense.SetDescription("Turns the points-hiding suspense mode on or off.")
	postSuspense.AddReqStructure(SuspenseRequest{})
	postSuspense.AddRespStructure(SuspenseResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSuspense.AddRespStructure(FailureResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postSuspense)

	// POST /api/setPause
	postPause, _ := r.NewOperationContext(http.MethodPost, "/api/setPause")
	postPause.SetSummary("Set or clear the game pause")
	postPause.SetDescription("Stores a pause-until marker verbatim, or clears it when resumeAt is blank.")
	postPause.AddReqStructure(PauseRequest{})
	postPause.AddRespStructure(PauseResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postPause.AddRespStructure(FailureResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postPause)

	// GET /api/reset
	getReset, _ := r.NewOperationContext(http.MethodGet, "/api/reset")
	getReset.SetSummary("Reset event data")
	getReset.SetDescription("Reloads teams, challenges, and hints from the seed source, discarding runtime mutations.")
	getReset.AddRespStructure(ResetResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getReset.AddRespStructure(FailureResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(getReset)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
