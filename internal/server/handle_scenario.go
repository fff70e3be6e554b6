package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hearttoheart/backend/internal/gemini"
)

// ScenarioRequest is the request body for POST /api/solutions/{id}/scenario.
type ScenarioRequest struct {
	Retry bool `json:"retry"`
}

// ScenarioResponse is a generated role-play script for one solution card.
type ScenarioResponse struct {
	SolutionID string `json:"solutionId"`
	Scenario   string `json:"scenario"`
}

func handleScenario(client gemini.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScenarioRequest
		if err := readJSON(r, &req); err != nil && r.ContentLength > 0 {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		id := chi.URLParam(r, "id")
		card, ok := sess.Catalog().Solution(id)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown solution card")
			return
		}

		if !sess.BeginScenario(id) {
			writeError(w, http.StatusConflict, "scenario generation already running")
			return
		}
		defer sess.EndScenario(id)

		scenario := client.Scenario(r.Context(), gemini.ScenarioRequest{
			Profile:       sess.Profile(),
			SolutionTitle: card.Title,
			Language:      sess.Language(),
			Retry:         req.Retry,
		})
		writeJSON(w, http.StatusOK, ScenarioResponse{
			SolutionID: id,
			Scenario:   scenario,
		})
	}
}
