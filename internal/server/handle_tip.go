package server

import (
	"net/http"
	"strings"

	"github.com/hearttoheart/backend/internal/gemini"
)

// TipRequest is the request body for POST /api/tip.
type TipRequest struct {
	Context string `json:"context"`
	Premium bool   `json:"premium"`
}

// TipResponse is a single short parenting tip.
type TipResponse struct {
	Tip string `json:"tip"`
}

func handleTip(client gemini.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TipRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		tip := client.Tip(r.Context(), gemini.TipRequest{
			Context:  strings.TrimSpace(req.Context),
			Premium:  req.Premium,
			Language: sess.Language(),
		})
		writeJSON(w, http.StatusOK, TipResponse{Tip: tip})
	}
}
