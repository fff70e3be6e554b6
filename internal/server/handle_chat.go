package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/hearttoheart/backend/internal/deeplink"
	"github.com/hearttoheart/backend/internal/gemini"
)

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the consultant reply plus any assessment links the model
// embedded in it.
type ChatResponse struct {
	Reply string          `json:"reply"`
	Links []deeplink.Link `json:"links,omitempty"`
}

func handleChat(client gemini.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Message = strings.TrimSpace(req.Message)
		if req.Message == "" {
			writeError(w, http.StatusBadRequest, "message is required")
			return
		}

		sess := sessionFrom(r)
		cat := sess.Catalog()

		var index strings.Builder
		for _, g := range cat.AgeGroups {
			for _, d := range cat.AssessmentsByAgeGroup[g.ID] {
				fmt.Fprintf(&index, "%s (%s, %s)\n", d.ID, d.Title, g.Label)
			}
		}

		reply := client.Chat(r.Context(), gemini.ChatRequest{
			Message:         req.Message,
			AssessmentIndex: index.String(),
			Language:        sess.Language(),
		})

		writeJSON(w, http.StatusOK, ChatResponse{
			Reply: reply,
			Links: deeplink.ExtractLinks(reply),
		})
	}
}
