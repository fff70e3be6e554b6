package server

import (
	"net/http"
	"strings"

	"github.com/hearttoheart/backend/internal/gemini"
)

// StoryRequest is the request body for POST /api/story.
type StoryRequest struct {
	ChildName      string `json:"childName"`
	Age            string `json:"age"`
	SkillToLearn   string `json:"skillToLearn"`
	IssueToCorrect string `json:"issueToCorrect"`
	Voice          string `json:"voice"`
	Premium        bool   `json:"premium"`
	DeviceKey      string `json:"deviceKey"`
}

// StoryResponse is the generated story with its remaining free quota.
type StoryResponse struct {
	Story         gemini.StoryResult `json:"story"`
	FreeRemaining int                `json:"freeRemaining"`
}

// handleStory generates a bedtime story. Non-premium usage is metered per
// device; the device key falls back to the session token for clients that
// do not send one.
func handleStory(client gemini.Client, store *Store, broker *Broker, freeLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StoryRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.ChildName) == "" {
			writeError(w, http.StatusBadRequest, "childName is required")
			return
		}

		deviceKey := req.DeviceKey
		if deviceKey == "" {
			deviceKey = tokenFrom(r)
		}

		if !req.Premium {
			used, err := store.StoryUsage(r.Context(), deviceKey)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if used >= freeLimit {
				writeError(w, http.StatusPaymentRequired, "free story limit reached")
				return
			}
		}

		sess := sessionFrom(r)
		story, err := client.Story(r.Context(), gemini.StoryRequest{
			ChildName:      req.ChildName,
			Age:            req.Age,
			SkillToLearn:   req.SkillToLearn,
			IssueToCorrect: req.IssueToCorrect,
			Voice:          req.Voice,
			Language:       sess.Language(),
		})
		if err != nil {
			writeError(w, http.StatusBadGateway, "story generation failed")
			return
		}

		freeRemaining := freeLimit
		if !req.Premium {
			if err := store.IncrementStoryUsage(r.Context(), deviceKey); err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			used, _ := store.StoryUsage(r.Context(), deviceKey)
			freeRemaining = max(freeLimit-used, 0)
		}

		broker.Publish(tokenFrom(r), SSEEvent{Type: eventStoryReady})
		writeJSON(w, http.StatusOK, StoryResponse{
			Story:         story,
			FreeRemaining: freeRemaining,
		})
	}
}
