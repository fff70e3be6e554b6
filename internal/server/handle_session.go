package server

import (
	"net/http"

	"github.com/hearttoheart/backend/internal/flow"
	"github.com/hearttoheart/backend/internal/heart"
)

// SessionRequest is the request body for POST /api/session.
type SessionRequest struct {
	Language string `json:"language"`
}

// SessionResponse carries the bearer token for all subsequent calls.
type SessionResponse struct {
	Token    string        `json:"token"`
	Snapshot flow.Snapshot `json:"snapshot"`
}

func handleSession(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SessionRequest
		if err := readJSON(r, &req); err != nil && r.ContentLength > 0 {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, sess := sessions.Create(heart.ParseLanguage(req.Language))
		writeJSON(w, http.StatusCreated, SessionResponse{
			Token:    token,
			Snapshot: sess.Snapshot(),
		})
	}
}
