package server

import (
	"net/http"

	"github.com/hearttoheart/backend/internal/deeplink"
	"github.com/hearttoheart/backend/internal/flow"
)

// DeepLinkRequest is the request body for POST /api/flow/deeplink.
type DeepLinkRequest struct {
	Token string `json:"token"`
}

// DeepLinkResponse reports whether the link moved the flow. An unknown
// assessment id is not an error; the flow simply stays where it was.
type DeepLinkResponse struct {
	Applied  bool          `json:"applied"`
	Snapshot flow.Snapshot `json:"snapshot"`
}

func handleDeepLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeepLinkRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id, hints := deeplink.Resolve(req.Token)
		sess := sessionFrom(r)
		applied := sess.Preseed(id, hints)
		writeJSON(w, http.StatusOK, DeepLinkResponse{
			Applied:  applied,
			Snapshot: sess.Snapshot(),
		})
	}
}
