package server

import (
	"net/http"
)

// AdminStatsResponse is the response for GET /api/admin/stats.
type AdminStatsResponse struct {
	ActiveFlows   int `json:"activeFlows"`
	StoryDevices  int `json:"storyDevices"`
	StoriesServed int `json:"storiesServed"`
}

func handleAdminStats(store *Store, sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		devices, stories, err := store.StoryUsageTotals(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, AdminStatsResponse{
			ActiveFlows:   sessions.Count(),
			StoryDevices:  devices,
			StoriesServed: stories,
		})
	}
}
