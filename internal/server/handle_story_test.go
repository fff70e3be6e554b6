package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hearttoheart/backend/internal/database"
	"github.com/hearttoheart/backend/internal/gemini"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewStore(ctx, db, "admin@test.local", "secret")
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	return store
}

func storyRouter(t *testing.T, client gemini.Client, store *Store, freeLimit int) (*chi.Mux, string) {
	t.Helper()
	sessions := NewRegistry()
	broker := NewBroker()

	r := chi.NewRouter()
	r.Post("/api/session", handleSession(sessions))
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))
		r.Post("/api/story", handleStory(client, store, broker, freeLimit))
	})
	return r, createSession(t, r)
}

func TestStoryFreeLimitGates(t *testing.T) {
	store := setupStore(t)
	r, token := storyRouter(t, &stubClient{}, store, 2)

	req := StoryRequest{ChildName: "小明", Age: "5", DeviceKey: "device-1"}

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/story", token, req)
		if w.Code != http.StatusOK {
			t.Fatalf("story %d: expected 200, got %d: %s", i+1, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodPost, "/api/story", token, req)
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("third free story: expected 402, got %d", w.Code)
	}
}

func TestStoryPremiumBypassesLimit(t *testing.T) {
	store := setupStore(t)
	r, token := storyRouter(t, &stubClient{}, store, 0)

	req := StoryRequest{ChildName: "Mia", Premium: true, DeviceKey: "device-2"}
	w := doJSON(t, r, http.MethodPost, "/api/story", token, req)
	if w.Code != http.StatusOK {
		t.Fatalf("premium story: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp StoryResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Story.Text == "" {
		t.Error("expected story text")
	}
}

func TestStoryGenerationFailureDoesNotConsumeQuota(t *testing.T) {
	store := setupStore(t)
	r, token := storyRouter(t, &stubClient{storyErr: errors.New("backend down")}, store, 2)

	req := StoryRequest{ChildName: "Leo", DeviceKey: "device-3"}
	w := doJSON(t, r, http.MethodPost, "/api/story", token, req)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	used, err := store.StoryUsage(context.Background(), "device-3")
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if used != 0 {
		t.Errorf("expected 0 used, got %d", used)
	}
}

func TestStoryRequiresChildName(t *testing.T) {
	store := setupStore(t)
	r, token := storyRouter(t, &stubClient{}, store, 2)

	w := doJSON(t, r, http.MethodPost, "/api/story", token, StoryRequest{DeviceKey: "device-4"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
