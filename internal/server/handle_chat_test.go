package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hearttoheart/backend/internal/gemini"
)

func chatRouter(t *testing.T, client gemini.Client) (*chi.Mux, string) {
	t.Helper()
	sessions := NewRegistry()

	r := chi.NewRouter()
	r.Post("/api/session", handleSession(sessions))
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))
		r.Post("/api/chat", handleChat(client))
		r.Post("/api/solutions/{id}/scenario", handleScenario(client))
	})
	return r, createSession(t, r)
}

func TestChatExtractsAssessmentLinks(t *testing.T) {
	reply := "建议做 [注意力测评](assessment:attention_snap?age=7&gender=boy) 看看。"
	r, token := chatRouter(t, &stubClient{chatReply: reply})

	w := doJSON(t, r, http.MethodPost, "/api/chat", token, ChatRequest{Message: "孩子上课走神"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ChatResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Reply != reply {
		t.Errorf("reply: %q", resp.Reply)
	}
	if len(resp.Links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(resp.Links))
	}
	if resp.Links[0].AssessmentID != "attention_snap" {
		t.Errorf("link: %+v", resp.Links[0])
	}
}

func TestChatPlainReplyHasNoLinks(t *testing.T) {
	r, token := chatRouter(t, &stubClient{chatReply: "多陪孩子聊聊天。"})

	w := doJSON(t, r, http.MethodPost, "/api/chat", token, ChatRequest{Message: "你好"})
	var resp ChatResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Links) != 0 {
		t.Errorf("expected no links, got %v", resp.Links)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	r, token := chatRouter(t, &stubClient{})

	w := doJSON(t, r, http.MethodPost, "/api/chat", token, ChatRequest{Message: "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestScenarioUnknownSolution(t *testing.T) {
	r, token := chatRouter(t, &stubClient{})

	w := doJSON(t, r, http.MethodPost, "/api/solutions/nope/scenario", token, ScenarioRequest{})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestScenarioForKnownSolution(t *testing.T) {
	r, token := chatRouter(t, &stubClient{})

	w := doJSON(t, r, http.MethodPost, "/api/solutions/attention/scenario", token, ScenarioRequest{Retry: true})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ScenarioResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.SolutionID != "attention" || resp.Scenario == "" {
		t.Errorf("scenario: %+v", resp)
	}
}
