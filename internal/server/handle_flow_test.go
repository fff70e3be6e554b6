package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hearttoheart/backend/internal/flow"
	"github.com/hearttoheart/backend/internal/gemini"
)

// stubClient is a canned generation backend for handler tests.
type stubClient struct {
	reportText string
	reportErr  error
	chatReply  string
	storyErr   error
}

func (c *stubClient) Report(_ context.Context, _ gemini.ReportRequest) (string, error) {
	if c.reportErr != nil {
		return "", c.reportErr
	}
	if c.reportText == "" {
		return "analysis", nil
	}
	return c.reportText, nil
}

func (c *stubClient) Tip(_ context.Context, _ gemini.TipRequest) string { return "a tip" }

func (c *stubClient) Scenario(_ context.Context, _ gemini.ScenarioRequest) string {
	return "a scenario"
}

func (c *stubClient) Story(_ context.Context, _ gemini.StoryRequest) (gemini.StoryResult, error) {
	if c.storyErr != nil {
		return gemini.StoryResult{}, c.storyErr
	}
	return gemini.StoryResult{Text: "once upon a time", MimeType: "audio/wav"}, nil
}

func (c *stubClient) Chat(_ context.Context, _ gemini.ChatRequest) string { return c.chatReply }

func flowRouter(t *testing.T, client gemini.Client) (*chi.Mux, *Registry) {
	t.Helper()
	sessions := NewRegistry()
	broker := NewBroker()

	r := chi.NewRouter()
	r.Post("/api/session", handleSession(sessions))
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))
		r.Get("/api/catalog", handleCatalog())
		r.Get("/api/flow", handleFlowState())
		r.Post("/api/flow/role", handleSelectRole())
		r.Post("/api/flow/age-group", handleSelectAgeGroup())
		r.Post("/api/flow/profile", handleUpdateProfile())
		r.Post("/api/flow/profile/submit", handleSubmitProfile())
		r.Post("/api/flow/assessment", handleSelectAssessment())
		r.Post("/api/flow/answer", handleAnswer())
		r.Post("/api/flow/submit", handleSubmit(client, broker))
		r.Post("/api/flow/deeplink", handleDeepLink())
	})
	return r, sessions
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, r http.Handler) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/session", "", SessionRequest{Language: "zh"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp SessionResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Token == "" {
		t.Fatal("create session: expected a token")
	}
	return resp.Token
}

func decodeSnapshot(t *testing.T, w *httptest.ResponseRecorder) flow.Snapshot {
	t.Helper()
	var snap flow.Snapshot
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return snap
}

func TestFlowRequiresSessionToken(t *testing.T) {
	r, _ := flowRouter(t, &stubClient{})

	w := doJSON(t, r, http.MethodGet, "/api/flow", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/flow", "no-such-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token, got %d", w.Code)
	}
}

func TestFlowWalkthroughToReport(t *testing.T) {
	r, _ := flowRouter(t, &stubClient{reportText: "detailed analysis"})
	token := createSession(t, r)

	steps := []struct {
		path string
		body any
	}{
		{"/api/flow/role", RoleRequest{Role: "parent"}},
		{"/api/flow/age-group", AgeGroupRequest{AgeGroupID: "school"}},
		{"/api/flow/profile", ProfileRequest{ExactAge: ptr("8")}},
		{"/api/flow/profile/submit", nil},
		{"/api/flow/assessment", AssessmentRequest{AssessmentID: "attention_snap"}},
	}
	for _, step := range steps {
		w := doJSON(t, r, http.MethodPost, step.path, token, step.body)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", step.path, w.Code, w.Body.String())
		}
	}

	// Incomplete submission is rejected.
	w := doJSON(t, r, http.MethodPost, "/api/flow/submit", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("submit with no answers: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/flow", token, nil)
	snap := decodeSnapshot(t, w)
	if snap.State != flow.StateQuestions {
		t.Fatalf("expected questions state, got %q", snap.State)
	}
	for i := 0; i < snap.QuestionCount; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/flow/answer", token, AnswerRequest{QuestionIndex: i, Answer: "有时"})
		if w.Code != http.StatusOK {
			t.Fatalf("answer %d: expected 200, got %d: %s", i, w.Code, w.Body.String())
		}
	}

	w = doJSON(t, r, http.MethodPost, "/api/flow/submit", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	snap = decodeSnapshot(t, w)
	if snap.State != flow.StateReport {
		t.Fatalf("expected report state, got %q", snap.State)
	}
	if snap.Report == nil || snap.Report.Text != "detailed analysis" {
		t.Errorf("report: %+v", snap.Report)
	}
	if snap.Report.Tip != "a tip" {
		t.Errorf("tip: %q", snap.Report.Tip)
	}
}

func TestAnswerRejectsOffScaleOption(t *testing.T) {
	r, _ := flowRouter(t, &stubClient{})
	token := createSession(t, r)

	for _, step := range []struct {
		path string
		body any
	}{
		{"/api/flow/role", RoleRequest{Role: "parent"}},
		{"/api/flow/age-group", AgeGroupRequest{AgeGroupID: "school"}},
		{"/api/flow/profile", ProfileRequest{ExactAge: ptr("8")}},
		{"/api/flow/profile/submit", nil},
		{"/api/flow/assessment", AssessmentRequest{AssessmentID: "attention_snap"}},
	} {
		doJSON(t, r, http.MethodPost, step.path, token, step.body)
	}

	w := doJSON(t, r, http.MethodPost, "/api/flow/answer", token, AnswerRequest{QuestionIndex: 0, Answer: "maybe"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for off-scale answer, got %d", w.Code)
	}
}

func TestSelectRoleTwiceConflicts(t *testing.T) {
	r, _ := flowRouter(t, &stubClient{})
	token := createSession(t, r)

	doJSON(t, r, http.MethodPost, "/api/flow/role", token, RoleRequest{Role: "parent"})
	w := doJSON(t, r, http.MethodPost, "/api/flow/role", token, RoleRequest{Role: "teacher"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestDeepLinkPreseedsFlow(t *testing.T) {
	r, _ := flowRouter(t, &stubClient{})
	token := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/flow/deeplink", token,
		DeepLinkRequest{Token: "attention_snap?age=7&gender=boy&role=teacher"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp DeepLinkResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if !resp.Applied {
		t.Fatal("expected the link to apply")
	}
	if resp.Snapshot.State != flow.StateQuestions {
		t.Errorf("expected questions state, got %q", resp.Snapshot.State)
	}
	if resp.Snapshot.Profile.ExactAge != "7" {
		t.Errorf("expected age 7, got %q", resp.Snapshot.Profile.ExactAge)
	}
}

func TestDeepLinkUnknownAssessmentIsNoOp(t *testing.T) {
	r, _ := flowRouter(t, &stubClient{})
	token := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/flow/deeplink", token,
		DeepLinkRequest{Token: "nonexistent_assessment?age=7"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp DeepLinkResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Applied {
		t.Fatal("expected the link to be ignored")
	}
	if resp.Snapshot.State != flow.StateSelectRole {
		t.Errorf("expected flow unchanged, got %q", resp.Snapshot.State)
	}
}

func TestCatalogFollowsSessionLanguage(t *testing.T) {
	r, _ := flowRouter(t, &stubClient{})
	token := createSession(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/catalog", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp CatalogResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.AgeGroups) != 4 {
		t.Errorf("expected 4 age groups, got %d", len(resp.AgeGroups))
	}
	if len(resp.ScaleOptions) != 4 || resp.ScaleOptions[0] != "总是" {
		t.Errorf("scale options: %v", resp.ScaleOptions)
	}
}

func ptr[T any](v T) *T { return &v }
