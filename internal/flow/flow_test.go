package flow

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hearttoheart/backend/internal/gemini"
	"github.com/hearttoheart/backend/internal/heart"
)

type fakeClient struct {
	mu          sync.Mutex
	reportCalls int
	reportErr   error
	onReport    func()
}

func (f *fakeClient) Report(_ context.Context, req gemini.ReportRequest) (string, error) {
	f.mu.Lock()
	f.reportCalls++
	cb := f.onReport
	err := f.reportErr
	f.mu.Unlock()
	if cb != nil {
		cb()
	}
	if err != nil {
		return "", err
	}
	return "Evaluation Summary: low concern for " + req.AssessmentTitle, nil
}

func (f *fakeClient) Tip(_ context.Context, req gemini.TipRequest) string {
	return "daily tip"
}

func (f *fakeClient) Scenario(_ context.Context, _ gemini.ScenarioRequest) string { return "scenario" }

func (f *fakeClient) Story(_ context.Context, _ gemini.StoryRequest) (gemini.StoryResult, error) {
	return gemini.StoryResult{Text: "story"}, nil
}

func (f *fakeClient) Chat(_ context.Context, _ gemini.ChatRequest) string { return "reply" }

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reportCalls
}

// walkToDashboard drives a fresh session to the dashboard for the school
// age group with exact age 8.
func walkToDashboard(t *testing.T) *Session {
	t.Helper()
	s := NewSession(heart.LangEN)

	if err := s.SelectRole(heart.RoleParent); err != nil {
		t.Fatalf("select role: %v", err)
	}
	if err := s.SelectAgeGroup("school"); err != nil {
		t.Fatalf("select age group: %v", err)
	}
	age := "8"
	if err := s.UpdateProfile(nil, &age); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if err := s.SubmitProfile(); err != nil {
		t.Fatalf("submit profile: %v", err)
	}
	return s
}

func TestWalkthroughToDashboard(t *testing.T) {
	s := walkToDashboard(t)

	snap := s.Snapshot()
	if snap.State != StateDashboard {
		t.Fatalf("expected dashboard, got %s", snap.State)
	}
	if snap.AgeGroupID != "school" {
		t.Errorf("expected school bucket, got %q", snap.AgeGroupID)
	}
	defs := s.Catalog().AssessmentsByAgeGroup[snap.AgeGroupID]
	if len(defs) != 3 {
		t.Errorf("expected 3 school assessments, got %d", len(defs))
	}
}

func TestProfileGateBlocksEmptyAge(t *testing.T) {
	s := NewSession(heart.LangEN)
	s.SelectRole(heart.RoleParent)
	s.SelectAgeGroup("toddler")

	if err := s.SubmitProfile(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if s.Snapshot().State != StateProfileInput {
		t.Error("state changed despite gate")
	}
}

func TestQuestionsAndSubmit(t *testing.T) {
	s := walkToDashboard(t)
	if err := s.SelectAssessment("attention_snap"); err != nil {
		t.Fatalf("select assessment: %v", err)
	}

	snap := s.Snapshot()
	if snap.State != StateQuestions {
		t.Fatalf("expected questions, got %s", snap.State)
	}
	if snap.QuestionCount != 8 {
		t.Fatalf("expected 8 questions, got %d", snap.QuestionCount)
	}
	if len(snap.Answers) != 0 {
		t.Fatalf("expected empty answer set, got %d", len(snap.Answers))
	}

	client := &fakeClient{}

	// Incomplete answer set: rejected before any network call.
	s.Answer(0, "Always")
	if _, err := s.Submit(context.Background(), client); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if client.calls() != 0 {
		t.Fatal("incomplete submission must not issue a report request")
	}

	for i := 1; i < 8; i++ {
		if err := s.Answer(i, "Sometimes"); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	rep, err := s.Submit(context.Background(), client)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rep.Text == "" {
		t.Error("expected non-empty report text")
	}
	if rep.Tip != "daily tip" {
		t.Errorf("expected tip attached, got %q", rep.Tip)
	}
	if s.Snapshot().State != StateReport {
		t.Errorf("expected report state, got %s", s.Snapshot().State)
	}
}

func TestAnswerValidation(t *testing.T) {
	s := walkToDashboard(t)
	s.SelectAssessment("attention_snap")

	if err := s.Answer(99, "Always"); err == nil {
		t.Error("expected out-of-range index to be rejected")
	}
	if err := s.Answer(0, "Absolutely"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestReportFailureStaysInQuestions(t *testing.T) {
	s := walkToDashboard(t)
	s.SelectAssessment("conduct_sdq")
	for i := 0; i < 5; i++ {
		s.Answer(i, "Rarely")
	}

	client := &fakeClient{reportErr: errors.New("backend down")}
	if _, err := s.Submit(context.Background(), client); err == nil {
		t.Fatal("expected submit to fail")
	}

	snap := s.Snapshot()
	if snap.State != StateQuestions {
		t.Fatalf("expected questions after failure, got %s", snap.State)
	}
	if snap.Submitting {
		t.Error("in-flight flag not cleared")
	}
	if len(snap.Answers) != 5 {
		t.Errorf("answers lost: %d left", len(snap.Answers))
	}

	// Retry without re-answering succeeds.
	client.reportErr = nil
	if _, err := s.Submit(context.Background(), client); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if s.Snapshot().State != StateReport {
		t.Error("resubmit did not reach report")
	}
}

func TestStaleSubmissionDropped(t *testing.T) {
	s := walkToDashboard(t)
	s.SelectAssessment("autism_social")
	for i := 0; i < 5; i++ {
		s.Answer(i, "Never")
	}

	// The session is fully reset while the report request is in flight;
	// the late result must not resurrect the abandoned flow.
	client := &fakeClient{}
	client.onReport = func() { s.Reset(true) }

	if _, err := s.Submit(context.Background(), client); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected stale result to be dropped, got %v", err)
	}
	if snap := s.Snapshot(); snap.State != StateSelectRole || snap.Report != nil {
		t.Errorf("stale result applied: state=%s", snap.State)
	}
}

func TestFullReset(t *testing.T) {
	s := walkToDashboard(t)
	s.SelectAssessment("attention_snap")
	s.Answer(0, "Always")

	s.Reset(true)

	snap := s.Snapshot()
	if snap.State != StateSelectRole {
		t.Errorf("expected select_role, got %s", snap.State)
	}
	want := heart.ChildProfile{Gender: heart.GenderUndisclosed, Role: heart.RoleParent}
	if snap.Profile != want {
		t.Errorf("profile not reset: %+v", snap.Profile)
	}
	if snap.Assessment != nil || snap.Report != nil {
		t.Error("assessment or report survived full reset")
	}
}

func TestResetToDashboardKeepsProfile(t *testing.T) {
	s := walkToDashboard(t)
	s.SelectAssessment("attention_snap")

	s.Reset(false)

	snap := s.Snapshot()
	if snap.State != StateDashboard {
		t.Errorf("expected dashboard, got %s", snap.State)
	}
	if snap.Profile.ExactAge != "8" {
		t.Error("profile lost on soft reset")
	}
	if snap.Assessment != nil {
		t.Error("assessment survived soft reset")
	}
}

func TestBackNavigationRetainsEarlierState(t *testing.T) {
	s := walkToDashboard(t)

	if err := s.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	snap := s.Snapshot()
	if snap.State != StateProfileInput {
		t.Fatalf("expected profile_input, got %s", snap.State)
	}
	if snap.Profile.Role != heart.RoleParent || snap.AgeGroupID != "school" {
		t.Error("back cleared state collected further back")
	}

	s.Back()
	if s.Snapshot().State != StateSelectAgeGroup {
		t.Error("expected select_age_group")
	}
	s.Back()
	if s.Snapshot().State != StateSelectRole {
		t.Error("expected select_role")
	}
	if err := s.Back(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("back from initial state: expected ErrInvalidState, got %v", err)
	}
}

func TestPreseedWithAgeJumpsToQuestions(t *testing.T) {
	s := NewSession(heart.LangEN)

	moved := s.Preseed("attention_snap", ProfileHints{
		ExactAge: "7",
		Gender:   heart.GenderBoy,
		Role:     heart.RoleTeacher,
	})
	if !moved {
		t.Fatal("expected preseed to move the flow")
	}

	snap := s.Snapshot()
	if snap.State != StateQuestions {
		t.Fatalf("expected questions, got %s", snap.State)
	}
	if snap.AgeGroupID != "school" {
		t.Errorf("expected school bucket, got %q", snap.AgeGroupID)
	}
	if snap.Profile.ExactAge != "7" || snap.Profile.Gender != heart.GenderBoy || snap.Profile.Role != heart.RoleTeacher {
		t.Errorf("hints not merged: %+v", snap.Profile)
	}
}

func TestPreseedWithoutAgeStopsAtProfileInput(t *testing.T) {
	s := NewSession(heart.LangZH)

	if !s.Preseed("sensory", ProfileHints{}) {
		t.Fatal("expected preseed to move the flow")
	}
	if snap := s.Snapshot(); snap.State != StateProfileInput {
		t.Errorf("expected profile_input, got %s", snap.State)
	}
}

func TestPreseedUnknownIDIsNoOp(t *testing.T) {
	s := walkToDashboard(t)
	before := s.Snapshot()

	if s.Preseed("nonexistent_id", ProfileHints{ExactAge: "5"}) {
		t.Fatal("unknown id must not move the flow")
	}
	after := s.Snapshot()
	if after.State != before.State || after.Profile != before.Profile {
		t.Error("state changed on unknown deep-link id")
	}
}

func TestLanguageSwitchDropsStaleAssessment(t *testing.T) {
	s := walkToDashboard(t)
	s.SelectAssessment("attention_snap")
	s.Answer(0, "Always")

	s.SetLanguage(heart.LangZH)

	snap := s.Snapshot()
	if snap.State != StateDashboard {
		t.Errorf("expected fallback to dashboard, got %s", snap.State)
	}
	if snap.Assessment != nil || len(snap.Answers) != 0 {
		t.Error("stale assessment survived language switch")
	}
	if snap.Profile.AgeGroup != "6-12 岁" {
		t.Errorf("age group label not re-derived: %q", snap.Profile.AgeGroup)
	}
}

func TestScenarioBusyFlagPerSolution(t *testing.T) {
	s := NewSession(heart.LangEN)

	if !s.BeginScenario("power") {
		t.Fatal("first begin should succeed")
	}
	if s.BeginScenario("power") {
		t.Error("second begin for same card should be rejected")
	}
	if !s.BeginScenario("revenge") {
		t.Error("other cards are independent")
	}
	s.EndScenario("power")
	if !s.BeginScenario("power") {
		t.Error("begin after end should succeed")
	}
}
