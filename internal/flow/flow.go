// Package flow implements the assessment wizard: a finite-state machine
// that drives one consultation session from role selection through profile
// collection and question answering to a generated report. One Session per
// user; all state is in memory and discarded when the session ends.
package flow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hearttoheart/backend/internal/catalog"
	"github.com/hearttoheart/backend/internal/gemini"
	"github.com/hearttoheart/backend/internal/heart"
)

type State string

const (
	StateSelectRole     State = "select_role"
	StateSelectAgeGroup State = "select_age_group"
	StateProfileInput   State = "profile_input"
	StateDashboard      State = "dashboard"
	StateQuestions      State = "questions"
	StateReport         State = "report"
)

var (
	ErrInvalidState  = errors.New("action not available in current state")
	ErrIncomplete    = errors.New("required input is missing")
	ErrUnknownID     = errors.New("unknown id")
	ErrInvalidOption = errors.New("answer is not on the scale")
	ErrBusy          = errors.New("submission already in flight")
)

// ProfileHints are the optional profile fields carried by a deep link.
// Zero values mean unset.
type ProfileHints struct {
	ExactAge string
	Gender   heart.Gender
	Role     heart.Role
}

// Session is the wizard controller. All methods are safe for concurrent
// use; the generation token guards against a slow submission result being
// applied after the user has navigated away.
type Session struct {
	mu sync.Mutex

	lang       heart.Language
	cat        *catalog.Catalog
	state      State
	profile    heart.ChildProfile
	ageGroupID string
	assessment *heart.AssessmentDefinition
	answers    map[int]string
	report     *heart.Report

	submitting   bool
	scenarioBusy map[string]bool
	genToken     string
}

func NewSession(lang heart.Language) *Session {
	s := &Session{
		lang:         lang,
		cat:          catalog.Load(lang),
		scenarioBusy: make(map[string]bool),
	}
	s.resetLocked()
	return s
}

// resetLocked restores the initial wizard state. Caller holds the lock
// (or owns the session exclusively, as in NewSession).
func (s *Session) resetLocked() {
	s.state = StateSelectRole
	s.profile = heart.ChildProfile{
		Gender: heart.GenderUndisclosed,
		Role:   heart.RoleParent,
	}
	s.ageGroupID = ""
	s.assessment = nil
	s.answers = make(map[int]string)
	s.report = nil
	s.genToken = uuid.NewString()
}

func (s *Session) Language() heart.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

func (s *Session) Catalog() *catalog.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cat
}

func (s *Session) Profile() heart.ChildProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SelectRole starts the wizard.
func (s *Session) SelectRole(role heart.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSelectRole {
		return ErrInvalidState
	}
	s.profile.Role = role
	s.state = StateSelectAgeGroup
	return nil
}

// SelectAgeGroup picks a developmental band and stores its localized label
// on the profile.
func (s *Session) SelectAgeGroup(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSelectAgeGroup {
		return ErrInvalidState
	}
	g, ok := s.cat.AgeGroup(id)
	if !ok {
		return ErrUnknownID
	}
	s.ageGroupID = id
	s.profile.AgeGroup = g.Label
	s.state = StateProfileInput
	return nil
}

// UpdateProfile merges gender and exact age field by field. Nil means
// leave unchanged.
func (s *Session) UpdateProfile(gender *heart.Gender, exactAge *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateProfileInput {
		return ErrInvalidState
	}
	if gender != nil {
		s.profile.Gender = *gender
	}
	if exactAge != nil {
		s.profile.ExactAge = *exactAge
	}
	return nil
}

// SubmitProfile leaves profile input. The exact age is the completeness
// gate; where it lands depends on whether an assessment was pre-selected
// by a deep link.
func (s *Session) SubmitProfile() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateProfileInput {
		return ErrInvalidState
	}
	if s.profile.ExactAge == "" {
		return ErrIncomplete
	}
	if s.assessment != nil {
		s.state = StateQuestions
	} else {
		s.state = StateDashboard
	}
	return nil
}

// SelectAssessment starts a questionnaire from the dashboard. Only
// assessments bucketed under the selected age group are offered there.
func (s *Session) SelectAssessment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDashboard {
		return ErrInvalidState
	}
	for _, d := range s.cat.AssessmentsByAgeGroup[s.ageGroupID] {
		if d.ID == id {
			def := d
			s.assessment = &def
			s.answers = make(map[int]string)
			s.report = nil
			s.genToken = uuid.NewString()
			s.state = StateQuestions
			return nil
		}
	}
	return ErrUnknownID
}

// Answer records the option chosen for one question.
func (s *Session) Answer(index int, option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateQuestions || s.assessment == nil {
		return ErrInvalidState
	}
	if index < 0 || index >= len(s.assessment.Questions) {
		return fmt.Errorf("%w: question index %d", ErrUnknownID, index)
	}
	for _, opt := range s.cat.ScaleOptions() {
		if opt == option {
			s.answers[index] = option
			return nil
		}
	}
	return ErrInvalidOption
}

// Submit runs the joint report+tip generation and, on success, moves the
// wizard to the report state. The report call is the sole gate: tip
// failure is absorbed by the client's fallback contract. A result is
// applied only if the generation token still matches, so a response
// arriving after a back/reset is dropped.
func (s *Session) Submit(ctx context.Context, client gemini.Client) (heart.Report, error) {
	s.mu.Lock()
	if s.state != StateQuestions || s.assessment == nil {
		s.mu.Unlock()
		return heart.Report{}, ErrInvalidState
	}
	if len(s.answers) != len(s.assessment.Questions) {
		s.mu.Unlock()
		return heart.Report{}, ErrIncomplete
	}
	if s.submitting {
		s.mu.Unlock()
		return heart.Report{}, ErrBusy
	}
	s.submitting = true
	token := s.genToken
	lang := s.lang
	profile := s.profile
	def := *s.assessment
	unsure := s.cat.UnsureLabel()

	answers := make([]heart.QA, len(def.Questions))
	for i, q := range def.Questions {
		a, ok := s.answers[i]
		if !ok {
			a = unsure
		}
		answers[i] = heart.QA{Question: q, Answer: a}
	}
	s.mu.Unlock()

	var reportText, tipText string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reportText, err = client.Report(gctx, gemini.ReportRequest{
			Profile:         profile,
			AssessmentTitle: def.Title,
			Answers:         answers,
			Language:        lang,
		})
		return err
	})
	g.Go(func() error {
		tipText = client.Tip(gctx, gemini.TipRequest{
			Context: fmt.Sprintf("Child age %s, Issue: %s, Role: %s",
				profile.ExactAge, def.Title, profile.Role),
			Language: lang,
		})
		return nil
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		// Stay in questions with answers intact; the user retries.
		return heart.Report{}, err
	}
	if s.genToken != token {
		// The flow moved on while the request was in flight.
		return heart.Report{}, ErrInvalidState
	}
	rep := heart.Report{
		Text:            reportText,
		AssessmentTitle: def.Title,
		Profile:         profile,
		Tip:             tipText,
	}
	s.report = &rep
	s.state = StateReport
	return rep, nil
}

// Back moves to the immediately preceding step without clearing anything
// collected further back. From the report it returns to the dashboard.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateSelectAgeGroup:
		s.state = StateSelectRole
	case StateProfileInput:
		s.state = StateSelectAgeGroup
	case StateDashboard:
		s.state = StateProfileInput
	case StateQuestions:
		s.state = StateDashboard
		s.assessment = nil
		s.answers = make(map[int]string)
		s.genToken = uuid.NewString()
	case StateReport:
		s.state = StateDashboard
		s.assessment = nil
		s.answers = make(map[int]string)
		s.report = nil
		s.genToken = uuid.NewString()
	default:
		return ErrInvalidState
	}
	return nil
}

// Reset returns to the dashboard keeping the profile, or with full=true
// discards everything and restarts at role selection.
func (s *Session) Reset(full bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if full {
		s.resetLocked()
		return
	}
	s.assessment = nil
	s.answers = make(map[int]string)
	s.report = nil
	s.genToken = uuid.NewString()
	if s.ageGroupID != "" && s.profile.ExactAge != "" {
		s.state = StateDashboard
	} else if s.ageGroupID != "" {
		s.state = StateProfileInput
	} else {
		s.state = StateSelectRole
	}
}

// Preseed is the deep-link entry: resolve the assessment id against every
// age-group bucket, merge profile hints, and jump past the manual steps.
// An unknown id is a silent no-op. Returns whether the flow moved.
func (s *Session) Preseed(assessmentID string, hints ProfileHints) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, groupID, ok := s.cat.FindAssessment(assessmentID)
	if !ok {
		return false
	}
	g, _ := s.cat.AgeGroup(groupID)

	s.ageGroupID = groupID
	s.profile.AgeGroup = g.Label
	if hints.ExactAge != "" {
		s.profile.ExactAge = hints.ExactAge
	}
	if hints.Gender != "" {
		s.profile.Gender = hints.Gender
	}
	if hints.Role != "" {
		s.profile.Role = hints.Role
	}

	s.assessment = &def
	s.answers = make(map[int]string)
	s.report = nil
	s.genToken = uuid.NewString()

	if s.profile.ExactAge != "" {
		s.state = StateQuestions
	} else {
		s.state = StateProfileInput
	}
	return true
}

// SetLanguage re-derives the catalog. Anything referencing the old
// catalog's labels is stale: a selected assessment and its answers are
// dropped and the flow falls back to the latest state that is still safe.
func (s *Session) SetLanguage(lang heart.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lang == s.lang {
		return
	}
	s.lang = lang
	s.cat = catalog.Load(lang)

	if s.ageGroupID != "" {
		if g, ok := s.cat.AgeGroup(s.ageGroupID); ok {
			s.profile.AgeGroup = g.Label
		}
	}
	if s.assessment != nil || s.report != nil {
		s.assessment = nil
		s.answers = make(map[int]string)
		s.report = nil
		s.genToken = uuid.NewString()
		if s.profile.ExactAge != "" && s.ageGroupID != "" {
			s.state = StateDashboard
		} else if s.ageGroupID != "" {
			s.state = StateProfileInput
		}
	}
}

// BeginScenario marks a scenario generation in flight for one solution
// card. Returns false if one is already running for that card.
func (s *Session) BeginScenario(solutionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scenarioBusy[solutionID] {
		return false
	}
	s.scenarioBusy[solutionID] = true
	return true
}

func (s *Session) EndScenario(solutionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scenarioBusy, solutionID)
}

// Snapshot is the read model served to the UI.
type Snapshot struct {
	State         State                       `json:"state"`
	Language      heart.Language              `json:"language"`
	Profile       heart.ChildProfile          `json:"profile"`
	AgeGroupID    string                      `json:"ageGroupId,omitempty"`
	Assessment    *heart.AssessmentDefinition `json:"assessment,omitempty"`
	Answers       map[int]string              `json:"answers,omitempty"`
	QuestionCount int                         `json:"questionCount"`
	Submitting    bool                        `json:"submitting"`
	Report        *heart.Report               `json:"report,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:      s.state,
		Language:   s.lang,
		Profile:    s.profile,
		AgeGroupID: s.ageGroupID,
		Submitting: s.submitting,
	}
	if s.assessment != nil {
		def := *s.assessment
		snap.Assessment = &def
		snap.QuestionCount = len(def.Questions)
		snap.Answers = make(map[int]string, len(s.answers))
		for k, v := range s.answers {
			snap.Answers[k] = v
		}
	}
	if s.report != nil {
		rep := *s.report
		snap.Report = &rep
	}
	return snap
}
