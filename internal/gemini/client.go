// Package gemini is the generation client for reports, tips, scenario
// scripts, bedtime stories, and chat replies. Every call except Report and
// story text degrades to a deterministic per-language fallback instead of
// returning an error, so a backend outage lowers content quality without
// blocking state transitions.
package gemini

import (
	"context"

	"github.com/hearttoheart/backend/internal/heart"
)

// Client is the generation boundary consumed by the flow engine and the
// HTTP handlers.
type Client interface {
	// Report produces the structured assessment analysis. It is the only
	// erroring text call: a failed report keeps the wizard in its
	// question-answering state so the user can resubmit.
	Report(ctx context.Context, req ReportRequest) (string, error)

	// Tip produces a short contextual tip. Never fails; on any error it
	// returns the canned per-language fallback.
	Tip(ctx context.Context, req TipRequest) string

	// Scenario produces a positive-discipline role-play script. Same
	// fallback discipline as Tip.
	Scenario(ctx context.Context, req ScenarioRequest) string

	// Story produces a bedtime story with best-effort narration. Text
	// generation failure is an error; narration failure returns the text
	// with empty audio.
	Story(ctx context.Context, req StoryRequest) (StoryResult, error)

	// Chat produces a consultant reply to a free-text message. Same
	// fallback discipline as Tip.
	Chat(ctx context.Context, req ChatRequest) string
}

type ReportRequest struct {
	Profile         heart.ChildProfile
	AssessmentTitle string
	Answers         []heart.QA
	Language        heart.Language
}

type TipRequest struct {
	Context  string
	Premium  bool
	Language heart.Language
}

type ScenarioRequest struct {
	Profile       heart.ChildProfile
	SolutionTitle string
	Language      heart.Language
	Retry         bool
}

type StoryRequest struct {
	ChildName      string
	Age            string
	SkillToLearn   string
	IssueToCorrect string
	Voice          string
	Language       heart.Language
}

type StoryResult struct {
	Text        string `json:"text"`
	AudioBase64 string `json:"audioBase64"`
	MimeType    string `json:"mimeType"`
}

type ChatRequest struct {
	Message string
	// AssessmentIndex is the "ID (Title, AgeGroup)" listing of the active
	// catalog, embedded in the system instruction so the model can emit
	// assessment deep links.
	AssessmentIndex string
	Language        heart.Language
}

// Canned fallbacks, one per language per path.

func tipFallback(lang heart.Language) string {
	if lang == heart.LangEN {
		return "Encouragement is sunlight to the soul."
	}
	return "鼓励是孩子心灵的阳光。"
}

func tipNoKeyFallback(lang heart.Language) string {
	if lang == heart.LangEN {
		return "Every child is a flower waiting to bloom."
	}
	return "每个孩子都是静待花开的种子。"
}

func chatFallback(lang heart.Language) string {
	if lang == heart.LangEN {
		return "Connection error, please try again."
	}
	return "连接服务器失败，请稍后再试。"
}

func scenarioFallback(lang heart.Language) string {
	if lang == heart.LangEN {
		return "Example generation unavailable."
	}
	return "暂时无法生成示例，请稍后再试。"
}

func storyOpening(lang heart.Language) string {
	if lang == heart.LangEN {
		return "Once upon a time..."
	}
	return "很久很久以前..."
}
