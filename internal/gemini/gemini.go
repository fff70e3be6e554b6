package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hearttoheart/backend/internal/heart"
)

// Service talks to the Gemini API. Text generation goes through the official
// SDK; narration goes through the REST surface (see tts.go) because the SDK
// has no audio response modality.
type Service struct {
	apiKey   string
	model    string
	ttsModel string
	timeout  time.Duration
	logger   *slog.Logger
}

func NewService(apiKey, model, ttsModel string, timeout time.Duration, logger *slog.Logger) *Service {
	return &Service{
		apiKey:   strings.TrimSpace(apiKey),
		model:    strings.TrimSpace(model),
		ttsModel: strings.TrimSpace(ttsModel),
		timeout:  timeout,
		logger:   logger,
	}
}

var errNoAPIKey = errors.New("gemini api key is empty")

// generate runs one text generation with a bounded retry on transient
// failures. A timeout is treated exactly like a request failure.
func (s *Service) generate(ctx context.Context, prompt, system string, temperature float32) (string, error) {
	if s.apiKey == "" {
		return "", errNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cl, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("creating gemini client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(s.model)
	m.GenerationConfig = genai.GenerationConfig{Temperature: &temperature}
	if system != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := m.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
			continue
		}
		if txt := firstText(resp); txt != "" {
			return strings.TrimSpace(txt), nil
		}
		return "", errors.New("gemini: empty response")
	}
	return "", lastErr
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func (s *Service) Report(ctx context.Context, req ReportRequest) (string, error) {
	text, err := s.generate(ctx, reportPrompt(req), "", 0.7)
	if err != nil {
		return "", fmt.Errorf("generating report: %w", err)
	}
	return text, nil
}

func (s *Service) Tip(ctx context.Context, req TipRequest) string {
	if s.apiKey == "" {
		return tipNoKeyFallback(req.Language)
	}
	text, err := s.generate(ctx, tipPrompt(req), "", 0.7)
	if err != nil {
		s.logger.Warn("tip generation failed", "error", err)
		return tipFallback(req.Language)
	}
	return text
}

func (s *Service) Scenario(ctx context.Context, req ScenarioRequest) string {
	temperature := float32(0.7)
	if req.Retry {
		temperature = 0.9
	}
	text, err := s.generate(ctx, scenarioPrompt(req), "", temperature)
	if err != nil {
		s.logger.Warn("scenario generation failed", "error", err)
		return scenarioFallback(req.Language)
	}
	return text
}

func (s *Service) Chat(ctx context.Context, req ChatRequest) string {
	if s.apiKey == "" {
		if req.Language == heart.LangEN {
			return "Please configure your API Key."
		}
		return "请配置 API Key 以使用 AI 咨询功能。"
	}
	text, err := s.generate(ctx, req.Message, systemInstruction(req.Language, req.AssessmentIndex), 0.7)
	if err != nil {
		s.logger.Warn("chat generation failed", "error", err)
		return chatFallback(req.Language)
	}
	return text
}

func (s *Service) Story(ctx context.Context, req StoryRequest) (StoryResult, error) {
	text, err := s.generate(ctx, storyPrompt(req), "", 0.7)
	if err != nil {
		return StoryResult{}, fmt.Errorf("generating story text: %w", err)
	}
	if text == "" {
		text = storyOpening(req.Language)
	}

	// Narration is best-effort: a TTS failure still returns the text.
	audio, err := s.synthesize(ctx, text, voiceName(req.Voice))
	if err != nil {
		s.logger.Warn("story narration failed", "error", err)
		return StoryResult{Text: text}, nil
	}
	return StoryResult{Text: text, AudioBase64: audio, MimeType: "audio/wav"}, nil
}

var _ Client = (*Service)(nil)
