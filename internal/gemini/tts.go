package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ttsSampleRate is what the Gemini TTS models emit: raw mono 16-bit PCM.
const ttsSampleRate = 24000

// synthesize narrates text with the given prebuilt voice and returns a
// base64-encoded WAV. The SDK has no audio response modality, so this goes
// through the REST surface directly.
func (s *Service) synthesize(ctx context.Context, text, voice string) (string, error) {
	if s.apiKey == "" {
		return "", errNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body := map[string]any{
		"contents": []any{
			map[string]any{"parts": []any{map[string]any{"text": text}}},
		},
		"generationConfig": map[string]any{
			"responseModalities": []string{"AUDIO"},
			"speechConfig": map[string]any{
				"voiceConfig": map[string]any{
					"prebuiltVoiceConfig": map[string]any{"voiceName": voice},
				},
			},
		},
	}
	payload, _ := json.Marshal(body)
	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		s.ttsModel, s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("tts %d: %s", resp.StatusCode, string(x))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					InlineData struct {
						Data string `json:"data"`
					} `json:"inlineData"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding tts response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("tts: no audio data returned")
	}
	raw := out.Candidates[0].Content.Parts[0].InlineData.Data
	if raw == "" {
		return "", fmt.Errorf("tts: no audio data returned")
	}

	pcm, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("decoding pcm: %w", err)
	}
	return base64.StdEncoding.EncodeToString(wrapWAV(pcm, ttsSampleRate)), nil
}
