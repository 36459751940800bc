package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mil-can/milcan-api/internal/config"
)

const assistantSystemPrompt = `You are a helpful AI assistant for MIL-CAN, a Media & Information Literacy platform.
You help educators, content creators, and ambassadors with:
- Content creation strategies for media literacy education
- Fact-checking techniques and verification methods
- Digital literacy best practices
- Educational resource recommendations
- Community engagement tips

Keep responses concise, helpful, and focused on media literacy education.`

const (
	assistantFallbackMessage = "I'm experiencing some technical difficulties. Please try again later or contact support if the issue persists."
	assistantRephraseMessage = "I'm here to help with media literacy questions. Could you please rephrase your question?"
)

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// AssistantService proxies chat prompts to the external text-generation API.
// It is deliberately fail-soft: any upstream problem degrades to a fixed
// user-safe message instead of an error, so the feature is never a hard
// dependency.
type AssistantService struct {
	conf   *config.AssistantConfig
	client *http.Client
}

func NewAssistantService(conf *config.AssistantConfig) *AssistantService {
	return &AssistantService{
		conf: conf,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Chat forwards the user's message, prefixed with the platform prompt, and
// returns the generated text. It never returns an error.
func (s *AssistantService) Chat(ctx context.Context, message string) string {
	prompt := fmt.Sprintf("%s\n\nUser question: %s", assistantSystemPrompt, message)

	reply, err := s.generate(ctx, prompt)
	if err != nil {
		zap.L().Warn("assistant upstream call failed", zap.Error(err))
		return assistantFallbackMessage
	}

	return reply
}

func (s *AssistantService) generate(ctx context.Context, prompt string) (string, error) {
	if s.conf.APIKey == "" {
		return "", fmt.Errorf("assistant API key not configured")
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("json.Marshal -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.conf.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", s.conf.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("s.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream returned status %v", resp.StatusCode)
	}

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("json.Decode -> %w", err)
	}

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 ||
		body.Candidates[0].Content.Parts[0].Text == "" {
		return assistantRephraseMessage, nil
	}

	return body.Candidates[0].Content.Parts[0].Text, nil
}
