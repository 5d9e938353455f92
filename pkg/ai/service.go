package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned when copy generation is requested without an
// API key.
var ErrNotConfigured = errors.New("AI copy generation is not configured")

const copySystemPrompt = `You are a marketing copywriter for real-estate agents.
Write short, punchy campaign copy. No hashtags unless asked. Plain text only.`

// Service generates campaign copy through an LLM provider.
type Service struct {
	client *openai.Client
}

// NewService creates a copy-generation service. An empty API key yields a
// disabled service; Configured reports it.
func NewService(apiKey string) *Service {
	if apiKey == "" {
		return &Service{}
	}
	return &Service{client: openai.NewClient(apiKey)}
}

// Configured reports whether the service can make API calls.
func (s *Service) Configured() bool {
	return s.client != nil
}

// GenerateCampaignCopy produces copy for a campaign from its name and
// objective. Single-shot prompt/response; the caller persists the result.
func (s *Service) GenerateCampaignCopy(ctx context.Context, name, objective string) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf("Campaign: %s", name)
	if objective != "" {
		prompt += fmt.Sprintf("\nObjective: %s", objective)
	}
	prompt += "\n\nWrite the campaign copy (2-3 short paragraphs)."

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: copySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   500,
		Temperature: 0.8,
	})
	if err != nil {
		return "", fmt.Errorf("copy generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("copy generation returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
