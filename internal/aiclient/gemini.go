package aiclient

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/video-notes/internal/logger"
)

type geminiClient struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
}

// NewGemini creates a Client backed by the Gemini API, rotating
// through the supplied API keys on quota errors.
func NewGemini(apiKeys []string, log logger.Logger) Client {
	return &geminiClient{
		apiKeys: apiKeys,
		logger:  log,
	}
}

func (c *geminiClient) Generate(ctx context.Context, messages []Message, model string) (string, error) {
	system, user := splitMessages(messages)

	var cfg *genai.GenerateContentConfig
	if system != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: system}},
			},
		}
	}

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key := c.apiKeys[c.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, model, genai.Text(user), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", c.currentKey+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if strings.TrimSpace(text) != "" {
				return text, nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all Gemini API keys exhausted: %w", lastErr)
}

func (c *geminiClient) rotateKey() {
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}

// splitMessages separates the system instruction from the user prompt.
// Multiple user messages are joined in order with blank lines.
func splitMessages(messages []Message) (system, user string) {
	var userParts []string
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = m.Content
		default:
			userParts = append(userParts, m.Content)
		}
	}
	return system, strings.Join(userParts, "\n\n")
}
