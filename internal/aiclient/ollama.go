package aiclient

import (
	"context"
	"fmt"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type ollamaClient struct {
	client      *openai.Client
	temperature float32
}

// NewOllama creates a Client backed by a local Ollama server through
// its OpenAI-compatible chat endpoint.
func NewOllama(host string, temperature float32) Client {
	cfg := openai.DefaultConfig("ollama")
	cfg.BaseURL = strings.TrimRight(host, "/") + "/v1"

	return &ollamaClient{
		client:      openai.NewClientWithConfig(cfg),
		temperature: temperature,
	}
}

func (c *ollamaClient) Generate(ctx context.Context, messages []Message, model string) (string, error) {
	// The request field is marshaled with omitempty, so an exact zero
	// would be dropped and the server default would apply. Substitute
	// the smallest positive value to keep output deterministic.
	temperature := c.temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		Messages:    toChatMessages(messages),
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("ollama chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("ollama returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("ollama returned empty content")
	}

	return content, nil
}

func toChatMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return out
}
