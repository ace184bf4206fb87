package summary

import (
	"context"
	"fmt"
	"strings"
)

// ChunkSummary is the result of summarizing one chunk. Failures are
// reported in the value, never as a panic or propagated error.
type ChunkSummary struct {
	Summary      string
	ChunkIndex   int
	Success      bool
	ErrorMessage string
	WordCount    int
}

// SummarizeChunk generates a summary for one chunk of transcript text.
// Exactly one AI call is made per invocation, with no retries. Any
// failure from the AI client is reported in the returned value.
func (s *implSummarizer) SummarizeChunk(ctx context.Context, content string, chunkIndex int) ChunkSummary {
	if strings.TrimSpace(content) == "" {
		return ChunkSummary{
			ChunkIndex:   chunkIndex,
			ErrorMessage: "Empty chunk content provided",
		}
	}

	messages := chunkMessages(content, chunkIndex+1)

	text, err := s.client.Generate(ctx, messages, s.model)
	if err != nil {
		return ChunkSummary{
			ChunkIndex:   chunkIndex,
			ErrorMessage: fmt.Sprintf("Summarization failed: %v", err),
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ChunkSummary{
			ChunkIndex:   chunkIndex,
			ErrorMessage: "AI client returned no response or empty response",
		}
	}

	return ChunkSummary{
		Summary:    text,
		ChunkIndex: chunkIndex,
		Success:    true,
		WordCount:  len(strings.Fields(text)),
	}
}
