package summary

import (
	"context"
	"fmt"
	"strings"
)

// CombinedSummary is the result of merging chunk summaries into one
// cohesive summary.
type CombinedSummary struct {
	Summary         string
	Success         bool
	ErrorMessage    string
	ChunksProcessed int
	WordCount       int
}

// CombineChunks merges the given chunk summaries into a single
// cohesive summary with one AI call. All-whitespace entries are
// filtered out before combining; order is preserved.
func (s *implSummarizer) CombineChunks(ctx context.Context, summaries []string) CombinedSummary {
	if len(summaries) == 0 {
		return CombinedSummary{
			ErrorMessage: "No chunk summaries provided to combine",
		}
	}

	valid := make([]string, 0, len(summaries))
	for _, sum := range summaries {
		if strings.TrimSpace(sum) != "" {
			valid = append(valid, sum)
		}
	}
	if len(valid) == 0 {
		return CombinedSummary{
			ErrorMessage: "No valid chunk summaries were provided to combine",
		}
	}

	messages := combineMessages(valid)

	text, err := s.client.Generate(ctx, messages, s.model)
	if err != nil {
		return CombinedSummary{
			ErrorMessage:    fmt.Sprintf("Combination failed: %v", err),
			ChunksProcessed: len(valid),
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return CombinedSummary{
			ErrorMessage:    "AI client returned no response or empty response",
			ChunksProcessed: len(valid),
		}
	}

	return CombinedSummary{
		Summary:         text,
		Success:         true,
		ChunksProcessed: len(valid),
		WordCount:       len(strings.Fields(text)),
	}
}
