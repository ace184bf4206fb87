package summary

import (
	"context"
	"fmt"
	"strings"
)

// Summarize runs the full summarization pipeline on a transcript.
// Short transcripts are summarized in a single pass; longer ones are
// chunked, summarized per chunk in index order, and recombined.
// Chunks are processed sequentially, one AI call at a time.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (Result, error) {
	params := ComputeChunkParameters(transcript)

	s.logger.Info(ctx, "Transcript length: %d chars, category: %s, hierarchical: %v",
		len(transcript), params.Category, params.ShouldUseHierarchical)

	if !params.ShouldUseHierarchical {
		return s.summarizeDirect(ctx, transcript, params)
	}
	return s.summarizeHierarchical(ctx, transcript, params)
}

// summarizeDirect summarizes the whole transcript with one AI call.
func (s *implSummarizer) summarizeDirect(ctx context.Context, transcript string, params ChunkParameters) (Result, error) {
	chunkSummary := s.SummarizeChunk(ctx, transcript, 0)
	if !chunkSummary.Success {
		return Result{}, fmt.Errorf("direct summarization failed: %s", chunkSummary.ErrorMessage)
	}

	s.logger.Info(ctx, "Direct summary created (%d words)", chunkSummary.WordCount)

	return Result{
		Summary:          chunkSummary.Summary,
		Category:         params.Category,
		ChunksTotal:      1,
		ChunksSummarized: 1,
	}, nil
}

// summarizeHierarchical chunks the transcript, summarizes each chunk,
// and combines the chunk summaries. If the combiner fails but at least
// one chunk summary exists, the summaries are concatenated instead and
// the result is marked degraded.
func (s *implSummarizer) summarizeHierarchical(ctx context.Context, transcript string, params ChunkParameters) (Result, error) {
	chunker, err := NewChunker(params.ChunkSize, params.ChunkOverlap)
	if err != nil {
		return Result{}, fmt.Errorf("create chunker: %w", err)
	}

	chunks := chunker.Chunk(transcript)
	if len(chunks) == 0 {
		return Result{}, fmt.Errorf("transcript produced no chunks")
	}

	s.logger.Info(ctx, "Created %d chunks (size %d, overlap %d)",
		len(chunks), params.ChunkSize, params.ChunkOverlap)

	var chunkSummaries []string
	for _, chunk := range chunks {
		result := s.SummarizeChunk(ctx, chunk.Content, chunk.ChunkIndex)
		if result.Success {
			chunkSummaries = append(chunkSummaries, result.Summary)
			s.logger.Info(ctx, "Summarized chunk %d/%d (%d words)",
				chunk.ChunkIndex+1, len(chunks), result.WordCount)
		} else {
			s.logger.Warn(ctx, "Failed to summarize chunk %d/%d: %s",
				chunk.ChunkIndex+1, len(chunks), result.ErrorMessage)
		}
	}

	if len(chunkSummaries) == 0 {
		return Result{}, fmt.Errorf("all %d chunk summarizations failed", len(chunks))
	}

	s.logger.Info(ctx, "Combining %d chunk summaries...", len(chunkSummaries))

	combined := s.CombineChunks(ctx, chunkSummaries)
	if combined.Success {
		return Result{
			Summary:          combined.Summary,
			Category:         params.Category,
			Hierarchical:     true,
			ChunksTotal:      len(chunks),
			ChunksSummarized: len(chunkSummaries),
		}, nil
	}

	// Combiner failed but chunk summaries exist: join them instead of
	// failing the whole pipeline. Callers see Degraded and can tell
	// this output apart from an AI-combined one.
	s.logger.Warn(ctx, "Failed to combine summaries: %s", combined.ErrorMessage)
	s.logger.Warn(ctx, "Falling back to joining chunk summaries")

	return Result{
		Summary:          strings.Join(chunkSummaries, "\n\n"),
		Category:         params.Category,
		Hierarchical:     true,
		ChunksTotal:      len(chunks),
		ChunksSummarized: len(chunkSummaries),
		Degraded:         true,
	}, nil
}
