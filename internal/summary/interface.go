package summary

import "context"

// Result is the terminal output of one summarization pipeline run.
// Degraded is set when the combiner failed and the chunk summaries
// were concatenated instead of AI-combined.
type Result struct {
	Summary          string
	Category         LengthCategory
	Hierarchical     bool
	ChunksTotal      int
	ChunksSummarized int
	Degraded         bool
}

// Summarizer turns a raw transcript into a markdown summary, choosing
// between direct and hierarchical strategies based on length.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (Result, error)
	SummarizeChunk(ctx context.Context, content string, chunkIndex int) ChunkSummary
	CombineChunks(ctx context.Context, summaries []string) CombinedSummary
}
