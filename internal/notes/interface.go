package notes

import "context"

// Result reports the files produced by one processing run.
type Result struct {
	SummaryFile    string
	TranscriptFile string
	DocxFile       string
	Degraded       bool
}

// Processor runs the full video-to-notes workflow: fetch metadata and
// transcript, summarize, and write the output files.
type Processor interface {
	Process(ctx context.Context, youtubeURL string) (*Result, error)
	ProcessTranscriptFile(ctx context.Context, path string) (*Result, error)
}
