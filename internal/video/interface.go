package video

import "context"

// Fetcher retrieves video metadata and transcripts from YouTube.
type Fetcher interface {
	Info(ctx context.Context, url string) (*VideoInfo, error)
	Transcript(ctx context.Context, info *VideoInfo) (string, error)
}
