package video

import (
	"github.com/nguyentantai21042004/video-notes/internal/logger"
	"github.com/nguyentantai21042004/video-notes/pkg/executor"
)

type implFetcher struct {
	executor executor.Executor
	tempDir  string
	logger   logger.Logger
}

// New creates a Fetcher that shells out to yt-dlp for metadata and
// subtitle retrieval. tempDir holds downloaded subtitle files until
// they are converted to plain text.
func New(exec executor.Executor, tempDir string, log logger.Logger) Fetcher {
	return &implFetcher{
		executor: exec,
		tempDir:  tempDir,
		logger:   log,
	}
}
