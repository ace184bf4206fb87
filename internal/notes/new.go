package notes

import (
	"github.com/nguyentantai21042004/video-notes/internal/config"
	"github.com/nguyentantai21042004/video-notes/internal/logger"
	"github.com/nguyentantai21042004/video-notes/internal/summary"
	"github.com/nguyentantai21042004/video-notes/internal/video"
)

type implProcessor struct {
	cfg        *config.Config
	fetcher    video.Fetcher
	summarizer summary.Summarizer
	logger     logger.Logger
}

// New creates a Processor wiring the fetcher and summarizer together.
func New(cfg *config.Config, fetcher video.Fetcher, summarizer summary.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		fetcher:    fetcher,
		summarizer: summarizer,
		logger:     log,
	}
}
