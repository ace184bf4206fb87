package summary

import (
	"github.com/nguyentantai21042004/video-notes/internal/aiclient"
	"github.com/nguyentantai21042004/video-notes/internal/logger"
)

type implSummarizer struct {
	client aiclient.Client
	model  string
	logger logger.Logger
}

// New creates a Summarizer using the given AI client and model name.
func New(client aiclient.Client, model string, log logger.Logger) Summarizer {
	return &implSummarizer{
		client: client,
		model:  model,
		logger: log,
	}
}
