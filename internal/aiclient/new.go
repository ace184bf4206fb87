package aiclient

import (
	"fmt"

	"github.com/nguyentantai21042004/video-notes/internal/config"
	"github.com/nguyentantai21042004/video-notes/internal/logger"
)

// New creates the Client for the configured AI provider.
func New(cfg *config.Config, log logger.Logger) (Client, error) {
	switch cfg.AI.Provider {
	case config.ProviderOllama:
		return NewOllama(cfg.AI.Ollama.Host, cfg.AI.Temperature), nil
	case config.ProviderGemini:
		if len(cfg.AI.Gemini.APIKeys) == 0 {
			return nil, fmt.Errorf("no Gemini API keys configured")
		}
		return NewGemini(cfg.AI.Gemini.APIKeys, log), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", cfg.AI.Provider)
	}
}
