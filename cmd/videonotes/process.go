package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/video-notes/internal/aiclient"
	"github.com/nguyentantai21042004/video-notes/internal/config"
	"github.com/nguyentantai21042004/video-notes/internal/logger"
	"github.com/nguyentantai21042004/video-notes/internal/notes"
	"github.com/nguyentantai21042004/video-notes/internal/summary"
	"github.com/nguyentantai21042004/video-notes/internal/video"
	"github.com/nguyentantai21042004/video-notes/pkg/executor"
)

func newProcessCmd() *cobra.Command {
	var (
		configPath     string
		model          string
		provider       string
		outputFolder   string
		saveTranscript bool
		docx           bool
	)

	cmd := &cobra.Command{
		Use:   "process <youtube-url>",
		Short: "Download a video transcript and generate a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			if !video.ValidateURL(url) {
				return fmt.Errorf("not a valid YouTube video URL: %s", url)
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if provider != "" {
				cfg.AI.Provider = provider
			}
			if model != "" {
				cfg.AI.Model = model
			}
			if outputFolder != "" {
				cfg.Paths.Output = outputFolder
			}
			if saveTranscript {
				cfg.Output.SaveTranscript = true
			}
			if docx {
				cfg.Output.Docx = true
			}
			// Validation runs only now, so the model default follows
			// the provider chosen by flags, not the file's provider.
			if err := cfg.Validate(); err != nil {
				return err
			}

			if !executor.Available("yt-dlp") {
				return fmt.Errorf("yt-dlp not found on PATH; install it to download transcripts")
			}

			ctx := context.Background()
			log := logger.New(cfg.Logging.Level)

			proc, err := buildProcessor(cfg, log)
			if err != nil {
				return err
			}

			log.Info(ctx, "URL: %s", url)
			log.Info(ctx, "AI provider: %s, model: %s", cfg.AI.Provider, cfg.AI.Model)
			log.Info(ctx, "Output folder: %s", cfg.Paths.Output)

			result, err := proc.Process(ctx, url)
			if err != nil {
				return err
			}

			log.Info(ctx, "Processing complete!")
			log.Info(ctx, "Summary written to: %s", result.SummaryFile)
			if result.TranscriptFile != "" {
				log.Info(ctx, "Transcript written to: %s", result.TranscriptFile)
			}
			if result.Degraded {
				log.Warn(ctx, "Combiner was unavailable; summary sections were joined without merging")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (optional)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to use for summarization")
	cmd.Flags().StringVarP(&provider, "provider", "p", "", "AI provider (ollama or gemini)")
	cmd.Flags().StringVarP(&outputFolder, "output-folder", "o", "", "Directory where output files are saved")
	cmd.Flags().BoolVar(&saveTranscript, "save-transcript", false, "Save the transcript file in addition to the summary")
	cmd.Flags().BoolVar(&docx, "docx", false, "Also render the summary as a docx file")

	return cmd
}

// loadConfig parses the config file when given, otherwise starts from
// an empty config. No defaults are applied here; the caller validates
// after its flag overrides so defaults derive from the final values.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	return config.Read(path)
}

// buildProcessor wires the fetcher, AI client and summarizer into a
// notes processor.
func buildProcessor(cfg *config.Config, log logger.Logger) (notes.Processor, error) {
	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	client, err := aiclient.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create AI client: %w", err)
	}

	fetcher := video.New(executor.New(), cfg.Paths.Temp, log)
	summarizer := summary.New(client, cfg.AI.Model, log)

	return notes.New(cfg, fetcher, summarizer, log), nil
}
