package notes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-notes/internal/video"
)

// Process runs the complete workflow for one YouTube URL.
func (p *implProcessor) Process(ctx context.Context, youtubeURL string) (*Result, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "Step 1: Fetching video metadata: %s", youtubeURL)
	info, err := p.fetcher.Info(ctx, youtubeURL)
	if err != nil {
		return nil, fmt.Errorf("fetch video info: %w", err)
	}

	p.logger.Info(ctx, "Step 2: Downloading transcript...")
	transcript, err := p.fetcher.Transcript(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript: %w", err)
	}
	p.logger.Info(ctx, "Downloaded transcript (%d characters)", len(transcript))

	p.logger.Info(ctx, "Step 3: Summarizing...")
	summaryResult, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	names := GenerateFilenames(info, false)
	result, err := p.writeOutputs(ctx, names, summaryResult.Summary, transcript, info, summaryResult.Degraded)
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "Processing completed in %s", time.Since(startTime).Round(time.Second))
	return result, nil
}

// ProcessTranscriptFile summarizes an already-downloaded transcript
// file (.txt, .srt or .vtt). Used by watch mode.
func (p *implProcessor) ProcessTranscriptFile(ctx context.Context, path string) (*Result, error) {
	p.logger.Info(ctx, "Processing transcript file: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript file: %w", err)
	}

	transcript := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt", ".vtt":
		transcript = video.SubtitleToText(transcript)
	}

	if strings.TrimSpace(transcript) == "" {
		return nil, fmt.Errorf("transcript file %s is empty", path)
	}

	summaryResult, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := &video.VideoInfo{Title: base}
	safe := sanitizeBase(base)
	names := Filenames{
		Base:       safe,
		Summary:    safe + ".md",
		Transcript: safe + "-transcript.txt",
	}

	return p.writeOutputs(ctx, names, summaryResult.Summary, transcript, info, summaryResult.Degraded)
}

// writeOutputs assembles the final markdown and writes the configured
// output files.
func (p *implProcessor) writeOutputs(ctx context.Context, names Filenames, summaryContent, transcript string, info *video.VideoInfo, degraded bool) (*Result, error) {
	markdown := FinalMarkdown(summaryContent, info, degraded)

	result := &Result{Degraded: degraded}

	summaryPath := filepath.Join(p.cfg.Paths.Output, names.Summary)
	if err := writeTextFile(summaryPath, markdown); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}
	result.SummaryFile = summaryPath
	p.logger.Info(ctx, "Summary written to: %s", summaryPath)

	if p.cfg.Output.SaveTranscript {
		transcriptPath := filepath.Join(p.cfg.Paths.Output, names.Transcript)
		if err := writeTextFile(transcriptPath, transcript); err != nil {
			return nil, fmt.Errorf("write transcript: %w", err)
		}
		result.TranscriptFile = transcriptPath
		p.logger.Info(ctx, "Transcript written to: %s", transcriptPath)
	}

	if p.cfg.Output.Docx {
		docxPath := filepath.Join(p.cfg.Paths.Output, names.Base+".docx")
		title := info.Title
		if title == "" {
			title = names.Base
		}
		if err := WriteDocx(title, summaryContent, docxPath); err != nil {
			// Markdown output already exists; docx is supplementary.
			p.logger.Warn(ctx, "Failed to write docx: %v", err)
		} else {
			result.DocxFile = docxPath
			p.logger.Info(ctx, "Docx written to: %s", docxPath)
		}
	}

	return result, nil
}
