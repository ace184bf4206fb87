package video

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ytdlpInfo is the subset of yt-dlp's JSON dump we care about.
type ytdlpInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Uploader    string `json:"uploader"`
	Channel     string `json:"channel"`
	ViewCount   int64  `json:"view_count"`
	Duration    int    `json:"duration"`
	UploadDate  string `json:"upload_date"`
}

// Info extracts video metadata with yt-dlp. Missing metadata fields
// are tolerated; only a missing video ID is an error since the
// transcript download depends on it.
func (f *implFetcher) Info(ctx context.Context, url string) (*VideoInfo, error) {
	videoID := ExtractVideoID(url)
	if videoID == "" {
		return nil, fmt.Errorf("no video ID found in URL: %s", url)
	}

	info := &VideoInfo{URL: url, VideoID: videoID}

	out, err := f.executor.Execute(ctx, "yt-dlp",
		"--dump-json",
		"--skip-download",
		"--no-warnings",
		url,
	)
	if err != nil {
		// Metadata is best-effort: the summary still works without it.
		f.logger.Warn(ctx, "Could not extract full video metadata: %v", err)
		return info, nil
	}

	var raw ytdlpInfo
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		f.logger.Warn(ctx, "Could not parse video metadata: %v", err)
		return info, nil
	}

	info.Title = raw.Title
	info.Description = raw.Description
	info.Author = raw.Uploader
	if info.Author == "" {
		info.Author = raw.Channel
	}
	info.ViewCount = raw.ViewCount
	info.Length = raw.Duration
	info.PublishDate = formatUploadDate(raw.UploadDate)

	return info, nil
}

// Transcript downloads the video's subtitles with yt-dlp into a temp
// dir and converts them to plain text. Manually created English
// subtitles are preferred; auto-generated ones are the fallback.
func (f *implFetcher) Transcript(ctx context.Context, info *VideoInfo) (string, error) {
	if info.VideoID == "" {
		return "", fmt.Errorf("cannot get transcript without a video ID")
	}

	subDir, err := os.MkdirTemp(f.tempDir, "subs-*")
	if err != nil {
		return "", fmt.Errorf("create subtitle temp dir: %w", err)
	}
	defer os.RemoveAll(subDir)

	outTemplate := filepath.Join(subDir, "%(id)s")
	_, err = f.executor.Execute(ctx, "yt-dlp",
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", "en.*,en",
		"--sub-format", "vtt/srt/best",
		"--no-warnings",
		"-o", outTemplate,
		info.URL,
	)
	if err != nil {
		return "", fmt.Errorf("download subtitles: %w", err)
	}

	subPath, err := findSubtitleFile(subDir)
	if err != nil {
		return "", err
	}

	f.logger.Debug(ctx, "Downloaded subtitle file: %s", subPath)

	content, err := os.ReadFile(subPath)
	if err != nil {
		return "", fmt.Errorf("read subtitle file: %w", err)
	}

	transcript := SubtitleToText(string(content))
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("subtitle file %s produced an empty transcript", filepath.Base(subPath))
	}

	return transcript, nil
}

// findSubtitleFile returns the first subtitle file in dir.
func findSubtitleFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read subtitle dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".vtt", ".srt":
			return filepath.Join(dir, e.Name()), nil
		}
	}

	return "", fmt.Errorf("no subtitles available for this video")
}

// formatUploadDate converts yt-dlp's YYYYMMDD into YYYY-MM-DD.
func formatUploadDate(date string) string {
	if len(date) != 8 {
		return date
	}
	return date[:4] + "-" + date[4:6] + "-" + date[6:8]
}
