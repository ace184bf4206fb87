package video

import (
	"fmt"
	"regexp"
)

// VideoInfo holds metadata about a YouTube video.
type VideoInfo struct {
	URL         string
	VideoID     string
	Title       string
	Description string
	Author      string
	ViewCount   int64
	Length      int // seconds
	PublishDate string
}

// HasMetadata reports whether any usable metadata was extracted.
func (v *VideoInfo) HasMetadata() bool {
	return v.Title != "" || v.VideoID != ""
}

// DurationFormatted returns the video length as HH:MM:SS, or MM:SS for
// videos under an hour. Empty when the length is unknown.
func (v *VideoInfo) DurationFormatted() string {
	if v.Length <= 0 {
		return ""
	}

	hours := v.Length / 3600
	minutes := (v.Length % 3600) / 60
	seconds := v.Length % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|youtu\.be/|embed/|watch\?v=)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/.*[?&]v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL.
// Returns an empty string when no ID is present.
func ExtractVideoID(url string) string {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// ValidateURL reports whether the URL looks like a YouTube video link.
func ValidateURL(url string) bool {
	return ExtractVideoID(url) != ""
}
