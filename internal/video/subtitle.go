package video

import (
	"regexp"
	"strings"
)

var (
	reCueIndex  = regexp.MustCompile(`^\d+$`)
	reTimestamp = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?[.,]\d{3}\s+-->`)
	reInlineTag = regexp.MustCompile(`<[^>]+>`)
)

// SubtitleToText converts SRT or WebVTT subtitle content into a plain
// transcript. Cue indexes, timestamps, headers and inline styling tags
// are stripped; consecutive duplicate lines (common in auto-generated
// subtitles) are collapsed.
func SubtitleToText(content string) string {
	var lines []string
	prev := ""

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || isSubtitleMetadata(trimmed) {
			continue
		}

		trimmed = strings.TrimSpace(reInlineTag.ReplaceAllString(trimmed, ""))
		if trimmed == "" || trimmed == prev {
			continue
		}

		lines = append(lines, trimmed)
		prev = trimmed
	}

	return strings.Join(lines, " ")
}

// isSubtitleMetadata reports whether a line is subtitle structure
// rather than dialogue.
func isSubtitleMetadata(line string) bool {
	if reCueIndex.MatchString(line) || reTimestamp.MatchString(line) {
		return true
	}
	if line == "WEBVTT" ||
		strings.HasPrefix(line, "Kind:") ||
		strings.HasPrefix(line, "Language:") ||
		strings.HasPrefix(line, "NOTE") ||
		strings.HasPrefix(line, "STYLE") {
		return true
	}
	return false
}
