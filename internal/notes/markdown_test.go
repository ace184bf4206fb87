package notes

import (
	"strings"
	"testing"

	"github.com/nguyentantai21042004/video-notes/internal/video"
)

func TestFinalMarkdown(t *testing.T) {
	info := &video.VideoInfo{
		URL:         "https://youtu.be/dQw4w9WgXcQ",
		Title:       "A Talk About Go",
		Author:      "Some Channel",
		Length:      754,
		PublishDate: "2024-01-15",
	}

	md := FinalMarkdown("- **Point one**\n- Point two", info, false)

	for _, want := range []string{
		"# A Talk About Go",
		"**Author**: Some Channel",
		"**URL**: https://youtu.be/dQw4w9WgXcQ",
		"**Duration**: 12:34",
		"**Published**: 2024-01-15",
		"---",
		"- **Point one**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "unmerged") {
		t.Error("non-degraded summary should not carry the degraded note")
	}
}

func TestFinalMarkdownMissingMetadata(t *testing.T) {
	md := FinalMarkdown("body", &video.VideoInfo{}, false)

	if !strings.Contains(md, "# Video Summary") {
		t.Errorf("missing fallback title:\n%s", md)
	}
	if strings.Contains(md, "**Author**") || strings.Contains(md, "**Duration**") {
		t.Errorf("empty metadata fields should be omitted:\n%s", md)
	}
}

func TestFinalMarkdownDegraded(t *testing.T) {
	md := FinalMarkdown("body", &video.VideoInfo{Title: "T"}, true)
	if !strings.Contains(md, "unmerged") {
		t.Errorf("degraded summary should be flagged in the header:\n%s", md)
	}
}
