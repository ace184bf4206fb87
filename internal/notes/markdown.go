package notes

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-notes/internal/video"
)

// FinalMarkdown assembles the output document: a metadata header built
// from the video info followed by the summary body. Degraded marks
// summaries that were concatenated because the combiner failed.
func FinalMarkdown(summaryContent string, info *video.VideoInfo, degraded bool) string {
	var sb strings.Builder

	title := info.Title
	if title == "" {
		title = "Video Summary"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	if info.Author != "" {
		fmt.Fprintf(&sb, "**Author**: %s\n", info.Author)
	}
	if info.URL != "" {
		fmt.Fprintf(&sb, "**URL**: %s\n", info.URL)
	}
	if d := info.DurationFormatted(); d != "" {
		fmt.Fprintf(&sb, "**Duration**: %s\n", d)
	}
	if info.PublishDate != "" {
		fmt.Fprintf(&sb, "**Published**: %s\n", info.PublishDate)
	}
	fmt.Fprintf(&sb, "**Summarized**: %s\n", time.Now().Format("2006-01-02 15:04"))
	if degraded {
		sb.WriteString("**Note**: section summaries are shown unmerged\n")
	}

	sb.WriteString("\n---\n\n")
	sb.WriteString(strings.TrimSpace(summaryContent))
	sb.WriteString("\n")

	return sb.String()
}
