package notes

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-notes/internal/video"
)

const maxFilenameLength = 100

var (
	reBracketed  = regexp.MustCompile(`[(\[].+?[)\]]`)
	reURL        = regexp.MustCompile(`https?://\S+`)
	reSeparators = regexp.MustCompile(`[|_\-:;]+`)
	reUnsafe     = regexp.MustCompile(`[^\w\s-]`)
	reSpaces     = regexp.MustCompile(`\s+`)
	reHyphens    = regexp.MustCompile(`-+`)
)

// Filenames holds the generated output file names for one video.
type Filenames struct {
	Base       string
	Summary    string
	Transcript string
}

// GenerateFilenames builds filesystem-safe names from video metadata.
// Falls back to the video ID, then a generic name, when no usable
// title exists.
func GenerateFilenames(info *video.VideoInfo, includeDate bool) Filenames {
	base := sanitizeTitle(info.Title)

	if base == "" {
		if info.VideoID != "" {
			base = "video-" + info.VideoID
		} else {
			base = "video-summary"
		}
	}

	if includeDate {
		base = base + "-" + time.Now().Format("20060102")
	}

	// Reserve room for the "-transcript.txt" suffix.
	if len(base) > maxFilenameLength-20 {
		base = strings.TrimRight(base[:maxFilenameLength-20], "-")
	}

	return Filenames{
		Base:       base,
		Summary:    base + ".md",
		Transcript: base + "-transcript.txt",
	}
}

// sanitizeTitle turns a video title into a lowercase hyphenated slug.
func sanitizeTitle(title string) string {
	if title == "" {
		return ""
	}

	clean := strings.ToLower(title)
	clean = reBracketed.ReplaceAllString(clean, "")
	clean = reURL.ReplaceAllString(clean, "")
	clean = reSeparators.ReplaceAllString(clean, " ")
	clean = reUnsafe.ReplaceAllString(clean, "")
	clean = reSpaces.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(clean)
	clean = strings.ReplaceAll(clean, " ", "-")
	clean = reHyphens.ReplaceAllString(clean, "-")
	return strings.Trim(clean, "-")
}

// sanitizeBase makes an arbitrary file base name safe for output files.
// Used in watch mode where the input filename stands in for a title.
func sanitizeBase(name string) string {
	if s := sanitizeTitle(name); s != "" {
		return s
	}
	return fmt.Sprintf("transcript-%d", time.Now().Unix())
}
