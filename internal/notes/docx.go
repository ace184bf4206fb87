package notes

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont     = "Calibri"
	docxCodeFont = "Consolas"
	docxFontSize = 11
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet   = regexp.MustCompile(`^[-*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+(.+)$`)

	// Inline spans the summary prompts ask the model to emit. Bold is
	// listed first so ** is never consumed as two italic markers.
	reInlineSpan = regexp.MustCompile("\\*\\*(.+?)\\*\\*|\\*(.+?)\\*|`(.+?)`")
)

// inlineSpan is one styled piece of a markdown line.
type inlineSpan struct {
	text   string
	bold   bool
	italic bool
	code   bool
}

// WriteDocx renders the summary markdown into a styled docx file.
func WriteDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		if reNumbered.MatchString(trimmed) {
			addRichText(doc.AddParagraph(""), trimmed)
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 15
	case 2:
		return 13
	case 3:
		return 12
	default:
		return docxFontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(stripInlineMarkup(text)).Font(docxFont).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText writes a line as a sequence of runs, rendering **bold**
// and *italic* spans with the matching style and `code` spans in a
// monospace font.
func addRichText(p *docx.Paragraph, text string) {
	for _, span := range splitInline(text) {
		font := docxFont
		if span.code {
			font = docxCodeFont
		}
		run := p.AddText(span.text).Font(font).Size(docxFontSize).Color("000000")
		if span.bold {
			run.Bold(true)
		}
		if span.italic {
			run.Italic(true)
		}
	}
}

// splitInline tokenizes a markdown line into styled spans. Text outside
// any marker becomes a plain span; unmatched markers are left as is.
func splitInline(text string) []inlineSpan {
	var spans []inlineSpan
	last := 0

	for _, m := range reInlineSpan.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, inlineSpan{text: text[last:m[0]]})
		}
		switch {
		case m[2] >= 0:
			spans = append(spans, inlineSpan{text: text[m[2]:m[3]], bold: true})
		case m[4] >= 0:
			spans = append(spans, inlineSpan{text: text[m[4]:m[5]], italic: true})
		case m[6] >= 0:
			spans = append(spans, inlineSpan{text: text[m[6]:m[7]], code: true})
		}
		last = m[1]
	}

	if last < len(text) {
		spans = append(spans, inlineSpan{text: text[last:]})
	}

	return spans
}

func stripInlineMarkup(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
