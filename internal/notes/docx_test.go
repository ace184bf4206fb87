package notes

import (
	"reflect"
	"testing"
)

func TestSplitInline(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []inlineSpan
	}{
		{
			name: "plain text",
			line: "just a sentence",
			want: []inlineSpan{{text: "just a sentence"}},
		},
		{
			name: "bold span",
			line: "a **key point** here",
			want: []inlineSpan{
				{text: "a "},
				{text: "key point", bold: true},
				{text: " here"},
			},
		},
		{
			name: "italic span",
			line: "an *aside* here",
			want: []inlineSpan{
				{text: "an "},
				{text: "aside", italic: true},
				{text: " here"},
			},
		},
		{
			name: "code span",
			line: "run `yt-dlp` first",
			want: []inlineSpan{
				{text: "run "},
				{text: "yt-dlp", code: true},
				{text: " first"},
			},
		},
		{
			name: "mixed styles in order",
			line: "**Topic**: covers *motivation* and `setup`",
			want: []inlineSpan{
				{text: "Topic", bold: true},
				{text: ": covers "},
				{text: "motivation", italic: true},
				{text: " and "},
				{text: "setup", code: true},
			},
		},
		{
			name: "bold markers are not read as italics",
			line: "**all bold**",
			want: []inlineSpan{{text: "all bold", bold: true}},
		},
		{
			name: "unmatched marker stays literal",
			line: "a lone * star",
			want: []inlineSpan{{text: "a lone * star"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitInline(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitInline(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestHeadingSize(t *testing.T) {
	tests := []struct {
		level int
		want  uint64
	}{
		{1, 15},
		{2, 13},
		{3, 12},
		{4, docxFontSize},
		{6, docxFontSize},
	}

	for _, tt := range tests {
		if got := headingSize(tt.level); got != tt.want {
			t.Errorf("headingSize(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
