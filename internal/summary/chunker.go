package summary

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reSentenceEnd    = regexp.MustCompile(`[.!?]\s+`)
	reParagraphBreak = regexp.MustCompile(`\n\s*\n`)
	reLineBreak      = regexp.MustCompile(`\n`)
)

// TextChunk is a contiguous piece of the original transcript with its
// source position and sequence index. Positions count characters, not
// bytes, so multi-byte transcripts chunk the same as ASCII ones.
type TextChunk struct {
	Content       string
	StartPosition int
	EndPosition   int
	ChunkIndex    int
}

// Length returns the character length of the chunk content.
func (c TextChunk) Length() int {
	return utf8.RuneCountInString(c.Content)
}

// Chunker splits large transcripts into overlapping chunks sized for
// AI summarization.
type Chunker struct {
	chunkSize int
	overlap   int
}

// NewChunker creates a Chunker. chunkSize must be positive and overlap
// must not be negative.
func NewChunker(chunkSize, overlap int) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("overlap must not be negative, got %d", overlap)
	}

	return &Chunker{
		chunkSize: chunkSize,
		overlap:   overlap,
	}, nil
}

// Chunk splits text into overlapping TextChunks. Non-final chunks
// prefer to end at a sentence boundary, falling back to a paragraph
// break, then a line break, then a hard cut at the size limit. Cuts
// always land on character boundaries.
// Empty or all-whitespace input yields no chunks.
func (c *Chunker) Chunk(text string) []TextChunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)

	var chunks []TextChunk
	start := 0
	chunkIndex := 0

	for start < len(runes) {
		end := start + c.chunkSize
		if end > len(runes) {
			end = len(runes)
		}

		// Not the last chunk: look for a boundary in the final 20% of
		// the window so chunks stay close to the target size.
		if end < len(runes) {
			searchStart := start + (c.chunkSize*4)/5
			if searchStart <= start {
				searchStart = start + 1
			}
			if boundary := findBoundary(runes, searchStart, end); boundary > start {
				end = boundary
			}
		}

		content := strings.TrimSpace(string(runes[start:end]))
		if content != "" {
			chunks = append(chunks, TextChunk{
				Content:       content,
				StartPosition: start,
				EndPosition:   end,
				ChunkIndex:    chunkIndex,
			})
			chunkIndex++
		}

		if end >= len(runes) {
			break
		}

		// Step back by the overlap, but always advance by at least one
		// character so the loop terminates even when overlap ~ chunk size.
		next := end - c.overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return chunks
}

// findBoundary returns the character position just after the last
// sentence ending in runes[searchStart:maxEnd], falling back to the
// last paragraph break, then the last line break. Returns maxEnd when
// no boundary exists.
func findBoundary(runes []rune, searchStart, maxEnd int) int {
	if searchStart < 0 || searchStart >= maxEnd || maxEnd > len(runes) {
		return maxEnd
	}
	window := string(runes[searchStart:maxEnd])

	for _, re := range []*regexp.Regexp{reSentenceEnd, reParagraphBreak, reLineBreak} {
		matches := re.FindAllStringIndex(window, -1)
		if len(matches) > 0 {
			last := matches[len(matches)-1]
			return searchStart + utf8.RuneCountInString(window[:last[1]])
		}
	}

	return maxEnd
}
