package summary

import "unicode/utf8"

// LengthCategory buckets a transcript by character count.
type LengthCategory string

const (
	CategoryVeryShort LengthCategory = "very_short"
	CategoryShort     LengthCategory = "short"
	CategoryMedium    LengthCategory = "medium"
	CategoryLong      LengthCategory = "long"
	CategoryVeryLong  LengthCategory = "very_long"
)

// Character-count thresholds separating the length categories.
const (
	shortThreshold    = 2000
	mediumThreshold   = 8000
	longThreshold     = 20000
	veryLongThreshold = 50000
)

// ChunkParameters holds the chunking strategy computed for one transcript.
type ChunkParameters struct {
	ChunkSize             int
	ChunkOverlap          int
	Category              LengthCategory
	ShouldUseHierarchical bool
}

var chunkSizeByCategory = map[LengthCategory]int{
	CategoryVeryShort: 2000,
	CategoryShort:     3000,
	CategoryMedium:    4000,
	CategoryLong:      5000,
	CategoryVeryLong:  6000,
}

var overlapByCategory = map[LengthCategory]int{
	CategoryVeryShort: 100,
	CategoryShort:     150,
	CategoryMedium:    200,
	CategoryLong:      300,
	CategoryVeryLong:  400,
}

var hierarchicalByCategory = map[LengthCategory]bool{
	CategoryVeryShort: false,
	CategoryShort:     false,
	CategoryMedium:    true,
	CategoryLong:      true,
	CategoryVeryLong:  true,
}

// ComputeChunkParameters analyzes the transcript text and returns the
// chunk size, overlap and strategy to use for summarization. Length is
// measured in characters, so multi-byte scripts classify the same as
// ASCII text of equal length.
// Pure function: the same input always yields the same parameters.
func ComputeChunkParameters(text string) ChunkParameters {
	category := categorizeLength(utf8.RuneCountInString(text))

	return ChunkParameters{
		ChunkSize:             chunkSizeByCategory[category],
		ChunkOverlap:          overlapByCategory[category],
		Category:              category,
		ShouldUseHierarchical: hierarchicalByCategory[category],
	}
}

// categorizeLength maps a character count to its length category.
func categorizeLength(length int) LengthCategory {
	switch {
	case length < shortThreshold:
		return CategoryVeryShort
	case length < mediumThreshold:
		return CategoryShort
	case length < longThreshold:
		return CategoryMedium
	case length < veryLongThreshold:
		return CategoryLong
	default:
		return CategoryVeryLong
	}
}
