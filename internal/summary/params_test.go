package summary

import (
	"strings"
	"testing"
)

func TestCategorizeLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   LengthCategory
	}{
		{"empty", 0, CategoryVeryShort},
		{"below short threshold", 1999, CategoryVeryShort},
		{"at short threshold", 2000, CategoryShort},
		{"top of short", 7999, CategoryShort},
		{"at medium threshold", 8000, CategoryMedium},
		{"top of medium", 19999, CategoryMedium},
		{"at long threshold", 20000, CategoryLong},
		{"top of long", 49999, CategoryLong},
		{"at very long threshold", 50000, CategoryVeryLong},
		{"far beyond", 500000, CategoryVeryLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := categorizeLength(tt.length); got != tt.want {
				t.Errorf("categorizeLength(%d) = %v, want %v", tt.length, got, tt.want)
			}
		})
	}
}

func TestComputeChunkParameters(t *testing.T) {
	tests := []struct {
		name             string
		textLength       int
		wantSize         int
		wantOverlap      int
		wantCategory     LengthCategory
		wantHierarchical bool
	}{
		{"very short", 500, 2000, 100, CategoryVeryShort, false},
		{"short", 5000, 3000, 150, CategoryShort, false},
		{"medium", 10000, 4000, 200, CategoryMedium, true},
		{"long", 25000, 5000, 300, CategoryLong, true},
		{"very long", 60000, 6000, 400, CategoryVeryLong, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ComputeChunkParameters(strings.Repeat("a", tt.textLength))

			if params.ChunkSize != tt.wantSize {
				t.Errorf("ChunkSize = %d, want %d", params.ChunkSize, tt.wantSize)
			}
			if params.ChunkOverlap != tt.wantOverlap {
				t.Errorf("ChunkOverlap = %d, want %d", params.ChunkOverlap, tt.wantOverlap)
			}
			if params.Category != tt.wantCategory {
				t.Errorf("Category = %v, want %v", params.Category, tt.wantCategory)
			}
			if params.ShouldUseHierarchical != tt.wantHierarchical {
				t.Errorf("ShouldUseHierarchical = %v, want %v", params.ShouldUseHierarchical, tt.wantHierarchical)
			}
		})
	}
}

func TestComputeChunkParametersMultiByteText(t *testing.T) {
	// 30000 three-byte characters are 90000 bytes. Classification runs
	// on characters, so this is still a long transcript, not very_long.
	params := ComputeChunkParameters(strings.Repeat("語", 30000))

	if params.Category != CategoryLong {
		t.Errorf("Category = %v, want %v", params.Category, CategoryLong)
	}
	if params.ChunkSize != 5000 {
		t.Errorf("ChunkSize = %d, want 5000", params.ChunkSize)
	}
}

func TestComputeChunkParametersIdempotent(t *testing.T) {
	text := strings.Repeat("transcript ", 2000)

	first := ComputeChunkParameters(text)
	for i := 0; i < 5; i++ {
		if got := ComputeChunkParameters(text); got != first {
			t.Fatalf("run %d: parameters changed: %+v vs %+v", i, got, first)
		}
	}
}

func TestComputeChunkParametersEmptyText(t *testing.T) {
	params := ComputeChunkParameters("")
	if params.Category != CategoryVeryShort {
		t.Errorf("Category = %v, want %v", params.Category, CategoryVeryShort)
	}
	if params.ShouldUseHierarchical {
		t.Error("empty text should not use hierarchical summarization")
	}
}
