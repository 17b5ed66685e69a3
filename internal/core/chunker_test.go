// ABOUTME: Unit tests for fixed-width text chunking
// ABOUTME: Verifies empty, short, exact-multiple, and remainder cases
package core

import (
	"strings"
	"testing"
)

func TestChunk_Empty(t *testing.T) {
	for _, max := range []int{1, 10, 2000} {
		if got := Chunk("", max); len(got) != 0 {
			t.Errorf("Chunk(\"\", %d) = %v, want no chunks", max, got)
		}
	}
}

func TestChunk_ShortText(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
	}{
		{"well under limit", "hello", 100},
		{"exactly at limit", "hello", 5},
		{"single char", "x", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chunk(tt.text, tt.max)
			if len(got) != 1 {
				t.Fatalf("Chunk(%q, %d) returned %d chunks, want 1", tt.text, tt.max, len(got))
			}
			if got[0] != tt.text {
				t.Errorf("Chunk(%q, %d)[0] = %q, want unchanged text", tt.text, tt.max, got[0])
			}
		})
	}
}

func TestChunk_LongText(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		max         int
		wantCount   int
		wantLastLen int
	}{
		{"remainder", strings.Repeat("a", 25), 10, 3, 5},
		{"evenly divisible", strings.Repeat("b", 30), 10, 3, 10},
		{"one over", strings.Repeat("c", 11), 10, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chunk(tt.text, tt.max)
			if len(got) != tt.wantCount {
				t.Fatalf("got %d chunks, want %d", len(got), tt.wantCount)
			}
			for i := 0; i < len(got)-1; i++ {
				if len(got[i]) != tt.max {
					t.Errorf("chunk %d has length %d, want %d", i, len(got[i]), tt.max)
				}
			}
			if len(got[len(got)-1]) != tt.wantLastLen {
				t.Errorf("last chunk has length %d, want %d", len(got[len(got)-1]), tt.wantLastLen)
			}
			if strings.Join(got, "") != tt.text {
				t.Error("concatenated chunks do not reconstruct the input")
			}
		})
	}
}

func TestChunk_MultiByteBoundary(t *testing.T) {
	// Lengths are bytes; a boundary may fall inside a multi-byte rune.
	// The split pieces must still reconstruct the original exactly.
	text := strings.Repeat("日", 4) // 12 bytes
	got := Chunk(text, 5)

	if len(got) != 3 {
		t.Fatalf("got %d chunks, want 3", len(got))
	}
	if strings.Join(got, "") != text {
		t.Error("concatenated chunks do not reconstruct the input")
	}
}
