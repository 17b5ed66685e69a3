// ABOUTME: Fixed-width text chunking for embedding source text
// ABOUTME: Splits memo text into contiguous byte-length-bounded segments
package core

// Chunk splits text into contiguous, non-overlapping segments of at most
// maxChars bytes. Empty input yields no chunks. Text within the limit is
// returned whole as a single chunk.
//
// Lengths are measured in bytes, not grapheme clusters, so a boundary can
// fall inside a multi-byte UTF-8 sequence. That is a known limitation of
// this simple strategy; callers wanting sentence- or paragraph-aware
// splitting should do it upstream.
func Chunk(text string, maxChars int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= maxChars {
		return []string{text}
	}

	chunks := make([]string, 0, (len(text)+maxChars-1)/maxChars)
	for i := 0; i < len(text); i += maxChars {
		end := i + maxChars
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
	}
	return chunks
}
