// Package chunk splits a single large text into smaller pieces that each
// become one document of the scoring corpus.
//
// Splitting is strategy-ordered: paragraph boundaries first, then sentence
// boundaries, then lines, then words as a last resort, so pieces stay close
// to semantic units. Short fragments are merged with neighbors to avoid
// one-sentence documents drowning in noise.
package chunk

import (
	"log/slog"
	"strings"
)

// splitStrategy is one delimiter level; suffix is re-appended to restore the
// boundary text the split consumed.
type splitStrategy struct {
	name      string
	delimiter string
	suffix    string
}

// strategies are ordered from largest semantic unit to smallest
var strategies = []splitStrategy{
	{name: "paragraph", delimiter: "\n\n", suffix: "\n\n"},
	{name: "sentence", delimiter: ". ", suffix: "."},
	{name: "sentence-question", delimiter: "? ", suffix: "?"},
	{name: "sentence-exclamation", delimiter: "! ", suffix: "!"},
	{name: "line", delimiter: "\n", suffix: "\n"},
	{name: "word", delimiter: " ", suffix: ""},
}

// SplitText breaks text into chunks of at most maxSize characters, applying
// each strategy in turn to whatever is still oversized from the previous
// wave. Invalid maxSize or blank input yields no chunks.
func SplitText(text string, maxSize int) []string {
	if maxSize <= 0 {
		return []string{}
	}
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	text = strings.TrimSpace(text)
	if len(text) <= maxSize {
		return []string{text}
	}

	var done []string
	pending := []string{text}

	for _, strategy := range strategies {
		if len(pending) == 0 {
			break
		}

		var next []string
		for _, piece := range pending {
			if len(piece) <= maxSize {
				done = append(done, piece)
				continue
			}
			for _, sub := range splitByStrategy(piece, strategy, maxSize) {
				if trimmed := strings.TrimSpace(sub); trimmed != "" {
					next = append(next, trimmed)
				}
			}
		}
		pending = next
	}

	// anything still oversized after the word pass is kept as-is
	for _, piece := range pending {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			done = append(done, trimmed)
		}
	}

	slog.Debug("split text", "textLength", len(text), "maxSize", maxSize, "chunks", len(done))
	return done
}

// splitByStrategy splits one oversized piece at a delimiter and packs the
// segments back together up to maxSize.
func splitByStrategy(text string, strategy splitStrategy, maxSize int) []string {
	if !strings.Contains(text, strategy.delimiter) {
		return []string{text}
	}

	parts := strings.Split(text, strategy.delimiter)

	var segments []string
	for i, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		// restore the boundary on every segment but the last
		if i < len(parts)-1 {
			trimmed += strategy.suffix
		}
		segments = append(segments, trimmed)
	}

	return packSegments(segments, maxSize, minSegmentSize(maxSize))
}

// minSegmentSize keeps merged chunks from staying trivially short: a quarter
// of maxSize, floored at 3.
func minSegmentSize(maxSize int) int {
	minSize := maxSize / 4
	if minSize < 3 {
		minSize = 3
	}
	return minSize
}

// packSegments greedily combines consecutive segments up to maxSize,
// guaranteeing no emitted chunk shorter than minSize unless nothing can be
// merged with it.
func packSegments(segments []string, maxSize, minSize int) []string {
	if len(segments) == 0 {
		return []string{}
	}

	var packed []string
	var current strings.Builder

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			packed = append(packed, chunk)
		}
		current.Reset()
	}

	for _, segment := range segments {
		needed := len(segment)
		if current.Len() > 0 {
			needed++ // separator
		}

		if current.Len() > 0 && current.Len()+needed > maxSize {
			flush()
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(segment)
	}
	flush()

	// merge a trailing short chunk into its predecessor when it fits
	if len(packed) >= 2 {
		last := packed[len(packed)-1]
		prev := packed[len(packed)-2]
		if len(last) < minSize && len(prev)+1+len(last) <= maxSize {
			packed[len(packed)-2] = prev + " " + last
			packed = packed[:len(packed)-1]
		}
	}

	return packed
}
