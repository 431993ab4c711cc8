// Package tokenizer turns raw document text into the ordered, lowercased
// word tokens consumed by TF-IDF scoring.
//
// Two implementations are provided behind a common interface: an NLP-grade
// tokenizer built on prose (the default) and a simple regex tokenizer for
// speed on large corpora. Both are deterministic: the same text always
// produces the same token sequence, which the scoring core relies on since
// term frequency and document frequency are computed from the same tokens.
package tokenizer

import "fmt"

// Tokenizer converts raw text into an ordered sequence of lowercased word
// tokens. Implementations must be deterministic.
type Tokenizer interface {
	// Tokenize returns the word tokens of text in order of appearance.
	// Whitespace-only input yields an empty slice and no error.
	Tokenize(text string) ([]string, error)

	// Name returns a human-readable name for this tokenizer (for logging)
	Name() string
}

// Method selects a tokenizer implementation.
type Method int

const (
	// Prose uses NLP-grade word segmentation (default)
	Prose Method = iota
	// Simple splits on non-word characters with a regex
	Simple
)

// String returns the string representation of the tokenizer method.
func (m Method) String() string {
	switch m {
	case Prose:
		return "prose"
	case Simple:
		return "simple"
	default:
		return "unknown"
	}
}

// ParseMethod maps a flag value to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "prose", "":
		return Prose, nil
	case "simple":
		return Simple, nil
	default:
		return Prose, fmt.Errorf("unknown tokenizer %q (want \"prose\" or \"simple\")", s)
	}
}

// New creates a Tokenizer for the given method. Tokens shorter than
// minLength runes are dropped; minLength <= 1 keeps everything.
func New(method Method, minLength int) Tokenizer {
	switch method {
	case Simple:
		return NewSimpleTokenizer(minLength)
	default:
		return NewProseTokenizer(minLength)
	}
}
