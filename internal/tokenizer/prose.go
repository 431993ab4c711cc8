package tokenizer

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"
)

// ProseTokenizer segments text with the prose NLP library. Punctuation-only
// tokens are dropped and the remainder lowercased, so "Go's scheduler?"
// yields word tokens rather than punctuation noise.
type ProseTokenizer struct {
	minLength int
}

// NewProseTokenizer creates a prose-backed tokenizer dropping tokens shorter
// than minLength runes.
func NewProseTokenizer(minLength int) *ProseTokenizer {
	return &ProseTokenizer{minLength: minLength}
}

// Tokenize returns the lowercased word tokens of text in order of appearance.
func (pt *ProseTokenizer) Tokenize(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	// tagging, entity extraction, and sentence segmentation are disabled;
	// only the token stream is needed
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize text: %w", err)
	}

	raw := doc.Tokens()
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		word := strings.ToLower(tok.Text)
		if !containsLetterOrDigit(word) {
			continue
		}
		if pt.minLength > 1 && runeLen(word) < pt.minLength {
			continue
		}
		tokens = append(tokens, word)
	}

	slog.Debug("tokenized text", "tokenizer", pt.Name(), "textLength", len(text), "tokens", len(tokens))
	return tokens, nil
}

// Name returns the name of this tokenizer (for logging and debugging).
func (pt *ProseTokenizer) Name() string {
	return "prose"
}

// containsLetterOrDigit reports whether s has at least one letter or digit,
// filtering out punctuation-only tokens emitted by prose.
func containsLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
