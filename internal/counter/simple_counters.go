package counter

import (
	"strings"
	"unicode/utf8"
)

// WordCounter counts whitespace-separated words.
type WordCounter struct{}

func (WordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

func (WordCounter) Name() string {
	return "words"
}

// CharCounter counts runes, including whitespace.
type CharCounter struct{}

func (CharCounter) Count(text string) int {
	return utf8.RuneCountInString(text)
}

func (CharCounter) Name() string {
	return "characters"
}
