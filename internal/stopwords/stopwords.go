// Package stopwords filters high-frequency function words out of token
// streams before scoring.
//
// Matching is done on snowball-stemmed forms, so inflected variants
// ("using", "used", "uses") hit a single stem entry. Filtering is opt-in:
// raw TF-IDF already down-weights ubiquitous words via IDF, but on small
// corpora stop tokens can still crowd distinctive vocabulary out of the
// top-K, and filtering them keeps reports readable.
package stopwords

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

// stopStems holds stemmed forms of common English function words plus a few
// words ubiquitous in forum text.
var stopStems = map[string]struct{}{
	// --- Articles, conjunctions, prepositions ---
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "if": {},
	"in": {}, "into": {}, "of": {}, "on": {}, "or": {},
	"over": {}, "than": {}, "that": {}, "the": {}, "then": {},
	"to": {}, "under": {}, "with": {}, "without": {},

	// --- Pronouns & determiners ---
	"all": {}, "ani": {}, // from "any"
	"both": {}, "each": {}, "he": {}, "her": {}, "his": {},
	"i": {}, "it": {}, "its": {}, "my": {}, "our": {},
	"she": {}, "some": {}, "their": {}, "them": {}, "they": {},
	"this": {}, "those": {}, "we": {}, "what": {}, "which": {},
	"who": {}, "you": {}, "your": {},

	// --- Auxiliaries & common verbs ---
	"am": {}, "are": {}, "be": {}, "been": {}, "can": {},
	"could": {}, "did": {}, "do": {}, "doe": {}, // from "does"
	"get": {}, "had": {}, "has": {}, "have": {}, "is": {},
	"may": {}, "should": {}, "tri": {}, // from "try"/"tried"
	"use": {}, // also from "using"/"used"
	"want": {}, "was": {}, "were": {}, "will": {}, "would": {},

	// --- Forum-text filler ---
	"also": {}, "ask": {}, "howev": {}, // from "however"
	"just": {}, "know": {}, "like": {}, "need": {}, "not": {},
	"now": {}, "onli": {}, // from "only"
	"pleas": {}, // from "please"
	"problem": {}, "question": {}, "so": {}, "thank": {},
	"there": {}, "when": {}, "where": {}, "why": {}, "work": {},
}

// Filter removes stop tokens from a token stream using stemmed matching.
type Filter struct {
	// alphaRegex confirms a token is stemmable before calling snowball
	alphaRegex *regexp.Regexp
}

// NewFilter creates and initializes a new Filter instance.
func NewFilter() *Filter {
	return &Filter{
		alphaRegex: regexp.MustCompile(`^[a-zA-Z]+$`),
	}
}

// Apply returns the tokens that are not stopwords, preserving order. Tokens
// that cannot be stemmed (digits, identifiers with punctuation) are kept
// unchanged; filtering never alters the surviving tokens themselves.
func (f *Filter) Apply(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if f.IsStopword(token) {
			continue
		}
		kept = append(kept, token)
	}
	return kept
}

// IsStopword reports whether a single token matches the stop set.
func (f *Filter) IsStopword(token string) bool {
	lower := strings.ToLower(token)

	if _, ok := stopStems[lower]; ok {
		return true
	}
	if !f.alphaRegex.MatchString(lower) {
		return false
	}

	stemmed, err := snowball.Stem(lower, "english", true)
	if err != nil {
		// unstemmable tokens are never stopwords
		return false
	}

	_, ok := stopStems[stemmed]
	return ok
}
