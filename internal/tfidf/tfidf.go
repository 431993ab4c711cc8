// Package tfidf scores the distinctiveness of terms within documents relative
// to a corpus using TF-IDF (Term Frequency-Inverse Document Frequency).
//
// The package separates three concerns:
//   - pure scoring functions (TermFrequency, InverseDocFrequency, Score)
//   - a document-frequency cache scoped to one corpus snapshot (DocFreq)
//   - aggregation across a corpus into ranked, cross-indexed results (ScoreCorpus)
//
// Usage Example:
//
//	corpus := tfidf.Corpus{
//		{ID: 1, Tokens: []string{"cat", "cat", "dog"}},
//		{ID: 2, Tokens: []string{"dog", "dog", "fish"}},
//	}
//	terms, docs, err := tfidf.ScoreCorpus(corpus, tfidf.Options{TopK: 5})
//
// Scores may legitimately be negative: a term present in nearly every
// document has IDF = ln(N/(1+df)) < 0. Values are never clamped.
package tfidf

import (
	"errors"
	"fmt"
	"math"
)

// Document is one unit of text: a stable identifier plus the ordered token
// sequence produced by the caller's tokenizer. Tokens must be canonicalized
// (case, etc.) identically across every document in a corpus, or
// document-frequency counts will be wrong.
type Document struct {
	ID     int
	Tokens []string
}

// Corpus is an ordered collection of documents. Ordering does not affect
// scores but determines the order of entries in the aggregated indexes.
type Corpus []Document

// ErrEmptyCorpus is returned when a scoring operation is invoked against a
// corpus with no documents; IDF is undefined in that case (log of zero).
var ErrEmptyCorpus = errors.New("tfidf: corpus contains no documents")

// EmptyDocumentError reports a document with zero tokens, for which term
// frequency is undefined (division by zero). It is returned rather than
// letting NaN or Inf propagate into results.
type EmptyDocumentError struct {
	ID int
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("tfidf: document %d has no tokens", e.ID)
}

// DocFreq memoizes document-frequency counts for a single corpus snapshot.
//
// A DocFreq is valid only for the corpus it was constructed with. There is no
// automatic invalidation: scoring a different corpus requires a fresh cache.
// Not safe for concurrent use; first access populates the underlying map.
type DocFreq struct {
	corpus Corpus
	counts map[string]int
}

// NewDocFreq creates an empty cache bound to the given corpus snapshot.
func NewDocFreq(corpus Corpus) *DocFreq {
	return &DocFreq{
		corpus: corpus,
		counts: make(map[string]int),
	}
}

// Count returns the number of documents in the cache's corpus containing term
// at least once (presence, not occurrence count). The first query for a term
// scans the corpus; subsequent queries return the memoized count. A term
// absent from every document yields 0, which is not an error.
func (df *DocFreq) Count(term string) int {
	if n, ok := df.counts[term]; ok {
		return n
	}

	n := 0
	for _, doc := range df.corpus {
		for _, tok := range doc.Tokens {
			if tok == term {
				n++
				break
			}
		}
	}

	df.counts[term] = n
	return n
}

// Len returns the number of distinct terms currently memoized.
func (df *DocFreq) Len() int {
	return len(df.counts)
}

// TermFrequency returns the occurrence rate of term within doc, normalized by
// the document's token count. Returns an EmptyDocumentError for a zero-token
// document rather than dividing by zero.
func TermFrequency(term string, doc Document) (float64, error) {
	if len(doc.Tokens) == 0 {
		return 0, &EmptyDocumentError{ID: doc.ID}
	}

	occurrences := 0
	for _, tok := range doc.Tokens {
		if tok == term {
			occurrences++
		}
	}

	return float64(occurrences) / float64(len(doc.Tokens)), nil
}

// InverseDocFrequency returns ln(N / (1 + df(term))) where N is the corpus
// size and df is the document-frequency count from cache. The +1 smoothing
// keeps the ratio defined when a term is absent from every document. The
// result is negative when a term appears in nearly all documents; callers
// must not treat that as an error.
func InverseDocFrequency(term string, corpus Corpus, cache *DocFreq) (float64, error) {
	if len(corpus) == 0 {
		return 0, ErrEmptyCorpus
	}

	return math.Log(float64(len(corpus)) / float64(1+cache.Count(term))), nil
}

// Score returns the TF-IDF score for term in doc against corpus: the product
// of TermFrequency and InverseDocFrequency with no further normalization.
func Score(term string, doc Document, corpus Corpus, cache *DocFreq) (float64, error) {
	tf, err := TermFrequency(term, doc)
	if err != nil {
		return 0, err
	}

	idf, err := InverseDocFrequency(term, corpus, cache)
	if err != nil {
		return 0, err
	}

	return tf * idf, nil
}
