package tfidf

import (
	"log/slog"
	"math"
	"sort"
)

// DefaultTopK is the number of top-scoring terms kept per document when
// Options.TopK is unset.
const DefaultTopK = 5

// scores are rounded to 5 decimal digits for storage/reporting; ranking
// always compares unrounded values
const roundingFactor = 1e5

// DocScore pairs a document id with a rounded TF-IDF score for one term.
type DocScore struct {
	DocID int     `json:"docId"`
	Score float64 `json:"score"`
}

// TermIndex maps a term to the documents that reported it among their
// top-scoring terms, in document processing order.
type TermIndex map[string][]DocScore

// DocIndex maps a document id to its top-scoring terms in descending score
// order.
type DocIndex map[int][]string

// Options configures corpus aggregation.
type Options struct {
	// TopK is the number of highest-scoring terms retained per document.
	// Zero or negative selects DefaultTopK.
	TopK int

	// MaxDocs caps how many documents are scored, in corpus order.
	// Zero means the entire corpus. This is independent of any verbose
	// reporting limit a caller applies to the results.
	MaxDocs int
}

// termScore is an intermediate (term, unrounded score) pair used for ranking.
type termScore struct {
	term  string
	score float64
}

// ScoreCorpus computes TF-IDF for every distinct term of every document in
// corpus and aggregates the per-document top-K terms into two cross-indexed
// structures.
//
// Determinism: distinct terms are collected in lexicographic order, and the
// descending-score sort breaks ties by ascending term, so repeated runs over
// the same corpus produce identical indexes including ordering.
//
// Validation is performed up front: an empty corpus returns ErrEmptyCorpus
// and a corpus containing any zero-token document returns an
// EmptyDocumentError, in both cases before any index is populated.
func ScoreCorpus(corpus Corpus, opts Options) (TermIndex, DocIndex, error) {
	if len(corpus) == 0 {
		return nil, nil, ErrEmptyCorpus
	}
	for _, doc := range corpus {
		if len(doc.Tokens) == 0 {
			return nil, nil, &EmptyDocumentError{ID: doc.ID}
		}
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	limit := len(corpus)
	if opts.MaxDocs > 0 && opts.MaxDocs < limit {
		limit = opts.MaxDocs
	}

	slog.Debug("scoring corpus", "documents", len(corpus), "scored", limit, "topK", topK)

	// one cache per scoring run, scoped to exactly this corpus snapshot
	cache := NewDocFreq(corpus)

	terms := make(TermIndex)
	docs := make(DocIndex, limit)

	for _, doc := range corpus[:limit] {
		distinct := distinctTerms(doc.Tokens)
		scored := make([]termScore, 0, len(distinct))
		for _, term := range distinct {
			s, err := Score(term, doc, corpus, cache)
			if err != nil {
				return nil, nil, err
			}
			scored = append(scored, termScore{term: term, score: s})
		}

		sort.Slice(scored, func(i, j int) bool {
			if scored[i].score != scored[j].score {
				return scored[i].score > scored[j].score
			}
			return scored[i].term < scored[j].term
		})

		if len(scored) > topK {
			scored = scored[:topK]
		}

		for _, ts := range scored {
			rounded := math.Round(ts.score*roundingFactor) / roundingFactor
			terms[ts.term] = append(terms[ts.term], DocScore{DocID: doc.ID, Score: rounded})
			docs[doc.ID] = append(docs[doc.ID], ts.term)
		}

		slog.Debug("scored document", "docID", doc.ID, "distinctTerms", len(distinct), "kept", len(scored), "cachedTerms", cache.Len())
	}

	return terms, docs, nil
}

// distinctTerms returns the unique tokens of a document sorted
// lexicographically, so term iteration order is reproducible across runs.
func distinctTerms(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[tok] = struct{}{}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	return terms
}
