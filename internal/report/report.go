// Package report renders scoring results for human or machine consumption.
//
// The scoring core produces two cross-indexed structures (term index and
// document index); this package flattens them back into per-document entries
// in corpus order and renders those as plain text, a Markdown table, or
// JSON. Verbose tracing is a reporting concern: it limits how many documents
// get a detailed breakdown, never how many are scored.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/chriscorrea/winnow/internal/tfidf"
)

// Format defines the output format for results
type Format int

const (
	// plain text output (default)
	Text Format = iota
	// Markdown table output
	Markdown
	// JSON output
	JSON
)

// String returns the string representation of the output format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case Markdown:
		return "Markdown"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// TermScore is one reported (term, score) pair.
type TermScore struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Entry is one document's report: its id, an optional human-readable label
// (question title, file name), and its top terms in descending score order.
type Entry struct {
	DocID int         `json:"docId"`
	Label string      `json:"label,omitempty"`
	Terms []TermScore `json:"terms"`
}

// BuildEntries flattens the two scoring indexes into per-document entries.
// order supplies document ids in corpus order; ids absent from the document
// index (e.g. beyond a scoring cap) are skipped. labels may be nil.
func BuildEntries(order []int, labels map[int]string, terms tfidf.TermIndex, docs tfidf.DocIndex) []Entry {
	entries := make([]Entry, 0, len(docs))

	for _, id := range order {
		docTerms, ok := docs[id]
		if !ok {
			continue
		}

		entry := Entry{DocID: id, Label: labels[id]}
		for _, term := range docTerms {
			score, ok := lookupScore(terms, term, id)
			if !ok {
				// indexes are built together; a miss means caller passed
				// mismatched structures
				continue
			}
			entry.Terms = append(entry.Terms, TermScore{Term: term, Score: score})
		}
		entries = append(entries, entry)
	}

	return entries
}

// Render writes entries to w in the requested format.
func Render(w io.Writer, entries []Entry, format Format) error {
	switch format {
	case Markdown:
		return renderMarkdown(w, entries)
	case JSON:
		return renderJSON(w, entries)
	default:
		return renderText(w, entries)
	}
}

// Trace writes a compact one-line-per-document breakdown for the first n
// entries. n <= 0 disables tracing entirely.
func Trace(w io.Writer, entries []Entry, n int) {
	if n <= 0 {
		return
	}
	if n > len(entries) {
		n = len(entries)
	}

	for _, entry := range entries[:n] {
		pairs := make([]string, 0, len(entry.Terms))
		for _, ts := range entry.Terms {
			pairs = append(pairs, fmt.Sprintf("%s=%.5f", ts.Term, ts.Score))
		}
		fmt.Fprintf(w, "doc %d%s: %s\n", entry.DocID, labelSuffix(entry.Label), strings.Join(pairs, " "))
	}
}

// Stat is one row of the corpus statistics summary.
type Stat struct {
	Label string
	Units int
}

// RenderStats writes a document size summary. unit names the counting
// method ("tokens (cl100k_base)", "words", ...).
func RenderStats(w io.Writer, unit string, stats []Stat) {
	total := 0
	for _, s := range stats {
		fmt.Fprintf(w, "%8d  %s\n", s.Units, s.Label)
		total += s.Units
	}
	fmt.Fprintf(w, "%8d  total (%s, %d documents)\n", total, unit, len(stats))
}

func renderText(w io.Writer, entries []Entry) error {
	for i, entry := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Document %d%s\n", entry.DocID, labelSuffix(entry.Label))
		for rank, ts := range entry.Terms {
			fmt.Fprintf(w, "  %2d. %-24s %.5f\n", rank+1, ts.Term, ts.Score)
		}
	}
	return nil
}

func renderMarkdown(w io.Writer, entries []Entry) error {
	fmt.Fprintln(w, "| Document | Term | Score |")
	fmt.Fprintln(w, "|---|---|---|")
	for _, entry := range entries {
		doc := fmt.Sprintf("%d", entry.DocID)
		if entry.Label != "" {
			doc = fmt.Sprintf("%d (%s)", entry.DocID, escapePipes(entry.Label))
		}
		for _, ts := range entry.Terms {
			fmt.Fprintf(w, "| %s | %s | %.5f |\n", doc, escapePipes(ts.Term), ts.Score)
		}
	}
	return nil
}

func renderJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Documents []Entry `json:"documents"`
	}{Documents: entries}); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

func labelSuffix(label string) string {
	if label == "" {
		return ""
	}
	return " (" + label + ")"
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func lookupScore(terms tfidf.TermIndex, term string, docID int) (float64, bool) {
	for _, ds := range terms[term] {
		if ds.DocID == docID {
			return ds.Score, true
		}
	}
	return 0, false
}
