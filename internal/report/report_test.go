package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chriscorrea/winnow/internal/tfidf"
)

func testIndexes() (tfidf.TermIndex, tfidf.DocIndex) {
	terms := tfidf.TermIndex{
		"channels":   {{DocID: 1, Score: 0.24543}},
		"goroutines": {{DocID: 1, Score: 0.12272}},
		"slicing":    {{DocID: 2, Score: 0.31034}},
	}
	docs := tfidf.DocIndex{
		1: {"channels", "goroutines"},
		2: {"slicing"},
	}
	return terms, docs
}

func TestBuildEntries(t *testing.T) {
	terms, docs := testIndexes()
	labels := map[int]string{1: "How do channels work?"}

	entries := BuildEntries([]int{1, 2}, labels, terms, docs)

	if len(entries) != 2 {
		t.Fatalf("BuildEntries() = %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.DocID != 1 || first.Label != "How do channels work?" {
		t.Errorf("entries[0] = %+v, want doc 1 with label", first)
	}
	if len(first.Terms) != 2 || first.Terms[0].Term != "channels" || first.Terms[0].Score != 0.24543 {
		t.Errorf("entries[0].Terms = %v, want channels first with its score", first.Terms)
	}

	if entries[1].Label != "" {
		t.Errorf("entries[1].Label = %q, want empty when unlabeled", entries[1].Label)
	}
}

func TestBuildEntriesPreservesOrder(t *testing.T) {
	terms, docs := testIndexes()

	entries := BuildEntries([]int{2, 1}, nil, terms, docs)
	if entries[0].DocID != 2 || entries[1].DocID != 1 {
		t.Errorf("BuildEntries() order = %d,%d, want 2,1 (caller order)", entries[0].DocID, entries[1].DocID)
	}
}

func TestBuildEntriesSkipsUnscoredDocs(t *testing.T) {
	terms, docs := testIndexes()

	entries := BuildEntries([]int{1, 99, 2}, nil, terms, docs)
	if len(entries) != 2 {
		t.Errorf("BuildEntries() = %d entries, want 2 (doc 99 never scored)", len(entries))
	}
}

func TestRenderText(t *testing.T) {
	terms, docs := testIndexes()
	entries := BuildEntries([]int{1, 2}, map[int]string{1: "channels question"}, terms, docs)

	var buf bytes.Buffer
	if err := Render(&buf, entries, Text); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Document 1 (channels question)", "channels", "0.24543", "Document 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render(Text) output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	terms, docs := testIndexes()
	entries := BuildEntries([]int{1}, nil, terms, docs)

	var buf bytes.Buffer
	if err := Render(&buf, entries, Markdown); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "| Document | Term | Score |") {
		t.Errorf("Render(Markdown) missing table header:\n%s", out)
	}
	if !strings.Contains(out, "| 1 | channels | 0.24543 |") {
		t.Errorf("Render(Markdown) missing data row:\n%s", out)
	}
}

func TestRenderJSON(t *testing.T) {
	terms, docs := testIndexes()
	entries := BuildEntries([]int{1, 2}, nil, terms, docs)

	var buf bytes.Buffer
	if err := Render(&buf, entries, JSON); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	var decoded struct {
		Documents []Entry `json:"documents"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Render(JSON) produced invalid JSON: %v", err)
	}
	if len(decoded.Documents) != 2 {
		t.Errorf("Render(JSON) = %d documents, want 2", len(decoded.Documents))
	}
	if decoded.Documents[0].Terms[0].Term != "channels" {
		t.Errorf("Render(JSON) first term = %q, want channels", decoded.Documents[0].Terms[0].Term)
	}
}

func TestTrace(t *testing.T) {
	terms, docs := testIndexes()
	entries := BuildEntries([]int{1, 2}, nil, terms, docs)

	var buf bytes.Buffer
	Trace(&buf, entries, 1)

	out := buf.String()
	if !strings.Contains(out, "doc 1") || !strings.Contains(out, "channels=0.24543") {
		t.Errorf("Trace() output missing first document detail:\n%s", out)
	}
	if strings.Contains(out, "doc 2") {
		t.Errorf("Trace() traced more documents than requested:\n%s", out)
	}

	buf.Reset()
	Trace(&buf, entries, 0)
	if buf.Len() != 0 {
		t.Errorf("Trace(n=0) produced output: %q", buf.String())
	}

	buf.Reset()
	Trace(&buf, entries, 10)
	if !strings.Contains(buf.String(), "doc 2") {
		t.Errorf("Trace(n>len) should trace all entries:\n%s", buf.String())
	}
}

func TestRenderStats(t *testing.T) {
	var buf bytes.Buffer
	RenderStats(&buf, "words", []Stat{
		{Label: "doc one", Units: 10},
		{Label: "doc two", Units: 32},
	})

	out := buf.String()
	for _, want := range []string{"10", "doc one", "32", "42", "total (words, 2 documents)"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderStats() output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{Text, "Text"},
		{Markdown, "Markdown"},
		{JSON, "JSON"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.format.String(); got != tt.expected {
				t.Errorf("Format.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
