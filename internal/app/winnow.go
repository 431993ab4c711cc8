// Package app contains the core application logic for the winnow CLI tool.
// It wires document loading, sampling, tokenization, scoring, and reporting
// together, separated from CLI flag concerns.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/chriscorrea/winnow/internal/chunk"
	"github.com/chriscorrea/winnow/internal/counter"
	"github.com/chriscorrea/winnow/internal/extract"
	"github.com/chriscorrea/winnow/internal/loader"
	"github.com/chriscorrea/winnow/internal/report"
	"github.com/chriscorrea/winnow/internal/sample"
	"github.com/chriscorrea/winnow/internal/spinner"
	"github.com/chriscorrea/winnow/internal/stopwords"
	"github.com/chriscorrea/winnow/internal/tfidf"
	"github.com/chriscorrea/winnow/internal/tokenizer"
)

// Config holds all configuration options for the winnow application.
type Config struct {
	Sources []string // CSV dumps, URLs, file paths, or "-" for stdin

	// corpus construction from a question dump
	Tag        string // target tag; tagged questions plus a random untagged sample form the corpus
	SampleSize int    // untagged questions to sample (0 = all)
	Seed       int64  // RNG seed for sampling (0 = time-based)

	// scoring
	TopK    int // top-scoring terms kept per document
	MaxDocs int // documents to score (0 = all)

	// tokenization
	TokenizerMethod tokenizer.Method
	MinTokenLength  int
	FilterStopwords bool

	// raw-source handling
	ChunkSize  int    // split raw sources into chunk documents of this many characters (0 = one doc per source)
	Selector   string // CSS selector for HTML extraction
	IncludeAll bool   // skip readability filtering for HTML sources

	// reporting
	Format      report.Format
	VerboseDocs int // documents given a detailed stderr trace (reporting only; never limits scoring)
	ShowStats   bool
	StatsMethod counter.Method

	Quiet bool
	Debug bool
}

// document is an intermediate record between loading and tokenization.
type document struct {
	id    int
	label string
	text  string
}

// Run executes the winnow pipeline with the given configuration.
//
// Pipeline:
//  1. load documents (CSV dump with tag sampling, or raw text/HTML sources)
//  2. tokenize, optionally filtering stopwords
//  3. score the corpus with TF-IDF
//  4. render the per-document top-K report
//
// ctx allows for cancellation of fetch operations and the progress spinner.
func Run(ctx context.Context, cfg Config) (string, error) {
	if len(cfg.Sources) == 0 {
		return "", fmt.Errorf("no sources provided")
	}

	docs, err := loadDocuments(ctx, cfg)
	if err != nil {
		return "", err
	}

	corpus, order, labels, err := buildCorpus(docs, cfg)
	if err != nil {
		return "", err
	}

	var sp *spinner.Spinner
	if !cfg.Quiet {
		sp = spinner.New(os.Stderr, fmt.Sprintf("Scoring %d documents...", len(corpus)))
		sp.Start(ctx)
	}

	termIndex, docIndex, err := tfidf.ScoreCorpus(corpus, tfidf.Options{
		TopK:    cfg.TopK,
		MaxDocs: cfg.MaxDocs,
	})
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return "", fmt.Errorf("scoring failed: %w", err)
	}

	entries := report.BuildEntries(order, labels, termIndex, docIndex)

	// verbose trace goes to stderr so stdout stays machine-readable
	if cfg.VerboseDocs > 0 && !cfg.Quiet {
		report.Trace(os.Stderr, entries, cfg.VerboseDocs)
	}

	var out strings.Builder
	if cfg.ShowStats {
		if err := renderStats(&out, docs, cfg.StatsMethod); err != nil {
			return "", err
		}
		out.WriteString("\n")
	}
	if err := report.Render(&out, entries, cfg.Format); err != nil {
		return "", err
	}

	return out.String(), nil
}

// loadDocuments turns the configured sources into labeled documents. CSV
// dumps and raw sources cannot be mixed in one invocation: question ids come
// from the dump while raw documents are numbered sequentially, and mixing
// the two id spaces invites collisions.
func loadDocuments(ctx context.Context, cfg Config) ([]document, error) {
	var csvSources, rawSources []string
	for _, source := range cfg.Sources {
		if isCSVSource(source, cfg) {
			csvSources = append(csvSources, source)
		} else {
			rawSources = append(rawSources, source)
		}
	}
	if len(csvSources) > 0 && len(rawSources) > 0 {
		return nil, fmt.Errorf("cannot mix CSV dumps and raw sources in one run")
	}
	if len(csvSources) > 1 {
		return nil, fmt.Errorf("expected a single CSV dump, got %d", len(csvSources))
	}

	if len(csvSources) == 1 {
		return loadQuestionDump(ctx, csvSources[0], cfg)
	}
	return loadRawSources(ctx, rawSources, cfg)
}

// isCSVSource treats .csv paths/URLs as dumps; a configured tag implies the
// (single) source is a dump regardless of its name.
func isCSVSource(source string, cfg Config) bool {
	if cfg.Tag != "" {
		return true
	}
	trimmed := strings.ToLower(source)
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return strings.HasSuffix(trimmed, ".csv")
}

func loadQuestionDump(ctx context.Context, source string, cfg Config) ([]document, error) {
	reader, err := loader.GetContent(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", source, err)
	}
	defer reader.Close()

	questions, err := loader.ParseQuestions(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse question dump %q: %w", source, err)
	}

	if cfg.Tag != "" {
		tagged, rest := sample.Partition(questions, cfg.Tag)
		if len(tagged) == 0 {
			return nil, fmt.Errorf("no questions tagged %q in %q", cfg.Tag, source)
		}

		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		sampled := sample.Pick(rest, cfg.SampleSize, rng)
		questions = append(tagged, sampled...)
	}

	docs := make([]document, 0, len(questions))
	for _, q := range questions {
		docs = append(docs, document{
			id:    q.ID,
			label: q.Title,
			text:  extract.StripTags(q.Text()),
		})
	}
	return docs, nil
}

func loadRawSources(ctx context.Context, sources []string, cfg Config) ([]document, error) {
	var docs []document
	nextID := 1

	for _, source := range sources {
		text, err := processRawSource(ctx, source, cfg)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: failed to process source %q: %v\n", source, err)
			}
			continue
		}

		if cfg.ChunkSize > 0 {
			for i, piece := range chunk.SplitText(text, cfg.ChunkSize) {
				docs = append(docs, document{
					id:    nextID,
					label: fmt.Sprintf("%s#%d", displayName(source), i+1),
					text:  piece,
				})
				nextID++
			}
		} else {
			docs = append(docs, document{
				id:    nextID,
				label: displayName(source),
				text:  text,
			})
			nextID++
		}
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no content loaded from any source")
	}
	return docs, nil
}

func processRawSource(ctx context.Context, source string, cfg Config) (string, error) {
	reader, err := loader.GetContent(ctx, source)
	if err != nil {
		return "", fmt.Errorf("failed to fetch content: %w", err)
	}
	defer reader.Close()

	var baseURL *url.URL
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		baseURL, _ = url.Parse(source) // parse errors leave nil, which is fine
	}

	text, err := extract.ToText(reader, cfg.Selector, cfg.IncludeAll, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no content extracted")
	}

	return text, nil
}

// buildCorpus tokenizes documents and assembles the scoring corpus. Documents
// that tokenize to nothing are skipped with a warning: they would otherwise
// trip the core's empty-document check, and dropping boilerplate-only rows is
// the boundary's job, not the scorer's.
func buildCorpus(docs []document, cfg Config) (tfidf.Corpus, []int, map[int]string, error) {
	tok := tokenizer.New(cfg.TokenizerMethod, cfg.MinTokenLength)

	var filter *stopwords.Filter
	if cfg.FilterStopwords {
		filter = stopwords.NewFilter()
	}

	corpus := make(tfidf.Corpus, 0, len(docs))
	order := make([]int, 0, len(docs))
	labels := make(map[int]string, len(docs))
	seen := make(map[int]bool, len(docs))

	for _, d := range docs {
		if seen[d.id] {
			return nil, nil, nil, fmt.Errorf("duplicate document id %d", d.id)
		}
		seen[d.id] = true

		tokens, err := tok.Tokenize(d.text)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: failed to tokenize document %d: %v\n", d.id, err)
			}
			continue
		}
		if filter != nil {
			tokens = filter.Apply(tokens)
		}
		if len(tokens) == 0 {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: skipping document %d (%s): no tokens\n", d.id, d.label)
			}
			continue
		}

		corpus = append(corpus, tfidf.Document{ID: d.id, Tokens: tokens})
		order = append(order, d.id)
		labels[d.id] = d.label
	}

	if len(corpus) == 0 {
		return nil, nil, nil, fmt.Errorf("no documents with tokens to score")
	}

	return corpus, order, labels, nil
}

func renderStats(out *strings.Builder, docs []document, method counter.Method) error {
	c, err := counter.New(method)
	if err != nil {
		return fmt.Errorf("failed to create counter: %w", err)
	}

	stats := make([]report.Stat, 0, len(docs))
	for _, d := range docs {
		stats = append(stats, report.Stat{Label: d.label, Units: c.Count(d.text)})
	}

	report.RenderStats(out, c.Name(), stats)
	return nil
}

// displayName shortens a source for use as a document label.
func displayName(source string) string {
	if source == "-" {
		return "stdin"
	}
	if u, err := url.Parse(source); err == nil && u.Host != "" {
		return u.Host + u.Path
	}
	return source
}
