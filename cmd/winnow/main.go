package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/winnow/internal/app"
	"github.com/chriscorrea/winnow/internal/counter"
	"github.com/chriscorrea/winnow/internal/report"
	"github.com/chriscorrea/winnow/internal/tokenizer"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	tag, _ := cmd.Flags().GetString("tag")
	sampleSize, _ := cmd.Flags().GetInt("sample-size")
	seed, _ := cmd.Flags().GetInt64("seed")
	topK, _ := cmd.Flags().GetInt("top")
	maxDocs, _ := cmd.Flags().GetInt("max-docs")
	verboseDocs, _ := cmd.Flags().GetInt("verbose-docs")
	tokenizerName, _ := cmd.Flags().GetString("tokenizer")
	minLength, _ := cmd.Flags().GetInt("min-length")
	stopwordsFlag, _ := cmd.Flags().GetBool("stopwords")
	chunkSize, _ := cmd.Flags().GetInt("chunk-size")
	selector, _ := cmd.Flags().GetString("selector")
	includeAll, _ := cmd.Flags().GetBool("include-all")
	statsFlag, _ := cmd.Flags().GetBool("stats")
	mdFlag, _ := cmd.Flags().GetBool("md")
	textFlag, _ := cmd.Flags().GetBool("text")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	tokenizerMethod, err := tokenizer.ParseMethod(tokenizerName)
	if err != nil {
		return app.Config{}, err
	}

	// determine output format
	var format report.Format
	switch {
	case mdFlag:
		format = report.Markdown
	case jsonFlag:
		format = report.JSON
	case textFlag:
		format = report.Text
	default:
		format = report.Text // default if no format flag
	}

	// determine stats counting method
	var statsMethod counter.Method
	switch statsUnit, _ := cmd.Flags().GetString("stats-unit"); statsUnit {
	case "words":
		statsMethod = counter.Words
	case "characters":
		statsMethod = counter.Characters
	case "tokens", "":
		statsMethod = counter.Tokens
	default:
		return app.Config{}, fmt.Errorf("unknown stats unit %q (want tokens, words, or characters)", statsUnit)
	}

	// use positional arguments as sources; default to stdin
	sources := args
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	return app.Config{
		Sources:         sources,
		Tag:             tag,
		SampleSize:      sampleSize,
		Seed:            seed,
		TopK:            topK,
		MaxDocs:         maxDocs,
		VerboseDocs:     verboseDocs,
		TokenizerMethod: tokenizerMethod,
		MinTokenLength:  minLength,
		FilterStopwords: stopwordsFlag,
		ChunkSize:       chunkSize,
		Selector:        selector,
		IncludeAll:      includeAll,
		Format:          format,
		ShowStats:       statsFlag,
		StatsMethod:     statsMethod,
		Quiet:           quiet,
		Debug:           debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "winnow [sources...]",
	Short: "A CLI tool that finds each document's most distinctive vocabulary",
	Long: `Winnow scores words with TF-IDF to find the vocabulary that most
characterizes each document relative to the rest of the corpus.

Sources may be a CSV question dump (id,title,body,tags columns), local text
or HTML files, URLs, or standard input.

Examples:
  winnow --tag=go --sample-size=500 questions.csv
  winnow --top=10 essay-one.txt essay-two.txt
  winnow --chunk-size=1200 https://example.com/article
  cat notes.txt | winnow`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := app.Run(ctx, config)
		if err != nil {
			return fmt.Errorf("winnow failed: %w", err)
		}

		fmt.Print(result)

		return nil
	},
}

func init() {
	// corpus construction flags
	rootCmd.Flags().StringP("tag", "T", "", "Target tag; its questions plus a random untagged sample form the corpus")
	rootCmd.Flags().Int("sample-size", 500, "Untagged questions to sample into the corpus (0 = all)")
	rootCmd.Flags().Int64("seed", 0, "Random seed for sampling (0 = time-based)")

	// scoring flags
	rootCmd.Flags().IntP("top", "k", 5, "Top-scoring terms reported per document")
	rootCmd.Flags().Int("max-docs", 0, "Limit how many documents are scored (0 = all)")

	// tokenization flags
	rootCmd.Flags().String("tokenizer", "prose", "Tokenizer: prose or simple")
	rootCmd.Flags().Int("min-length", 2, "Drop tokens shorter than this many characters")
	rootCmd.Flags().Bool("stopwords", false, "Filter common English stopwords before scoring")

	// raw source handling
	rootCmd.Flags().Int("chunk-size", 0, "Split raw sources into documents of at most this many characters")
	rootCmd.Flags().StringP("selector", "s", "", "CSS selector for HTML content extraction")
	rootCmd.Flags().BoolP("include-all", "i", false, "Include all HTML content without readability filtering")

	// output format flags are mutually exclusive
	rootCmd.Flags().Bool("text", false, "Output as plain text (default)")
	rootCmd.Flags().Bool("md", false, "Output as a Markdown table")
	rootCmd.Flags().Bool("json", false, "Output as JSON")
	rootCmd.MarkFlagsMutuallyExclusive("text", "md", "json")

	// reporting flags
	rootCmd.Flags().Int("verbose-docs", 0, "Print a per-term score trace for the first N documents (stderr)")
	rootCmd.Flags().Bool("stats", false, "Print document size statistics before the report")
	rootCmd.Flags().String("stats-unit", "tokens", "Statistics unit: tokens, words, or characters")

	// other flags
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress progress and warning messages")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
