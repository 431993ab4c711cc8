// Package extract reduces HTML to tokenizer-ready text.
//
// Two surfaces: ToText handles whole HTML pages used as document sources
// (readability-based main-content extraction, optional CSS selector), and
// StripTags flattens the inline HTML found in forum question bodies.
package extract

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// whitespaceRegex collapses runs of whitespace left behind by tag removal
var whitespaceRegex = regexp.MustCompile(`[ \t]+`)

// ToText extracts the main content from an HTML source and returns it as
// Markdown-flavored plain text, suitable for tokenization.
//
// Parameters:
//   - content: io.Reader with the HTML (plain text passes through mostly unchanged)
//   - selector: optional CSS selector restricting extraction (overrides includeAll)
//   - includeAll: if true, skips readability filtering and converts everything
//   - baseURL: optional source URL for readability context (can be nil)
func ToText(content io.Reader, selector string, includeAll bool, baseURL *url.URL) (string, error) {
	if selector != "" {
		return extractWithSelector(content, selector)
	}
	if includeAll {
		return convertAll(content)
	}
	return extractMainContent(content, baseURL)
}

// StripTags reduces an HTML fragment to its text content. Question bodies
// carry inline markup (<p>, <code>, <a href=...>) that would otherwise leak
// attribute noise into the token stream. Input without markup is returned
// with only whitespace normalization; a fragment that fails to parse is
// returned as-is rather than dropped.
func StripTags(fragment string) string {
	if !strings.ContainsRune(fragment, '<') {
		return normalizeWhitespace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return normalizeWhitespace(fragment)
	}

	// block elements become line breaks so adjacent words don't fuse
	doc.Find("p, br, div, li, pre, h1, h2, h3, h4, h5, h6").Each(func(i int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return normalizeWhitespace(doc.Text())
}

func extractMainContent(content io.Reader, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	return toMarkdown(article.Content)
}

func extractWithSelector(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var htmlParts []string
	selection.Each(func(i int, s *goquery.Selection) {
		if html, err := s.Html(); err == nil {
			tagName := goquery.NodeName(s)
			htmlParts = append(htmlParts, fmt.Sprintf("<%s>%s</%s>", tagName, html, tagName))
		}
	})
	if len(htmlParts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}

	return toMarkdown(strings.Join(htmlParts, "\n"))
}

func convertAll(content io.Reader) (string, error) {
	htmlBytes, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML content: %w", err)
	}
	return toMarkdown(string(htmlBytes))
}

// toMarkdown converts an HTML string to clean Markdown text.
func toMarkdown(htmlString string) (string, error) {
	converter := md.NewConverter("", true, nil)

	markdown, err := converter.ConvertString(htmlString)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML: %w", err)
	}

	cleaned := strings.TrimSpace(markdown)
	cleaned = strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")

	return cleaned, nil
}

func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(whitespaceRegex.ReplaceAllString(line, " "))
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
