package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Question is one row of a forum question dump.
type Question struct {
	ID    int
	Title string
	Body  string
	Tags  []string
}

// Text returns the question's full text: title followed by body. The body
// may still contain HTML markup; stripping is the extract package's job.
func (q Question) Text() string {
	if q.Body == "" {
		return q.Title
	}
	return q.Title + "\n\n" + q.Body
}

// HasTag reports whether the question carries the given tag
// (case-insensitive).
func (q Question) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// bracketTagRegex matches Stack Exchange style tag lists: <go><performance>
var bracketTagRegex = regexp.MustCompile(`<([^<>]+)>`)

// column names recognized in the CSV header, lowercase
var wantedColumns = map[string]bool{
	"id": true, "title": true, "body": true, "tags": true,
}

// ParseQuestions decodes a CSV question dump. The first record must be a
// header containing (at least) id, title, body, and tags columns, matched
// case-insensitively in any order. Extra columns are ignored. Rows with an
// unparseable id are a hard error: a malformed dump should fail fast rather
// than silently skew the corpus.
func ParseQuestions(r io.Reader) ([]Question, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated per-row against the header below

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if wantedColumns[name] {
			columns[name] = i
		}
	}
	for name := range wantedColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("CSV header is missing required column %q", name)
		}
	}

	var questions []Question
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record at line %d: %w", line, err)
		}

		q, err := questionFromRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("invalid CSV record at line %d: %w", line, err)
		}
		questions = append(questions, q)
	}

	slog.Debug("parsed question dump", "questions", len(questions))
	return questions, nil
}

func questionFromRecord(record []string, columns map[string]int) (Question, error) {
	field := func(name string) (string, error) {
		idx := columns[name]
		if idx >= len(record) {
			return "", fmt.Errorf("record has %d fields, column %q needs index %d", len(record), name, idx)
		}
		return record[idx], nil
	}

	rawID, err := field("id")
	if err != nil {
		return Question{}, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return Question{}, fmt.Errorf("id %q is not an integer", rawID)
	}

	title, err := field("title")
	if err != nil {
		return Question{}, err
	}
	body, err := field("body")
	if err != nil {
		return Question{}, err
	}
	rawTags, err := field("tags")
	if err != nil {
		return Question{}, err
	}

	return Question{
		ID:    id,
		Title: strings.TrimSpace(title),
		Body:  strings.TrimSpace(body),
		Tags:  ParseTags(rawTags),
	}, nil
}

// ParseTags splits a raw tag field into individual tags. Two formats are
// recognized: angle-bracket lists ("<go><concurrency>") and delimiter-
// separated lists ("go|concurrency" or "go, concurrency").
func ParseTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var parts []string
	if strings.Contains(raw, "<") {
		for _, m := range bracketTagRegex.FindAllStringSubmatch(raw, -1) {
			parts = append(parts, m[1])
		}
	} else {
		parts = strings.FieldsFunc(raw, func(r rune) bool {
			return r == '|' || r == ',' || r == ';'
		})
	}

	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.ToLower(strings.TrimSpace(p)); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
