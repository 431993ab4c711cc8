package chunk

import (
	"strings"
	"testing"
)

func TestSplitTextBasics(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		maxSize int
		want    int // expected chunk count; -1 means "at least 2"
	}{
		{"empty text", "", 100, 0},
		{"whitespace only", "   \n\n  ", 100, 0},
		{"invalid max size", "some text", 0, 0},
		{"fits in one chunk", "short text", 100, 1},
		{"paragraphs split", strings.Repeat("word ", 30) + "\n\n" + strings.Repeat("word ", 30), 120, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitText(tt.text, tt.maxSize)
			if tt.want == -1 {
				if len(got) < 2 {
					t.Errorf("SplitText() = %d chunks, want at least 2", len(got))
				}
				return
			}
			if len(got) != tt.want {
				t.Errorf("SplitText() = %d chunks, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSplitTextRespectsMaxSize(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("This is sentence number one. And here is another sentence for padding. ")
	}

	maxSize := 200
	chunks := SplitText(b.String(), maxSize)

	if len(chunks) < 2 {
		t.Fatalf("SplitText() = %d chunks, want several", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > maxSize {
			t.Errorf("chunk %d is %d characters, want at most %d", i, len(chunk), maxSize)
		}
	}
}

func TestSplitTextPreservesContent(t *testing.T) {
	text := "Alpha bravo charlie.\n\nDelta echo foxtrot.\n\nGolf hotel india."
	chunks := SplitText(text, 25)

	joined := strings.Join(chunks, " ")
	for _, word := range []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india"} {
		if !strings.Contains(strings.ToLower(joined), word) {
			t.Errorf("SplitText() lost word %q", word)
		}
	}
}

func TestSplitTextWordFallback(t *testing.T) {
	// no paragraph, sentence, or line boundaries at all
	text := strings.Repeat("token ", 50)
	chunks := SplitText(text, 60)

	if len(chunks) < 2 {
		t.Fatalf("SplitText() = %d chunks, want several from word splitting", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 60 {
			t.Errorf("chunk %d is %d characters, want at most 60", i, len(chunk))
		}
	}
}

func TestPackSegmentsMergesShortTail(t *testing.T) {
	segments := []string{"a reasonably sized first segment here.", "tiny."}
	packed := packSegments(segments, 60, 15)

	if len(packed) != 1 {
		t.Fatalf("packSegments() = %d chunks, want short tail merged into 1", len(packed))
	}
	if !strings.Contains(packed[0], "tiny.") {
		t.Errorf("packSegments() dropped the short tail: %q", packed[0])
	}
}
