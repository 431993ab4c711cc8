// Package counter measures document sizes for corpus statistics reporting.
//
// Three strategies are available: token counting with tiktoken's cl100k_base
// encoding, word counting, and character counting. These counts are purely
// informational; the TF denominator in scoring always uses the tokenizer's
// own token sequence, never a counter.
package counter

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (tokens, words, or characters) in the given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// Method represents the available counting strategies.
type Method int

const (
	// Tokens uses tiktoken with cl100k_base encoding (default)
	Tokens Method = iota
	// Words counts words using whitespace splitting
	Words
	// Characters counts individual runes including whitespace
	Characters
)

// String returns the string representation of the counting method.
func (m Method) String() string {
	switch m {
	case Tokens:
		return "tokens"
	case Words:
		return "words"
	case Characters:
		return "characters"
	default:
		return "unknown"
	}
}

// New creates a Counter for the specified method. Returns an error if the
// counter cannot be initialized (e.g. the tiktoken encoding fails to load).
func New(method Method) (Counter, error) {
	switch method {
	case Words:
		return WordCounter{}, nil
	case Characters:
		return CharCounter{}, nil
	default:
		return NewTokenCounter()
	}
}
