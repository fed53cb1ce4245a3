package doublets

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/doublets/lexicon"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/doublets"

// Solver answers word-ladder queries against one immutable Lexicon.
// It is safe for concurrent use.
type Solver struct {
	lex      *lexicon.Lexicon
	alphabet []rune
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewSolver returns a Solver over lex.
// Returns ErrLexiconNil if lex is nil, or ErrOptionViolation for bad options.
func NewSolver(lex *lexicon.Lexicon, opts ...Option) (*Solver, error) {
	if lex == nil {
		return nil, ErrLexiconNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Solver{
		lex:      lex,
		alphabet: o.Alphabet,
		logger:   o.Logger,
		tracer:   o.TracerProvider.Tracer(tracerName),
	}, nil
}

// MustNewSolver is like NewSolver but panics on error.
// Use it where a missing lexicon is a programming mistake.
func MustNewSolver(lex *lexicon.Lexicon, opts ...Option) *Solver {
	s, err := NewSolver(lex, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// WordCount returns the number of words in the lexicon.
func (s *Solver) WordCount() int {
	return s.lex.Size()
}

// IsWord reports whether str is in the lexicon, ignoring case.
func (s *Solver) IsWord(str string) bool {
	return s.lex.Contains(str)
}

// HammingDistance returns the number of positions at which a and b differ,
// comparing letters case-insensitively. Strings of different length (in
// runes) have no Hamming distance: ErrLengthMismatch is returned.
func (s *Solver) HammingDistance(a, b string) (int, error) {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if len(ra) != len(rb) {
		return 0, fmt.Errorf("%w: %q has %d letters, %q has %d", ErrLengthMismatch, a, len(ra), b, len(rb))
	}
	diff := 0
	for i := range ra {
		if ra[i] != rb[i] {
			diff++
		}
	}

	return diff, nil
}

// Neighbors returns the lexicon words that differ from word in exactly one
// position. Candidates are generated position by position, left to right,
// and within a position in alphabet order; that order is the result order.
// word itself is never included, and no word appears twice.
func (s *Solver) Neighbors(word string) []string {
	return s.neighbors(lexicon.Normalize(word))
}

// neighbors is Neighbors for an already normalized word.
func (s *Solver) neighbors(word string) []string {
	letters := []rune(word)
	var out []string
	seen := make(map[string]bool)
	var orig rune
	for i := range letters {
		orig = letters[i]
		for _, ch := range s.alphabet {
			if ch == orig {
				continue
			}
			letters[i] = ch
			candidate := string(letters)
			if !seen[candidate] && s.lex.Contains(candidate) {
				seen[candidate] = true
				out = append(out, candidate)
			}
		}
		letters[i] = orig
	}

	return out
}

// neighborIDs adapts neighbors to the NeighborFunc shape used by bfs and dfs.
func (s *Solver) neighborIDs(id string) ([]string, error) {
	return s.neighbors(id), nil
}

// IsWordLadder reports whether sequence is a valid word ladder: non-empty,
// every entry a lexicon word, and consecutive entries exactly one letter
// apart. A single word is a trivial ladder.
func (s *Solver) IsWordLadder(sequence []string) bool {
	if len(sequence) == 0 {
		return false
	}
	if len(sequence) == 1 {
		return s.IsWord(sequence[0])
	}
	for i := 0; i < len(sequence)-1; i++ {
		a, b := sequence[i], sequence[i+1]
		if !s.IsWord(a) || !s.IsWord(b) {
			return false
		}
		if d, err := s.HammingDistance(a, b); err != nil || d != 1 {
			return false
		}
	}

	return true
}

// endpoints normalizes start and end and applies the edge policy shared by
// MinLadder and Ladder. When done is true, ladder is the final answer.
func (s *Solver) endpoints(start, end string) (from, to string, ladder []string, done bool) {
	from, to = lexicon.Normalize(start), lexicon.Normalize(end)
	switch {
	case !s.lex.Contains(from) || !s.lex.Contains(to):
		return from, to, nil, true
	case utf8.RuneCountInString(from) != utf8.RuneCountInString(to):
		return from, to, nil, true
	case from == to:
		return from, to, []string{from}, true
	}

	return from, to, nil, false
}
