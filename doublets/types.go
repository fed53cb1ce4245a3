package doublets

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Sentinel errors for ladder solving.
var (
	// ErrLexiconNil is returned when a Solver is built without a lexicon.
	ErrLexiconNil = errors.New("doublets: lexicon is nil")

	// ErrLengthMismatch is returned by HammingDistance for strings of different length.
	ErrLengthMismatch = errors.New("doublets: length mismatch")

	// ErrOptionViolation is returned when an invalid Option or argument is supplied.
	ErrOptionViolation = errors.New("doublets: invalid option supplied")
)

// DefaultAlphabet is the substitution alphabet used by Neighbors.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Option configures a Solver.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation by NewSolver.
type Option func(*Options)

// Options holds Solver configuration.
type Options struct {
	// Alphabet lists the letters tried at every position, in scan order.
	Alphabet []rune

	// Logger receives debug records for each search.
	Logger *slog.Logger

	// TracerProvider supplies the tracer for search spans.
	TracerProvider trace.TracerProvider

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - the lowercase Latin alphabet
//   - a logger that discards everything
//   - the global OpenTelemetry tracer provider (no-op unless installed)
func DefaultOptions() Options {
	return Options{
		Alphabet:       []rune(DefaultAlphabet),
		Logger:         slog.New(slog.DiscardHandler),
		TracerProvider: otel.GetTracerProvider(),
	}
}

// WithAlphabet sets the substitution alphabet. Letters are lowercased,
// duplicates dropped (first occurrence wins) and the remaining order is the
// scan order within a position. An empty alphabet or one containing
// whitespace is an ErrOptionViolation.
func WithAlphabet(letters string) Option {
	return func(o *Options) {
		letters = strings.ToLower(letters)
		if letters == "" {
			o.err = fmt.Errorf("%w: alphabet cannot be empty", ErrOptionViolation)
			return
		}
		seen := make(map[rune]bool, len(letters))
		alphabet := make([]rune, 0, len(letters))
		for _, r := range letters {
			if unicode.IsSpace(r) {
				o.err = fmt.Errorf("%w: alphabet cannot contain whitespace (%q)", ErrOptionViolation, r)
				return
			}
			if seen[r] {
				continue
			}
			seen[r] = true
			alphabet = append(alphabet, r)
		}
		o.Alphabet = alphabet
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. A nil provider is ignored.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// Query is one start/end pair for SolveAll.
type Query struct {
	Start string
	End   string
}

// Result pairs a Query with its minimum ladder (empty if none exists).
type Result struct {
	Query  Query
	Ladder []string
}
