package lexicon

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Lexicon is an immutable set of lowercase words.
// The zero value and a nil *Lexicon both behave as an empty set.
type Lexicon struct {
	set    map[string]struct{}
	sorted []string // ascending, same contents as set
}

// Normalize returns the canonical form of word: surrounding whitespace
// removed and all letters lowercased.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// New builds a Lexicon from words. Each word is normalized; words that are
// empty after normalization are skipped and duplicates are stored once.
func New(words ...string) *Lexicon {
	l := &Lexicon{
		set:    make(map[string]struct{}, len(words)),
		sorted: make([]string, 0, len(words)),
	}
	var w string
	for _, raw := range words {
		w = Normalize(raw)
		if w == "" {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.sorted = append(l.sorted, w)
	}
	sort.Strings(l.sorted)

	return l
}

// Contains reports whether word, after normalization, is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	if l == nil || len(l.set) == 0 {
		return false
	}
	_, ok := l.set[Normalize(word)]

	return ok
}

// Size returns the number of distinct words.
func (l *Lexicon) Size() int {
	if l == nil {
		return 0
	}

	return len(l.sorted)
}

// Words returns all words in ascending order. The slice is a copy.
func (l *Lexicon) Words() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.sorted))
	copy(out, l.sorted)

	return out
}

// WordsOfLength returns, in ascending order, the words consisting of
// exactly n runes. Only words of one length can share a ladder, so this is
// the upper bound on what a single search may explore.
func (l *Lexicon) WordsOfLength(n int) []string {
	if l == nil || n <= 0 {
		return nil
	}
	var out []string
	for _, w := range l.sorted {
		if utf8.RuneCountInString(w) == n {
			out = append(out, w)
		}
	}

	return out
}
