// Package lexicon provides an immutable, case-normalized set of words
// used to validate every rung of a word ladder.
//
// What
//
//   - Lexicon stores distinct, non-empty, lowercase words.
//   - New trims and lowercases every input, skips empties, collapses duplicates.
//   - Contains normalizes its argument the same way, so "Cat", " cat" and
//     "cat" all answer identically.
//   - Words and WordsOfLength return sorted copies for deterministic iteration.
//
// Why
//
//   - A ladder search performs O(L·|alphabet|) membership probes per expanded
//     word; a hash set keeps each probe O(1).
//   - Immutability lets any number of concurrent searches share one Lexicon
//     without locks.
//
// Complexity (n = number of words)
//
//   - New:           O(n log n) (sort for deterministic enumeration)
//   - Contains:      O(L) for normalization + O(1) lookup
//   - Size:          O(1)
//   - WordsOfLength: O(n)
//
// Loading a Lexicon from files or streams is the caller's concern; this
// package only accepts ready-made words.
package lexicon
