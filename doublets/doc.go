// Package doublets solves word ladders: given a lexicon and two words of equal
// length, it finds a shortest chain of single-letter substitutions that turns
// one into the other, every rung being a lexicon word.
//
//	cat → cot → cog → dog
//
// What
//
//   - HammingDistance: count of differing positions, case-insensitive;
//     ErrLengthMismatch for operands of different length.
//   - Neighbors: lexicon words one substitution away, scanned position by
//     position and, within a position, in alphabet order.
//   - MinLadder: a minimum-length ladder, found by breadth-first search over
//     the implicit "one letter apart" graph (package bfs).
//   - Ladder: some ladder, found by depth-first search with backtracking
//     (package dfs); cheaper on memory, not necessarily shortest.
//   - IsWordLadder: validates any sequence against the lexicon.
//   - SolveAll: runs many MinLadder queries concurrently over the shared lexicon.
//
// Results
//
//	A ladder is a fresh []string owned by the caller. A ladder of length one
//	means start == end. An empty ladder means no ladder exists, including when
//	either endpoint is not a word or the lengths differ; these are results,
//	not errors.
//
// Determinism
//
//	Neighbor order is fixed by position then alphabet, and BFS enqueues in that
//	order, so identical lexicon and endpoints always yield the identical ladder.
//
// Concurrency
//
//	A Solver never mutates its Lexicon or itself after NewSolver. Each search
//	allocates its own frontier, so a single Solver may serve any number of
//	goroutines.
//
// Complexity (W = lexicon words of the endpoints' length, L = word length, A = alphabet size)
//
//   - Neighbors:  O(L·A) lexicon probes
//   - MinLadder:  O(W·L·A) time, O(W) memory in the worst case
//
// Options
//
//   - WithAlphabet(letters):   substitution alphabet (default "a"…"z").
//   - WithLogger(logger):      *slog.Logger for debug records (default discards).
//   - WithTracerProvider(tp):  OpenTelemetry tracer provider (default global).
//
// Errors
//
//   - ErrLexiconNil       from NewSolver when the lexicon is nil.
//   - ErrOptionViolation  for invalid options or SolveAll worker counts.
//   - ErrLengthMismatch   from HammingDistance.
//   - context errors      from the *Context variants and SolveAll.
package doublets
