// Package doublets is the root of a small library for word-ladder puzzles:
// chains of words where each differs from the next in exactly one letter.
//
// Under the hood, everything is organized under four subpackages:
//
//	lexicon/  - immutable, case-normalized word set
//	bfs/      - breadth-first search over implicit graphs (shortest paths)
//	dfs/      - depth-first path search with backtracking
//	doublets/ - the ladder solver: Hamming distance, neighbors, ladders, validation
//
// Quick example:
//
//	lex := lexicon.New("cat", "cot", "cog", "dog")
//	s := doublets.MustNewSolver(lex)
//	s.MinLadder("cat", "dog") // [cat cot cog dog]
//
//	go get github.com/katalvlaran/doublets
package doublets
