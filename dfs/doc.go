// Package dfs finds a path between two vertices of an implicit graph by
// depth-first search with backtracking.
//
// The search keeps the current path as a stack: entering a vertex pushes it
// (Gray), exhausting its neighbors without reaching the target pops it again
// (Black). Black vertices are never re-entered, so the search terminates on
// cyclic graphs and touches each vertex at most once.
//
// Usage
//
//	res, err := dfs.Search(next, "cat", "dog")
//	if err == nil && res.Found {
//		fmt.Println(res.Path)
//	}
package dfs
