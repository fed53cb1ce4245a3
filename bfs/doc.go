// Package bfs provides breadth-first search over an implicit graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - The graph is described by a NeighborFunc and is never materialized:
//     only the vertices BFS expands are ever asked for their neighbors.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Found: whether the WithTarget vertex was discovered
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Stops on first discovery of a target vertex via WithTarget.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Search graphs too large to build up front, such as "words one letter
//     apart", where edges are generated on demand.
//
// Determinism
//
//	BFS enqueues neighbors in exactly the order the NeighborFunc returns them,
//	so a deterministic NeighborFunc yields a fully reproducible visit sequence
//	and parent tree.
//
// Complexity (V = discovered vertices, E = edges examined)
//
//   - Time:   O(V + E) plus the cost of NeighborFunc for each expanded vertex
//   - Memory: O(V)     (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	next := func(id string) ([]string, error) { return adj[id], nil }
//
//	// Full traversal:
//	result, err := bfs.BFS(next, "start")
//
//	// Shortest path with early exit:
//	result, err := bfs.BFS(next, "start", bfs.WithTarget("goal"))
//	if err == nil && result.Found {
//		path, _ := result.PathTo("goal")
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering, no target.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithTarget(id):              stop as soon as id is discovered.
//   - WithOnEnqueue(fn):           hook before a vertex is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a vertex.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrNeighborFuncNil      if the NeighborFunc is nil.
//   - ErrEmptyStartID         if the start ID is empty.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth, empty Target).
//   - ErrNeighbors            if the NeighborFunc fails for any vertex.
//   - ErrNoPath               from PathTo for an unreached destination.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
