// Package dfs implements depth-first path search with backtracking over an
// implicit graph described by a NeighborFunc.
//
// Key features:
//   - Search(next, startID, targetID, opts...): find some path start→target
//   - Backtracking: the current path is a stack, popped on every dead end
//   - Each vertex is entered at most once, so cyclic graphs terminate
//   - Hooks: OnVisit (pre-order) with error abort
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of NeighborFunc for each entered vertex.
//   - Memory: O(V) for recursion stack, path and state map.
//
// The path returned is the first one found in neighbor order; it is not
// necessarily the shortest. Use package bfs for shortest paths.
//
// Errors:
//
//   - ErrNeighborFuncNil        if next is nil.
//   - ErrEmptyStartID           if startID is empty.
//   - ErrEmptyTargetID          if targetID is empty.
//   - ErrOptionViolation        for invalid options.
//   - ErrNeighbors              wrapping a NeighborFunc failure.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"
)

// dfsWalker encapsulates state during one Search.
type dfsWalker struct {
	next   NeighborFunc
	target string
	opts   DFSOptions
	state  map[string]int
	path   []string
	res    *DFSResult
}

// Search looks for a path from startID to targetID, descending depth-first
// and backtracking out of dead ends. On success res.Path holds the path and
// res.Found is true. A missing path is not an error.
func Search(next NeighborFunc, startID, targetID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if next == nil {
		return nil, ErrNeighborFuncNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}
	if startID == "" {
		return nil, ErrEmptyStartID
	}
	if targetID == "" {
		return nil, ErrEmptyTargetID
	}

	walker := &dfsWalker{
		next:   next,
		target: targetID,
		opts:   dopts,
		state:  make(map[string]int),
		res:    &DFSResult{},
	}

	// 3. Traverse from the root
	found, err := walker.traverse(startID, 0)
	if err != nil {
		return walker.res, err
	}

	// 4. Publish the path
	if found {
		walker.res.Found = true
		walker.res.Path = make([]string, len(walker.path))
		copy(walker.res.Path, walker.path)
	}

	return walker.res, nil
}

// traverse enters id at the given depth and recurses into unvisited neighbors.
// It returns true as soon as the target is entered, leaving the path intact.
func (w *dfsWalker) traverse(id string, depth int) (bool, error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	// 2. Enter: push onto the path
	w.state[id] = Gray
	w.path = append(w.path, id)
	w.res.Visited++

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 4. Goal test
	if id == w.target {
		return true, nil
	}

	// 5. Explore each unvisited neighbor, unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.next(id)
		if err != nil {
			return false, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, nid := range nbs {
			if w.state[nid] != White {
				continue
			}
			found, err := w.traverse(nid, depth+1)
			if err != nil || found {
				return found, err
			}
		}
	}

	// 6. Dead end: backtrack
	w.path = w.path[:len(w.path)-1]
	w.state[id] = Black
	w.res.Backtracks++

	return false, nil
}
