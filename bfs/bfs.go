// Package bfs provides breadth-first search over an implicit graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, neighbor filtering and early exit
// on a target vertex.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// ErrNeighbors is returned when the NeighborFunc fails for a vertex.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state. One walker serves one call;
// it is never shared.
type walker struct {
	next    NeighborFunc
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
	done    bool // target discovered
}

// BFS runs breadth-first search starting from startID, asking next for the
// neighbors of each expanded vertex and applying any number of functional
// Options.
// Returns ErrNeighborFuncNil or ErrEmptyStartID for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for NeighborFunc
// failures, context errors on cancellation, or any OnVisit hook error.
// On error the partial result is returned alongside it.
func BFS(next NeighborFunc, startID string, opts ...Option) (*BFSResult, error) {
	if next == nil {
		return nil, ErrNeighborFuncNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if startID == "" {
		return nil, ErrEmptyStartID
	}

	w := &walker{
		next:    next,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, 16),
		visited: make(map[string]bool),
		res: &BFSResult{
			Order:  make([]string, 0, 16),
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(startID, 0, "")
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue. Discovering the target ends the search.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
	if w.opts.Target != "" && id == w.opts.Target {
		w.res.Found = true
		w.done = true
	}
}

// loop processes the queue until empty, target found, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors asks the NeighborFunc for neighbors, applies filtering and
// MaxDepth, and enqueues each unseen neighbor. Stops as soon as the target
// is discovered. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.next(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
		if w.done {
			return nil
		}
	}

	return nil
}
