// Package dfs defines types and options for depth-first path search
// with backtracking, including cancellation, a pre-order hook and depth limiting.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current path.
	Black        // Black: the vertex was explored and backtracked out of.
)

var (
	// ErrNeighborFuncNil is returned when a nil NeighborFunc is passed to Search.
	ErrNeighborFuncNil = errors.New("dfs: neighbor function is nil")

	// ErrEmptyStartID indicates that the start vertex ID is empty.
	ErrEmptyStartID = errors.New("dfs: start vertex ID is empty")

	// ErrEmptyTargetID indicates that the target vertex ID is empty.
	ErrEmptyTargetID = errors.New("dfs: target vertex ID is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNeighbors is returned when the NeighborFunc fails for a vertex.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")
)

// NeighborFunc enumerates the vertices adjacent to id. DFS descends into
// neighbors in the returned order.
type NeighborFunc func(id string) ([]string, error)

// Option configures optional behavior of Search.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for Search.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort the search early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts the search with that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if non-negative, limits the path to MaxDepth edges.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits the path to limit edges.
// A negative limit is recorded as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// DFSResult contains the outcome of Search.
type DFSResult struct {
	// Path lists the vertices from start to target; nil if not Found.
	Path []string

	// Found reports whether the target was reached.
	Found bool

	// Visited counts distinct vertices entered.
	Visited int

	// Backtracks counts dead ends popped off the current path.
	Backtracks int
}
