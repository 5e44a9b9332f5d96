package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	ErrGraphNil             = errors.New("bfs: graph is nil")
	ErrStartVertexOutOfRange = errors.New("bfs: start vertex out of range")
)

// Option configures a traversal via functional arguments.
type Option func(*options)

type options struct {
	ctx       context.Context
	onVisit   func(id, depth int)
}

func resolve(opts ...Option) *options {
	o := &options{
		ctx:     context.Background(),
		onVisit: func(int, int) {},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithContext sets a context for cancellation of long traversals.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked once per visited vertex, with
// its BFS depth from the start.
func WithOnVisit(fn func(id, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// Result holds the outcome of a traversal: every vertex reached, and its
// depth (in edges) from the start.
type Result struct {
	Depth map[int]int
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	_, ok := r.Depth[v]
	return ok
}
