package cle

import (
	"github.com/branchroot/minarb/core"
	"github.com/branchroot/minarb/observer"
)

// Option configures a Solve call.
type Option func(*options)

type options struct {
	obs observer.Observer
}

func resolve(opts ...Option) *options {
	o := &options{obs: observer.Noop{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithObserver attaches an observer that receives contraction/expansion
// events as the solver progresses.
func WithObserver(obs observer.Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.obs = obs
		}
	}
}

// arc is one candidate edge in the current (possibly contracted) working
// graph. from/to are node identifiers: original vertices keep their
// [0,n) VertexID value cast to int64; supernodes are allocated at n, n+1, …
// orig is the original graph edge this arc represents; contraction never
// invents new edges, it only relabels an endpoint, so orig is always the
// same pointer across contraction levels for a given arc.
type arc struct {
	from, to int64
	cost     int64
	orig     *core.Edge
}
