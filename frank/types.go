package frank

import (
	"errors"

	"github.com/branchroot/minarb/core"
	"github.com/branchroot/minarb/observer"
)

// ErrNilGraph is returned when Solve is called with a nil graph.
var ErrNilGraph = errors.New("frank: nil graph")

// ErrInvalidRoot is returned when r is outside [0, g.Order()).
var ErrInvalidRoot = errors.New("frank: root out of range")

// ErrInfeasible is returned when no arborescence rooted at r exists.
var ErrInfeasible = errors.New("frank: no arborescence rooted at r exists")

// DualTerm is one term (X, y) of the dual certificate Sigma: y is the
// amount by which every arc entering vertex set X was tightened.
type DualTerm struct {
	X []core.VertexID
	Y int64
}

// Result is the output of Phase I: the zero-reduced-cost arc family F and
// the dual certificate Sigma (terms with y>0 only).
type Result struct {
	F     []*core.Edge
	Sigma []DualTerm
}

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

// WithObserver attaches an observer that receives tightening events.
func WithObserver(obs observer.Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.obs = obs
		}
	}
}
