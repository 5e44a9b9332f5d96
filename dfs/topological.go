package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/branchroot/minarb/core"
)

// ErrCycleDetected is returned by TopologicalSort when g is not a DAG.
var ErrCycleDetected = errors.New("dfs: cycle detected")

const (
	white = 0
	gray  = 1
	black = 2
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets a context for cooperative cancellation of a sort
// over a very large instance.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type topoSorter struct {
	g     *core.Graph
	ctx   context.Context
	state []int
	order []core.VertexID
}

// TopologicalSort returns a linear order of g's vertices such that for
// every edge u->v, u precedes v. Returns ErrCycleDetected if g is not a DAG.
func TopologicalSort(g *core.Graph, opts ...TopoOption) ([]core.VertexID, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	o := topoOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	s := &topoSorter{g: g, ctx: o.ctx, state: make([]int, n), order: make([]core.VertexID, 0, n)}
	for v := 0; v < n; v++ {
		if s.state[v] == white {
			if err := s.visit(core.VertexID(v)); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}
	return s.order, nil
}

func (s *topoSorter) visit(v core.VertexID) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}
	switch s.state[v] {
	case gray:
		return fmt.Errorf("dfs: vertex %d: %w", v, ErrCycleDetected)
	case black:
		return nil
	}
	s.state[v] = gray
	for _, e := range s.g.OutEdges(v) {
		if err := s.visit(e.To); err != nil {
			return err
		}
	}
	s.state[v] = black
	s.order = append(s.order, v)
	return nil
}

// IsAcyclic reports whether g contains no directed cycle.
func IsAcyclic(g *core.Graph) bool {
	_, err := TopologicalSort(g)
	return err == nil
}
