package generator

import "github.com/branchroot/minarb/core"

// Sparse builds a backbone over n vertices and fills in additional random
// edges up to roughly 1.2*n total edges.
func Sparse(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	o := newOptions(opts...)
	if int(o.root) < 0 || int(o.root) >= n {
		return nil, ErrInvalidRoot
	}

	target := o.edgeCount
	if !o.haveCount {
		target = int(1.2 * float64(n))
		if target < n-1 {
			target = n - 1
		}
	}
	if target < n-1 || target > n*(n-1) {
		return nil, ErrInvalidEdgeCount
	}

	g := backbone(n, o.root, o)
	fillRandomPairs(g, n, target, o)
	return g, nil
}
