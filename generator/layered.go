package generator

import (
	"math/rand"

	"github.com/branchroot/minarb/core"
)

// Layered builds a backbone over n vertices, partitions all vertices by
// index into three layers (see assignLayers), then fills in additional
// edges biased (with probability layerBias) to go from layer k to layer
// k+1, and otherwise drawn uniformly at random.
func Layered(n int, opts ...Option) (*core.Graph, error) {
	if n < 4 {
		return nil, ErrTooFewVertices
	}
	o := newOptions(opts...)
	if int(o.root) < 0 || int(o.root) >= n {
		return nil, ErrInvalidRoot
	}

	target := o.edgeCount
	if !o.haveCount {
		target = int(1.5 * float64(n))
		if target < n-1 {
			target = n - 1
		}
	}
	if target < n-1 || target > n*(n-1) {
		return nil, ErrInvalidEdgeCount
	}

	g := backbone(n, o.root, o)

	layer := assignLayers(n, o.root)

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	byLayer := make(map[int][]core.VertexID)
	for v := 0; v < n; v++ {
		byLayer[layer[v]] = append(byLayer[layer[v]], core.VertexID(v))
	}

	count := len(g.Edges())
	maxAttempts := target * 20
	if maxAttempts < 1000 {
		maxAttempts = 1000
	}
	for attempt := 0; count < target && attempt < maxAttempts; attempt++ {
		var u, v core.VertexID
		if rng.Float64() < o.layerBias {
			u = pickFromLayer(byLayer, rng, -1)
			next := byLayer[layerOf(layer, u)+1]
			if len(next) == 0 {
				continue
			}
			v = next[rng.Intn(len(next))]
		} else {
			u = core.VertexID(rng.Intn(n))
			v = core.VertexID(rng.Intn(n))
		}
		if u == v || g.HasEdge(u, v) {
			continue
		}
		_, _ = g.AddEdge(u, v, o.weightFn(rng))
		count++
	}
	return g, nil
}

// assignLayers splits [0,n) into three contiguous bands 0,1,2 by index,
// independent of which index is root (root simply inherits its band's
// label; its own layer is never consulted since it has no incoming edges
// to sample).
func assignLayers(n int, root core.VertexID) map[int]int {
	layer := make(map[int]int, n)
	band := n / 3
	if band < 1 {
		band = 1
	}
	for v := 0; v < n; v++ {
		switch {
		case v < band:
			layer[v] = 0
		case v < 2*band:
			layer[v] = 1
		default:
			layer[v] = 2
		}
	}
	_ = root
	return layer
}

func layerOf(layer map[int]int, v core.VertexID) int {
	return layer[int(v)]
}

// pickFromLayer picks a uniformly random vertex from layer 0 or 1, the
// only layers that have a "next" layer to bias toward.
func pickFromLayer(byLayer map[int][]core.VertexID, rng *rand.Rand, _ int) core.VertexID {
	candidates := make([]core.VertexID, 0, len(byLayer[0])+len(byLayer[1]))
	candidates = append(candidates, byLayer[0]...)
	candidates = append(candidates, byLayer[1]...)
	if len(candidates) == 0 {
		candidates = byLayer[2]
	}
	return candidates[rng.Intn(len(candidates))]
}
