package frank

import (
	"fmt"
	"sort"

	"github.com/branchroot/minarb/bfs"
	"github.com/branchroot/minarb/core"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

type workArc struct {
	from, to int64
	cost     int64
	orig     *core.Edge
}

// Solve runs Phase I of Frank's primal-dual method over g rooted at r.
func Solve(g *core.Graph, r core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if int(r) < 0 || int(r) >= n {
		return nil, fmt.Errorf("frank: root %d: %w", r, ErrInvalidRoot)
	}
	if n == 0 {
		return &Result{}, nil
	}
	ok, err := bfs.AllReachable(g, r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInfeasible
	}

	o := resolve(opts...)
	root := int64(r)

	edges := g.Edges()
	arcs := make([]*workArc, 0, len(edges))
	for _, e := range edges {
		arcs = append(arcs, &workArc{from: int64(e.From), to: int64(e.To), cost: e.Cost, orig: e})
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].from != arcs[j].from {
			return arcs[i].from < arcs[j].from
		}
		return arcs[i].to < arcs[j].to
	})

	var sigma []DualTerm
	iteration := 0

	f := make([]*core.Edge, 0)
	admitted := make(map[int64]bool, len(arcs))
	admit := func(a *workArc) {
		if a.cost != 0 || admitted[a.orig.ID] {
			return
		}
		f = append(f, a.orig)
		admitted[a.orig.ID] = true
	}
	for _, a := range arcs {
		admit(a)
	}

	for !zeroReachable(root, n, arcs) {
		iteration++
		o.obs.EmitEvent("iteration", iteration)
		dg := simple.NewDirectedGraph()
		for v := 0; v < n; v++ {
			dg.AddNode(simple.Node(int64(v)))
		}
		for _, a := range arcs {
			if a.cost == 0 {
				dg.SetEdge(dg.NewEdge(simple.Node(a.from), simple.Node(a.to)))
			}
		}

		sccs := topo.TarjanSCC(dg)
		// Order each component's members and the components themselves by
		// vertex ID, so that Sigma and F come out in the same order on
		// every run.
		for _, comp := range sccs {
			sort.Slice(comp, func(i, j int) bool { return comp[i].ID() < comp[j].ID() })
		}
		sort.Slice(sccs, func(i, j int) bool { return sccs[i][0].ID() < sccs[j][0].ID() })
		compID := make(map[int64]int, n)
		for idx, comp := range sccs {
			for _, nd := range comp {
				compID[nd.ID()] = idx
			}
		}

		isSource := make([]bool, len(sccs))
		for i := range isSource {
			isSource[i] = true
		}
		for _, a := range arcs {
			if a.cost != 0 {
				continue
			}
			if compID[a.from] != compID[a.to] {
				isSource[compID[a.to]] = false
			}
		}

		rootComp := compID[root]
		progressed := false

		for comp := 0; comp < len(sccs); comp++ {
			if comp == rootComp || !isSource[comp] {
				continue
			}
			inComp := make(map[int64]bool, len(sccs[comp]))
			for _, nd := range sccs[comp] {
				inComp[nd.ID()] = true
			}

			var entering []*workArc
			minCost := int64(-1)
			for _, a := range arcs {
				if !inComp[a.to] || inComp[a.from] {
					continue
				}
				entering = append(entering, a)
				if minCost < 0 || a.cost < minCost {
					minCost = a.cost
				}
			}
			if len(entering) == 0 {
				return nil, ErrInfeasible
			}
			if minCost > 0 {
				xs := make([]core.VertexID, 0, len(sccs[comp]))
				for _, nd := range sccs[comp] {
					xs = append(xs, core.VertexID(nd.ID()))
				}
				sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
				sigma = append(sigma, DualTerm{X: xs, Y: minCost})
				o.obs.EmitEvent("tighten", DualTerm{X: xs, Y: minCost})
				for _, a := range entering {
					a.cost -= minCost
					admit(a)
				}
				progressed = true
			}
		}
		if !progressed {
			return nil, ErrInfeasible
		}
	}

	return &Result{F: f, Sigma: sigma}, nil
}

func zeroReachable(root int64, n int, arcs []*workArc) bool {
	adj := make(map[int64][]int64)
	for _, a := range arcs {
		if a.cost == 0 {
			adj[a.from] = append(adj[a.from], a.to)
		}
	}
	visited := map[int64]bool{root: true}
	queue := []int64{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, w := range adj[cur] {
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}
	return len(visited) == n
}
