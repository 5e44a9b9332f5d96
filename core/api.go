package core

import "fmt"

// AddVertex appends one new vertex and returns its id, which is the graph's
// order before the call. Every call adds a vertex.
func (g *Graph) AddVertex() VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := VertexID(g.n)
	g.grow(g.n + 1)
	return id
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.n
}

// AddEdge inserts a directed edge from->to with the given cost. If an edge
// from->to already exists, that edge is kept and returned (parallel-edge
// collapsing): its Cost is lowered to the new cost if the new cost is
// lower, and its ID is unchanged. Self-loops return ErrSelfLoop.
func (g *Graph) AddEdge(from, to VertexID, cost int64) (*Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to {
		return nil, fmt.Errorf("core: AddEdge(%d,%d): %w", from, to, ErrSelfLoop)
	}
	if int(from) < 0 || int(to) < 0 {
		return nil, fmt.Errorf("core: AddEdge(%d,%d): %w", from, to, ErrInvalidVertex)
	}
	if max := int(from); max >= g.n {
		g.grow(max + 1)
	}
	if max := int(to); max >= g.n {
		g.grow(max + 1)
	}

	if g.out[from] == nil {
		g.out[from] = make(map[VertexID]*Edge)
	}
	if existing, ok := g.out[from][to]; ok {
		if cost < existing.Cost {
			existing.Cost = cost
		}
		return existing, nil
	}

	g.nextEdgeID++
	e := &Edge{ID: g.nextEdgeID, From: from, To: to, Cost: cost}
	g.out[from][to] = e
	return e, nil
}

// HasEdge reports whether an edge from->to exists.
func (g *Graph) HasEdge(from, to VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeLocked(from, to) != nil
}

func (g *Graph) edgeLocked(from, to VertexID) *Edge {
	if int(from) < 0 || int(from) >= g.n || g.out[from] == nil {
		return nil
	}
	return g.out[from][to]
}

// Edge returns the edge from->to, or ErrEdgeNotFound.
func (g *Graph) Edge(from, to VertexID) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e := g.edgeLocked(from, to)
	if e == nil {
		return nil, fmt.Errorf("core: Edge(%d,%d): %w", from, to, ErrEdgeNotFound)
	}
	return e, nil
}

// OutEdges returns the edges leaving v, in an unspecified order. The slice
// is a fresh copy; mutating it does not affect the graph.
func (g *Graph) OutEdges(v VertexID) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if int(v) < 0 || int(v) >= g.n || g.out[v] == nil {
		return nil
	}
	edges := make([]*Edge, 0, len(g.out[v]))
	for _, e := range g.out[v] {
		edges = append(edges, e)
	}
	return edges
}

// Edges returns every edge in the graph, in an unspecified order.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var edges []*Edge
	for _, adj := range g.out {
		for _, e := range adj {
			edges = append(edges, e)
		}
	}
	return edges
}

// InDegree returns the number of edges entering v. It is O(|E|); callers
// needing this repeatedly should build their own reverse index.
func (g *Graph) InDegree(v VertexID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for _, adj := range g.out {
		if _, ok := adj[v]; ok {
			count++
		}
	}
	return count
}
