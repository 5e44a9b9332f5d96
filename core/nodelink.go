package core

import "encoding/json"

// NodeLinkEdge is the JSON representation of one edge in a NodeLink
// snapshot. Field names are fixed; the edge cost is always recorded under
// "cost".
type NodeLinkEdge struct {
	From int   `json:"from"`
	To   int   `json:"to"`
	Cost int64 `json:"cost"`
}

// NodeLink is a flat, JSON-friendly snapshot of a Graph: the vertex count
// and every edge's endpoints and cost. Edge IDs are not recorded;
// FromNodeLink assigns fresh ones.
type NodeLink struct {
	NumVertices int            `json:"num_vertices"`
	Edges       []NodeLinkEdge `json:"edges"`
}

// ToNodeLink snapshots g into a NodeLink value.
func (g *Graph) ToNodeLink() NodeLink {
	edges := g.Edges()
	nl := NodeLink{NumVertices: g.Order(), Edges: make([]NodeLinkEdge, 0, len(edges))}
	for _, e := range edges {
		nl.Edges = append(nl.Edges, NodeLinkEdge{From: int(e.From), To: int(e.To), Cost: e.Cost})
	}
	return nl
}

// FromNodeLink rebuilds a Graph from a NodeLink snapshot.
func FromNodeLink(nl NodeLink) *Graph {
	g := NewGraph(WithVertexCount(nl.NumVertices))
	for _, e := range nl.Edges {
		// AddEdge cannot fail here: From/To are validated by the producer
		// and self-loops never appear in a solver-produced NodeLink.
		_, _ = g.AddEdge(VertexID(e.From), VertexID(e.To), e.Cost)
	}
	return g
}

// MarshalJSON and UnmarshalJSON let a Graph round-trip through its
// NodeLink encoding directly.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.ToNodeLink())
}

func (g *Graph) UnmarshalJSON(data []byte) error {
	var nl NodeLink
	if err := json.Unmarshal(data, &nl); err != nil {
		return err
	}
	rebuilt := FromNodeLink(nl)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n = rebuilt.n
	g.out = rebuilt.out
	g.nextEdgeID = rebuilt.nextEdgeID
	return nil
}
