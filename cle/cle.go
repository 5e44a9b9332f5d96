package cle

import (
	"fmt"
	"sort"

	"github.com/branchroot/minarb/bfs"
	"github.com/branchroot/minarb/core"
	"github.com/branchroot/minarb/dfs"
)

// Solve returns the minimum-cost arborescence of g rooted at r, as a fresh
// core.Graph containing exactly the selected edges (same vertex count as
// g, original edge costs).
func Solve(g *core.Graph, r core.VertexID, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if int(r) < 0 || int(r) >= n {
		return nil, fmt.Errorf("cle: root %d: %w", r, ErrInvalidRoot)
	}
	if n == 0 {
		return g.CloneEmpty(), nil
	}
	ok, err := bfs.AllReachable(g, r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInfeasible
	}

	o := resolve(opts...)

	arcs := make([]*arc, 0, n)
	for _, e := range g.Edges() {
		arcs = append(arcs, &arc{from: int64(e.From), to: int64(e.To), cost: e.Cost, orig: e})
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].from != arcs[j].from {
			return arcs[i].from < arcs[j].from
		}
		return arcs[i].to < arcs[j].to
	})
	nodes := make([]int64, n)
	for v := 0; v < n; v++ {
		nodes[v] = int64(v)
	}

	nextSuper := int64(n)
	selected, err := solveLevel(nodes, arcs, int64(r), &nextSuper, o, 0)
	if err != nil {
		return nil, err
	}

	keys := make([]int64, 0, len(selected))
	for v := range selected {
		keys = append(keys, v)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := g.CloneEmpty()
	for _, v := range keys {
		a := selected[v]
		if _, err := out.AddEdge(a.orig.From, a.orig.To, a.orig.Cost); err != nil {
			return nil, fmt.Errorf("cle: building result: %w", err)
		}
	}
	return out, nil
}

// solveLevel runs one level of Chu-Liu/Edmonds over the current working
// graph (nodes, arcs). It returns, for every node except root, the arc
// selected as its parent in the arborescence, expressed in terms of
// original graph edges (arc.orig), even when that arc was discovered
// through one or more contraction/expansion steps below this level.
func solveLevel(nodes []int64, arcs []*arc, root int64, nextSuper *int64, o *options, depth int) (map[int64]*arc, error) {
	minIn := make(map[int64]*arc, len(nodes))
	for _, a := range arcs {
		if a.to == root {
			continue
		}
		if cur, ok := minIn[a.to]; !ok || a.cost < cur.cost {
			minIn[a.to] = a
		}
	}
	for _, v := range nodes {
		if v == root {
			continue
		}
		if _, ok := minIn[v]; !ok {
			return nil, ErrInfeasible
		}
	}

	succ := make(map[int64]int64, len(minIn))
	for v, a := range minIn {
		succ[v] = a.from
	}
	cycle, found := dfs.FindFunctionalCycle(nodes, succ, root)

	if !found {
		o.obs.EmitEvent("base_case", depth)
		return minIn, nil
	}

	o.obs.EmitEvent("contract", cycle)
	inCycle := make(map[int64]bool, len(cycle))
	for _, v := range cycle {
		inCycle[v] = true
	}
	super := *nextSuper
	*nextSuper++

	type inCandidate struct {
		a           *arc
		reducedCost int64
		target      int64
	}
	inBest := make(map[int64]inCandidate)

	type outCandidate struct {
		a      *arc
		source int64
	}
	outBest := make(map[int64]outCandidate)

	var passthrough []*arc
	for _, a := range arcs {
		switch {
		case inCycle[a.to] && !inCycle[a.from]:
			reduced := a.cost - minIn[a.to].cost
			if cur, ok := inBest[a.from]; !ok || reduced < cur.reducedCost {
				inBest[a.from] = inCandidate{a: a, reducedCost: reduced, target: a.to}
			}
		case inCycle[a.from] && !inCycle[a.to]:
			if cur, ok := outBest[a.to]; !ok || a.cost < cur.a.cost {
				outBest[a.to] = outCandidate{a: a, source: a.from}
			}
		case inCycle[a.from] && inCycle[a.to]:
			// internal cycle edge; recovered from minIn during expansion.
		default:
			passthrough = append(passthrough, a)
		}
	}

	inKeys := make([]int64, 0, len(inBest))
	for u := range inBest {
		inKeys = append(inKeys, u)
	}
	sort.Slice(inKeys, func(i, j int) bool { return inKeys[i] < inKeys[j] })

	outKeys := make([]int64, 0, len(outBest))
	for w := range outBest {
		outKeys = append(outKeys, w)
	}
	sort.Slice(outKeys, func(i, j int) bool { return outKeys[i] < outKeys[j] })

	newArcs := append([]*arc(nil), passthrough...)
	for _, u := range inKeys {
		c := inBest[u]
		newArcs = append(newArcs, &arc{from: u, to: super, cost: c.reducedCost, orig: c.a.orig})
	}
	for _, w := range outKeys {
		c := outBest[w]
		newArcs = append(newArcs, &arc{from: super, to: w, cost: c.a.cost, orig: c.a.orig})
	}

	newNodes := make([]int64, 0, len(nodes)-len(cycle)+1)
	for _, v := range nodes {
		if !inCycle[v] {
			newNodes = append(newNodes, v)
		}
	}
	newNodes = append(newNodes, super)

	subSelected, err := solveLevel(newNodes, newArcs, root, nextSuper, o, depth+1)
	if err != nil {
		return nil, err
	}

	o.obs.EmitEvent("expand", cycle)

	result := make(map[int64]*arc, len(nodes))
	for v, a := range subSelected {
		if v == super {
			continue
		}
		if a.from == super {
			oc := outBest[v]
			result[v] = oc.a
			continue
		}
		result[v] = a
	}

	entering, ok := subSelected[super]
	if !ok {
		return nil, ErrInfeasible
	}
	ic := inBest[entering.from]
	brokenTarget := ic.target
	result[brokenTarget] = ic.a

	for _, v := range cycle {
		if v == brokenTarget {
			continue
		}
		result[v] = minIn[v]
	}

	return result, nil
}
