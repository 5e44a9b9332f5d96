package dfs

// FindFunctionalCycle locates a cycle in a functional graph where every
// node other than root has exactly one outgoing pointer given by
// succ[v] (the tail of its chosen zero-cost in-edge). Nodes with no entry
// in succ are treated as terminal. Node identifiers are int64 so this
// serves both core.VertexID values (cast to int64) and cle's supernode
// identifiers, which are allocated above the original vertex range.
//
// Because each node has at most one outgoing pointer, any component not
// containing root has exactly one cycle or none; this returns the first
// one found while scanning nodes in the order given, or (nil, false) if
// the structure is acyclic.
func FindFunctionalCycle(nodes []int64, succ map[int64]int64, root int64) ([]int64, bool) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[int64]int, len(nodes))
	order := make(map[int64]int, len(nodes))

	for _, v := range nodes {
		if color[v] != white {
			continue
		}
		path := []int64{}
		cur := v
		for {
			if color[cur] == black {
				break
			}
			if color[cur] == gray {
				startIdx := order[cur]
				cycle := append([]int64(nil), path[startIdx:]...)
				for _, u := range path {
					color[u] = black
				}
				return cycle, true
			}
			color[cur] = gray
			order[cur] = len(path)
			path = append(path, cur)

			if cur == root {
				break
			}
			next, ok := succ[cur]
			if !ok {
				break
			}
			cur = next
		}
		for _, u := range path {
			color[u] = black
		}
	}
	return nil, false
}
