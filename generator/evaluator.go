package generator

import "github.com/branchroot/minarb/core"

// TotalCost sums the cost of edges under the graph's original cost function.
func TotalCost(edges []*core.Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Cost
	}
	return total
}
