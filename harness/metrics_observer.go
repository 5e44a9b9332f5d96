package harness

import "github.com/branchroot/minarb/core"

// metricsObserver counts the contraction/expansion and iteration events
// emitted by cle.Solve and frank.Solve, turning them into the per-case
// diagnostics the test-harness API requires.
type metricsObserver struct {
	contractions  int
	maxDepth      int
	frankIterations int
}

func (m *metricsObserver) EmitEvent(kind string, payload any) {
	switch kind {
	case "contract":
		m.contractions++
	case "base_case":
		if depth, ok := payload.(int); ok && depth > m.maxDepth {
			m.maxDepth = depth
		}
	case "iteration":
		m.frankIterations++
	}
}

func (m *metricsObserver) EmitSnapshot(*core.Graph, string) {}
