package harness

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/branchroot/minarb/certificate"
	"github.com/branchroot/minarb/cle"
	"github.com/branchroot/minarb/core"
	"github.com/branchroot/minarb/dijkstra"
	"github.com/branchroot/minarb/frank"
	"github.com/branchroot/minarb/generator"
	"github.com/branchroot/minarb/phase2"
	"github.com/branchroot/minarb/prim_kruskal"
)

// VolumeTest builds numTests instances of the given family, with vertex
// counts sampled uniformly from vertexRange and edge costs sampled
// uniformly from edgeWeightRange, and cross-checks CLE against both Frank
// Phase-II extractors on each. It returns a TestReport with one row per
// case. A case in which cle.Solve, or after it frank.Solve, returns an
// error (ErrInfeasible when the instance has no r-arborescence) is
// recorded as Infeasible with that error's message, not as a batch-ending
// error; a case where the solvers disagree on cost or the
// certificate rejects a Phase-II tree is reported as ErrInvariantViolation
// and halts the batch immediately, since that indicates a solver defect
// rather than a property of the instance.
func VolumeTest(numTests int, vertexRange [2]int, edgeWeightRange [2]int, family FamilyTag, opts ...Option) (*TestReport, error) {
	if vertexRange[0] > vertexRange[1] || edgeWeightRange[0] > edgeWeightRange[1] {
		return nil, ErrInvalidRange
	}
	cfg := newRunConfig(opts...)
	rng := rand.New(rand.NewSource(cfg.seed))

	report := &TestReport{Cases: make([]CaseReport, 0, numTests)}

	for i := 1; i <= numTests; i++ {
		n := vertexRange[0]
		if vertexRange[1] > vertexRange[0] {
			n += rng.Intn(vertexRange[1] - vertexRange[0] + 1)
		}

		wfn := generator.UniformWeightFn(int64(edgeWeightRange[0]), int64(edgeWeightRange[1]))
		g, err := buildInstance(family, n, rng, wfn)
		if err != nil {
			return nil, fmt.Errorf("harness: building case %d: %w", i, err)
		}

		c, err := runCase(i, family, g, rng)
		if err != nil {
			return nil, err
		}

		report.Cases = append(report.Cases, *c)
		if c.Success || c.Infeasible {
			report.SuccessCount++
		} else {
			report.FailureCount++
		}
	}

	return report, nil
}

func buildInstance(family FamilyTag, n int, rng *rand.Rand, wfn generator.WeightFn) (*core.Graph, error) {
	opts := []generator.Option{generator.WithRand(rng), generator.WithWeightFn(wfn)}
	switch family {
	case FamilyRandom:
		m := n - 1 + rng.Intn(2*n+1)
		if m < n-1 {
			m = n - 1
		}
		if m > n*(n-1) {
			m = n * (n - 1)
		}
		return generator.Random(n, m, opts...)
	case FamilySparse:
		return generator.Sparse(n, opts...)
	case FamilyDense:
		return generator.Dense(n, opts...)
	case FamilyLayered:
		return generator.Layered(n, opts...)
	default:
		return nil, ErrUnknownFamily
	}
}

const root core.VertexID = 0

func runCase(index int, family FamilyTag, g *core.Graph, rng *rand.Rand) (*CaseReport, error) {
	c := &CaseReport{Index: index, Family: family, NumVertices: g.Order(), NumEdges: len(g.Edges())}

	if ecc, err := dijkstra.Eccentricity(g, root); err == nil {
		c.RootEccentricity = ecc
	}
	if cost, err := prim_kruskal.Kruskal(g); err == nil {
		c.UndirectedMSTCost = cost
	}

	cleMetrics := &metricsObserver{}
	cleStart := time.Now()
	treeCLE, err := cle.Solve(g, root, cle.WithObserver(cleMetrics))
	c.CLETime = time.Since(cleStart)
	c.CLEContractionCount = cleMetrics.contractions
	c.CLEMaxRecursionDepth = cleMetrics.maxDepth

	if err != nil {
		return finishInfeasible(c, err)
	}
	c.CostCLE = generator.TotalCost(treeCLE.Edges())

	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	frankMetrics := &metricsObserver{}
	frankStart := time.Now()
	result, err := frank.Solve(g, root, frank.WithObserver(frankMetrics))
	c.FrankPhaseITime = time.Since(frankStart)
	if err != nil {
		return finishInfeasible(c, err)
	}

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)
	if memAfter.HeapAlloc > memBefore.HeapAlloc {
		c.FrankPeakMemoryBytes = memAfter.HeapAlloc - memBefore.HeapAlloc
	}

	c.FrankFSize = len(result.F)
	c.FrankSigmaSize = len(result.Sigma)
	c.FrankD0Size = g.Order()
	c.FrankIterationCount = frankMetrics.frankIterations

	v1Start := time.Now()
	treeV1, err := phase2.ExtractV1(result.F, g.Order(), root)
	c.FrankPhaseIIv1Time = time.Since(v1Start)
	if err != nil {
		return nil, fmt.Errorf("%w: case %d Phase-II v1 could not span F produced by a feasible Phase I: %v",
			ErrInvariantViolation, index, err)
	}
	c.CostFrankV1 = generator.TotalCost(treeV1.Edges())
	c.CertPassV1 = certificate.Check(treeV1, result.Sigma) && certificate.VerifyCost(treeV1, result.Sigma)

	v2Start := time.Now()
	treeV2, err := phase2.ExtractV2(result.F, g.Order(), root)
	c.FrankPhaseIIv2Time = time.Since(v2Start)
	if err != nil {
		return nil, fmt.Errorf("%w: case %d Phase-II v2 could not span F produced by a feasible Phase I: %v",
			ErrInvariantViolation, index, err)
	}
	c.CostFrankV2 = generator.TotalCost(treeV2.Edges())
	c.CertPassV2 = certificate.Check(treeV2, result.Sigma) && certificate.VerifyCost(treeV2, result.Sigma)

	if c.CostCLE != c.CostFrankV1 || c.CostCLE != c.CostFrankV2 {
		return nil, fmt.Errorf("%w: case %d costs diverge (cle=%d frank_v1=%d frank_v2=%d)",
			ErrInvariantViolation, index, c.CostCLE, c.CostFrankV1, c.CostFrankV2)
	}
	if !c.CertPassV1 || !c.CertPassV2 {
		return nil, fmt.Errorf("%w: case %d failed dual-feasibility certificate", ErrInvariantViolation, index)
	}

	c.Success = true
	return c, nil
}

func finishInfeasible(c *CaseReport, err error) (*CaseReport, error) {
	c.Infeasible = true
	c.ErrorMsg = err.Error()
	return c, nil
}
