package harness

import "time"

// FamilyTag names one of the generator's four instance families.
type FamilyTag string

const (
	FamilyRandom  FamilyTag = "random"
	FamilySparse  FamilyTag = "sparse"
	FamilyDense   FamilyTag = "dense"
	FamilyLayered FamilyTag = "layered"
)

// CaseReport is one row of a TestReport: every field the test-harness API
// requires, plus two supplemented diagnostics (root eccentricity, undirected
// MST lower bound) recorded for informational purposes only.
type CaseReport struct {
	Index  int
	Family FamilyTag

	NumVertices int
	NumEdges    int

	CostCLE     int64
	CostFrankV1 int64
	CostFrankV2 int64

	CLETime        time.Duration
	FrankPhaseITime   time.Duration
	FrankPhaseIIv1Time time.Duration
	FrankPhaseIIv2Time time.Duration

	CertPassV1 bool
	CertPassV2 bool

	CLEContractionCount int
	CLEMaxRecursionDepth int

	FrankFSize          int
	FrankSigmaSize      int
	FrankD0Size         int
	FrankIterationCount int
	FrankPeakMemoryBytes uint64

	// Diagnostics, never used to assert pass/fail.
	RootEccentricity int64
	UndirectedMSTCost int64

	Success     bool
	Infeasible  bool
	ErrorMsg    string
}

// TestReport is the full output of a VolumeTest run.
type TestReport struct {
	Cases        []CaseReport
	SuccessCount int
	FailureCount int
}

// Option configures a VolumeTest run.
type Option func(*runConfig)

type runConfig struct {
	seed int64
}

func newRunConfig(opts ...Option) *runConfig {
	cfg := &runConfig{seed: 1}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds the generator's RNG for a reproducible batch.
func WithSeed(seed int64) Option {
	return func(cfg *runConfig) {
		cfg.seed = seed
	}
}
