package generator

import (
	"math/rand"

	"github.com/branchroot/minarb/core"
)

// Option customizes a family constructor. Later options override earlier ones.
type Option func(cfg *options)

type options struct {
	rng        *rand.Rand
	weightFn   WeightFn
	root       core.VertexID
	edgeCount  int
	haveCount  bool
	layerBias  float64
}

func newOptions(opts ...Option) *options {
	cfg := &options{
		rng:       nil,
		weightFn:  DefaultWeightFn,
		root:      0,
		layerBias: defaultLayerBias,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds a fresh *rand.Rand for reproducible generation.
func WithSeed(seed int64) Option {
	return func(cfg *options) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects an explicit RNG source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *options) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithWeightFn overrides the edge cost distribution. A nil fn is a no-op.
func WithWeightFn(fn WeightFn) Option {
	return func(cfg *options) {
		if fn != nil {
			cfg.weightFn = fn
		}
	}
}

// WithRoot sets the root vertex (default 0).
func WithRoot(root core.VertexID) Option {
	return func(cfg *options) {
		cfg.root = root
	}
}

// WithEdgeCount overrides a family's default target edge count.
func WithEdgeCount(m int) Option {
	return func(cfg *options) {
		cfg.edgeCount = m
		cfg.haveCount = true
	}
}

// WithLayerBias sets the probability that a layered-family fill-in edge is
// drawn from layer k to layer k+1 rather than uniformly at random. Ignored
// by families other than Layered.
func WithLayerBias(p float64) Option {
	return func(cfg *options) {
		cfg.layerBias = p
	}
}

const defaultLayerBias = 0.75
