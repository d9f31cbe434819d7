// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and PANIC on meaningless inputs (nil RNG,
//     nil weight function). Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Weight generator for every emitted edge.
	weightFn WeightFn
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig starts from deterministic defaults (no RNG, constant
// weight DefaultEdgeWeight) and applies opts in order; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}
