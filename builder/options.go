// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand" // RNG source for stochastic builders
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSelfLoops adds a diagonal entry {i,i} to every vertex of the final
// graph. Orderings ignore the diagonal; the option exists to exercise that.
func WithSelfLoops() BuilderOption {
	return func(c *builderConfig) {
		c.selfLoops = true
	}
}

// WithVertexWeightFn sets the vertex weight generator. The function receives
// the (possibly nil) RNG and the vertex id. Panics on nil.
func WithVertexWeightFn(fn VertexWeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithVertexWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.vertexWeightFn = fn
	}
}
