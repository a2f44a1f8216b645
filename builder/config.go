// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng            = nil   (pure/deterministic unless seeded)
//   • selfLoops      = false
//   • vertexWeightFn = nil   (unweighted graph, every vertex weighs 1)

package builder

import (
	"math/rand" // RNG for stochastic builders
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Add a diagonal entry on every vertex after all constructors ran.
	selfLoops bool
	// Vertex weight generator; nil leaves the graph unweighted.
	vertexWeightFn VertexWeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
