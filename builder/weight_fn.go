// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// weight_fn.go - vertex weight generators.
//
// Vertex weights model pre-compressed supernodes: an input vertex of weight w
// stands for w original unknowns. All generators return weights ≥ 1.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultVertexWeight is the weight of every vertex of an unweighted graph.
const DefaultVertexWeight = 1

// VertexWeightFn yields the weight of vertex v. rng may be nil.
type VertexWeightFn func(rng *rand.Rand, v int) int

// ConstantVertexWeight returns w for every vertex. Panics if w < 1.
func ConstantVertexWeight(w int) VertexWeightFn {
	if w < minVertexWeight {
		panic(fmt.Sprintf("ConstantVertexWeight: w must be ≥ 1, got %d", w))
	}

	return func(_ *rand.Rand, _ int) int { return w }
}

// UniformVertexWeight draws weights uniformly from [min,max]. With a nil RNG
// it returns min. Panics unless 1 ≤ min ≤ max.
func UniformVertexWeight(min, max int) VertexWeightFn {
	if min < minVertexWeight || max < min {
		panic(fmt.Sprintf("UniformVertexWeight: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand, _ int) int {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Intn(max-min+1)
	}
}

// WithConstantVertexWeight is shorthand for WithVertexWeightFn(ConstantVertexWeight(w)).
func WithConstantVertexWeight(w int) BuilderOption {
	return WithVertexWeightFn(ConstantVertexWeight(w))
}

// WithUniformVertexWeight is shorthand for WithVertexWeightFn(UniformVertexWeight(min, max)).
func WithUniformVertexWeight(min, max int) BuilderOption {
	return WithVertexWeightFn(UniformVertexWeight(min, max))
}
