// Package builder_test contains unit tests for the VertexWeightFn
// implementations, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mindeg/builder"
)

// TestVertexWeightFnConstructors verifies that constructors panic on invalid
// parameters according to their documented contracts.
func TestVertexWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.VertexWeightFn
	}{
		{"Constant_zero", func() builder.VertexWeightFn { return builder.ConstantVertexWeight(0) }},
		{"Uniform_minZero", func() builder.VertexWeightFn { return builder.UniformVertexWeight(0, 5) }},
		{"Uniform_maxLessThanMin", func() builder.VertexWeightFn { return builder.UniformVertexWeight(5, 4) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestVertexWeightFnBehavior covers the runtime behavior of each generator.
func TestVertexWeightFnBehavior(t *testing.T) {
	t.Parallel()

	require.Equal(t, 7, builder.ConstantVertexWeight(7)(nil, 3))

	uni := builder.UniformVertexWeight(2, 5)
	require.Equal(t, 2, uni(nil, 0)) // nil RNG → min
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		w := uni(rng, i)
		require.GreaterOrEqual(t, w, 2)
		require.LessOrEqual(t, w, 5)
	}

	require.Equal(t, 3, builder.UniformVertexWeight(3, 3)(rng, 0))
}
