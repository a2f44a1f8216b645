// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaults verifies the deterministic defaults of a fresh config.
func TestDefaults(t *testing.T) {
	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng)
	require.False(t, cfg.selfLoops)
	require.Nil(t, cfg.vertexWeightFn)
}

// TestRNGOptions verifies that WithSeed is reproducible and that the last
// RNG option wins.
func TestRNGOptions(t *testing.T) {
	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	require.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(5), WithRand(r))
	require.Same(t, r, c.rng)

	require.Panics(t, func() { WithRand(nil) })
}

// TestShapeOptions covers self loops and vertex weights.
func TestShapeOptions(t *testing.T) {
	cfg := newBuilderConfig(WithSelfLoops(), WithConstantVertexWeight(4))
	require.True(t, cfg.selfLoops)
	require.Equal(t, 4, cfg.vertexWeightFn(nil, 0))

	require.Panics(t, func() { WithVertexWeightFn(nil) })
}

// TestSketch checks id reservation and edge recording.
func TestSketch(t *testing.T) {
	s := &sketch{}
	require.Equal(t, 0, s.grow(3))
	require.Equal(t, 3, s.grow(2))
	s.link(0, 4)
	require.Equal(t, 5, s.n)
	require.Equal(t, [][2]int{{0, 4}}, s.edges)
}
