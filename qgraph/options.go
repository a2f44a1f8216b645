// SPDX-License-Identifier: MIT

package qgraph

import (
	"math"

	"go.uber.org/zap"
)

// DefaultAggressiveRepack is the repack policy used when none is given.
const DefaultAggressiveRepack = true

// DefaultElbowFactors returns the over-provisioning factors tried, in order,
// when sizing the adjacency store. The last factor is the exact requirement.
func DefaultElbowFactors() []float64 { return []float64{1.3, 1.2, 1.1, 1.0} }

// Option configures a QuotientGraph.
type Option func(*options)

type options struct {
	single     bool
	aggressive bool
	factors    []float64
	spaceLimit int
	logger     *zap.Logger
	maxStamp   int
}

func defaultOptions() options {
	return options{
		aggressive: DefaultAggressiveRepack,
		factors:    DefaultElbowFactors(),
		logger:     zap.NewNop(),
		maxStamp:   math.MaxInt,
	}
}

// WithSingleElimination requires an Update between any two eliminations and
// enables set-difference element outmatching plus hash-based compression.
func WithSingleElimination() Option {
	return func(o *options) { o.single = true }
}

// WithAggressiveRepack selects the store repack policy. When on, reclaimed
// slots are marked free so placement can merge neighbouring holes and the
// tail can be retracted. The ordering produced is the same either way.
func WithAggressiveRepack(on bool) Option {
	return func(o *options) { o.aggressive = on }
}

// WithElbowFactors overrides the capacity tiers tried at construction.
// Panics if no factor is given or any factor is below 1 or not finite.
func WithElbowFactors(factors ...float64) Option {
	if len(factors) == 0 {
		panic("qgraph: WithElbowFactors requires at least one factor")
	}
	for _, f := range factors {
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
			panic("qgraph: elbow factors must be finite and >= 1")
		}
	}
	fs := append([]float64(nil), factors...)

	return func(o *options) { o.factors = fs }
}

// WithSpaceLimit caps the store capacity in slots; tiers above the cap are
// treated as failed allocations. Zero means no cap. Panics on negative limit.
func WithSpaceLimit(slots int) Option {
	if slots < 0 {
		panic("qgraph: WithSpaceLimit requires slots >= 0")
	}

	return func(o *options) { o.spaceLimit = slots }
}

// WithLogger sets the logger used for store diagnostics. A nil logger is
// ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
