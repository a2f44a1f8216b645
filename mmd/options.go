// SPDX-License-Identifier: MIT

package mmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/mindeg/qgraph"
)

// DefaultDelta is the degree tolerance of a batch: every eliminable vertex
// with degree in [min, min+delta] is eliminated before the next update.
const DefaultDelta = 0

// Option configures Order.
type Option func(*options)

type options struct {
	ctx     context.Context
	delta   int
	single  bool
	engine  []qgraph.Option
	logger  *zap.Logger
	metrics *Metrics
}

func defaultOptions() options {
	return options{
		ctx:    context.Background(),
		delta:  DefaultDelta,
		logger: zap.NewNop(),
	}
}

// WithContext makes Order check ctx between batches and return its error
// once it is done. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithDelta sets the degree tolerance of a batch. Panics if d < 0.
func WithDelta(d int) Option {
	if d < 0 {
		panic("mmd: WithDelta requires d >= 0")
	}

	return func(o *options) { o.delta = d }
}

// WithSingleElimination eliminates exactly one vertex per update.
func WithSingleElimination() Option {
	return func(o *options) {
		o.single = true
		o.engine = append(o.engine, qgraph.WithSingleElimination())
	}
}

// WithAggressiveRepack forwards the store repack policy to the engine.
func WithAggressiveRepack(on bool) Option {
	return func(o *options) { o.engine = append(o.engine, qgraph.WithAggressiveRepack(on)) }
}

// WithElbowFactors forwards the store capacity tiers to the engine.
// Panics on invalid factors, like qgraph.WithElbowFactors.
func WithElbowFactors(factors ...float64) Option {
	opt := qgraph.WithElbowFactors(factors...)

	return func(o *options) { o.engine = append(o.engine, opt) }
}

// WithLogger sets the logger of the driver and the engine. A nil logger is
// ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records every ordering into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}
