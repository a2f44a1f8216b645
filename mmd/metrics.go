// SPDX-License-Identifier: MIT

package mmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mindeg/qgraph"
)

// Metrics exports the diagnostic counters of the orderings run through it.
// A nil *Metrics records nothing.
type Metrics struct {
	eliminations prometheus.Counter
	compressions prometheus.Counter
	outmatches   prometheus.Counter
	defrags      prometheus.Counter
	updates      prometheus.Counter
	orderings    prometheus.Counter
	batchSize    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered. Panics if registration fails, like promauto.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	f := promauto.With(reg)
	counter := func(name, help string) prometheus.Counter {
		return f.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
	}

	return &Metrics{
		eliminations: counter("eliminations_total", "Supernode eliminations performed."),
		compressions: counter("compressions_total", "Indistinguishable supernodes merged."),
		outmatches:   counter("outmatches_total", "Variables outmatched and elements absorbed by set difference."),
		defrags:      counter("defragmentations_total", "Adjacency store compactions."),
		updates:      counter("updates_total", "Quotient graph updates."),
		orderings:    counter("orderings_total", "Completed orderings."),
		batchSize: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Vertices eliminated per update.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
}

func (m *Metrics) observeBatch(size int) {
	if m == nil {
		return
	}
	m.batchSize.Observe(float64(size))
}

func (m *Metrics) record(s qgraph.Stats) {
	if m == nil {
		return
	}
	m.eliminations.Add(float64(s.Eliminations))
	m.compressions.Add(float64(s.Compressions))
	m.outmatches.Add(float64(s.Outmatches))
	m.defrags.Add(float64(s.Defrags))
	m.updates.Add(float64(s.Updates))
	m.orderings.Inc()
}
