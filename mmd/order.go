// SPDX-License-Identifier: MIT

package mmd

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/mindeg/bucket"
	"github.com/katalvlaran/mindeg/csr"
	"github.com/katalvlaran/mindeg/qgraph"
)

// Order computes a multiple minimum degree ordering of g.
//
// Implementation:
//   - Stage 1: build the quotient graph and bucket every vertex by its exact
//     initial degree.
//   - Stage 2: take the lowest non-empty bucket d and eliminate every vertex
//     of buckets [d, d+delta] that the engine accepts; vertices made pending
//     by this batch are skipped. Single mode stops after one elimination.
//   - Stage 3: Update, drop the removed vertices from the buckets and
//     re-bucket the updated ones by their new external degree.
//   - Stage 4: once every vertex is numbered, read back the permutation.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - qgraph.ErrOutOfMemory if the adjacency store cannot be allocated.
//   - the context error when WithContext is given a context that ends.
//   - ErrStalled or qgraph.ErrCorrupt on internal defects.
//
// Complexity: bounded by the engine; the degree index adds O(log n) per
// distinct degree touched, independent of the vertex weights.
func Order(g *csr.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("Order: %w", ErrNilGraph)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	engine := append([]qgraph.Option{qgraph.WithLogger(o.logger)}, o.engine...)
	q, err := qgraph.New(g, engine...)
	if err != nil {
		return nil, fmt.Errorf("Order: %w", err)
	}

	n := g.Order()
	res := &Result{}
	if n > 0 {
		if res.Batches, err = eliminateAll(q, &o); err != nil {
			return nil, fmt.Errorf("Order: %w", err)
		}
	}

	if res.Perm, err = q.Permutation(); err != nil {
		return nil, fmt.Errorf("Order: %w", err)
	}
	res.InvPerm = make([]int, n)
	for v, p := range res.Perm {
		res.InvPerm[p] = v
	}
	res.Stats = q.Stats()

	o.metrics.record(res.Stats)
	o.logger.Info("mmd: ordering finished",
		zap.Int("n", n),
		zap.Int("eliminations", res.Stats.Eliminations),
		zap.Int("compressions", res.Stats.Compressions),
		zap.Int("outmatches", res.Stats.Outmatches),
		zap.Int("defrags", res.Stats.Defrags),
		zap.Int("batches", res.Batches))

	return res, nil
}

// eliminateAll runs batches until q is finished and returns their number.
func eliminateAll(q *qgraph.QuotientGraph, o *options) (int, error) {
	n := q.Order()
	deg := newDegreeIndex(n)
	for v := 0; v < n; v++ {
		d, err := q.ExternalDegree(v)
		if err != nil {
			return 0, err
		}
		deg.insert(v, d)
	}

	var (
		up      qgraph.UpdateResult
		batch   []int
		window  []int
		batches int
	)
	for !q.Finished() {
		if err := o.ctx.Err(); err != nil {
			return batches, err
		}
		dmin, ok := deg.minDegree()
		if !ok {
			return batches, ErrStalled
		}

		batch = batch[:0]
		limit := dmin + o.delta
		if limit < dmin {
			limit = math.MaxInt
		}
		window = deg.upTo(limit, window)
	scan:
		for _, d := range window {
			for v := deg.first(d); v != bucket.None; {
				nv := deg.next(v)
				err := q.EliminateSupernode(v)
				switch {
				case err == nil:
					deg.remove(v)
					batch = append(batch, v)
					if o.single {
						break scan
					}
				case errors.Is(err, qgraph.ErrPendingUpdate):
				default:
					return batches, err
				}
				v = nv
			}
		}
		if len(batch) == 0 {
			return batches, ErrStalled
		}

		if err := q.Update(&up); err != nil {
			return batches, err
		}
		batches++
		for _, v := range up.Removed {
			deg.remove(v)
		}
		for _, v := range up.Updated {
			d, err := q.ExternalDegree(v)
			if err != nil {
				return batches, err
			}
			deg.insert(v, d)
		}

		o.metrics.observeBatch(len(batch))
		o.logger.Debug("mmd: batch",
			zap.Int("batch", batches),
			zap.Int("min_degree", dmin),
			zap.Int("size", len(batch)),
			zap.Int("eliminated", q.Eliminated()))
	}

	return batches, nil
}
