// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j > i).

package builder

import "fmt"

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Reserve vertices, then sample pairs in a stable order.
		base := s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == MaxProbability:
					s.link(base+i, base+j)
				case p == MinProbability:
					// never
				case cfg.rng.Float64() < p:
					s.link(base+i, base+j)
				}
			}
		}

		return nil
	}
}
