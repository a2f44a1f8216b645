// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   - Stub matching: every vertex contributes d stubs; a shuffled stub list is
//     paired off consecutively. Attempts producing a loop or a repeated pair
//     are discarded; after maxStubMatchingAttempts the constructor gives up.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - ErrConstructFailed when every attempt fails.
//
// Complexity:
//   - ~O(n·d) per attempt; attempts are constant-bounded. Deterministic per seed.

package builder

import "fmt"

// RandomRegular returns a Constructor that builds a d-regular simple graph.
func RandomRegular(n, d int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		// 1) Validate domain.
		if err := validateMin(MethodRandomRegular, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		// 2) Prepare stubs: vertex i repeated d times.
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			s.grow(n)
			return nil
		}

		// 3) Shuffle and pair off until a simple matching is found.
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simpleMatching(stubs) {
				continue
			}
			base := s.grow(n)
			for i := 0; i < len(stubs); i += 2 {
				s.link(base+stubs[i], base+stubs[i+1])
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simpleMatching reports whether consecutive stub pairs form neither a loop
// nor a repeated edge.
func simpleMatching(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
